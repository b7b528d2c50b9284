// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	defaultBackend    = "any"
	defaultDifficulty = "medium"
	defaultBaseScore  = 100
)

// Scenario is the decoded scenario.toml of a scenario directory.
type Scenario struct {
	Meta             Meta                   `toml:"scenario" json:"scenario"`
	Setup            Setup                  `toml:"setup" json:"setup"`
	Expected         Expectation            `toml:"expected_outcome" json:"expected_outcome"`
	ExpectedOutcomes map[string]interface{} `toml:"expected_outcomes" json:"-"`
	Scoring          Scoring                `toml:"scoring" json:"scoring"`

	Dir      string     `toml:"-" json:"dir,omitempty"`
	Outcomes []*Outcome `toml:"-" json:"outcomes,omitempty"`
}

type Meta struct {
	Name        string   `toml:"name" json:"name"`
	Description string   `toml:"description" json:"description"`
	Backend     string   `toml:"backend" json:"backend"`
	Difficulty  string   `toml:"difficulty" json:"difficulty"`
	Tags        []string `toml:"tags" json:"tags,omitempty"`
}

type Setup struct {
	Prompt         string `toml:"prompt" json:"prompt"`
	DefaultProject string `toml:"default_project" json:"default_project,omitempty"`
	Context        string `toml:"context" json:"context,omitempty"`
	CacheAvailable bool   `toml:"cache_available" json:"cache_available"`
}

// Expectation lists the calls a run must make, must not make, and must make
// in order.
type Expectation struct {
	RequiredCalls  []string `toml:"required_calls" json:"required_calls,omitempty"`
	ForbiddenCalls []string `toml:"forbidden_calls" json:"forbidden_calls,omitempty"`
	OrderedCalls   []string `toml:"ordered_calls" json:"ordered_calls,omitempty"`
}

// Scoring holds point values. Zero command counts mean unset.
type Scoring struct {
	MinCommands     int       `toml:"min_commands" json:"min_commands,omitempty"`
	MaxCommands     int       `toml:"max_commands" json:"max_commands,omitempty"`
	OptimalCommands int       `toml:"optimal_commands" json:"optimal_commands,omitempty"`
	BaseScore       int       `toml:"base_score" json:"base_score"`
	Penalties       Penalties `toml:"penalties" json:"penalties"`
	Bonuses         Bonuses   `toml:"bonuses" json:"bonuses"`
}

type Penalties struct {
	ExtraCommand    int `toml:"extra_command" json:"extra_command"`
	RedundantFetch  int `toml:"redundant_fetch" json:"redundant_fetch"`
	UnnecessaryList int `toml:"unnecessary_list" json:"unnecessary_list"`
	CommandError    int `toml:"command_error" json:"command_error"`
}

type Bonuses struct {
	CacheUse     int `toml:"cache_use" json:"cache_use"`
	UnderOptimal int `toml:"under_optimal" json:"under_optimal"`
	JSONOutput   int `toml:"json_output" json:"json_output"`
}

// Outcome is one named check of [expected_outcomes]. Exactly one of Bool,
// Value and Check is set.
type Outcome struct {
	Name  string `json:"name"`
	Bool  *bool  `json:"bool,omitempty"`
	Value string `json:"value,omitempty"`
	Check *Check `json:"check,omitempty"`
}

type Check struct {
	Issue        string `json:"issue,omitempty"`
	Field        string `json:"field,omitempty"`
	Value        string `json:"value,omitempty"`
	Contains     string `json:"contains,omitempty"`
	MethodCalled string `json:"method_called,omitempty"`
	MinCalls     *int   `json:"min_calls,omitempty"`
	MaxCalls     *int   `json:"max_calls,omitempty"`
}

func defaultScenario() Scenario {
	return Scenario{
		Meta: Meta{Backend: defaultBackend, Difficulty: defaultDifficulty},
		Scoring: Scoring{
			BaseScore: defaultBaseScore,
			Penalties: Penalties{ExtraCommand: -5, RedundantFetch: -10, CommandError: -15},
			Bonuses:   Bonuses{CacheUse: 10},
		},
	}
}

// ParseScenario decodes scenario.toml content. Absent keys keep their
// defaults.
func ParseScenario(data []byte) (*Scenario, error) {
	s := defaultScenario()
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "failed to parse scenario")
	}
	if s.Scoring.BaseScore <= 0 {
		s.Scoring.BaseScore = defaultBaseScore
	}

	names := make([]string, 0, len(s.ExpectedOutcomes))
	for name := range s.ExpectedOutcomes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		o, err := parseOutcome(name, s.ExpectedOutcomes[name])
		if err != nil {
			return nil, err
		}
		s.Outcomes = append(s.Outcomes, o)
	}
	return &s, nil
}

// LoadScenario reads dir/scenario.toml.
func LoadScenario(dir string) (*Scenario, error) {
	path := filepath.Join(dir, ScenarioFile)
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario %s", path)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	s.Dir = dir
	if s.Meta.Name == "" {
		s.Meta.Name = filepath.Base(dir)
	}
	return s, nil
}

// IsCompatibleWith reports whether the scenario targets backend.
func (s *Scenario) IsCompatibleWith(backend string) bool {
	return s.Meta.Backend == defaultBackend || strings.EqualFold(s.Meta.Backend, backend)
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func parseOutcome(name string, v interface{}) (*Outcome, error) {
	o := &Outcome{Name: name}
	switch val := v.(type) {
	case bool:
		o.Bool = &val
	case string:
		o.Value = val
	case map[string]interface{}:
		c := &Check{}
		for key, raw := range val {
			switch key {
			case "min_calls", "max_calls":
				n, ok := toInt(raw)
				if !ok {
					return nil, errors.Errorf("expected_outcomes.%s.%s must be an integer", name, key)
				}
				if key == "min_calls" {
					c.MinCalls = &n
				} else {
					c.MaxCalls = &n
				}
			case "issue":
				c.Issue = scalar(raw)
			case "field":
				c.Field = scalar(raw)
			case "value":
				c.Value = scalar(raw)
			case "contains":
				c.Contains = scalar(raw)
			case "method_called":
				c.MethodCalled = scalar(raw)
			default:
				return nil, errors.Errorf("expected_outcomes.%s has unknown key %q", name, key)
			}
		}
		o.Check = c
	default:
		return nil, errors.Errorf("expected_outcomes.%s must be a bool, a string or a table", name)
	}
	return o, nil
}

// ListScenarios returns the scenarios found in root and its immediate
// subdirectories, sorted by directory.
func ListScenarios(root string) ([]*Scenario, error) {
	dirs := []string{root}
	infos, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", root)
	}
	for _, info := range infos {
		if info.IsDir() {
			dirs = append(dirs, filepath.Join(root, info.Name()))
		}
	}

	scenarios := []*Scenario{}
	for _, dir := range dirs {
		if _, err := os.Stat(filepath.Join(dir, ScenarioFile)); err != nil {
			continue
		}
		s, err := LoadScenario(dir)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Dir < scenarios[j].Dir })
	return scenarios, nil
}
