// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	ManifestFile  = "manifest.toml"
	ScenarioFile  = "scenario.toml"
	CallLogFile   = "call_log.jsonl"
	ResponsesDir  = "responses"
	wildcard      = "*"
	defaultStatus = 200
)

// Manifest is the ordered list of request mappings of a scenario.
type Manifest struct {
	Responses []*Mapping `toml:"responses"`
}

// Mapping ties an operation and its argument constraints to a canned
// response. Arg constraints are either a string, "*" included, or an array
// of strings.
type Mapping struct {
	Method   string                 `toml:"method"`
	Args     map[string]interface{} `toml:"args"`
	File     string                 `toml:"file"`
	Sequence []string               `toml:"sequence"`
	Status   int                    `toml:"status"`
	When     *Condition             `toml:"when"`
	DelayMS  int                    `toml:"delay_ms"`
}

type Condition struct {
	BodyContains string `toml:"body_contains"`
}

// LoadManifest reads manifest.toml from a scenario directory.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mock manifest %s", path)
	}
	return ParseManifest(data)
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to parse mock manifest")
	}
	for i, r := range m.Responses {
		if r.Method == "" {
			return nil, errors.Errorf("mock manifest response %d has no method", i)
		}
		if r.Status == 0 {
			r.Status = defaultStatus
		}
		if r.Args == nil {
			r.Args = map[string]interface{}{}
		}
	}
	m.warnDuplicates()
	return &m, nil
}

// warnDuplicates reports mappings that can never match because an identical
// one comes first.
func (m *Manifest) warnDuplicates() {
	seen := map[string]int{}
	for i, r := range m.Responses {
		key := r.key()
		if first, ok := seen[key]; ok {
			mlog.Warn("Duplicate mock mapping, the first one wins",
				mlog.String("method", r.Method),
				mlog.Int("index", i),
				mlog.Int("first", first),
			)
			continue
		}
		seen[key] = i
	}
}

func (r *Mapping) key() string {
	names := make([]string, 0, len(r.Args))
	for name := range r.Args {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(r.Method)
	for _, name := range names {
		fmt.Fprintf(&b, "|%s=%v", name, r.Args[name])
	}
	if r.When != nil {
		fmt.Fprintf(&b, "|when=%s", r.When.BodyContains)
	}
	return b.String()
}

// Find returns the first mapping for op whose constraints all hold, with its
// manifest index, or -1.
func (m *Manifest) Find(op string, args map[string]interface{}, body string) (*Mapping, int) {
	for i, r := range m.Responses {
		if r.Method != op {
			continue
		}
		if r.matches(args, body) {
			return r, i
		}
	}
	return nil, -1
}

func (r *Mapping) matches(args map[string]interface{}, body string) bool {
	for name, constraint := range r.Args {
		arg, ok := args[name]
		if !ok {
			return false
		}
		if !argMatches(constraint, arg) {
			return false
		}
	}
	if r.When != nil && r.When.BodyContains != "" && !strings.Contains(body, r.When.BodyContains) {
		return false
	}
	return true
}

// ResponseFile picks the file for the n-th call (zero based) of a request.
// Sequences repeat their last entry once exhausted.
func (r *Mapping) ResponseFile(n int) string {
	if len(r.Sequence) == 0 {
		return r.File
	}
	if n >= len(r.Sequence) {
		n = len(r.Sequence) - 1
	}
	return r.Sequence[n]
}

func toStrings(v interface{}) ([]string, bool) {
	switch val := v.(type) {
	case []string:
		return val, true
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, scalar(item))
		}
		return out, true
	}
	return nil, false
}

func scalar(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	}
	return fmt.Sprint(v)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// argMatches applies one constraint to one call argument:
// a scalar constraint is equality (or "*"), or containment in a list arg;
// an array constraint is membership for a scalar arg, or a subset of a list arg.
func argMatches(constraint, arg interface{}) bool {
	argList, argIsList := toStrings(arg)
	if want, ok := toStrings(constraint); ok {
		if !argIsList {
			return contains(want, scalar(arg))
		}
		for _, w := range want {
			if !contains(argList, w) {
				return false
			}
		}
		return true
	}

	want := scalar(constraint)
	if want == wildcard {
		return true
	}
	if argIsList {
		return contains(argList, want)
	}
	return want == scalar(arg)
}

// requestKey identifies a request for sequence counting: the op and its
// sorted arguments.
func requestKey(op string, args map[string]interface{}) string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, args[name]))
	}
	if len(parts) == 0 {
		return op
	}
	return op + ":" + strings.Join(parts, ",")
}
