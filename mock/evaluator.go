// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

// Efficiency grades the number of commands a run used.
type Efficiency string

const (
	Excellent   Efficiency = "excellent"
	Optimal     Efficiency = "optimal"
	Acceptable  Efficiency = "acceptable"
	Inefficient Efficiency = "inefficient"
)

const outcomePenalty = 25

const (
	CriterionRequired  = "required_call"
	CriterionForbidden = "forbidden_call"
	CriterionOrdered   = "ordered_calls"
	CriterionOutcome   = "outcome"
)

// Criterion is one pass/fail check of a report.
type Criterion struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Breakdown lists the point adjustments applied on top of the base score.
type Breakdown struct {
	FailedCriteria  int `json:"failed_criteria"`
	ExtraCommands   int `json:"extra_commands"`
	RedundantFetch  int `json:"redundant_fetch"`
	UnnecessaryList int `json:"unnecessary_list"`
	CommandErrors   int `json:"command_errors"`
	CacheUse        int `json:"cache_use"`
	UnderOptimal    int `json:"under_optimal"`
	JSONOutput      int `json:"json_output"`
}

func (b Breakdown) total() int {
	return b.FailedCriteria + b.ExtraCommands + b.RedundantFetch + b.UnnecessaryList +
		b.CommandErrors + b.CacheUse + b.UnderOptimal + b.JSONOutput
}

type Report struct {
	RunID           string       `json:"run_id"`
	Scenario        string       `json:"scenario"`
	Success         bool         `json:"success"`
	Score           float64      `json:"score"`
	Points          int          `json:"points"`
	BaseScore       int          `json:"base_score"`
	Commands        int          `json:"commands"`
	TotalCalls      int          `json:"total_calls"`
	OptimalCommands int          `json:"optimal_commands,omitempty"`
	Efficiency      Efficiency   `json:"efficiency"`
	Criteria        []*Criterion `json:"criteria"`
	Missing         []string     `json:"missing"`
	Forbidden       []string     `json:"forbidden"`
	Breakdown       Breakdown    `json:"breakdown"`
	Suggestions     []string     `json:"suggestions"`
	EvaluatedAt     time.Time    `json:"evaluated_at"`
}

// Evaluator scores a call log against a scenario.
type Evaluator struct {
	scenario *Scenario
	now      func() time.Time
	newID    func() string
}

func NewEvaluator(s *Scenario) *Evaluator {
	return &Evaluator{
		scenario: s,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// EvaluateDir loads the scenario and call log of dir and scores them.
func EvaluateDir(dir string) (*Report, error) {
	s, err := LoadScenario(dir)
	if err != nil {
		return nil, err
	}
	entries, err := ReadCallLog(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load call log")
	}
	return NewEvaluator(s).Evaluate(entries), nil
}

// Evaluate builds the report for entries. Backend calls feed the criteria;
// command count comes from cli entries, or from backend calls when no
// command was logged.
func (e *Evaluator) Evaluate(entries []*Entry) *Report {
	s := e.scenario
	var calls, commands []*Entry
	for _, entry := range entries {
		if entry.Op == OpCLI {
			commands = append(commands, entry)
		} else {
			calls = append(calls, entry)
		}
	}
	commandCount := len(commands)
	if commandCount == 0 {
		commandCount = len(calls)
	}

	r := &Report{
		RunID:           e.newID(),
		Scenario:        s.Meta.Name,
		BaseScore:       s.Scoring.BaseScore,
		Commands:        commandCount,
		TotalCalls:      len(calls),
		OptimalCommands: s.Scoring.OptimalCommands,
		Criteria:        []*Criterion{},
		Missing:         []string{},
		Forbidden:       []string{},
		Suggestions:     []string{},
		EvaluatedAt:     e.now().UTC(),
	}

	for _, op := range s.Expected.RequiredCalls {
		passed := countOp(calls, op) > 0
		if !passed {
			r.Missing = append(r.Missing, op)
		}
		r.Criteria = append(r.Criteria, &Criterion{Name: op, Kind: CriterionRequired, Passed: passed})
	}
	for _, op := range s.Expected.ForbiddenCalls {
		n := countOp(calls, op)
		if n > 0 {
			r.Forbidden = append(r.Forbidden, op)
		}
		c := &Criterion{Name: op, Kind: CriterionForbidden, Passed: n == 0}
		if n > 0 {
			c.Detail = fmt.Sprintf("called %d times", n)
		}
		r.Criteria = append(r.Criteria, c)
	}
	if len(s.Expected.OrderedCalls) > 0 {
		passed, detail := checkOrder(calls, s.Expected.OrderedCalls)
		r.Criteria = append(r.Criteria, &Criterion{
			Name:   strings.Join(s.Expected.OrderedCalls, " > "),
			Kind:   CriterionOrdered,
			Passed: passed,
			Detail: detail,
		})
	}
	for _, o := range s.Outcomes {
		passed, detail := checkOutcome(calls, o)
		r.Criteria = append(r.Criteria, &Criterion{Name: o.Name, Kind: CriterionOutcome, Passed: passed, Detail: detail})
	}

	failed := 0
	for _, c := range r.Criteria {
		if !c.Passed {
			failed++
		}
	}
	r.Success = failed == 0

	p, b := s.Scoring.Penalties, s.Scoring.Bonuses
	r.Breakdown.FailedCriteria = -outcomePenalty * failed
	if max := s.Scoring.MaxCommands; max > 0 && commandCount > max {
		r.Breakdown.ExtraCommands = p.ExtraCommand * (commandCount - max)
	}
	redundant := countRedundant(calls)
	r.Breakdown.RedundantFetch = p.RedundantFetch * redundant
	r.Breakdown.UnnecessaryList = p.UnnecessaryList * countRepeatedLists(calls)
	errorCount := countErrors(calls)
	r.Breakdown.CommandErrors = p.CommandError * errorCount
	if opt := s.Scoring.OptimalCommands; opt > 0 && commandCount < opt {
		r.Breakdown.UnderOptimal = b.UnderOptimal * (opt - commandCount)
	}
	if usedCache(entries) {
		r.Breakdown.CacheUse = b.CacheUse
	}
	if usedJSON(commands) {
		r.Breakdown.JSONOutput = b.JSONOutput
	}

	r.Points = s.Scoring.BaseScore + r.Breakdown.total()
	if r.Points < 0 {
		r.Points = 0
	}
	r.Score = float64(r.Points) / float64(s.Scoring.BaseScore)
	if r.Score > 1 {
		r.Score = 1
	}
	r.Efficiency = grade(commandCount, s.Scoring)

	for _, c := range r.Criteria {
		if !c.Passed {
			r.Suggestions = append(r.Suggestions, suggestionFor(c))
		}
	}
	switch r.Efficiency {
	case Inefficient:
		if s.Setup.CacheAvailable {
			r.Suggestions = append(r.Suggestions, "Use the cache (track cache show) instead of listing projects and fields")
		}
		r.Suggestions = append(r.Suggestions, "Avoid fetching the same issue more than once")
	case Acceptable:
		if s.Scoring.OptimalCommands == 0 {
			break
		}
		r.Suggestions = append(r.Suggestions, "Combine operations to reach the optimal command count")
	}
	if redundant > 0 {
		r.Suggestions = append(r.Suggestions, fmt.Sprintf("%d redundant fetches of the same resource", redundant))
	}
	if errorCount > 0 {
		r.Suggestions = append(r.Suggestions, fmt.Sprintf("%d calls failed", errorCount))
	}

	mlog.Debug("Evaluated scenario",
		mlog.String("scenario", r.Scenario),
		mlog.Int("points", r.Points),
		mlog.Bool("success", r.Success),
	)
	return r
}

func grade(commands int, s Scoring) Efficiency {
	switch {
	case s.MinCommands > 0 && commands < s.MinCommands:
		return Excellent
	case s.OptimalCommands > 0 && commands < s.OptimalCommands:
		return Excellent
	case s.OptimalCommands > 0 && commands == s.OptimalCommands:
		return Optimal
	case s.MaxCommands == 0 || commands <= s.MaxCommands:
		return Acceptable
	}
	return Inefficient
}

func suggestionFor(c *Criterion) string {
	switch c.Kind {
	case CriterionRequired:
		return fmt.Sprintf("Call %s", c.Name)
	case CriterionForbidden:
		return fmt.Sprintf("Avoid calling %s", c.Name)
	case CriterionOrdered:
		return fmt.Sprintf("Make calls in the order %s", c.Name)
	}
	return fmt.Sprintf("Expected outcome %q was not met", c.Name)
}

func countOp(calls []*Entry, op string) int {
	n := 0
	for _, c := range calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func countErrors(calls []*Entry) int {
	n := 0
	for _, c := range calls {
		if c.Failed() {
			n++
		}
	}
	return n
}

// countRedundant counts get_* calls repeating an earlier id or issue_id.
func countRedundant(calls []*Entry) int {
	seen := map[string]bool{}
	n := 0
	for _, c := range calls {
		if !strings.HasPrefix(c.Op, "get_") {
			continue
		}
		id := scalar(c.Args["id"])
		if id == "" {
			id = scalar(c.Args["issue_id"])
		}
		if id == "" {
			continue
		}
		key := c.Op + "|" + id
		if seen[key] {
			n++
		}
		seen[key] = true
	}
	return n
}

func countRepeatedLists(calls []*Entry) int {
	seen := map[string]bool{}
	n := 0
	for _, c := range calls {
		if !strings.HasPrefix(c.Op, "list_") {
			continue
		}
		key := requestKey(c.Op, c.Args)
		if seen[key] {
			n++
		}
		seen[key] = true
	}
	return n
}

func argv(e *Entry) []string {
	list, _ := toStrings(e.Args["argv"])
	return list
}

func usedCache(entries []*Entry) bool {
	for _, e := range entries {
		if e.Op == OpCLI {
			if a := argv(e); len(a) > 0 && a[0] == "cache" {
				return true
			}
			continue
		}
		if strings.Contains(e.Op, "cache") {
			return true
		}
	}
	return false
}

func usedJSON(commands []*Entry) bool {
	for _, e := range commands {
		a := argv(e)
		for i, arg := range a {
			switch {
			case arg == "--output=json", arg == "-ojson":
				return true
			case (arg == "-o" || arg == "--output") && i+1 < len(a) && a[i+1] == "json":
				return true
			}
		}
	}
	return false
}

// checkOrder verifies that the first occurrences of ops appear in order.
func checkOrder(calls []*Entry, ops []string) (bool, string) {
	last := -1
	for _, op := range ops {
		idx := -1
		for i, c := range calls {
			if c.Op == op {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false, op + " was not called"
		}
		if idx < last {
			return false, op + " was called too early"
		}
		last = idx
	}
	return true, ""
}

func argValues(e *Entry) []string {
	out := []string{}
	for _, v := range e.Args {
		if list, ok := toStrings(v); ok {
			out = append(out, list...)
			continue
		}
		out = append(out, scalar(v))
	}
	return out
}

func references(e *Entry, value string) bool {
	return contains(argValues(e), value)
}

func checkOutcome(calls []*Entry, o *Outcome) (bool, string) {
	switch {
	case o.Bool != nil:
		made := len(calls) > 0
		if made != *o.Bool {
			return false, fmt.Sprintf("expected calls made: %t", *o.Bool)
		}
		return true, ""
	case o.Check == nil:
		for _, c := range calls {
			if references(c, o.Value) {
				return true, ""
			}
		}
		return false, fmt.Sprintf("no call referenced %q", o.Value)
	}
	return checkComplex(calls, o.Check)
}

func checkComplex(calls []*Entry, c *Check) (bool, string) {
	relevant := calls
	if c.MethodCalled != "" {
		relevant = nil
		for _, e := range calls {
			if e.Op == c.MethodCalled {
				relevant = append(relevant, e)
			}
		}
		n := len(relevant)
		min := 1
		if c.MinCalls != nil {
			min = *c.MinCalls
		}
		if n < min {
			return false, fmt.Sprintf("%s called %d times, expected at least %d", c.MethodCalled, n, min)
		}
		if c.MaxCalls != nil && n > *c.MaxCalls {
			return false, fmt.Sprintf("%s called %d times, expected at most %d", c.MethodCalled, n, *c.MaxCalls)
		}
	}

	if c.Issue != "" {
		found := false
		for _, e := range relevant {
			if references(e, c.Issue) {
				found = true
				break
			}
		}
		if !found {
			return false, fmt.Sprintf("no call referenced issue %s", c.Issue)
		}
	}

	if c.Field != "" && c.Value != "" {
		found := false
		for _, e := range relevant {
			if v, ok := e.Args[c.Field]; ok && strings.EqualFold(scalar(v), c.Value) {
				if c.Issue == "" || references(e, c.Issue) {
					found = true
					break
				}
			}
		}
		if !found {
			return false, fmt.Sprintf("%s was never set to %s", c.Field, c.Value)
		}
	}

	if c.Contains != "" && !containsText(relevant, c) {
		return false, fmt.Sprintf("no call contained %q", c.Contains)
	}
	return true, ""
}

// containsText looks for the text where the method carries it: the title of
// created issues, the body of comments, or any argument otherwise.
func containsText(calls []*Entry, c *Check) bool {
	needle := strings.ToLower(c.Contains)
	for _, e := range calls {
		var candidates []string
		switch {
		case c.MethodCalled == "create_issue":
			candidates = []string{scalar(e.Args["title"]), scalar(e.Args["summary"])}
		case c.MethodCalled == "add_comment" || c.MethodCalled == "":
			if e.Op != "add_comment" && e.Op != "add_article_comment" {
				continue
			}
			candidates = []string{scalar(e.Args["text"])}
		default:
			candidates = argValues(e)
		}
		for _, v := range candidates {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
	}
	return false
}
