// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(op string, kv ...string) *Entry {
	return &Entry{Op: op, Args: args(kv...), ResultKind: ResultOK}
}

func failed(op string, kv ...string) *Entry {
	e := entry(op, kv...)
	e.ResultKind = "mock_miss"
	e.Error = "No mock response"
	return e
}

func command(argv ...string) *Entry {
	return &Entry{Op: OpCLI, Args: map[string]interface{}{"argv": argv}, ResultKind: ResultOK}
}

func mustScenario(t *testing.T, data string) *Scenario {
	t.Helper()
	s, err := ParseScenario([]byte(data))
	require.NoError(t, err)
	return s
}

func evaluate(s *Scenario, entries ...*Entry) *Report {
	e := NewEvaluator(s)
	e.now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }
	e.newID = func() string { return "run-1" }
	return e.Evaluate(entries)
}

func TestParseScenario(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := mustScenario(t, `
[scenario]
name = "minimal"
`)
		assert.Equal(t, "any", s.Meta.Backend)
		assert.Equal(t, "medium", s.Meta.Difficulty)
		assert.Equal(t, 100, s.Scoring.BaseScore)
		assert.Equal(t, -5, s.Scoring.Penalties.ExtraCommand)
		assert.Equal(t, -10, s.Scoring.Penalties.RedundantFetch)
		assert.Equal(t, 0, s.Scoring.Penalties.UnnecessaryList)
		assert.Equal(t, -15, s.Scoring.Penalties.CommandError)
		assert.Equal(t, 10, s.Scoring.Bonuses.CacheUse)
		assert.True(t, s.IsCompatibleWith("youtrack"))
	})

	t.Run("overrides keep the other defaults", func(t *testing.T) {
		s := mustScenario(t, `
[scenario]
name = "custom"
backend = "jira"

[scoring.penalties]
extra_command = -1
`)
		assert.Equal(t, -1, s.Scoring.Penalties.ExtraCommand)
		assert.Equal(t, -10, s.Scoring.Penalties.RedundantFetch)
		assert.True(t, s.IsCompatibleWith("Jira"))
		assert.False(t, s.IsCompatibleWith("github"))
	})

	t.Run("outcomes of every shape", func(t *testing.T) {
		s := mustScenario(t, `
[expected_outcomes]
made_calls = true
mentions = "PROJ-1"

[expected_outcomes.commented]
method_called = "add_comment"
issue = "PROJ-1"
contains = "fixed"
min_calls = 1
max_calls = 2
`)
		require.Len(t, s.Outcomes, 3)
		assert.Equal(t, "commented", s.Outcomes[0].Name)
		require.NotNil(t, s.Outcomes[0].Check)
		assert.Equal(t, 2, *s.Outcomes[0].Check.MaxCalls)
		assert.Equal(t, "made_calls", s.Outcomes[1].Name)
		assert.True(t, *s.Outcomes[1].Bool)
		assert.Equal(t, "PROJ-1", s.Outcomes[2].Value)
	})

	t.Run("unknown outcome key is rejected", func(t *testing.T) {
		_, err := ParseScenario([]byte("[expected_outcomes.x]\nbogus = 1\n"))
		require.Error(t, err)
	})

	t.Run("load names the scenario after its directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "close-issue")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ScenarioFile), []byte("[setup]\nprompt = \"Close it\"\n"), 0644))
		s, err := LoadScenario(dir)
		require.NoError(t, err)
		assert.Equal(t, "close-issue", s.Meta.Name)
		assert.Equal(t, "Close it", s.Setup.Prompt)
	})
}

func TestListScenarios(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b-second", "a-first", "no-scenario"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0755))
	}
	for _, name := range []string{"b-second", "a-first"} {
		require.NoError(t, ioutil.WriteFile(filepath.Join(root, name, ScenarioFile), []byte("[scenario]\nname = \""+name+"\"\n"), 0644))
	}

	scenarios, err := ListScenarios(root)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "a-first", scenarios[0].Meta.Name)
	assert.Equal(t, "b-second", scenarios[1].Meta.Name)
}

func TestEvaluateRequiredCalls(t *testing.T) {
	s := mustScenario(t, `
[scenario]
name = "resolve-first"

[expected_outcome]
required_calls = ["resolve_project_id", "list_projects"]
`)

	t.Run("missing required call fails", func(t *testing.T) {
		r := evaluate(s, entry("list_projects"))
		assert.False(t, r.Success)
		assert.Less(t, r.Score, 1.0)
		assert.Equal(t, []string{"resolve_project_id"}, r.Missing)
		assert.Equal(t, 75, r.Points)
		assert.Equal(t, -25, r.Breakdown.FailedCriteria)
		assert.Contains(t, r.Suggestions, "Call resolve_project_id")
		assert.Equal(t, "run-1", r.RunID)
	})

	t.Run("all required calls succeed", func(t *testing.T) {
		r := evaluate(s, entry("resolve_project_id", "identifier", "PROJ"), entry("list_projects"))
		assert.True(t, r.Success)
		assert.Equal(t, 1.0, r.Score)
		assert.Empty(t, r.Missing)
	})
}

func TestEvaluateForbiddenAndOrdered(t *testing.T) {
	s := mustScenario(t, `
[expected_outcome]
forbidden_calls = ["delete_issue"]
ordered_calls = ["resolve_project_id", "create_issue"]
`)

	t.Run("in order", func(t *testing.T) {
		r := evaluate(s, entry("resolve_project_id"), entry("list_projects"), entry("create_issue"))
		assert.True(t, r.Success)
	})

	t.Run("out of order", func(t *testing.T) {
		r := evaluate(s, entry("create_issue"), entry("resolve_project_id"))
		assert.False(t, r.Success)
		require.Len(t, r.Criteria, 2)
		assert.False(t, r.Criteria[1].Passed)
		assert.Equal(t, CriterionOrdered, r.Criteria[1].Kind)
	})

	t.Run("forbidden call", func(t *testing.T) {
		r := evaluate(s, entry("resolve_project_id"), entry("create_issue"), entry("delete_issue", "id", "PROJ-1"))
		assert.False(t, r.Success)
		assert.Equal(t, []string{"delete_issue"}, r.Forbidden)
		assert.Equal(t, 75, r.Points)
	})
}

func TestEvaluateOutcomes(t *testing.T) {
	s := mustScenario(t, `
[expected_outcomes]
made_calls = true
mentions = "PROJ-1"

[expected_outcomes.commented]
method_called = "add_comment"
issue = "PROJ-1"
contains = "FIXED"

[expected_outcomes.closed]
method_called = "update_issue"
field = "state"
value = "closed"
max_calls = 1

[expected_outcomes.created]
method_called = "create_issue"
contains = "login"
`)

	t.Run("all met", func(t *testing.T) {
		r := evaluate(s,
			entry("get_issue", "id", "PROJ-1"),
			entry("add_comment", "issue_id", "PROJ-1", "text", "Fixed in 1.2"),
			entry("update_issue", "id", "PROJ-1", "state", "closed"),
			entry("create_issue", "project", "0-1", "title", "Login fails"),
		)
		for _, c := range r.Criteria {
			assert.True(t, c.Passed, c.Name+": "+c.Detail)
		}
		assert.True(t, r.Success)
	})

	t.Run("none met", func(t *testing.T) {
		r := evaluate(s)
		assert.False(t, r.Success)
		assert.Equal(t, 0, r.Points)
		assert.Equal(t, 0.0, r.Score)
		assert.Len(t, r.Suggestions, 5)
	})

	t.Run("too many calls", func(t *testing.T) {
		r := evaluate(s,
			entry("add_comment", "issue_id", "PROJ-1", "text", "fixed"),
			entry("update_issue", "id", "PROJ-1", "state", "closed"),
			entry("update_issue", "id", "PROJ-1", "state", "closed"),
			entry("create_issue", "title", "login"),
		)
		var closed *Criterion
		for _, c := range r.Criteria {
			if c.Name == "closed" {
				closed = c
			}
		}
		require.NotNil(t, closed)
		assert.False(t, closed.Passed)
	})

	t.Run("false bool outcome expects no calls", func(t *testing.T) {
		quiet := mustScenario(t, "[expected_outcomes]\nmade_calls = false\n")
		assert.True(t, evaluate(quiet).Success)
		assert.False(t, evaluate(quiet, entry("list_projects")).Success)
	})
}

func TestEvaluatePenaltiesAndBonuses(t *testing.T) {
	s := mustScenario(t, `
[setup]
cache_available = true

[scoring]
min_commands = 1
optimal_commands = 2
max_commands = 3

[scoring.bonuses]
json_output = 5
`)

	t.Run("extra commands redundant fetches and errors", func(t *testing.T) {
		r := evaluate(s,
			command("issue", "get", "PROJ-1"),
			entry("get_issue", "id", "PROJ-1"),
			command("issue", "get", "PROJ-1"),
			entry("get_issue", "id", "PROJ-1"),
			command("issue", "get", "PROJ-2"),
			failed("get_issue", "id", "PROJ-2"),
			command("project", "list"),
			entry("list_projects"),
			command("project", "list"),
			entry("list_projects"),
		)
		assert.Equal(t, 5, r.Commands)
		assert.Equal(t, 5, r.TotalCalls)
		assert.Equal(t, -10, r.Breakdown.ExtraCommands)
		assert.Equal(t, -10, r.Breakdown.RedundantFetch)
		assert.Equal(t, 0, r.Breakdown.UnnecessaryList)
		assert.Equal(t, -15, r.Breakdown.CommandErrors)
		assert.Equal(t, 65, r.Points)
		assert.Equal(t, 0.65, r.Score)
		assert.Equal(t, Inefficient, r.Efficiency)
		assert.Contains(t, r.Suggestions, "Avoid fetching the same issue more than once")
		assert.Contains(t, r.Suggestions, "1 redundant fetches of the same resource")
		assert.Contains(t, r.Suggestions, "1 calls failed")
	})

	t.Run("fallback entries are not errors", func(t *testing.T) {
		fb := entry("resolve_project_id", "identifier", "PROJ")
		fb.ResultKind = ResultFallback
		r := evaluate(s, fb, entry("list_projects"))
		assert.Equal(t, 0, r.Breakdown.CommandErrors)
		assert.Equal(t, Optimal, r.Efficiency)
	})

	t.Run("cache and json bonuses cap the score at one", func(t *testing.T) {
		r := evaluate(s, command("cache", "show"), command("-o", "json", "issue", "get", "PROJ-1"), entry("get_issue", "id", "PROJ-1"))
		assert.Equal(t, 10, r.Breakdown.CacheUse)
		assert.Equal(t, 5, r.Breakdown.JSONOutput)
		assert.Equal(t, 115, r.Points)
		assert.Equal(t, 1.0, r.Score)
	})
}

func TestGrade(t *testing.T) {
	sc := Scoring{MinCommands: 2, OptimalCommands: 3, MaxCommands: 5}
	for name, tc := range map[string]struct {
		commands int
		want     Efficiency
	}{
		"below minimum":   {1, Excellent},
		"below optimal":   {2, Excellent},
		"optimal":         {3, Optimal},
		"within maximum":  {5, Acceptable},
		"over maximum":    {6, Inefficient},
		"no bounds given": {0, Excellent},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, grade(tc.commands, sc))
		})
	}
	assert.Equal(t, Acceptable, grade(40, Scoring{}))
}

func TestEvaluateDir(t *testing.T) {
	b := newTestBackend(t)
	require.NoError(t, ioutil.WriteFile(filepath.Join(b.Dir(), ScenarioFile), []byte(`
[scenario]
name = "get-issue"

[expected_outcome]
required_calls = ["get_issue"]
`), 0644))
	b.LogCommand([]string{"issue", "get", "PROJ-1"})
	_, err := b.GetIssue(context.Background(), "PROJ-1")
	require.NoError(t, err)

	r, err := EvaluateDir(b.Dir())
	require.NoError(t, err)
	assert.True(t, r.Success)
	assert.Equal(t, "get-issue", r.Scenario)
	assert.Equal(t, 1, r.Commands)
	assert.Equal(t, 1, r.TotalCalls)
}
