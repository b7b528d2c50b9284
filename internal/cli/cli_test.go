// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/mock"
	"github.com/mattermost/mattermost-track/store"
)

// copyScenario copies testdata/<name> into a temporary directory so that
// the call log never lands in the source tree.
func copyScenario(t *testing.T, name string) string {
	t.Helper()
	src := filepath.Join("testdata", name)
	dst := t.TempDir()
	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		return ioutil.WriteFile(target, data, 0644)
	})
	require.NoError(t, err)
	return dst
}

type harness struct {
	t       *testing.T
	mockDir string
	workDir string
}

func newHarness(t *testing.T) *harness {
	h := &harness{t: t, mockDir: copyScenario(t, "basic"), workDir: t.TempDir()}
	t.Setenv(mock.DirEnv, h.mockDir)
	return h
}

func (h *harness) run(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	a := NewApp(&stdout, &stderr)
	a.WorkDir = h.workDir
	code := a.Run(context.Background(), args)
	return stdout.String(), stderr.String(), code
}

func (h *harness) ops() []string {
	entries, err := mock.ReadCallLog(h.mockDir)
	require.NoError(h.t, err)
	ops := make([]string, 0, len(entries))
	for _, e := range entries {
		ops = append(ops, e.Op)
	}
	return ops
}

func count(ops []string, op string) int {
	n := 0
	for _, o := range ops {
		if o == op {
			n++
		}
	}
	return n
}

func indexOf(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return -1
}

func TestIssueCommands(t *testing.T) {
	t.Run("Should print an issue and log one lookup", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("issue", "get", "DEMO-1")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "Demo")
		assert.Contains(t, out, "open")

		ops := h.ops()
		assert.Equal(t, []string{mock.OpCLI, "get_issue"}, ops)

		entries, err := mock.ReadCallLog(h.mockDir)
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"issue", "get", "DEMO-1"}, entries[0].Args["argv"])
	})

	t.Run("Should accept the issue alias", func(t *testing.T) {
		h := newHarness(t)
		_, _, code := h.run("i", "get", "DEMO-1")
		assert.Equal(t, ExitOK, code)
	})

	t.Run("Should resolve the project before creating", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("issue", "create", "-p", "PROJ", "-s", "Hello")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "PROJ-42")

		ops := h.ops()
		resolve, create := indexOf(ops, "resolve_project_id"), indexOf(ops, "create_issue")
		require.NotEqual(t, -1, resolve)
		require.NotEqual(t, -1, create)
		assert.Less(t, resolve, create)
	})

	t.Run("Should fail with exit 1 for a missing issue", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("issue", "get", "MISSING")
		assert.Equal(t, ExitUser, code)
		assert.Empty(t, out)
		assert.Contains(t, stderr, "Issue not found: MISSING")
	})

	t.Run("Should write JSON errors in JSON mode", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("-o", "json", "issue", "get", "MISSING")
		assert.Equal(t, ExitUser, code)

		var payload struct {
			Error struct {
				Kind    string `json:"kind"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal([]byte(stderr), &payload))
		assert.Equal(t, "issue_not_found", payload.Error.Kind)
		assert.Equal(t, "Issue not found: MISSING", payload.Error.Message)
	})

	t.Run("Should exit 2 when the tracker rejects the credentials", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("issue", "get", "LOCKED-1")
		assert.Equal(t, ExitAuth, code)
		assert.Contains(t, stderr, "Authentication failed")
	})

	t.Run("Should require a summary", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("issue", "create", "-p", "PROJ")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr, "summary")
		assert.Equal(t, 0, count(h.ops(), "create_issue"))
	})

	t.Run("Should reject an update without changes", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("issue", "update", "DEMO-1")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr, "no fields to change")
	})

	t.Run("Should qualify searches with the project", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("issue", "search", "bug", "-p", "PROJ", "--limit", "1")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "PROJ-1")
		assert.NotContains(t, out, "PROJ-2")

		entries, err := mock.ReadCallLog(h.mockDir)
		require.NoError(t, err)
		last := entries[len(entries)-1]
		assert.Equal(t, "search_issues", last.Op)
		assert.Equal(t, "project: PROJ bug", last.Args["query"])
	})

	t.Run("Should list link types", func(t *testing.T) {
		h := newHarness(t)
		out, _, code := h.run("issue", "link-types")
		assert.Equal(t, ExitOK, code)
		assert.Contains(t, out, "Relates")
	})
}

func TestProjectCommands(t *testing.T) {
	t.Run("Should list projects as JSON", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("-o", "json", "project", "list")
		require.Equal(t, ExitOK, code, stderr)

		var projects []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &projects))
		require.Len(t, projects, 2)
		for _, p := range projects {
			assert.Contains(t, p, "id")
			assert.Contains(t, p, "short_name")
			assert.Contains(t, p, "name")
		}
		assert.Equal(t, "PROJ", projects[0]["short_name"])
	})

	t.Run("Should resolve a short name through the project list", func(t *testing.T) {
		h := newHarness(t)
		out, _, code := h.run("project", "resolve", "DEMO")
		assert.Equal(t, ExitOK, code)
		assert.Equal(t, "0-2\n", out)
		assert.Equal(t, 1, count(h.ops(), "list_projects"))
	})

	t.Run("Should report an unknown project", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("project", "resolve", "NOPE")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr, "Project not found: NOPE")
	})

	t.Run("Should list custom fields", func(t *testing.T) {
		h := newHarness(t)
		out, _, code := h.run("project", "fields", "PROJ")
		assert.Equal(t, ExitOK, code)
		assert.Contains(t, out, "Priority")
		assert.Contains(t, out, "Normal, Major")
	})
}

func TestTagCommands(t *testing.T) {
	h := newHarness(t)

	out, stderr, code := h.run("tag", "create", "-n", "urgent", "-c", "#FC2929")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "urgent")
	assert.Contains(t, out, "#fc2929")

	t.Run("Should log the normalized color", func(t *testing.T) {
		f, err := os.Open(filepath.Join(h.mockDir, mock.CallLogFile))
		require.NoError(t, err)
		defer f.Close()

		var created map[string]interface{}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			var line struct {
				Op   string                 `json:"op"`
				Args map[string]interface{} `json:"args"`
			}
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
			if line.Op == "create_tag" {
				created = line.Args
			}
		}
		require.NoError(t, scanner.Err())
		require.NotNil(t, created, "create_tag was not logged")
		assert.Equal(t, "urgent", created["name"])
		assert.Equal(t, "fc2929", created["color"])
	})

	out, stderr, code = h.run("-o", "json", "tags", "list")
	require.Equal(t, ExitOK, code, stderr)
	var tags []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "urgent", tags[1]["name"])
	assert.Equal(t, "fc2929", tags[1]["color"])

	_, stderr, code = h.run("tag", "create", "-n", "bad", "-c", "red")
	assert.Equal(t, ExitUser, code)
	assert.Contains(t, stderr, "color")
}

func TestConfigCommands(t *testing.T) {
	h := newHarness(t)

	out, stderr, code := h.run("config", "project", "PROJ")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "PROJ")

	out, _, code = h.run("-o", "json", "cfg", "show")
	require.Equal(t, ExitOK, code)
	var prefs store.Prefs
	require.NoError(t, json.Unmarshal([]byte(out), &prefs))
	assert.Equal(t, store.Prefs{DefaultProjectID: "0-1", DefaultProjectName: "PROJ"}, prefs)

	t.Run("Should create in the default project without -p", func(t *testing.T) {
		out, stderr, code := h.run("issue", "create", "-s", "Hello")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "PROJ-42")
	})

	out, _, code = h.run("config", "path")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, filepath.Join(h.workDir, store.PrefsFile)+"\n", out)

	_, _, code = h.run("config", "clear")
	require.Equal(t, ExitOK, code)
	_, err := os.Stat(filepath.Join(h.workDir, store.PrefsFile))
	assert.True(t, os.IsNotExist(err))

	t.Run("Should require a project once the default is cleared", func(t *testing.T) {
		_, stderr, code := h.run("issue", "create", "-s", "Hello")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr, "project")
	})
}

func TestCacheCommands(t *testing.T) {
	h := newHarness(t)

	out, _, code := h.run("cache", "show")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "No cache")

	out, stderr, code := h.run("cache", "refresh")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "PROJ")
	assert.Contains(t, out, "2 tags, 1 link types")
	assert.Equal(t, 2, count(h.ops(), "get_project_custom_fields"))

	_, err := os.Stat(filepath.Join(h.workDir, store.CacheFile))
	require.NoError(t, err)

	t.Run("Should skip a fresh cache", func(t *testing.T) {
		before := count(h.ops(), "list_projects")
		_, _, code := h.run("cache", "refresh", "--if-stale")
		require.Equal(t, ExitOK, code)
		assert.Equal(t, before, count(h.ops(), "list_projects"))
	})

	out, _, code = h.run("-o", "json", "cache", "show")
	require.Equal(t, ExitOK, code)
	var c store.TrackerCache
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "mock", c.Backend)
	assert.Len(t, c.Projects, 2)
}

func TestEvalCommands(t *testing.T) {
	h := newHarness(t)
	_, _, code := h.run("issue", "get", "DEMO-1")
	require.Equal(t, ExitOK, code)

	out, stderr, code := h.run("-o", "json", "eval", "run", h.mockDir)
	require.Equal(t, ExitOK, code, stderr)
	var report mock.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Success)
	assert.Equal(t, "basic", report.Scenario)
	assert.Equal(t, 1, report.Commands)
	assert.Equal(t, mock.Optimal, report.Efficiency)
	assert.Empty(t, report.Missing)

	// eval commands stay out of the call log
	assert.Equal(t, 1, count(h.ops(), mock.OpCLI))

	out, _, code = h.run("eval", "list", filepath.Dir(h.mockDir))
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "basic")

	_, _, code = h.run("eval", "clear", h.mockDir)
	require.Equal(t, ExitOK, code)
	assert.Empty(t, h.ops())
}

func TestGlobalFlags(t *testing.T) {
	t.Run("Should reject an unknown output format", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("-o", "yaml", "project", "list")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr, "output")
	})

	t.Run("Should reject an unknown color mode", func(t *testing.T) {
		h := newHarness(t)
		_, _, code := h.run("--color", "sometimes", "project", "list")
		assert.Equal(t, ExitUser, code)
	})

	t.Run("Should validate the backend configuration", func(t *testing.T) {
		t.Setenv(mock.DirEnv, "")
		var stdout, stderr bytes.Buffer
		a := NewApp(&stdout, &stderr)
		a.WorkDir = t.TempDir()
		code := a.Run(context.Background(), []string{"-b", "jira", "--config", writeConfig(t, ""), "issue", "get", "X-1"})
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr.String(), "jira.url")
	})

	t.Run("Should write a metrics file", func(t *testing.T) {
		h := newHarness(t)
		path := filepath.Join(t.TempDir(), "track.prom")
		_, _, code := h.run("--metrics-file", path, "issue", "get", "DEMO-1")
		require.Equal(t, ExitOK, code)
		data, err := ioutil.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "track issue get")
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func lastCall(t *testing.T, h *harness, op string) *mock.Entry {
	t.Helper()
	entries, err := mock.ReadCallLog(h.mockDir)
	require.NoError(t, err)
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Op == op {
			return entries[i]
		}
	}
	require.FailNow(t, op+" was not logged")
	return nil
}

func TestIssueWorkflowCommands(t *testing.T) {
	t.Run("Should count issues in the project", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("issue", "count", "#Unresolved", "-p", "PROJ")
		require.Equal(t, ExitOK, code, stderr)
		assert.Equal(t, "3\n", out)
		assert.Equal(t, "project: PROJ #Unresolved", lastCall(t, h, "get_issue_count").Args["query"])
	})

	t.Run("Should start an issue in progress", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("issue", "start", "DEMO-1")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "DEMO-1")
		assert.Contains(t, out, "In Progress")
		assert.Equal(t, "In Progress", lastCall(t, h, "update_issue").Args["state"])
	})

	t.Run("Should write the state to a custom field", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("issue", "start", "DEMO-1", "--field", "Stage", "--state", "Develop")
		require.Equal(t, ExitOK, code, stderr)
		args := lastCall(t, h, "update_issue").Args
		assert.NotContains(t, args, "state")
		assert.Equal(t, []interface{}{"Stage"}, args["fields"])
	})

	t.Run("Should complete every issue and report the failures", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("issue", "done", "DEMO-1,MISSING")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, out, "DEMO-1")
		assert.Contains(t, out, "failed")
		assert.Contains(t, stderr, "1 of 2 issues failed")
		assert.Equal(t, 2, count(h.ops(), "update_issue"))
	})

	t.Run("Should report each result as JSON", func(t *testing.T) {
		h := newHarness(t)
		out, _, code := h.run("-o", "json", "issue", "complete", "DEMO-1", "DEMO-1")
		require.Equal(t, ExitOK, code)
		var results []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		require.Len(t, results, 1)
		assert.Equal(t, "DEMO-1", results[0]["id"])
		assert.Equal(t, "closed", lastCall(t, h, "update_issue").Args["state"])
	})
}

func TestFieldCommands(t *testing.T) {
	t.Run("Should list field definitions", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("field", "list")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "Priority")
		assert.Contains(t, out, "Estimation")
	})

	t.Run("Should create the bundle before the field and attach both", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("field", "new", "-n", "Stage", "--type", "state", "-p", "PROJ",
			"--value", "Develop,Review,Done", "--resolved", "Done")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "Attached")

		ops := h.ops()
		bundle, field, attach := indexOf(ops, "create_bundle"), indexOf(ops, "create_custom_field"), indexOf(ops, "attach_field")
		require.NotEqual(t, -1, bundle)
		assert.Less(t, bundle, field)
		assert.Less(t, field, attach)
		assert.Equal(t, []interface{}{"Develop", "Review", "Done"}, lastCall(t, h, "create_bundle").Args["values"])
		assert.Equal(t, "58-2", lastCall(t, h, "attach_field").Args["field_id"])
	})

	t.Run("Should require values for a state field", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("field", "new", "-n", "Stage", "--type", "state", "-p", "PROJ")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr, "value")
		assert.Equal(t, 0, count(h.ops(), "create_custom_field"))
	})

	t.Run("Should reject an unknown field type", func(t *testing.T) {
		h := newHarness(t)
		_, _, code := h.run("field", "create", "-n", "Stage", "--type", "color")
		assert.Equal(t, ExitUser, code)
		assert.Equal(t, 0, count(h.ops(), "create_custom_field"))
	})
}

func TestBundleCommands(t *testing.T) {
	t.Run("Should list bundles of a type", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("bundle", "list", "--type", "State")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "States")
		assert.Contains(t, out, "Fixed")
		assert.Equal(t, "state", lastCall(t, h, "list_bundles").Args["bundle_type"])
	})

	t.Run("Should create a state bundle as JSON", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("-o", "json", "bundle", "create", "-n", "Stage", "--type", "state",
			"--value", "Develop", "--value", "Review", "--value", "Done", "--resolved", "Done")
		require.Equal(t, ExitOK, code, stderr)
		var bundle struct {
			ID     string `json:"id"`
			Values []struct {
				Name     string `json:"name"`
				Resolved bool   `json:"resolved"`
			} `json:"values"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &bundle))
		assert.Equal(t, "71-2", bundle.ID)
		require.Len(t, bundle.Values, 3)
		assert.True(t, bundle.Values[2].Resolved)
	})

	t.Run("Should add values one call at a time", func(t *testing.T) {
		h := newHarness(t)
		out, stderr, code := h.run("bundle", "add-value", "71-2", "--type", "state", "--value", "QA,Staging")
		require.Equal(t, ExitOK, code, stderr)
		assert.Contains(t, out, "QA")
		assert.Equal(t, 2, count(h.ops(), "add_bundle_values"))
	})

	t.Run("Should reject an unknown bundle type", func(t *testing.T) {
		h := newHarness(t)
		_, stderr, code := h.run("bundle", "list", "--type", "colors")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr, "bundle_type")
		assert.Equal(t, 0, count(h.ops(), "list_bundles"))
	})
}

func TestContextCommand(t *testing.T) {
	h := newHarness(t)

	out, stderr, code := h.run("context", "-p", "PROJ")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "Project: PROJ")
	assert.Contains(t, out, "Priority")
	assert.Contains(t, out, "Relates")
	assert.Equal(t, 1, count(h.ops(), "list_projects"))

	_, err := os.Stat(filepath.Join(h.workDir, store.CacheFile))
	require.NoError(t, err)

	t.Run("Should read a fresh cache without calling the tracker", func(t *testing.T) {
		out, stderr, code := h.run("-o", "json", "context", "-p", "DEMO")
		require.Equal(t, ExitOK, code, stderr)
		assert.Equal(t, 1, count(h.ops(), "list_projects"))

		var c trackerContext
		require.NoError(t, json.Unmarshal([]byte(out), &c))
		require.NotNil(t, c.Project)
		assert.Equal(t, "0-2", c.Project.ID)
		assert.Len(t, c.Projects, 2)
	})

	t.Run("Should refresh on demand and include issues", func(t *testing.T) {
		out, stderr, code := h.run("context", "-p", "PROJ", "--refresh", "--include-issues", "--limit", "1")
		require.Equal(t, ExitOK, code, stderr)
		assert.Equal(t, 2, count(h.ops(), "list_projects"))
		assert.Contains(t, out, "PROJ-1")
		assert.Equal(t, "project: PROJ", lastCall(t, h, "search_issues").Args["query"])
	})

	t.Run("Should report a project missing from the cache", func(t *testing.T) {
		_, stderr, code := h.run("context", "-p", "NOPE")
		assert.Equal(t, ExitUser, code)
		assert.Contains(t, stderr, "Project not found: NOPE")
	})
}
