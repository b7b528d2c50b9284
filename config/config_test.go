// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
)

const sampleConfig = `
backend = "YouTrack"
default_project = "PROJ"

[youtrack]
url = "https://acme.youtrack.cloud/"
token = "perm:abc"

[jira]
url = "https://acme.atlassian.net"
email = "dev@acme.io"

[http]
rate_limit = 5.0
burst = 10
cache_size_mb = 16

[log]
level = "debug"
json = true
`

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads the file and applies defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, sampleConfig))
		require.NoError(t, err)

		assert.Equal(t, "youtrack", cfg.Backend)
		assert.Equal(t, "PROJ", cfg.DefaultProject)
		assert.Equal(t, "https://acme.youtrack.cloud", cfg.YouTrack.URL)
		assert.Equal(t, "perm:abc", cfg.YouTrack.Token)
		assert.Equal(t, DefaultGitLabURL, cfg.GitLab.URL)
		assert.Equal(t, 5.0, cfg.HTTP.RateLimit)
		assert.Equal(t, 10, cfg.HTTP.Burst)
		assert.Equal(t, 16, cfg.HTTP.CacheSizeMB)
		assert.Equal(t, DefaultTimeoutSeconds, cfg.HTTP.TimeoutSeconds)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.JSON)
		assert.Equal(t, DefaultRefreshSchedule, cfg.Cache.RefreshSchedule)
		assert.NotEmpty(t, cfg.File)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("TRACK_JIRA_TOKEN", "from-env")
		t.Setenv("TRACK_YOUTRACK_TOKEN", "perm:env")
		cfg, err := Load(writeConfig(t, sampleConfig))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Jira.Token)
		assert.Equal(t, "perm:env", cfg.YouTrack.Token)
	})

	t.Run("missing explicit file is an io error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindIO))
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[youtrack\n"))
		require.Error(t, err)
	})
}

func TestSelectedBackend(t *testing.T) {
	cfg := &Config{Backend: tracker.Jira}
	assert.Equal(t, tracker.GitHub, cfg.SelectedBackend("GitHub"))
	assert.Equal(t, tracker.Jira, cfg.SelectedBackend(""))
	assert.Equal(t, tracker.YouTrack, (&Config{}).SelectedBackend(""))
}

func TestApplyOverrides(t *testing.T) {
	cfg := &Config{GitHub: GitHubConfig{Token: "file"}}
	cfg.ApplyOverrides(tracker.GitHub, "https://ghe.acme.io/api/v3/", "flag")
	assert.Equal(t, "flag", cfg.GitHub.Token)
	assert.Equal(t, "https://ghe.acme.io/api/v3", cfg.GitHub.URL)

	cfg.ApplyOverrides(tracker.GitHub, "", "")
	assert.Equal(t, "flag", cfg.GitHub.Token)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	t.Run("complete section", func(t *testing.T) {
		require.NoError(t, cfg.Validate(tracker.YouTrack))
	})

	t.Run("missing field names the key", func(t *testing.T) {
		err := cfg.Validate(tracker.Jira)
		require.Error(t, err)
		te, ok := model.AsTrackerError(err)
		require.True(t, ok)
		assert.Equal(t, model.KindInvalidInput, te.Kind)
		assert.Equal(t, "jira.token", te.Field)
		assert.Contains(t, err.Error(), "TRACK_JIRA_TOKEN")
	})

	t.Run("mock needs nothing", func(t *testing.T) {
		require.NoError(t, (&Config{}).Validate(tracker.Mock))
	})

	t.Run("unknown backend", func(t *testing.T) {
		err := cfg.Validate("bugzilla")
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindInvalidInput))
	})
}

func TestLevelsFrom(t *testing.T) {
	assert.Equal(t, []mlog.Level{mlog.LvlPanic, mlog.LvlFatal, mlog.LvlError, mlog.LvlWarn}, levelsFrom(""))
	assert.Len(t, levelsFrom("debug"), 6)
	assert.Len(t, levelsFrom("ERROR"), 3)

	lc := LoggerConfiguration(LogConfig{Level: "info", JSON: true})
	require.Contains(t, lc, "console")
	assert.Equal(t, "json", lc["console"].Format)
	assert.Len(t, lc["console"].Levels, 5)
}
