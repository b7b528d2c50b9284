// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
)

const (
	// FileName is looked up in the working directory when no --config is given.
	FileName  = ".track.toml"
	EnvPrefix = "TRACK"

	DefaultGitLabURL       = "https://gitlab.com"
	DefaultLogLevel        = "warn"
	DefaultTimeoutSeconds  = 30
	DefaultCacheSizeMB     = 0
	DefaultRefreshSchedule = "@every 1h"
)

type GitHubConfig struct {
	Token string `mapstructure:"token"`
	Owner string `mapstructure:"owner"`
	Repo  string `mapstructure:"repo"`
	URL   string `mapstructure:"url"`
}

type GitLabConfig struct {
	Token     string `mapstructure:"token"`
	URL       string `mapstructure:"url"`
	ProjectID string `mapstructure:"project_id"`
}

type JiraConfig struct {
	URL   string `mapstructure:"url"`
	Email string `mapstructure:"email"`
	Token string `mapstructure:"token"`
}

type YouTrackConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

type HTTPConfig struct {
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	Burst          int     `mapstructure:"burst"`
	CacheSizeMB    int     `mapstructure:"cache_size_mb"`
}

func (c HTTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type CacheConfig struct {
	RefreshSchedule string `mapstructure:"refresh_schedule"`
}

// Config is the decoded .track.toml with TRACK_ environment overrides.
type Config struct {
	Backend        string `mapstructure:"backend"`
	DefaultProject string `mapstructure:"default_project"`

	GitHub   GitHubConfig   `mapstructure:"github"`
	GitLab   GitLabConfig   `mapstructure:"gitlab"`
	Jira     JiraConfig     `mapstructure:"jira"`
	YouTrack YouTrackConfig `mapstructure:"youtrack"`

	HTTP  HTTPConfig  `mapstructure:"http"`
	Log   LogConfig   `mapstructure:"log"`
	Cache CacheConfig `mapstructure:"cache"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// keys registers every setting so that TRACK_ variables apply even when the
// file does not mention them.
var keys = map[string]interface{}{
	"backend":                "",
	"default_project":        "",
	"github.token":           "",
	"github.owner":           "",
	"github.repo":            "",
	"github.url":             "",
	"gitlab.token":           "",
	"gitlab.url":             DefaultGitLabURL,
	"gitlab.project_id":      "",
	"jira.url":               "",
	"jira.email":             "",
	"jira.token":             "",
	"youtrack.url":           "",
	"youtrack.token":         "",
	"http.timeout_seconds":   DefaultTimeoutSeconds,
	"http.rate_limit":        0.0,
	"http.burst":             0,
	"http.cache_size_mb":     DefaultCacheSizeMB,
	"log.level":              DefaultLogLevel,
	"log.json":               false,
	"cache.refresh_schedule": DefaultRefreshSchedule,
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range keys {
		v.SetDefault(key, value)
	}
	return v
}

// Load reads path, or ./.track.toml when path is empty. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := newViper()

	file := path
	if file == "" {
		if _, err := os.Stat(FileName); err == nil {
			file = FileName
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, model.NewIOError("failed to read config "+file, errors.Wrap(err, file))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, model.NewParseError("failed to decode config "+file, err)
	}
	cfg.File = file
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.GitLab.URL == "" {
		c.GitLab.URL = DefaultGitLabURL
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		c.HTTP.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Cache.RefreshSchedule == "" {
		c.Cache.RefreshSchedule = DefaultRefreshSchedule
	}
	c.GitHub.URL = strings.TrimRight(c.GitHub.URL, "/")
	c.GitLab.URL = strings.TrimRight(c.GitLab.URL, "/")
	c.Jira.URL = strings.TrimRight(c.Jira.URL, "/")
	c.YouTrack.URL = strings.TrimRight(c.YouTrack.URL, "/")
}

// ApplyOverrides folds the --url and --token flags into the section of backend.
func (c *Config) ApplyOverrides(backend, url, token string) {
	url = strings.TrimRight(url, "/")
	switch backend {
	case tracker.GitHub:
		setIf(&c.GitHub.URL, url)
		setIf(&c.GitHub.Token, token)
	case tracker.GitLab:
		setIf(&c.GitLab.URL, url)
		setIf(&c.GitLab.Token, token)
	case tracker.Jira:
		setIf(&c.Jira.URL, url)
		setIf(&c.Jira.Token, token)
	case tracker.YouTrack:
		setIf(&c.YouTrack.URL, url)
		setIf(&c.YouTrack.Token, token)
	}
}

func setIf(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// SelectedBackend returns flag, then the configured backend, then youtrack.
func (c *Config) SelectedBackend(flag string) string {
	if b := strings.ToLower(strings.TrimSpace(flag)); b != "" {
		return b
	}
	if c.Backend != "" {
		return c.Backend
	}
	return tracker.YouTrack
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return model.NewInvalidInput(field, "is required (set it in "+FileName+" or TRACK_"+strings.ToUpper(strings.ReplaceAll(field, ".", "_"))+")")
	}
	return nil
}

// Validate checks that the section of backend carries what its adapter needs.
func (c *Config) Validate(backend string) error {
	var checks [][2]string
	switch backend {
	case tracker.GitHub:
		checks = [][2]string{{"github.token", c.GitHub.Token}}
	case tracker.GitLab:
		checks = [][2]string{{"gitlab.token", c.GitLab.Token}}
	case tracker.Jira:
		checks = [][2]string{{"jira.url", c.Jira.URL}, {"jira.email", c.Jira.Email}, {"jira.token", c.Jira.Token}}
	case tracker.YouTrack:
		checks = [][2]string{{"youtrack.url", c.YouTrack.URL}, {"youtrack.token", c.YouTrack.Token}}
	case tracker.Mock:
	default:
		return model.NewInvalidInput("backend", "unknown backend "+backend+", expected one of "+strings.Join(tracker.Names, ", "))
	}
	for _, check := range checks {
		if err := required(check[0], check[1]); err != nil {
			return err
		}
	}
	if c.HTTP.RateLimit < 0 {
		return model.NewInvalidInput("http.rate_limit", "cannot be negative")
	}
	return nil
}
