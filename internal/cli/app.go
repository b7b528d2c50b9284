// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/mattermost/mattermost-track/backend/github"
	"github.com/mattermost/mattermost-track/backend/gitlab"
	"github.com/mattermost/mattermost-track/backend/jira"
	"github.com/mattermost/mattermost-track/backend/youtrack"
	"github.com/mattermost/mattermost-track/config"
	"github.com/mattermost/mattermost-track/metrics"
	"github.com/mattermost/mattermost-track/mock"
	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/store"
	"github.com/mattermost/mattermost-track/tracker"
	"github.com/mattermost/mattermost-track/transport"
)

// App carries the state of one command line invocation.
type App struct {
	Stdout  io.Writer
	Stderr  io.Writer
	WorkDir string

	argv []string

	backendName string
	output      string
	configFile  string
	url         string
	token       string
	colorMode   string
	verbose     bool
	metricsFile string

	cfg     *config.Config
	printer *Printer
	logger  *mlog.Logger
	metrics *metrics.PrometheusProvider
	store   store.Store
	backend tracker.Backend
}

func NewApp(stdout, stderr io.Writer) *App {
	return &App{Stdout: stdout, Stderr: stderr, WorkDir: "."}
}

func (a *App) jsonOutput() bool {
	return a.output == outputJSON
}

// setup runs before every command: config, logging, output and metrics.
func (a *App) setup(skipMockLog bool) error {
	switch a.output {
	case outputText, outputJSON:
	default:
		return model.NewInvalidInput("output", "expected text or json, got "+a.output)
	}

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := cfg.Log
	if a.verbose {
		logCfg.Level = "debug"
	}
	logger, err := config.SetupLogging(logCfg)
	if err != nil {
		return model.NewIOError(err.Error(), err)
	}
	a.logger = logger

	printer, err := NewPrinter(a.Stdout, a.output, a.colorMode)
	if err != nil {
		return err
	}
	a.printer = printer

	if a.metricsFile != "" {
		a.metrics = metrics.NewPrometheusProvider()
	}
	a.store = store.NewFileStore(a.WorkDir)

	if dir := os.Getenv(mock.DirEnv); dir != "" && !skipMockLog {
		b, err := mock.New(dir)
		if err != nil {
			return err
		}
		b.LogCommand(a.argv)
		a.backend = b
	}
	return nil
}

func (a *App) shutdown() {
	if a.metrics != nil {
		if err := a.metrics.WriteToFile(a.metricsFile); err != nil {
			mlog.Warn("Unable to write metrics file", mlog.String("path", a.metricsFile), mlog.Err(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Shutdown()
	}
}

func (a *App) httpClientOptions(name string) transport.Options {
	opts := transport.Options{
		Backend:     name,
		Timeout:     a.cfg.HTTP.Timeout(),
		RateLimit:   a.cfg.HTTP.RateLimit,
		Burst:       a.cfg.HTTP.Burst,
		CacheSizeMB: a.cfg.HTTP.CacheSizeMB,
	}
	if a.metrics != nil {
		opts.Metrics = a.metrics
	}
	return opts
}

// Backend returns the selected tracker, building it on first use. A
// TRACK_MOCK_DIR in the environment always wins.
func (a *App) Backend() (tracker.Backend, error) {
	if a.backend != nil {
		return a.backend, nil
	}
	if dir := os.Getenv(mock.DirEnv); dir != "" {
		b, err := mock.New(dir)
		if err != nil {
			return nil, err
		}
		a.backend = b
		return b, nil
	}

	name := a.cfg.SelectedBackend(a.backendName)
	a.cfg.ApplyOverrides(name, a.url, a.token)
	if err := a.cfg.Validate(name); err != nil {
		return nil, err
	}

	hc := transport.NewHTTPClient(a.httpClientOptions(name))
	var b tracker.Backend
	switch name {
	case tracker.GitHub:
		client, err := github.NewClient(a.cfg.GitHub.Token, a.cfg.GitHub.URL, hc)
		if err != nil {
			return nil, model.NewInvalidInput("github.url", err.Error())
		}
		b = github.New(client, a.cfg.GitHub.Owner, a.cfg.GitHub.Repo)
	case tracker.GitLab:
		client, err := gitlab.NewClient(a.cfg.GitLab.Token, a.cfg.GitLab.URL, hc)
		if err != nil {
			return nil, model.NewInvalidInput("gitlab.url", err.Error())
		}
		b = gitlab.New(client, a.cfg.GitLab.ProjectID)
	case tracker.Jira:
		b = jira.New(a.cfg.Jira.URL, a.cfg.Jira.Email, a.cfg.Jira.Token, hc)
	case tracker.YouTrack:
		b = youtrack.New(a.cfg.YouTrack.URL, a.cfg.YouTrack.Token, hc)
	default:
		return nil, model.NewInvalidInput("backend", "unknown backend "+name)
	}
	mlog.Debug("Using backend", mlog.String("backend", name))
	a.backend = b
	return b, nil
}

func (a *App) KnowledgeBase() (tracker.KnowledgeBase, error) {
	b, err := a.Backend()
	if err != nil {
		return nil, err
	}
	return tracker.KnowledgeBaseOf(b)
}

// defaultProject picks the -p value, then the saved default, then the
// configured default. It returns "" when none is set.
func (a *App) defaultProject(flag string) (string, error) {
	if p := strings.TrimSpace(flag); p != "" {
		return p, nil
	}
	prefs, err := a.store.Prefs().Get()
	if err != nil {
		return "", err
	}
	if prefs.DefaultProjectID != "" {
		return prefs.DefaultProjectID, nil
	}
	return a.cfg.DefaultProject, nil
}

func (a *App) projectIdentifier(flag string) (string, error) {
	p, err := a.defaultProject(flag)
	if err != nil {
		return "", err
	}
	if p == "" {
		return "", model.NewInvalidInput("project", "is required: pass -p or run track config project <id>")
	}
	return p, nil
}

// resolveProject turns the project flag or default into an opaque id.
func (a *App) resolveProject(ctx context.Context, b tracker.Backend, flag string) (string, error) {
	identifier, err := a.projectIdentifier(flag)
	if err != nil {
		return "", err
	}
	return b.ResolveProjectID(ctx, identifier)
}

// optionalProject is resolveProject for commands where the project only
// narrows the result.
func (a *App) optionalProject(ctx context.Context, b tracker.Backend, flag string) (string, error) {
	identifier, err := a.defaultProject(flag)
	if err != nil || identifier == "" {
		return "", err
	}
	return b.ResolveProjectID(ctx, identifier)
}
