// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/version"
)

const (
	outputText = "text"
	outputJSON = "json"

	// annotationNoMockLog marks commands that must not be recorded in the
	// mock call log.
	annotationNoMockLog = "no-mock-log"
)

// NewRootCmd builds the command tree bound to a.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "track",
		Short: "track - one command line for GitHub, GitLab, Jira and YouTrack issues",
		Long: `track reads and changes issues, projects, tags, links, comments and
knowledge base articles on GitHub, GitLab, Jira and YouTrack through one
set of commands.

Set TRACK_MOCK_DIR to a scenario directory to replay canned responses
instead of calling a tracker.

Example:
  track -b youtrack issue create -p PROJ -s "Login fails"`,
		Version:       version.Current().Release,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, skip := cmd.Annotations[annotationNoMockLog]
			for p := cmd.Parent(); p != nil && !skip; p = p.Parent() {
				_, skip = p.Annotations[annotationNoMockLog]
			}
			return a.setup(skip)
		},
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.backendName, "backend", "b", "", "tracker backend: github, gitlab, jira or youtrack")
	flags.StringVarP(&a.output, "output", "o", outputText, "output format: text or json")
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./.track.toml)")
	flags.StringVar(&a.url, "url", "", "tracker base URL, overrides the config file")
	flags.StringVar(&a.token, "token", "", "tracker API token, overrides the config file")
	flags.StringVar(&a.colorMode, "color", colorAuto, "colorize text output: auto, always or never")
	flags.BoolVar(&a.verbose, "verbose", false, "enable debug logging on stderr")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics for this run to a file")

	root.AddCommand(
		newIssueCmd(a),
		newProjectCmd(a),
		newTagCmd(a),
		newFieldCmd(a),
		newBundleCmd(a),
		newArticleCmd(a),
		newContextCmd(a),
		newConfigCmd(a),
		newCacheCmd(a),
		newEvalCmd(a),
		newVersionCmd(a),
	)
	return root
}

func newVersionCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoMockLog: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Current()
			return a.printer.Render(info, func(w io.Writer) {
				fmt.Fprintln(w, "track "+info.String())
			})
		},
	}
}

// Run executes args and returns the process exit code. Errors are printed
// on stderr, as JSON when -o json is set.
func (a *App) Run(ctx context.Context, args []string) int {
	a.argv = args
	root := NewRootCmd(a)
	root.SetArgs(args)

	start := time.Now()
	cmd, err := root.ExecuteContextC(ctx)
	defer a.shutdown()

	if a.metrics != nil && cmd != nil {
		a.metrics.ObserveCommandDuration(cmd.CommandPath(), time.Since(start).Seconds())
		if err != nil {
			a.metrics.IncreaseCommandErrors(cmd.CommandPath(), errorKind(err))
		}
	}

	if err == nil {
		return ExitOK
	}
	code := ExitCode(ctx, err)
	a.printError(err)
	return code
}

// Execute runs the command line of the current process.
func Execute(ctx context.Context) int {
	return NewApp(os.Stdout, os.Stderr).Run(ctx, os.Args[1:])
}
