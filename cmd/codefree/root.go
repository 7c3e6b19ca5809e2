// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/codefree/codefree/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app. Running the root
// command without a subcommand starts a session, like `codefree run`.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codefree",
		Short: "A configuration-driven command dispatcher",
		Long: TitleStyle.Render("codefree") + SubtitleStyle.Render(" - A configuration-driven command dispatcher") + `

codefree reads command bindings from a plain text configuration file,
compiles them into an encoded codes file, and runs an interactive loop
that maps the first word of each line to a builtin.

` + SubtitleStyle.Render("Configuration lines:") + `
  1 greet=function{print}     'greet hello' prints hello
  2 ask=function{input}       'ask Name? ' reads and echoes an answer

` + SubtitleStyle.Render("Examples:") + `
  codefree                  Compile and start the command loop
  codefree compile -v       Compile and show skipped lines
  codefree decompile        Show the bindings in the codes file
  codefree builtins         List the available builtins`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd.Context(), app)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.settingsFile, "settings", "", "settings file (default is ./codefree.cue when present)")
	flags.StringVar(&app.flags.dir, "dir", "", "directory holding the configuration, codes and reason files (default is the working directory)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVar(&app.flags.noDelay, "no-delay", false, "skip the pauses of the recovery narrative")

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(
		newRunCommand(app),
		newCompileCommand(app),
		newDecompileCommand(app),
		newInitCommand(app),
		newBuiltinsCommand(app),
		newConfigCommand(app),
		newIssuesCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI against the process streams. It is called by
// main.main().
func Execute() {
	app := NewApp(Dependencies{})

	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if code := exitCode(err); !code.IsSuccess() {
		os.Exit(int(code))
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors get their suggestions; verbose mode adds the chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
