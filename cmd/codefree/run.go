// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"

	"github.com/codefree/codefree/internal/app/startup"
	"github.com/codefree/codefree/internal/console"
	"github.com/codefree/codefree/internal/issue"
	"github.com/codefree/codefree/internal/recovery"

	"github.com/spf13/cobra"
)

func newRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Compile the configuration and start the command loop",
		Long: `Compile the configuration and start the command loop.

The configuration file is created with a placeholder when absent and is
recompiled into the codes file on every start. When the codes file cannot
be produced, a recovery sequence runs instead of the loop and the program
exits; run it again afterwards.

Type 'sair' or 'exit' (or one of shell.exit_keywords) to leave the loop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd.Context(), app)
		},
	}
}

// runSession runs one startup sequence. Both recovery outcomes and a
// normal loop exit map to a zero exit code.
func runSession(ctx context.Context, app *App) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}

	runner, err := startup.NewRunner(startup.Options{
		Settings: cfg,
		Dir:      app.flags.dir,
		NoDelay:  app.flags.noDelay,
		Console:  console.New(app.stdin, app.stdout),
		Clock:    app.Clock,
		Logger:   app.logger(cfg),
	})
	if err != nil {
		return err
	}

	res, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	if !app.verbose(cfg) {
		return nil
	}
	switch {
	case res.Phase == startup.PhaseRecovery && res.Outcome == recovery.OutcomeFailedNoConfig:
		app.renderIssue(issue.ConfigMissingId, cfg.UI.ColorScheme)
	case res.Phase == startup.PhaseRecovery && res.Outcome == recovery.OutcomeFailedWriteError:
		app.renderIssue(issue.CodesWriteFailedId, cfg.UI.ColorScheme)
	case res.Phase == startup.PhaseRecovery:
		app.renderIssue(issue.CodesMissingId, cfg.UI.ColorScheme)
	case res.Report.DecodeErr != nil:
		app.renderIssue(issue.CodesDecodeFailedId, cfg.UI.ColorScheme)
	}
	return nil
}
