// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/codefree/codefree/internal/codes"
	"github.com/codefree/codefree/internal/config"
	"github.com/codefree/codefree/internal/issue"
	"github.com/codefree/codefree/internal/source"
	"github.com/codefree/codefree/internal/watch"

	"github.com/spf13/cobra"
)

func newCompileCommand(app *App) *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the configuration file into the codes file",
		Long: `Compile the configuration file into the codes file.

Compiling the same configuration always produces the same codes file.
With --verbose, lines that produced no binding are listed with the reason.
With --watch, the codes file is recompiled whenever the configuration file
changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watchMode {
				return watchCodes(cmd.Context(), app)
			}
			return compileCodes(cmd.Context(), app)
		},
	}
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "recompile whenever the configuration file changes")
	return cmd
}

func compileCodes(ctx context.Context, app *App) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}
	paths := cfg.Paths(app.flags.dir)

	created, err := source.EnsureDefault(paths.Config)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("create default configuration").
			WithResource(paths.Config).
			WithSuggestion("Check that the path is a writable file location").
			Wrap(err).
			BuildError()
	}
	if created {
		fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), paths.Config)
	}
	return compileOnce(app, cfg, paths)
}

func compileOnce(app *App, cfg *config.Config, paths config.Paths) error {
	out := app.stdout
	res, err := codes.CompileFile(paths.Config, paths.Codes)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("compile codes").
			WithResource(paths.Codes).
			WithSuggestion("Check that the directory of the codes file exists and is writable").
			WithSuggestion("Set files.codes in codefree.cue to another location").
			Wrap(err).
			BuildError()
	}

	fmt.Fprintf(out, "%s Compiled %d binding(s) from %s into %s\n",
		SuccessStyle.Render("✓"), res.Bindings.Len(),
		CmdStyle.Render(filepath.Base(paths.Config)), CmdStyle.Render(filepath.Base(paths.Codes)))

	if app.verbose(cfg) {
		for _, s := range res.Skipped {
			if s.IsNoise() {
				continue
			}
			fmt.Fprintf(out, "  %s\n", VerboseStyle.Render(fmt.Sprintf("line %d skipped (%s): %s", s.Line, s.Reason, s.Text)))
		}
	}
	return nil
}

// watchCodes compiles once, then recompiles on every change to the
// configuration file until ctx is canceled. Compile failures while watching
// are reported and do not stop the watch.
func watchCodes(ctx context.Context, app *App) error {
	if err := compileCodes(ctx, app); err != nil {
		return err
	}
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}
	paths := cfg.Paths(app.flags.dir)

	w, err := watch.New(watch.Config{
		Dir:      filepath.Dir(paths.Config),
		Patterns: []string{filepath.Base(paths.Config)},
		Logger:   app.logger(cfg),
		OnChange: func(_ context.Context, _ []string) error {
			if err := compileOnce(app, cfg, paths); err != nil {
				fmt.Fprintln(app.stderr, formatErrorForDisplay(err, app.verbose(cfg)))
			}
			return nil
		},
	})
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("watch configuration").
			WithResource(paths.Config).
			Wrap(err).
			BuildError()
	}

	fmt.Fprintf(app.stdout, "%s Watching %s for changes (Ctrl-C to stop)\n",
		SubtitleStyle.Render("→"), CmdStyle.Render(filepath.Base(paths.Config)))
	return w.Run(ctx)
}
