// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/codefree/codefree/internal/builtin"
	"github.com/codefree/codefree/internal/codes"
	"github.com/codefree/codefree/internal/console"
	"github.com/codefree/codefree/internal/issue"

	"github.com/spf13/cobra"
)

func newDecompileCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decompile",
		Short: "Show the bindings stored in the codes file",
		Long: `Show the bindings stored in the codes file.

Bindings whose builtin is not available are marked; the command loop
drops them when loading.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return decompileCodes(cmd.Context(), app)
		},
	}
}

func decompileCodes(ctx context.Context, app *App) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}
	codesPath := cfg.Paths(app.flags.dir).Codes

	if !codes.Exists(codesPath) {
		app.renderIssue(issue.CodesMissingId, cfg.UI.ColorScheme)
		return issue.NewErrorContext().
			WithOperation("read codes").
			WithResource(codesPath).
			WithSuggestion("Run 'codefree compile' to create it").
			Wrap(fmt.Errorf("codes file not found")).
			BuildError()
	}

	res, err := codes.DecompileFile(codesPath)
	if err != nil {
		app.renderIssue(issue.CodesDecodeFailedId, cfg.UI.ColorScheme)
		return issue.WrapWithContext(err, "decode codes", codesPath)
	}

	// Only names are looked up; the builtins are never invoked here.
	reg := builtin.Standard(builtin.IO{Console: console.New(strings.NewReader(""), io.Discard)})

	out := app.stdout
	fmt.Fprintln(out, TitleStyle.Render("Bindings in "+codesPath))
	if res.Bindings.Len() == 0 {
		fmt.Fprintf(out, "  %s\n", SubtitleStyle.Render("(no bindings)"))
	}
	for _, b := range res.Bindings.All() {
		if _, ok := reg.Lookup(b.Builtin); ok {
			fmt.Fprintf(out, "  %s %s -> %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(b.Command), b.Builtin)
		} else {
			fmt.Fprintf(out, "  %s %s -> %s %s\n", WarningStyle.Render("✗"), CmdStyle.Render(b.Command), b.Builtin,
				WarningStyle.Render("(unknown builtin, dropped when loading)"))
		}
	}

	if app.verbose(cfg) {
		for _, s := range res.Skipped {
			fmt.Fprintf(out, "  %s\n", VerboseStyle.Render(fmt.Sprintf("line %d skipped: %s", s.Line, s.Text)))
		}
	}
	return nil
}
