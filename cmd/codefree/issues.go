// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/codefree/codefree/internal/issue"
	"github.com/codefree/codefree/pkg/types"

	"github.com/spf13/cobra"
)

func newIssuesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "issues [id]",
		Short: "List known problems or explain one of them",
		Long: `List known problems or explain one of them.

Without an argument, every catalogued problem is listed with its id.
With an id, the full explanation and suggested fixes are shown.`,
		Example: `  codefree issues
  codefree issues 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				listIssues(app)
				return nil
			}
			return explainIssue(cmd.Context(), app, args[0])
		},
	}
}

func listIssues(app *App) {
	fmt.Fprintln(app.stdout, TitleStyle.Render("Known issues"))
	for _, i := range issue.Values() {
		fmt.Fprintf(app.stdout, "  %s %s\n", CmdStyle.Render(fmt.Sprintf("%2d", i.Id())), i.Title())
	}
}

func explainIssue(ctx context.Context, app *App, arg string) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(arg)
	var found *issue.Issue
	if err == nil {
		found = issue.Get(issue.Id(n))
	}
	if found == nil {
		fmt.Fprintln(app.stderr, ErrorStyle.Render(fmt.Sprintf("unknown issue %q; run 'codefree issues' for the list", arg)))
		return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("unknown issue %q", arg)}
	}

	rendered, err := found.Render(glamourStyle(cfg.UI.ColorScheme))
	if err != nil {
		return fmt.Errorf("render issue %d: %w", found.Id(), err)
	}
	fmt.Fprint(app.stdout, rendered)
	return nil
}
