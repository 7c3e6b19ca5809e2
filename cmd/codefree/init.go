// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/codefree/codefree/internal/issue"
	"github.com/codefree/codefree/internal/source"

	"github.com/spf13/cobra"
)

func newInitCommand(app *App) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Long: `Create the default configuration file.

The file starts with an import directive and a placeholder line. Add one
binding per line in the form:

  <label> <command>=function{<builtin>}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfiguration(cmd.Context(), app, force)
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")

	return initCmd
}

func initConfiguration(ctx context.Context, app *App, force bool) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}
	path := cfg.Paths(app.flags.dir).Config

	if _, statErr := os.Stat(path); statErr == nil && !force {
		return issue.NewErrorContext().
			WithOperation("create configuration").
			WithResource(path).
			WithSuggestion("Use --force to overwrite it with the default document").
			Wrap(fmt.Errorf("file already exists")).
			BuildError()
	}

	if err := source.WriteDefault(path); err != nil {
		return issue.WrapWithContext(err, "create configuration", path)
	}

	fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
