// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/codefree/codefree/internal/config"
	"github.com/codefree/codefree/pkg/types"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `codefree config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect codefree settings",
		Long: `Inspect codefree settings.

Settings are read from codefree.cue in the working directory (or the file
given with --settings) and may be overridden with CODEFREE_* environment
variables, for example CODEFREE_SHELL_PROMPT or CODEFREE_RECOVERY_DELAY.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the settings file and the resolved data files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfigPath(cmd.Context(), app)
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective settings as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dumpConfig(cmd.Context(), app, format)
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", "cue", "output format (cue, toml)")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}

	out := app.stdout
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(out, TitleStyle.Render("Current Settings"))
	fmt.Fprintln(out)

	if path := config.ResolvePath(app.loadOptions()); path != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Settings file"), path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Settings file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("files"))
	fmt.Fprintf(out, "  config: %s\n", valueStyle.Render(cfg.Files.Config))
	fmt.Fprintf(out, "  codes: %s\n", valueStyle.Render(cfg.Files.Codes))
	fmt.Fprintf(out, "  reason: %s\n", valueStyle.Render(cfg.Files.Reason))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("recovery"))
	fmt.Fprintf(out, "  delay: %s\n", valueStyle.Render(cfg.Recovery.Delay))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("shell"))
	fmt.Fprintf(out, "  prompt: %s\n", valueStyle.Render(fmt.Sprintf("%q", cfg.Shell.Prompt)))
	fmt.Fprintf(out, "  exit_keywords: %s\n", valueStyle.Render(strings.Join(cfg.Shell.ExitKeywords, ", ")))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(out, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))

	return nil
}

func showConfigPath(ctx context.Context, app *App) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}

	settingsPath := config.ResolvePath(app.loadOptions())
	if settingsPath == "" {
		settingsPath = "(none, using defaults)"
	}
	paths := cfg.Paths(app.flags.dir)

	fmt.Fprintf(app.stdout, "Settings file: %s\n", settingsPath)
	fmt.Fprintf(app.stdout, "Configuration file: %s\n", paths.Config)
	fmt.Fprintf(app.stdout, "Codes file: %s\n", paths.Codes)
	fmt.Fprintf(app.stdout, "Reason log: %s\n", paths.Reason)
	return nil
}

func dumpConfig(ctx context.Context, app *App, format string) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}

	switch format {
	case "cue":
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
	case "toml":
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(app.stdout, out)
	default:
		return &ExitError{
			Code: types.ExitUsage,
			Err:  fmt.Errorf("unknown format %q (valid: cue, toml)", format),
		}
	}
	return nil
}
