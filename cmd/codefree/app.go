// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/codefree/codefree/internal/config"
	"github.com/codefree/codefree/internal/issue"
	"github.com/codefree/codefree/internal/recovery"
	"github.com/codefree/codefree/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// ConfigProvider loads settings using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// App wires CLI services and shared dependencies. All command handlers
	// receive it and read flags, settings and streams through it.
	App struct {
		Config ConfigProvider
		Clock  recovery.Clock

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		flags rootFlags
	}

	// Dependencies are the injection points for NewApp. Nil fields are
	// replaced with production defaults.
	Dependencies struct {
		Config ConfigProvider
		Clock  recovery.Clock
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// rootFlags holds the persistent flag values.
	rootFlags struct {
		settingsFile string
		dir          string
		verbose      bool
		noDelay      bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Clock == nil {
		deps.Clock = recovery.RealClock{}
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config: deps.Config,
		Clock:  deps.Clock,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{SettingsFilePath: a.flags.settingsFile, Dir: a.flags.dir}
}

// settings loads the effective settings. Load failures are printed with
// the settings issue and returned as a usage exit.
func (a *App) settings(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.flags.verbose))
		if a.flags.verbose {
			a.renderIssue(issue.SettingsLoadFailedId, config.ColorSchemeAuto)
		}
		return nil, &ExitError{Code: types.ExitUsage, Err: err}
	}
	return cfg, nil
}

// verbose reports whether --verbose or ui.verbose is set.
func (a *App) verbose(cfg *config.Config) bool {
	return a.flags.verbose || (cfg != nil && cfg.UI.Verbose)
}

// logger returns the runtime logger: debug level when verbose, warnings
// and errors otherwise.
func (a *App) logger(cfg *config.Config) *log.Logger {
	level := log.WarnLevel
	if a.verbose(cfg) {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// renderIssue writes a catalogued issue to stderr, styled for scheme.
func (a *App) renderIssue(id issue.Id, scheme config.ColorScheme) {
	rendered, err := issue.Get(id).Render(glamourStyle(scheme))
	if err != nil {
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// glamourStyle maps a color scheme to a glamour standard style name.
func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
