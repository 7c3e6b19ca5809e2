// SPDX-License-Identifier: MPL-2.0

package startup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/codefree/codefree/internal/builtin"
	"github.com/codefree/codefree/internal/codes"
	"github.com/codefree/codefree/internal/config"
	"github.com/codefree/codefree/internal/console"
	"github.com/codefree/codefree/internal/dispatch"
	"github.com/codefree/codefree/internal/recovery"
	"github.com/codefree/codefree/internal/source"

	"github.com/charmbracelet/log"
)

const (
	// PhaseRecovery means the artifact was missing and the recovery
	// workflow ran instead of the command loop.
	PhaseRecovery Phase = iota + 1
	// PhaseLoop means the artifact was present and the command loop ran.
	PhaseLoop
)

// ErrInvalidOptions is the sentinel wrapped by InvalidOptionsError.
var ErrInvalidOptions = errors.New("invalid startup options")

type (
	// Phase is the branch a session ended in.
	Phase int

	// Options configures a Runner.
	//
	// Settings and Console are required. Registry defaults to the standard
	// builtins bound to Console, Clock to recovery.RealClock and Logger to a
	// discarding logger.
	Options struct {
		Settings *config.Config
		// Dir resolves relative file names from Settings.
		Dir string
		// NoDelay disables the recovery narrative pauses.
		NoDelay bool

		Console  *console.Console
		Registry *builtin.Registry
		Clock    recovery.Clock
		Logger   *log.Logger
	}

	// InvalidOptionsError collects Options validation failures.
	InvalidOptionsError struct {
		FieldErrors []error
	}

	// Runner executes the startup sequence.
	Runner struct {
		paths        config.Paths
		delay        time.Duration
		prompt       string
		exitKeywords []string

		console  *console.Console
		registry *builtin.Registry
		clock    recovery.Clock
		logger   *log.Logger
	}

	// Result summarizes a session.
	Result struct {
		Phase Phase
		// ConfigCreated is set when the default configuration was written.
		ConfigCreated bool
		// Compiled is the parse result of the startup compile.
		Compiled source.ParseResult
		// CompileErr is the startup compile failure, if any.
		CompileErr error
		// Outcome is set in PhaseRecovery.
		Outcome recovery.Outcome
		// Report is set in PhaseLoop.
		Report dispatch.LoadReport
	}
)

// NewRunner validates opts and resolves file paths and delays.
func NewRunner(opts Options) (*Runner, error) {
	var errs []error
	if opts.Settings == nil {
		errs = append(errs, errors.New("settings must not be nil"))
	}
	if opts.Console == nil {
		errs = append(errs, errors.New("console must not be nil"))
	}
	var delay time.Duration
	if opts.Settings != nil {
		d, err := opts.Settings.RecoveryDelay()
		if err != nil {
			errs = append(errs, err)
		}
		delay = d
	}
	if len(errs) > 0 {
		return nil, &InvalidOptionsError{FieldErrors: errs}
	}

	if opts.NoDelay {
		delay = 0
	}

	r := &Runner{
		paths:        opts.Settings.Paths(opts.Dir),
		delay:        delay,
		prompt:       opts.Settings.Shell.Prompt,
		exitKeywords: opts.Settings.Shell.ExitKeywords,
		console:      opts.Console,
		registry:     opts.Registry,
		clock:        opts.Clock,
		logger:       opts.Logger,
	}
	if r.registry == nil {
		r.registry = builtin.Standard(builtin.IO{Console: opts.Console})
	}
	if r.clock == nil {
		r.clock = recovery.RealClock{}
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r, nil
}

// Error implements the error interface.
func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("invalid startup options: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidOptions for errors.Is.
func (e *InvalidOptionsError) Unwrap() error { return ErrInvalidOptions }

// Paths returns the resolved file locations.
func (r *Runner) Paths() config.Paths { return r.paths }

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRecovery:
		return "recovery"
	case PhaseLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Run performs the sequence:
//
//  1. create the default configuration file if it is absent
//  2. recompile the artifact from the configuration file, unconditionally
//  3. if the artifact is missing, run recovery and return
//  4. otherwise load the artifact and run the command loop
//
// Step 2 runs before the presence check, so the recovery branch is only
// reached when that compile failed to write the artifact. Failures in steps
// 1 and 2 are logged and the sequence continues. The returned error is
// non-nil only for context cancellation or an unreadable input stream.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var res Result

	created, err := source.EnsureDefault(r.paths.Config)
	if err != nil {
		r.logger.Error("failed to create default configuration", "path", r.paths.Config, "err", err)
	}
	if created {
		res.ConfigCreated = true
		name := filepath.Base(r.paths.Config)
		r.console.Printf("File '%s' not found. Creating default file...\n", name)
		r.console.Printf("File '%s' created.\n\n", name)
	}

	res.Compiled, res.CompileErr = codes.CompileFile(r.paths.Config, r.paths.Codes)
	if res.CompileErr != nil {
		r.logger.Warn("failed to compile codes artifact", "codes", r.paths.Codes, "err", res.CompileErr)
	} else {
		r.logger.Debug("compiled codes artifact",
			"bindings", res.Compiled.Bindings.Len(), "skipped", len(res.Compiled.Skipped))
		r.console.Printf("File '%s' generated successfully from '%s'.\n\n",
			filepath.Base(r.paths.Codes), filepath.Base(r.paths.Config))
	}

	if recovery.Check(r.paths.Codes) == recovery.StateMissing {
		res.Phase = PhaseRecovery
		res.Outcome, err = r.recover(ctx)
		return res, err
	}

	res.Phase = PhaseLoop
	r.console.Printf("File '%s' found. The program will continue normally.\n\n", filepath.Base(r.paths.Codes))

	table, report, err := dispatch.NewLoader(r.registry, r.logger).LoadFile(r.paths.Codes)
	if err != nil {
		r.logger.Error("failed to read codes artifact, no commands loaded", "err", err)
		table = dispatch.Table{}
		report = dispatch.LoadReport{DecodeErr: err}
	}
	res.Report = report

	d := dispatch.New(table, r.console, dispatch.Options{
		Prompt:       r.prompt,
		ExitKeywords: r.exitKeywords,
		Logger:       r.logger,
	})
	return res, d.Run(ctx)
}

func (r *Runner) recover(ctx context.Context) (recovery.Outcome, error) {
	r.logger.Debug("codes artifact missing, starting recovery", "codes", r.paths.Codes)

	w := &recovery.Workflow{
		Narrative:  recovery.Narrative(filepath.Base(r.paths.Config), filepath.Base(r.paths.Codes)),
		Delay:      r.delay,
		Clock:      r.clock,
		Console:    r.console,
		ReasonLog:  &recovery.ReasonLog{Path: r.paths.Reason},
		ConfigPath: r.paths.Config,
		CodesPath:  r.paths.Codes,
		Logger:     r.logger,
	}
	return w.Run(ctx)
}
