// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark style.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light style.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidConfig is the sentinel wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidColorScheme is returned for unknown color schemes.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

type (
	// ColorScheme selects the glamour/lipgloss style.
	ColorScheme string

	// Config is the complete settings tree.
	Config struct {
		Files    FilesConfig    `json:"files" mapstructure:"files" toml:"files"`
		Recovery RecoveryConfig `json:"recovery" mapstructure:"recovery" toml:"recovery"`
		Shell    ShellConfig    `json:"shell" mapstructure:"shell" toml:"shell"`
		UI       UIConfig       `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// FilesConfig names the three files codefree works with. Relative names
	// are resolved against the working directory.
	FilesConfig struct {
		Config string `json:"config" mapstructure:"config" toml:"config"`
		Codes  string `json:"codes" mapstructure:"codes" toml:"codes"`
		Reason string `json:"reason" mapstructure:"reason" toml:"reason"`
	}

	// RecoveryConfig tunes the recovery narrative.
	RecoveryConfig struct {
		// Delay is a Go duration string waited after each narrative line.
		Delay string `json:"delay" mapstructure:"delay" toml:"delay"`
	}

	// ShellConfig tunes the interactive command loop.
	ShellConfig struct {
		Prompt       string   `json:"prompt" mapstructure:"prompt" toml:"prompt"`
		ExitKeywords []string `json:"exit_keywords" mapstructure:"exit_keywords" toml:"exit_keywords"`
	}

	// UIConfig holds presentation options.
	UIConfig struct {
		Verbose     bool        `json:"verbose" mapstructure:"verbose" toml:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
	}

	// Paths are the resolved file locations for one working directory.
	Paths struct {
		Config string
		Codes  string
		Reason string
	}

	// InvalidConfigError collects field-level validation failures.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Config: "config.txt",
			Codes:  "codes.txt",
			Reason: "lost_codes_reason.txt",
		},
		Recovery: RecoveryConfig{
			Delay: "3s",
		},
		Shell: ShellConfig{
			Prompt:       "> ",
			ExitKeywords: []string{"sair", "exit"},
		},
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Validate checks a color scheme value.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: auto, dark, light)", ErrInvalidColorScheme, string(c))
	}
}

// String returns the scheme name.
func (c ColorScheme) String() string { return string(c) }

// Validate checks constraints that hold regardless of where a value came
// from, including env overrides the CUE schema never sees.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Files.Config) == "" {
		errs = append(errs, errors.New("files.config must not be empty"))
	}
	if strings.TrimSpace(c.Files.Codes) == "" {
		errs = append(errs, errors.New("files.codes must not be empty"))
	}
	if strings.TrimSpace(c.Files.Reason) == "" {
		errs = append(errs, errors.New("files.reason must not be empty"))
	}
	if _, err := c.RecoveryDelay(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Shell.ExitKeywords) == 0 {
		errs = append(errs, errors.New("shell.exit_keywords must list at least one keyword"))
	}
	for i, kw := range c.Shell.ExitKeywords {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, fmt.Errorf("shell.exit_keywords[%d] must not be empty", i))
		}
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// RecoveryDelay parses Recovery.Delay.
func (c *Config) RecoveryDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Recovery.Delay)
	if err != nil {
		return 0, fmt.Errorf("recovery.delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("recovery.delay: negative duration %s", d)
	}
	return d, nil
}

// Paths resolves the file names against dir. Absolute names are kept.
func (c *Config) Paths(dir string) Paths {
	resolve := func(name string) string {
		if filepath.IsAbs(name) || dir == "" {
			return name
		}
		return filepath.Join(dir, name)
	}
	return Paths{
		Config: resolve(c.Files.Config),
		Codes:  resolve(c.Files.Codes),
		Reason: resolve(c.Files.Reason),
	}
}
