// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codefree/codefree/internal/issue"
	"github.com/codefree/codefree/pkg/cueutil"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "codefree"
	// SettingsFileName is the settings file name without extension.
	SettingsFileName = "codefree"
	// SettingsFileExt is the settings file extension.
	SettingsFileExt = "cue"
	// EnvPrefix prefixes environment overrides (CODEFREE_SHELL_PROMPT, ...).
	EnvPrefix = "CODEFREE"

	// maxSettingsFileSize bounds the settings file read into CUE.
	maxSettingsFileSize = 1 << 20
)

//go:embed settings_schema.cue
var settingsSchema string

// SettingsPath returns the settings file looked up in dir when no explicit
// path is given.
func SettingsPath(dir string) string {
	return filepath.Join(dir, SettingsFileName+"."+SettingsFileExt)
}

// loadWithOptions performs option-driven loading and returns the resolved
// settings file path ("" when only defaults and env were used).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load settings canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("files.config", defaults.Files.Config)
	v.SetDefault("files.codes", defaults.Files.Codes)
	v.SetDefault("files.reason", defaults.Files.Reason)
	v.SetDefault("recovery.delay", defaults.Recovery.Delay)
	v.SetDefault("shell.prompt", defaults.Shell.Prompt)
	v.SetDefault("shell.exit_keywords", defaults.Shell.ExitKeywords)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	if opts.SettingsFilePath != "" {
		if !fileExists(opts.SettingsFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load settings").
				WithResource(opts.SettingsFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'codefree config show' to see the default settings").
				Wrap(fmt.Errorf("settings file not found: %s", opts.SettingsFilePath)).
				BuildError()
		}
		resolvedPath = opts.SettingsFilePath
	} else if local := SettingsPath(opts.Dir); fileExists(local) {
		resolvedPath = local
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load settings").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the settings schema").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate settings").
			WithResource(resolvedPath).
			WithSuggestion("Check CODEFREE_* environment variables for typos").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// loadCUEIntoViper validates a settings file against #Config and merges
// it into v.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, maxSettingsFileSize, path); err != nil {
		return err
	}

	settingsMap, err := cueutil.DecodeMap(settingsSchema, "#Config", data, path)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(settingsMap); err != nil {
		return fmt.Errorf("failed to merge settings: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GenerateCUE renders cfg as a settings file.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// codefree settings\n\n")

	sb.WriteString("files: {\n")
	fmt.Fprintf(&sb, "\tconfig: %q\n", cfg.Files.Config)
	fmt.Fprintf(&sb, "\tcodes:  %q\n", cfg.Files.Codes)
	fmt.Fprintf(&sb, "\treason: %q\n", cfg.Files.Reason)
	sb.WriteString("}\n")

	sb.WriteString("\nrecovery: {\n")
	fmt.Fprintf(&sb, "\tdelay: %q\n", cfg.Recovery.Delay)
	sb.WriteString("}\n")

	sb.WriteString("\nshell: {\n")
	fmt.Fprintf(&sb, "\tprompt: %q\n", cfg.Shell.Prompt)
	sb.WriteString("\texit_keywords: [")
	for i, kw := range cfg.Shell.ExitKeywords {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", kw)
	}
	sb.WriteString("]\n")
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	return sb.String()
}

// GenerateTOML renders cfg as TOML, for users who keep their settings
// next to other TOML-configured tools.
func GenerateTOML(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode settings as TOML: %w", err)
	}
	return string(out), nil
}
