// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions defines explicit settings loading inputs.
	LoadOptions struct {
		// SettingsFilePath forces loading from a specific file when set.
		SettingsFilePath string
		// Dir is searched for codefree.cue when SettingsFilePath is empty.
		Dir string
	}

	// Provider loads settings from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
	}

	fileProvider struct{}
)

// NewProvider creates the file/env backed provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads settings from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolvePath returns the settings file Load would read for opts, or ""
// when defaults and environment variables alone apply.
func ResolvePath(opts LoadOptions) string {
	if opts.SettingsFilePath != "" {
		return opts.SettingsFilePath
	}
	if local := SettingsPath(opts.Dir); fileExists(local) {
		return local
	}
	return ""
}
