// SPDX-License-Identifier: MPL-2.0

// Package config loads codefree's application settings using Viper with CUE
// as the file format.
//
// Settings cover where the configuration document, the codes artifact and
// the reason log live, how long each line of the recovery narrative waits,
// the interactive prompt and exit keywords, and UI options. They are read,
// in order of precedence, from CODEFREE_* environment variables, from the
// settings file (an explicit --settings path, or codefree.cue in the working
// directory), and from built-in defaults. The settings file is validated
// against the embedded settings_schema.cue before it is merged.
package config
