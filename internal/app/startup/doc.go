// SPDX-License-Identifier: MPL-2.0

// Package startup orchestrates one codefree session: ensure the
// configuration file, recompile the codes artifact, then either run the
// recovery workflow or load the artifact and enter the command loop.
// It decouples the CLI layer from the parser, codec, recovery and dispatch
// packages.
package startup
