// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the codefree command tree.
//
// Every handler receives the App composition root, which owns the settings
// provider, the clock and the standard streams, so tests can drive whole
// commands against buffers and temporary directories.
package cmd
