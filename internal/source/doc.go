// SPDX-License-Identifier: MPL-2.0

// Package source parses the human-editable configuration document
// (config.txt by default) into an ordered set of command bindings.
//
// A binding line has the shape
//
//	<label> <command>=function{<builtin>}
//
// The leading label is discarded. Blank lines, comment lines (#) and import
// directives produce no binding. Lines that do not match the grammar are not
// errors: they are reported back as SkippedLine diagnostics so callers can
// show them in verbose mode.
package source
