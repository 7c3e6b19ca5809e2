// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types for codefree.
//
// ActionableError carries the failed operation, the file involved and a list
// of suggestions, and is assembled with the ErrorContext builder. Issue is a
// catalogued markdown explanation rendered with glamour for situations the
// user is expected to fix by hand (a lost codes artifact, a missing
// configuration file, an unreadable settings file).
package issue
