// SPDX-License-Identifier: MPL-2.0

// Package dispatch turns a codes artifact into a command table and runs the
// interactive loop that resolves each input line against it.
//
// Loading never fails hard: undecodable artifacts yield an empty table and
// bindings that name unknown builtins are dropped, so every table entry is
// guaranteed to be invocable.
package dispatch
