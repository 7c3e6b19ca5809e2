// SPDX-License-Identifier: MPL-2.0

// Package builtin provides the fixed set of functions that configuration
// bindings can name.
//
// Every builtin declares one of a closed set of call signatures, and the
// dispatcher picks the calling convention from that declaration:
//
//   - action(string): side effect only (print)
//   - prompt(string) -> string: asks the user and returns the answer (input)
//   - transform(string) -> string: computes a value from the argument
//     (choice, shuffle, bool, int, len)
//   - generator() -> float: produces a value, ignoring the argument (random)
//
// A Registry is immutable once built and is injected where it is needed, so
// tests can swap in their own table.
package builtin
