// SPDX-License-Identifier: MPL-2.0

// Package codes compiles command bindings into the codes artifact and
// decompiles the artifact back into bindings.
//
// The artifact is the standard base64 encoding of a canonical text with one
// line per binding:
//
//	<command> is function"<builtin>"
//
// It is derived data: the configuration document is its only source of
// truth, and compiling the same document twice yields identical bytes.
package codes
