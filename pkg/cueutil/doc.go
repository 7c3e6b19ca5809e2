// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the CUE plumbing behind codefree settings files:
// compiling an embedded schema, unifying user data against one of its
// definitions, and turning CUE errors into path-prefixed messages.
//
//	//go:embed settings_schema.cue
//	var schema string
//
//	value, err := cueutil.Unify(schema, "#Config", data, "codefree.cue")
//	if err != nil {
//	    return err // "codefree.cue: recovery.delay: ..."
//	}
package cueutil
