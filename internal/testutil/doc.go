// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers shared across codefree packages:
// a controllable clock for the timed recovery narrative, and Must* file
// helpers that fail the test instead of returning errors.
package testutil
