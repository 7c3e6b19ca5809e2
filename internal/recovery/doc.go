// SPDX-License-Identifier: MPL-2.0

// Package recovery handles a missing codes artifact.
//
// When the artifact is gone, a Workflow plays a timed narrative, asks the
// user for a reason, appends it to the reason log and tries once to
// regenerate the artifact from the configuration file. The Outcome is
// returned to the caller; the workflow never terminates the process and
// never retries.
package recovery
