// SPDX-License-Identifier: MPL-2.0

package recovery

const (
	// OutcomeNone is returned alongside an error when the workflow was
	// interrupted before regeneration was attempted.
	OutcomeNone Outcome = iota
	// OutcomeSucceeded means the artifact was rewritten from the
	// configuration file.
	OutcomeSucceeded
	// OutcomeFailedNoConfig means the configuration file was absent; no
	// artifact was written.
	OutcomeFailedNoConfig
	// OutcomeFailedWriteError means the configuration file was read but the
	// artifact could not be written.
	OutcomeFailedWriteError
)

// Outcome is the result of one regeneration attempt.
type Outcome int

// Succeeded reports whether the artifact was regenerated.
func (o Outcome) Succeeded() bool { return o == OutcomeSucceeded }

// String returns a short outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailedNoConfig:
		return "failed: configuration missing"
	case OutcomeFailedWriteError:
		return "failed: write error"
	default:
		return "none"
	}
}
