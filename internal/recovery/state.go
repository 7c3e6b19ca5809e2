// SPDX-License-Identifier: MPL-2.0

package recovery

import "github.com/codefree/codefree/internal/codes"

const (
	// StateMissing means no regular file exists at the artifact path.
	StateMissing State = iota
	// StatePresent means the artifact exists. Its content is not checked.
	StatePresent
)

// State is the artifact presence observed at startup.
type State int

// Check reports whether the artifact at codesPath is present.
func Check(codesPath string) State {
	if codes.Exists(codesPath) {
		return StatePresent
	}
	return StateMissing
}

// String returns the state name.
func (s State) String() string {
	if s == StatePresent {
		return "present"
	}
	return "missing"
}
