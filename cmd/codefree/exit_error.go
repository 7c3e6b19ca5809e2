// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/codefree/codefree/pkg/types"
)

// ExitError carries the process status for CLI misuse, such as an
// unreadable settings file or an unknown dump format. Session results never
// produce one; they always exit with types.ExitSuccess.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the cause, or the bare status when there is none.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode maps the error returned by the command tree to a process status.
// An ExitError whose code is outside 0-255 falls back to ExitFailure.
func exitCode(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil {
		return exitErr.Code
	}
	return types.ExitFailure
}
