// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "compile codes"},
			want: "failed to compile codes",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "compile codes", Resource: "codes.txt"},
			want: "failed to compile codes: codes.txt",
		},
		{
			name: "with resource and cause",
			err: &ActionableError{
				Operation: "compile codes",
				Resource:  "codes.txt",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to compile codes: codes.txt: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("disk full")
	err := NewErrorContext().
		WithOperation("write codes").
		WithResource("codes.txt").
		WithSuggestion("Free some disk space").
		Wrap(fmt.Errorf("write: %w", root)).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "  • Free some disk space") {
		t.Errorf("Format(false) missing suggestion:\n%s", short)
	}
	if strings.Contains(short, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain:\n%s", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "1. write: disk full") || !strings.Contains(long, "2. disk full") {
		t.Errorf("Format(true) missing chain entries:\n%s", long)
	}
	if !errors.Is(err, root) {
		t.Error("errors.Is should reach the root cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() = %v, want nil interface", got)
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}

	cause := errors.New("boom")
	got := WrapWithContext(cause, "load settings", "codefree.cue")
	if got.Operation != "load settings" || got.Resource != "codefree.cue" || !errors.Is(got, cause) {
		t.Errorf("WrapWithContext() = %+v", got)
	}
}
