// SPDX-License-Identifier: MPL-2.0

package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestConsole_ReadLine(t *testing.T) {
	t.Parallel()

	c := New(strings.NewReader("first\r\nsecond\n\nlast"), io.Discard)

	for _, want := range []string{"first", "second", "", "last"} {
		got, err := c.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error = %v, want line %q", err, want)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end error = %v, want io.EOF", err)
	}
}

func TestConsole_Write(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Print("> ")
	c.Println("hello")
	c.Printf("%d items\n", 3)

	if got, want := out.String(), "> hello\n3 items\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if c.Out() != &out {
		t.Error("Out() should return the wrapped writer")
	}
}
