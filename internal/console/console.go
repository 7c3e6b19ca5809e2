// SPDX-License-Identifier: MPL-2.0

// Package console provides the line-oriented terminal shared by the command
// loop, the interactive builtins and the recovery prompt.
//
// A single Console must wrap a given input stream: it buffers reads, so two
// independent readers over the same stdin would steal lines from each other.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads whole lines from an input stream and writes to an output stream.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New wraps in and out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next line without its line terminator. A final line
// without a terminator is returned with a nil error; io.EOF is returned only
// when no data is left.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Out returns the output stream.
func (c *Console) Out() io.Writer {
	return c.out
}

// Print writes a without a trailing newline.
func (c *Console) Print(a ...any) {
	_, _ = fmt.Fprint(c.out, a...)
}

// Println writes a followed by a newline.
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Printf writes a formatted message.
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
