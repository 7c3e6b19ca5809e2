// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codefree/codefree/internal/builtin"
	"github.com/codefree/codefree/internal/console"

	"github.com/charmbracelet/log"
)

// DefaultExitKeywords end the loop when entered alone on a line.
var DefaultExitKeywords = []string{"sair", "exit"}

type (
	// Options configures a Dispatcher.
	Options struct {
		// Prompt is printed before each read. Empty means no prompt.
		Prompt string
		// ExitKeywords are matched case-insensitively against the trimmed
		// line. An empty list selects DefaultExitKeywords.
		ExitKeywords []string
		Logger       *log.Logger
	}

	// Dispatcher runs the read-resolve-invoke loop over a Table.
	Dispatcher struct {
		table   Table
		console *console.Console
		opts    Options
		logger  *log.Logger
	}
)

// New creates a Dispatcher reading from and writing to con.
func New(table Table, con *console.Console, opts Options) *Dispatcher {
	if len(opts.ExitKeywords) == 0 {
		opts.ExitKeywords = DefaultExitKeywords
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	return &Dispatcher{table: table, console: con, opts: opts, logger: logger}
}

// Run loops until an exit keyword, end of input or ctx cancellation. End of
// input and exit keywords return nil.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("command loop canceled: %w", err)
		}

		if d.opts.Prompt != "" {
			d.console.Print(d.opts.Prompt)
		}

		line, err := d.console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.logger.Debug("input closed, leaving command loop")
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		done, err := d.Execute(line)
		if err != nil {
			d.console.Printf("Error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

// Execute handles one input line. done is true when the line is an exit
// keyword. err carries a failure of the invoked builtin; the loop is
// expected to report it and continue.
func (d *Dispatcher) Execute(line string) (done bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, nil
	}
	if d.isExit(trimmed) {
		return true, nil
	}

	command, argument, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")

	inv, ok := d.table.Lookup(command)
	if !ok {
		d.console.Printf("Command '%s' not recognized.\n", command)
		return false, nil
	}

	d.logger.Debug("invoking builtin", "command", command, "builtin", inv.Name())
	return false, d.invoke(inv, argument)
}

func (d *Dispatcher) invoke(inv builtin.Invocable, argument string) error {
	switch inv.Signature() {
	case builtin.SignatureAction:
		if b, ok := inv.(builtin.Action); ok {
			return b.Do(argument)
		}
	case builtin.SignaturePrompt:
		if b, ok := inv.(builtin.Prompt); ok {
			resp, err := b.Ask(argument)
			if err != nil {
				return err
			}
			d.console.Printf("You answered: %s\n", resp)
			return nil
		}
	case builtin.SignatureTransform:
		if b, ok := inv.(builtin.Transform); ok {
			out, err := b.Apply(argument)
			if err != nil {
				return err
			}
			d.console.Println(out)
			return nil
		}
	case builtin.SignatureGenerator:
		if b, ok := inv.(builtin.Generator); ok {
			v, err := b.Generate()
			if err != nil {
				return err
			}
			d.console.Println(strconv.FormatFloat(v, 'f', -1, 64))
			return nil
		}
	}
	return fmt.Errorf("builtin %q does not implement %s", inv.Name(), inv.Signature())
}

func (d *Dispatcher) isExit(line string) bool {
	for _, kw := range d.opts.ExitKeywords {
		if strings.EqualFold(line, strings.TrimSpace(kw)) {
			return true
		}
	}
	return false
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
