// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"slices"

	"github.com/codefree/codefree/internal/builtin"
	"github.com/codefree/codefree/internal/codes"
	"github.com/codefree/codefree/internal/source"

	"github.com/charmbracelet/log"
)

type (
	// Table maps command names to resolved builtins.
	Table map[string]builtin.Invocable

	// Loader resolves decoded bindings against a builtin registry.
	Loader struct {
		registry *builtin.Registry
		logger   *log.Logger
	}

	// LoadReport describes what happened while building a Table.
	LoadReport struct {
		// Loaded is the number of commands in the table.
		Loaded int
		// Dropped lists bindings whose builtin is not registered.
		Dropped []source.Binding
		// Skipped lists decoded lines without the binding delimiter.
		Skipped []codes.SkippedLine
		// DecodeErr is set when the artifact could not be decoded at all.
		DecodeErr error
	}
)

// Lookup returns the builtin bound to command.
func (t Table) Lookup(command string) (builtin.Invocable, bool) {
	inv, ok := t[command]
	return inv, ok
}

// Commands returns the command names in sorted order.
func (t Table) Commands() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader(registry *builtin.Registry, logger *log.Logger) *Loader {
	if logger == nil {
		logger = discardLogger()
	}
	return &Loader{registry: registry, logger: logger}
}

// Load decodes artifact and builds the table.
func (l *Loader) Load(artifact []byte) (Table, LoadReport) {
	decoded, err := codes.Decompile(artifact)
	if err != nil {
		l.logger.Error("failed to decode codes artifact, no commands loaded", "err", err)
		return Table{}, LoadReport{DecodeErr: err}
	}

	table := make(Table, decoded.Bindings.Len())
	report := LoadReport{Skipped: decoded.Skipped}

	for _, b := range decoded.Bindings.All() {
		inv, ok := l.registry.Lookup(b.Builtin)
		if !ok {
			l.logger.Debug("dropping binding to unknown builtin", "command", b.Command, "builtin", b.Builtin)
			report.Dropped = append(report.Dropped, b)
			continue
		}
		table[b.Command] = inv
	}
	for _, s := range decoded.Skipped {
		l.logger.Debug("skipping undecodable artifact line", "line", s.Line, "text", s.Text)
	}

	report.Loaded = len(table)
	l.logger.Debug("loaded commands", "count", report.Loaded, "commands", table.Commands())
	return table, report
}

// LoadFile reads the artifact at path and loads it. Only read failures are
// returned as errors; decode problems are reported through LoadReport.
func (l *Loader) LoadFile(path string) (Table, LoadReport, error) {
	data, err := codes.Read(path)
	if err != nil {
		return nil, LoadReport{}, err
	}
	table, report := l.Load(data)
	return table, report, nil
}
