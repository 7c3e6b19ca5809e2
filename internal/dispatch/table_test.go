// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codefree/codefree/internal/builtin"
	"github.com/codefree/codefree/internal/codes"
	"github.com/codefree/codefree/internal/console"
	"github.com/codefree/codefree/internal/source"
	"github.com/codefree/codefree/internal/testutil"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func standardRegistry() *builtin.Registry {
	return builtin.Standard(builtin.IO{Console: console.New(strings.NewReader(""), &bytes.Buffer{})})
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	artifact := codes.Compile(source.NewBindings(
		source.Binding{Command: "say", Builtin: "print"},
		source.Binding{Command: "ask", Builtin: "input"},
		source.Binding{Command: "boom", Builtin: "os.system"},
	))

	table, report := NewLoader(standardRegistry(), nil).Load(artifact)

	if diff := cmp.Diff([]string{"ask", "say"}, table.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if report.Loaded != 2 || report.DecodeErr != nil {
		t.Errorf("report = %+v", report)
	}
	if diff := cmp.Diff([]source.Binding{{Command: "boom", Builtin: "os.system"}}, report.Dropped); diff != "" {
		t.Errorf("dropped mismatch (-want +got):\n%s", diff)
	}
	if inv, ok := table.Lookup("say"); !ok || inv.Name() != builtin.NamePrint {
		t.Errorf("Lookup(say) = %v, %v", inv, ok)
	}
}

func TestLoader_EveryEntryResolves(t *testing.T) {
	t.Parallel()

	reg := standardRegistry()
	b := source.NewBindings()
	for _, name := range append(reg.Names(), "eval", "exec", "") {
		b.Set("cmd_"+name, name)
	}

	table, report := NewLoader(reg, nil).Load(codes.Compile(b))
	for cmd, inv := range table {
		if _, ok := reg.Lookup(inv.Name()); !ok {
			t.Errorf("table entry %q bound to unregistered builtin %q", cmd, inv.Name())
		}
	}
	if report.Loaded != reg.Len() || len(report.Dropped) != 3 {
		t.Errorf("report = %+v", report)
	}
}

func TestLoader_DecodeFailureYieldsEmptyTable(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	table, report := NewLoader(standardRegistry(), log.New(&logs)).Load([]byte("%%% not base64 %%%"))

	if len(table) != 0 {
		t.Errorf("table should be empty, got %v", table.Commands())
	}
	if !errors.Is(report.DecodeErr, codes.ErrDecode) {
		t.Errorf("DecodeErr = %v, want ErrDecode", report.DecodeErr)
	}
	if !strings.Contains(logs.String(), "failed to decode codes artifact") {
		t.Errorf("decode failure not logged: %q", logs.String())
	}
}

func TestLoader_LogsLoadedCommands(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	artifact := codes.Compile(source.NewBindings(
		source.Binding{Command: "zeta", Builtin: "print"},
		source.Binding{Command: "alpha", Builtin: "len"},
	))

	NewLoader(standardRegistry(), logger).Load(artifact)

	out := logs.String()
	if !strings.Contains(out, "loaded commands") || !strings.Contains(out, "[alpha zeta]") {
		t.Errorf("loaded commands not logged in sorted order: %q", out)
	}
}

func TestLoader_ReportsSkippedLines(t *testing.T) {
	t.Parallel()

	artifact := []byte(base64Of("say is function\"print\"\ngarbage\n"))
	table, report := NewLoader(standardRegistry(), nil).Load(artifact)

	if len(table) != 1 || len(report.Skipped) != 1 || report.Skipped[0].Text != "garbage" {
		t.Errorf("table = %v, report = %+v", table.Commands(), report)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "codes.txt")
	if err := codes.Write(path, source.NewBindings(source.Binding{Command: "n", Builtin: "len"})); err != nil {
		t.Fatal(err)
	}

	table, report, err := NewLoader(standardRegistry(), nil).LoadFile(path)
	if err != nil || report.Loaded != 1 || len(table) != 1 {
		t.Errorf("LoadFile() = %v, %+v, %v", table.Commands(), report, err)
	}

	if _, _, err := NewLoader(standardRegistry(), nil).LoadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("LoadFile() on a missing file should fail")
	}
	testutil.AssertExists(t, path)
}
