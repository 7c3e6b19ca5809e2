// SPDX-License-Identifier: MPL-2.0

package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLines_SingleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantCmd    string
		wantFn     string
		wantReason SkipReason
	}{
		{name: "valid binding", line: "x code1=function{print}", wantCmd: "code1", wantFn: "print"},
		{name: "surrounding whitespace", line: "   x  greet = function{input}  ", wantCmd: "greet", wantFn: "input"},
		{name: "empty builtin", line: "x blank=function{}", wantCmd: "blank", wantFn: ""},
		{name: "not a function", line: "x bad=nofunc(print)", wantReason: SkipNotFunction},
		{name: "unterminated function", line: "x bad=function{print", wantReason: SkipNotFunction},
		{name: "bare prefix", line: "x bad=function{", wantReason: SkipNotFunction},
		{name: "comment", line: "# x code1=function{print}", wantReason: SkipComment},
		{name: "import directive", line: "import code1=function{print}", wantReason: SkipDirective},
		{name: "import prefix without space", line: "imported x=function{print}", wantReason: SkipDirective},
		{name: "blank", line: "   ", wantReason: SkipBlank},
		{name: "single token", line: "code1=function{print}", wantReason: SkipNoLabel},
		{name: "no assignment", line: "code1 #escreva aqui", wantReason: SkipNoAssignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ParseLines([]string{tt.line})

			if tt.wantReason != 0 {
				if res.Bindings.Len() != 0 {
					t.Fatalf("expected no binding, got %v", res.Bindings.All())
				}
				if len(res.Skipped) != 1 || res.Skipped[0].Reason != tt.wantReason {
					t.Fatalf("Skipped = %+v, want one entry with reason %v", res.Skipped, tt.wantReason)
				}
				if res.Skipped[0].Line != 1 || res.Skipped[0].Text != tt.line {
					t.Errorf("Skipped[0] = %+v, want line 1 with original text", res.Skipped[0])
				}
				return
			}

			want := []Binding{{Command: tt.wantCmd, Builtin: tt.wantFn}}
			if diff := cmp.Diff(want, res.Bindings.All()); diff != "" {
				t.Errorf("bindings mismatch (-want +got):\n%s", diff)
			}
			if len(res.Skipped) != 0 {
				t.Errorf("Skipped = %+v, want none", res.Skipped)
			}
		})
	}
}

func TestParseLines_DuplicateKeepsFirstPositionLastValue(t *testing.T) {
	t.Parallel()

	res := ParseLines([]string{
		"a one=function{print}",
		"b two=function{len}",
		"c one=function{input}",
	})

	want := []Binding{
		{Command: "one", Builtin: "input"},
		{Command: "two", Builtin: "len"},
	}
	if diff := cmp.Diff(want, res.Bindings.All()); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_DefaultDocumentHasNoBindings(t *testing.T) {
	t.Parallel()

	res, err := Parse(strings.NewReader(DefaultDocument))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Bindings.Len() != 0 {
		t.Errorf("default document produced bindings: %v", res.Bindings.All())
	}

	wantReasons := []SkipReason{SkipDirective, SkipNoAssignment}
	var gotReasons []SkipReason
	for _, s := range res.Skipped {
		gotReasons = append(gotReasons, s.Reason)
	}
	if diff := cmp.Diff(wantReasons, gotReasons); diff != "" {
		t.Errorf("skip reasons mismatch (-want +got):\n%s", diff)
	}
	if !res.Skipped[0].IsNoise() || res.Skipped[1].IsNoise() {
		t.Errorf("IsNoise() mismatch for %+v", res.Skipped)
	}
}

func TestParse_CRLF(t *testing.T) {
	t.Parallel()

	res, err := Parse(strings.NewReader("x go=function{print}\r\ny n=function{len}\r\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := NewBindings(Binding{"go", "print"}, Binding{"n", "len"})
	if !res.Bindings.Equal(want) {
		t.Errorf("bindings = %v, want %v", res.Bindings.All(), want.All())
	}
}

func TestParse_LongLine(t *testing.T) {
	t.Parallel()

	long := "note " + strings.Repeat("a", 2<<20)
	doc := "x new=function{len}\n" + long + "\ny last=function{print}"

	res, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := NewBindings(Binding{"new", "len"}, Binding{"last", "print"})
	if !res.Bindings.Equal(want) {
		t.Errorf("bindings = %v, want %v", res.Bindings.All(), want.All())
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Line != 2 || res.Skipped[0].Reason != SkipNoAssignment {
		t.Errorf("skipped = %d entries, want line 2 with missing '='", len(res.Skipped))
	}
}

func TestParse_LineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want int
	}{
		{name: "empty", doc: "", want: 0},
		{name: "trailing newline", doc: "a\nb\n", want: 2},
		{name: "no trailing newline", doc: "a\nb", want: 2},
		{name: "blank last line", doc: "a\n\n", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := len(splitLines(tt.doc)); got != tt.want {
				t.Errorf("splitLines(%q) = %d lines, want %d", tt.doc, got, tt.want)
			}
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "config.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want ErrNotExist", err)
	}
}

func TestEnsureDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.txt")

	created, err := EnsureDefault(path)
	if err != nil || !created {
		t.Fatalf("EnsureDefault() = %v, %v; want true, nil", created, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != DefaultDocument {
		t.Errorf("default config = %q, want %q", data, DefaultDocument)
	}

	if err := os.WriteFile(path, []byte("x go=function{print}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err = EnsureDefault(path)
	if err != nil || created {
		t.Fatalf("second EnsureDefault() = %v, %v; want false, nil", created, err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "x go=function{print}\n" {
		t.Errorf("existing config was overwritten: %q", data)
	}
}

func TestEnsureDefault_Directory(t *testing.T) {
	t.Parallel()

	if _, err := EnsureDefault(t.TempDir()); err == nil {
		t.Error("EnsureDefault() on a directory should fail")
	}
}

func TestWriteDefault_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte("x go=function{print}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != DefaultDocument {
		t.Errorf("config = %q, want the default document", data)
	}
}
