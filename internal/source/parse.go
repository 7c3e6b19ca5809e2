// SPDX-License-Identifier: MPL-2.0

package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const (
	// DefaultDocument is written when no configuration file exists yet.
	// Its second line is a placeholder and yields no binding.
	DefaultDocument = "import codefree\ncode1 #escreva aqui\n"

	functionPrefix = "function{"
	functionSuffix = "}"
)

const (
	// SkipBlank is an empty or whitespace-only line.
	SkipBlank SkipReason = iota + 1
	// SkipComment is a line starting with '#'.
	SkipComment
	// SkipDirective is a line starting with "import".
	SkipDirective
	// SkipNoLabel is a line with no space separating label and assignment.
	SkipNoLabel
	// SkipNoAssignment is a line whose assignment part has no '='.
	SkipNoAssignment
	// SkipNotFunction is an assignment whose value is not function{...}.
	SkipNotFunction
)

type (
	// SkipReason explains why a configuration line produced no binding.
	SkipReason int

	// SkippedLine is a diagnostic for a line that produced no binding.
	SkippedLine struct {
		// Line is 1-based.
		Line   int
		Text   string
		Reason SkipReason
	}

	// ParseResult is the outcome of parsing a configuration document.
	ParseResult struct {
		Bindings Bindings
		Skipped  []SkippedLine
	}
)

// String returns a short description of the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipBlank:
		return "blank line"
	case SkipComment:
		return "comment"
	case SkipDirective:
		return "import directive"
	case SkipNoLabel:
		return "missing label"
	case SkipNoAssignment:
		return "missing '='"
	case SkipNotFunction:
		return "value is not function{...}"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// IsNoise reports whether the line was intentionally empty (blank, comment
// or directive) rather than malformed.
func (s SkippedLine) IsNoise() bool {
	return s.Reason == SkipBlank || s.Reason == SkipComment || s.Reason == SkipDirective
}

// ParseLines parses an in-memory document.
func ParseLines(lines []string) ParseResult {
	var res ParseResult
	for i, raw := range lines {
		command, builtin, reason := parseLine(strings.TrimSpace(raw))
		if reason != 0 {
			res.Skipped = append(res.Skipped, SkippedLine{Line: i + 1, Text: raw, Reason: reason})
			continue
		}
		res.Bindings.Set(command, builtin)
	}
	return res
}

// Parse reads a document from r. The only error source is r itself;
// malformed lines are reported in ParseResult.Skipped. Lines have no length
// limit.
func Parse(r io.Reader) (ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ParseResult{}, fmt.Errorf("read configuration: %w", err)
	}
	return ParseLines(splitLines(string(data))), nil
}

// splitLines splits on '\n', drops a trailing '\r' from each line and
// ignores the empty remainder after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ParseFile parses the document stored at path.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open configuration: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// EnsureDefault writes DefaultDocument to path when no file exists there.
// created reports whether the file was written.
func EnsureDefault(path string) (created bool, err error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("configuration path %s is a directory", path)
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("stat configuration: %w", err)
	}

	if err := WriteDefault(path); err != nil {
		return false, err
	}
	return true, nil
}

// WriteDefault overwrites path with DefaultDocument.
func WriteDefault(path string) error {
	if err := os.WriteFile(path, []byte(DefaultDocument), 0o644); err != nil {
		return fmt.Errorf("write default configuration: %w", err)
	}
	return nil
}

// parseLine applies the grammar to an already trimmed line.
func parseLine(line string) (command, builtin string, reason SkipReason) {
	switch {
	case line == "":
		return "", "", SkipBlank
	case strings.HasPrefix(line, "#"):
		return "", "", SkipComment
	case strings.HasPrefix(line, "import"):
		return "", "", SkipDirective
	}

	_, assignment, ok := strings.Cut(line, " ")
	if !ok {
		return "", "", SkipNoLabel
	}

	name, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return "", "", SkipNoAssignment
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	if len(value) < len(functionPrefix)+len(functionSuffix) ||
		!strings.HasPrefix(value, functionPrefix) ||
		!strings.HasSuffix(value, functionSuffix) {
		return "", "", SkipNotFunction
	}

	return name, value[len(functionPrefix) : len(value)-len(functionSuffix)], 0
}
