// SPDX-License-Identifier: MPL-2.0

package codes

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/codefree/codefree/internal/source"
)

// Delimiter separates the command from the builtin in a canonical line.
const Delimiter = ` is function"`

// ErrDecode is wrapped by every Decompile failure.
var ErrDecode = errors.New("decode codes artifact")

type (
	// SkippedLine is a non-empty decoded line without the delimiter.
	SkippedLine struct {
		// Line is 1-based within the decoded text.
		Line int
		Text string
	}

	// DecodeResult is the outcome of Decompile.
	DecodeResult struct {
		Bindings source.Bindings
		Skipped  []SkippedLine
	}
)

// Render returns the canonical text for b, one line per binding in
// iteration order.
func Render(b source.Bindings) string {
	var sb strings.Builder
	for _, binding := range b.All() {
		sb.WriteString(binding.Command)
		sb.WriteString(Delimiter)
		sb.WriteString(binding.Builtin)
		sb.WriteString("\"\n")
	}
	return sb.String()
}

// Compile encodes b into artifact bytes.
func Compile(b source.Bindings) []byte {
	text := []byte(Render(b))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(text)))
	base64.StdEncoding.Encode(out, text)
	return out
}

// Decompile decodes artifact bytes. Surrounding whitespace is tolerated.
// Invalid base64 or non-UTF-8 content yields an empty result and an error
// wrapping ErrDecode.
func Decompile(data []byte) (DecodeResult, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return DecodeResult{}, fmt.Errorf("%w: invalid base64: %w", ErrDecode, err)
	}
	if !utf8.Valid(raw) {
		return DecodeResult{}, fmt.Errorf("%w: content is not valid UTF-8", ErrDecode)
	}

	var res DecodeResult
	for i, line := range strings.Split(string(raw), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		left, right, ok := strings.Cut(line, Delimiter)
		if !ok {
			res.Skipped = append(res.Skipped, SkippedLine{Line: i + 1, Text: line})
			continue
		}
		command := strings.TrimSpace(left)
		builtin := strings.TrimSpace(strings.TrimSuffix(right, `"`))
		res.Bindings.Set(command, builtin)
	}
	return res, nil
}
