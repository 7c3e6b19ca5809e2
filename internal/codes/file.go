// SPDX-License-Identifier: MPL-2.0

package codes

import (
	"fmt"
	"os"

	"github.com/codefree/codefree/internal/source"
)

// Write compiles b and overwrites the artifact at path.
func Write(path string, b source.Bindings) error {
	if err := os.WriteFile(path, Compile(b), 0o644); err != nil {
		return fmt.Errorf("write codes artifact: %w", err)
	}
	return nil
}

// Read returns the raw artifact bytes stored at path.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read codes artifact: %w", err)
	}
	return data, nil
}

// Exists reports whether a regular file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CompileFile parses the configuration document at configPath and writes
// the resulting artifact to codesPath.
func CompileFile(configPath, codesPath string) (source.ParseResult, error) {
	res, err := source.ParseFile(configPath)
	if err != nil {
		return source.ParseResult{}, err
	}
	if err := Write(codesPath, res.Bindings); err != nil {
		return res, err
	}
	return res, nil
}

// DecompileFile reads and decodes the artifact at path.
func DecompileFile(path string) (DecodeResult, error) {
	data, err := Read(path)
	if err != nil {
		return DecodeResult{}, err
	}
	return Decompile(data)
}
