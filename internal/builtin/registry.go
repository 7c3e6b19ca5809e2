// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyName is returned when an entry has an empty name.
	ErrEmptyName = errors.New("builtin name must not be empty")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("builtin already registered")
)

// Registry is an immutable mapping from builtin name to Invocable.
// It is safe for concurrent reads.
type Registry struct {
	entries map[string]Invocable
}

// NewRegistry builds a registry from entries.
func NewRegistry(entries ...Invocable) (*Registry, error) {
	r := &Registry{entries: make(map[string]Invocable, len(entries))}
	for _, e := range entries {
		name := e.Name()
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := r.entries[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		r.entries[name] = e
	}
	return r, nil
}

// MustRegistry is NewRegistry for tables known to be valid at compile time.
// It panics on error.
func MustRegistry(entries ...Invocable) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(fmt.Sprintf("builtin: %v", err))
	}
	return r
}

// Lookup retrieves a builtin by name.
func (r *Registry) Lookup(name string) (Invocable, bool) {
	inv, ok := r.entries[name]
	return inv, ok
}

// Names returns all builtin names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of builtins.
func (r *Registry) Len() int {
	return len(r.entries)
}
