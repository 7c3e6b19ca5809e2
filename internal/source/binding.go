// SPDX-License-Identifier: MPL-2.0

package source

import "fmt"

type (
	// Binding maps a user-facing command name to a builtin name.
	Binding struct {
		Command string
		Builtin string
	}

	// Bindings is an insertion-ordered set keyed by command name.
	// Setting a command that already exists replaces its builtin and keeps
	// the position of the first occurrence. The zero value is ready to use.
	Bindings struct {
		order   []string
		builtin map[string]string
	}
)

// String returns "command -> builtin".
func (b Binding) String() string {
	return fmt.Sprintf("%s -> %s", b.Command, b.Builtin)
}

// NewBindings builds a set from bs, applying the overwrite rule in order.
func NewBindings(bs ...Binding) Bindings {
	var out Bindings
	for _, b := range bs {
		out.Set(b.Command, b.Builtin)
	}
	return out
}

// Set records command -> builtin.
func (b *Bindings) Set(command, builtin string) {
	if b.builtin == nil {
		b.builtin = make(map[string]string)
	}
	if _, exists := b.builtin[command]; !exists {
		b.order = append(b.order, command)
	}
	b.builtin[command] = builtin
}

// Get returns the builtin bound to command.
func (b Bindings) Get(command string) (string, bool) {
	builtin, ok := b.builtin[command]
	return builtin, ok
}

// Len returns the number of distinct commands.
func (b Bindings) Len() int {
	return len(b.order)
}

// All returns the bindings in iteration order. The slice is a copy.
func (b Bindings) All() []Binding {
	out := make([]Binding, 0, len(b.order))
	for _, command := range b.order {
		out = append(out, Binding{Command: command, Builtin: b.builtin[command]})
	}
	return out
}

// Equal reports whether both sets hold the same pairs, ignoring order.
func (b Bindings) Equal(other Bindings) bool {
	if b.Len() != other.Len() {
		return false
	}
	for command, builtin := range b.builtin {
		if got, ok := other.builtin[command]; !ok || got != builtin {
			return false
		}
	}
	return true
}
