// SPDX-License-Identifier: MPL-2.0

package source

import "testing"

func TestBindings_ZeroValue(t *testing.T) {
	t.Parallel()

	var b Bindings
	if b.Len() != 0 || len(b.All()) != 0 {
		t.Fatalf("zero Bindings not empty: %v", b.All())
	}
	if _, ok := b.Get("x"); ok {
		t.Error("Get on zero Bindings returned ok")
	}

	b.Set("x", "print")
	if got, ok := b.Get("x"); !ok || got != "print" {
		t.Errorf("Get(x) = %q, %v", got, ok)
	}
}

func TestBindings_Equal(t *testing.T) {
	t.Parallel()

	a := NewBindings(Binding{"a", "print"}, Binding{"b", "len"})
	b := NewBindings(Binding{"b", "len"}, Binding{"a", "print"})
	c := NewBindings(Binding{"a", "print"}, Binding{"b", "int"})
	d := NewBindings(Binding{"a", "print"})

	if !a.Equal(b) {
		t.Error("order should not matter for Equal")
	}
	if a.Equal(c) {
		t.Error("different builtin should not be Equal")
	}
	if a.Equal(d) || d.Equal(a) {
		t.Error("different sizes should not be Equal")
	}
}

func TestBinding_String(t *testing.T) {
	t.Parallel()

	if got := (Binding{Command: "go", Builtin: "print"}).String(); got != "go -> print" {
		t.Errorf("String() = %q", got)
	}
}
