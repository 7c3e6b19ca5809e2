// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/codefree/codefree/internal/console"

	"github.com/google/go-cmp/cmp"
)

func newStandard(t *testing.T, input string) (*Registry, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	reg := Standard(IO{
		Console: console.New(strings.NewReader(input), &out),
		Rand:    rand.New(rand.NewPCG(1, 2)),
	})
	return reg, &out
}

func TestStandard_Names(t *testing.T) {
	t.Parallel()

	reg, _ := newStandard(t, "")
	want := []string{"bool", "choice", "input", "int", "len", "print", "random", "shuffle"}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestStandard_Print(t *testing.T) {
	t.Parallel()

	reg, out := newStandard(t, "")
	inv, _ := reg.Lookup(NamePrint)
	if err := inv.(Action).Do("hello world"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello world\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestStandard_Input(t *testing.T) {
	t.Parallel()

	reg, out := newStandard(t, "Ada\n")
	inv, _ := reg.Lookup(NameInput)
	p := inv.(Prompt)

	answer, err := p.Ask("name? ")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "Ada" || out.String() != "name? " {
		t.Errorf("Ask() = %q, output %q", answer, out.String())
	}

	answer, err = p.Ask("again? ")
	if err != nil || answer != "" {
		t.Errorf("Ask() at end of input = %q, %v; want empty answer", answer, err)
	}
}

func TestStandard_Random(t *testing.T) {
	t.Parallel()

	reg, _ := newStandard(t, "")
	inv, _ := reg.Lookup(NameRandom)
	for range 100 {
		v, err := inv.(Generator).Generate()
		if err != nil {
			t.Fatal(err)
		}
		if v < 0 || v >= 1 {
			t.Fatalf("Generate() = %v, want [0,1)", v)
		}
	}
}

func TestStandard_ChoiceAndShuffle(t *testing.T) {
	t.Parallel()

	reg, _ := newStandard(t, "")
	words := []string{"red", "green", "blue"}

	choice, _ := reg.Lookup(NameChoice)
	got, err := choice.(Transform).Apply("red green  blue")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(words, got) {
		t.Errorf("choice = %q, want one of %v", got, words)
	}
	if _, err := choice.(Transform).Apply("   "); !errors.Is(err, ErrEmptyArgument) {
		t.Errorf("choice of nothing error = %v, want ErrEmptyArgument", err)
	}

	shuffle, _ := reg.Lookup(NameShuffle)
	got, err = shuffle.(Transform).Apply("red green blue")
	if err != nil {
		t.Fatal(err)
	}
	shuffled := strings.Fields(got)
	slices.Sort(shuffled)
	if diff := cmp.Diff([]string{"blue", "green", "red"}, shuffled); diff != "" {
		t.Errorf("shuffle lost or added words (-want +got):\n%s", diff)
	}
}

func TestStandard_Transforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builtin string
		arg     string
		want    string
		wantErr bool
	}{
		{name: "bool non-empty", builtin: NameBool, arg: "x", want: "true"},
		{name: "bool empty", builtin: NameBool, arg: "", want: "false"},
		{name: "int", builtin: NameInt, arg: " 42 ", want: "42"},
		{name: "int negative", builtin: NameInt, arg: "-7", want: "-7"},
		{name: "int invalid", builtin: NameInt, arg: "abc", wantErr: true},
		{name: "len ascii", builtin: NameLen, arg: "hello", want: "5"},
		{name: "len runes", builtin: NameLen, arg: "olá", want: "3"},
		{name: "len empty", builtin: NameLen, arg: "", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg, _ := newStandard(t, "")
			inv, ok := reg.Lookup(tt.builtin)
			if !ok {
				t.Fatalf("builtin %q not registered", tt.builtin)
			}
			got, err := inv.(Transform).Apply(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}
