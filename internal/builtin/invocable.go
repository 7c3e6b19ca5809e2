// SPDX-License-Identifier: MPL-2.0

package builtin

import "fmt"

const (
	// SignatureAction is func(arg string) error.
	SignatureAction Signature = iota + 1
	// SignaturePrompt is func(prompt string) (string, error).
	SignaturePrompt
	// SignatureTransform is func(arg string) (string, error).
	SignatureTransform
	// SignatureGenerator is func() (float64, error).
	SignatureGenerator
)

type (
	// Signature identifies the calling convention of a builtin.
	Signature int

	// Invocable is a registry entry. Callers switch on Signature and then
	// assert the matching call interface.
	Invocable interface {
		Name() string
		Signature() Signature
	}

	// Action is an Invocable with SignatureAction.
	Action interface {
		Invocable
		Do(arg string) error
	}

	// Prompt is an Invocable with SignaturePrompt.
	Prompt interface {
		Invocable
		Ask(prompt string) (string, error)
	}

	// Transform is an Invocable with SignatureTransform.
	Transform interface {
		Invocable
		Apply(arg string) (string, error)
	}

	// Generator is an Invocable with SignatureGenerator.
	Generator interface {
		Invocable
		Generate() (float64, error)
	}

	actionFunc struct {
		name string
		fn   func(string) error
	}

	promptFunc struct {
		name string
		fn   func(string) (string, error)
	}

	transformFunc struct {
		name string
		fn   func(string) (string, error)
	}

	generatorFunc struct {
		name string
		fn   func() (float64, error)
	}
)

// String returns the signature in call notation.
func (s Signature) String() string {
	switch s {
	case SignatureAction:
		return "action(string)"
	case SignaturePrompt:
		return "prompt(string) -> string"
	case SignatureTransform:
		return "transform(string) -> string"
	case SignatureGenerator:
		return "generator() -> float"
	default:
		return fmt.Sprintf("Signature(%d)", int(s))
	}
}

// NewAction wraps fn as an Action.
func NewAction(name string, fn func(arg string) error) Action {
	return &actionFunc{name: name, fn: fn}
}

// NewPrompt wraps fn as a Prompt.
func NewPrompt(name string, fn func(prompt string) (string, error)) Prompt {
	return &promptFunc{name: name, fn: fn}
}

// NewTransform wraps fn as a Transform.
func NewTransform(name string, fn func(arg string) (string, error)) Transform {
	return &transformFunc{name: name, fn: fn}
}

// NewGenerator wraps fn as a Generator.
func NewGenerator(name string, fn func() (float64, error)) Generator {
	return &generatorFunc{name: name, fn: fn}
}

func (a *actionFunc) Name() string        { return a.name }
func (a *actionFunc) Signature() Signature { return SignatureAction }
func (a *actionFunc) Do(arg string) error  { return a.fn(arg) }

func (p *promptFunc) Name() string                      { return p.name }
func (p *promptFunc) Signature() Signature              { return SignaturePrompt }
func (p *promptFunc) Ask(prompt string) (string, error) { return p.fn(prompt) }

func (t *transformFunc) Name() string                     { return t.name }
func (t *transformFunc) Signature() Signature             { return SignatureTransform }
func (t *transformFunc) Apply(arg string) (string, error) { return t.fn(arg) }

func (g *generatorFunc) Name() string               { return g.name }
func (g *generatorFunc) Signature() Signature       { return SignatureGenerator }
func (g *generatorFunc) Generate() (float64, error) { return g.fn() }
