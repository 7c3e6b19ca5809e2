// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/codefree/codefree/internal/console"
)

// Names of the standard builtins, as written inside function{...}.
const (
	NamePrint   = "print"
	NameInput   = "input"
	NameRandom  = "random"
	NameChoice  = "choice"
	NameShuffle = "shuffle"
	NameBool    = "bool"
	NameInt     = "int"
	NameLen     = "len"
)

// ErrEmptyArgument is returned by builtins that need at least one word.
var ErrEmptyArgument = errors.New("argument is empty")

// IO is the capability set the standard builtins act on.
type IO struct {
	Console *console.Console
	// Rand drives random, choice and shuffle. A time-seeded source is used
	// when nil.
	Rand *rand.Rand
}

// Standard returns the registry of all standard builtins bound to caps.
func Standard(caps IO) *Registry {
	rng := caps.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	con := caps.Console

	return MustRegistry(
		NewAction(NamePrint, func(arg string) error {
			con.Println(arg)
			return nil
		}),
		NewPrompt(NameInput, func(prompt string) (string, error) {
			return ask(con, prompt)
		}),
		NewGenerator(NameRandom, func() (float64, error) {
			return rng.Float64(), nil
		}),
		NewTransform(NameChoice, func(arg string) (string, error) {
			words := strings.Fields(arg)
			if len(words) == 0 {
				return "", fmt.Errorf("%s: %w", NameChoice, ErrEmptyArgument)
			}
			return words[rng.IntN(len(words))], nil
		}),
		NewTransform(NameShuffle, func(arg string) (string, error) {
			words := strings.Fields(arg)
			rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
			return strings.Join(words, " "), nil
		}),
		NewTransform(NameBool, func(arg string) (string, error) {
			return strconv.FormatBool(arg != ""), nil
		}),
		NewTransform(NameInt, func(arg string) (string, error) {
			n, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil {
				return "", fmt.Errorf("%s: %w", NameInt, err)
			}
			return strconv.Itoa(n), nil
		}),
		NewTransform(NameLen, func(arg string) (string, error) {
			return strconv.Itoa(utf8.RuneCountInString(arg)), nil
		}),
	)
}

// ask prints prompt and reads one line. End of input is an empty answer.
func ask(con *console.Console, prompt string) (string, error) {
	con.Print(prompt)
	answer, err := con.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", NameInput, err)
	}
	return answer, nil
}
