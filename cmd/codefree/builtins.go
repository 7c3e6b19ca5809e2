// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/codefree/codefree/internal/builtin"
	"github.com/codefree/codefree/internal/console"
	"github.com/codefree/codefree/internal/issue"

	"github.com/spf13/cobra"
)

var builtinDescriptions = map[string]string{
	builtin.NamePrint:   "Prints the argument.",
	builtin.NameInput:   "Prints the argument as a prompt, reads a line and echoes it.",
	builtin.NameRandom:  "Prints a random number in [0, 1).",
	builtin.NameChoice:  "Prints one random word of the argument.",
	builtin.NameShuffle: "Prints the words of the argument in random order.",
	builtin.NameBool:    "Prints true for a non-empty argument, false otherwise.",
	builtin.NameInt:     "Prints the argument as a base-10 integer.",
	builtin.NameLen:     "Prints the number of characters in the argument.",
}

func newBuiltinsCommand(app *App) *cobra.Command {
	var plain bool

	builtinsCmd := &cobra.Command{
		Use:   "builtins",
		Short: "List the builtins commands can be bound to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listBuiltins(cmd.Context(), app, plain)
		},
	}

	builtinsCmd.Flags().BoolVar(&plain, "plain", false, "print one name and signature per line without markdown rendering")

	return builtinsCmd
}

func listBuiltins(ctx context.Context, app *App, plain bool) error {
	cfg, err := app.settings(ctx)
	if err != nil {
		return err
	}

	reg := builtin.Standard(builtin.IO{Console: console.New(strings.NewReader(""), io.Discard)})

	if plain {
		for _, name := range reg.Names() {
			inv, _ := reg.Lookup(name)
			fmt.Fprintf(app.stdout, "%s\t%s\n", name, inv.Signature())
		}
		return nil
	}

	rendered, err := issue.RenderMarkdown(builtinsMarkdown(reg), glamourStyle(cfg.UI.ColorScheme))
	if err != nil {
		return fmt.Errorf("render builtins: %w", err)
	}
	fmt.Fprint(app.stdout, rendered)
	return nil
}

func builtinsMarkdown(reg *builtin.Registry) string {
	var sb strings.Builder

	sb.WriteString("# Builtins\n\n")
	sb.WriteString("Bind a command with `<label> <command>=function{<builtin>}`.\n\n")
	sb.WriteString("| Builtin | Signature | Description |\n")
	sb.WriteString("|---|---|---|\n")
	for _, name := range reg.Names() {
		inv, _ := reg.Lookup(name)
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", name, inv.Signature(), builtinDescriptions[name])
	}
	return sb.String()
}
