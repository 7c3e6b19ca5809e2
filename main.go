// SPDX-License-Identifier: MPL-2.0

// Command codefree is a configuration-driven command dispatcher.
package main

import cmd "github.com/codefree/codefree/cmd/codefree"

func main() {
	cmd.Execute()
}
