// Command spicy is the Spy language CLI.
package main

import (
	"os"

	"github.com/reclipse/spicy/cmd/spicy/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
