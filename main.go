// bmpview reads uncompressed 24-bit bitmaps and shows them on the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/anas-shakeel/bmpview/internal/commands"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
