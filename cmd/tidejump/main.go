// cmd/tidejump/main.go
package main

import (
	"os"

	"golang.org/x/term"
)

func main() {
	rootCmd, c := newRootCmd()
	err := rootCmd.Execute()
	c.close()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
