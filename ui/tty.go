package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func SupportsANSICodes() bool {
	return isTerminal(os.Stdout)
}

// IsInteractive reports whether stdin can answer a prompt.
func IsInteractive() bool {
	return isTerminal(os.Stdin)
}
