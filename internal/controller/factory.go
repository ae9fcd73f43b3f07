package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewUI creates a UI based on whether styled output is wanted.
// When useColor is true, it returns a StyledUI (lipgloss).
// When useColor is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useColor bool, options ...Option) UI {
	if useColor {
		return NewStyledUI(cmd, options...)
	}

	return NewSimpleUI(cmd, options...)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
