package controller

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// StyledUI renders the same report as SimpleUI with terminal colors.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a StyledUI rendering for the command's output.
func NewStyledUI(cmd *cobra.Command, options ...Option) *StyledUI {
	base := NewSimpleUI(cmd, options...)
	r := lipgloss.NewRenderer(cmd.OutOrStdout())

	base.palette = palette{
		heading:    r.NewStyle().Bold(true).Underline(true).Render,
		target:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render,
		suggestion: r.NewStyle().Foreground(lipgloss.Color("10")).Render,
		warning:    r.NewStyle().Foreground(lipgloss.Color("11")).Render,
		faint:      r.NewStyle().Faint(true).Render,
	}

	return &StyledUI{SimpleUI: base}
}
