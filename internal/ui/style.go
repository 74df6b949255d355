// Package ui owns all terminal presentation: lipgloss styles shared across
// commands, terminal-width separators, and syntax highlighting of Java
// snippets shown in diagnostics.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	Err     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	Warn    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	Bold    = lipgloss.NewStyle().Bold(true)
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Width returns the terminal width, defaulting to 80 when it cannot be
// detected (piped output, CI).
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Separator returns a horizontal rule sized to the terminal, capped at 120
// columns for very wide terminals.
func Separator() string {
	w := Width() - 2
	if w < 40 {
		w = 40
	}
	if w > 120 {
		w = 120
	}
	return strings.Repeat("─", w)
}
