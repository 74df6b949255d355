package ui

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-isatty"
)

// HighlightJava renders a Java snippet with terminal syntax highlighting.
// Falls back to the plain snippet when highlighting fails or when stdout is
// not a terminal.
func HighlightJava(code string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return code
	}
	var buf strings.Builder
	if err := quick.Highlight(&buf, code, "java", "terminal256", "monokai"); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}
