package diag

import (
	"fmt"
	"strings"

	"github.com/javelin-build/javelin/internal/ui"
)

const (
	stackOverflowClass = "StackOverflowError"
	exceptionMarker    = "Exception"
	framePrefix        = "at "
	causedByPrefix     = "Caused by:"
	maxFramesShown     = 10
)

// FormatRuntimeErrors classifies the runtime's standard-error output. A
// stack-overflow fingerprint gets a dedicated infinite-recursion report, a
// generic exception gets a formatted stack trace, anything else is passed
// through behind a warning prefix.
func FormatRuntimeErrors(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	if anyContains(lines, stackOverflowClass) {
		return formatStackOverflow(lines)
	}
	if anyContains(lines, exceptionMarker) {
		return formatException(lines)
	}
	return ui.Warn.Render("Error:") + "\n" + ui.Err.Render(text)
}

func formatStackOverflow(lines []string) string {
	var b strings.Builder
	b.WriteString("\n" + ui.Err.Render("Stack Overflow Error - Infinite Recursion Detected!") + "\n")
	b.WriteString(ui.Err.Render(ui.Separator()) + "\n")

	b.WriteString("\n  " + ui.Warn.Render("This usually happens when:") + "\n")
	b.WriteString("    • A method calls itself without a proper base case\n")
	b.WriteString("    • Methods call each other in a circular pattern\n")
	b.WriteString("    • A loop condition never becomes false\n\n")

	frames := stackFrames(lines)
	if len(frames) > 0 {
		b.WriteString("  " + ui.Info.Render("Top of call stack (most recent calls):") + "\n\n")

		shown := frames
		if len(shown) > maxFramesShown {
			shown = shown[:maxFramesShown]
		}
		for i, frame := range shown {
			style := ui.Info
			if isLibraryFrame(frame) {
				style = ui.Dim
			}
			b.WriteString(fmt.Sprintf("    %d. %s\n", i+1, style.Render(frame)))
		}
		if len(frames) > maxFramesShown {
			b.WriteString(fmt.Sprintf("\n    ↓ ... and %d more recursive calls\n", len(frames)-maxFramesShown))
		}
	}

	b.WriteString("\n" + ui.Err.Render(ui.Separator()) + "\n")
	b.WriteString(ui.Success.Render("Add a base case or exit condition") + " to prevent infinite recursion.\n")
	return b.String()
}

func formatException(lines []string) string {
	var b strings.Builder
	b.WriteString("\n" + ui.Err.Render("Runtime Error") + "\n")
	b.WriteString(ui.Err.Render(ui.Separator()) + "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case i == 0 && strings.Contains(trimmed, exceptionMarker):
			b.WriteString("\n  " + ui.Err.Render(trimmed) + "\n")
		case strings.HasPrefix(trimmed, framePrefix):
			if isLibraryFrame(trimmed) {
				b.WriteString("    · " + ui.Dim.Render(trimmed) + "\n")
			} else {
				b.WriteString("    → " + ui.Info.Render(trimmed) + "\n")
			}
		case strings.HasPrefix(trimmed, causedByPrefix):
			b.WriteString("\n  ↳ " + ui.Warn.Render(trimmed) + "\n")
		default:
			b.WriteString("  " + ui.Err.Render(trimmed) + "\n")
		}
	}

	b.WriteString("\n" + ui.Err.Render(ui.Separator()) + "\n")
	b.WriteString(ui.Info.Render("Check the stack trace above to find the issue.") + "\n")
	return b.String()
}

// isLibraryFrame reports whether a stack frame belongs to the platform or a
// library rather than the user's code. Module-qualified frames carry a slash
// (java.base/...); older traces name the package outright.
func isLibraryFrame(frame string) bool {
	qualified := strings.TrimPrefix(frame, framePrefix)
	return strings.Contains(qualified, "/") ||
		strings.HasPrefix(qualified, "java.") ||
		strings.HasPrefix(qualified, "jdk.") ||
		strings.HasPrefix(qualified, "sun.")
}

func stackFrames(lines []string) []string {
	frames := make([]string, 0)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, framePrefix) {
			frames = append(frames, trimmed)
		}
	}
	return frames
}

func anyContains(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
