package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/javelin-build/javelin/internal/ui"
)

const (
	errorMarker      = ": error:"
	maxContextLines  = 7
	maxSuggestions   = 3
	sourceExtMarker  = ".java:"
	symbolPrefix     = "symbol:"
	locationPrefix   = "location:"
	methodMarker     = "method "
	classMarker      = "class "
	typeMarker       = "type "
)

// CompileIssue is one parsed error group from the compiler's output.
type CompileIssue struct {
	File        string
	Line        int
	Message     string
	Code        string   // offending source line, trimmed
	CaretOffset int      // caret column within the trimmed code line, -1 when absent
	Notes       []string // symbol:/location: and other context lines
	Method      string   // unknown method name when the symbol is a method
	Class       string   // class named by the location line
	Suggestions []MethodSig
}

// ParseCompilerOutput extracts structured error groups from the compiler's
// line-oriented textual errors.
func ParseCompilerOutput(text string) []CompileIssue {
	lines := strings.Split(text, "\n")
	issues := make([]CompileIssue, 0)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.Contains(line, sourceExtMarker) || !strings.Contains(line, errorMarker) {
			continue
		}

		markerPos := strings.Index(line, errorMarker)
		fileAndLine := line[:markerPos]
		message := strings.TrimSpace(line[markerPos+len(errorMarker):])

		lastColon := strings.LastIndex(fileAndLine, ":")
		if lastColon == -1 {
			continue
		}
		lineNum, err := strconv.Atoi(fileAndLine[lastColon+1:])
		if err != nil {
			continue
		}

		issue := CompileIssue{
			File:        fileAndLine[:lastColon],
			Line:        lineNum,
			Message:     message,
			CaretOffset: -1,
		}

		// The offending source line usually follows, then the caret line.
		if i+1 < len(lines) {
			code := lines[i+1]
			trimmed := strings.TrimSpace(code)
			if trimmed != "" && !strings.HasPrefix(trimmed, "^") {
				issue.Code = trimmed
				if i+2 < len(lines) {
					caret := lines[i+2]
					caretTrimmed := strings.TrimLeft(caret, " \t")
					if strings.HasPrefix(caretTrimmed, "^") {
						leading := len(code) - len(strings.TrimLeft(code, " \t"))
						caretCol := len(caret) - len(caretTrimmed)
						if caretCol > leading {
							issue.CaretOffset = caretCol - leading
						} else {
							issue.CaretOffset = 0
						}
					}
				}
			}
		}

		// Context lines: symbol/location details emitted under the caret.
		for j := i + 3; j < len(lines) && j < i+3+maxContextLines; j++ {
			context := strings.TrimSpace(lines[j])
			if context == "" {
				break
			}
			switch {
			case strings.HasPrefix(context, symbolPrefix), strings.HasPrefix(context, locationPrefix):
				issue.Notes = append(issue.Notes, context)
				parseSymbolContext(&issue, context)
			case strings.Contains(context, sourceExtMarker), isErrorCountLine(context):
				j = len(lines) // next error group or the summary: stop
			default:
				issue.Notes = append(issue.Notes, context)
			}
		}

		issues = append(issues, issue)
	}

	return issues
}

func parseSymbolContext(issue *CompileIssue, context string) {
	if strings.HasPrefix(context, symbolPrefix) && strings.Contains(context, methodMarker) {
		part := context[strings.Index(context, methodMarker)+len(methodMarker):]
		name := strings.TrimSpace(strings.SplitN(part, "(", 2)[0])
		if name != "" {
			issue.Method = name
		}
	}
	if strings.HasPrefix(context, locationPrefix) {
		// "location: ... type ClassName" wins over "location: class ClassName".
		if idx := strings.Index(context, typeMarker); idx != -1 {
			issue.Class = firstField(context[idx+len(typeMarker):])
		} else if idx := strings.Index(context, classMarker); idx != -1 {
			issue.Class = firstField(context[idx+len(classMarker):])
		}
	}
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func isErrorCountLine(line string) bool {
	return strings.HasSuffix(line, " error") || strings.HasSuffix(line, " errors")
}

// Enrich attaches documentation-backed method suggestions to every issue
// whose unknown symbol is a method on a known class.
func Enrich(issues []CompileIssue, docs DocSource) {
	for i := range issues {
		if issues[i].Method != "" && issues[i].Class != "" {
			issues[i].Suggestions = Suggest(docs, issues[i].Class, issues[i].Method, maxSuggestions)
		}
	}
}

// FormatCompileErrors parses, enriches and renders the compiler's output
// into the report surfaced to the user.
func FormatCompileErrors(text string, docs DocSource) string {
	issues := ParseCompilerOutput(text)
	Enrich(issues, docs)
	return renderCompileReport(text, issues)
}

func renderCompileReport(raw string, issues []CompileIssue) string {
	var b strings.Builder
	b.WriteString("\n" + ui.Err.Render("Compilation Failed") + "\n")

	if len(issues) == 0 {
		// Unrecognized output shape: show it as-is.
		b.WriteString("\n")
		for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
			b.WriteString("  " + ui.Err.Render(line) + "\n")
		}
		return b.String()
	}

	for n, issue := range issues {
		header := fmt.Sprintf("Error #%d ", n+1)
		b.WriteString("\n" + ui.Warn.Render(header+strings.Repeat("─", 40)) + "\n")
		b.WriteString("  " + ui.Info.Render(issue.File) + "\n")
		b.WriteString("  Line " + ui.Warn.Render(strconv.Itoa(issue.Line)) + "\n")
		b.WriteString("  " + issue.Message + "\n")

		if issue.Code != "" {
			b.WriteString("\n  " + ui.HighlightJava(issue.Code) + "\n")
			if issue.CaretOffset >= 0 {
				b.WriteString("  " + strings.Repeat(" ", issue.CaretOffset) + ui.Err.Render("^") + "\n")
			}
		}

		for _, note := range issue.Notes {
			b.WriteString("    " + ui.Dim.Render("• "+note) + "\n")
		}

		if len(issue.Suggestions) > 0 {
			b.WriteString("\n  " + ui.Warn.Render("Did you mean:") + "\n")
			b.WriteString(fmt.Sprintf("    → Instead of %s.%s(), try:\n",
				ui.Success.Render(issue.Class), ui.Err.Render(issue.Method)))
			for _, s := range issue.Suggestions {
				b.WriteString("      • " + ui.HighlightJava(s.Signature) + "\n")
			}
		}
	}

	word := "error"
	if len(issues) != 1 {
		word = "errors"
	}
	b.WriteString("\n" + ui.Warn.Render(ui.Separator()) + "\n")
	b.WriteString(ui.Err.Render(fmt.Sprintf("%d %s", len(issues), word)) + "\n\n")
	b.WriteString(ui.Info.Render("Fix the errors above and try again.") + "\n")
	return b.String()
}
