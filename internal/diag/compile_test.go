package diag

import (
	"strings"
	"testing"
)

// fakeDocs implements DocSource for a single class.
type fakeDocs struct {
	class   string
	methods []MethodSig
}

func (f fakeDocs) Methods(class string) ([]MethodSig, bool) {
	if class != f.class {
		return nil, false
	}
	return f.methods, true
}

const javacUnknownMethod = `Main.java:5: error: cannot find symbol
        String result = text.subString(1);
                            ^
  symbol:   method subString(int)
  location: variable text of type String
1 error
`

func TestParseCompilerOutput(t *testing.T) {
	issues := ParseCompilerOutput(javacUnknownMethod)
	if len(issues) != 1 {
		t.Fatalf("parsed %d issues, want 1", len(issues))
	}

	issue := issues[0]
	if issue.File != "Main.java" {
		t.Errorf("File = %q", issue.File)
	}
	if issue.Line != 5 {
		t.Errorf("Line = %d", issue.Line)
	}
	if issue.Message != "cannot find symbol" {
		t.Errorf("Message = %q", issue.Message)
	}
	if issue.Code != "String result = text.subString(1);" {
		t.Errorf("Code = %q", issue.Code)
	}
	if issue.CaretOffset != 20 {
		t.Errorf("CaretOffset = %d, want 20", issue.CaretOffset)
	}
	if issue.Method != "subString" {
		t.Errorf("Method = %q", issue.Method)
	}
	if issue.Class != "String" {
		t.Errorf("Class = %q", issue.Class)
	}
	if len(issue.Notes) != 2 {
		t.Errorf("Notes = %v", issue.Notes)
	}
}

func TestParseCompilerOutputMultipleErrors(t *testing.T) {
	out := `A.java:3: error: ';' expected
        int x = 1
                 ^
B.java:7: error: cannot find symbol
        Foo f;
        ^
  symbol:   class Foo
  location: class B
2 errors
`
	issues := ParseCompilerOutput(out)
	if len(issues) != 2 {
		t.Fatalf("parsed %d issues, want 2", len(issues))
	}
	if issues[0].File != "A.java" || issues[0].Line != 3 {
		t.Errorf("first issue = %+v", issues[0])
	}
	if issues[1].File != "B.java" || issues[1].Class != "B" {
		t.Errorf("second issue = %+v", issues[1])
	}
}

func TestEnrichAttachesSuggestions(t *testing.T) {
	docs := fakeDocs{
		class: "String",
		methods: []MethodSig{
			{Name: "substring", Signature: "String substring(int beginIndex)"},
			{Name: "subSequence", Signature: "CharSequence subSequence(int begin, int end)"},
			{Name: "length", Signature: "int length()"},
		},
	}

	issues := ParseCompilerOutput(javacUnknownMethod)
	Enrich(issues, docs)

	if len(issues[0].Suggestions) == 0 {
		t.Fatal("no suggestions attached")
	}
	if issues[0].Suggestions[0].Name != "substring" {
		t.Errorf("first suggestion = %+v", issues[0].Suggestions[0])
	}
}

func TestFormatCompileErrorsReport(t *testing.T) {
	docs := fakeDocs{
		class: "String",
		methods: []MethodSig{
			{Name: "substring", Signature: "String substring(int beginIndex)"},
		},
	}

	report := FormatCompileErrors(javacUnknownMethod, docs)

	for _, want := range []string{
		"Compilation Failed",
		"Error #1",
		"Main.java",
		"cannot find symbol",
		"Did you mean:",
		"substring(int beginIndex)",
		"1 error",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestFormatCompileErrorsUnparsedFallback(t *testing.T) {
	raw := "error: invalid flag: -bogus\nUsage: javac <options> <source files>"
	report := FormatCompileErrors(raw, fakeDocs{})

	if !strings.Contains(report, "Compilation Failed") {
		t.Errorf("report missing header:\n%s", report)
	}
	if !strings.Contains(report, "invalid flag: -bogus") {
		t.Errorf("raw output not preserved:\n%s", report)
	}
}
