package parser

import (
	"reflect"
	"testing"
)

func TestClassName(t *testing.T) {
	if got := ClassName("Main.java"); got != "Main" {
		t.Errorf("ClassName(Main.java) = %q, want Main", got)
	}
	if got := ClassName("Helper"); got != "Helper" {
		t.Errorf("ClassName(Helper) = %q, want Helper", got)
	}
}

func TestHeaderDeps(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "block comment with directives",
			content: `/*
 * using "Helper.java"
 * using "Util.java"
 */
public class Main {}`,
			want: []string{"Helper.java", "Util.java"},
		},
		{
			name:    "no header",
			content: `public class Main {}`,
			want:    []string{},
		},
		{
			name: "multiple directives on one line",
			content: `/*
 * using "A.java" using "B.java"
 */
class Main {}`,
			want: []string{"A.java", "B.java"},
		},
		{
			name: "line comments before block are skipped",
			content: `// note
/* using "Dep.java" */
class Main {}`,
			want: []string{"Dep.java"},
		},
		{
			name: "only first comment block is scanned",
			content: `/*
 * using "First.java"
 */
class Main {}
/*
 * using "Second.java"
 */`,
			want: []string{"First.java"},
		},
		{
			name: "unterminated directive is ignored",
			content: `/*
 * using "Broken.java
 */
class Main {}`,
			want: []string{},
		},
		{
			name: "code before comment ends the scan",
			content: `class Main {}
/* using "Late.java" */`,
			want: []string{},
		},
		{
			name:    "empty file",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeaderDeps([]byte(tt.content))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HeaderDeps() = %v, want %v", got, tt.want)
			}
		})
	}
}
