package parser

import (
	"context"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// JavaParser wraps a tree-sitter parser for Java sources. It is not safe for
// concurrent use; a build holds exactly one.
type JavaParser struct {
	parser *sitter.Parser
}

// NewJavaParser creates a parser bound to the Java grammar.
func NewJavaParser() *JavaParser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())
	return &JavaParser{parser: p}
}

func (j *JavaParser) parse(content []byte) (*sitter.Tree, error) {
	return j.parser.ParseCtx(context.Background(), nil, content)
}

// ClassDecl returns the name of the first class declared in the file, or ""
// when the file declares none.
func (j *JavaParser) ClassDecl(content []byte) (string, error) {
	tree, err := j.parse(content)
	if err != nil {
		return "", err
	}
	defer tree.Close()

	name := ""
	walk(tree.RootNode(), func(n *sitter.Node) bool {
		if name != "" {
			return false
		}
		if n.Type() == "class_declaration" {
			name = declName(n, content)
		}
		return true
	})
	return name, nil
}

// PublicClasses returns the names of all public class declarations in the
// file, in document order.
func (j *JavaParser) PublicClasses(content []byte) ([]string, error) {
	tree, err := j.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	classes := make([]string, 0)
	walk(tree.RootNode(), func(n *sitter.Node) bool {
		if n.Type() == "class_declaration" && hasPublicModifier(n, content) {
			if name := declName(n, content); name != "" {
				classes = append(classes, name)
			}
		}
		return true
	})
	return classes, nil
}

// References returns the capitalized identifiers referenced by the file,
// de-duplicated and sorted. Comments are never visited, so the header block
// and line comments are excluded structurally; unlike a raw text scan this
// also never matches inside string literals.
func (j *JavaParser) References(content []byte) ([]string, error) {
	tree, err := j.parse(content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	seen := make(map[string]bool)
	walk(tree.RootNode(), func(n *sitter.Node) bool {
		t := n.Type()
		if strings.HasSuffix(t, "comment") {
			return false
		}
		if t == "identifier" || t == "type_identifier" {
			if name := n.Content(content); isClassLike(name) {
				seen[name] = true
			}
		}
		return true
	})

	refs := make([]string, 0, len(seen))
	for name := range seen {
		refs = append(refs, name)
	}
	sort.Strings(refs)
	return refs, nil
}

// walk visits node and, when fn returns true, its children.
func walk(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), fn)
	}
}

func declName(n *sitter.Node, content []byte) string {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	return nameNode.Content(content)
}

func hasPublicModifier(n *sitter.Node, content []byte) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "modifiers" {
			for _, mod := range strings.Fields(child.Content(content)) {
				if mod == "public" {
					return true
				}
			}
		}
	}
	return false
}

// isClassLike reports whether name looks like a class reference: an initial
// uppercase ASCII letter followed by alphanumerics and underscores.
func isClassLike(name string) bool {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
