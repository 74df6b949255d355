package parser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dependencies is what the parser extracts from one source file.
type Dependencies struct {
	// Declared holds leaf filenames exactly as written in the header.
	Declared []string
	// Implicit holds bare class names that are referenced in code, resolve
	// to a public class in a sibling file, and are not declared. Advisory:
	// the graph builder decides whether to fold them in.
	Implicit []string
}

// ParseFile extracts the declared and implicit dependencies of one source
// file.
func (j *JavaParser) ParseFile(path string) (Dependencies, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Dependencies{}, err
	}

	declared := HeaderDeps(content)
	implicit := j.implicitDeps(path, content, declared)
	return Dependencies{Declared: declared, Implicit: implicit}, nil
}

// implicitDeps returns class names referenced by the file that match a
// public class declared in a sibling file but are not in the declared list.
func (j *JavaParser) implicitDeps(path string, content []byte, declared []string) []string {
	publics := j.publicClassesInDir(path)
	if len(publics) == 0 {
		return nil
	}

	refs, err := j.References(content)
	if err != nil {
		return nil
	}

	ownClass, _ := j.ClassDecl(content)
	declaredClasses := make(map[string]bool, len(declared))
	for _, dep := range declared {
		declaredClasses[ClassName(dep)] = true
	}

	implicit := make([]string, 0)
	for _, ref := range refs {
		if ref == ownClass || declaredClasses[ref] {
			continue
		}
		if publics[ref] {
			implicit = append(implicit, ref)
		}
	}
	sort.Strings(implicit)
	return implicit
}

// publicClassesInDir scans the sibling source files of path for public class
// declarations. Unreadable directories or files yield an empty result: the
// whole mechanism is a hint, never a build failure.
func (j *JavaParser) publicClassesInDir(path string) map[string]bool {
	dir := filepath.Dir(path) // "." when the path has no parent

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	self := filepath.Clean(path)
	classes := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		sibling := filepath.Join(dir, entry.Name())
		if filepath.Clean(sibling) == self {
			continue
		}
		content, err := os.ReadFile(sibling)
		if err != nil {
			continue
		}
		names, err := j.PublicClasses(content)
		if err != nil {
			continue
		}
		for _, name := range names {
			classes[name] = true
		}
	}
	return classes
}
