// Package graph builds the dependency graph of reachable source files and
// orders it for compilation.
package graph

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javelin-build/javelin/internal/parser"
)

// Node is one reachable source file. Nodes are immutable once Build returns.
type Node struct {
	Name     string   // leaf filename, e.g. "Main.java"
	Path     string   // path the file was resolved to on disk
	Deps     []string // declared dependency leaf filenames, in declaration order
	Implicit []string // implicit dependency class names, advisory
}

// Graph maps leaf filenames to nodes. Edges run node -> declared dependency.
type Graph map[string]*Node

// WarnKind classifies advisory graph-construction findings.
type WarnKind int

const (
	// WarnImplicitDep: Dep is a class name referenced without a header
	// declaration.
	WarnImplicitDep WarnKind = iota
	// WarnDanglingDep: Dep is a declared leaf filename missing on disk. The
	// node keeps the entry; the compiler has the final word.
	WarnDanglingDep
)

// Warning is an advisory finding surfaced during graph construction.
// Presentation belongs to the caller.
type Warning struct {
	Kind WarnKind
	File string // leaf filename the warning is about
	Dep  string // the dependency involved
}

// DuplicateNameError reports two reachable files sharing a leaf filename.
// The graph is keyed by leaf name, so this is rejected outright rather than
// silently collapsing two files into one node.
type DuplicateNameError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate source file name %q: %s and %s", e.Name, e.First, e.Second)
}

// Builder constructs the dependency graph rooted at an entry file.
type Builder struct {
	// SrcDir is the base directory declared dependencies are resolved
	// against.
	SrcDir string
	// FoldImplicit appends C.java to a node's declared list for every
	// implicit class C not already declared.
	FoldImplicit bool
	// OnWarning, when set, receives advisory findings as they are detected.
	OnWarning func(Warning)

	parser *parser.JavaParser
}

// NewBuilder returns a builder resolving dependencies against srcDir.
func NewBuilder(srcDir string, foldImplicit bool) *Builder {
	return &Builder{
		SrcDir:       srcDir,
		FoldImplicit: foldImplicit,
		parser:       parser.NewJavaParser(),
	}
}

// Build performs a depth-first traversal from entry and returns the graph of
// every reachable file.
func (b *Builder) Build(entry string) (Graph, error) {
	g := make(Graph)
	visited := make(map[string]string) // leaf name -> resolved path
	if err := b.visit(entry, g, visited); err != nil {
		return nil, err
	}
	return g, nil
}

func (b *Builder) visit(path string, g Graph, visited map[string]string) error {
	name := filepath.Base(path)
	clean := filepath.Clean(path)

	if prev, ok := visited[name]; ok {
		if prev != clean {
			return &DuplicateNameError{Name: name, First: prev, Second: clean}
		}
		return nil
	}
	visited[name] = clean

	deps, err := b.parser.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, imp := range deps.Implicit {
		b.warn(Warning{Kind: WarnImplicitDep, File: name, Dep: imp})
	}

	declared := deps.Declared
	if b.FoldImplicit {
		for _, imp := range deps.Implicit {
			depFile := imp + parser.Ext
			if !contains(declared, depFile) {
				declared = append(declared, depFile)
			}
		}
	}

	for _, dep := range declared {
		depPath := filepath.Join(b.SrcDir, dep)
		if _, err := os.Stat(depPath); err != nil {
			b.warn(Warning{Kind: WarnDanglingDep, File: name, Dep: dep})
			continue
		}
		if err := b.visit(depPath, g, visited); err != nil {
			return err
		}
	}

	g[name] = &Node{
		Name:     name,
		Path:     path,
		Deps:     declared,
		Implicit: deps.Implicit,
	}
	return nil
}

func (b *Builder) warn(w Warning) {
	if b.OnWarning != nil {
		b.OnWarning(w)
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
