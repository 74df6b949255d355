package cache

import (
	"os"
	"path/filepath"

	"github.com/javelin-build/javelin/internal/parser"
)

const artifactExt = ".class"

// ClassPath derives the artifact path for a source leaf filename under
// outDir.
func ClassPath(outDir, name string) string {
	return filepath.Join(outDir, parser.ClassName(name)+artifactExt)
}

// NeedsRebuild applies the staleness decision table, first match wins:
// force, missing artifact, missing cache entry, fingerprint mismatch, skip.
//
// Staleness is deliberately not transitive: only the node's own bytes are
// consulted. When a dependency's public shape changes without changing this
// file's text, javac's type checking catches the common cases; the subtle
// ones need --force.
func (c Cache) NeedsRebuild(name, srcPath, outDir string, force bool) bool {
	if force {
		return true
	}
	if _, err := os.Stat(ClassPath(outDir, name)); err != nil {
		return true
	}
	entry, ok := c[name]
	if !ok {
		return true
	}
	current, err := HashFile(srcPath)
	if err != nil {
		return true
	}
	return current != entry.Hash
}
