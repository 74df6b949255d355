// Package parser extracts dependency information from Java source files:
// declared dependencies from `using "..."` directives in the leading header
// comment, and implicit dependencies from capitalized class references that
// resolve to a public class in a sibling file.
package parser

import (
	"bufio"
	"bytes"
	"strings"
)

// Ext is the source file extension the tool operates on.
const Ext = ".java"

const directivePrefix = `using "`

// ClassName strips the source extension from a leaf filename.
func ClassName(leaf string) string {
	return strings.TrimSuffix(leaf, Ext)
}

// HeaderDeps scans the first contiguous comment block at the top of the file
// for `using "<leaf>"` directives and returns them in declaration order.
// Multiple directives on one line are each matched. Scanning stops at the
// line that closes the block, or at the first non-comment, non-empty line
// encountered outside a block. Directives below the first block are ignored.
func HeaderDeps(content []byte) []string {
	deps := make([]string, 0)
	inBlock := false

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "/*") {
			inBlock = true
		}

		if inBlock {
			rest := line
			for {
				start := strings.Index(rest, directivePrefix)
				if start == -1 {
					break
				}
				rest = rest[start+len(directivePrefix):]
				end := strings.Index(rest, `"`)
				if end == -1 {
					break
				}
				deps = append(deps, rest[:end])
				rest = rest[end+1:]
			}
		}

		if strings.HasSuffix(line, "*/") {
			break // first comment block is the whole header
		}
		if !inBlock && line != "" && !strings.HasPrefix(line, "//") {
			break // reached code before any block: the header has ended
		}
	}

	return deps
}
