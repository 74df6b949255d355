package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/javelin-build/javelin/internal/build"
	"github.com/javelin-build/javelin/internal/graph"
	"github.com/javelin-build/javelin/internal/parser"
	"github.com/javelin-build/javelin/internal/ui"
	"github.com/spf13/cobra"
)

// RunTree prints the dependency tree rooted at the entry file. Implicit
// dependencies are shown in magenta unless they were folded into the
// declared set.
func RunTree(cmd *cobra.Command, args []string) error {
	ctx := buildContext(cmd)

	mainPath, err := build.Resolve(ctx.Config, entryFile(ctx.Config, args))
	if err != nil {
		return err
	}

	builder := graph.NewBuilder(ctx.Config.SrcDir, ctx.Config.AutoIncludeImplicitDeps)
	g, err := builder.Build(mainPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Info.Render("Dependency tree:"))
	fmt.Fprintln(out)

	visited := make(map[string]bool)
	printTree(out, g, filepath.Base(mainPath), 0, visited)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s implicit dependencies are shown in %s\n",
		ui.Info.Render("note:"), ui.Magenta.Render("magenta"))
	return nil
}

func printTree(w io.Writer, g graph.Graph, name string, depth int, visited map[string]bool) {
	pad := strings.Repeat("  ", depth)

	if visited[name] {
		fmt.Fprintf(w, "%s%s %s %s\n", pad,
			ui.Accent.Render("└─"), ui.Warn.Render(name), ui.Dim.Render("(already shown)"))
		return
	}
	visited[name] = true

	node, ok := g[name]
	if !ok {
		return
	}

	if depth == 0 {
		root := ui.Success.Bold(true)
		fmt.Fprintln(w, root.Render(node.Name))
	} else {
		fmt.Fprintf(w, "%s%s %s\n", pad, ui.Accent.Render("└─"), ui.Success.Render(node.Name))
	}

	for _, dep := range node.Deps {
		printTree(w, g, dep, depth+1, visited)
	}

	for _, imp := range node.Implicit {
		leaf := imp + parser.Ext
		if slices.Contains(node.Deps, leaf) {
			continue // folded into the declared set
		}
		fmt.Fprintf(w, "%s%s %s %s\n", strings.Repeat("  ", depth+1),
			ui.Accent.Render("└─"), ui.Magenta.Render(leaf), ui.Dim.Render("(implicit)"))
		if _, ok := g[leaf]; ok {
			printTree(w, g, leaf, depth+2, visited)
		}
	}
}
