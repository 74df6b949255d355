// Package build orchestrates one incremental build: graph construction,
// topological ordering, staleness partitioning, a single batched compiler
// invocation, and the fingerprint store update.
package build

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/javelin-build/javelin/internal/cache"
	"github.com/javelin-build/javelin/internal/config"
	"github.com/javelin-build/javelin/internal/diag"
	"github.com/javelin-build/javelin/internal/graph"
	"github.com/javelin-build/javelin/internal/parser"
	"github.com/javelin-build/javelin/internal/ui"
)

const compilerName = "javac"

// CommandRunner executes an external command and returns its combined
// output and exit code. err is non-nil only when the command could not be
// started at all.
type CommandRunner func(name string, args ...string) (output string, exitCode int, err error)

func defaultRunner(name string, args ...string) (string, int, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), exitErr.ExitCode(), nil
		}
		return string(out), -1, err
	}
	return string(out), 0, nil
}

// Context carries one build invocation's configuration and collaborators.
// Zero-value collaborators fall back to the real thing: javac, stdout,
// stderr.
type Context struct {
	Config  config.Config
	Verbose bool
	Force   bool

	Runner CommandRunner  // compiler invocation
	Docs   diag.DocSource // suggestion source for compile diagnostics
	Out    io.Writer
	ErrOut io.Writer
}

func (c *Context) runner() CommandRunner {
	if c.Runner != nil {
		return c.Runner
	}
	return defaultRunner
}

// Stdout returns the build's standard output sink.
func (c *Context) Stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// Stderr returns the build's warning/diagnostic sink.
func (c *Context) Stderr() io.Writer {
	if c.ErrOut != nil {
		return c.ErrOut
	}
	return os.Stderr
}

// Summary reports what one build did.
type Summary struct {
	Compiled int
	Skipped  int
}

// Resolve locates the entry file: as given first, then under the source
// root.
func Resolve(cfg config.Config, mainFile string) (string, error) {
	if _, err := os.Stat(mainFile); err == nil {
		return mainFile, nil
	}
	candidate := filepath.Join(cfg.SrcDir, mainFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", &NotFoundError{File: mainFile}
}

// Build compiles mainFile and its dependency closure, recompiling only what
// the fingerprint store says is stale. The external compiler is invoked at
// most once, with the stale files in topological order.
func Build(ctx *Context, mainFile string) (*Summary, error) {
	mainPath, err := Resolve(ctx.Config, mainFile)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(ctx.Stdout(), ui.Info.Render("Checking dependencies..."))

	builder := graph.NewBuilder(ctx.Config.SrcDir, ctx.Config.AutoIncludeImplicitDeps)
	builder.OnWarning = func(w graph.Warning) { printWarning(ctx, w) }

	g, err := builder.Build(mainPath)
	if err != nil {
		return nil, err
	}

	order, err := graph.Sort(g)
	if err != nil {
		return nil, err
	}

	if ctx.Verbose {
		fmt.Fprintln(ctx.Stdout(), ui.Info.Render("Dependency graph:"))
		for _, name := range order {
			fmt.Fprintf(ctx.Stdout(), "  %s -> %v\n", name, g[name].Deps)
		}
		fmt.Fprintf(ctx.Stdout(), "%s %v\n", ui.Info.Render("Build order:"), order)
	}

	if err := os.MkdirAll(ctx.Config.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	store := cache.Load(ctx.Config.CacheFile)

	compile := make([]*graph.Node, 0, len(order))
	skipped := 0
	for _, name := range order {
		node := g[name]
		if store.NeedsRebuild(node.Name, node.Path, ctx.Config.OutDir, ctx.Force) {
			compile = append(compile, node)
		} else {
			skipped++
			if ctx.Verbose {
				fmt.Fprintf(ctx.Stdout(), "  %s Skipped %s (no changes)\n", ui.Success.Render("✓"), name)
			}
		}
	}

	if len(compile) == 0 {
		fmt.Fprintln(ctx.Stdout(), ui.Success.Render(fmt.Sprintf("Everything up to date (skipped %d files)", skipped)))
		return &Summary{Skipped: skipped}, nil
	}

	fmt.Fprintln(ctx.Stdout(), ui.Warn.Render(fmt.Sprintf("Compiling %d file(s)...", len(compile))))
	for _, node := range compile {
		fmt.Fprintf(ctx.Stdout(), "  %s\n", node.Name)
	}

	// One javac run for the whole set: the compiler resolves cross-file
	// symbols within a single invocation.
	args := make([]string, 0, len(compile)+2)
	args = append(args, "-d", ctx.Config.OutDir)
	for _, node := range compile {
		args = append(args, node.Path)
	}

	output, code, err := ctx.runner()(compilerName, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", compilerName, err)
	}
	if code != 0 {
		return nil, &CompileError{Report: diag.FormatCompileErrors(output, ctx.Docs)}
	}

	for _, node := range compile {
		hash, err := cache.HashFile(node.Path)
		if err != nil {
			fmt.Fprintln(ctx.Stderr(), ui.Warn.Render(fmt.Sprintf("Failed to fingerprint %s: %v", node.Name, err)))
			continue
		}
		store[node.Name] = cache.Entry{
			Hash:      hash,
			ClassPath: cache.ClassPath(ctx.Config.OutDir, node.Name),
		}
	}

	if err := store.Save(ctx.Config.CacheFile); err != nil {
		fmt.Fprintln(ctx.Stderr(), ui.Warn.Render(fmt.Sprintf("Failed to save cache: %v", err)))
	}

	if skipped > 0 {
		fmt.Fprintln(ctx.Stdout(), ui.Success.Render(fmt.Sprintf("Build complete (%d compiled, %d skipped)", len(compile), skipped)))
	} else {
		fmt.Fprintln(ctx.Stdout(), ui.Success.Render(fmt.Sprintf("Build complete (%d compiled)", len(compile))))
	}

	return &Summary{Compiled: len(compile), Skipped: skipped}, nil
}

func printWarning(ctx *Context, w graph.Warning) {
	switch w.Kind {
	case graph.WarnImplicitDep:
		fmt.Fprintf(ctx.Stderr(), "%s %s references class '%s' without declaring it in the header\n",
			ui.Warn.Render("warning:"), ui.Bold.Render(w.File), ui.Info.Render(w.Dep))
		if ctx.Config.AutoIncludeImplicitDeps {
			fmt.Fprintf(ctx.Stderr(), "  %s auto-including '%s%s' in compilation\n",
				ui.Success.Render("✓"), w.Dep, parser.Ext)
		} else {
			fmt.Fprintf(ctx.Stderr(), "  add 'using \"%s%s\"' to the header comment\n", w.Dep, parser.Ext)
		}
	case graph.WarnDanglingDep:
		fmt.Fprintf(ctx.Stderr(), "%s dependency not found: %s\n", ui.Warn.Render("warning:"), w.Dep)
	}
}
