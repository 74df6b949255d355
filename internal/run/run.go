// Package run builds the entry file and then executes its class through the
// external Java runtime, reclassifying runtime errors found on stderr.
package run

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/javelin-build/javelin/internal/build"
	"github.com/javelin-build/javelin/internal/diag"
	"github.com/javelin-build/javelin/internal/parser"
	"github.com/javelin-build/javelin/internal/ui"
)

const runtimeName = "java"

// ProcessRunner launches an external process and returns its captured
// stdout, stderr and exit code. err is non-nil only when the process could
// not be started.
type ProcessRunner func(name string, args ...string) (stdout, stderr string, exitCode int, err error)

func defaultRunner(name string, args ...string) (string, string, int, error) {
	cmd := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return outBuf.String(), errBuf.String(), exitErr.ExitCode(), nil
		}
		return outBuf.String(), errBuf.String(), -1, err
	}
	return outBuf.String(), errBuf.String(), 0, nil
}

// ExitError propagates the child's non-zero exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("program exited with status code: %d", e.Code)
}

// InvalidEntryError reports an entry filename without the source extension,
// from which no class name can be derived.
type InvalidEntryError struct {
	File string
}

func (e *InvalidEntryError) Error() string {
	return "invalid Java file: " + e.File
}

// Run builds mainFile and, on success, launches the entry class with the
// configured runtime options. The child's stdout is passed through verbatim;
// non-empty stderr goes through the runtime error formatter.
func Run(ctx *build.Context, runner ProcessRunner, mainFile string) error {
	if _, err := build.Build(ctx, mainFile); err != nil {
		return err
	}

	leaf := filepath.Base(mainFile)
	if !strings.HasSuffix(leaf, parser.Ext) {
		return &InvalidEntryError{File: mainFile}
	}
	className := parser.ClassName(leaf)

	fmt.Fprintf(ctx.Stdout(), "\n%s\n\n", ui.Success.Render("Running "+className+"..."))

	args := make([]string, 0, len(ctx.Config.JvmOpts)+3)
	args = append(args, "-cp", ctx.Config.OutDir)
	args = append(args, ctx.Config.JvmOpts...)
	args = append(args, className)

	if runner == nil {
		runner = defaultRunner
	}
	stdout, stderr, code, err := runner(runtimeName, args...)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", runtimeName, err)
	}

	fmt.Fprint(ctx.Stdout(), stdout)
	if stderr != "" {
		fmt.Fprintln(ctx.Stderr(), diag.FormatRuntimeErrors(stderr))
	}

	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
