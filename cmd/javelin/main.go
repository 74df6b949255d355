package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/javelin-build/javelin/internal/build"
	"github.com/javelin-build/javelin/internal/cli"
	"github.com/javelin-build/javelin/internal/run"
	"github.com/javelin-build/javelin/internal/ui"
)

var version = "0.2.0"

func main() {
	rootCmd := cli.NewRootCommand(version)
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// Compile reports are already formatted; everything else gets the
	// standard error style.
	var compileErr *build.CompileError
	if errors.As(err, &compileErr) {
		fmt.Fprintln(os.Stderr, compileErr.Report)
	} else {
		fmt.Fprintln(os.Stderr, ui.Err.Render(err.Error()))
	}

	// A non-zero exit from the child program is passed through.
	var exitErr *run.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		os.Exit(exitErr.Code)
	}
	os.Exit(1)
}
