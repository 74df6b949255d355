package cli

import (
	"github.com/javelin-build/javelin/internal/build"
	"github.com/javelin-build/javelin/internal/config"
	"github.com/javelin-build/javelin/internal/docs"
	"github.com/javelin-build/javelin/internal/parser"
	"github.com/spf13/cobra"
)

// buildContext loads the project configuration and merges the persistent
// flags into a build context.
func buildContext(cmd *cobra.Command) *build.Context {
	cfg := config.Load(".")

	verbose, _ := cmd.Flags().GetBool("verbose")
	force, _ := cmd.Flags().GetBool("force")
	autoImplicit, _ := cmd.Flags().GetBool("auto-implicit")
	if autoImplicit {
		cfg.AutoIncludeImplicitDeps = true
	}

	return &build.Context{
		Config:  cfg,
		Verbose: verbose,
		Force:   force,
		Docs:    docs.Get(),
		Out:     cmd.OutOrStdout(),
		ErrOut:  cmd.ErrOrStderr(),
	}
}

// entryFile picks the file to build: the positional argument wins, then the
// configured entrypoint, then Main.java.
func entryFile(cfg config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Entrypoint != "" {
		return cfg.Entrypoint
	}
	return "Main" + parser.Ext
}
