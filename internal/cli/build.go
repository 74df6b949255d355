package cli

import (
	"github.com/javelin-build/javelin/internal/build"
	"github.com/spf13/cobra"
)

// RunBuild compiles the entry file and everything it depends on.
func RunBuild(cmd *cobra.Command, args []string) error {
	ctx := buildContext(cmd)
	_, err := build.Build(ctx, entryFile(ctx.Config, args))
	return err
}
