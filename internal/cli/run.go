package cli

import (
	"github.com/javelin-build/javelin/internal/run"
	"github.com/spf13/cobra"
)

// RunRun builds the entry file and launches it on the JVM.
func RunRun(cmd *cobra.Command, args []string) error {
	ctx := buildContext(cmd)
	return run.Run(ctx, nil, entryFile(ctx.Config, args))
}
