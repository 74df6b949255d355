package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the javelin command tree.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "javelin",
		Short: "An incremental build tool for Java",
		Long: `Javelin drives javac incrementally. It discovers the dependency closure of
an entry file from 'using "..."' header directives, recompiles only the files
whose content changed since the last build, and can run the result.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Force a full rebuild, ignoring the cache")
	rootCmd.PersistentFlags().Bool("auto-implicit", false, "Fold implicit dependencies into the compile set")

	buildCmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Build a Java file and its dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunBuild,
	}

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Build and run a Java file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunRun,
	}

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build artifacts and the build cache",
		Args:  cobra.NoArgs,
		RunE:  RunClean,
	}

	treeCmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the dependency tree of a Java file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunTree,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a javelin.yaml in the current directory",
		Args:  cobra.NoArgs,
		RunE:  RunInit,
	}

	docsCmd := &cobra.Command{
		Use:   "docs <class> [method]",
		Short: "Look up a class in the bundled Java API docs",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  RunDocs,
	}

	rootCmd.AddCommand(buildCmd, runCmd, cleanCmd, treeCmd, initCmd, docsCmd)
	return rootCmd
}
