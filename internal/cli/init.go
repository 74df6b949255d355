package cli

import (
	"fmt"
	"os"

	"github.com/javelin-build/javelin/internal/config"
	"github.com/javelin-build/javelin/internal/ui"
	"github.com/spf13/cobra"
)

const configTemplate = `# javelin configuration

# Directory containing your Java source files.
src_dir: "."

# Directory where compiled .class files are written.
out_dir: "./out"

# Location of the build cache.
cache_file: "./javelin-cache.json"

# File to build when no argument is given.
entrypoint: "Main.java"

# JVM options passed to java when running your program.
jvm_opts: []

# Fold referenced-but-undeclared classes into the compile set.
auto_include_implicit_deps: false
`

// RunInit writes a starter javelin.yaml. An existing file is only replaced
// when --force is set.
func RunInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(config.FileName); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", config.FileName)
	}

	if err := os.WriteFile(config.FileName, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Created %s\n", ui.Success.Render("✓"), config.FileName)
	fmt.Fprintln(out, ui.Dim.Render("Edit it to match your project layout."))
	return nil
}
