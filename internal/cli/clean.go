package cli

import (
	"fmt"
	"os"

	"github.com/javelin-build/javelin/internal/config"
	"github.com/javelin-build/javelin/internal/ui"
	"github.com/spf13/cobra"
)

// RunClean removes the output directory and the build cache. Artifacts that
// are already gone are not an error.
func RunClean(cmd *cobra.Command, args []string) error {
	cfg := config.Load(".")
	out := cmd.OutOrStdout()

	var cleaned []string

	if _, err := os.Stat(cfg.OutDir); err == nil {
		if err := os.RemoveAll(cfg.OutDir); err != nil {
			return fmt.Errorf("failed to remove output directory %s: %w", cfg.OutDir, err)
		}
		cleaned = append(cleaned, cfg.OutDir)
	}

	if _, err := os.Stat(cfg.CacheFile); err == nil {
		if err := os.Remove(cfg.CacheFile); err != nil {
			return fmt.Errorf("failed to remove cache file %s: %w", cfg.CacheFile, err)
		}
		cleaned = append(cleaned, cfg.CacheFile)
	}

	if len(cleaned) == 0 {
		fmt.Fprintln(out, ui.Info.Render("Nothing to clean"))
		return nil
	}

	fmt.Fprintln(out, ui.Success.Render("Cleaned build artifacts:"))
	for _, path := range cleaned {
		fmt.Fprintf(out, "  %s %s\n", ui.Success.Render("✓"), path)
	}
	return nil
}
