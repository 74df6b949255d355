package cli

import (
	"fmt"
	"strings"

	"github.com/javelin-build/javelin/internal/docs"
	"github.com/javelin-build/javelin/internal/ui"
	"github.com/spf13/cobra"
)

const maxDocSuggestions = 10

// RunDocs prints the methods of a class from the bundled API index. When the
// class is unknown, close matches are suggested instead. An optional second
// argument filters methods by substring.
func RunDocs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	index := docs.Get()

	pkg, class, ok := index.ClassWithPackage(args[0])
	if !ok {
		matches := index.SearchClasses(args[0])
		if len(matches) == 0 {
			return fmt.Errorf("class %q not found in the bundled docs", args[0])
		}
		fmt.Fprintln(out, ui.Info.Render("No exact match. Did you mean one of these?"))
		for i, fqn := range matches {
			if i == maxDocSuggestions {
				fmt.Fprintf(out, "  %s\n", ui.Dim.Render(fmt.Sprintf("... and %d more", len(matches)-maxDocSuggestions)))
				break
			}
			fmt.Fprintf(out, "  • %s\n", ui.Success.Render(fqn))
		}
		return nil
	}

	var filter string
	if len(args) > 1 {
		filter = strings.ToLower(args[1])
	}

	fmt.Fprintf(out, "\nMethods in %s.%s:\n\n",
		ui.Warn.Render(pkg.Name), ui.Success.Render(class.Name))

	shown := 0
	for _, method := range class.Methods {
		if filter != "" && !strings.Contains(strings.ToLower(method.Name), filter) {
			continue
		}
		for _, overload := range method.Overloads {
			fmt.Fprintf(out, "  %s\n", ui.HighlightJava(overload.Signature))
			if overload.Description != "" {
				fmt.Fprintf(out, "    %s\n", ui.Dim.Render(overload.Description))
			}
			if overload.Deprecated {
				fmt.Fprintf(out, "    %s\n", ui.Warn.Render("Deprecated."))
			}
			shown++
		}
	}

	if shown == 0 {
		fmt.Fprintln(out, ui.Dim.Render("  no matching methods"))
		return nil
	}
	fmt.Fprintf(out, "\n%d method(s)\n", shown)
	return nil
}
