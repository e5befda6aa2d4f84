package commands

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/e-sung/AxQuery/pkg/style"
)

//go:embed syntax.md
var syntaxDoc string

func newSyntaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: "Show the query expression syntax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat() != style.FormatTerminal {
				fmt.Print(syntaxDoc)
				return nil
			}
			fmt.Print(renderMarkdown(syntaxDoc))
			return nil
		},
	}
}

// renderMarkdown converts markdown to terminal output, falling back to
// the raw text when the renderer fails.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
