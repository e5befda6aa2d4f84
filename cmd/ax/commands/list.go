package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/e-sung/AxQuery/pkg/engine"
	"github.com/e-sung/AxQuery/pkg/snapshot"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <snapshot>",
		Short: "List every exposed element",
		Long: `List loads a snapshot and prints every element the accessibility tree
exposes to assistive technologies, in tree order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}
			return renderNodes(os.Stdout, engine.New().Exposed(root), outputFormat())
		},
	}
}
