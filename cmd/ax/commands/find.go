package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/e-sung/AxQuery/pkg/engine"
	"github.com/e-sung/AxQuery/pkg/queryparse"
	"github.com/e-sung/AxQuery/pkg/snapshot"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <snapshot> <expression>",
		Short: "Find all elements matching a query",
		Long: `Find loads a snapshot and prints every exposed element matching the
query expression, in tree order. Fails when nothing matches.

  ax find screen.yaml 'role=button and label~submit'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}
			q, err := queryparse.Parse(args[1])
			if err != nil {
				return err
			}

			matches, err := engine.New().GetAll(q, root)
			if err != nil {
				return err
			}
			return renderNodes(os.Stdout, matches, outputFormat())
		},
	}
}
