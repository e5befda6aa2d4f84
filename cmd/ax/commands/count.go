package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e-sung/AxQuery/pkg/engine"
	"github.com/e-sung/AxQuery/pkg/queryparse"
	"github.com/e-sung/AxQuery/pkg/snapshot"
)

func newCountCmd() *cobra.Command {
	var expect int

	cmd := &cobra.Command{
		Use:   "count <snapshot> <expression>",
		Short: "Count elements matching a query",
		Long: `Count loads a snapshot and prints how many exposed elements match the
query expression. With --expect the command fails unless the count is
exactly the expected one.`,
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

			eng := engine.New()
			matches := eng.QueryAll(q, root)
			fmt.Println(len(matches))

			if expect >= 0 {
				return eng.AssertCount(q, root, expect)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&expect, "expect", -1, "Fail unless exactly this many elements match")
	return cmd
}
