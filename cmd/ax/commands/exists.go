package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e-sung/AxQuery/pkg/engine"
	"github.com/e-sung/AxQuery/pkg/errors"
	"github.com/e-sung/AxQuery/pkg/queryparse"
	"github.com/e-sung/AxQuery/pkg/snapshot"
	"github.com/e-sung/AxQuery/pkg/style"
)

func newExistsCmd() *cobra.Command {
	var assertAbsent bool

	cmd := &cobra.Command{
		Use:   "exists <snapshot> <expression>",
		Short: "Check whether any element matches a query",
		Long: `Exists loads a snapshot and checks whether any exposed element matches
the query expression. Exits non-zero when the check fails. With --not
the check is inverted: it fails when a match is present.`,
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
			if assertAbsent {
				if err := eng.AssertNone(q, root); err != nil {
					return err
				}
				fmt.Printf("%s no match for %s\n", style.FoundIndicator, q.Description())
				return nil
			}

			if !eng.Contains(q, root) {
				return errors.Newf(errors.ErrNoElementsFound,
					"no elements found matching %s", q.Description()).
					WithDetail("query", q.Description())
			}
			fmt.Printf("%s %s\n", style.FoundIndicator, q.Description())
			return nil
		},
	}

	cmd.Flags().BoolVar(&assertAbsent, "not", false, "Assert that no element matches")
	return cmd
}
