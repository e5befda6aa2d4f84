package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/e-sung/AxQuery/pkg/config"
	"github.com/e-sung/AxQuery/pkg/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ax configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default .axquery.toml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ".axquery.toml"
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrAlreadyExists,
					"%s already exists", path).WithDetail("path", path)
			}

			rendered, err := config.Default().TOML()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", path)
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := cfg.TOML()
			if err != nil {
				return err
			}
			fmt.Print(rendered)
			return nil
		},
	}
}
