// Package commands wires the ax CLI: every command loads an
// accessibility snapshot, runs queries against it and renders the
// result in the configured output format.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/e-sung/AxQuery/internal/version"
	"github.com/e-sung/AxQuery/pkg/config"
	"github.com/e-sung/AxQuery/pkg/logging"
	"github.com/e-sung/AxQuery/pkg/style"
)

var (
	verbosity  int
	formatFlag string
	cfg        *config.Config
)

// NewRootCmd builds the ax command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ax",
		Short: "Query accessibility trees from UI snapshots",
		Long: `ax loads a UI snapshot (YAML, JSON, TOML or XML) and runs declarative
queries against the accessibility tree it describes: find elements by
role, label, value or identifier, check their presence and count them,
the way an assistive technology would see them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(".")
			if err != nil {
				return err
			}
			if formatFlag != "" {
				cfg.Output.Format = formatFlag
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if verbosity == 0 {
				verbosity = cfg.Log.Verbosity
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "",
		"Output format: auto, term, plain or json")

	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newExistsCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newSyntaxCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ax version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

// outputFormat resolves the configured format against the terminal.
func outputFormat() style.Format {
	f, err := style.ParseFormat(cfg.Output.Format)
	if err != nil {
		f = style.FormatAuto
	}
	return style.ResolveFormat(f, os.Stdout)
}
