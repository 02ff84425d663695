package main

import (
	"github.com/spf13/cobra"

	"github.com/tessier-labs/authform/internal/logger"
)

type rootFlags struct {
	verbose bool
	config  string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "authform",
		Short:         "authform renders terminal authentication screens",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the signin demo.
			return runDemo(flags, log)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to a screen configuration file")

	cmd.AddCommand(newDemoCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
