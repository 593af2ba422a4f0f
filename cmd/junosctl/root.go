package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for junosctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "junosctl",
		Short: "Operational tools for Junos devices",
		Long: `junosctl is a collection of single-shot operational tools for Junos
devices. Each subcommand opens its own session, performs one task and
exits; devices are processed one at a time.

Device access is over NETCONF (port 830) or the interactive CLI over SSH
(port 22), with username/password authentication.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRebootCmd())
	cmd.AddCommand(NewRestartCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewSupportCmd())
	cmd.AddCommand(NewTemplateCmd())
	cmd.AddCommand(NewJTACCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
