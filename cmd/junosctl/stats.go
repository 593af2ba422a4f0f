package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netopskit/junosctl/internal/junos"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <host>",
		Short: "Show IP fragmentation counters from a Junos device",
		Long: `Stats runs "show system statistics ip" on the device and prints only
the fragmentation-related counters. Use --all to print the full listing.`,
		Args: cobra.ExactArgs(1),
		RunE: runStatsCmd,
	}

	addConnectionFlags(cmd)
	cmd.Flags().Bool("all", false, "Print the full statistics listing instead of the fragmentation counters")

	return cmd
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	output, err := junos.IPStatistics(s)
	if err != nil {
		return err
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		fmt.Println(output)
		return nil
	}

	counters := junos.FilterFragmentation(output)
	if len(counters) == 0 {
		fmt.Println("No fragmentation counters found in the statistics output.")
		return nil
	}
	for _, line := range counters {
		fmt.Println(line)
	}
	return nil
}
