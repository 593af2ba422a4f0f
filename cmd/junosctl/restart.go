package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netopskit/junosctl/internal/junos"
)

// NewRestartCmd creates the restart command.
func NewRestartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart <host> <process>",
		Short: "Restart a named process on a Junos device",
		Long: `Restart gracefully restarts a Junos process (SIGTERM). With --kill the
process is restarted immediately (SIGKILL).

Restarting the forwarding process drops management access for several
minutes on small platforms; losing the session mid-restart is expected.

Examples:
  junosctl restart fw1.example.net firewall
  junosctl restart fw1.example.net routing --kill`,
		Args: cobra.ExactArgs(2),
		RunE: runRestartCmd,
	}

	addConnectionFlags(cmd)
	cmd.Flags().BoolP("kill", "k", false, "Restart immediately (SIGKILL) instead of gracefully")

	return cmd
}

func runRestartCmd(cmd *cobra.Command, args []string) error {
	host, process := args[0], args[1]
	kill, _ := cmd.Flags().GetBool("kill")

	if process == junos.ForwardingProcess {
		fmt.Println("This will restart the forwarding process.")
		fmt.Println("You will lose access to the device temporarily (5+ minutes for small devices).")
	}

	s, err := openSession(cmd, host)
	if err != nil {
		return err
	}
	defer s.Close()

	if kill {
		fmt.Println("Restart initiated (SIGKILL)")
	} else {
		fmt.Println("Restart initiated (SIGTERM)")
	}

	result, err := junos.RestartProcess(s, process, kill)
	if err != nil {
		if junos.IsExpectedForwardingDrop(process, err) {
			fmt.Printf("Disconnected from %s.\n", host)
			fmt.Println("This is normal when restarting the forwarding process.")
			return nil
		}
		return err
	}

	if result != "" {
		fmt.Println(result)
	}
	fmt.Println("Restart complete")
	return nil
}
