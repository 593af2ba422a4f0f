package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/netopskit/junosctl/internal/junos"
)

// atLayouts are the accepted forms of the --at flag.
var atLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// NewRebootCmd creates the reboot command.
func NewRebootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reboot <host>",
		Short: "Reboot a Junos device, now or at a deferred time",
		Long: `Reboot schedules a reboot on a single Junos device.

With no scheduling flag the device reboots immediately. --at takes an
absolute local time, --in a delay in whole minutes; the two are mutually
exclusive.

Examples:
  junosctl reboot fw1.example.net
  junosctl reboot fw1.example.net --in 40
  junosctl reboot fw1.example.net --at "2026-09-01 03:00"`,
		Args: cobra.ExactArgs(1),
		RunE: runRebootCmd,
	}

	addConnectionFlags(cmd)
	cmd.Flags().String("at", "", `Reboot at an absolute time (e.g. "2026-09-01 03:00")`)
	cmd.Flags().Int("in", 0, "Reboot after a delay, in whole minutes")

	return cmd
}

func runRebootCmd(cmd *cobra.Command, args []string) error {
	host := args[0]

	opts := junos.RebootOptions{}
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		t, err := parseAt(at)
		if err != nil {
			return err
		}
		opts.At = t
	}
	opts.In, _ = cmd.Flags().GetInt("in")

	s, err := openSession(cmd, host)
	if err != nil {
		return err
	}
	defer s.Close()

	switch {
	case !opts.At.IsZero():
		fmt.Printf("Rebooting at %s\n", opts.At.Format("2006-01-02 15:04"))
	case opts.In > 0:
		fmt.Printf("Rebooting in %d minutes\n", opts.In)
	default:
		fmt.Println("Rebooting now")
	}

	result, err := junos.Reboot(s, opts)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Println(result)
	}
	return nil
}

// parseAt parses the --at flag in any of the accepted layouts, in local
// time.
func parseAt(s string) (time.Time, error) {
	for _, layout := range atLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q, use e.g. \"2006-01-02 15:04\"", s)
}
