package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/netopskit/junosctl/internal/device"
	"github.com/netopskit/junosctl/internal/inventory"
)

// connectTimeout bounds session establishment for every subcommand.
const connectTimeout = 15 * time.Second

// addConnectionFlags registers the flags shared by all device-facing
// subcommands.
func addConnectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "", "Device username (prompted when omitted)")
	cmd.Flags().Int("port", device.DefaultNETCONFPort, "NETCONF port on the device")
}

// deviceCredentials validates the host and collects credentials, prompting
// for whatever the flags did not provide.
func deviceCredentials(cmd *cobra.Command, host string) (string, string, error) {
	if err := inventory.ValidateHost(host); err != nil {
		return "", "", err
	}
	user, _ := cmd.Flags().GetString("user")
	return promptCredentials("Junos device", user)
}

// openSession validates the host, collects credentials and opens a NETCONF
// session.
func openSession(cmd *cobra.Command, host string) (*device.NETCONFSession, error) {
	user, pass, err := deviceCredentials(cmd, host)
	if err != nil {
		return nil, err
	}
	port, _ := cmd.Flags().GetInt("port")

	fmt.Printf("Connecting to %s...\n", host)
	s, err := device.DialNETCONF(host, user, pass, port, connectTimeout)
	if err != nil {
		return nil, errors.New(device.Describe(err))
	}
	return s, nil
}
