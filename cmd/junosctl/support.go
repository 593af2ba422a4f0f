package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/netopskit/junosctl/internal/device"
	"github.com/netopskit/junosctl/internal/junos"
	"github.com/netopskit/junosctl/internal/support"
)

// NewSupportCmd creates the support command.
func NewSupportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "support <host>",
		Short: "Collect a support bundle (RSI and log archive) from a Junos device",
		Long: `Support generates Request Support Information output on the device,
archives /var/log into a compressed bundle, downloads the bundle and
optionally uploads it to an FTP server.

RSI generation can take a long time, up to 10 minutes or more on some
platforms. Please be patient.

Examples:
  junosctl support fw1.example.net
  junosctl support fw1.example.net --ftp 10.16.162.125/backups`,
		Args: cobra.ExactArgs(1),
		RunE: runSupportCmd,
	}

	addConnectionFlags(cmd)
	cmd.Flags().Int("ssh-port", device.DefaultSSHPort, "SSH port for the interactive CLI session")
	cmd.Flags().StringP("output", "o", ".", "Local directory to download the bundle into")
	cmd.Flags().String("ftp", "", "FTP destination as host[:port]/dir (credentials prompted)")

	return cmd
}

func runSupportCmd(cmd *cobra.Command, args []string) error {
	host := args[0]

	user, pass, err := deviceCredentials(cmd, host)
	if err != nil {
		return err
	}

	// Resolve the FTP destination and credentials up front so a typo does
	// not surface after a half-hour RSI run.
	var ftpTarget support.FTPTarget
	var ftpUser, ftpPass string
	if raw, _ := cmd.Flags().GetString("ftp"); raw != "" {
		ftpTarget, err = support.ParseFTPTarget(raw)
		if err != nil {
			return err
		}
		ftpUser, ftpPass, err = promptCredentials("FTP server", "")
		if err != nil {
			return err
		}
	}

	// The hostname as configured on the device names the bundle files.
	port, _ := cmd.Flags().GetInt("port")
	fmt.Printf("Connecting to %s...\n", host)
	nc, err := device.DialNETCONF(host, user, pass, port, connectTimeout)
	if err != nil {
		return errors.New(device.Describe(err))
	}
	facts, err := junos.GetFacts(nc)
	nc.Close()
	if err != nil {
		return err
	}
	fmt.Printf("Hostname: %s\n", facts.Hostname)

	sshPort, _ := cmd.Flags().GetInt("ssh-port")
	cli, err := device.DialCLI(host, user, pass, sshPort)
	if err != nil {
		return errors.New(device.Describe(err))
	}
	defer cli.Close()

	collector := &support.Collector{CLI: cli, Hostname: facts.Hostname, Now: time.Now()}

	rsi, err := collector.GenerateRSI()
	if err != nil {
		return err
	}
	fmt.Printf("RSI saved on device: %s\n", rsi)

	archive, err := collector.ArchiveLogs()
	if err != nil {
		return err
	}
	fmt.Printf("Support archive created on device: %s\n", archive)

	outDir, _ := cmd.Flags().GetString("output")
	local, err := collector.Download(archive, outDir)
	if err != nil {
		return err
	}
	fmt.Printf("Downloaded: %s\n", local)

	if ftpTarget.Addr != "" {
		if err := support.Upload(ftpTarget, ftpUser, ftpPass, local); err != nil {
			return err
		}
		fmt.Println("Upload complete")
	}
	return nil
}
