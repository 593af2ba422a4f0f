package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netopskit/junosctl/internal/device"
	"github.com/netopskit/junosctl/internal/inventory"
	"github.com/netopskit/junosctl/internal/junos"
	"github.com/netopskit/junosctl/internal/template"
)

// NewTemplateCmd creates the template command.
func NewTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template <template-url>",
		Short: "Push a JSON configuration template to one or more devices",
		Long: `Template downloads a JSON configuration template over HTTP and loads
its stanzas into the candidate configuration of each target device.

Each stanza carries a mode ("merge" or "replace") and Junos text-format
configuration. Without --commit the candidate is validated with a commit
check and then rolled back. Hosts with uncommitted candidate changes are
skipped. Devices are processed one at a time; a failing host is logged
and the run continues.

A timestamped run log is appended to junosctl-template-<year>-<month>.log
in the current directory.

Examples:
  junosctl template http://10.0.0.5/share/web-filtering.json --host srx1
  junosctl template http://10.0.0.5/share/web-filtering.json --file hosts.csv --commit
  junosctl template http://10.0.0.5/share/web-filtering.json --inventory hosts.yaml --show-diff`,
		Args: cobra.ExactArgs(1),
		RunE: runTemplateCmd,
	}

	addConnectionFlags(cmd)
	cmd.Flags().String("host", "", "A single target host")
	cmd.Flags().StringP("file", "f", "", "CSV file with one host per line")
	cmd.Flags().StringP("inventory", "i", "", "YAML inventory file with a hosts list")
	cmd.Flags().BoolP("commit", "c", false, "Commit changes (otherwise commit-check and roll back)")
	cmd.Flags().Bool("show-diff", false, "Show the configuration changes for each host")

	return cmd
}

func runTemplateCmd(cmd *cobra.Command, args []string) error {
	url := args[0]

	host, _ := cmd.Flags().GetString("host")
	csvPath, _ := cmd.Flags().GetString("file")
	yamlPath, _ := cmd.Flags().GetString("inventory")
	hosts, err := inventory.Resolve(host, csvPath, yamlPath)
	if err != nil {
		return err
	}

	// Fetch and validate the template before touching any device.
	tmpl, err := template.Fetch(cmd.Context(), url)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded template %q with %d stanza(s)\n", tmpl.Name, len(tmpl.Stanzas))

	user, _ := cmd.Flags().GetString("user")
	user, pass, err := promptCredentials("Junos device", user)
	if err != nil {
		return err
	}

	runLog, err := template.OpenRunLog("")
	if err != nil {
		return err
	}
	defer runLog.Close()
	runLog.Entry("begin run, template %s, %d host(s)", url, len(hosts))

	port, _ := cmd.Flags().GetInt("port")
	commit, _ := cmd.Flags().GetBool("commit")
	showDiff, _ := cmd.Flags().GetBool("show-diff")

	failed := 0
	for _, h := range hosts {
		if err := pushTemplate(h, user, pass, port, tmpl, commit, showDiff, runLog); err != nil {
			failed++
			log.Errorf("%s: %v", h, err)
			runLog.Entry("%s: ERROR: %v", h, err)
		}
	}

	runLog.Entry("finished run, %d of %d host(s) failed", failed, len(hosts))
	if failed > 0 {
		return fmt.Errorf("%d of %d host(s) failed", failed, len(hosts))
	}
	return nil
}

// pushTemplate applies the template to one host.
func pushTemplate(host, user, pass string, port int, tmpl *template.Template, commit, showDiff bool, runLog *template.RunLog) error {
	fmt.Printf("\nConnecting to %s...\n", host)
	runLog.Entry("connecting to %s", host)

	s, err := device.DialNETCONF(host, user, pass, port, connectTimeout)
	if err != nil {
		return fmt.Errorf("%s", device.Describe(err))
	}
	defer s.Close()

	// Leave devices with pending work alone.
	pending, err := junos.Diff(s)
	if err != nil {
		return err
	}
	if pending != "" {
		fmt.Printf("Uncommitted config found, skipping %s\n", host)
		runLog.Entry("%s already has uncommitted config, skipping", host)
		return nil
	}

	for _, stanza := range tmpl.Stanzas {
		if err := junos.LoadText(s, stanza.Config, stanza.Mode); err != nil {
			runLog.Entry("%s: load failed, rolling back", host)
			if rbErr := junos.Rollback(s); rbErr != nil {
				log.Errorf("rollback failed on %s: %v", host, rbErr)
			}
			return err
		}
	}

	diff, err := junos.Diff(s)
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Println("No changes to commit")
		runLog.Entry("%s: no changes", host)
		return nil
	}

	fmt.Println("Additional configuration added to candidate config")
	if showDiff {
		fmt.Println(diff)
	}

	if !commit {
		fmt.Println("Config will not be committed. Use --commit to commit changes.")
		if err := junos.CommitCheck(s); err != nil {
			fmt.Println("There is an error with this config:")
			fmt.Println(err)
		}
		if err := junos.Rollback(s); err != nil {
			return err
		}
		runLog.Entry("%s: checked and rolled back", host)
		return nil
	}

	fmt.Println("Committing config...")
	if err := junos.Commit(s); err != nil {
		fmt.Println("Rolling back changes")
		if rbErr := junos.Rollback(s); rbErr != nil {
			log.Errorf("rollback failed on %s: %v", host, rbErr)
		}
		return err
	}
	fmt.Println("Done")
	runLog.Entry("committed config to %s", host)
	return nil
}
