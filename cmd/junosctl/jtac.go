package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netopskit/junosctl/internal/jtac"
)

// NewJTACCmd creates the jtac command.
func NewJTACCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jtac",
		Short: "Show JTAC-recommended Junos versions per device model",
		Long: `JTAC scrapes the Juniper support portal's suggested-releases article
and prints the recommended Junos version for each device model, with the
date the recommendation was last updated.

Examples:
  junosctl jtac
  junosctl jtac --series srx`,
		Args: cobra.NoArgs,
		RunE: runJTACCmd,
	}

	cmd.Flags().String("url", jtac.DefaultURL, "URL of the recommended-releases page")
	cmd.Flags().StringP("series", "s", "", "Only show one series (ex, acx, mx, ptx, nfx, qfx, srx)")

	return cmd
}

func runJTACCmd(cmd *cobra.Command, _ []string) error {
	series, _ := cmd.Flags().GetString("series")
	series = strings.ToLower(series)
	if series != "" && !validSeries(series) {
		return fmt.Errorf("unknown series %q, choose one of %s", series, strings.Join(jtac.Series, ", "))
	}

	url, _ := cmd.Flags().GetString("url")
	report, err := jtac.New(url).Scrape(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, key := range jtac.Series {
		if series != "" && key != series {
			continue
		}
		records, ok := report[key]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "\n%s series\n", strings.ToUpper(key))
		for _, rec := range records {
			fmt.Fprintf(out, "Model: %s\n", rec.Model)
			fmt.Fprintf(out, "Recommended: %s\n", strings.Join(rec.Recommended, ", "))
			if !rec.Updated.IsZero() {
				fmt.Fprintf(out, "Updated: %s\n", rec.Updated.Format("2006-01-02"))
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}

func validSeries(s string) bool {
	for _, key := range jtac.Series {
		if key == s {
			return true
		}
	}
	return false
}
