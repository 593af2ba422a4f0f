// Package inventory resolves the set of target hosts for a run and
// validates host input before any connection is attempted.
package inventory

import (
	"encoding/csv"
	"fmt"
	"net"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// hostnameRe accepts RFC-952-style hostnames: dot-separated labels of
// letters, digits and hyphens, not starting or ending with a hyphen.
var hostnameRe = regexp.MustCompile(`^([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9\-]*[a-zA-Z0-9])(\.([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9\-]*[a-zA-Z0-9]))*$`)

// ValidateHost rejects host input that is neither an IP address nor a
// plausible hostname.
func ValidateHost(host string) error {
	if host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if strings.ContainsAny(host, " \t") {
		return fmt.Errorf("host %q must not contain whitespace", host)
	}
	if net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 || !hostnameRe.MatchString(host) {
		return fmt.Errorf("host %q is not a valid hostname or IP address", host)
	}
	return nil
}

// FromCSV reads hosts from a CSV file, one host in the first field of each
// row. Blank rows and rows starting with '#' are skipped.
func FromCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open host list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse host list: %w", err)
	}

	var hosts []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		host := strings.TrimSpace(row[0])
		if host == "" || strings.HasPrefix(host, "#") {
			continue
		}
		if err := ValidateHost(host); err != nil {
			return nil, err
		}
		hosts = append(hosts, host)
	}
	if len(hosts) == 0 {
		return nil, fmt.Errorf("host list %q contains no hosts", path)
	}
	return hosts, nil
}

// yamlInventory is the YAML inventory schema:
//
//	hosts:
//	  - fw1.example.net
//	  - 192.0.2.10
type yamlInventory struct {
	Hosts []string `yaml:"hosts"`
}

// FromYAML reads hosts from a YAML inventory file.
func FromYAML(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory: %w", err)
	}

	var inv yamlInventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse inventory: %w", err)
	}
	if len(inv.Hosts) == 0 {
		return nil, fmt.Errorf("inventory %q contains no hosts", path)
	}
	for _, host := range inv.Hosts {
		if err := ValidateHost(host); err != nil {
			return nil, err
		}
	}
	return inv.Hosts, nil
}

// Resolve picks the target hosts from a single host argument, a CSV file or
// a YAML inventory. Exactly one source must be given.
func Resolve(host, csvPath, yamlPath string) ([]string, error) {
	given := 0
	for _, s := range []string{host, csvPath, yamlPath} {
		if s != "" {
			given++
		}
	}
	if given == 0 {
		return nil, fmt.Errorf("specify a host, a CSV host list or a YAML inventory")
	}
	if given > 1 {
		return nil, fmt.Errorf("host, CSV host list and YAML inventory are mutually exclusive")
	}

	switch {
	case csvPath != "":
		return FromCSV(csvPath)
	case yamlPath != "":
		return FromYAML(yamlPath)
	default:
		if err := ValidateHost(host); err != nil {
			return nil, err
		}
		return []string{host}, nil
	}
}
