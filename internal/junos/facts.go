package junos

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Facts are the identity fields read from a device at connect time.
type Facts struct {
	Hostname string
	Model    string
	Version  string
}

// softwareInformation mirrors the <software-information> reply of
// <get-software-information/>.
type softwareInformation struct {
	XMLName  xml.Name `xml:"software-information"`
	Hostname string   `xml:"host-name"`
	Model    string   `xml:"product-model"`
	Version  string   `xml:"junos-version"`
}

// GetFacts reads hostname, model and version from the device.
func GetFacts(s Session) (Facts, error) {
	data, err := s.Exec("<get-software-information/>")
	if err != nil {
		return Facts{}, fmt.Errorf("failed to read device facts: %w", err)
	}
	return ParseFacts(data)
}

// ParseFacts decodes a <software-information> reply body.
func ParseFacts(data string) (Facts, error) {
	var info softwareInformation
	if err := xml.Unmarshal([]byte(data), &info); err != nil {
		return Facts{}, fmt.Errorf("failed to parse software information: %w", err)
	}
	f := Facts{
		Hostname: strings.TrimSpace(info.Hostname),
		Model:    strings.TrimSpace(info.Model),
		Version:  strings.TrimSpace(info.Version),
	}
	if f.Hostname == "" {
		return Facts{}, fmt.Errorf("no hostname in software information reply")
	}
	return f, nil
}
