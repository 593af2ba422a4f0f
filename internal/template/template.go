// Package template loads JSON configuration templates served over HTTP and
// validates them before anything touches a device.
package template

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/netopskit/junosctl/internal/junos"
)

// Stanza is one piece of configuration to load into the candidate.
type Stanza struct {
	// Mode is "merge" or "replace".
	Mode string `json:"mode"`
	// Config is Junos text-format configuration.
	Config string `json:"config"`
}

// Template is the JSON document the pusher applies to each host.
type Template struct {
	Name    string   `json:"name"`
	Stanzas []Stanza `json:"stanzas"`
}

// Validate checks the template is usable: at least one stanza, every mode
// known, no empty configuration.
func (t *Template) Validate() error {
	if len(t.Stanzas) == 0 {
		return fmt.Errorf("template has no stanzas")
	}
	for i, st := range t.Stanzas {
		switch st.Mode {
		case junos.ActionMerge, junos.ActionReplace:
		default:
			return fmt.Errorf("stanza %d has unknown mode %q (want merge or replace)", i, st.Mode)
		}
		if strings.TrimSpace(st.Config) == "" {
			return fmt.Errorf("stanza %d has empty config", i)
		}
	}
	return nil
}

// Fetch downloads and validates a template. The URL must point at a .json
// file; this is checked before any network traffic, matching the behaviour
// operators expect from the CLI.
func Fetch(ctx context.Context, url string) (*Template, error) {
	if err := ValidateURL(url); err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webserver error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("template file does not exist (status %s)", resp.Status)
	}

	var t Template
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return nil, fmt.Errorf("malformed template: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// ValidateURL rejects template locations that are not .json files.
func ValidateURL(url string) error {
	trimmed := url
	if i := strings.IndexAny(trimmed, "?#"); i != -1 {
		trimmed = trimmed[:i]
	}
	if !strings.HasSuffix(strings.ToLower(trimmed), ".json") {
		return fmt.Errorf("template must be a .json file, got %q", url)
	}
	return nil
}
