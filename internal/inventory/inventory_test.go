package inventory

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestValidateHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		host    string
		wantErr bool
	}{
		{"ipv4", "192.0.2.10", false},
		{"ipv6", "2001:db8::1", false},
		{"hostname", "fw1", false},
		{"fqdn", "fw1.example.net", false},
		{"hyphenated", "win-net-sw01", false},
		{"empty", "", true},
		{"whitespace", "fw1 example", true},
		{"leading hyphen", "-fw1", true},
		{"trailing hyphen label", "fw1-.example.net", true},
		{"illegal characters", "fw1_example!", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHost(tt.host)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHost(%q) = %v, wantErr %v", tt.host, err, tt.wantErr)
			}
		})
	}
}

func TestFromCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.csv")
	content := "fw1.example.net\n# staging\n\n192.0.2.10,branch office\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	hosts, err := FromCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"fw1.example.net", "192.0.2.10"}
	if !reflect.DeepEqual(hosts, want) {
		t.Errorf("hosts = %v, want %v", hosts, want)
	}
}

func TestFromCSVRejectsMalformedHost(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.csv")
	if err := os.WriteFile(path, []byte("fw1 example net\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromCSV(path); err == nil {
		t.Error("expected error for malformed host")
	}
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.yaml")
	content := "hosts:\n  - fw1.example.net\n  - 192.0.2.10\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	hosts, err := FromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"fw1.example.net", "192.0.2.10"}
	if !reflect.DeepEqual(hosts, want) {
		t.Errorf("hosts = %v, want %v", hosts, want)
	}
}

func TestFromYAMLEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.yaml")
	if err := os.WriteFile(path, []byte("hosts: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromYAML(path); err == nil {
		t.Error("expected error for empty inventory")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("single host", func(t *testing.T) {
		t.Parallel()
		hosts, err := Resolve("fw1", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(hosts, []string{"fw1"}) {
			t.Errorf("hosts = %v", hosts)
		}
	})

	t.Run("no source", func(t *testing.T) {
		t.Parallel()
		if _, err := Resolve("", "", ""); err == nil {
			t.Error("expected error when nothing is specified")
		}
	})

	t.Run("mutually exclusive", func(t *testing.T) {
		t.Parallel()
		if _, err := Resolve("fw1", "hosts.csv", ""); err == nil {
			t.Error("expected error for host and CSV together")
		}
	})

	t.Run("malformed host", func(t *testing.T) {
		t.Parallel()
		if _, err := Resolve("fw1 bad", "", ""); err == nil {
			t.Error("expected error for malformed host")
		}
	})
}
