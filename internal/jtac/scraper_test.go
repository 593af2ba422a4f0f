package jtac

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// samplePage holds trimmed copies of the portal's series tables, headers
// and footnote markers included.
const samplePage = `<html><body>
<table summary="EX Series Ethernet Switches">
  <tr><th>Product</th><th>Suggested Release</th><th>Last Updated</th></tr>
  <tr><td>EX2300&nbsp;/ EX3400</td><td>21.4R3-S4</td><td>12 Jun 2023</td></tr>
  <tr><td>EX4300 (See Note 1)</td><td>Latest 20.4 / 21.2</td><td>1 May 2023</td></tr>
  <tr></tr>
</table>
<table summary="J Series Service Routers">
  <tr><th>Product</th><th>Suggested Release</th><th>Last Updated</th></tr>
  <tr><td>MX240 / MX480</td><td>21.4R3</td><td>12 Jun 2023</td></tr>
  <tr><td>PTX1000</td><td>22.2R3</td><td>3 Apr 2023</td></tr>
</table>
<table summary="SRX Series Services Gateways">
  <tr><th>Product</th><th>Suggested Release</th><th>JSR</th><th>Last Updated</th></tr>
  <tr><td>Products for which 21.2 is suggested</td><td>21.2R3</td><td></td><td>12 Jun 2023</td></tr>
  <tr><td>SRX5400 / SRX5600 with SPC3</td><td>21.2R3-S3</td><td></td><td>5 Mar 2023</td></tr>
</table>
</body></html>`

func TestParseSamplePage(t *testing.T) {
	t.Parallel()

	report, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("ex series", func(t *testing.T) {
		t.Parallel()
		ex := report["ex"]
		want := []Record{
			{
				Model:       "EX2300",
				Recommended: []string{"21.4R3-S4"},
				Updated:     time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC),
			},
			{
				Model:       "EX3400",
				Recommended: []string{"21.4R3-S4"},
				Updated:     time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC),
			},
			{
				Model:       "EX4300",
				Recommended: []string{"20.4 (latest)", "21.2 (latest)"},
				Updated:     time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			},
		}
		if !reflect.DeepEqual(ex, want) {
			t.Errorf("ex records = %#v, want %#v", ex, want)
		}
	})

	t.Run("mx and ptx split from shared table", func(t *testing.T) {
		t.Parallel()
		mx := report["mx"]
		if len(mx) != 2 || mx[0].Model != "MX240" || mx[1].Model != "MX480" {
			t.Errorf("unexpected mx records: %#v", mx)
		}
		ptx := report["ptx"]
		if len(ptx) != 1 || ptx[0].Model != "PTX1000" {
			t.Errorf("unexpected ptx records: %#v", ptx)
		}
		if ptx[0].Recommended[0] != "22.2R3" {
			t.Errorf("ptx recommended = %v", ptx[0].Recommended)
		}
	})

	t.Run("srx linecard distributed and header row skipped", func(t *testing.T) {
		t.Parallel()
		srx := report["srx"]
		wantModels := []string{"SRX5400 with SPC3", "SRX5600 with SPC3"}
		if len(srx) != len(wantModels) {
			t.Fatalf("srx records = %#v, want %d entries", srx, len(wantModels))
		}
		for i, rec := range srx {
			if rec.Model != wantModels[i] {
				t.Errorf("srx model[%d] = %q, want %q", i, rec.Model, wantModels[i])
			}
			if rec.Updated != time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC) {
				t.Errorf("srx updated[%d] = %v", i, rec.Updated)
			}
		}
	})
}

func TestParseNoTables(t *testing.T) {
	t.Parallel()

	if _, err := Parse(strings.NewReader("<html><body><p>maintenance</p></body></html>")); err == nil {
		t.Error("expected error when no series tables are present")
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nbsp", "EX2300 / EX3400", "EX2300/EX3400"},
		{"tabs become slashes", "EX2\t300", "EX2/300"},
		{"duplicate spaces", "a  b   c", "a b c"},
		{"slash spacing", "a / b /c/ d", "a/b/c/d"},
		{"duplicate slashes", "a//b", "a/b"},
		{"bracket spacing", "( x )", "(x)"},
		{"trailing dots", "21.4R3.", "21.4R3"},
		{"note suffix", "EX4300 (See Note 2)", "EX4300"},
		{"legacy marker", "SRX550 (legacy)", "SRX550"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cleanText(tt.in); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitReleases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "21.4R3-S4", []string{"21.4R3-S4"}},
		{"multiple", "20.4R3/21.2R3", []string{"20.4R3", "21.2R3"}},
		{"latest multiple", "Latest 20.4/21.2", []string{"20.4 (latest)", "21.2 (latest)"}},
		{"latest single", "Latest 21.2", []string{"21.2 (latest)"}},
		{"cross reference", "See MX Series", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := splitReleases(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitReleases(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseUpdatedLenient(t *testing.T) {
	t.Parallel()

	if got := parseUpdated(""); !got.IsZero() {
		t.Errorf("empty date should be zero, got %v", got)
	}
	if got := parseUpdated("not a date"); !got.IsZero() {
		t.Errorf("garbage date should be zero, got %v", got)
	}
	got := parseUpdated("12 Jun  2023")
	if got.Year() != 2023 || got.Month() != time.June || got.Day() != 12 {
		t.Errorf("parseUpdated = %v, want 2023-06-12", got)
	}
}
