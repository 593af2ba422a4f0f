package junos

import "testing"

const sampleSoftwareInfo = `
<software-information>
  <host-name>fw-branch-01</host-name>
  <product-model>srx300</product-model>
  <product-name>srx300</product-name>
  <junos-version>21.4R3-S4</junos-version>
</software-information>`

func TestParseFacts(t *testing.T) {
	t.Parallel()

	facts, err := ParseFacts(sampleSoftwareInfo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if facts.Hostname != "fw-branch-01" {
		t.Errorf("hostname = %q, want fw-branch-01", facts.Hostname)
	}
	if facts.Model != "srx300" {
		t.Errorf("model = %q, want srx300", facts.Model)
	}
	if facts.Version != "21.4R3-S4" {
		t.Errorf("version = %q, want 21.4R3-S4", facts.Version)
	}
}

func TestParseFactsRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseFacts("not xml at all <"); err == nil {
		t.Error("expected error for malformed reply")
	}
	if _, err := ParseFacts("<software-information/>"); err == nil {
		t.Error("expected error for reply without hostname")
	}
}

func TestGetFactsSendsRPC(t *testing.T) {
	t.Parallel()

	s := &fakeSession{reply: sampleSoftwareInfo}
	if _, err := GetFacts(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.rpcs) != 1 || s.rpcs[0] != "<get-software-information/>" {
		t.Errorf("unexpected rpcs: %v", s.rpcs)
	}
}
