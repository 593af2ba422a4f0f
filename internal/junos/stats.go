package junos

import "strings"

// IPStatistics returns the raw text of "show system statistics ip".
func IPStatistics(s Session) (string, error) {
	return s.Command("show system statistics ip")
}

// FilterFragmentation keeps only the fragmentation-related counter lines
// from a statistics listing. Matching is case-insensitive on "fragment",
// which covers "fragments received", "fragments dropped", "output datagrams
// fragmented" and friends.
func FilterFragmentation(output string) []string {
	var counters []string
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), "fragment") {
			counters = append(counters, trimmed)
		}
	}
	return counters
}
