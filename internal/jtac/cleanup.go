package jtac

import "strings"

// noteSuffixes are footnote markers the page appends to model and release
// cells. They carry no information once the row is extracted.
var noteSuffixes = []string{
	" (See Note 1)",
	" (See Note 2)",
	" (See Note 3)",
	" (See Note 4)",
	" (see notes)",
	" (see note)",
	" (*1)",
	" (*2)",
	" (*3)",
	" (Except the ones listed below)",
	" (recommended)",
	" (legacy)",
}

// cleanText normalises a raw table cell: the page mixes non-breaking
// spaces, tabs and inconsistent spacing around the slashes that separate
// models and releases.
func cleanText(s string) string {
	// Non-breaking spaces and tabs. Tabs separate models the same way
	// slashes do.
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\t", "/")

	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}

	s = strings.ReplaceAll(s, " / ", "/")
	s = strings.ReplaceAll(s, " /", "/")
	s = strings.ReplaceAll(s, "/ ", "/")
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}

	s = strings.ReplaceAll(s, " )", ")")
	s = strings.ReplaceAll(s, "( ", "(")

	s = strings.Trim(s, ".")

	for _, suffix := range noteSuffixes {
		s = strings.ReplaceAll(s, suffix, "")
	}
	return strings.TrimSpace(s)
}
