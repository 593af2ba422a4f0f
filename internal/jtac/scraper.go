// Package jtac scrapes the JTAC recommended-release page and yields
// per-model recommended-version records.
package jtac

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
)

// DefaultURL is the JTAC "suggested releases" knowledge-base article.
const DefaultURL = "https://supportportal.juniper.net/s/article/Junos-Software-Versions-Suggested-Releases-to-Consider-and-Evaluate?language=en_US"

// Record is one recommended-release entry for a device model.
type Record struct {
	// Model is the cleaned-up model identifier, e.g. "EX4300".
	Model string
	// Recommended lists the recommended releases. Entries carry a
	// " (latest)" suffix when the page marks them "Latest".
	Recommended []string
	// Updated is when JTAC last revised the entry. Zero when the page has
	// no date for the row.
	Updated time.Time
}

// Report maps a series key (ex, acx, mx, ptx, nfx, qfx, srx) to its records.
type Report map[string][]Record

// Series lists the report keys in display order.
var Series = []string{"ex", "acx", "mx", "ptx", "nfx", "qfx", "srx"}

// seriesTable describes how one product line's table is located and read.
// MX and PTX share the table the page still labels "J Series"; they are
// split by model prefix. The updated-date column differs per table.
type seriesTable struct {
	key       string
	summary   string
	dateCol   int
	skipModel func(raw string) bool
}

var seriesTables = []seriesTable{
	{key: "ex", summary: "EX Series Ethernet Switches", dateCol: 2},
	{key: "acx", summary: "ACX Series Service Routers", dateCol: 2},
	{key: "mx", summary: "J Series Service Routers", dateCol: 2,
		skipModel: func(raw string) bool { return strings.Contains(raw, "PTX") }},
	{key: "ptx", summary: "J Series Service Routers", dateCol: 2,
		skipModel: func(raw string) bool { return strings.Contains(raw, "MX") }},
	{key: "nfx", summary: "NFX Series Network Services Platform", dateCol: 4},
	{key: "qfx", summary: "QFX Series Service Routers", dateCol: 2,
		skipModel: func(raw string) bool { return strings.Contains(raw, "Release Considerations") }},
	{key: "srx", summary: "SRX Series Services Gateways", dateCol: 3,
		skipModel: func(raw string) bool { return strings.Contains(raw, "Products for which") }},
}

// Scraper fetches and parses the recommended-release page.
type Scraper struct {
	url    string
	client *http.Client
}

// New returns a Scraper for the given page URL. An empty url means
// DefaultURL.
func New(url string) *Scraper {
	if url == "" {
		url = DefaultURL
	}
	return &Scraper{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Scrape downloads the page and returns the parsed report.
func (s *Scraper) Scrape(ctx context.Context) (Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	log.Debugf("fetching %s", s.url)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JTAC page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JTAC page returned status %s", resp.Status)
	}

	body, err := decodeUTF8(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(body))
}

// Parse reads the page HTML and extracts every series table.
func Parse(r io.Reader) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JTAC page: %w", err)
	}

	report := Report{}
	var missing []string
	for _, tbl := range seriesTables {
		sel := doc.Find(fmt.Sprintf("table[summary=%q]", tbl.summary))
		if sel.Length() == 0 {
			missing = append(missing, tbl.key)
			continue
		}
		report[tbl.key] = parseTable(sel.First(), tbl)
	}
	if len(report) == 0 {
		return nil, fmt.Errorf("no series tables found, missing: %s", strings.Join(missing, ", "))
	}
	for _, key := range missing {
		log.Warnf("series table %q not found on page", key)
	}
	return report, nil
}

// parseTable reads every data row of one series table.
func parseTable(table *goquery.Selection, tbl seriesTable) []Record {
	var records []Record
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		// Header and spacer rows have no td cells, or too few to hold the
		// updated-date column.
		if len(cells) <= tbl.dateCol {
			return
		}
		if tbl.skipModel != nil && tbl.skipModel(cells[0]) {
			return
		}

		releases := splitReleases(cleanText(cells[1]))
		if len(releases) == 0 {
			return
		}
		updated := parseUpdated(cells[tbl.dateCol])

		for _, model := range splitModels(tbl.key, cleanText(cells[0])) {
			records = append(records, Record{
				Model:       model,
				Recommended: releases,
				Updated:     updated,
			})
		}
	})
	return records
}

// splitModels expands a model cell into individual model identifiers.
// Most tables pack several models per row separated by slashes; the SRX
// table appends a "with <linecard>" qualifier that applies to every model
// in the row, and a few PTX/MX rows use commas because the slash is part of
// the model name.
func splitModels(series, model string) []string {
	switch series {
	case "srx":
		return splitSRXModels(model)
	case "ptx":
		if strings.Contains(model, "PTX10008") {
			return splitList(model, ", ")
		}
	case "mx":
		if strings.Contains(model, "MIC") {
			return splitList(model, ", ")
		}
	}
	if strings.Contains(model, "/") {
		return splitList(model, "/")
	}
	return splitList(model, ", ")
}

// splitSRXModels distributes a trailing "with <linecard>" qualifier over
// every slash-separated model in the cell.
func splitSRXModels(model string) []string {
	linecard := ""
	if i := strings.Index(model, "with"); i != -1 {
		linecard = model[i+len("with"):]
	}
	if !strings.Contains(model, "/") {
		return []string{strings.TrimSpace(model)}
	}

	var models []string
	for _, part := range strings.Split(model, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if linecard == "" {
			models = append(models, part)
			continue
		}
		if strings.Contains(part, "with") {
			// Already qualified; the linecard came from this part.
			models = append(models, part)
			continue
		}
		models = append(models, part+" with"+linecard)
	}
	return models
}

// splitReleases expands a release cell into individual releases. A cell
// marked "Latest" yields entries suffixed with " (latest)".
func splitReleases(raw string) []string {
	if raw == "" || strings.Contains(raw, "See MX Series") {
		return nil
	}
	latest := strings.Contains(strings.ToLower(raw), "latest")
	raw = strings.ReplaceAll(raw, "Latest ", "")

	releases := splitList(raw, "/")
	if latest {
		for i := range releases {
			releases[i] += " (latest)"
		}
	}
	return releases
}

// parseUpdated parses the free-form updated column. The page is
// inconsistent about date formats, so parsing is lenient; an empty or
// unparseable cell yields the zero time.
func parseUpdated(raw string) time.Time {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "\u00a0", " "))
	for strings.Contains(raw, "  ") {
		raw = strings.ReplaceAll(raw, "  ", " ")
	}
	if raw == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		log.Debugf("unparseable updated date %q: %v", raw, err)
		return time.Time{}
	}
	return t
}

// splitList splits on sep, trimming each part and dropping empties.
func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// decodeUTF8 converts a response body to UTF-8 based on the declared or
// sniffed charset.
func decodeUTF8(r io.Reader, contentType string) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if utf8.Valid(data) {
			return data, nil
		}
		return nil, err
	}
	return decoded, nil
}
