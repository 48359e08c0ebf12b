package extraction

import (
	"sort"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// minHeaderBrands is how many distinct known brands a line must name before
// it is trusted as the table header.
const minHeaderBrands = 3

// HeaderDetector infers the ordered list of card-brand columns present in a
// table. Brand names are matched in a single pass with an Aho-Corasick
// matcher built over the known-brand reference list.
type HeaderDetector struct {
	brands  []string
	matcher *ahocorasick.Matcher
}

// NewHeaderDetector builds a detector for the given reference brand list.
func NewHeaderDetector(brands []string) *HeaderDetector {
	patterns := make([][]byte, len(brands))
	for i, b := range brands {
		patterns[i] = []byte(strings.ToLower(b))
	}
	return &HeaderDetector{
		brands:  brands,
		matcher: ahocorasick.NewMatcher(patterns),
	}
}

// Detect scans candidate lines in order and returns the brand set of the
// first line naming at least three known brands. Brands come back in
// reference-list order, not the order they appear on the line. Returns nil
// when no line qualifies; the caller falls back to the default set.
//
// The header line is left in the candidate list on purpose: it is also fed
// to the row parser and simply produces no row, since header lines rarely
// contain channel keywords.
func (d *HeaderDetector) Detect(lines []string) []string {
	for _, line := range lines {
		hits := d.matcher.Match([]byte(strings.ToLower(line)))
		if len(hits) < minHeaderBrands {
			continue
		}
		sort.Ints(hits)
		found := make([]string, 0, len(hits))
		for _, idx := range hits {
			found = append(found, d.brands[idx])
		}
		return found
	}
	return nil
}
