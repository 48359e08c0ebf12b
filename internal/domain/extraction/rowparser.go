package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// termPattern matches settlement terms like "D+30", "d + 2".
var termPattern = regexp.MustCompile(`(?i)D\s*\+\s*\d+`)

// channelKeywords mark a line as a payment-channel label. "x" covers
// installment notation such as "2x" and "12x".
var channelKeywords = []string{
	"debito",
	"débito",
	"credito",
	"crédito",
	"avista",
	"a vista",
	"x",
}

// LooksLikeChannel reports whether a line textually resembles a
// payment-channel label. Lines failing this test are non-data noise
// (titles, footers, the header line) and are dropped silently.
func LooksLikeChannel(line string) bool {
	lower := strings.ToLower(line)
	for _, k := range channelKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// ParseRow turns one candidate line into a table row with nBrands rate
// columns. The rate list is right-padded with absent cells; numeric tokens
// beyond the brand count are dropped. Returns ok=false when the line has no
// channel keyword.
func ParseRow(line string, nBrands int) (Row, bool) {
	if !LooksLikeChannel(line) {
		return Row{}, false
	}
	tokens := NumericTokens(line)
	rates := make([]*decimal.Decimal, nBrands)
	for i := 0; i < nBrands && i < len(tokens); i++ {
		v := tokens[i]
		rates[i] = &v
	}
	row := Row{
		ChannelText:    line,
		Rates:          rates,
		SettlementTerm: SettlementTerm(line),
	}
	return row, true
}

// SettlementTerm extracts the first "D+N" token from a line, with
// whitespace removed and letters upper-cased. Empty string when absent.
func SettlementTerm(line string) string {
	m := termPattern.FindString(line)
	if m == "" {
		return ""
	}
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, m)
	return strings.ToUpper(stripped)
}
