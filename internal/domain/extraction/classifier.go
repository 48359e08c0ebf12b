package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numberPattern matches percentage-like numeric tokens: digits with an
// optional decimal separator, optionally followed by a percent sign.
var numberPattern = regexp.MustCompile(`(\d+[.,]?\d*)\s*%?`)

// Classify splits recognized text into the anticipation-fee surcharge and
// the remaining table-line candidates. Every line mentioning "antecip" that
// yields a percentage overwrites the surcharge, so when several annotations
// appear the last one processed wins.
func Classify(text string) (surcharge *decimal.Decimal, candidates []string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(strings.ToLower(line), "antecip") {
			if tokens := NumericTokens(line); len(tokens) > 0 {
				v := tokens[0]
				surcharge = &v
			}
			continue
		}
		candidates = append(candidates, line)
	}
	return surcharge, candidates
}

// NumericTokens extracts every numeric token from a line, converting comma
// decimal separators to periods. Tokens that fail to parse are dropped.
func NumericTokens(line string) []decimal.Decimal {
	matches := numberPattern.FindAllStringSubmatch(line, -1)
	tokens := make([]decimal.Decimal, 0, len(matches))
	for _, m := range matches {
		raw := strings.ReplaceAll(m[1], ",", ".")
		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		tokens = append(tokens, d)
	}
	return tokens
}
