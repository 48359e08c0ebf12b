package normalization

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/extraction"
)

// ratePrecision is the number of decimal digits kept on stored rates.
const ratePrecision = 4

// Record is one canonical (channel, brand) rate entry. The surcharge is the
// session-wide anticipation fee, attached uniformly to every record.
type Record struct {
	Channel         Channel          `json:"channel" csv:"channel"`
	Brand           string           `json:"brand" csv:"brand"`
	InstallmentFrom int              `json:"installment_from" csv:"installment_from"`
	InstallmentTo   int              `json:"installment_to" csv:"installment_to"`
	Rate            decimal.Decimal  `json:"rate" csv:"rate"`
	SettlementTerm  string           `json:"settlement_term" csv:"settlement_term"`
	SurchargeRate   *decimal.Decimal `json:"surcharge_rate,omitempty" csv:"surcharge_rate"`
}

// Normalize melts the wide table into zero or more records per row: one per
// brand column holding a present rate. Rows whose channel text matches no
// rule are dropped entirely; absent cells are skipped. Both are expected
// heuristic misses, correctable through the editable-table step, so neither
// is an error. May return an empty slice.
func Normalize(table extraction.Table, surcharge *decimal.Decimal) []Record {
	var records []Record
	for _, row := range table.Rows {
		channel, ok := ResolveChannel(row.ChannelText)
		if !ok {
			continue
		}
		from, to := channel.InstallmentRange()
		term := normalizeTerm(row.SettlementTerm)

		for i, brand := range table.Brands {
			if i >= len(row.Rates) || row.Rates[i] == nil {
				continue
			}
			records = append(records, Record{
				Channel:         channel,
				Brand:           brand,
				InstallmentFrom: from,
				InstallmentTo:   to,
				Rate:            row.Rates[i].Round(ratePrecision),
				SettlementTerm:  term,
				SurchargeRate:   surcharge,
			})
		}
	}
	return records
}

// ParseCell parses a human-edited cell value into a rate. Empty cells and
// unparsable values both come back as nil: the cell is skipped, never an
// error.
func ParseCell(raw string) *decimal.Decimal {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if trimmed == "" {
		return nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(trimmed, ",", "."))
	if err != nil {
		return nil
	}
	return &d
}

// normalizeTerm strips whitespace and upper-cases a settlement term, so
// edited values like "d + 30" land as "D+30".
func normalizeTerm(term string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, term)
	return strings.ToUpper(stripped)
}
