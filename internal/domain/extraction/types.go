// Package extraction reconstructs a structured rate table from the raw text
// lines an OCR engine produced for a photographed MDR pricing table.
package extraction

import "github.com/shopspring/decimal"

// DefaultBrands is the fallback column order when no header line is detected.
var DefaultBrands = []string{"VISA", "MASTERCARD", "ELO", "AMEX", "HIPERCARD"}

// Row is one reconstructed table line. Rates align positionally with the
// table's brand set; a nil entry means the cell was absent or unreadable.
type Row struct {
	ChannelText    string             `json:"channel_text"`
	Rates          []*decimal.Decimal `json:"rates"`
	SettlementTerm string             `json:"settlement_term"`
}

// Table is the reconstructed wide table: one row per recognized channel
// line, columns ordered {channel, brands..., settlement term}.
type Table struct {
	Brands []string `json:"brands"`
	Rows   []Row    `json:"rows"`
}

// Empty reports whether no line qualified as a table row. An empty table is
// the designed "no valid table found" signal, not an error.
func (t Table) Empty() bool { return len(t.Rows) == 0 }
