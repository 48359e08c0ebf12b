package catalog

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRow is the flat CSV projection of an Entry, using the catalog's
// canonical column names.
type csvRow struct {
	PlanName        string `csv:"plan_name"`
	Channel         string `csv:"canal"`
	Brand           string `csv:"bandeira"`
	InstallmentFrom int    `csv:"parcela_de"`
	InstallmentTo   int    `csv:"parcela_ate"`
	Rate            string `csv:"mdr"`
	SettlementTerm  string `csv:"prazo_recebimento"`
	SurchargeRate   string `csv:"taxa_antecipacao"`
	Fingerprint     string `csv:"hash_plano"`
	CreatedAt       string `csv:"data_criacao"`
}

// ExportCSV writes catalog entries to w as CSV with a header row.
func ExportCSV(w io.Writer, entries []Entry) error {
	rows := make([]csvRow, len(entries))
	for i, e := range entries {
		surcharge := ""
		if e.Record.SurchargeRate != nil {
			surcharge = e.Record.SurchargeRate.StringFixed(4)
		}
		rows[i] = csvRow{
			PlanName:        e.PlanName,
			Channel:         string(e.Record.Channel),
			Brand:           e.Record.Brand,
			InstallmentFrom: e.Record.InstallmentFrom,
			InstallmentTo:   e.Record.InstallmentTo,
			Rate:            e.Record.Rate.StringFixed(4),
			SettlementTerm:  e.Record.SettlementTerm,
			SurchargeRate:   surcharge,
			Fingerprint:     e.Fingerprint,
			CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("write catalog csv: %w", err)
	}
	return nil
}
