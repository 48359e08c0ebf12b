package extraction

import "github.com/shopspring/decimal"

// Extractor reconstructs a rate table from raw OCR text.
type Extractor struct {
	header *HeaderDetector
}

// NewExtractor creates an extractor using the default brand reference list.
func NewExtractor() *Extractor {
	return NewExtractorWithBrands(DefaultBrands)
}

// NewExtractorWithBrands creates an extractor with a custom reference list.
func NewExtractorWithBrands(brands []string) *Extractor {
	return &Extractor{header: NewHeaderDetector(brands)}
}

// Extract runs the full reconstruction: line classification, header
// detection and row parsing. The returned table may be empty, which signals
// "no valid table found"; it still carries the detected or default brand
// set for downstream consumers. The surcharge is nil when no anticipation
// annotation yielded a percentage.
func (e *Extractor) Extract(text string) (Table, *decimal.Decimal) {
	surcharge, candidates := Classify(text)

	brands := e.header.Detect(candidates)
	if brands == nil {
		brands = e.header.brands
	}

	table := Table{Brands: brands}
	for _, line := range candidates {
		row, ok := ParseRow(line, len(brands))
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, surcharge
}
