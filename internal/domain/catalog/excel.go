package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/normalization"
)

const catalogSheet = "BASE_PLANOS"

var catalogHeader = []any{
	"plan_name", "canal", "bandeira", "parcela_de", "parcela_ate",
	"mdr", "prazo_recebimento", "taxa_antecipacao", "hash_plano", "data_criacao",
}

// ExcelStore persists the catalog in a BASE_PLANOS worksheet. Appends are
// whole-file rewrites, so the store serializes writers in-process and
// applies an optimistic revision check: a commit is rejected with
// ErrCatalogChanged when the sheet gained rows since it was last loaded.
type ExcelStore struct {
	path string

	mu sync.Mutex
	// revision is the data-row count observed at the last Load; -1 until
	// the catalog has been loaded once.
	revision int
}

// NewExcelStore creates a store backed by the workbook at path. The file
// and sheet are created on first use if missing.
func NewExcelStore(path string) *ExcelStore {
	return &ExcelStore{path: path, revision: -1}
}

// Load reads the full catalog, initializing an empty one if needed.
func (s *ExcelStore) Load(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.openOrInit()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := readEntries(f)
	if err != nil {
		return nil, err
	}
	s.revision = len(entries)
	return entries, nil
}

// Append adds the batch to the sheet and rewrites the workbook.
func (s *ExcelStore) Append(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return ErrNoRecords
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.openOrInit()
	if err != nil {
		return err
	}
	defer f.Close()

	existing, err := readEntries(f)
	if err != nil {
		return err
	}
	if s.revision >= 0 && len(existing) != s.revision {
		return ErrCatalogChanged
	}

	// Row 1 is the header; data starts at row 2.
	base := len(existing) + 2
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, base+i)
		if err != nil {
			return fmt.Errorf("catalog row address: %w", err)
		}
		if err := f.SetSheetRow(catalogSheet, cell, entryRow(e)); err != nil {
			return fmt.Errorf("write catalog row: %w", err)
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save catalog %s: %w", s.path, err)
	}
	s.revision = len(existing) + len(entries)
	return nil
}

// openOrInit opens the workbook, creating the file and the BASE_PLANOS
// sheet with the fixed header when either is missing.
func (s *ExcelStore) openOrInit() (*excelize.File, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		if err := s.create(); err != nil {
			return nil, err
		}
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", s.path, err)
	}

	idx, err := f.GetSheetIndex(catalogSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("inspect catalog %s: %w", s.path, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(catalogSheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("create catalog sheet: %w", err)
		}
		if err := f.SetSheetRow(catalogSheet, "A1", &catalogHeader); err != nil {
			f.Close()
			return nil, fmt.Errorf("write catalog header: %w", err)
		}
		if err := f.SaveAs(s.path); err != nil {
			f.Close()
			return nil, fmt.Errorf("save catalog %s: %w", s.path, err)
		}
	}
	return f, nil
}

func (s *ExcelStore) create() error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), catalogSheet); err != nil {
		return fmt.Errorf("create catalog sheet: %w", err)
	}
	if err := f.SetSheetRow(catalogSheet, "A1", &catalogHeader); err != nil {
		return fmt.Errorf("write catalog header: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("create catalog %s: %w", s.path, err)
	}
	return nil
}

func readEntries(f *excelize.File) ([]Entry, error) {
	rows, err := f.GetRows(catalogSheet)
	if err != nil {
		return nil, fmt.Errorf("read catalog sheet: %w", err)
	}

	var entries []Entry
	for i, row := range rows {
		if i == 0 {
			continue
		}
		e, ok := parseRow(row)
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func entryRow(e Entry) *[]any {
	surcharge := ""
	if e.Record.SurchargeRate != nil {
		surcharge = e.Record.SurchargeRate.StringFixed(4)
	}
	row := []any{
		e.PlanName,
		string(e.Record.Channel),
		e.Record.Brand,
		e.Record.InstallmentFrom,
		e.Record.InstallmentTo,
		e.Record.Rate.StringFixed(4),
		e.Record.SettlementTerm,
		surcharge,
		e.Fingerprint,
		e.CreatedAt.UTC().Format(time.RFC3339),
	}
	return &row
}

// parseRow converts one sheet row back into an Entry. Rows without a plan
// name or with unreadable numerics are skipped rather than failing the
// whole load; the sheet is hand-editable and partial garbage is expected.
func parseRow(row []string) (Entry, bool) {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	if cell(0) == "" {
		return Entry{}, false
	}
	from, err := strconv.Atoi(cell(3))
	if err != nil {
		return Entry{}, false
	}
	to, err := strconv.Atoi(cell(4))
	if err != nil {
		return Entry{}, false
	}
	rate, err := decimal.NewFromString(cell(5))
	if err != nil {
		return Entry{}, false
	}

	var surcharge *decimal.Decimal
	if raw := cell(7); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			surcharge = &d
		}
	}

	createdAt, _ := time.Parse(time.RFC3339, cell(9))

	return Entry{
		PlanName: cell(0),
		Record: normalization.Record{
			Channel:         normalization.Channel(cell(1)),
			Brand:           cell(2),
			InstallmentFrom: from,
			InstallmentTo:   to,
			Rate:            rate,
			SettlementTerm:  cell(6),
			SurchargeRate:   surcharge,
		},
		Fingerprint: cell(8),
		CreatedAt:   createdAt,
	}, true
}
