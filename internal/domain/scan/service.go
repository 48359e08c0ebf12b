// Package scan orchestrates one upload session: OCR, table reconstruction,
// normalization, fingerprinting and catalog matching.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/catalog"
	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/extraction"
	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/fingerprint"
	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/normalization"
	"github.com/FACorreiaa/mdr-plan-scanner/pkg/ocr"
)

// Service wires the OCR collaborator, the extraction pipeline and the plan
// catalog together. Every method is a synchronous computation; the only
// shared state is the catalog store.
type Service struct {
	engine    ocr.Engine
	store     catalog.Store
	extractor *extraction.Extractor
	logger    *slog.Logger

	ocrLanguage  string
	ocrThreshold uint8
}

// NewService creates the scan service.
func NewService(engine ocr.Engine, store catalog.Store, logger *slog.Logger, language string, threshold uint8) *Service {
	return &Service{
		engine:       engine,
		store:        store,
		extractor:    extraction.NewExtractor(),
		logger:       logger,
		ocrLanguage:  language,
		ocrThreshold: threshold,
	}
}

// Evaluation is the outcome of running the normalizer onward over a table.
type Evaluation struct {
	Records     []normalization.Record `json:"records"`
	Fingerprint string                 `json:"fingerprint"`
	Matches     []string               `json:"matches"`
}

// Result is the full outcome for one scanned image.
type Result struct {
	SessionID     uuid.UUID        `json:"session_id"`
	Table         extraction.Table `json:"table"`
	SurchargeRate *decimal.Decimal `json:"surcharge_rate,omitempty"`
	Evaluation    Evaluation       `json:"evaluation"`
}

// ScanImage runs the whole pipeline over an uploaded image. An empty table
// in the result means no valid table was found; that is surfaced to the
// operator, not an error.
func (s *Service) ScanImage(ctx context.Context, image []byte) (*Result, error) {
	recognized, err := s.engine.Recognize(ctx, ocr.Input{
		Image:     image,
		Languages: []string{s.ocrLanguage},
		Threshold: s.ocrThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}

	table, surcharge := s.extractor.Extract(recognized.PlainText)
	eval, err := s.Evaluate(ctx, table, surcharge)
	if err != nil {
		return nil, err
	}

	result := &Result{
		SessionID:     uuid.New(),
		Table:         table,
		SurchargeRate: surcharge,
		Evaluation:    *eval,
	}
	s.logger.Info("scan complete",
		"session", result.SessionID,
		"rows", len(table.Rows),
		"records", len(eval.Records),
		"matches", len(eval.Matches),
	)
	return result, nil
}

// Evaluate runs the normalizer onward over a (possibly human-edited) table.
// The catalog is only consulted when there is something to fingerprint.
func (s *Service) Evaluate(ctx context.Context, table extraction.Table, surcharge *decimal.Decimal) (*Evaluation, error) {
	records := normalization.Normalize(table, surcharge)
	fp := fingerprint.Compute(records)

	var matches []string
	if fp != fingerprint.Empty {
		entries, err := s.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		matches = catalog.Match(entries, fp)
	}
	return &Evaluation{Records: records, Fingerprint: fp, Matches: matches}, nil
}

// SavePlan commits the record set under an operator-supplied name and
// returns the stored fingerprint. Input validation happens before the
// store is touched, so a rejected commit leaves the catalog alone.
func (s *Service) SavePlan(ctx context.Context, records []normalization.Record, planName string) (string, error) {
	fp := fingerprint.Compute(records)
	entries, err := catalog.NewEntries(planName, fp, records, time.Now().UTC())
	if err != nil {
		return "", err
	}
	if err := s.store.Append(ctx, entries); err != nil {
		return "", fmt.Errorf("append catalog: %w", err)
	}
	s.logger.Info("plan saved", "plan", planName, "records", len(entries), "fingerprint", fp)
	return fp, nil
}

// SearchPlans fuzzy-searches existing plan names.
func (s *Service) SearchPlans(ctx context.Context, query string, limit int) ([]string, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.SearchNames(entries, query, limit), nil
}

// ExportEntries loads the catalog for export surfaces.
func (s *Service) ExportEntries(ctx context.Context) ([]catalog.Entry, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return entries, nil
}
