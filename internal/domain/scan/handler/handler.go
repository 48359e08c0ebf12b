// Package handler exposes the operator-facing HTTP surface.
package handler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/catalog"
	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/extraction"
	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/normalization"
	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/scan"
	"github.com/FACorreiaa/mdr-plan-scanner/pkg/ocr"
)

// Handler holds the HTTP handlers for the scan API.
type Handler struct {
	svc    *scan.Service
	logger *slog.Logger
}

// New creates the handler.
func New(svc *scan.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the API routes on the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/scans", h.handleScan)
	app.Post("/api/evaluations", h.handleEvaluate)
	app.Post("/api/plans", h.handleSavePlan)
	app.Get("/api/plans/search", h.handleSearch)
	app.Get("/api/catalog.csv", h.handleExport)
}

// tableRequest is the editable-table contract: the client sends back the
// reconstructed table, possibly corrected by a human. Cells arrive as raw
// strings so a bad edit degrades to a skipped cell, never an error.
type tableRequest struct {
	Brands        []string     `json:"brands"`
	Rows          []rowRequest `json:"rows"`
	SurchargeRate string       `json:"surcharge_rate"`
}

type rowRequest struct {
	ChannelText    string   `json:"channel_text"`
	Rates          []string `json:"rates"`
	SettlementTerm string   `json:"settlement_term"`
}

type savePlanRequest struct {
	tableRequest
	PlanName string `json:"plan_name"`
}

func (r tableRequest) toTable() (extraction.Table, *decimal.Decimal) {
	table := extraction.Table{Brands: r.Brands}
	for _, row := range r.Rows {
		rates := make([]*decimal.Decimal, len(r.Brands))
		for i := range r.Brands {
			if i < len(row.Rates) {
				rates[i] = normalization.ParseCell(row.Rates[i])
			}
		}
		table.Rows = append(table.Rows, extraction.Row{
			ChannelText:    row.ChannelText,
			Rates:          rates,
			SettlementTerm: row.SettlementTerm,
		})
	}
	return table, normalization.ParseCell(r.SurchargeRate)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleScan accepts a multipart image upload and runs the full pipeline.
// An empty table is a normal result the operator must act on, not an error.
func (h *Handler) handleScan(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no image uploaded; use form field 'image'")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable upload")
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable upload")
	}

	result, err := h.svc.ScanImage(c.Context(), image)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(result)
}

// handleEvaluate re-runs the normalizer onward over an edited table.
func (h *Handler) handleEvaluate(c *fiber.Ctx) error {
	var req tableRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid table payload")
	}
	table, surcharge := req.toTable()
	eval, err := h.svc.Evaluate(c.Context(), table, surcharge)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(eval)
}

// handleSavePlan commits an edited table under a new plan name.
func (h *Handler) handleSavePlan(c *fiber.Ctx) error {
	var req savePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan payload")
	}
	table, surcharge := req.toTable()
	records := normalization.Normalize(table, surcharge)

	fp, err := h.svc.SavePlan(c.Context(), records, req.PlanName)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"plan_name":   req.PlanName,
		"fingerprint": fp,
		"records":     len(records),
	})
}

func (h *Handler) handleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing query parameter 'q'")
	}
	names, err := h.svc.SearchPlans(c.Context(), query, c.QueryInt("limit", 10))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"plans": names})
}

func (h *Handler) handleExport(c *fiber.Ctx) error {
	entries, err := h.svc.ExportEntries(c.Context())
	if err != nil {
		return h.mapError(c, err)
	}
	var buf bytes.Buffer
	if err := catalog.ExportCSV(&buf, entries); err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mdr_catalog.csv"`)
	return c.Send(buf.Bytes())
}

// mapError translates the error taxonomy onto HTTP statuses: user input
// errors are 4xx, the engine-unavailable configuration error is 503 with
// an actionable message, everything else is a 500.
func (h *Handler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrEmptyPlanName), errors.Is(err, catalog.ErrNoRecords):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrCatalogChanged):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ocr.ErrEngineUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable,
			"OCR engine not found: install tesseract-ocr and its trained data, then retry")
	default:
		h.logger.Error("request failed", "path", c.Path(), "err", err)
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
