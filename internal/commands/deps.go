package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/catalog"
	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/scan"
	"github.com/FACorreiaa/mdr-plan-scanner/pkg/config"
	"github.com/FACorreiaa/mdr-plan-scanner/pkg/ocr"
)

// deps holds the dependencies shared by all subcommands.
type deps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Engine  *ocr.TesseractEngine
	Store   catalog.Store
	Service *scan.Service

	pool *pgxpool.Pool
}

// initDeps builds config, logger, catalog store and the scan service.
// A DSN selects the Postgres store, otherwise the Excel workbook is used.
func initDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	d := &deps{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Engine: ocr.NewTesseractEngine(),
	}

	if cfg.Catalog.DSN != "" {
		pool, err := pgxpool.New(ctx, cfg.Catalog.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect catalog database: %w", err)
		}
		store, err := catalog.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		d.pool = pool
		d.Store = store
	} else {
		d.Store = catalog.NewExcelStore(cfg.Catalog.Path)
	}

	d.Service = scan.NewService(d.Engine, d.Store, d.Logger, cfg.OCR.Language, cfg.OCR.Threshold)
	return d, nil
}

// Close releases pooled resources.
func (d *deps) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}
