package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/normalization"
)

// DB is the subset of pgxpool.Pool the store needs. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const createCatalogTable = `
	CREATE TABLE IF NOT EXISTS mdr_plan_catalog (
		id BIGSERIAL PRIMARY KEY,
		plan_name TEXT NOT NULL,
		canal TEXT NOT NULL,
		bandeira TEXT NOT NULL,
		parcela_de INT NOT NULL,
		parcela_ate INT NOT NULL,
		mdr NUMERIC(8,4) NOT NULL,
		prazo_recebimento TEXT NOT NULL DEFAULT '',
		taxa_antecipacao NUMERIC(8,4),
		hash_plano TEXT NOT NULL,
		data_criacao TIMESTAMPTZ NOT NULL
	)`

const insertCatalogRow = `
	INSERT INTO mdr_plan_catalog (
		plan_name, canal, bandeira, parcela_de, parcela_ate,
		mdr, prazo_recebimento, taxa_antecipacao, hash_plano, data_criacao
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const selectCatalogRows = `
	SELECT plan_name, canal, bandeira, parcela_de, parcela_ate,
		mdr::text, prazo_recebimento, taxa_antecipacao::text, hash_plano, data_criacao
	FROM mdr_plan_catalog
	ORDER BY id`

// PostgresStore persists the catalog in a single append-only table.
// Inserts run in one transaction per commit, so concurrent operators
// cannot lose each other's rows the way whole-file rewrites can.
type PostgresStore struct {
	db DB
}

// NewPostgresStore creates the store and auto-initializes its table.
func NewPostgresStore(ctx context.Context, db DB) (*PostgresStore, error) {
	if _, err := db.Exec(ctx, createCatalogTable); err != nil {
		return nil, fmt.Errorf("init catalog table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load reads the full catalog in insertion order.
func (s *PostgresStore) Load(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.Query(ctx, selectCatalogRows)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e            Entry
			channel      string
			rate         string
			surchargeRaw *string
			createdAt    time.Time
		)
		err := rows.Scan(
			&e.PlanName, &channel, &e.Record.Brand,
			&e.Record.InstallmentFrom, &e.Record.InstallmentTo,
			&rate, &e.Record.SettlementTerm, &surchargeRaw,
			&e.Fingerprint, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		e.Record.Channel = normalization.Channel(channel)
		e.CreatedAt = createdAt
		if e.Record.Rate, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("parse catalog rate %q: %w", rate, err)
		}
		if surchargeRaw != nil {
			d, err := decimal.NewFromString(*surchargeRaw)
			if err != nil {
				return nil, fmt.Errorf("parse catalog surcharge %q: %w", *surchargeRaw, err)
			}
			e.Record.SurchargeRate = &d
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Append inserts the batch inside one transaction.
func (s *PostgresStore) Append(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return ErrNoRecords
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog append: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		var surcharge *string
		if e.Record.SurchargeRate != nil {
			v := e.Record.SurchargeRate.StringFixed(4)
			surcharge = &v
		}
		_, err := tx.Exec(ctx, insertCatalogRow,
			e.PlanName,
			string(e.Record.Channel),
			e.Record.Brand,
			e.Record.InstallmentFrom,
			e.Record.InstallmentTo,
			e.Record.Rate.StringFixed(4),
			e.Record.SettlementTerm,
			surcharge,
			e.Fingerprint,
			e.CreatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("append catalog row: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog append: %w", err)
	}
	return nil
}
