package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/normalization"
)

func TestNewPostgresStoreCreatesTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS mdr_plan_catalog`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	_, err = NewPostgresStore(context.Background(), mock)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoad(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS mdr_plan_catalog`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	surcharge := "2.9900"
	mock.ExpectQuery(`SELECT plan_name, canal, bandeira`).
		WillReturnRows(pgxmock.NewRows([]string{
			"plan_name", "canal", "bandeira", "parcela_de", "parcela_ate",
			"mdr", "prazo_recebimento", "taxa_antecipacao", "hash_plano", "data_criacao",
		}).
			AddRow("PLANO_A", "DEBIT", "VISA", 1, 1, "1.5000", "D+1", &surcharge, "fp1", createdAt).
			AddRow("PLANO_B", "CREDIT_2_6X", "ELO", 2, 6, "3.2000", "", (*string)(nil), "fp2", createdAt))

	store, err := NewPostgresStore(context.Background(), mock)
	require.NoError(t, err)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "PLANO_A", first.PlanName)
	assert.Equal(t, "VISA", first.Record.Brand)
	assert.Equal(t, "1.5000", first.Record.Rate.StringFixed(4))
	assert.Equal(t, "D+1", first.Record.SettlementTerm)
	require.NotNil(t, first.Record.SurchargeRate)
	assert.Equal(t, "2.9900", first.Record.SurchargeRate.StringFixed(4))
	assert.Equal(t, createdAt, first.CreatedAt)

	second := entries[1]
	assert.Equal(t, 2, second.Record.InstallmentFrom)
	assert.Equal(t, 6, second.Record.InstallmentTo)
	assert.Nil(t, second.Record.SurchargeRate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreAppendCommitsOneTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS mdr_plan_catalog`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	store, err := NewPostgresStore(context.Background(), mock)
	require.NoError(t, err)

	batch, err := NewEntries("PLANO_A", "fp1", []normalization.Record{
		testRecord("VISA", "1.5"),
		testRecord("MASTERCARD", "2.1"),
	}, time.Now().UTC())
	require.NoError(t, err)

	mock.ExpectBegin()
	for range batch {
		mock.ExpectExec(`INSERT INTO mdr_plan_catalog`).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	require.NoError(t, store.Append(context.Background(), batch))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreAppendRollsBackOnInsertFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS mdr_plan_catalog`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	store, err := NewPostgresStore(context.Background(), mock)
	require.NoError(t, err)

	batch, err := NewEntries("PLANO_A", "fp1", []normalization.Record{testRecord("VISA", "1.5")}, time.Now().UTC())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO mdr_plan_catalog`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = store.Append(context.Background(), batch)
	assert.ErrorContains(t, err, "append catalog row")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreAppendEmptyBatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS mdr_plan_catalog`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	store, err := NewPostgresStore(context.Background(), mock)
	require.NoError(t, err)

	assert.ErrorIs(t, store.Append(context.Background(), nil), ErrNoRecords)
	assert.NoError(t, mock.ExpectationsWereMet())
}
