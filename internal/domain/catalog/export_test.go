package catalog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	surcharge := decimal.RequireFromString("2.99")
	e := entry("PLANO_A", "fp1")
	e.Record.SurchargeRate = &surcharge
	e.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, []Entry{e}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"plan_name,canal,bandeira,parcela_de,parcela_ate,mdr,prazo_recebimento,taxa_antecipacao,hash_plano,data_criacao",
		lines[0])
	assert.Equal(t,
		"PLANO_A,DEBIT,VISA,1,1,1.5000,D+1,2.9900,fp1,2024-03-01T12:00:00Z",
		lines[1])
}

func TestExportCSVEmptyCatalogStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))
	assert.True(t, strings.HasPrefix(buf.String(), "plan_name,canal,bandeira"))
}
