package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeChannel(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"DEBITO 1,50", true},
		{"Crédito à vista 2,39", true},
		{"CREDITO 2X A 6X", true},
		{"12x sem juros", true},
		{"TABELA DE PRECOS", false},
		{"Vigencia: 01/2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeChannel(tt.line))
		})
	}
}

func TestParseRowRejectsNoise(t *testing.T) {
	_, ok := ParseRow("TABELA DE PRECOS", 5)
	assert.False(t, ok)
}

func TestParseRowAlignsRatesToBrands(t *testing.T) {
	row, ok := ParseRow("DEBITO 1,50 2,10", 5)

	require.True(t, ok)
	assert.Equal(t, "DEBITO 1,50 2,10", row.ChannelText)
	require.Len(t, row.Rates, 5)
	assert.Equal(t, "1.5", row.Rates[0].String())
	assert.Equal(t, "2.1", row.Rates[1].String())
	assert.Nil(t, row.Rates[2])
	assert.Nil(t, row.Rates[3])
	assert.Nil(t, row.Rates[4])
	assert.Equal(t, "", row.SettlementTerm)
}

func TestParseRowTruncatesExtraTokens(t *testing.T) {
	row, ok := ParseRow("DEBITO 1,50 2,10 2,20", 2)

	require.True(t, ok)
	require.Len(t, row.Rates, 2)
	assert.Equal(t, "1.5", row.Rates[0].String())
	assert.Equal(t, "2.1", row.Rates[1].String())
}

func TestSettlementTerm(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"DEBITO 1,50 D+1", "D+1"},
		{"CREDITO d + 30", "D+30"},
		{"CREDITO D +2", "D+2"},
		{"DEBITO 1,50", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, SettlementTerm(tt.line))
		})
	}
}
