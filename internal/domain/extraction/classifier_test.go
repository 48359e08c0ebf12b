package extraction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySplitsSurchargeFromCandidates(t *testing.T) {
	text := "TABELA DE PRECOS\n\nTaxa de antecipação: 3,5%\nDEBITO 1,50 2,10\n"

	surcharge, candidates := Classify(text)

	require.NotNil(t, surcharge)
	assert.True(t, surcharge.Equal(decimal.RequireFromString("3.5")), "got %s", surcharge)
	assert.Equal(t, []string{"TABELA DE PRECOS", "DEBITO 1,50 2,10"}, candidates)
}

func TestClassifyLastSurchargeWins(t *testing.T) {
	text := "antecipacao 3,5%\nDEBITO 1,50\nAntecipação 4,0%"

	surcharge, _ := Classify(text)

	require.NotNil(t, surcharge)
	assert.True(t, surcharge.Equal(decimal.RequireFromString("4.0")), "got %s", surcharge)
}

func TestClassifySurchargeLineWithoutPercentageKeepsPrevious(t *testing.T) {
	text := "antecipacao 3,5%\nantecipacao a combinar"

	surcharge, candidates := Classify(text)

	require.NotNil(t, surcharge)
	assert.True(t, surcharge.Equal(decimal.RequireFromString("3.5")))
	assert.Empty(t, candidates)
}

func TestClassifyNoSurcharge(t *testing.T) {
	surcharge, candidates := Classify("DEBITO 1,50\nCREDITO 2,20")

	assert.Nil(t, surcharge)
	assert.Len(t, candidates, 2)
}

func TestNumericTokens(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "comma decimals with percent signs",
			line: "DEBITO 1,50% 2.10%",
			want: []string{"1.5", "2.1"},
		},
		{
			name: "installment digits count as tokens",
			line: "CREDITO 2X A 6X 3,20",
			want: []string{"2", "6", "3.2"},
		},
		{
			name: "settlement term digits count as tokens",
			line: "D+30",
			want: []string{"30"},
		},
		{
			name: "no numbers",
			line: "CREDITO A VISTA",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NumericTokens(tt.line)
			var got []string
			for _, d := range tokens {
				got = append(got, d.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
