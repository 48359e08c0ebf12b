package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderDetect(t *testing.T) {
	d := NewHeaderDetector(DefaultBrands)

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "three brands override the default set",
			lines: []string{"VISA MASTERCARD ELO"},
			want:  []string{"VISA", "MASTERCARD", "ELO"},
		},
		{
			name:  "brands come back in reference order",
			lines: []string{"elo amex visa"},
			want:  []string{"VISA", "ELO", "AMEX"},
		},
		{
			name:  "first qualifying line wins",
			lines: []string{"DEBITO 1,50", "VISA MASTERCARD ELO AMEX", "VISA MASTERCARD HIPERCARD"},
			want:  []string{"VISA", "MASTERCARD", "ELO", "AMEX"},
		},
		{
			name:  "two brands are not enough",
			lines: []string{"VISA MASTERCARD"},
			want:  nil,
		},
		{
			name:  "no lines",
			lines: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.lines))
		})
	}
}
