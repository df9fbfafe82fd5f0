package economics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain amount", "1500.50", 1500.50},
		{"whitespace trimmed", "  250 ", 250},
		{"blank field reads as zero", "", 0},
		{"garbage reads as zero", "12abc", 0},
		{"negative clamps to zero", "-10", 0},
		{"half cent rounds up", "2500.005", 2500.01},
		{"extra precision rounds to cents", "99.999", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in))
		})
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, 0.0, Amount(math.NaN()))
	assert.Equal(t, 0.0, Amount(math.Inf(1)))
	assert.Equal(t, 0.0, Amount(-42.5))
	assert.Equal(t, 19.99, Amount(19.99))
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 4, ParseCount("4"))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("-3"))
	assert.Equal(t, 0, ParseCount("2.5"))
}
