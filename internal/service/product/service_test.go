package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUnitCost(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		material string
		labor    string
		overhead string
		want     float64
	}{
		{"even split", "100", "700", "200", "100", 10},
		{"fractional", "3", "50", "25", "25", 33.3333333},
		{"labor only", "10", "0", "120", "0", 12},
		{"free batch", "50", "0", "0", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitCost(dec(tt.quantity), dec(tt.material), dec(tt.labor), dec(tt.overhead))
			assert.InDelta(t, tt.want, got.InexactFloat64(), 0.0001)
		})
	}
}

func TestUnitCost_ZeroQuantity(t *testing.T) {
	// Guarded by validation upstream; the helper stays total anyway.
	assert.True(t, UnitCost(decimal.Zero, dec("100"), dec("0"), dec("0")).IsZero())
}
