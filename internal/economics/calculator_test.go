package economics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionRate(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tests := []struct {
		name        string
		priorVolume float64
		saleType    SaleType
		want        float64
	}{
		{"deed base tier", 0, SaleTypeDeed, 10},
		{"deed second tier", 25000, SaleTypeDeed, 12},
		{"trust base tier", 0, SaleTypeTrust, 8},
		{"trust top tier", 150000, SaleTypeTrust, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.CommissionRate(5000, tt.priorVolume, tt.saleType)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The sale amount is carried in the signature for future amount-based
// surcharges but must not affect tier selection today.
func TestCommissionRateIgnoresSaleAmount(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	base := calc.CommissionRate(0, 30000, SaleTypeDeed)
	assert.Equal(t, base, calc.CommissionRate(999999, 30000, SaleTypeDeed))
}

func TestCommissionRateNormalizesVolume(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	// Negative prior volume reads as 0, so the base tier applies.
	assert.Equal(t, 10.0, calc.CommissionRate(5000, -1000, SaleTypeDeed))
}

func TestCommissionAmount(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   float64
	}{
		{"base deed sale", 2500.01, 10, 250.00},
		{"odd cents round half up", 3333.33, 12, 400.00},
		{"zero amount", 0, 10, 0},
		{"zero rate", 5000, 0, 0},
		{"negative amount normalizes to zero", -5000, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.CommissionAmount(tt.amount, tt.rate))
		})
	}
}

// Recomputing from stored, already-rounded figures must not drift.
func TestCommissionAmountIdempotent(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	for _, amount := range []float64{0.01, 19.99, 2500.01, 87654.32} {
		for _, rate := range []float64{8, 10, 12.5, 16} {
			first := calc.CommissionAmount(amount, rate)
			again := calc.CommissionAmount(Amount(amount), clampRate(rate))
			assert.Equal(t, first, again, "amount %.2f rate %.2f drifted", amount, rate)
		}
	}
}

func TestNormalizeFormInput(t *testing.T) {
	form := FormInput{
		Amount:         "2500.005",
		SaleType:       "deed",
		PointsRedeemed: "",
		Tours:          "4",
	}

	in := form.Normalize(12000)

	assert.Equal(t, 2500.01, in.SaleAmount)
	assert.Equal(t, 12000.0, in.PriorVolume)
	assert.Equal(t, SaleTypeDeed, in.SaleType)
	assert.Equal(t, 0.0, in.PointsRedeemed, "blank redeemed field reads as 0")
	assert.Equal(t, 4, in.TourCount)
}

func TestDerivePipeline(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	in := FormInput{
		Amount:         "2500.005",
		SaleType:       "DEED",
		PointsRedeemed: "",
		Tours:          "4",
	}.Normalize(0)

	d := calc.Derive(in)

	assert.Equal(t, 10.0, d.CommissionRate, "base tier applies at zero prior volume")
	assert.Equal(t, 250.00, d.CommissionAmount)
	assert.Equal(t, 25000.10, d.PointsAvailable)
	assert.Equal(t, 0.0, d.DiscountCost, "blank redemption costs nothing")
	assert.Equal(t, 625.00, d.DailyVPG)
	assert.False(t, d.CostIncurred())
}

// An alternate schedule must be usable without any code change.
func TestDeriveWithInjectedSchedule(t *testing.T) {
	calc := NewCalculator(Config{
		Schedules: map[SaleType]Schedule{
			SaleTypeDeed:  {{Threshold: 0, Rate: 5}},
			SaleTypeTrust: {{Threshold: 0, Rate: 3}},
		},
		PointsPerDollar: 2,
		ExcessPointRate: 1,
	})

	d := calc.Derive(Input{SaleAmount: 1000, SaleType: SaleTypeTrust, PointsRedeemed: 2500, TourCount: 2})

	require.Equal(t, 3.0, d.CommissionRate)
	assert.Equal(t, 30.00, d.CommissionAmount)
	assert.Equal(t, 2000.0, d.PointsAvailable)
	assert.Equal(t, 500.00, d.DiscountCost, "500 excess points at 1.00 each")
	assert.Equal(t, 500.00, d.DailyVPG)
	assert.True(t, d.CostIncurred())
}

func TestNewCalculatorDefaultsUnsetFields(t *testing.T) {
	calc := NewCalculator(Config{})
	assert.Equal(t, 10.0, calc.CommissionRate(0, 0, SaleTypeDeed))
	assert.Equal(t, DefaultPointsPerDollar*100, calc.AvailablePoints(100))
}
