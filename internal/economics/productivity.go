package economics

import "github.com/shopspring/decimal"

// DailyVPG returns the volume-per-guest productivity metric: sale
// amount divided by tours taken that day. A day with no tours reads as
// 0 rather than a division error so a half-filled form stays
// renderable.
func (c *Calculator) DailyVPG(saleAmount float64, tourCount int) float64 {
	amount := Amount(saleAmount)
	if tourCount <= 0 {
		return 0
	}
	f, _ := decimal.NewFromFloat(amount).
		Div(decimal.NewFromInt(int64(tourCount))).
		Round(2).
		Float64()
	return f
}
