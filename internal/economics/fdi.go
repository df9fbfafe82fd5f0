package economics

import "github.com/shopspring/decimal"

// AvailablePoints returns the FDI loyalty points granted for a sale.
// The grant is a fixed ratio of the sale amount, so it is zero at zero
// and never decreases as the amount grows.
func (c *Calculator) AvailablePoints(saleAmount float64) float64 {
	amount := decimal.NewFromFloat(Amount(saleAmount))
	f, _ := amount.Mul(decimal.NewFromFloat(c.cfg.PointsPerDollar)).Round(2).Float64()
	return f
}

// DiscountCost returns the charge for an FDI redemption. Points within
// the granted allotment are free; only the excess is charged, at the
// configured per-point rate. A non-zero result is the advisory signal
// the form surfaces to the operator.
func (c *Calculator) DiscountCost(pointsRedeemed, pointsAvailable float64) float64 {
	redeemed := Quantity(pointsRedeemed)
	available := Quantity(pointsAvailable)
	if redeemed <= available {
		return 0
	}
	excess := decimal.NewFromFloat(redeemed).Sub(decimal.NewFromFloat(available))
	f, _ := excess.Mul(decimal.NewFromFloat(c.cfg.ExcessPointRate)).Round(2).Float64()
	return f
}
