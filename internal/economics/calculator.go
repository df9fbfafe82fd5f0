// Package economics implements the financial rules applied to a
// timeshare sale: the tiered commission schedules, the FDI
// points-redemption discount policy and the daily VPG productivity
// metric. Every function is pure; the entry form supplies fresh inputs
// on each recalculation and persists only the outputs.
package economics

import "github.com/shopspring/decimal"

// Default policy constants. Both are placeholders pending verification
// against the live FDI schedule and overridable via schedules.yaml.
const (
	// DefaultPointsPerDollar is the FDI points granted per sale dollar.
	DefaultPointsPerDollar = 10.0
	// DefaultExcessPointRate is the charge, in currency units, per
	// point redeemed past the granted allotment.
	DefaultExcessPointRate = 0.15
)

// Config is the injectable policy data the calculator works from.
type Config struct {
	Schedules       map[SaleType]Schedule
	PointsPerDollar float64
	ExcessPointRate float64
}

// DefaultConfig returns the shipped policy defaults.
func DefaultConfig() Config {
	return Config{
		Schedules: map[SaleType]Schedule{
			SaleTypeDeed:  DefaultDeedSchedule(),
			SaleTypeTrust: DefaultTrustSchedule(),
		},
		PointsPerDollar: DefaultPointsPerDollar,
		ExcessPointRate: DefaultExcessPointRate,
	}
}

// Calculator derives the financial figures stored on a sale record.
// It holds no state beyond its config, so concurrent use from several
// open forms needs no synchronization.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a Calculator, filling any unset config field
// from the shipped defaults.
func NewCalculator(cfg Config) *Calculator {
	def := DefaultConfig()
	if len(cfg.Schedules) == 0 {
		cfg.Schedules = def.Schedules
	}
	if cfg.PointsPerDollar <= 0 {
		cfg.PointsPerDollar = def.PointsPerDollar
	}
	if cfg.ExcessPointRate <= 0 {
		cfg.ExcessPointRate = def.ExcessPointRate
	}
	return &Calculator{cfg: cfg}
}

// CommissionRate resolves the commission percentage for a sale from the
// sale-type schedule, using the volume accumulated before this sale.
// saleAmount does not participate in tier selection today; it stays in
// the signature so amount-based surcharges can land without changing
// callers.
func (c *Calculator) CommissionRate(saleAmount, priorVolume float64, saleType SaleType) float64 {
	_ = Amount(saleAmount)
	sched, ok := c.cfg.Schedules[saleType]
	if !ok {
		sched = c.cfg.Schedules[SaleTypeDeed]
	}
	return sched.RateFor(Amount(priorVolume))
}

// CommissionAmount computes the commission payable on a sale at the
// given rate, rounded to cents. Recomputing from the stored rounded
// rate and amount yields the same figure, so repeated recalculation
// never drifts.
func (c *Calculator) CommissionAmount(saleAmount, rate float64) float64 {
	amount := decimal.NewFromFloat(Amount(saleAmount))
	pct := decimal.NewFromFloat(clampRate(rate))
	f, _ := amount.Mul(pct).Div(decimal.NewFromInt(100)).Round(2).Float64()
	return f
}

// FormInput is the raw, unparsed state of the calculation fields
// exactly as the entry form collected them.
type FormInput struct {
	Amount         string
	SaleType       string
	PointsRedeemed string
	Tours          string
}

// Input is an immutable, normalized snapshot of the calculation inputs.
type Input struct {
	SaleAmount     float64  `json:"sale_amount"`
	PriorVolume    float64  `json:"prior_volume"`
	SaleType       SaleType `json:"sale_type"`
	PointsRedeemed float64  `json:"points_redeemed"`
	TourCount      int      `json:"tour_count"`
}

// Normalize parses the raw form fields through the shared normalization
// rule. priorVolume is the cumulative figure supplied by whatever store
// tracks sales volume.
func (f FormInput) Normalize(priorVolume float64) Input {
	return Input{
		SaleAmount:     ParseAmount(f.Amount),
		PriorVolume:    Amount(priorVolume),
		SaleType:       ParseSaleType(f.SaleType),
		PointsRedeemed: ParseQuantity(f.PointsRedeemed),
		TourCount:      ParseCount(f.Tours),
	}
}

// Derived holds the five figures computed from an Input. It is rebuilt
// wholesale on every recalculation, never patched field by field.
type Derived struct {
	CommissionRate   float64 `json:"commission_rate"`
	CommissionAmount float64 `json:"commission_amount"`
	PointsAvailable  float64 `json:"points_available"`
	DiscountCost     float64 `json:"discount_cost"`
	DailyVPG         float64 `json:"daily_vpg"`
}

// CostIncurred reports whether the redemption went past the granted
// allotment. Callers render this as a warning, not an error.
func (d Derived) CostIncurred() bool {
	return d.DiscountCost > 0
}

// Derive runs the full pipeline over one normalized input.
func (c *Calculator) Derive(in Input) Derived {
	rate := c.CommissionRate(in.SaleAmount, in.PriorVolume, in.SaleType)
	points := c.AvailablePoints(in.SaleAmount)
	return Derived{
		CommissionRate:   rate,
		CommissionAmount: c.CommissionAmount(in.SaleAmount, rate),
		PointsAvailable:  points,
		DiscountCost:     c.DiscountCost(in.PointsRedeemed, points),
		DailyVPG:         c.DailyVPG(in.SaleAmount, in.TourCount),
	}
}
