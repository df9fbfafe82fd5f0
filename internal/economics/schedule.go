package economics

import (
	"math"
	"strings"
)

// SaleType selects which commission schedule applies to a sale.
type SaleType string

const (
	SaleTypeDeed  SaleType = "DEED"
	SaleTypeTrust SaleType = "TRUST"
)

// ParseSaleType normalizes a raw sale-type selection. Unknown values
// fall back to DEED, the base contract type.
func ParseSaleType(s string) SaleType {
	if strings.EqualFold(strings.TrimSpace(s), string(SaleTypeTrust)) {
		return SaleTypeTrust
	}
	return SaleTypeDeed
}

// Tier is one (volume threshold, rate) step in a commission schedule.
type Tier struct {
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Rate      float64 `yaml:"rate" json:"rate"`
}

// Schedule is a commission schedule ordered ascending by threshold.
// Rates are percentages in [0, 100].
type Schedule []Tier

// RateFor returns the rate of the highest tier whose threshold does not
// exceed priorVolume, the volume accumulated before the current sale.
// Volumes below the first threshold get the base tier.
func (s Schedule) RateFor(priorVolume float64) float64 {
	if len(s) == 0 {
		return 0
	}
	rate := s[0].Rate
	for _, t := range s {
		if priorVolume < t.Threshold {
			break
		}
		rate = t.Rate
	}
	return clampRate(rate)
}

func clampRate(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return Round2(r)
}

// DefaultDeedSchedule returns a copy of the built-in deeded-contract
// schedule. Figures are the shipped defaults; the live schedule is
// loaded over them from schedules.yaml.
func DefaultDeedSchedule() Schedule {
	return Schedule{
		{Threshold: 0, Rate: 10},
		{Threshold: 25000, Rate: 12},
		{Threshold: 50000, Rate: 14},
		{Threshold: 100000, Rate: 16},
	}
}

// DefaultTrustSchedule returns a copy of the built-in trust-contract
// schedule.
func DefaultTrustSchedule() Schedule {
	return Schedule{
		{Threshold: 0, Rate: 8},
		{Threshold: 25000, Rate: 10},
		{Threshold: 50000, Rate: 12},
		{Threshold: 100000, Rate: 14},
	}
}
