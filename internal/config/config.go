// Package config loads the sale economics policy file (schedules.yaml)
// that overrides the calculator's built-in defaults: the per-sale-type
// commission tier tables and the FDI point constants.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"api_timeshare/internal/economics"
)

// DefaultPath is where the policy file is looked up when no explicit
// path is configured.
const DefaultPath = "schedules.yaml"

// File mirrors the schedules.yaml layout.
type File struct {
	PointsPerDollar float64                       `yaml:"points_per_dollar"`
	ExcessPointRate float64                       `yaml:"excess_point_rate"`
	Schedules       map[string]economics.Schedule `yaml:"schedules"`
}

// Load reads the policy file at path. A missing file is not an error:
// the shipped defaults apply. A present but malformed or invalid file
// is an error, so a bad deploy fails loudly instead of quietly falling
// back to stale rates.
func Load(path string) (economics.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return economics.DefaultConfig(), nil
		}
		return economics.Config{}, fmt.Errorf("reading policy file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates policy file contents.
func Parse(data []byte) (economics.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return economics.Config{}, fmt.Errorf("parsing policy file: %w", err)
	}

	cfg := economics.DefaultConfig()
	if f.PointsPerDollar > 0 {
		cfg.PointsPerDollar = f.PointsPerDollar
	}
	if f.ExcessPointRate > 0 {
		cfg.ExcessPointRate = f.ExcessPointRate
	}

	for name, sched := range f.Schedules {
		saleType := economics.SaleType(name)
		if saleType != economics.SaleTypeDeed && saleType != economics.SaleTypeTrust {
			return economics.Config{}, fmt.Errorf("unknown sale type %q in policy file", name)
		}
		if err := validateSchedule(name, sched); err != nil {
			return economics.Config{}, err
		}
		sort.Slice(sched, func(i, j int) bool {
			return sched[i].Threshold < sched[j].Threshold
		})
		cfg.Schedules[saleType] = sched
	}

	return cfg, nil
}

func validateSchedule(name string, sched economics.Schedule) error {
	if len(sched) == 0 {
		return fmt.Errorf("schedule %s has no tiers", name)
	}
	for i, tier := range sched {
		if tier.Threshold < 0 {
			return fmt.Errorf("schedule %s tier %d: negative threshold", name, i)
		}
		if tier.Rate < 0 || tier.Rate > 100 {
			return fmt.Errorf("schedule %s tier %d: rate %.2f outside [0, 100]", name, i, tier.Rate)
		}
	}
	return nil
}
