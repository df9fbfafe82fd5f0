package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api_timeshare/internal/economics"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, economics.DefaultPointsPerDollar, cfg.PointsPerDollar)
	assert.Len(t, cfg.Schedules, 2)
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.yaml")
	content := `
points_per_dollar: 12
excess_point_rate: 0.25
schedules:
  DEED:
    - threshold: 50000
      rate: 15
    - threshold: 0
      rate: 11
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.PointsPerDollar)
	assert.Equal(t, 0.25, cfg.ExcessPointRate)

	deed := cfg.Schedules[economics.SaleTypeDeed]
	require.Len(t, deed, 2)
	assert.Equal(t, 0.0, deed[0].Threshold, "tiers are sorted ascending on load")
	assert.Equal(t, 11.0, deed[0].Rate)

	// TRUST was not overridden and keeps its default.
	assert.Equal(t, economics.DefaultTrustSchedule(), cfg.Schedules[economics.SaleTypeTrust])
}

func TestParseRejectsInvalidPolicy(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown sale type", "schedules:\n  LEASE:\n    - {threshold: 0, rate: 10}\n"},
		{"empty schedule", "schedules:\n  DEED: []\n"},
		{"rate above 100", "schedules:\n  DEED:\n    - {threshold: 0, rate: 120}\n"},
		{"negative threshold", "schedules:\n  TRUST:\n    - {threshold: -1, rate: 10}\n"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}
