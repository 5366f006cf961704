package taxdata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

func TestLoadEmbeddedTables(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2025, tables.Year)
	assert.NotEmpty(t, tables.Federal)
	assert.Nil(t, tables.Federal[len(tables.Federal)-1].Max, "top federal bracket must be open-ended")

	// Ontario carries both a surtax and a health premium table.
	on, ok := tables.Provinces["ON"]
	require.True(t, ok)
	require.NotNil(t, on.Surtax)
	assert.True(t, on.Surtax.Threshold.GreaterThan(decimal.Zero))
	assert.NotEmpty(t, on.HealthPremium)

	// Alberta has neither.
	ab, ok := tables.Provinces["AB"]
	require.True(t, ok)
	assert.Nil(t, ab.Surtax)
	assert.Empty(t, ab.HealthPremium)

	// TFSA table starts at the first program year.
	limit2009, ok := tables.TFSALimits[2009]
	require.True(t, ok)
	assert.True(t, limit2009.Equal(decimal.NewFromInt(5000)))
}

func TestProvinceCodesSorted(t *testing.T) {
	tables := MustLoad()
	codes := tables.ProvinceCodes()
	assert.Equal(t, []string{"AB", "BC", "MB", "ON", "QC"}, codes)
}

func TestValidateBrackets(t *testing.T) {
	d := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	dp := func(v int64) *decimal.Decimal { x := decimal.NewFromInt(v); return &x }
	r := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

	tests := []struct {
		name     string
		brackets []domain.TaxBracket
		wantErr  bool
	}{
		{
			name: "valid two brackets",
			brackets: []domain.TaxBracket{
				{Min: d(0), Max: dp(50000), Rate: r(0.1)},
				{Min: d(50000), Rate: r(0.2)},
			},
		},
		{
			name:     "empty",
			brackets: nil,
			wantErr:  true,
		},
		{
			name: "gap between brackets",
			brackets: []domain.TaxBracket{
				{Min: d(0), Max: dp(50000), Rate: r(0.1)},
				{Min: d(50001), Rate: r(0.2)},
			},
			wantErr: true,
		},
		{
			name: "closed top bracket",
			brackets: []domain.TaxBracket{
				{Min: d(0), Max: dp(50000), Rate: r(0.1)},
			},
			wantErr: true,
		},
		{
			name: "rate above one",
			brackets: []domain.TaxBracket{
				{Min: d(0), Rate: r(1.5)},
			},
			wantErr: true,
		},
		{
			name: "first bracket not at zero",
			brackets: []domain.TaxBracket{
				{Min: d(100), Max: dp(50000), Rate: r(0.1)},
				{Min: d(50000), Rate: r(0.2)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBrackets(tt.brackets)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
