package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/taxdata"
)

// testEngine builds an engine over a small synthetic table set so expected
// values stay exact.
func testEngine() *Engine {
	dp := func(v int64) *decimal.Decimal { x := decimal.NewFromInt(v); return &x }
	tables := &taxdata.Tables{
		Year: 2025,
		Federal: []domain.TaxBracket{
			{Min: decimal.Zero, Max: dp(50000), Rate: decimal.NewFromFloat(0.1)},
			{Min: decimal.NewFromInt(50000), Rate: decimal.NewFromFloat(0.2)},
		},
		Provinces: map[string]domain.ProvincialTaxTable{
			"TS": {
				Code: "TS",
				Name: "Test Province",
				Brackets: []domain.TaxBracket{
					{Min: decimal.Zero, Max: dp(40000), Rate: decimal.NewFromFloat(0.05)},
					{Min: decimal.NewFromInt(40000), Rate: decimal.NewFromFloat(0.1)},
				},
				Surtax: &domain.Surtax{
					Threshold: decimal.NewFromInt(1000),
					Rate:      decimal.NewFromFloat(0.2),
				},
				HealthPremium: []domain.PremiumBand{
					{Min: decimal.Zero, Max: dp(20000), Amount: decimal.Zero},
					{Min: decimal.NewFromInt(20000), Amount: decimal.NewFromInt(300)},
				},
			},
			"NP": {
				Code: "NP",
				Name: "No Extras Province",
				Brackets: []domain.TaxBracket{
					{Min: decimal.Zero, Rate: decimal.NewFromFloat(0.05)},
				},
			},
		},
	}
	return NewEngine(tables, nil)
}

func TestCalculateTax(t *testing.T) {
	engine := testEngine()

	result, ok := engine.CalculateTax(decimal.NewFromInt(60000), decimal.Zero, "TS")
	require.True(t, ok)

	// Federal: 50000*0.1 + 10000*0.2 = 7000
	assert.True(t, result.FederalTax.Equal(decimal.NewFromInt(7000)), "federal %s", result.FederalTax)
	// Provincial: 40000*0.05 + 20000*0.1 = 4000
	assert.True(t, result.ProvincialTax.Equal(decimal.NewFromInt(4000)), "provincial %s", result.ProvincialTax)
	// Surtax on provincial tax above 1000: (4000-1000)*0.2 = 600
	assert.True(t, result.Surtax.Equal(decimal.NewFromInt(600)), "surtax %s", result.Surtax)
	// Health premium band for 60000 income is the flat 300.
	assert.True(t, result.HealthPremium.Equal(decimal.NewFromInt(300)), "premium %s", result.HealthPremium)

	expectedTotal := decimal.NewFromInt(11900)
	assert.True(t, result.TotalTax.Equal(expectedTotal), "total %s", result.TotalTax)
	assert.True(t, result.TotalTax.Equal(
		result.FederalTax.Add(result.ProvincialTax).Add(result.Surtax).Add(result.HealthPremium)))

	// Marginal rate is the sum of the containing bracket rates only.
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.3)), "marginal %s", result.MarginalRate)
	assert.True(t, result.AverageRate.Equal(expectedTotal.Div(decimal.NewFromInt(60000))))
	assert.True(t, result.AfterTaxIncome.Equal(decimal.NewFromInt(48100)))
}

func TestCalculateTaxSurtaxOnlyAboveThreshold(t *testing.T) {
	engine := testEngine()

	// 15000 income: provincial tax 750, below the 1000 surtax threshold.
	result, ok := engine.CalculateTax(decimal.NewFromInt(15000), decimal.Zero, "TS")
	require.True(t, ok)
	assert.True(t, result.Surtax.IsZero(), "surtax %s", result.Surtax)
	// And below the premium band floor of 20000.
	assert.True(t, result.HealthPremium.IsZero())
}

func TestCalculateTaxDeductions(t *testing.T) {
	engine := testEngine()

	result, ok := engine.CalculateTax(decimal.NewFromInt(70000), decimal.NewFromInt(10000), "TS")
	require.True(t, ok)
	assert.True(t, result.AdjustedIncome.Equal(decimal.NewFromInt(60000)))

	// Same as a 60000 gross income with no deductions.
	direct, ok := engine.CalculateTax(decimal.NewFromInt(60000), decimal.Zero, "TS")
	require.True(t, ok)
	assert.True(t, result.TotalTax.Equal(direct.TotalTax))
}

func TestCalculateTaxNotReady(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name       string
		income     decimal.Decimal
		deductions decimal.Decimal
		province   string
	}{
		{"zero income", decimal.Zero, decimal.Zero, "TS"},
		{"negative income", decimal.NewFromInt(-100), decimal.Zero, "TS"},
		{"deductions swallow income", decimal.NewFromInt(30000), decimal.NewFromInt(30000), "TS"},
		{"unknown province", decimal.NewFromInt(60000), decimal.Zero, "ZZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := engine.CalculateTax(tt.income, tt.deductions, tt.province)
			assert.False(t, ok)
		})
	}
}

func TestCalculateTaxProvinceWithoutExtras(t *testing.T) {
	engine := testEngine()
	result, ok := engine.CalculateTax(decimal.NewFromInt(100000), decimal.Zero, "NP")
	require.True(t, ok)
	assert.True(t, result.Surtax.IsZero())
	assert.True(t, result.HealthPremium.IsZero())
	assert.True(t, result.TotalTax.Equal(result.FederalTax.Add(result.ProvincialTax)))
}

func TestCalculateTaxIdempotent(t *testing.T) {
	engine := testEngine()
	first, ok := engine.CalculateTax(decimal.NewFromInt(60000), decimal.Zero, "TS")
	require.True(t, ok)
	second, ok := engine.CalculateTax(decimal.NewFromInt(60000), decimal.Zero, "TS")
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestCalculateTaxRealTables(t *testing.T) {
	engine := NewEngine(taxdata.MustLoad(), nil)

	result, ok := engine.CalculateTax(decimal.NewFromInt(100000), decimal.Zero, "ON")
	require.True(t, ok)

	// 2025 tables: federal 17344.38, Ontario 6981.67, surtax 254.33,
	// health premium 750. Allow a dollar for bracket rounding.
	tolerance := decimal.NewFromInt(1)
	assert.True(t, result.FederalTax.Sub(decimal.NewFromFloat(17344.38)).Abs().LessThan(tolerance),
		"federal %s", result.FederalTax)
	assert.True(t, result.ProvincialTax.Sub(decimal.NewFromFloat(6981.67)).Abs().LessThan(tolerance),
		"provincial %s", result.ProvincialTax)
	assert.True(t, result.Surtax.Sub(decimal.NewFromFloat(254.33)).Abs().LessThan(tolerance),
		"surtax %s", result.Surtax)
	assert.True(t, result.HealthPremium.Equal(decimal.NewFromInt(750)))
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.2965)), "marginal %s", result.MarginalRate)

	// Alberta has no surtax or premium at any income.
	ab, ok := engine.CalculateTax(decimal.NewFromInt(250000), decimal.Zero, "AB")
	require.True(t, ok)
	assert.True(t, ab.Surtax.IsZero())
	assert.True(t, ab.HealthPremium.IsZero())
}
