package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

func sampleReport() *Report {
	return &Report{
		GeneratedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		Tax: &domain.TaxCalculationResult{
			Province:       "ON",
			AdjustedIncome: decimal.NewFromInt(100000),
			FederalTax:     decimal.NewFromFloat(17344.38),
			ProvincialTax:  decimal.NewFromFloat(6981.67),
			Surtax:         decimal.NewFromFloat(254.33),
			HealthPremium:  decimal.NewFromInt(750),
			TotalTax:       decimal.NewFromFloat(25330.38),
			AfterTaxIncome: decimal.NewFromFloat(74669.62),
			MarginalRate:   decimal.NewFromFloat(0.2965),
			AverageRate:    decimal.NewFromFloat(0.2533),
		},
		Purchase: &domain.PurchaseCalculation{
			LumpSum:       domain.PurchaseScenario{Name: domain.ScenarioLumpSum, NetCost: decimal.NewFromInt(50000), NetWorthImpact: decimal.NewFromInt(-20128)},
			Finance:       domain.PurchaseScenario{Name: domain.ScenarioFinance, NetCost: decimal.NewFromInt(56399), NetWorthImpact: decimal.NewFromInt(9703)},
			SaveFirst:     domain.PurchaseScenario{Name: domain.ScenarioSaveFirst, NetCost: decimal.NewFromInt(55418), NetWorthImpact: decimal.NewFromInt(-5418)},
			BestScenario:  domain.ScenarioFinance,
			BreakEvenRate: decimal.NewFromFloat(0.0244),
		},
		TFSA: &domain.TFSARoomState{
			EligibilityYear:     2009,
			StatutoryRoom:       decimal.NewFromInt(102000),
			TotalContributions:  decimal.NewFromInt(40000),
			RestoredWithdrawals: decimal.NewFromInt(5000),
			ContributionRoom:    decimal.NewFromInt(67000),
		},
		Amortization: &AmortizationSummary{
			Principal:      decimal.NewFromInt(450000),
			AnnualRate:     decimal.NewFromFloat(4.5),
			TermYears:      25,
			Frequency:      "monthly",
			Payment:        decimal.NewFromFloat(2501.55),
			PeriodsPerYear: 12,
			TotalPaid:      decimal.NewFromFloat(750465),
		},
	}
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "FINANCIAL TOOLKIT SUMMARY")
	assert.Contains(t, out, "Tax (ON)")
	assert.Contains(t, out, "$25330.38")
	assert.Contains(t, out, domain.ScenarioFinance)
	assert.Contains(t, out, "TFSA Contribution Room")
	assert.Contains(t, out, "Loan Amortization")
	// Affordability did not run, so its heading stays out.
	assert.NotContains(t, out, "Home Affordability")
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Tax)
	assert.Equal(t, "ON", decoded.Tax.Province)
	assert.True(t, decoded.Tax.TotalTax.Equal(decimal.NewFromFloat(25330.38)))
	assert.Nil(t, decoded.Affordability)
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"Section", "Metric", "Value"}, records[0])

	sections := map[string]bool{}
	for _, rec := range records[1:] {
		require.Len(t, rec, 3)
		sections[rec[0]] = true
	}
	assert.True(t, sections["tax"])
	assert.True(t, sections["purchase"])
	assert.True(t, sections["tfsa"])
	assert.True(t, sections["amortization"])
	assert.False(t, sections["affordability"])
}

func TestPDFFormatter(t *testing.T) {
	data, err := PDFFormatter{}.Format(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"console", "console"},
		{"TEXT", "console"},
		{"json", "json"},
		{"json-pretty", "json"},
		{"spreadsheet", "csv"},
		{"pdf-report", "pdf"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.in)
		require.NotNil(t, f, tt.in)
		assert.Equal(t, tt.want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "csv", "json", "pdf"}, names)
}

func TestEmptyReport(t *testing.T) {
	r := &Report{GeneratedAt: time.Now()}
	assert.True(t, r.Empty())

	data, err := ConsoleFormatter{}.Format(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FINANCIAL TOOLKIT SUMMARY")
}
