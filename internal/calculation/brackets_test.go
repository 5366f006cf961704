package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

func testBrackets() []domain.TaxBracket {
	dp := func(v int64) *decimal.Decimal { x := decimal.NewFromInt(v); return &x }
	return []domain.TaxBracket{
		{Min: decimal.Zero, Max: dp(10000), Rate: decimal.NewFromFloat(0.1)},
		{Min: decimal.NewFromInt(10000), Max: dp(50000), Rate: decimal.NewFromFloat(0.2)},
		{Min: decimal.NewFromInt(50000), Rate: decimal.NewFromFloat(0.3)},
	}
}

func TestEvaluateBrackets(t *testing.T) {
	brackets := testBrackets()

	tests := []struct {
		name         string
		income       decimal.Decimal
		expectedTax  decimal.Decimal
		expectedRows int
	}{
		{
			name:         "inside first bracket",
			income:       decimal.NewFromInt(5000),
			expectedTax:  decimal.NewFromInt(500),
			expectedRows: 1,
		},
		{
			name:         "spans two brackets",
			income:       decimal.NewFromInt(15000),
			expectedTax:  decimal.NewFromInt(2000), // 10000*0.1 + 5000*0.2
			expectedRows: 2,
		},
		{
			name:         "spans all brackets",
			income:       decimal.NewFromInt(60000),
			expectedTax:  decimal.NewFromInt(12000), // 1000 + 8000 + 3000
			expectedRows: 3,
		},
		{
			name:         "exactly at bracket boundary",
			income:       decimal.NewFromInt(10000),
			expectedTax:  decimal.NewFromInt(1000),
			expectedRows: 1,
		},
		{
			name:         "zero income",
			income:       decimal.Zero,
			expectedTax:  decimal.Zero,
			expectedRows: 0,
		},
		{
			name:         "negative income",
			income:       decimal.NewFromInt(-5000),
			expectedTax:  decimal.Zero,
			expectedRows: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, breakdown := EvaluateBrackets(tt.income, brackets)
			assert.True(t, tax.Equal(tt.expectedTax), "expected %s, got %s", tt.expectedTax, tax)
			assert.Len(t, breakdown, tt.expectedRows)
		})
	}
}

func TestEvaluateBracketsBreakdownSumsToTax(t *testing.T) {
	brackets := testBrackets()
	incomes := []int64{1, 500, 9999, 10000, 10001, 42000, 50000, 50001, 123456, 1000000}

	for _, income := range incomes {
		tax, breakdown := EvaluateBrackets(decimal.NewFromInt(income), brackets)
		sum := decimal.Zero
		for _, row := range breakdown {
			sum = sum.Add(row.Tax)
		}
		require.True(t, sum.Equal(tax), "income %d: breakdown sum %s != tax %s", income, sum, tax)
	}
}

func TestEvaluateBracketsOmitsZeroContribution(t *testing.T) {
	brackets := testBrackets()
	_, breakdown := EvaluateBrackets(decimal.NewFromInt(25000), brackets)
	for _, row := range breakdown {
		assert.True(t, row.Tax.IsPositive(), "bracket %d contributed zero but was reported", row.BracketIndex)
	}
}

func TestMarginalRateFor(t *testing.T) {
	brackets := testBrackets()

	tests := []struct {
		income int64
		rate   float64
	}{
		{5000, 0.1},
		{10000, 0.1}, // boundary dollar is still taxed at the lower rate
		{15000, 0.2},
		{60000, 0.3},
		{0, 0},
	}
	for _, tt := range tests {
		got := MarginalRateFor(decimal.NewFromInt(tt.income), brackets)
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.rate)), "income %d: got %s", tt.income, got)
	}
}
