package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is a contiguous income range taxed at a single marginal rate.
// Max is nil for the open-ended top bracket. Rate is a fraction in [0,1].
type TaxBracket struct {
	Min  decimal.Decimal  `json:"min" yaml:"min"`
	Max  *decimal.Decimal `json:"max,omitempty" yaml:"max,omitempty"`
	Rate decimal.Decimal  `json:"rate" yaml:"rate"`
}

// Contains reports whether income falls inside this bracket's range.
func (b TaxBracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || income.LessThanOrEqual(*b.Max)
}

// Surtax is an extra levy applied to provincial tax owed (not to income)
// above a threshold.
type Surtax struct {
	Threshold decimal.Decimal `json:"threshold" yaml:"threshold"`
	Rate      decimal.Decimal `json:"rate" yaml:"rate"`
}

// PremiumBand is a bracket-like range whose Amount is a flat dollar figure,
// not a marginal rate. Used for provincial health premiums.
type PremiumBand struct {
	Min    decimal.Decimal  `json:"min" yaml:"min"`
	Max    *decimal.Decimal `json:"max,omitempty" yaml:"max,omitempty"`
	Amount decimal.Decimal  `json:"amount" yaml:"amount"`
}

// ProvincialTaxTable is a named provincial bracket set plus the optional
// province-specific extras.
type ProvincialTaxTable struct {
	Code          string        `json:"code" yaml:"code"`
	Name          string        `json:"name" yaml:"name"`
	Brackets      []TaxBracket  `json:"brackets" yaml:"brackets"`
	Surtax        *Surtax       `json:"surtax,omitempty" yaml:"surtax,omitempty"`
	HealthPremium []PremiumBand `json:"health_premium,omitempty" yaml:"health_premium,omitempty"`
}

// BracketTax is one row of a per-bracket breakdown.
type BracketTax struct {
	BracketIndex int             `json:"bracket_index"`
	Rate         decimal.Decimal `json:"rate"`
	Tax          decimal.Decimal `json:"tax"`
}

// TaxBreakdown separates the federal and provincial per-bracket rows.
type TaxBreakdown struct {
	Federal    []BracketTax `json:"federal"`
	Provincial []BracketTax `json:"provincial"`
}

// TaxCalculationResult is the derived record for a single tax computation.
// TotalTax = FederalTax + ProvincialTax + Surtax + HealthPremium.
type TaxCalculationResult struct {
	Province       string          `json:"province"`
	AdjustedIncome decimal.Decimal `json:"adjusted_income"`
	FederalTax     decimal.Decimal `json:"federal_tax"`
	ProvincialTax  decimal.Decimal `json:"provincial_tax"`
	Surtax         decimal.Decimal `json:"surtax"`
	HealthPremium  decimal.Decimal `json:"health_premium"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	AfterTaxIncome decimal.Decimal `json:"after_tax_income"`
	MarginalRate   decimal.Decimal `json:"marginal_rate"`
	AverageRate    decimal.Decimal `json:"average_rate"`
	Breakdown      TaxBreakdown    `json:"breakdown"`
}
