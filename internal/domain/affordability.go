package domain

import (
	"github.com/shopspring/decimal"
)

// AffordabilityInputs holds the raw user inputs for the home affordability
// calculator. Percentages are 0-100 figures; the engine converts them at the
// call boundary.
type AffordabilityInputs struct {
	HomePrice          decimal.Decimal `json:"home_price" yaml:"home_price"`
	AnnualRatePercent  decimal.Decimal `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	DownPaymentPercent decimal.Decimal `json:"down_payment_percent" yaml:"down_payment_percent"`
	TermYears          int             `json:"term_years" yaml:"term_years"`
	UtilitiesAndTaxes  decimal.Decimal `json:"utilities_and_taxes" yaml:"utilities_and_taxes"`
	CurrentRent        decimal.Decimal `json:"current_rent" yaml:"current_rent"`
	Insurance          decimal.Decimal `json:"insurance" yaml:"insurance"`
	AnnualIncome       decimal.Decimal `json:"annual_income" yaml:"annual_income"`
	CurrentSavings     decimal.Decimal `json:"current_savings" yaml:"current_savings"`
}

// AffordabilityResult is the derived projection. Gap <= 0 means owning costs
// no more per period than the current rent.
type AffordabilityResult struct {
	DownPayment           decimal.Decimal `json:"down_payment"`
	BiweeklySavingsTarget decimal.Decimal `json:"biweekly_savings_target"`
	MortgagePrincipal     decimal.Decimal `json:"mortgage_principal"`
	BiweeklyPayment       decimal.Decimal `json:"biweekly_payment"`
	TotalCostOfOwnership  decimal.Decimal `json:"total_cost_of_ownership"`
	AffordabilityGap      decimal.Decimal `json:"affordability_gap"`
	Affordable            bool            `json:"affordable"`
	TaxSavingsEstimate    decimal.Decimal `json:"tax_savings_estimate"`
	RetirementCost        decimal.Decimal `json:"retirement_opportunity_cost"`
	PreQualification      decimal.Decimal `json:"pre_qualification"`
	MonthsToSave          decimal.Decimal `json:"months_to_save"`
}
