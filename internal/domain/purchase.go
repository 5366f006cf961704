package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario display names. The comparison reports these literals.
const (
	ScenarioLumpSum   = "Pay Lump Sum Now"
	ScenarioFinance   = "Finance + Invest"
	ScenarioSaveFirst = "Save First, Buy Later"
)

// PurchaseInputs holds the raw inputs for the large-purchase comparison.
// Rates are fractions (0.06 for 6%).
type PurchaseInputs struct {
	PurchaseAmount  decimal.Decimal `json:"purchase_amount" yaml:"purchase_amount"`
	DownPayment     decimal.Decimal `json:"down_payment" yaml:"down_payment"`
	LoanRate        decimal.Decimal `json:"loan_rate" yaml:"loan_rate"`
	LoanTermYears   int             `json:"loan_term_years" yaml:"loan_term_years"`
	ExpectedReturn  decimal.Decimal `json:"expected_return" yaml:"expected_return"`
	InflationRate   decimal.Decimal `json:"inflation_rate" yaml:"inflation_rate"`
	MonthlySavings  decimal.Decimal `json:"monthly_savings" yaml:"monthly_savings"`
}

// PurchaseScenario is one evaluated purchase strategy. Optional fields are
// zero when they do not apply to the strategy.
type PurchaseScenario struct {
	Name             string          `json:"name"`
	NetCost          decimal.Decimal `json:"net_cost"`
	NetWorthImpact   decimal.Decimal `json:"net_worth_impact"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment,omitempty"`
	InvestmentGrowth decimal.Decimal `json:"investment_growth,omitempty"`
	TimeToSaveYears  decimal.Decimal `json:"time_to_save_years,omitempty"`
}

// PurchaseCalculation is the three-way comparison plus the selection.
// BestScenario names the scenario with the greatest net-worth impact; ties
// go to the earlier scenario in evaluation order.
type PurchaseCalculation struct {
	LumpSum       PurchaseScenario `json:"lump_sum"`
	Finance       PurchaseScenario `json:"finance"`
	SaveFirst     PurchaseScenario `json:"save_first"`
	BestScenario  string           `json:"best_scenario"`
	BreakEvenRate decimal.Decimal  `json:"break_even_rate"`
}

// Scenarios returns the three scenarios in evaluation order.
func (p PurchaseCalculation) Scenarios() []PurchaseScenario {
	return []PurchaseScenario{p.LumpSum, p.Finance, p.SaveFirst}
}
