package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
	"github.com/braydenmay123/mclaughlin-toolkit/pkg/moneyutil"
)

// Assumptions baked into the affordability projection. These are estimate
// knobs, not statutory figures, so they live with the logic.
var (
	assumedInterestShare  = decimal.NewFromFloat(0.70) // of annual mortgage payment
	retirementReturnRate  = decimal.NewFromFloat(0.07)
	retirementHorizon     = 30 // years
	prequalIncomeShare    = decimal.NewFromFloat(0.32) // gross debt service ratio
	prequalAnnualRate     = decimal.NewFromFloat(0.04)
	prequalTermMonths     = int64(360)
	biweeklyPeriodsPerYear = decimal.NewFromInt(26)
	monthsPerYear          = decimal.NewFromInt(12)
)

// CalculateAffordability runs the affordability pipeline, each stage a pure
// function of the prior stage's output.
func (e *Engine) CalculateAffordability(in domain.AffordabilityInputs) domain.AffordabilityResult {
	downPayment := in.HomePrice.Mul(moneyutil.FromPercent(in.DownPaymentPercent))

	// Bi-weekly savings target to fund the down payment over the term.
	totalPeriods := decimal.NewFromInt(int64(in.TermYears)).Mul(biweeklyPeriodsPerYear)
	biweeklySavings := decimal.Zero
	if totalPeriods.IsPositive() {
		biweeklySavings = downPayment.Div(totalPeriods)
	}

	principal := in.HomePrice.Sub(downPayment)
	payment := PeriodicPayment(principal, in.AnnualRatePercent, in.TermYears, FrequencyBiweekly)

	ownershipCost := payment.Add(in.UtilitiesAndTaxes).Add(in.Insurance)
	gap := ownershipCost.Sub(in.CurrentRent)

	annualPayment := payment.Mul(biweeklyPeriodsPerYear)
	taxSavings := annualPayment.
		Mul(assumedInterestShare).
		Mul(marginalRateTier(in.AnnualIncome))

	retirementCost := moneyutil.CompoundGrowth(downPayment, retirementReturnRate, retirementHorizon).
		Sub(downPayment)

	monthlyBudget := moneyutil.Monthly(in.AnnualIncome).Mul(prequalIncomeShare)
	prequalFactor := AnnuityPresentValueFactor(moneyutil.Monthly(prequalAnnualRate), prequalTermMonths)
	preQualification := monthlyBudget.Mul(prequalFactor)

	monthsToSave := decimal.Zero
	shortfall := downPayment.Sub(in.CurrentSavings)
	if shortfall.IsPositive() && biweeklySavings.IsPositive() {
		annualSavings := biweeklySavings.Mul(biweeklyPeriodsPerYear)
		monthsToSave = shortfall.Div(annualSavings).Mul(monthsPerYear)
	}

	result := domain.AffordabilityResult{
		DownPayment:           downPayment,
		BiweeklySavingsTarget: biweeklySavings,
		MortgagePrincipal:     principal,
		BiweeklyPayment:       payment,
		TotalCostOfOwnership:  ownershipCost,
		AffordabilityGap:      gap,
		Affordable:            gap.LessThanOrEqual(decimal.Zero),
		TaxSavingsEstimate:    taxSavings,
		RetirementCost:        retirementCost,
		PreQualification:      preQualification,
		MonthsToSave:          monthsToSave,
	}
	e.logger.Debugf("affordability: price=%s payment=%s gap=%s affordable=%t",
		in.HomePrice, payment, gap, result.Affordable)
	return result
}

// marginalRateTier is the income-tiered marginal-rate lookup used for the
// mortgage-interest tax-savings estimate.
func marginalRateTier(annualIncome decimal.Decimal) decimal.Decimal {
	switch {
	case annualIncome.LessThan(decimal.NewFromInt(50000)):
		return decimal.NewFromFloat(0.15)
	case annualIncome.LessThan(decimal.NewFromInt(100000)):
		return decimal.NewFromFloat(0.20)
	case annualIncome.LessThan(decimal.NewFromInt(150000)):
		return decimal.NewFromFloat(0.25)
	default:
		return decimal.NewFromFloat(0.30)
	}
}
