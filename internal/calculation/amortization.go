package calculation

import (
	"github.com/shopspring/decimal"
)

// PaymentFrequency selects the compounding and payment cadence of a loan.
type PaymentFrequency string

const (
	FrequencyBiweekly PaymentFrequency = "biweekly"
	FrequencyMonthly  PaymentFrequency = "monthly"
)

// PeriodsPerYear returns the number of payments per year. Unrecognized
// frequencies fall back to monthly.
func (f PaymentFrequency) PeriodsPerYear() int {
	if f == FrequencyBiweekly {
		return 26
	}
	return 12
}

var one = decimal.NewFromInt(1)

// PeriodicPayment computes the fixed payment that fully amortizes principal
// over termYears at annualRatePercent (a 0-100 figure), using the standard
// annuity formula P*c*(1+c)^n / ((1+c)^n - 1). A zero rate degenerates the
// formula to division by zero, so it is handled as straight principal/n.
func PeriodicPayment(principal, annualRatePercent decimal.Decimal, termYears int, frequency PaymentFrequency) decimal.Decimal {
	periods := frequency.PeriodsPerYear()
	n := int64(termYears) * int64(periods)
	if n <= 0 {
		return decimal.Zero
	}

	c := annualRatePercent.
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(periods)))
	if c.IsZero() {
		return principal.Div(decimal.NewFromInt(n))
	}

	growth := one.Add(c).Pow(decimal.NewFromInt(n))
	return principal.Mul(c).Mul(growth).Div(growth.Sub(one))
}

// AnnuityPresentValueFactor returns (1 - (1+c)^-n) / c, the multiplier that
// converts a fixed periodic payment into the principal it can service.
func AnnuityPresentValueFactor(periodicRate decimal.Decimal, periods int64) decimal.Decimal {
	if periodicRate.IsZero() {
		return decimal.NewFromInt(periods)
	}
	growth := one.Add(periodicRate).Pow(decimal.NewFromInt(periods))
	return one.Sub(one.Div(growth)).Div(periodicRate)
}
