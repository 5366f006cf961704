package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodicPaymentZeroRate(t *testing.T) {
	// The annuity formula divides by zero at c == 0; the explicit branch
	// must return straight principal / n.
	payment := PeriodicPayment(decimal.NewFromInt(100000), decimal.Zero, 25, FrequencyMonthly)
	expected := decimal.NewFromInt(100000).Div(decimal.NewFromInt(300))
	assert.True(t, payment.Equal(expected), "expected %s, got %s", expected, payment)

	biweekly := PeriodicPayment(decimal.NewFromInt(26000), decimal.Zero, 10, FrequencyBiweekly)
	assert.True(t, biweekly.Equal(decimal.NewFromInt(100)), "got %s", biweekly)
}

func TestPeriodicPaymentKnownValue(t *testing.T) {
	// 100k at 5% over 30 years monthly is the textbook 536.82.
	payment := PeriodicPayment(decimal.NewFromInt(100000), decimal.NewFromInt(5), 30, FrequencyMonthly)
	diff := payment.Sub(decimal.NewFromFloat(536.82)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.05)), "got %s", payment)
}

func TestPeriodicPaymentDecreasingInTerm(t *testing.T) {
	principal := decimal.NewFromInt(250000)
	rate := decimal.NewFromFloat(4.5)

	previous := decimal.Decimal{}
	for i, term := range []int{5, 10, 15, 20, 25, 30} {
		payment := PeriodicPayment(principal, rate, term, FrequencyMonthly)
		require.True(t, payment.IsPositive())
		if i > 0 {
			assert.True(t, payment.LessThan(previous),
				"payment at %d years (%s) not below previous (%s)", term, payment, previous)
		}
		previous = payment
	}
}

func TestPeriodicPaymentDegenerateTerm(t *testing.T) {
	payment := PeriodicPayment(decimal.NewFromInt(100000), decimal.NewFromInt(5), 0, FrequencyMonthly)
	assert.True(t, payment.IsZero())
}

func TestPaymentFrequencyPeriods(t *testing.T) {
	assert.Equal(t, 26, FrequencyBiweekly.PeriodsPerYear())
	assert.Equal(t, 12, FrequencyMonthly.PeriodsPerYear())
	assert.Equal(t, 12, PaymentFrequency("weekly").PeriodsPerYear())
}

func TestAnnuityPresentValueFactor(t *testing.T) {
	// Zero rate degenerates to the period count.
	factor := AnnuityPresentValueFactor(decimal.Zero, 360)
	assert.True(t, factor.Equal(decimal.NewFromInt(360)))

	// 4% annual over 30 years monthly: the classic 209.46 multiplier.
	monthly := decimal.NewFromFloat(0.04).Div(decimal.NewFromInt(12))
	factor = AnnuityPresentValueFactor(monthly, 360)
	diff := factor.Sub(decimal.NewFromFloat(209.46)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.05)), "got %s", factor)
}
