// Package moneyutil provides decimal helpers shared by the calculation and
// output layers. All monetary arithmetic in this module goes through
// shopspring/decimal; float64 is used only where a fractional exponent makes
// exact decimal arithmetic impossible.
package moneyutil

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// FromPercent converts a 0-100 percentage figure into a 0-1 fraction.
func FromPercent(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// ToPercent converts a 0-1 fraction into a 0-100 percentage figure.
func ToPercent(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(hundred)
}

// Monthly converts an annual amount to monthly.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// Annual converts a monthly amount to annual.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// RoundCents rounds to two decimal places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CompoundGrowth returns principal * (1+rate)^years for a whole number of
// years. rate is a fraction (0.07 for 7%).
func CompoundGrowth(principal, rate decimal.Decimal, years int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(years)))
	return principal.Mul(factor)
}

// CompoundGrowthFractional returns principal * (1+rate)^years where years may
// be fractional. The exponentiation runs in float64; callers accept the
// resulting precision for display-only projections.
func CompoundGrowthFractional(principal, rate decimal.Decimal, years decimal.Decimal) decimal.Decimal {
	base := 1 + rate.InexactFloat64()
	factor := math.Pow(base, years.InexactFloat64())
	return principal.Mul(decimal.NewFromFloat(factor))
}

// NthRoot returns d^(1/n) computed in float64, as a decimal. Used for implied
// annual rates (the inverse of compound growth).
func NthRoot(d decimal.Decimal, n decimal.Decimal) decimal.Decimal {
	if n.IsZero() {
		return decimal.Zero
	}
	v := math.Pow(d.InexactFloat64(), 1/n.InexactFloat64())
	return decimal.NewFromFloat(v)
}

// Min returns the smaller of two decimals.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two decimals.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// FormatCAD renders an amount as a dollar string with two decimal places.
func FormatCAD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
