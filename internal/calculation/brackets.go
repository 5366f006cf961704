package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

// EvaluateBrackets computes the marginal tax owed on income under an ordered
// bracket table, with a per-bracket breakdown. The scan is a single
// left-to-right pass; brackets contributing no taxable amount are omitted
// from the breakdown. Non-positive income yields zero tax and a nil
// breakdown.
func EvaluateBrackets(income decimal.Decimal, brackets []domain.TaxBracket) (decimal.Decimal, []domain.BracketTax) {
	tax := decimal.Zero
	if income.LessThanOrEqual(decimal.Zero) {
		return tax, nil
	}

	var breakdown []domain.BracketTax
	for i, bracket := range brackets {
		if income.LessThanOrEqual(bracket.Min) {
			break
		}
		taxable := income.Sub(bracket.Min)
		if bracket.Max != nil {
			taxable = decimal.Min(taxable, bracket.Max.Sub(bracket.Min))
		}
		if taxable.LessThanOrEqual(decimal.Zero) {
			continue
		}
		owed := taxable.Mul(bracket.Rate)
		tax = tax.Add(owed)
		breakdown = append(breakdown, domain.BracketTax{
			BracketIndex: i,
			Rate:         bracket.Rate,
			Tax:          owed,
		})
	}
	return tax, breakdown
}

// MarginalRateFor returns the rate of the bracket the last taxed dollar of
// income fell into, or zero when no dollar was taxed.
func MarginalRateFor(income decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	rate := decimal.Zero
	for _, bracket := range brackets {
		if income.GreaterThan(bracket.Min) {
			rate = bracket.Rate
		}
	}
	return rate
}
