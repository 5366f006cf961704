package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

// CalculateTax composes the bracket evaluator over the federal table and the
// selected province's table, then layers the province's surtax and health
// premium. The boolean is false when the inputs cannot produce a result yet:
// non-positive adjusted income or an unknown province code. Callers must
// treat a false return as "not ready", not as zero tax.
func (e *Engine) CalculateTax(income, otherDeductions decimal.Decimal, province string) (domain.TaxCalculationResult, bool) {
	adjusted := income.Sub(otherDeductions)
	if adjusted.LessThanOrEqual(decimal.Zero) {
		return domain.TaxCalculationResult{}, false
	}

	table, ok := e.tables.Provinces[province]
	if !ok {
		e.logger.Warnf("tax: unknown province code %q", province)
		return domain.TaxCalculationResult{}, false
	}

	federalTax, federalBreakdown := EvaluateBrackets(adjusted, e.tables.Federal)
	provincialTax, provincialBreakdown := EvaluateBrackets(adjusted, table.Brackets)

	// Surtax is levied on provincial tax owed, not on income.
	surtax := decimal.Zero
	if table.Surtax != nil && provincialTax.GreaterThan(table.Surtax.Threshold) {
		surtax = provincialTax.Sub(table.Surtax.Threshold).Mul(table.Surtax.Rate)
	}

	premium := healthPremiumFor(adjusted, table.HealthPremium)

	totalTax := federalTax.Add(provincialTax).Add(surtax).Add(premium)

	// Surtax and health premium are excluded from the marginal rate; they are
	// not marginal by construction.
	marginalRate := MarginalRateFor(adjusted, e.tables.Federal).
		Add(MarginalRateFor(adjusted, table.Brackets))

	result := domain.TaxCalculationResult{
		Province:       province,
		AdjustedIncome: adjusted,
		FederalTax:     federalTax,
		ProvincialTax:  provincialTax,
		Surtax:         surtax,
		HealthPremium:  premium,
		TotalTax:       totalTax,
		AfterTaxIncome: adjusted.Sub(totalTax),
		MarginalRate:   marginalRate,
		AverageRate:    totalTax.Div(adjusted),
		Breakdown: domain.TaxBreakdown{
			Federal:    federalBreakdown,
			Provincial: provincialBreakdown,
		},
	}
	e.logger.Debugf("tax: province=%s adjusted=%s total=%s", province, adjusted, totalTax)
	return result, true
}

// healthPremiumFor looks up the single band containing income and returns
// its flat amount. Income outside every band owes nothing.
func healthPremiumFor(income decimal.Decimal, bands []domain.PremiumBand) decimal.Decimal {
	for _, band := range bands {
		if income.LessThan(band.Min) {
			continue
		}
		if band.Max == nil || income.LessThanOrEqual(*band.Max) {
			return band.Amount
		}
	}
	return decimal.Zero
}
