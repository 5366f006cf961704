package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter emits one row per reported figure: section, metric, value.
// The long format keeps the file stable as sections come and go.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Metric", "Value"}); err != nil {
		return nil, err
	}

	var rows [][]string

	if t := report.Tax; t != nil {
		rows = append(rows,
			[]string{"tax", "province", t.Province},
			[]string{"tax", "adjusted_income", t.AdjustedIncome.StringFixed(2)},
			[]string{"tax", "federal_tax", t.FederalTax.StringFixed(2)},
			[]string{"tax", "provincial_tax", t.ProvincialTax.StringFixed(2)},
			[]string{"tax", "surtax", t.Surtax.StringFixed(2)},
			[]string{"tax", "health_premium", t.HealthPremium.StringFixed(2)},
			[]string{"tax", "total_tax", t.TotalTax.StringFixed(2)},
			[]string{"tax", "after_tax_income", t.AfterTaxIncome.StringFixed(2)},
			[]string{"tax", "marginal_rate", t.MarginalRate.StringFixed(4)},
			[]string{"tax", "average_rate", t.AverageRate.StringFixed(4)},
		)
	}

	if a := report.Affordability; a != nil {
		rows = append(rows,
			[]string{"affordability", "down_payment", a.DownPayment.StringFixed(2)},
			[]string{"affordability", "biweekly_savings_target", a.BiweeklySavingsTarget.StringFixed(2)},
			[]string{"affordability", "mortgage_principal", a.MortgagePrincipal.StringFixed(2)},
			[]string{"affordability", "biweekly_payment", a.BiweeklyPayment.StringFixed(2)},
			[]string{"affordability", "total_cost_of_ownership", a.TotalCostOfOwnership.StringFixed(2)},
			[]string{"affordability", "affordability_gap", a.AffordabilityGap.StringFixed(2)},
			[]string{"affordability", "affordable", strconv.FormatBool(a.Affordable)},
			[]string{"affordability", "tax_savings_estimate", a.TaxSavingsEstimate.StringFixed(2)},
			[]string{"affordability", "retirement_opportunity_cost", a.RetirementCost.StringFixed(2)},
			[]string{"affordability", "pre_qualification", a.PreQualification.StringFixed(2)},
			[]string{"affordability", "months_to_save", a.MonthsToSave.StringFixed(1)},
		)
	}

	if p := report.Purchase; p != nil {
		for _, sc := range p.Scenarios() {
			rows = append(rows,
				[]string{"purchase", sc.Name + " net_cost", sc.NetCost.StringFixed(2)},
				[]string{"purchase", sc.Name + " net_worth_impact", sc.NetWorthImpact.StringFixed(2)},
			)
		}
		rows = append(rows,
			[]string{"purchase", "best_scenario", p.BestScenario},
			[]string{"purchase", "break_even_rate", p.BreakEvenRate.StringFixed(4)},
		)
	}

	if s := report.TFSA; s != nil {
		rows = append(rows,
			[]string{"tfsa", "eligibility_year", strconv.Itoa(s.EligibilityYear)},
			[]string{"tfsa", "statutory_room", s.StatutoryRoom.StringFixed(2)},
			[]string{"tfsa", "total_contributions", s.TotalContributions.StringFixed(2)},
			[]string{"tfsa", "restored_withdrawals", s.RestoredWithdrawals.StringFixed(2)},
			[]string{"tfsa", "contribution_room", s.ContributionRoom.StringFixed(2)},
			[]string{"tfsa", "has_overcontributed", strconv.FormatBool(s.HasOvercontributed)},
		)
	}

	if m := report.Amortization; m != nil {
		rows = append(rows,
			[]string{"amortization", "principal", m.Principal.StringFixed(2)},
			[]string{"amortization", "annual_rate_percent", m.AnnualRate.StringFixed(2)},
			[]string{"amortization", "term_years", strconv.Itoa(m.TermYears)},
			[]string{"amortization", "frequency", m.Frequency},
			[]string{"amortization", "payment", m.Payment.StringFixed(2)},
			[]string{"amortization", "total_paid", m.TotalPaid.StringFixed(2)},
		)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
