package output

import (
	"bytes"
	"fmt"

	"github.com/braydenmay123/mclaughlin-toolkit/pkg/moneyutil"
)

// ConsoleFormatter renders a concise text summary of the report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL TOOLKIT SUMMARY")
	fmt.Fprintln(&buf, "=========================")

	if t := report.Tax; t != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Tax (%s)\n", t.Province)
		fmt.Fprintf(&buf, "  Adjusted Income:  %s\n", moneyutil.FormatCAD(t.AdjustedIncome))
		fmt.Fprintf(&buf, "  Federal Tax:      %s\n", moneyutil.FormatCAD(t.FederalTax))
		fmt.Fprintf(&buf, "  Provincial Tax:   %s\n", moneyutil.FormatCAD(t.ProvincialTax))
		if t.Surtax.IsPositive() {
			fmt.Fprintf(&buf, "  Surtax:           %s\n", moneyutil.FormatCAD(t.Surtax))
		}
		if t.HealthPremium.IsPositive() {
			fmt.Fprintf(&buf, "  Health Premium:   %s\n", moneyutil.FormatCAD(t.HealthPremium))
		}
		fmt.Fprintf(&buf, "  Total Tax:        %s\n", moneyutil.FormatCAD(t.TotalTax))
		fmt.Fprintf(&buf, "  After-Tax Income: %s\n", moneyutil.FormatCAD(t.AfterTaxIncome))
		fmt.Fprintf(&buf, "  Marginal Rate:    %s%%  Average Rate: %s%%\n",
			moneyutil.ToPercent(t.MarginalRate).StringFixed(2),
			moneyutil.ToPercent(t.AverageRate).StringFixed(2))
	}

	if a := report.Affordability; a != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Home Affordability")
		fmt.Fprintf(&buf, "  Down Payment:       %s\n", moneyutil.FormatCAD(a.DownPayment))
		fmt.Fprintf(&buf, "  Mortgage Principal: %s\n", moneyutil.FormatCAD(a.MortgagePrincipal))
		fmt.Fprintf(&buf, "  Biweekly Payment:   %s\n", moneyutil.FormatCAD(a.BiweeklyPayment))
		fmt.Fprintf(&buf, "  Cost of Ownership:  %s biweekly\n", moneyutil.FormatCAD(a.TotalCostOfOwnership))
		verdict := "within budget"
		if !a.Affordable {
			verdict = fmt.Sprintf("over budget by %s", moneyutil.FormatCAD(a.AffordabilityGap))
		}
		fmt.Fprintf(&buf, "  Vs Current Rent:    %s\n", verdict)
		fmt.Fprintf(&buf, "  Pre-Qualification:  %s\n", moneyutil.FormatCAD(a.PreQualification))
		if a.MonthsToSave.IsPositive() {
			fmt.Fprintf(&buf, "  Months to Save:     %s\n", a.MonthsToSave.StringFixed(1))
		}
	}

	if p := report.Purchase; p != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Purchase Comparison")
		for _, sc := range p.Scenarios() {
			fmt.Fprintf(&buf, "  %-22s NetCost=%s NetWorthImpact=%s\n",
				sc.Name, moneyutil.FormatCAD(sc.NetCost), moneyutil.FormatCAD(sc.NetWorthImpact))
		}
		fmt.Fprintf(&buf, "  Best: %s (break-even return %s%%)\n",
			p.BestScenario, moneyutil.ToPercent(p.BreakEvenRate).StringFixed(2))
	}

	if s := report.TFSA; s != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "TFSA Contribution Room")
		fmt.Fprintf(&buf, "  Eligible Since:      %d\n", s.EligibilityYear)
		fmt.Fprintf(&buf, "  Statutory Room:      %s\n", moneyutil.FormatCAD(s.StatutoryRoom))
		fmt.Fprintf(&buf, "  Contributions:       %s\n", moneyutil.FormatCAD(s.TotalContributions))
		fmt.Fprintf(&buf, "  Restored Withdrawals: %s\n", moneyutil.FormatCAD(s.RestoredWithdrawals))
		fmt.Fprintf(&buf, "  Remaining Room:      %s\n", moneyutil.FormatCAD(s.ContributionRoom))
		if s.HasOvercontributed {
			fmt.Fprintf(&buf, "  OVERCONTRIBUTED BY:  %s\n", moneyutil.FormatCAD(s.OvercontributionAmount))
		}
	}

	if m := report.Amortization; m != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Loan Amortization")
		fmt.Fprintf(&buf, "  Principal:  %s at %s%% over %d years (%s)\n",
			moneyutil.FormatCAD(m.Principal), m.AnnualRate.StringFixed(2), m.TermYears, m.Frequency)
		fmt.Fprintf(&buf, "  Payment:    %s x %d/year\n", moneyutil.FormatCAD(m.Payment), m.PeriodsPerYear)
		fmt.Fprintf(&buf, "  Total Paid: %s\n", moneyutil.FormatCAD(m.TotalPaid))
	}

	return buf.Bytes(), nil
}
