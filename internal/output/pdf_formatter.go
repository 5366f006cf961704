package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/braydenmay123/mclaughlin-toolkit/pkg/moneyutil"
)

const pdfContentWidth = 190.0

// PDFFormatter renders the report as a single-column A4 PDF.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(pdfContentWidth, 12, "Financial Toolkit Report", "", 1, "C", false, 0, "")
	if !report.GeneratedAt.IsZero() {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(pdfContentWidth, 6,
			fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	if t := report.Tax; t != nil {
		writeSection(pdf, fmt.Sprintf("Tax Summary (%s)", t.Province), [][2]string{
			{"Adjusted Income", moneyutil.FormatCAD(t.AdjustedIncome)},
			{"Federal Tax", moneyutil.FormatCAD(t.FederalTax)},
			{"Provincial Tax", moneyutil.FormatCAD(t.ProvincialTax)},
			{"Surtax", moneyutil.FormatCAD(t.Surtax)},
			{"Health Premium", moneyutil.FormatCAD(t.HealthPremium)},
			{"Total Tax", moneyutil.FormatCAD(t.TotalTax)},
			{"After-Tax Income", moneyutil.FormatCAD(t.AfterTaxIncome)},
			{"Marginal Rate", moneyutil.ToPercent(t.MarginalRate).StringFixed(2) + "%"},
		})
	}

	if a := report.Affordability; a != nil {
		verdict := "Affordable vs current rent"
		if !a.Affordable {
			verdict = fmt.Sprintf("Over budget by %s", moneyutil.FormatCAD(a.AffordabilityGap))
		}
		writeSection(pdf, "Home Affordability", [][2]string{
			{"Down Payment", moneyutil.FormatCAD(a.DownPayment)},
			{"Mortgage Principal", moneyutil.FormatCAD(a.MortgagePrincipal)},
			{"Biweekly Payment", moneyutil.FormatCAD(a.BiweeklyPayment)},
			{"Cost of Ownership", moneyutil.FormatCAD(a.TotalCostOfOwnership)},
			{"Verdict", verdict},
			{"Pre-Qualification", moneyutil.FormatCAD(a.PreQualification)},
		})
	}

	if pc := report.Purchase; pc != nil {
		rows := make([][2]string, 0, 5)
		for _, sc := range pc.Scenarios() {
			rows = append(rows, [2]string{sc.Name, fmt.Sprintf("Net worth impact %s", moneyutil.FormatCAD(sc.NetWorthImpact))})
		}
		rows = append(rows, [2]string{"Best Strategy", pc.BestScenario})
		writeSection(pdf, "Large Purchase Comparison", rows)
	}

	if s := report.TFSA; s != nil {
		rows := [][2]string{
			{"Eligible Since", fmt.Sprintf("%d", s.EligibilityYear)},
			{"Statutory Room", moneyutil.FormatCAD(s.StatutoryRoom)},
			{"Contributions", moneyutil.FormatCAD(s.TotalContributions)},
			{"Remaining Room", moneyutil.FormatCAD(s.ContributionRoom)},
		}
		if s.HasOvercontributed {
			rows = append(rows, [2]string{"Overcontributed", moneyutil.FormatCAD(s.OvercontributionAmount)})
		}
		writeSection(pdf, "TFSA Contribution Room", rows)
	}

	if m := report.Amortization; m != nil {
		writeSection(pdf, "Loan Amortization", [][2]string{
			{"Principal", moneyutil.FormatCAD(m.Principal)},
			{"Rate / Term", fmt.Sprintf("%s%% over %d years (%s)", m.AnnualRate.StringFixed(2), m.TermYears, m.Frequency)},
			{"Payment", fmt.Sprintf("%s x %d/year", moneyutil.FormatCAD(m.Payment), m.PeriodsPerYear)},
			{"Total Paid", moneyutil.FormatCAD(m.TotalPaid)},
		})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(pdfContentWidth, 8, title, "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(pdfContentWidth/2, 7, row[0], "LB", 0, "L", false, 0, "")
		pdf.CellFormat(pdfContentWidth/2, 7, row[1], "RB", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}
