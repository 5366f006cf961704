// Package output renders calculation results in pluggable formats:
// console text, JSON, CSV, and PDF.
package output

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

// AmortizationSummary captures a computed loan payment for reporting.
type AmortizationSummary struct {
	Principal      decimal.Decimal `json:"principal"`
	AnnualRate     decimal.Decimal `json:"annual_rate_percent"`
	TermYears      int             `json:"term_years"`
	Frequency      string          `json:"frequency"`
	Payment        decimal.Decimal `json:"payment"`
	PeriodsPerYear int             `json:"periods_per_year"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
}

// Report aggregates the results of one toolkit run. Sections are nil when
// the corresponding calculator did not run.
type Report struct {
	GeneratedAt   time.Time                    `json:"generated_at"`
	Tax           *domain.TaxCalculationResult `json:"tax,omitempty"`
	Affordability *domain.AffordabilityResult  `json:"affordability,omitempty"`
	Purchase      *domain.PurchaseCalculation  `json:"purchase,omitempty"`
	TFSA          *domain.TFSARoomState        `json:"tfsa,omitempty"`
	Amortization  *AmortizationSummary         `json:"amortization,omitempty"`
}

// Empty reports whether no calculator produced a section.
func (r *Report) Empty() bool {
	return r.Tax == nil && r.Affordability == nil && r.Purchase == nil &&
		r.TFSA == nil && r.Amortization == nil
}
