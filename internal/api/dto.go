package api

import (
	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

// TaxRequest asks for a combined federal and provincial tax calculation.
type TaxRequest struct {
	Province        string          `json:"province"`
	AnnualIncome    decimal.Decimal `json:"annual_income"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

// AmortizationRequest asks for a periodic loan payment.
type AmortizationRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermYears         int             `json:"term_years"`
	Frequency         string          `json:"frequency"`
}

// AmortizationResponse is the computed payment schedule summary.
type AmortizationResponse struct {
	Payment        decimal.Decimal `json:"payment"`
	PeriodsPerYear int             `json:"periods_per_year"`
	TotalPeriods   int             `json:"total_periods"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
}

// TFSAEventRequest records a contribution or withdrawal on an account.
type TFSAEventRequest struct {
	Kind   string          `json:"kind"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// TFSAEventResponse echoes a recorded event with its assigned ID.
type TFSAEventResponse struct {
	ID     int64           `json:"id"`
	Kind   string          `json:"kind"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// TFSARoomResponse is the derived contribution-room record for an account.
type TFSARoomResponse struct {
	Account string               `json:"account"`
	Profile domain.TFSAProfile   `json:"profile"`
	Room    domain.TFSARoomState `json:"room"`
}

// ContactRequest is a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// StatusResponse acknowledges a write.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
