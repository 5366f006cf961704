package domain

import (
	"github.com/shopspring/decimal"
)

// ContributionRecord is a single TFSA deposit. Records are created by
// explicit user action, never mutated, and removable by index.
type ContributionRecord struct {
	Year   int             `json:"year" yaml:"year"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// WithdrawalRecord is a single TFSA withdrawal. Withdrawn amounts restore
// contribution room starting the year after the withdrawal.
type WithdrawalRecord struct {
	Year   int             `json:"year" yaml:"year"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// TFSAProfile describes the account holder. RoomOverride, when set, replaces
// the statutory limit summation through RoomOverrideAsOf (the user knows
// their CRA figure for that year); statutory limits for later years still
// accrue on top. A zero RoomOverrideAsOf means "as of CurrentYear".
type TFSAProfile struct {
	BirthYear        int              `json:"birth_year" yaml:"birth_year"`
	ResidencySince   int              `json:"residency_since" yaml:"residency_since"`
	CurrentYear      int              `json:"current_year" yaml:"current_year"`
	RoomOverride     *decimal.Decimal `json:"room_override,omitempty" yaml:"room_override,omitempty"`
	RoomOverrideAsOf int              `json:"room_override_as_of,omitempty" yaml:"room_override_as_of,omitempty"`
}

// TFSARoomState is the derived contribution-room record.
type TFSARoomState struct {
	EligibilityYear        int             `json:"eligibility_year"`
	StatutoryRoom          decimal.Decimal `json:"statutory_room"`
	TotalContributions     decimal.Decimal `json:"total_contributions"`
	RestoredWithdrawals    decimal.Decimal `json:"restored_withdrawals"`
	ContributionRoom       decimal.Decimal `json:"contribution_room"`
	HasOvercontributed     bool            `json:"has_overcontributed"`
	OvercontributionAmount decimal.Decimal `json:"overcontribution_amount"`
}
