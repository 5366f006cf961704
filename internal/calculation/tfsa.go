package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/taxdata"
)

// TFSATracker maintains the contribution/withdrawal ledger and the derived
// room state. Ledger entries are immutable once added; edits are append or
// remove-by-index only. The room state is recomputed eagerly after every
// mutation, so State is always current.
//
// The core timing invariant: a withdrawal restores contribution room only
// from the year after it happened. Same-year withdrawals do not free room.
type TFSATracker struct {
	profile       domain.TFSAProfile
	limits        map[int]decimal.Decimal
	contributions []domain.ContributionRecord
	withdrawals   []domain.WithdrawalRecord
	state         domain.TFSARoomState
	logger        Logger
}

// NewTFSATracker creates a tracker over the statutory limit table.
func NewTFSATracker(profile domain.TFSAProfile, limits map[int]decimal.Decimal, logger Logger) *TFSATracker {
	if logger == nil {
		logger = NopLogger{}
	}
	t := &TFSATracker{profile: profile, limits: limits, logger: logger}
	t.state = t.Recompute()
	return t
}

// NewTFSATrackerFromLedger rebuilds a tracker from persisted ledger entries.
func NewTFSATrackerFromLedger(profile domain.TFSAProfile, limits map[int]decimal.Decimal,
	contributions []domain.ContributionRecord, withdrawals []domain.WithdrawalRecord, logger Logger) *TFSATracker {
	t := NewTFSATracker(profile, limits, logger)
	t.contributions = append(t.contributions, contributions...)
	t.withdrawals = append(t.withdrawals, withdrawals...)
	t.state = t.Recompute()
	return t
}

// AddContribution appends a deposit to the ledger and returns the new state.
func (t *TFSATracker) AddContribution(year int, amount decimal.Decimal) domain.TFSARoomState {
	t.contributions = append(t.contributions, domain.ContributionRecord{Year: year, Amount: amount})
	t.state = t.Recompute()
	return t.state
}

// AddWithdrawal appends a withdrawal to the ledger and returns the new state.
func (t *TFSATracker) AddWithdrawal(year int, amount decimal.Decimal) domain.TFSARoomState {
	t.withdrawals = append(t.withdrawals, domain.WithdrawalRecord{Year: year, Amount: amount})
	t.state = t.Recompute()
	return t.state
}

// RemoveContribution deletes the contribution at index. An out-of-range
// index is a caller error and leaves the ledger unchanged.
func (t *TFSATracker) RemoveContribution(index int) domain.TFSARoomState {
	if index < 0 || index >= len(t.contributions) {
		t.logger.Warnf("tfsa: ignoring removal of contribution index %d (ledger has %d)", index, len(t.contributions))
		return t.state
	}
	t.contributions = append(t.contributions[:index], t.contributions[index+1:]...)
	t.state = t.Recompute()
	return t.state
}

// RemoveWithdrawal deletes the withdrawal at index, no-op when out of range.
func (t *TFSATracker) RemoveWithdrawal(index int) domain.TFSARoomState {
	if index < 0 || index >= len(t.withdrawals) {
		t.logger.Warnf("tfsa: ignoring removal of withdrawal index %d (ledger has %d)", index, len(t.withdrawals))
		return t.state
	}
	t.withdrawals = append(t.withdrawals[:index], t.withdrawals[index+1:]...)
	t.state = t.Recompute()
	return t.state
}

// SetProfile replaces the account-holder profile and recomputes.
func (t *TFSATracker) SetProfile(profile domain.TFSAProfile) domain.TFSARoomState {
	t.profile = profile
	t.state = t.Recompute()
	return t.state
}

// State returns the last computed room state.
func (t *TFSATracker) State() domain.TFSARoomState {
	return t.state
}

// Contributions returns a copy of the contribution ledger.
func (t *TFSATracker) Contributions() []domain.ContributionRecord {
	return append([]domain.ContributionRecord(nil), t.contributions...)
}

// Withdrawals returns a copy of the withdrawal ledger.
func (t *TFSATracker) Withdrawals() []domain.WithdrawalRecord {
	return append([]domain.WithdrawalRecord(nil), t.withdrawals...)
}

// Recompute derives the room state from the ledger. It is a pure function of
// the profile, the statutory table, and the ledger contents; call count does
// not affect the result.
func (t *TFSATracker) Recompute() domain.TFSARoomState {
	eligibilityYear := t.profile.BirthYear + 18
	if t.profile.ResidencySince > eligibilityYear {
		eligibilityYear = t.profile.ResidencySince
	}
	if taxdata.FirstProgramYear > eligibilityYear {
		eligibilityYear = taxdata.FirstProgramYear
	}

	// A user-supplied current-room figure is authoritative for its as-of
	// year; statutory summation is skipped up to that point and resumes for
	// later years. Years missing from the table simply contribute no room.
	statutoryRoom := decimal.Zero
	if t.profile.RoomOverride != nil {
		statutoryRoom = *t.profile.RoomOverride
		asOf := t.profile.RoomOverrideAsOf
		if asOf == 0 {
			asOf = t.profile.CurrentYear
		}
		for year := asOf + 1; year <= t.profile.CurrentYear; year++ {
			if limit, ok := t.limits[year]; ok {
				statutoryRoom = statutoryRoom.Add(limit)
			}
		}
	} else {
		for year := eligibilityYear; year <= t.profile.CurrentYear; year++ {
			if limit, ok := t.limits[year]; ok {
				statutoryRoom = statutoryRoom.Add(limit)
			}
		}
	}

	totalContributions := decimal.Zero
	for _, c := range t.contributions {
		totalContributions = totalContributions.Add(c.Amount)
	}

	// Withdrawals restore room starting the following year.
	restored := decimal.Zero
	for _, w := range t.withdrawals {
		if w.Year < t.profile.CurrentYear {
			restored = restored.Add(w.Amount)
		}
	}

	remaining := statutoryRoom.Sub(totalContributions).Add(restored)

	state := domain.TFSARoomState{
		EligibilityYear:     eligibilityYear,
		StatutoryRoom:       statutoryRoom,
		TotalContributions:  totalContributions,
		RestoredWithdrawals: restored,
		ContributionRoom:    remaining,
	}
	if remaining.IsNegative() {
		state.HasOvercontributed = true
		state.OvercontributionAmount = remaining.Abs()
	} else {
		state.OvercontributionAmount = decimal.Zero
	}
	return state
}
