package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/taxdata"
)

func testLimits() map[int]decimal.Decimal {
	return taxdata.MustLoad().TFSALimits
}

func overrideProfile(room int64, year int) domain.TFSAProfile {
	amount := decimal.NewFromInt(room)
	return domain.TFSAProfile{
		BirthYear:        1990,
		ResidencySince:   2009,
		CurrentYear:      year,
		RoomOverride:     &amount,
		RoomOverrideAsOf: year,
	}
}

func TestTFSAStatutoryRoom(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.TFSAProfile
		expected int64
	}{
		{
			name:     "turned 18 after program start",
			profile:  domain.TFSAProfile{BirthYear: 2000, ResidencySince: 2009, CurrentYear: 2020},
			expected: 17500, // 2018+2019+2020 = 5500+6000+6000
		},
		{
			name:     "eligible since program start",
			profile:  domain.TFSAProfile{BirthYear: 1980, ResidencySince: 1980, CurrentYear: 2025},
			expected: 102000, // full 2009-2025 accumulation
		},
		{
			name:     "residency gates eligibility",
			profile:  domain.TFSAProfile{BirthYear: 1980, ResidencySince: 2023, CurrentYear: 2025},
			expected: 20500, // 6500+7000+7000
		},
		{
			name:     "years past the table contribute nothing",
			profile:  domain.TFSAProfile{BirthYear: 1980, ResidencySince: 1980, CurrentYear: 2030},
			expected: 102000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTFSATracker(tt.profile, testLimits(), nil)
			state := tracker.State()
			assert.True(t, state.ContributionRoom.Equal(decimal.NewFromInt(tt.expected)),
				"got %s", state.ContributionRoom)
		})
	}
}

// Contributing then withdrawing the same amount in year Y leaves room
// unchanged in Y, but restores the amount starting in Y+1.
func TestTFSAWithdrawalCarryForward(t *testing.T) {
	tracker := NewTFSATracker(overrideProfile(2000, 2024), testLimits(), nil)
	require.True(t, tracker.State().ContributionRoom.Equal(decimal.NewFromInt(2000)))

	state := tracker.AddContribution(2024, decimal.NewFromInt(2000))
	assert.True(t, state.ContributionRoom.IsZero(), "after contribution: %s", state.ContributionRoom)

	// Same-year withdrawal does not restore room.
	state = tracker.AddWithdrawal(2024, decimal.NewFromInt(2000))
	assert.True(t, state.ContributionRoom.IsZero(), "after same-year withdrawal: %s", state.ContributionRoom)
	assert.False(t, state.HasOvercontributed)

	// Advance to 2025: room = 2025 statutory limit + the restored 2000.
	profile := overrideProfile(2000, 2024)
	profile.CurrentYear = 2025
	state = tracker.SetProfile(profile)
	expected := decimal.NewFromInt(7000 + 2000)
	assert.True(t, state.ContributionRoom.Equal(expected), "in 2025: %s", state.ContributionRoom)
}

func TestTFSAOvercontribution(t *testing.T) {
	tracker := NewTFSATracker(overrideProfile(1000, 2025), testLimits(), nil)

	state := tracker.AddContribution(2025, decimal.NewFromInt(5000))
	assert.True(t, state.HasOvercontributed)
	assert.True(t, state.OvercontributionAmount.Equal(decimal.NewFromInt(4000)),
		"got %s", state.OvercontributionAmount)
	assert.True(t, state.ContributionRoom.Equal(decimal.NewFromInt(-4000)))

	// Removing the contribution restores the ledger and clears the flag.
	state = tracker.RemoveContribution(0)
	assert.False(t, state.HasOvercontributed)
	assert.True(t, state.OvercontributionAmount.IsZero())
	assert.True(t, state.ContributionRoom.Equal(decimal.NewFromInt(1000)))
}

func TestTFSARemoveOutOfRangeIsNoOp(t *testing.T) {
	tracker := NewTFSATracker(overrideProfile(1000, 2025), testLimits(), nil)
	tracker.AddContribution(2025, decimal.NewFromInt(100))
	before := tracker.State()

	assert.Equal(t, before, tracker.RemoveContribution(5))
	assert.Equal(t, before, tracker.RemoveContribution(-1))
	assert.Equal(t, before, tracker.RemoveWithdrawal(0))
	assert.Len(t, tracker.Contributions(), 1)
}

func TestTFSARecomputeDependsOnlyOnLedger(t *testing.T) {
	tracker := NewTFSATracker(overrideProfile(5000, 2025), testLimits(), nil)
	tracker.AddContribution(2024, decimal.NewFromInt(1500))
	tracker.AddWithdrawal(2023, decimal.NewFromInt(400))

	first := tracker.Recompute()
	second := tracker.Recompute()
	assert.Equal(t, first, second)
	assert.Equal(t, first, tracker.State())
}

func TestTFSARebuildFromLedger(t *testing.T) {
	contributions := []domain.ContributionRecord{{Year: 2024, Amount: decimal.NewFromInt(3000)}}
	withdrawals := []domain.WithdrawalRecord{{Year: 2023, Amount: decimal.NewFromInt(1000)}}

	tracker := NewTFSATrackerFromLedger(overrideProfile(5000, 2025), testLimits(), contributions, withdrawals, nil)
	state := tracker.State()
	// 5000 - 3000 + 1000 (withdrawal predates the current year)
	assert.True(t, state.ContributionRoom.Equal(decimal.NewFromInt(3000)), "got %s", state.ContributionRoom)
}

func TestTFSAEligibilityYear(t *testing.T) {
	tracker := NewTFSATracker(domain.TFSAProfile{BirthYear: 2004, ResidencySince: 2009, CurrentYear: 2025}, testLimits(), nil)
	assert.Equal(t, 2022, tracker.State().EligibilityYear)

	tracker = NewTFSATracker(domain.TFSAProfile{BirthYear: 1970, ResidencySince: 1990, CurrentYear: 2025}, testLimits(), nil)
	assert.Equal(t, taxdata.FirstProgramYear, tracker.State().EligibilityYear)
}
