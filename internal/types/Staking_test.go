package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConstants() StakingConstants {
	return StakingConstants{
		HourlyROI:          0.00001,
		MaxROI:             1.25,
		CommissionRate:     0.06,
		MinDeposit:         5,
		MaxDeposit:         10000,
		MaxDepositsPerUser: 300,
		BasisPoints:        10000,
		TimeBonusTiers: []TimeBonusTier{
			{Days: 90, Bonus: 0.01},
			{Days: 180, Bonus: 0.03},
			{Days: 365, Bonus: 0.05},
		},
	}
}

func TestStakingConstantsValidate(t *testing.T) {
	require.NoError(t, validConstants().Validate())

	tests := []struct {
		name   string
		mutate func(*StakingConstants)
	}{
		{name: "non-positive hourly ROI", mutate: func(c *StakingConstants) { c.HourlyROI = 0 }},
		{name: "max ROI at one", mutate: func(c *StakingConstants) { c.MaxROI = 1 }},
		{name: "negative commission", mutate: func(c *StakingConstants) { c.CommissionRate = -0.01 }},
		{name: "commission at one", mutate: func(c *StakingConstants) { c.CommissionRate = 1 }},
		{name: "negative min deposit", mutate: func(c *StakingConstants) { c.MinDeposit = -1 }},
		{name: "max below min deposit", mutate: func(c *StakingConstants) { c.MaxDeposit = 1 }},
		{name: "zero deposit slots", mutate: func(c *StakingConstants) { c.MaxDepositsPerUser = 0 }},
		{name: "negative tier bonus", mutate: func(c *StakingConstants) { c.TimeBonusTiers[0].Bonus = -0.01 }},
		{name: "duplicate tier days", mutate: func(c *StakingConstants) { c.TimeBonusTiers[1].Days = 90 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constants := validConstants()
			tt.mutate(&constants)
			require.Error(t, constants.Validate())
		})
	}
}

func TestStakingDays(t *testing.T) {
	now := int64(1700000000)

	require.Equal(t, 0, UserStakingProfile{NowTimestamp: now}.StakingDays())

	profile := UserStakingProfile{
		Deposits: []Deposit{
			{Amount: 100, Timestamp: now - 10*86400},
			{Amount: 100, Timestamp: now - 90*86400}, // earliest wins
			{Amount: 100, Timestamp: now - 30*86400},
		},
		NowTimestamp: now,
	}
	require.Equal(t, 90, profile.StakingDays())

	// Partial days floor.
	profile.Deposits = []Deposit{{Amount: 100, Timestamp: now - 90*86400 - 43200}}
	require.Equal(t, 90, profile.StakingDays())

	// A deposit dated at or after now contributes no days.
	profile.Deposits = []Deposit{{Amount: 100, Timestamp: now + 100}}
	require.Equal(t, 0, profile.StakingDays())
}

func TestTotalRewards(t *testing.T) {
	profile := UserStakingProfile{RewardsClaimed: 10, PendingRewards: 2.5}
	require.InDelta(t, 12.5, profile.TotalRewards(), 1e-12)
}
