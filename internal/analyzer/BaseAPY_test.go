package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LennyDevX/nuvo-f-sub002/internal/config"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

func TestCalculateBaseAPYDefaults(t *testing.T) {
	base, err := CalculateBaseAPY(config.DefaultStakingConstants)
	require.NoError(t, err)

	require.InDelta(t, 0.00024, base.DailyRate, 1e-12)
	require.InDelta(t, 8.76, base.SimpleAPY, 1e-9)
	require.Equal(t, 1042, base.DaysToMax)

	// Cap is hit well past a year, so it does not bind.
	require.InDelta(t, base.SimpleAPY, base.CappedAPY, 1e-9)
}

func TestCalculateBaseAPYCapBinds(t *testing.T) {
	constants := config.DefaultStakingConstants
	constants.HourlyROI = 0.0001 // 0.24% per day reaches the cap in 105 days

	base, err := CalculateBaseAPY(constants)
	require.NoError(t, err)

	require.InDelta(t, 87.6, base.SimpleAPY, 1e-9)
	require.Equal(t, 105, base.DaysToMax)
	require.Less(t, base.CappedAPY, base.SimpleAPY)
	require.InDelta(t, 0.25*(365.0/105.0)*100, base.CappedAPY, 1e-9)
}

func TestCalculateBaseAPYNeverInflates(t *testing.T) {
	// A rate that reaches the cap exactly at 365 days must not be bumped
	// above the simple rate by the cap formula.
	constants := config.DefaultStakingConstants
	constants.HourlyROI = 0.25 / 365 / 24

	base, err := CalculateBaseAPY(constants)
	require.NoError(t, err)
	require.LessOrEqual(t, base.CappedAPY, base.SimpleAPY+1e-9)
}

func TestCalculateBaseAPYInvalidConstants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.StakingConstants)
	}{
		{name: "zero hourly rate", mutate: func(c *types.StakingConstants) { c.HourlyROI = 0 }},
		{name: "negative hourly rate", mutate: func(c *types.StakingConstants) { c.HourlyROI = -0.1 }},
		{name: "max ROI not above one", mutate: func(c *types.StakingConstants) { c.MaxROI = 1.0 }},
		{name: "commission out of range", mutate: func(c *types.StakingConstants) { c.CommissionRate = 1.0 }},
		{name: "zero deposit slots", mutate: func(c *types.StakingConstants) { c.MaxDepositsPerUser = 0 }},
		{name: "unsorted tiers", mutate: func(c *types.StakingConstants) {
			c.TimeBonusTiers = []types.TimeBonusTier{{Days: 180, Bonus: 0.03}, {Days: 90, Bonus: 0.01}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constants := config.DefaultStakingConstants
			tt.mutate(&constants)
			_, err := CalculateBaseAPY(constants)
			require.ErrorIs(t, err, ErrInvalidConstants)
		})
	}
}
