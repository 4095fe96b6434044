package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

func TestProjectCompoundingGrowth(t *testing.T) {
	result := ProjectCompounding(1000, 0.00024, 365, 1.25)

	// Far from the cap: pure compound growth.
	require.False(t, result.ReachedMax)
	require.Equal(t, 0, result.DaysToMax)

	expected := 1000*math.Pow(1.00024, 365) - 1000
	require.InDelta(t, expected, result.TotalRewards, 1e-6)
	require.InDelta(t, 1000+expected, result.FinalAmount, 1e-6)
	require.InDelta(t, expected/1000*100, result.EffectiveRate, 1e-6)
}

func TestProjectCompoundingHitsCap(t *testing.T) {
	result := ProjectCompounding(1000, 0.01, 365, 1.25)

	require.True(t, result.ReachedMax)
	require.Greater(t, result.DaysToMax, 0)
	require.Less(t, result.DaysToMax, 365)

	// Rewards clamp to the cap exactly, never past it.
	require.Equal(t, 250.0, result.TotalRewards)
	require.Equal(t, 1250.0, result.FinalAmount)
	require.InDelta(t, 25.0, result.EffectiveRate, 1e-9)
}

func TestProjectCompoundingCapMonotonic(t *testing.T) {
	// Longer horizons never exceed the cap once it binds.
	short := ProjectCompounding(1000, 0.01, 30, 1.25)
	long := ProjectCompounding(1000, 0.01, 3650, 1.25)

	require.LessOrEqual(t, short.TotalRewards, 250.0)
	require.Equal(t, 250.0, long.TotalRewards)
	require.GreaterOrEqual(t, long.TotalRewards, short.TotalRewards)
}

func TestProjectCompoundingDegenerateInputs(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		dailyRate float64
		days      int
		maxROI    float64
		final     float64
	}{
		{name: "zero days", principal: 1000, dailyRate: 0.01, days: 0, maxROI: 1.25, final: 1000},
		{name: "zero principal", principal: 0, dailyRate: 0.01, days: 365, maxROI: 1.25, final: 0},
		{name: "zero rate", principal: 1000, dailyRate: 0, days: 365, maxROI: 1.25, final: 1000},
		{name: "cap not above one", principal: 1000, dailyRate: 0.01, days: 365, maxROI: 1.0, final: 1000},
		{name: "negative days", principal: 1000, dailyRate: 0.01, days: -5, maxROI: 1.25, final: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProjectCompounding(tt.principal, tt.dailyRate, tt.days, tt.maxROI)
			require.Equal(t, types.CompoundProjection{FinalAmount: tt.final}, result)
		})
	}
}
