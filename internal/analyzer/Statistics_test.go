package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

func TestDepositIntervalsDays(t *testing.T) {
	base := int64(1700000000)

	require.Nil(t, DepositIntervalsDays(nil))
	require.Nil(t, DepositIntervalsDays([]types.Deposit{{Amount: 1, Timestamp: base}}))

	// Unsorted input still yields chronological intervals.
	deposits := []types.Deposit{
		{Amount: 1, Timestamp: base + 40*86400},
		{Amount: 1, Timestamp: base},
		{Amount: 1, Timestamp: base + 10*86400},
	}
	intervals := DepositIntervalsDays(deposits)
	require.Len(t, intervals, 2)
	require.InDelta(t, 10.0, intervals[0], 1e-9)
	require.InDelta(t, 30.0, intervals[1], 1e-9)
}

func TestMeanStdDev(t *testing.T) {
	mean, stdDev := MeanStdDev(nil)
	require.Equal(t, 0.0, mean)
	require.Equal(t, 0.0, stdDev)

	mean, stdDev = MeanStdDev([]float64{30, 30, 30})
	require.InDelta(t, 30.0, mean, 1e-12)
	require.InDelta(t, 0.0, stdDev, 1e-12)

	// Population standard deviation of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2.
	mean, stdDev = MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.InDelta(t, 5.0, mean, 1e-12)
	require.InDelta(t, 2.0, stdDev, 1e-12)
}

func TestCoefficientOfVariation(t *testing.T) {
	require.Equal(t, 0.0, CoefficientOfVariation(nil))
	require.Equal(t, 0.0, CoefficientOfVariation([]float64{0, 0}))
	require.InDelta(t, 0.4, CoefficientOfVariation([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}

func TestHerfindahlIndex(t *testing.T) {
	_, ok := HerfindahlIndex(nil)
	require.False(t, ok)

	_, ok = HerfindahlIndex([]float64{0, -5})
	require.False(t, ok)

	hhi, ok := HerfindahlIndex([]float64{1000})
	require.True(t, ok)
	require.InDelta(t, 1.0, hhi, 1e-12)

	hhi, ok = HerfindahlIndex([]float64{500, 500})
	require.True(t, ok)
	require.InDelta(t, 0.5, hhi, 1e-12)

	hhi, ok = HerfindahlIndex([]float64{250, 250, 250, 250})
	require.True(t, ok)
	require.InDelta(t, 0.25, hhi, 1e-12)

	// Non-positive entries are ignored, not counted as participants.
	hhi, ok = HerfindahlIndex([]float64{500, 500, 0})
	require.True(t, ok)
	require.InDelta(t, 0.5, hhi, 1e-12)
}
