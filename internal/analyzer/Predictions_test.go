package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LennyDevX/nuvo-f-sub002/internal/config"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

func TestCalculatePredictionsEmptyProfile(t *testing.T) {
	profile := types.UserStakingProfile{Address: "0xnew", NowTimestamp: 1700000000}

	apyReport, err := AnalyzeUserAPY(profile, config.DefaultStakingConstants)
	require.NoError(t, err)
	consistency := CalculateConsistencyIndex(profile.Deposits)

	prediction := CalculatePredictions(profile, apyReport, consistency, config.DefaultStakingConstants)

	require.Equal(t, 1000.0, prediction.OptimalStakingAmount.Recommended)
	require.Equal(t, "medium", prediction.OptimalStakingAmount.Confidence)

	require.Equal(t, "insufficient_data", prediction.BestTiming.Pattern)
	require.Equal(t, "low", prediction.BestTiming.Confidence)
	require.Equal(t, profile.NowTimestamp+30*86400, prediction.BestTiming.NextOptimalTimestamp)

	// Zero stake projects zero rewards at every horizon.
	require.Len(t, prediction.FutureRewards, 4)
	for _, horizon := range []int{30, 90, 180, 365} {
		require.Contains(t, prediction.FutureRewards, horizon)
		require.Equal(t, 0.0, prediction.FutureRewards[horizon].Rewards)
		require.Equal(t, 0.0, prediction.FutureRewards[horizon].Total)
	}
}

func TestCalculatePredictionsOptimalStake(t *testing.T) {
	now := int64(1700000000)

	// 200 staked: the 500 baseline floor would land short of the 1000
	// breakpoint, so the recommendation snaps up to the 800 gap.
	profile := monthlyProfile(2, 100, now)
	apyReport, err := AnalyzeUserAPY(profile, config.DefaultStakingConstants)
	require.NoError(t, err)
	consistency := CalculateConsistencyIndex(profile.Deposits)

	prediction := CalculatePredictions(profile, apyReport, consistency, config.DefaultStakingConstants)
	require.InDelta(t, 800.0, prediction.OptimalStakingAmount.Recommended, 1e-9)
	require.Equal(t, "high", prediction.OptimalStakingAmount.Confidence)

	// Past the last reachable breakpoint the baseline applies, clamped to
	// the protocol maximum.
	whale := monthlyProfile(2, 5000, now)
	apyReport, err = AnalyzeUserAPY(whale, config.DefaultStakingConstants)
	require.NoError(t, err)

	prediction = CalculatePredictions(whale, apyReport, CalculateConsistencyIndex(whale.Deposits), config.DefaultStakingConstants)
	require.InDelta(t, 6000.0, prediction.OptimalStakingAmount.Recommended, 1e-9)

	giant := monthlyProfile(2, 50000, now)
	apyReport, err = AnalyzeUserAPY(giant, config.DefaultStakingConstants)
	require.NoError(t, err)

	prediction = CalculatePredictions(giant, apyReport, CalculateConsistencyIndex(giant.Deposits), config.DefaultStakingConstants)
	require.Equal(t, config.DefaultStakingConstants.MaxDeposit, prediction.OptimalStakingAmount.Recommended)
}

func TestCalculatePredictionsTiming(t *testing.T) {
	now := int64(1700000000)
	profile := monthlyProfile(5, 1000, now)

	apyReport, err := AnalyzeUserAPY(profile, config.DefaultStakingConstants)
	require.NoError(t, err)
	consistency := CalculateConsistencyIndex(profile.Deposits)

	prediction := CalculatePredictions(profile, apyReport, consistency, config.DefaultStakingConstants)

	require.Equal(t, "monthly", prediction.BestTiming.Pattern)
	require.Equal(t, "high", prediction.BestTiming.Confidence)
	require.Equal(t, now+30*86400, prediction.BestTiming.NextOptimalTimestamp)
}

func TestCalculatePredictionsFutureRewards(t *testing.T) {
	now := int64(1700000000)
	profile := monthlyProfile(5, 2000, now) // 10k staked

	apyReport, err := AnalyzeUserAPY(profile, config.DefaultStakingConstants)
	require.NoError(t, err)

	prediction := CalculatePredictions(profile, apyReport, CalculateConsistencyIndex(profile.Deposits), config.DefaultStakingConstants)

	yearly := prediction.FutureRewards[365]
	require.InDelta(t, 10000*apyReport.EffectiveAPY/100, yearly.Rewards, 1e-6)
	require.InDelta(t, 10000+yearly.Rewards, yearly.Total, 1e-9)
	require.Equal(t, apyReport.EffectiveAPY, yearly.APY)

	// Horizons scale linearly.
	require.InDelta(t, yearly.Rewards*30/365, prediction.FutureRewards[30].Rewards, 1e-6)
}
