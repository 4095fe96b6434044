/*

This file contains the forward-looking prediction engine: the recommended
next deposit size, the timing suggestion derived from the observed deposit
cadence, and simple-interest reward projections over fixed horizons.

*/

package analyzer

import (
	"fmt"
	"math"

	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// Horizons, in days, for the future-reward projections.
var rewardHorizons = []int{30, 90, 180, 365}

// Floor for the recommended deposit when the user's own history gives no
// better anchor.
const minRecommendedStake = 500

var predictionLogger = logger.GetForComponent("prediction_engine")

// CalculatePredictions assembles the full prediction bundle for a profile.
// All timing arithmetic is anchored to profile.NowTimestamp, never the wall
// clock.
func CalculatePredictions(profile types.UserStakingProfile, apyReport types.APYReport, consistency types.ConsistencyIndex, constants types.StakingConstants) types.Prediction {
	prediction := types.Prediction{
		OptimalStakingAmount: optimalStakingAmount(profile, constants),
		BestTiming:           bestTiming(profile, consistency),
		FutureRewards:        futureRewards(profile.TotalStaked, apyReport.EffectiveAPY),
	}

	predictionLogger.Debug().
		Str("address", profile.Address).
		Float64("recommendedStake", prediction.OptimalStakingAmount.Recommended).
		Str("timingPattern", prediction.BestTiming.Pattern).
		Int("horizons", len(prediction.FutureRewards)).
		Msg("Predictions calculated")

	return prediction
}

// optimalStakingAmount recommends the next deposit size. The baseline is
// 120% of the user's average deposit; when that lands just short of a volume
// breakpoint the recommendation snaps up to the breakpoint, since crossing
// it changes the yield while an arbitrary amount does not.
func optimalStakingAmount(profile types.UserStakingProfile, constants types.StakingConstants) types.OptimalStake {
	if len(profile.Deposits) == 0 {
		return types.OptimalStake{
			Recommended: 1000,
			Reasoning:   "No deposit history; the first volume bonus tier is the natural starting target",
			Confidence:  "medium",
		}
	}

	avgDeposit := profile.TotalStaked / float64(len(profile.Deposits))
	recommended := math.Max(avgDeposit*1.2, minRecommendedStake)
	reasoning := "Sized from your average deposit with a growth margin"

	// Snapping to the 10000 breakpoint is not worth it from a small base;
	// only the lower two tiers are close enough to reach for.
	if breakpoint := NextVolumeBreakpoint(profile.TotalStaked); breakpoint > 0 && breakpoint < volumeTier3Threshold {
		gap := breakpoint - profile.TotalStaked
		if gap > 0 && gap > recommended {
			recommended = gap
			reasoning = fmt.Sprintf("Sized to reach the %.0f volume bonus tier", breakpoint)
		}
	}

	if constants.MaxDeposit > 0 && recommended > constants.MaxDeposit {
		recommended = constants.MaxDeposit
		reasoning = "Capped at the protocol maximum deposit"
	}

	return types.OptimalStake{
		Recommended: recommended,
		Reasoning:   reasoning,
		Confidence:  "high",
	}
}

// bestTiming derives a deposit-timing suggestion from the consistency index.
// Fewer than three deposits gives too noisy a cadence to extrapolate, so the
// suggestion falls back to a fixed 30-day rhythm at low confidence.
func bestTiming(profile types.UserStakingProfile, consistency types.ConsistencyIndex) types.TimingPrediction {
	if len(profile.Deposits) < 3 {
		return types.TimingPrediction{
			Pattern:              "insufficient_data",
			Recommendation:       "Establish a regular deposit rhythm; a 30-day cycle is a reasonable default",
			NextOptimalTimestamp: profile.NowTimestamp + 30*86400,
			Confidence:           "low",
		}
	}

	next := profile.NowTimestamp + int64(consistency.MeanIntervalDays*86400)
	recommendation := fmt.Sprintf("Your cadence is %s; the next deposit in about %.0f days continues it", consistency.Frequency, consistency.MeanIntervalDays)
	confidence := "high"
	if consistency.Score < 40 {
		recommendation = "Your deposit intervals vary widely; tightening to a fixed cycle improves your consistency score"
		confidence = "medium"
	}

	return types.TimingPrediction{
		Pattern:              consistency.Frequency,
		Recommendation:       recommendation,
		NextOptimalTimestamp: next,
		Confidence:           confidence,
	}
}

// futureRewards projects simple-interest rewards at the effective APY over
// the fixed horizons.
func futureRewards(totalStaked, effectiveAPY float64) map[int]types.FutureReward {
	projections := make(map[int]types.FutureReward, len(rewardHorizons))
	dailyFraction := effectiveAPY / 365 / 100

	for _, days := range rewardHorizons {
		rewards := 0.0
		if totalStaked > 0 {
			rewards = totalStaked * dailyFraction * float64(days)
		}
		projections[days] = types.FutureReward{
			Rewards: rewards,
			Total:   totalStaked + rewards,
			APY:     effectiveAPY,
		}
	}

	return projections
}
