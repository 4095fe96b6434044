/*

This file contains the per-user APY analysis: base model plus the four
multipliers, the observed on-chain rate, and the conservative projection.

*/

package analyzer

import (
	"errors"
	"fmt"
	"math"

	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// projectedAPYHeadroom caps the projection at 110% of the base capped APY so
// that stacked multipliers never produce an implausible headline number.
const projectedAPYHeadroom = 1.1

// AnalyzeUserAPY combines the base APY model with the user's multipliers
// into a full yield report.
// Inputs:
//   - profile: The user's deposit ledger snapshot.
//   - constants: The protocol parameters.
//
// Output:
//   - An APYReport with effective, actual, and projected rates.
//   - An error only if the constants are structurally invalid.
func AnalyzeUserAPY(profile types.UserStakingProfile, constants types.StakingConstants) (types.APYReport, error) {
	base, err := CalculateBaseAPY(constants)
	if err != nil {
		return types.APYReport{}, err
	}

	multipliers := CalculateMultipliers(profile, constants)
	stakingDays := profile.StakingDays()

	effectiveAPY := base.CappedAPY * multipliers.Product()

	// Observed realized rate, deliberately independent of the model: drift
	// between this and effectiveAPY means theory and chain disagree.
	actualAPY := 0.0
	if stakingDays > 0 && profile.TotalStaked > 0 {
		actualAPY = (profile.RewardsClaimed / profile.TotalStaked) * (365 / float64(stakingDays)) * 100
	}

	projectedAPY := math.Min(effectiveAPY, base.CappedAPY*projectedAPYHeadroom)

	holdRatio := HoldRatio(profile.TotalStaked, profile.TotalWithdrawn)

	roi := 0.0
	if profile.TotalStaked > 0 {
		roi = profile.TotalRewards() / profile.TotalStaked * 100
	}

	report := types.APYReport{
		BaseAPY:         base.CappedAPY,
		EffectiveAPY:    effectiveAPY,
		ActualAPY:       actualAPY,
		ProjectedAPY:    projectedAPY,
		Multipliers:     multipliers,
		DailyRate:       base.DailyRate,
		MonthlyRate:     base.DailyRate * 30,
		HoldRatio:       holdRatio,
		StakingDays:     stakingDays,
		ROI:             roi,
		Recommendations: apyRecommendations(profile, stakingDays, multipliers, constants),
	}

	for _, check := range []struct {
		value float64
		name  string
	}{
		{report.EffectiveAPY, "effective APY"},
		{report.ActualAPY, "actual APY"},
		{report.ProjectedAPY, "projected APY"},
	} {
		if math.IsNaN(check.value) || math.IsInf(check.value, 0) {
			apyLogger.Error().
				Str("address", profile.Address).
				Str("field", check.name).
				Msg("APY calculation resulted in invalid value")
			return types.APYReport{}, errors.New(check.name + " calculation resulted in NaN or Inf")
		}
	}

	apyLogger.Debug().
		Str("address", profile.Address).
		Float64("baseAPY", report.BaseAPY).
		Float64("effectiveAPY", report.EffectiveAPY).
		Float64("actualAPY", report.ActualAPY).
		Float64("projectedAPY", report.ProjectedAPY).
		Int("stakingDays", stakingDays).
		Msg("User APY analyzed")

	return report, nil
}

// apyRecommendations emits textual advice keyed off whichever multiplier is
// sub-maximal.
func apyRecommendations(profile types.UserStakingProfile, stakingDays int, multipliers types.MultiplierSet, constants types.StakingConstants) []string {
	recs := make([]string, 0, 4)

	if next, ok := NextTimeBonusTier(stakingDays, constants.TimeBonusTiers); ok {
		recs = append(recs, fmt.Sprintf(
			"Hold for %d more days to unlock a +%.0f%% time bonus",
			next.Days-stakingDays, next.Bonus*100))
	}

	if breakpoint := NextVolumeBreakpoint(profile.TotalStaked); breakpoint > 0 {
		recs = append(recs, fmt.Sprintf(
			"Stake %.0f more tokens to reach the %.0f volume bonus tier",
			breakpoint-profile.TotalStaked, breakpoint))
	}

	if multipliers.EfficiencyMultiplier < 1.0 {
		recs = append(recs, "Consolidate small deposits to reduce slot utilization and restore the efficiency multiplier")
	}

	if multipliers.WithdrawalPenalty < 1.0 {
		recs = append(recs, "Keeping at least 80% of lifetime value staked removes the withdrawal penalty")
	}

	return recs
}
