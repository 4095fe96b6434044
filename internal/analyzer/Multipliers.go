/*

This file contains the four APY multiplier functions. They are independent
and order-insensitive; the effective APY composes them multiplicatively.
Each is a total function: ratios with zero denominators resolve to the
neutral multiplier 1.0.

*/

package analyzer

import (
	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// Volume bonus breakpoints in human token units.
const (
	volumeTier1Threshold = 1000
	volumeTier2Threshold = 5000
	volumeTier3Threshold = 10000

	volumeTier1Bonus = 0.005
	volumeTier2Bonus = 0.01
	volumeTier3Bonus = 0.02
)

var multiplierLogger = logger.GetForComponent("multiplier_engine")

// TimeBonus returns the loyalty multiplier for the given staking duration.
// Tiers are a step function sorted ascending by days; the highest tier whose
// threshold is met wins, and ties at a boundary favor inclusion.
func TimeBonus(stakingDays int, tiers []types.TimeBonusTier) float64 {
	bonus := 0.0
	for _, tier := range tiers {
		if stakingDays >= tier.Days {
			bonus = tier.Bonus
		}
	}
	return 1 + bonus
}

// NextTimeBonusTier returns the first tier the user has not yet reached,
// or false when the top tier is already held.
func NextTimeBonusTier(stakingDays int, tiers []types.TimeBonusTier) (types.TimeBonusTier, bool) {
	for _, tier := range tiers {
		if stakingDays < tier.Days {
			return tier, true
		}
	}
	return types.TimeBonusTier{}, false
}

// VolumeBonus returns the stake-size multiplier on fixed breakpoints.
func VolumeBonus(totalStaked float64) float64 {
	switch {
	case totalStaked >= volumeTier3Threshold:
		return 1 + volumeTier3Bonus
	case totalStaked >= volumeTier2Threshold:
		return 1 + volumeTier2Bonus
	case totalStaked >= volumeTier1Threshold:
		return 1 + volumeTier1Bonus
	default:
		return 1.0
	}
}

// NextVolumeBreakpoint returns the next volume-bonus breakpoint above the
// user's current stake, or 0 when the top breakpoint is already met.
func NextVolumeBreakpoint(totalStaked float64) float64 {
	switch {
	case totalStaked < volumeTier1Threshold:
		return volumeTier1Threshold
	case totalStaked < volumeTier2Threshold:
		return volumeTier2Threshold
	case totalStaked < volumeTier3Threshold:
		return volumeTier3Threshold
	default:
		return 0
	}
}

// EfficiencyMultiplier penalizes over-fragmentation of the deposit ledger.
// Many tiny deposits approach the per-user slot ceiling without improving
// yield, so utilization of the slot budget is discouraged past 60%.
func EfficiencyMultiplier(depositCount int, maxDepositsPerUser uint32) float64 {
	if depositCount <= 0 || maxDepositsPerUser == 0 {
		return 1.0
	}
	utilization := float64(depositCount) / float64(maxDepositsPerUser)
	switch {
	case utilization > 0.8:
		return 0.95
	case utilization > 0.6:
		return 0.98
	default:
		return 1.0
	}
}

// HoldRatio returns the fraction of lifetime value still staked, 1.0 when
// the user has never withdrawn.
func HoldRatio(totalStaked, totalWithdrawn float64) float64 {
	lifetime := totalStaked + totalWithdrawn
	if totalWithdrawn <= 0 || lifetime <= 0 {
		return 1.0
	}
	return totalStaked / lifetime
}

// WithdrawalPenalty discounts the APY of users who have withdrawn a large
// share of their lifetime stake.
func WithdrawalPenalty(totalStaked, totalWithdrawn float64) float64 {
	if HoldRatio(totalStaked, totalWithdrawn) < 0.8 {
		return 0.95
	}
	return 1.0
}

// CalculateMultipliers computes the full multiplier set for a profile.
func CalculateMultipliers(profile types.UserStakingProfile, constants types.StakingConstants) types.MultiplierSet {
	set := types.MultiplierSet{
		TimeBonus:            TimeBonus(profile.StakingDays(), constants.TimeBonusTiers),
		VolumeBonus:          VolumeBonus(profile.TotalStaked),
		EfficiencyMultiplier: EfficiencyMultiplier(len(profile.Deposits), constants.MaxDepositsPerUser),
		WithdrawalPenalty:    WithdrawalPenalty(profile.TotalStaked, profile.TotalWithdrawn),
	}

	multiplierLogger.Debug().
		Str("address", profile.Address).
		Float64("timeBonus", set.TimeBonus).
		Float64("volumeBonus", set.VolumeBonus).
		Float64("efficiencyMultiplier", set.EfficiencyMultiplier).
		Float64("withdrawalPenalty", set.WithdrawalPenalty).
		Float64("finalMultiplier", set.Product()).
		Msg("Multipliers calculated")

	return set
}
