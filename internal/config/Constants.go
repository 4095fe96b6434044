/*

This file contains the default protocol constants for the staking analytics
engine.

These defaults mirror the deployed fixed-rate staking contract. They are used
when no constants row is found in the database during initialization; a
live deployment should persist the values read from the contract instead.

*/

package config

import (
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// DefaultStakingConstants provides the baseline protocol parameters the
// analyzer runs against when nothing is persisted yet.
var DefaultStakingConstants = types.StakingConstants{
	HourlyROI: 0.00001, // 0.001% per hour.
	// Rationale: the contract accrues rewards hourly at 0.001%, which works
	// out to 0.024% per day and an 8.76% simple APY. All user-facing APY
	// figures derive from this one rate.

	MaxROI: 1.25, // Rewards cap out at 125% of principal.
	// Rationale: the contract stops accruing once cumulative rewards reach
	// 25% of the deposit. The projection engine must never show rewards
	// beyond this cap.

	CommissionRate: 0.06, // 6% commission on claimed rewards.
	// Rationale: taken by the treasury at claim time. The analyzer reports
	// gross rates; commission only matters for realized-reward displays.

	MinDeposit: 5, // Minimum deposit of 5 tokens.

	MaxDeposit: 10000, // Maximum single deposit of 10,000 tokens.
	// Rationale: the contract rejects larger deposits; the optimal-stake
	// recommendation must never exceed this.

	MaxDepositsPerUser: 300, // Per-user deposit slot ceiling.
	// Rationale: the contract stores deposits in a bounded array. The
	// efficiency multiplier penalizes users who approach this ceiling with
	// many tiny deposits, since fragmentation adds gas cost without yield.

	BasisPoints: 10000, // Contract-side basis point denominator.

	TimeBonusTiers: []types.TimeBonusTier{
		{Days: 90, Bonus: 0.01},  // +1% after one quarter staked
		{Days: 180, Bonus: 0.03}, // +3% after half a year
		{Days: 365, Bonus: 0.05}, // +5% after a full year
	},
	// Rationale: loyalty bonuses are step functions on the age of the oldest
	// deposit. Tiers must stay sorted ascending by days; the multiplier
	// engine picks the highest tier whose threshold is met.
}
