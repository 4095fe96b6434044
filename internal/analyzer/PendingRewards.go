package analyzer

import (
	"math"

	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// EstimatePendingRewards reconstructs the unclaimed reward balance from the
// deposit ledger: simple hourly accrual per deposit since its timestamp,
// capped per deposit at the max-ROI ceiling, minus what was already claimed.
// Used when a profile is rebuilt from raw events and the chain's own pending
// balance is not available.
func EstimatePendingRewards(profile types.UserStakingProfile, constants types.StakingConstants) float64 {
	var accrued float64
	for _, d := range profile.Deposits {
		if d.Amount <= 0 || d.Timestamp > profile.NowTimestamp {
			continue
		}
		hours := float64(profile.NowTimestamp-d.Timestamp) / 3600
		reward := d.Amount * constants.HourlyROI * hours
		cap := d.Amount * (constants.MaxROI - 1)
		accrued += math.Min(reward, cap)
	}

	return math.Max(0, accrued-profile.RewardsClaimed)
}
