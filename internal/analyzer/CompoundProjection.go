/*

This file contains the day-by-day compound projection bounded by the max-ROI
cap. The loop is intentionally explicit rather than closed-form: the cap
makes growth piecewise, and identical day-granular rounding across every
consumer of these numbers is a correctness requirement.

*/

package analyzer

import (
	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

var projectionLogger = logger.GetForComponent("compound_projector")

// ProjectCompounding simulates compounding of a principal at dailyRate for
// the given number of days. Cumulative rewards never exceed
// principal*(maxROIMultiplier-1); once the cap is hit the simulation halts
// early.
// Inputs:
//   - principal: Starting amount in human units.
//   - dailyRate: Per-day reward rate as a fraction.
//   - days: Simulation horizon.
//   - maxROIMultiplier: Cumulative reward cap (e.g. 1.25).
//
// Output:
//   - A CompoundProjection; the identity result with zero rewards for
//     non-positive inputs.
func ProjectCompounding(principal, dailyRate float64, days int, maxROIMultiplier float64) types.CompoundProjection {
	if days <= 0 || principal <= 0 || dailyRate <= 0 || maxROIMultiplier <= 1 {
		result := types.CompoundProjection{}
		if principal > 0 {
			result.FinalAmount = principal
		}
		return result
	}

	maxRewards := principal * (maxROIMultiplier - 1)
	current := principal
	totalRewards := 0.0
	reachedMax := false
	daysToMax := 0

	for day := 1; day <= days; day++ {
		reward := current * dailyRate
		if totalRewards+reward >= maxRewards {
			// Clamp to the cap exactly; partial accrual past it is not paid.
			totalRewards = maxRewards
			reachedMax = true
			daysToMax = day
			break
		}
		totalRewards += reward
		current += reward
	}

	result := types.CompoundProjection{
		FinalAmount:   principal + totalRewards,
		TotalRewards:  totalRewards,
		EffectiveRate: totalRewards / principal * 100,
		ReachedMax:    reachedMax,
		DaysToMax:     daysToMax,
	}

	projectionLogger.Debug().
		Float64("principal", principal).
		Float64("dailyRate", dailyRate).
		Int("days", days).
		Float64("totalRewards", result.TotalRewards).
		Bool("reachedMax", result.ReachedMax).
		Int("daysToMax", result.DaysToMax).
		Msg("Compound projection calculated")

	return result
}
