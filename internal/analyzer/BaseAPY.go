/*

This file contains the protocol-level APY model. It derives the nominal
yield figures from the staking constants alone; nothing here looks at user
state.

*/

package analyzer

import (
	"errors"
	"math"

	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

var ErrInvalidConstants = errors.New("invalid staking constants")

var apyLogger = logger.GetForComponent("apy_model")

// CalculateBaseAPY computes the protocol's nominal APY from constants alone.
// Inputs:
//   - constants: The protocol parameters (hourly rate, max ROI cap).
//
// Output:
//   - A BaseAPY with the simple and cap-adjusted annualized rates.
//   - An error if the constants are structurally invalid.
func CalculateBaseAPY(constants types.StakingConstants) (types.BaseAPY, error) {
	if err := constants.Validate(); err != nil {
		apyLogger.Error().Err(err).Msg("Staking constants validation failed")
		return types.BaseAPY{}, errors.Join(ErrInvalidConstants, err)
	}

	dailyRate := constants.HourlyROI * 24
	simpleAPY := dailyRate * 365 * 100

	// Days of simple accrual until cumulative rewards hit the cap.
	daysToMax := int(math.Ceil((constants.MaxROI - 1) / dailyRate))

	// When the cap is reached within a year the effective annualized rate is
	// set by the cap, not the hourly rate. The cap can only reduce the
	// nominal rate, never inflate it.
	cappedAPY := simpleAPY
	if daysToMax < 365 {
		cappedAPY = (constants.MaxROI - 1) * (365 / float64(daysToMax)) * 100
		if cappedAPY > simpleAPY {
			cappedAPY = simpleAPY
		}
	}

	apyLogger.Debug().
		Float64("hourlyRate", constants.HourlyROI).
		Float64("dailyRate", dailyRate).
		Float64("simpleAPY", simpleAPY).
		Float64("cappedAPY", cappedAPY).
		Int("daysToMax", daysToMax).
		Msg("Base APY calculated")

	return types.BaseAPY{
		SimpleAPY:  simpleAPY,
		CappedAPY:  cappedAPY,
		DailyRate:  dailyRate,
		HourlyRate: constants.HourlyROI,
		MaxROI:     constants.MaxROI,
		DaysToMax:  daysToMax,
	}, nil
}
