/*

This file contains the main function for calculating the 8-category
portfolio score, plus the behavioral indices (consistency, capital
efficiency, temporal diversification) that feed it.

The multi-factor design is deliberate: a single-metric score is trivially
gameable by one large deposit, while the eight-way split rewards durable,
diversified, consistent behavior.

*/

package analyzer

import (
	"math"

	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

var scoreLogger = logger.GetForComponent("portfolio_scorer")

// CalculatePortfolioScore computes the full 0-100 portfolio score for a
// profile. Each category is bucketed independently against its metric; the
// total is the sum of the categories.
// Inputs:
//   - profile: The user's deposit ledger snapshot.
//   - apyReport: The user's APY report (for the APY and hold-ratio categories).
//   - constants: The protocol parameters (for the slot-utilization category).
//
// Output:
//   - An ExpandedScore whose category scores sum to TotalScore.
func CalculatePortfolioScore(profile types.UserStakingProfile, apyReport types.APYReport, constants types.StakingConstants) types.ExpandedScore {
	stakingDays := profile.StakingDays()

	consistency := CalculateConsistencyIndex(profile.Deposits)
	capitalEfficiency := CalculateCapitalEfficiency(profile, stakingDays)
	diversification := CalculateTemporalDiversification(profile.Deposits)

	categories := types.CategoryScores{
		APYPerformance:          scoreAPYPerformance(apyReport.EffectiveAPY, apyReport.BaseAPY, profile.TotalStaked),
		StakeSize:               scoreStakeSize(profile.TotalStaked),
		TimeCommitment:          scoreTimeCommitment(stakingDays),
		StrategyEfficiency:      scoreStrategyEfficiency(len(profile.Deposits), constants.MaxDepositsPerUser),
		Consistency:             scoreConsistency(consistency),
		RiskManagement:          scoreRiskManagement(profile.TotalStaked, apyReport.HoldRatio),
		CapitalEfficiency:       scoreCapitalEfficiency(profile, stakingDays, capitalEfficiency),
		TemporalDiversification: scoreTemporalDiversification(diversification),
	}

	result := types.ExpandedScore{
		TotalScore:     categories.Sum(),
		CategoryScores: categories,
		Breakdown: types.ScoreBreakdown{
			Consistency:             consistency,
			CapitalEfficiency:       capitalEfficiency,
			TemporalDiversification: diversification,
		},
	}

	scoreLogger.Debug().
		Str("address", profile.Address).
		Int("totalScore", result.TotalScore).
		Int("apyPerformance", categories.APYPerformance).
		Int("stakeSize", categories.StakeSize).
		Int("timeCommitment", categories.TimeCommitment).
		Int("strategyEfficiency", categories.StrategyEfficiency).
		Int("consistency", categories.Consistency).
		Int("riskManagement", categories.RiskManagement).
		Int("capitalEfficiency", categories.CapitalEfficiency).
		Int("temporalDiversification", categories.TemporalDiversification).
		Msg("Portfolio score calculated")

	return result
}

// scoreAPYPerformance buckets the ratio of effective to base APY. Max 15.
func scoreAPYPerformance(effectiveAPY, baseAPY, totalStaked float64) int {
	if totalStaked <= 0 || baseAPY <= 0 {
		return 0
	}
	ratio := effectiveAPY / baseAPY
	switch {
	case ratio >= 1.08:
		return types.MaxAPYScore
	case ratio >= 1.05:
		return 12
	case ratio >= 1.02:
		return 9
	case ratio >= 1.0:
		return 6
	default:
		return 3
	}
}

// scoreStakeSize buckets the absolute staked amount. Max 15.
func scoreStakeSize(totalStaked float64) int {
	switch {
	case totalStaked >= 10000:
		return types.MaxStakeSizeScore
	case totalStaked >= 5000:
		return 12
	case totalStaked >= 1000:
		return 9
	case totalStaked >= 500:
		return 6
	case totalStaked > 0:
		return 3
	default:
		return 0
	}
}

// scoreTimeCommitment buckets the staking duration in days. Max 15.
func scoreTimeCommitment(stakingDays int) int {
	switch {
	case stakingDays >= 365:
		return types.MaxTimeCommitmentScore
	case stakingDays >= 180:
		return 12
	case stakingDays >= 90:
		return 9
	case stakingDays >= 30:
		return 6
	case stakingDays > 0:
		return 3
	default:
		return 0
	}
}

// scoreStrategyEfficiency buckets deposit-slot utilization; lower
// utilization is better. Max 10.
func scoreStrategyEfficiency(depositCount int, maxDepositsPerUser uint32) int {
	if depositCount <= 0 || maxDepositsPerUser == 0 {
		return 0
	}
	utilization := float64(depositCount) / float64(maxDepositsPerUser)
	switch {
	case utilization <= 0.3:
		return types.MaxEfficiencyScore
	case utilization <= 0.6:
		return 8
	case utilization <= 0.8:
		return 5
	default:
		return 2
	}
}

// scoreConsistency scales the 0-100 consistency index into its 15-point
// category.
func scoreConsistency(index types.ConsistencyIndex) int {
	return int(math.Round(index.Score * types.MaxConsistencyScore / 100))
}

// scoreRiskManagement buckets the hold ratio. Max 10.
func scoreRiskManagement(totalStaked, holdRatio float64) int {
	if totalStaked <= 0 {
		return 0
	}
	switch {
	case holdRatio >= 0.95:
		return types.MaxRiskManagementScore
	case holdRatio >= 0.8:
		return 7
	case holdRatio >= 0.6:
		return 4
	default:
		return 2
	}
}

// scoreCapitalEfficiency buckets the capital-efficiency rating. Max 10.
func scoreCapitalEfficiency(profile types.UserStakingProfile, stakingDays int, efficiency types.CapitalEfficiency) int {
	if profile.TotalStaked <= 0 || stakingDays <= 0 {
		return 0
	}
	switch efficiency.Rating {
	case "excellent":
		return types.MaxCapitalEfficiencyScore
	case "good":
		return 8
	case "fair":
		return 5
	default:
		return 2
	}
}

// scoreTemporalDiversification scales the 0-100 diversification index into
// its 10-point category.
func scoreTemporalDiversification(diversification types.TemporalDiversification) int {
	return int(math.Round(diversification.Index * types.MaxDiversificationScore / 100))
}

// CalculateConsistencyIndex summarizes the regularity of the deposit
// cadence from inter-deposit interval statistics. Fewer than two deposits
// means no intervals exist, which is reported as insufficient data with a
// zero score.
func CalculateConsistencyIndex(deposits []types.Deposit) types.ConsistencyIndex {
	intervals := DepositIntervalsDays(deposits)
	if len(intervals) == 0 {
		return types.ConsistencyIndex{Frequency: "insufficient_data"}
	}

	mean, stdDev := MeanStdDev(intervals)
	cv := 0.0
	if mean > 0 {
		cv = stdDev / mean
	}

	frequency := "irregular"
	switch {
	case mean <= 7:
		frequency = "weekly"
	case mean <= 30:
		frequency = "monthly"
	case mean <= 90:
		frequency = "quarterly"
	}

	return types.ConsistencyIndex{
		MeanIntervalDays:       mean,
		StdDevDays:             stdDev,
		CoefficientOfVariation: cv,
		Score:                  math.Max(0, 100-cv*50),
		Frequency:              frequency,
	}
}

// ConsistencyRating maps a consistency score to its coarse label.
func ConsistencyRating(score float64) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "poor"
	}
}

// CalculateCapitalEfficiency measures realized daily reward generation per
// unit of stake, annualized for the rating buckets.
func CalculateCapitalEfficiency(profile types.UserStakingProfile, stakingDays int) types.CapitalEfficiency {
	if profile.TotalStaked <= 0 || stakingDays <= 0 {
		return types.CapitalEfficiency{Rating: "poor"}
	}

	dailyROI := (profile.TotalRewards() / profile.TotalStaked) / float64(stakingDays)
	annualized := dailyROI * 365 * 100

	rating := "poor"
	switch {
	case annualized >= 8:
		rating = "excellent"
	case annualized >= 6:
		rating = "good"
	case annualized >= 4:
		rating = "fair"
	}

	return types.CapitalEfficiency{
		DailyROI:      dailyROI,
		AnnualizedROI: annualized,
		Rating:        rating,
	}
}

// CalculateTemporalDiversification buckets deposits into weekly cohorts by
// amount and inverts the Herfindahl index over cohort totals. A single
// burst of deposits concentrates into one cohort and scores low.
func CalculateTemporalDiversification(deposits []types.Deposit) types.TemporalDiversification {
	if len(deposits) == 0 {
		return types.TemporalDiversification{HHI: 1}
	}

	const secondsPerWeek = 7 * 86400
	cohorts := make(map[int64]float64)
	for _, d := range deposits {
		if d.Amount > 0 {
			cohorts[d.Timestamp/secondsPerWeek] += d.Amount
		}
	}

	totals := make([]float64, 0, len(cohorts))
	for _, total := range cohorts {
		totals = append(totals, total)
	}

	hhi, ok := HerfindahlIndex(totals)
	if !ok {
		return types.TemporalDiversification{HHI: 1}
	}

	return types.TemporalDiversification{
		HHI:           hhi,
		Index:         (1 - hhi) * 100,
		WeeklyCohorts: len(cohorts),
	}
}
