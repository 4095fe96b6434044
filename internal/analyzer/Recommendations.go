/*

This file contains the recommendation generator: a fixed rule table
evaluated against the analysis outputs, producing prioritized advisory
messages. Rules are deterministic; the same inputs always yield the same
messages in the same order.

*/

package analyzer

import (
	"fmt"
	"sort"

	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

var recommendationLogger = logger.GetForComponent("recommendation_generator")

// GenerateRecommendations evaluates the rule table against the analysis
// outputs and returns the advisories sorted by priority, highest first.
// Sorting is stable so rules firing at equal priority keep table order.
func GenerateRecommendations(profile types.UserStakingProfile, expanded types.ExpandedScore, apyReport types.APYReport, riskReport types.RiskReport, prediction types.Prediction, constants types.StakingConstants) []types.Recommendation {
	if len(profile.Deposits) == 0 {
		return []types.Recommendation{{
			Type:     "getting_started",
			Priority: types.PriorityHigh,
			Message:  "No staking activity yet. Make your first deposit to start earning rewards and building your portfolio score",
			Category: "onboarding",
			Impact:   "Unlocks all yield and scoring mechanics",
		}}
	}

	recs := make([]types.Recommendation, 0, 8)
	recs = append(recs, criticalRecommendations(profile, expanded, constants)...)
	recs = append(recs, riskRecommendations(riskReport)...)
	recs = append(recs, behaviorRecommendations(expanded)...)
	recs = append(recs, predictionRecommendations(prediction)...)
	recs = append(recs, milestoneRecommendations(expanded)...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() > recs[j].Priority.Rank()
	})

	recommendationLogger.Debug().
		Str("address", profile.Address).
		Int("count", len(recs)).
		Msg("Recommendations generated")

	return recs
}

// criticalRecommendations fires only for weak portfolios, pointing at the
// largest structural deficits first.
func criticalRecommendations(profile types.UserStakingProfile, expanded types.ExpandedScore, constants types.StakingConstants) []types.Recommendation {
	if expanded.TotalScore >= 30 {
		return nil
	}

	recs := make([]types.Recommendation, 0, 3)

	if profile.TotalStaked < volumeTier1Threshold {
		recs = append(recs, types.Recommendation{
			Type:     "increase_stake",
			Priority: types.PriorityCritical,
			Message:  fmt.Sprintf("Your stake of %.0f is below the first volume bonus tier at %d; increasing it lifts both yield and score", profile.TotalStaked, volumeTier1Threshold),
			Category: "capital",
			Impact:   "Unlocks the volume bonus and the mid stake-size bracket",
		})
	}

	if profile.StakingDays() < 30 {
		recs = append(recs, types.Recommendation{
			Type:     "hold_longer",
			Priority: types.PriorityCritical,
			Message:  "Your position is under 30 days old; time commitment is the cheapest score category to improve, it only requires holding",
			Category: "time",
			Impact:   "Each duration bracket adds up to 15 score points",
		})
	}

	if constants.MaxDepositsPerUser > 0 {
		utilization := float64(len(profile.Deposits)) / float64(constants.MaxDepositsPerUser)
		if utilization > 0.8 {
			recs = append(recs, types.Recommendation{
				Type:     "consolidate_deposits",
				Priority: types.PriorityCritical,
				Message:  fmt.Sprintf("You are using %d of %d deposit slots; consolidating removes the efficiency penalty on your APY", len(profile.Deposits), constants.MaxDepositsPerUser),
				Category: "efficiency",
				Impact:   "Restores the efficiency multiplier to 1.0",
			})
		}
	}

	return recs
}

// riskRecommendations translates high risk sub-scores into targeted advice.
func riskRecommendations(riskReport types.RiskReport) []types.Recommendation {
	recs := make([]types.Recommendation, 0, 4)

	if riskReport.Concentration.Level == types.RiskHigh {
		recs = append(recs, types.Recommendation{
			Type:     "diversify_deposits",
			Priority: types.PriorityHigh,
			Message:  "Your stake is concentrated in very few deposits; spreading new capital across multiple deposits over time lowers concentration risk",
			Category: "risk",
			Impact:   "Concentration carries 40% of the overall risk score",
		})
	}

	if riskReport.Liquidity.Level == types.RiskHigh {
		recs = append(recs, types.Recommendation{
			Type:     "reduce_withdrawals",
			Priority: types.PriorityHigh,
			Message:  "Over half of your lifetime value has been withdrawn; slowing withdrawals lowers liquidity risk and removes the APY withdrawal penalty",
			Category: "risk",
			Impact:   "Liquidity carries 40% of the overall risk score",
		})
	}

	if riskReport.Timing.Level == types.RiskHigh {
		recs = append(recs, types.Recommendation{
			Type:     "regularize_timing",
			Priority: types.PriorityHigh,
			Message:  "Your deposit intervals are highly irregular; a fixed deposit cycle lowers timing risk",
			Category: "risk",
			Impact:   "Timing carries 20% of the overall risk score",
		})
	}

	if riskReport.OverallScore >= 60 && len(recs) == 0 {
		recs = append(recs, types.Recommendation{
			Type:     "review_risk",
			Priority: types.PriorityHigh,
			Message:  "Your overall risk score is elevated across several factors; review the risk breakdown for the largest contributor",
			Category: "risk",
			Impact:   "Lowering overall risk below 60 changes the portfolio risk level",
		})
	}

	return recs
}

// behaviorRecommendations covers the behavioral score categories.
func behaviorRecommendations(expanded types.ExpandedScore) []types.Recommendation {
	recs := make([]types.Recommendation, 0, 2)

	if expanded.Breakdown.Consistency.Score < 40 && expanded.Breakdown.Consistency.Frequency != "insufficient_data" {
		recs = append(recs, types.Recommendation{
			Type:     "improve_consistency",
			Priority: types.PriorityMedium,
			Message:  "Your deposit cadence varies widely; depositing on a fixed schedule raises the consistency category",
			Category: "behavior",
			Impact:   "Consistency is worth up to 15 score points",
		})
	}

	switch expanded.Breakdown.CapitalEfficiency.Rating {
	case "poor", "fair":
		recs = append(recs, types.Recommendation{
			Type:     "improve_capital_efficiency",
			Priority: types.PriorityMedium,
			Message:  "Your realized reward rate per unit staked is below target; longer holds and the time bonus tiers raise it",
			Category: "behavior",
			Impact:   "Capital efficiency is worth up to 10 score points",
		})
	}

	return recs
}

// predictionRecommendations surfaces the forward-looking outputs as low
// priority advisories.
func predictionRecommendations(prediction types.Prediction) []types.Recommendation {
	recs := make([]types.Recommendation, 0, 2)

	if prediction.OptimalStakingAmount.Recommended > 0 {
		recs = append(recs, types.Recommendation{
			Type:     "optimal_stake",
			Priority: types.PriorityLow,
			Message:  fmt.Sprintf("A next deposit of about %.0f is optimal: %s", prediction.OptimalStakingAmount.Recommended, prediction.OptimalStakingAmount.Reasoning),
			Category: "planning",
			Impact:   "Keeps deposits aligned with volume bonus breakpoints",
		})
	}

	if prediction.BestTiming.Pattern != "insufficient_data" {
		recs = append(recs, types.Recommendation{
			Type:     "optimal_timing",
			Priority: types.PriorityInfo,
			Message:  prediction.BestTiming.Recommendation,
			Category: "planning",
			Impact:   "Supports the consistency and timing scores",
		})
	}

	return recs
}

// milestoneRecommendations acknowledges strong portfolios so the advisory
// list is never silent for good behavior.
func milestoneRecommendations(expanded types.ExpandedScore) []types.Recommendation {
	switch {
	case expanded.TotalScore >= 80:
		return []types.Recommendation{{
			Type:     "milestone",
			Priority: types.PriorityInfo,
			Message:  fmt.Sprintf("Excellent portfolio at %d/100; maintain your current strategy", expanded.TotalScore),
			Category: "milestone",
			Impact:   "None, keep going",
		}}
	case expanded.TotalScore >= 70:
		return []types.Recommendation{{
			Type:     "milestone",
			Priority: types.PriorityInfo,
			Message:  fmt.Sprintf("Strong portfolio at %d/100; the category breakdown shows the remaining headroom", expanded.TotalScore),
			Category: "milestone",
			Impact:   "None, keep going",
		}}
	default:
		return nil
	}
}
