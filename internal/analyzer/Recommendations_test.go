package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LennyDevX/nuvo-f-sub002/internal/config"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// analysisInputs runs the upstream engines so recommendation tests exercise
// real reports instead of hand-built ones.
func analysisInputs(t *testing.T, profile types.UserStakingProfile) (types.ExpandedScore, types.APYReport, types.RiskReport, types.Prediction) {
	t.Helper()

	apyReport, err := AnalyzeUserAPY(profile, config.DefaultStakingConstants)
	require.NoError(t, err)

	expanded := CalculatePortfolioScore(profile, apyReport, config.DefaultStakingConstants)
	riskReport := CalculateRiskProfile(profile)
	prediction := CalculatePredictions(profile, apyReport, expanded.Breakdown.Consistency, config.DefaultStakingConstants)
	return expanded, apyReport, riskReport, prediction
}

func TestGenerateRecommendationsEmptyProfile(t *testing.T) {
	profile := types.UserStakingProfile{Address: "0xnew", NowTimestamp: 1700000000}
	expanded, apyReport, riskReport, prediction := analysisInputs(t, profile)

	recs := GenerateRecommendations(profile, expanded, apyReport, riskReport, prediction, config.DefaultStakingConstants)

	require.Len(t, recs, 1)
	require.Equal(t, "getting_started", recs[0].Type)
	require.Equal(t, types.PriorityHigh, recs[0].Priority)
}

func TestGenerateRecommendationsWeakPortfolio(t *testing.T) {
	now := int64(1700000000)
	profile := types.UserStakingProfile{
		Address:        "0xweak",
		Deposits:       []types.Deposit{{Amount: 50, Timestamp: now - 5*86400}},
		TotalStaked:    50,
		TotalWithdrawn: 200,
		NowTimestamp:   now,
	}
	expanded, apyReport, riskReport, prediction := analysisInputs(t, profile)
	require.Less(t, expanded.TotalScore, 30)

	recs := GenerateRecommendations(profile, expanded, apyReport, riskReport, prediction, config.DefaultStakingConstants)

	byType := make(map[string]types.Recommendation)
	for _, rec := range recs {
		byType[rec.Type] = rec
	}

	require.Contains(t, byType, "increase_stake")
	require.Equal(t, types.PriorityCritical, byType["increase_stake"].Priority)
	require.Contains(t, byType, "hold_longer")
	require.Contains(t, byType, "diversify_deposits") // single deposit concentrates fully
}

func TestGenerateRecommendationsSortedByPriority(t *testing.T) {
	now := int64(1700000000)
	profile := types.UserStakingProfile{
		Address:        "0xchurner",
		Deposits:       []types.Deposit{{Amount: 60, Timestamp: now - 10*86400}},
		TotalStaked:    60,
		TotalWithdrawn: 120,
		NowTimestamp:   now,
	}
	expanded, apyReport, riskReport, prediction := analysisInputs(t, profile)

	recs := GenerateRecommendations(profile, expanded, apyReport, riskReport, prediction, config.DefaultStakingConstants)
	require.NotEmpty(t, recs)

	for i := 1; i < len(recs); i++ {
		require.GreaterOrEqual(t, recs[i-1].Priority.Rank(), recs[i].Priority.Rank(),
			"recommendation %d (%s) outranks %d (%s)", i, recs[i].Type, i-1, recs[i-1].Type)
	}
}

func TestGenerateRecommendationsMilestone(t *testing.T) {
	now := int64(1700000000)
	profile := monthlyProfile(12, 1000, now)
	profile.RewardsClaimed = 1000
	expanded, apyReport, riskReport, prediction := analysisInputs(t, profile)
	require.GreaterOrEqual(t, expanded.TotalScore, 70)

	recs := GenerateRecommendations(profile, expanded, apyReport, riskReport, prediction, config.DefaultStakingConstants)

	var milestone *types.Recommendation
	for i := range recs {
		if recs[i].Type == "milestone" {
			milestone = &recs[i]
		}
	}
	require.NotNil(t, milestone)
	require.Equal(t, types.PriorityInfo, milestone.Priority)

	// A strong portfolio gets no critical advisories.
	for _, rec := range recs {
		require.NotEqual(t, types.PriorityCritical, rec.Priority)
	}
}
