/*

This file contains the risk-metrics engine: three independent sub-scores on
a 0-100 scale (higher = riskier) combined into a weighted overall score.

*/

package analyzer

import (
	"math"

	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// Weights of the three sub-scores in the overall risk score.
const (
	concentrationRiskWeight = 0.4
	liquidityRiskWeight     = 0.4
	timingRiskWeight        = 0.2
)

var riskLogger = logger.GetForComponent("risk_profiler")

// riskLevel maps a 0-100 score to the shared coarse level labels.
func riskLevel(score float64) types.RiskLevel {
	switch {
	case score >= 70:
		return types.RiskHigh
	case score >= 40:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// ConcentrationRisk scores how concentrated the deposit ledger is, using a
// Herfindahl index over deposit amounts scaled to 0-100. An empty ledger is
// maximally risky: no diversification is possible.
func ConcentrationRisk(deposits []types.Deposit) types.RiskComponent {
	amounts := make([]float64, len(deposits))
	for i, d := range deposits {
		amounts[i] = d.Amount
	}

	hhi, ok := HerfindahlIndex(amounts)
	if !ok {
		return types.RiskComponent{Score: 100, Level: types.RiskHigh}
	}

	score := hhi * 100
	var level types.RiskLevel
	switch {
	case score >= 80:
		level = types.RiskHigh
	case score >= 50:
		level = types.RiskMedium
	default:
		level = types.RiskLow
	}

	return types.RiskComponent{Score: score, Level: level}
}

// LiquidityRisk scores the user's withdrawal pressure. A large unclaimed
// reward balance offsets apparent risk, since it is liquidity the user can
// tap without touching principal.
func LiquidityRisk(totalStaked, totalWithdrawn, pendingRewards float64) types.RiskComponent {
	score := 0.0
	level := types.RiskLow

	lifetime := totalStaked + totalWithdrawn
	if lifetime > 0 {
		withdrawnRatio := totalWithdrawn / lifetime
		switch {
		case withdrawnRatio >= 0.5:
			score, level = 80, types.RiskHigh
		case withdrawnRatio >= 0.3:
			score, level = 60, types.RiskMedium
		case withdrawnRatio >= 0.1:
			score, level = 30, types.RiskLow
		}
	}

	if totalStaked > 0 && pendingRewards/totalStaked > 0.1 {
		score = math.Max(0, score-10)
	}

	return types.RiskComponent{Score: score, Level: level}
}

// TimingRisk scores the irregularity of the deposit cadence via the
// coefficient of variation of inter-deposit intervals. Fewer than two
// deposits is insufficient data, which is scored as medium risk rather than
// zero risk.
func TimingRisk(deposits []types.Deposit) types.RiskComponent {
	intervals := DepositIntervalsDays(deposits)
	if len(intervals) == 0 {
		return types.RiskComponent{Score: 50, Level: types.RiskMedium}
	}

	cv := CoefficientOfVariation(intervals)
	score := math.Min(100, cv*50)

	return types.RiskComponent{Score: score, Level: riskLevel(score)}
}

// CalculateRiskProfile combines the three sub-scores into the overall risk
// report. The computation is total: any profile yields a report.
func CalculateRiskProfile(profile types.UserStakingProfile) types.RiskReport {
	concentration := ConcentrationRisk(profile.Deposits)
	liquidity := LiquidityRisk(profile.TotalStaked, profile.TotalWithdrawn, profile.PendingRewards)
	timing := TimingRisk(profile.Deposits)

	overall := math.Round(
		concentrationRiskWeight*concentration.Score +
			liquidityRiskWeight*liquidity.Score +
			timingRiskWeight*timing.Score)

	report := types.RiskReport{
		Concentration: concentration,
		Liquidity:     liquidity,
		Timing:        timing,
		OverallScore:  overall,
		Level:         riskLevel(overall),
	}

	riskLogger.Debug().
		Str("address", profile.Address).
		Float64("concentrationScore", concentration.Score).
		Float64("liquidityScore", liquidity.Score).
		Float64("timingScore", timing.Score).
		Float64("overallScore", overall).
		Str("level", string(report.Level)).
		Msg("Risk profile calculated")

	return report
}
