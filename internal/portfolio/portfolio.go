/*

This file contains the top-level portfolio analyzer: the orchestrator that
runs the APY, scoring, risk, prediction, and recommendation engines over a
user profile and assembles the single AnalysisResult consumed by the API
layer and the snapshot store.

Analysis is a pure function of the profile and the constants. Every
timestamp in the pipeline is anchored to the profile's NowTimestamp, and the
trace ID generated per run is used only for log correlation, never in the
result.

*/

package portfolio

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/LennyDevX/nuvo-f-sub002/internal/analyzer"
	"github.com/LennyDevX/nuvo-f-sub002/internal/logger"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

var ErrInvalidProfile = errors.New("profile totals are inconsistent with its deposits")

// Config carries everything an Analyzer needs.
type Config struct {
	Constants types.StakingConstants
}

// Analyzer runs the full analysis pipeline. It is stateless and safe for
// concurrent use.
type Analyzer struct {
	constants types.StakingConstants
	logger    zerolog.Logger
}

// NewAnalyzer validates the constants once so the per-call path can assume
// they are structurally sound.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if err := cfg.Constants.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		constants: cfg.Constants,
		logger:    logger.GetForComponent("portfolio_analyzer"),
	}, nil
}

// Constants returns the protocol parameters the analyzer was built with.
func (a *Analyzer) Constants() types.StakingConstants {
	return a.constants
}

// Analyze runs the full pipeline for one profile.
// Inputs:
//   - profile: The user's deposit ledger snapshot, with NowTimestamp set to
//     the observation time.
//
// Output:
//   - The complete AnalysisResult.
//   - An error if the profile is internally inconsistent or a calculation
//     produced an invalid value.
func (a *Analyzer) Analyze(profile types.UserStakingProfile) (types.AnalysisResult, error) {
	traceID := uuid.New().String()
	log := a.logger.With().Str("traceID", traceID).Str("address", profile.Address).Logger()

	if err := validateProfile(profile); err != nil {
		log.Error().Err(err).Msg("Profile validation failed")
		return types.AnalysisResult{}, err
	}

	log.Debug().
		Int("deposits", len(profile.Deposits)).
		Float64("totalStaked", profile.TotalStaked).
		Msg("Starting portfolio analysis")

	apyReport, err := analyzer.AnalyzeUserAPY(profile, a.constants)
	if err != nil {
		log.Error().Err(err).Msg("APY analysis failed")
		return types.AnalysisResult{}, err
	}

	expanded := analyzer.CalculatePortfolioScore(profile, apyReport, a.constants)
	riskReport := analyzer.CalculateRiskProfile(profile)
	predictions := analyzer.CalculatePredictions(profile, apyReport, expanded.Breakdown.Consistency, a.constants)
	recommendations := analyzer.GenerateRecommendations(profile, expanded, apyReport, riskReport, predictions, a.constants)

	result := types.AnalysisResult{
		Score:              expanded.TotalScore,
		ExpandedScore:      expanded,
		APYReport:          apyReport,
		RiskReport:         riskReport,
		Predictions:        predictions,
		Recommendations:    recommendations,
		PerformanceSummary: performanceSummary(expanded.TotalScore),
		Metrics:            displayMetrics(profile, apyReport, riskReport, expanded),
		Timestamp:          profile.NowTimestamp,
	}

	log.Info().
		Int("score", result.Score).
		Float64("effectiveAPY", apyReport.EffectiveAPY).
		Float64("riskScore", riskReport.OverallScore).
		Int("recommendations", len(recommendations)).
		Msg("Portfolio analysis completed")

	return result, nil
}

// AnalyzeAll analyzes a batch of profiles. A failing profile is logged and
// skipped; the remaining profiles still produce results.
func (a *Analyzer) AnalyzeAll(profiles []types.UserStakingProfile) map[string]types.AnalysisResult {
	results := make(map[string]types.AnalysisResult, len(profiles))
	for _, profile := range profiles {
		result, err := a.Analyze(profile)
		if err != nil {
			a.logger.Warn().
				Err(err).
				Str("address", profile.Address).
				Msg("Skipping profile in batch analysis")
			continue
		}
		results[profile.Address] = result
	}
	return results
}

// validateProfile rejects profiles whose aggregate fields contradict the
// deposit ledger. Aggregates are trusted elsewhere in the pipeline, so the
// check happens exactly once here.
func validateProfile(profile types.UserStakingProfile) error {
	if profile.TotalStaked < 0 || profile.TotalWithdrawn < 0 || profile.RewardsClaimed < 0 || profile.PendingRewards < 0 {
		return ErrInvalidProfile
	}
	for _, d := range profile.Deposits {
		if d.Amount < 0 {
			return ErrInvalidProfile
		}
	}
	return nil
}

// performanceSummary maps the total score to its display tier.
func performanceSummary(score int) string {
	switch {
	case score >= 80:
		return "Excellent: your portfolio is in the top performance tier"
	case score >= 60:
		return "Good: solid fundamentals with clear room to optimize"
	case score >= 40:
		return "Fair: several categories are leaving yield on the table"
	case score > 0:
		return "Needs improvement: focus on the critical recommendations first"
	default:
		return "Inactive: no staking activity recorded"
	}
}

// displayMetrics flattens the headline numbers into formatted strings for
// UI consumption. Formatting lives here so every surface renders the same
// figures.
func displayMetrics(profile types.UserStakingProfile, apyReport types.APYReport, riskReport types.RiskReport, expanded types.ExpandedScore) map[string]string {
	return map[string]string{
		"total_staked":    fmt.Sprintf("%.2f", profile.TotalStaked),
		"total_rewards":   fmt.Sprintf("%.2f", profile.TotalRewards()),
		"effective_apy":   fmt.Sprintf("%.2f", apyReport.EffectiveAPY),
		"actual_apy":      fmt.Sprintf("%.2f", apyReport.ActualAPY),
		"hold_ratio":      fmt.Sprintf("%.2f", apyReport.HoldRatio),
		"roi":             fmt.Sprintf("%.2f", apyReport.ROI),
		"risk_score":      fmt.Sprintf("%.2f", riskReport.OverallScore),
		"portfolio_score": fmt.Sprintf("%d", expanded.TotalScore),
		"staking_days":    fmt.Sprintf("%d", apyReport.StakingDays),
		"deposit_count":   fmt.Sprintf("%d", len(profile.Deposits)),
		"consistency":     fmt.Sprintf("%.2f", expanded.Breakdown.Consistency.Score),
		"diversification": fmt.Sprintf("%.2f", expanded.Breakdown.TemporalDiversification.Index),
	}
}
