/*

This file contains the types for the 8-category portfolio score and the
behavioral indices that feed it.

*/

package types

// Category score maxima. The eight weights are fixed and sum to 100.
const (
	MaxAPYScore               = 15
	MaxStakeSizeScore         = 15
	MaxTimeCommitmentScore    = 15
	MaxEfficiencyScore        = 10
	MaxConsistencyScore       = 15
	MaxRiskManagementScore    = 10
	MaxCapitalEfficiencyScore = 10
	MaxDiversificationScore   = 10
)

// CategoryScores holds the eight independently bucketed sub-scores.
// Invariant: each field is within [0, its maximum] and the fields sum to
// ExpandedScore.TotalScore.
type CategoryScores struct {
	APYPerformance          int `json:"apy_performance"`          // max 15
	StakeSize               int `json:"stake_size"`               // max 15
	TimeCommitment          int `json:"time_commitment"`          // max 15
	StrategyEfficiency      int `json:"strategy_efficiency"`      // max 10
	Consistency             int `json:"consistency"`              // max 15
	RiskManagement          int `json:"risk_management"`          // max 10
	CapitalEfficiency       int `json:"capital_efficiency"`       // max 10
	TemporalDiversification int `json:"temporal_diversification"` // max 10
}

// Sum returns the total of all category scores.
func (c CategoryScores) Sum() int {
	return c.APYPerformance + c.StakeSize + c.TimeCommitment + c.StrategyEfficiency +
		c.Consistency + c.RiskManagement + c.CapitalEfficiency + c.TemporalDiversification
}

// ConsistencyIndex summarizes the regularity of the user's deposit cadence.
// Score is 0-100 where 100 means perfectly even intervals.
type ConsistencyIndex struct {
	MeanIntervalDays       float64 `json:"mean_interval_days"`
	StdDevDays             float64 `json:"std_dev_days"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	Score                  float64 `json:"score"`
	Frequency              string  `json:"frequency"` // weekly, monthly, quarterly, irregular, insufficient_data
}

// CapitalEfficiency measures realized reward generation per unit of staked
// capital per day, annualized for the rating buckets.
type CapitalEfficiency struct {
	DailyROI      float64 `json:"daily_roi"`      // Fraction per day
	AnnualizedROI float64 `json:"annualized_roi"` // Percent
	Rating        string  `json:"rating"`         // excellent, good, fair, poor
}

// TemporalDiversification measures how evenly stake is spread across weekly
// deposit cohorts. Index is 0-100 where 100 means perfectly spread.
type TemporalDiversification struct {
	HHI           float64 `json:"hhi"`
	Index         float64 `json:"index"`
	WeeklyCohorts int     `json:"weekly_cohorts"`
}

// ScoreBreakdown carries the behavioral indices behind the category scores.
type ScoreBreakdown struct {
	Consistency             ConsistencyIndex        `json:"consistency"`
	CapitalEfficiency       CapitalEfficiency       `json:"capital_efficiency"`
	TemporalDiversification TemporalDiversification `json:"temporal_diversification"`
}

// ExpandedScore is the full 0-100 portfolio score with its category split.
type ExpandedScore struct {
	TotalScore     int            `json:"total_score"`
	CategoryScores CategoryScores `json:"category_scores"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
}
