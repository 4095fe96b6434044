/*

This file contains the result types produced by the analytics engine: APY
reports, risk reports, predictions, recommendations, and the top-level
AnalysisResult handed to the embedding service.

*/

package types

// MultiplierSet holds the four APY multipliers, each expressed as a
// multiplicative factor where 1.0 is neutral.
type MultiplierSet struct {
	TimeBonus            float64 `json:"time_bonus"`
	VolumeBonus          float64 `json:"volume_bonus"`
	EfficiencyMultiplier float64 `json:"efficiency_multiplier"`
	WithdrawalPenalty    float64 `json:"withdrawal_penalty"`
}

// Product returns the combined multiplier applied to the base APY.
func (m MultiplierSet) Product() float64 {
	return m.TimeBonus * m.VolumeBonus * m.EfficiencyMultiplier * m.WithdrawalPenalty
}

// BaseAPY describes the protocol's nominal yield derived from constants
// alone. It carries no user state and is freely cacheable.
type BaseAPY struct {
	SimpleAPY  float64 `json:"simple_apy"`  // Uncapped annualized rate, percent
	CappedAPY  float64 `json:"capped_apy"`  // Rate after the max-ROI cap, percent
	DailyRate  float64 `json:"daily_rate"`  // Fraction per day
	HourlyRate float64 `json:"hourly_rate"` // Fraction per hour
	MaxROI     float64 `json:"max_roi"`     // Cumulative reward cap multiplier
	DaysToMax  int     `json:"days_to_max"` // Days of simple accrual until the cap
}

// APYReport is the full per-user yield report.
// Invariant: EffectiveAPY = BaseAPY.CappedAPY * Multipliers.Product(), >= 0.
type APYReport struct {
	BaseAPY         float64       `json:"base_apy"`      // Percent
	EffectiveAPY    float64       `json:"effective_apy"` // Percent
	ActualAPY       float64       `json:"actual_apy"`    // Observed on-chain rate, percent
	ProjectedAPY    float64       `json:"projected_apy"` // Conservatively capped projection, percent
	Multipliers     MultiplierSet `json:"multipliers"`
	DailyRate       float64       `json:"daily_rate"`
	MonthlyRate     float64       `json:"monthly_rate"`
	HoldRatio       float64       `json:"hold_ratio"`
	StakingDays     int           `json:"staking_days"`
	ROI             float64       `json:"roi"` // Lifetime rewards over stake, percent
	Recommendations []string      `json:"recommendations"`
}

// CompoundProjection is the result of the day-by-day capped compounding
// simulation.
type CompoundProjection struct {
	FinalAmount   float64 `json:"final_amount"`
	TotalRewards  float64 `json:"total_rewards"`
	EffectiveRate float64 `json:"effective_rate"` // Cumulative return over principal, percent
	ReachedMax    bool    `json:"reached_max"`
	DaysToMax     int     `json:"days_to_max"` // Day the cap was hit, 0 if never
}

// RiskLevel is a coarse label for a risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskComponent is one risk sub-score on a 0-100 scale where higher means
// riskier.
type RiskComponent struct {
	Score float64   `json:"score"`
	Level RiskLevel `json:"level"`
}

// RiskReport combines the three independent risk sub-scores into an overall
// weighted score (0.4 concentration, 0.4 liquidity, 0.2 timing).
type RiskReport struct {
	Concentration RiskComponent `json:"concentration"`
	Liquidity     RiskComponent `json:"liquidity"`
	Timing        RiskComponent `json:"timing"`
	OverallScore  float64       `json:"overall_score"`
	Level         RiskLevel     `json:"level"`
}

// OptimalStake is the recommended next deposit size.
type OptimalStake struct {
	Recommended float64 `json:"recommended"`
	Reasoning   string  `json:"reasoning"`
	Confidence  string  `json:"confidence"`
}

// TimingPrediction suggests when the next deposit should land based on the
// user's observed cadence.
type TimingPrediction struct {
	Pattern              string `json:"pattern"`
	Recommendation       string `json:"recommendation"`
	NextOptimalTimestamp int64  `json:"next_optimal_timestamp"`
	Confidence           string `json:"confidence"`
}

// FutureReward is a simple-interest projection for one horizon. It is
// deliberately linear rather than compounded: this view shows a steady-state
// run-rate, not the capped growth curve.
type FutureReward struct {
	Rewards float64 `json:"rewards"`
	Total   float64 `json:"total"`
	APY     float64 `json:"apy"`
}

// Prediction bundles the forward-looking outputs.
type Prediction struct {
	OptimalStakingAmount OptimalStake         `json:"optimal_staking_amount"`
	BestTiming           TimingPrediction     `json:"best_timing"`
	FutureRewards        map[int]FutureReward `json:"future_rewards"` // Keyed by horizon in days
}

// RecommendationPriority orders advisory messages; higher rank sorts first.
type RecommendationPriority string

const (
	PriorityCritical RecommendationPriority = "critical"
	PriorityHigh     RecommendationPriority = "high"
	PriorityMedium   RecommendationPriority = "medium"
	PriorityLow      RecommendationPriority = "low"
	PriorityInfo     RecommendationPriority = "info"
)

// Rank returns a sortable weight for the priority, highest first.
func (p RecommendationPriority) Rank() int {
	switch p {
	case PriorityCritical:
		return 5
	case PriorityHigh:
		return 4
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 2
	case PriorityInfo:
		return 1
	default:
		return 0
	}
}

// Recommendation is a single rule-derived advisory message.
type Recommendation struct {
	Type     string                 `json:"type"`
	Priority RecommendationPriority `json:"priority"`
	Message  string                 `json:"message"`
	Category string                 `json:"category"`
	Impact   string                 `json:"impact"`
}

// AnalysisResult is the root output, produced fresh on every call and never
// mutated after construction. Identical inputs with an identical
// NowTimestamp yield an identical result.
type AnalysisResult struct {
	Score              int               `json:"score"`
	ExpandedScore      ExpandedScore     `json:"expanded_score"`
	APYReport          APYReport         `json:"apy_report"`
	RiskReport         RiskReport        `json:"risk_report"`
	Predictions        Prediction        `json:"predictions"`
	Recommendations    []Recommendation  `json:"recommendations"`
	PerformanceSummary string            `json:"performance_summary"`
	Metrics            map[string]string `json:"metrics"` // Flattened display values
	Timestamp          int64             `json:"timestamp"`
}
