package analyzer

import (
	"math"
	"sort"

	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// DepositIntervalsDays returns the gaps, in days, between consecutive
// deposits sorted by timestamp. A ledger with fewer than two deposits has no
// intervals.
func DepositIntervalsDays(deposits []types.Deposit) []float64 {
	n := len(deposits)
	if n < 2 {
		return nil
	}

	timestamps := make([]int64, n)
	for i, d := range deposits {
		timestamps[i] = d.Timestamp
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	intervals := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		intervals = append(intervals, float64(timestamps[i]-timestamps[i-1])/86400.0)
	}
	return intervals
}

// MeanStdDev calculates the mean and population standard deviation of a
// series.
func MeanStdDev(values []float64) (float64, float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var sumSqDiff float64
	for _, v := range values {
		sumSqDiff += math.Pow(v-mean, 2)
	}
	variance := sumSqDiff / float64(n)

	return mean, math.Sqrt(variance)
}

// CoefficientOfVariation returns stddev/mean, or 0 for a non-positive mean.
func CoefficientOfVariation(values []float64) float64 {
	mean, stdDev := MeanStdDev(values)
	if mean <= 0 {
		return 0
	}
	return stdDev / mean
}

// HerfindahlIndex returns the sum of squared shares of the given amounts,
// ignoring non-positive entries. The result is in (0, 1] for any non-empty
// series with positive total, where 1 means fully concentrated.
func HerfindahlIndex(amounts []float64) (float64, bool) {
	var total float64
	for _, a := range amounts {
		if a > 0 {
			total += a
		}
	}
	if total <= 0 {
		return 0, false
	}

	var hhi float64
	for _, a := range amounts {
		if a > 0 {
			share := a / total
			hhi += share * share
		}
	}
	return hhi, true
}
