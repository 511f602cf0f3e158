package simulator

import (
	"math"
	"sort"
)

// DistributionStats is a statistical summary of one observed metric
// across a batch of games.
type DistributionStats struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Count  int     `json:"count"`
}

// StatsFromValues summarizes values. An empty input yields zero stats;
// a single value has zero standard deviation.
func StatsFromValues(values []float64) DistributionStats {
	if len(values) == 0 {
		return DistributionStats{}
	}

	sum := 0.0
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		sum += v
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	mean := sum / float64(len(values))

	std := 0.0
	if len(values) > 1 {
		ss := 0.0
		for _, v := range values {
			d := v - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(len(values)-1))
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return DistributionStats{
		Mean:   mean,
		Std:    std,
		Min:    minVal,
		Max:    maxVal,
		Median: median,
		Count:  len(values),
	}
}
