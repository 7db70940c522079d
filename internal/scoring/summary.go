package scoring

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the results of a finished session. It is computed on
// demand from the caller's results; no session state lives in this package.
type Summary struct {
	Problems       int     `json:"problems"`
	ExactCount     int     `json:"exact_count"`
	CloseCount     int     `json:"close_count"`
	FarCount       int     `json:"far_count"`
	TotalPoints    int     `json:"total_points"`
	MaxPoints      int     `json:"max_points"`
	MeanDistance   float64 `json:"mean_distance"`
	MedianDistance float64 `json:"median_distance"`
}

// Summarize reduces a slice of results into session statistics.
func Summarize(results []Result) Summary {
	s := Summary{
		Problems:  len(results),
		MaxPoints: len(results) * TierExact.Points(),
	}
	if len(results) == 0 {
		return s
	}

	distances := make([]float64, len(results))
	for i, r := range results {
		distances[i] = r.OOMDistance
		s.TotalPoints += r.Points
		switch r.Tier {
		case TierExact:
			s.ExactCount++
		case TierClose:
			s.CloseCount++
		default:
			s.FarCount++
		}
	}

	sort.Float64s(distances)
	s.MeanDistance = stat.Mean(distances, nil)
	s.MedianDistance = stat.Quantile(0.5, stat.Empirical, distances, nil)
	return s
}
