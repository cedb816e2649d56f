package domain

import (
	"math"
	"slices"
)

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// trendThreshold is the percentage change between halves that counts as a trend.
const trendThreshold = 10.0

type Metrics struct {
	TotalCases      int64   `json:"totalCases"`
	TotalRecoveries int64   `json:"totalRecoveries"`
	TotalDeaths     int64   `json:"totalDeaths"`
	TotalActive     int64   `json:"totalActive"`
	RecoveryRate    float64 `json:"recoveryRate"`
	MortalityRate   float64 `json:"mortalityRate"`
	Trend           Trend   `json:"trend"`
}

func ComputeMetrics(records []Record) Metrics {
	var m Metrics
	for _, r := range records {
		m.TotalCases += r.Cases
		m.TotalRecoveries += r.Recoveries
		m.TotalDeaths += r.Deaths
		m.TotalActive += r.Active
	}
	if m.TotalCases > 0 {
		m.RecoveryRate = percent(m.TotalRecoveries, m.TotalCases)
		m.MortalityRate = percent(m.TotalDeaths, m.TotalCases)
	}
	m.Trend = ComputeTrend(records)
	return m
}

// ComputeTrend compares mean cases of the earlier and later halves of the
// records ordered by date. The input is not reordered.
func ComputeTrend(records []Record) Trend {
	n := len(records)
	if n < 2 {
		return TrendStable
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int { return a.Date.Compare(b.Date) })

	half := n / 2
	first := meanCases(sorted[:half])
	second := meanCases(sorted[half:])

	divisor := first
	if first == 0 {
		divisor = 1
	}
	change := (second - first) / divisor * 100

	switch {
	case change > trendThreshold:
		return TrendIncreasing
	case change < -trendThreshold:
		return TrendDecreasing
	}
	return TrendStable
}

func meanCases(records []Record) float64 {
	var sum int64
	for _, r := range records {
		sum += r.Cases
	}
	return float64(sum) / float64(len(records))
}

func percent(part, whole int64) float64 {
	return round2(float64(part) / float64(whole) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
