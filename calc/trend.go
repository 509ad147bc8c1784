package calc

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// Trend classifies the direction of a memory projection.
type Trend string

const (
	TrendStable    Trend = "stable"
	TrendGrowing   Trend = "growing"
	TrendShrinking Trend = "shrinking"
)

// stableBandPercent is the |percent change| below which a series counts as
// stable.
const stableBandPercent = 1

// Trend analysis errors
var (
	ErrEmptySeries  = errors.New("series has no samples")
	ErrZeroBaseline = errors.New("first sample has zero memory")
)

// TrendReport summarizes the direction of a memory projection.
type TrendReport struct {
	Trend             Trend
	PercentChange     float64 // first sample to last sample
	SlopeBytesPerHour float64 // least-squares fit over the whole series
}

// AnalyzeMemoryTrend classifies a series as stable, growing, or shrinking
// from the percent change between its first and last samples, and fits a
// least-squares growth slope over all samples. A series whose first sample
// has zero memory cannot be classified and yields ErrZeroBaseline.
func AnalyzeMemoryTrend(series MemoryTimeSeries) (TrendReport, error) {
	if len(series.Samples) == 0 {
		return TrendReport{}, ErrEmptySeries
	}
	first := series.First().MemoryBytes
	last := series.Last().MemoryBytes
	if first == 0 {
		return TrendReport{}, ErrZeroBaseline
	}

	report := TrendReport{
		PercentChange: (last - first) / first * 100,
	}
	switch {
	case report.PercentChange > -stableBandPercent && report.PercentChange < stableBandPercent:
		report.Trend = TrendStable
	case report.PercentChange > 0:
		report.Trend = TrendGrowing
	default:
		report.Trend = TrendShrinking
	}

	if len(series.Samples) > 1 {
		hours := make([]float64, len(series.Samples))
		mem := make([]float64, len(series.Samples))
		for i, sample := range series.Samples {
			hours[i] = sample.Hours
			mem[i] = sample.MemoryBytes
		}
		_, report.SlopeBytesPerHour = stat.LinearRegression(hours, mem, nil, false)
	}

	return report, nil
}
