package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesOf(values ...float64) MemoryTimeSeries {
	samples := make([]MemorySample, len(values))
	for i, v := range values {
		samples[i] = MemorySample{Hours: float64(i), MemoryBytes: v}
	}
	return MemoryTimeSeries{DurationHours: float64(len(values) - 1), Samples: samples}
}

// TestAnalyzeMemoryTrend_Growing verifies a rising series classifies as
// growing with a positive fitted slope.
func TestAnalyzeMemoryTrend_Growing(t *testing.T) {
	report, err := AnalyzeMemoryTrend(seriesOf(100, 150, 200, 250))
	require.NoError(t, err)

	assert.Equal(t, TrendGrowing, report.Trend)
	assert.InDelta(t, 150.0, report.PercentChange, 1e-9)
	assert.InDelta(t, 50.0, report.SlopeBytesPerHour, 1e-9)
}

// TestAnalyzeMemoryTrend_Shrinking verifies a falling series classifies as
// shrinking with a negative fitted slope.
func TestAnalyzeMemoryTrend_Shrinking(t *testing.T) {
	report, err := AnalyzeMemoryTrend(seriesOf(400, 300, 200, 100))
	require.NoError(t, err)

	assert.Equal(t, TrendShrinking, report.Trend)
	assert.InDelta(t, -75.0, report.PercentChange, 1e-9)
	assert.Negative(t, report.SlopeBytesPerHour)
}

// TestAnalyzeMemoryTrend_StableBand verifies changes under 1% in either
// direction classify as stable.
func TestAnalyzeMemoryTrend_StableBand(t *testing.T) {
	up, err := AnalyzeMemoryTrend(seriesOf(1000, 1009))
	require.NoError(t, err)
	assert.Equal(t, TrendStable, up.Trend)

	down, err := AnalyzeMemoryTrend(seriesOf(1000, 991))
	require.NoError(t, err)
	assert.Equal(t, TrendStable, down.Trend)

	over, err := AnalyzeMemoryTrend(seriesOf(1000, 1011))
	require.NoError(t, err)
	assert.Equal(t, TrendGrowing, over.Trend)
}

// TestAnalyzeMemoryTrend_ZeroBaseline verifies a zero first sample is a
// defined error, not a NaN.
func TestAnalyzeMemoryTrend_ZeroBaseline(t *testing.T) {
	_, err := AnalyzeMemoryTrend(seriesOf(0, 100, 200))

	require.ErrorIs(t, err, ErrZeroBaseline)
}

// TestAnalyzeMemoryTrend_EmptySeries verifies the empty series error.
func TestAnalyzeMemoryTrend_EmptySeries(t *testing.T) {
	_, err := AnalyzeMemoryTrend(MemoryTimeSeries{})

	require.ErrorIs(t, err, ErrEmptySeries)
}

// TestAnalyzeMemoryTrend_FlatSimulation verifies the end-to-end growth-free
// case: a simulated series with no traffic is stable with zero change.
func TestAnalyzeMemoryTrend_FlatSimulation(t *testing.T) {
	sim := NewSimulator(DefaultConfig())
	series, err := sim.Run(WorkloadParameters{
		AvgObjectSizeBytes: 1000,
		NumKeys:            100_000,
		Policy:             EvictNone,
	}, 24)
	require.NoError(t, err)

	report, err := AnalyzeMemoryTrend(series)
	require.NoError(t, err)

	assert.Equal(t, TrendStable, report.Trend)
	assert.Equal(t, 0.0, report.PercentChange)
	assert.InDelta(t, 0.0, report.SlopeBytesPerHour, 1e-6)
}

// TestAnalyzeMemoryTrend_GrowingSimulation verifies steady traffic yields a
// growing classification with a positive slope.
func TestAnalyzeMemoryTrend_GrowingSimulation(t *testing.T) {
	sim := NewSimulator(DefaultConfig())
	series, err := sim.Run(WorkloadParameters{
		AvgObjectSizeBytes: 1000,
		NumKeys:            100_000,
		TPS:                100,
		Policy:             EvictNone,
	}, 24)
	require.NoError(t, err)

	report, err := AnalyzeMemoryTrend(series)
	require.NoError(t, err)

	assert.Equal(t, TrendGrowing, report.Trend)
	assert.Positive(t, report.PercentChange)
	assert.Positive(t, report.SlopeBytesPerHour)
}
