package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEstimator_Memory_BaseFootprintOnly verifies that an empty keyspace
// costs exactly the base footprint.
func TestEstimator_Memory_BaseFootprintOnly(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	got := est.Memory(0, 0)

	assert.Equal(t, float64(50*1024*1024), got)
}

// TestEstimator_Memory_ReferenceScenario verifies the linear memory model
// against the reference workload: 1000 B objects, 100k keys.
func TestEstimator_Memory_ReferenceScenario(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	got := est.Memory(1000, 100_000)

	// data + per-key overhead + base
	want := float64(1000*100_000 + 150*100_000 + 50*1024*1024)
	assert.Equal(t, want, got)
}

// TestEstimator_Memory_LinearInBothArguments verifies additivity of the
// data term and the per-key overhead term.
func TestEstimator_Memory_LinearInBothArguments(t *testing.T) {
	cfg := DefaultConfig()
	est := NewEstimator(cfg)

	// GIVEN memory for two disjoint keyspaces of the same object size
	a := est.Memory(512, 1000)
	b := est.Memory(512, 2000)

	// THEN the increment is exactly (size+overhead) per key
	assert.InDelta(t, 1000*(512+cfg.PerKeyOverheadBytes), b-a, 1e-6)

	// AND memory never decreases in either argument
	assert.GreaterOrEqual(t, est.Memory(513, 1000), a)
	assert.GreaterOrEqual(t, est.Memory(512, 1001), a)
}

// TestEstimator_Latency_FlatRegion verifies that inputs below every knee
// produce exactly the base latency.
func TestEstimator_Latency_FlatRegion(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	// GIVEN an object under 1 KiB, under 100k keys, under 1000 TPS
	got := est.Latency(512, 1000, 500)

	assert.Equal(t, 0.2, got)
}

// TestEstimator_Latency_SizeTerm verifies the weighted log2 contribution of
// object size: 4 KiB is two doublings over the 1 KiB knee.
func TestEstimator_Latency_SizeTerm(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	got := est.Latency(4096, 1000, 0)

	// base + 0.1*log2(4) = 0.2 + 0.2
	assert.InDelta(t, 0.4, got, 1e-9)
}

// TestEstimator_Latency_AllTermsContribute verifies one doubling over each
// knee at once.
func TestEstimator_Latency_AllTermsContribute(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	got := est.Latency(2048, 200_000, 2000)

	// base + 0.1*1 + 0.2*1 + 0.1*1
	assert.InDelta(t, 0.6, got, 1e-9)
}

// TestEstimator_Latency_ZeroTPSNotModeled verifies tps=0 contributes nothing
// even though log2 of a small ratio would.
func TestEstimator_Latency_ZeroTPSNotModeled(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	assert.Equal(t, est.Latency(512, 1000, 0), est.Latency(512, 1000, 999))
}

// TestEstimator_Latency_NeverBelowBase verifies the max(1, ·) floors keep
// latency at or above the base for degenerate inputs.
func TestEstimator_Latency_NeverBelowBase(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	for _, tc := range []struct{ size, keys, tps float64 }{
		{0.001, 0, 0},
		{1, 1, 1},
		{1024, 100_000, 1000},
	} {
		assert.GreaterOrEqual(t, est.Latency(tc.size, tc.keys, tc.tps), 0.2)
	}
}

// TestEstimator_CPUCores verifies the core recommendation across the
// capacity boundaries.
func TestEstimator_CPUCores(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	tests := []struct {
		name string
		keys float64
		tps  float64
		want int
	}{
		{"empty keyspace still needs one core", 0, 0, 1},
		{"exactly one core of keys", 1_000_000, 0, 1},
		{"one key over a core", 1_000_001, 0, 2},
		{"tps demands the second core", 1, 100_000, 2},
		{"reference workload fits one core", 100_000, 1000, 1},
		{"keys dominate tps", 3_500_000, 60_000, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, est.CPUCores(tc.keys, tc.tps))
		})
	}
}

// TestEstimator_Estimate_ValidatesParameters verifies Estimate rejects
// out-of-domain inputs instead of silently clamping.
func TestEstimator_Estimate_ValidatesParameters(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	_, err := est.Estimate(WorkloadParameters{
		AvgObjectSizeBytes: 0,
		NumKeys:            100,
		Policy:             EvictNone,
	})

	require.ErrorIs(t, err, ErrNonPositiveObjectSize)
}

// TestEstimator_Estimate_ReferenceScenario verifies the combined estimate
// for the reference workload.
func TestEstimator_Estimate_ReferenceScenario(t *testing.T) {
	est := NewEstimator(DefaultConfig())

	got, err := est.Estimate(WorkloadParameters{
		AvgObjectSizeBytes: 1000,
		NumKeys:            100_000,
		TPS:                1000,
		Policy:             EvictNone,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(1000*100_000+150*100_000+50*1024*1024), got.MemoryBytes)
	assert.Equal(t, 1, got.CPUCores)
	assert.GreaterOrEqual(t, got.LatencyMs, 0.2)
}
