package calc

import "math"

// SeriesSamples is the fixed number of points in a projected series.
const SeriesSamples = 100

// DefaultDurationHours is the projection horizon used when the caller does
// not pick one.
const DefaultDurationHours = 24

// MemorySample is one point of a memory projection.
type MemorySample struct {
	Hours       float64 // elapsed time since start
	MemoryBytes float64 // projected total memory at that time
}

// MemoryTimeSeries is a memory projection: exactly SeriesSamples equally
// spaced samples spanning [0, DurationHours], both endpoints included.
type MemoryTimeSeries struct {
	DurationHours float64
	Samples       []MemorySample
}

// First returns the first sample. Only valid on a simulator-produced series.
func (s MemoryTimeSeries) First() MemorySample { return s.Samples[0] }

// Last returns the last sample. Only valid on a simulator-produced series.
func (s MemoryTimeSeries) Last() MemorySample { return s.Samples[len(s.Samples)-1] }

// Simulator projects memory usage over time under traffic, TTL expiration,
// and eviction pressure.
type Simulator struct {
	cfg Config
	est *Estimator
}

// NewSimulator returns a Simulator using the given formula constants.
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{cfg: cfg, est: NewEstimator(cfg)}
}

// Run projects memory usage for the workload over durationHours. A
// durationHours of 0 or below falls back to DefaultDurationHours.
//
// The loop is a sequential fold: the key count carried out of each step
// feeds the next step's eviction trigger. At elapsed seconds t the step
// computes keys added since start (tps*t), keys expired since start
// (tps*(t-ttl) once t passes the TTL), and, when the carried keyspace's
// data size exceeds EvictionThresholdFactor times the base footprint under
// an evicting policy, one eviction pass removing (1-retention) of the
// carried keys. The resulting key count is clamped at 0 and priced with the
// estimator's memory formula.
func (s *Simulator) Run(p WorkloadParameters, durationHours float64) (MemoryTimeSeries, error) {
	if err := p.Validate(); err != nil {
		return MemoryTimeSeries{}, err
	}
	if durationHours <= 0 {
		durationHours = DefaultDurationHours
	}

	threshold := s.cfg.EvictionThresholdFactor * s.cfg.BaseMemoryBytes
	initialKeys := float64(p.NumKeys)
	currentKeys := initialKeys

	samples := make([]MemorySample, SeriesSamples)
	for i := range samples {
		t := durationHours * 3600 * float64(i) / float64(SeriesSamples-1)

		newKeys := p.TPS * t
		expiredKeys := 0.0
		if p.TTLSeconds > 0 {
			expiredKeys = p.TPS * math.Max(0, t-float64(p.TTLSeconds))
		}
		if p.Policy.Evicts() && currentKeys*p.AvgObjectSizeBytes > threshold {
			expiredKeys += currentKeys * (1 - p.Policy.Retention(s.cfg))
		}

		currentKeys = math.Max(0, initialKeys+newKeys-expiredKeys)
		samples[i] = MemorySample{
			Hours:       t / 3600,
			MemoryBytes: s.est.Memory(p.AvgObjectSizeBytes, currentKeys),
		}
	}

	return MemoryTimeSeries{DurationHours: durationHours, Samples: samples}, nil
}
