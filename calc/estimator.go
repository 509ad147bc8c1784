package calc

import "math"

// ResourceEstimate is the point-in-time output of Estimate.
type ResourceEstimate struct {
	MemoryBytes float64 // total memory including per-key overhead and base footprint
	LatencyMs   float64 // expected command latency
	CPUCores    int     // recommended core count, always >= 1
}

// Estimator evaluates the closed-form resource formulas under a Config.
type Estimator struct {
	cfg Config
}

// NewEstimator returns an Estimator using the given formula constants.
func NewEstimator(cfg Config) *Estimator {
	return &Estimator{cfg: cfg}
}

// Memory returns the total memory requirement in bytes: data, per-key
// overhead, and the fixed base footprint. Linear and monotone in both
// arguments; Memory(0, 0) equals the base footprint.
func (e *Estimator) Memory(avgObjectSizeBytes, numKeys float64) float64 {
	dataSize := avgObjectSizeBytes * numKeys
	overhead := e.cfg.PerKeyOverheadBytes * numKeys
	return dataSize + overhead + e.cfg.BaseMemoryBytes
}

// Latency estimates command latency in milliseconds. Each contribution is a
// weighted log2 of its input over a knee, floored at 1 so small inputs add
// nothing; latency is therefore never below BaseLatencyMs. A tps of 0 means
// load is not modeled and contributes nothing.
func (e *Estimator) Latency(avgObjectSizeBytes, numKeys, tps float64) float64 {
	sizeFactor := math.Log2(math.Max(1, avgObjectSizeBytes/e.cfg.SizeKneeBytes))
	loadFactor := 0.0
	if tps > 0 {
		loadFactor = math.Log2(math.Max(1, tps/e.cfg.LoadKneeTPS))
	}
	keysFactor := math.Log2(math.Max(1, numKeys/e.cfg.KeysKnee))

	return e.cfg.BaseLatencyMs +
		e.cfg.SizeLatencyWeight*sizeFactor +
		e.cfg.LoadLatencyWeight*loadFactor +
		e.cfg.KeysLatencyWeight*keysFactor
}

// CPUCores recommends a core count: whichever of key capacity or transaction
// throughput demands more cores, and never fewer than one.
func (e *Estimator) CPUCores(numKeys, tps float64) int {
	coresByKeys := int(math.Ceil(numKeys / e.cfg.KeysPerCore))
	coresByTPS := 0
	if tps > 0 {
		coresByTPS = int(math.Ceil(tps / e.cfg.TPSPerCore))
	}
	return max(1, max(coresByKeys, coresByTPS))
}

// Estimate validates the parameters and evaluates all three formulas.
func (e *Estimator) Estimate(p WorkloadParameters) (ResourceEstimate, error) {
	if err := p.Validate(); err != nil {
		return ResourceEstimate{}, err
	}
	keys := float64(p.NumKeys)
	return ResourceEstimate{
		MemoryBytes: e.Memory(p.AvgObjectSizeBytes, keys),
		LatencyMs:   e.Latency(p.AvgObjectSizeBytes, keys, p.TPS),
		CPUCores:    e.CPUCores(keys, p.TPS),
	}, nil
}
