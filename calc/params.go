package calc

import "errors"

// Parameter validation errors
var (
	ErrNonPositiveObjectSize = errors.New("avg object size must be positive")
	ErrNegativeKeys          = errors.New("key count cannot be negative")
	ErrNegativeTPS           = errors.New("tps cannot be negative")
	ErrNegativeTTL           = errors.New("ttl cannot be negative")
	ErrUnknownPolicy         = errors.New("unknown eviction policy")
)

// WorkloadParameters describes one deployment's expected workload. Values
// are constructed fresh per request by the caller; nothing here is retained
// between calls.
type WorkloadParameters struct {
	AvgObjectSizeBytes float64        // average stored object size, bytes
	NumKeys            int64          // total keys in the keyspace
	TPS                float64        // expected transactions/s, 0 = not modeled
	TTLSeconds         int64          // key TTL, 0 = no expiration
	Policy             EvictionPolicy // configured maxmemory-policy
}

// Validate checks the parameters against their documented domains. The
// estimator and simulator assume validated inputs and do not re-check.
func (p WorkloadParameters) Validate() error {
	if p.AvgObjectSizeBytes <= 0 {
		return ErrNonPositiveObjectSize
	}
	if p.NumKeys < 0 {
		return ErrNegativeKeys
	}
	if p.TPS < 0 {
		return ErrNegativeTPS
	}
	if p.TTLSeconds < 0 {
		return ErrNegativeTTL
	}
	if _, ok := policyScopes[p.Policy]; !ok {
		return ErrUnknownPolicy
	}
	return nil
}
