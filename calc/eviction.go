package calc

import "fmt"

// EvictionPolicy is the configured maxmemory-policy of the target deployment.
// It is a closed set: unknown policy strings are rejected at parse time
// rather than falling through a prefix match.
type EvictionPolicy string

const (
	EvictNone           EvictionPolicy = "noeviction"
	EvictAllKeysLRU     EvictionPolicy = "allkeys-lru"
	EvictAllKeysLFU     EvictionPolicy = "allkeys-lfu"
	EvictAllKeysRandom  EvictionPolicy = "allkeys-random"
	EvictVolatileLRU    EvictionPolicy = "volatile-lru"
	EvictVolatileLFU    EvictionPolicy = "volatile-lfu"
	EvictVolatileRandom EvictionPolicy = "volatile-random"
	EvictVolatileTTL    EvictionPolicy = "volatile-ttl"
)

// policyScope distinguishes the two eviction aggressiveness buckets.
type policyScope int

const (
	scopeNone policyScope = iota
	scopeAllKeys
	scopeVolatile
)

var policyScopes = map[EvictionPolicy]policyScope{
	EvictNone:           scopeNone,
	EvictAllKeysLRU:     scopeAllKeys,
	EvictAllKeysLFU:     scopeAllKeys,
	EvictAllKeysRandom:  scopeAllKeys,
	EvictVolatileLRU:    scopeVolatile,
	EvictVolatileLFU:    scopeVolatile,
	EvictVolatileRandom: scopeVolatile,
	EvictVolatileTTL:    scopeVolatile,
}

// ParseEvictionPolicy maps a Redis maxmemory-policy string to its
// EvictionPolicy. An unrecognized name is an error.
func ParseEvictionPolicy(s string) (EvictionPolicy, error) {
	p := EvictionPolicy(s)
	if _, ok := policyScopes[p]; !ok {
		return "", fmt.Errorf("unknown eviction policy %q", s)
	}
	return p, nil
}

// Evicts reports whether the policy removes keys under memory pressure.
func (p EvictionPolicy) Evicts() bool {
	return policyScopes[p] != scopeNone
}

// VolatileScoped reports whether the policy only considers keys with a TTL.
// Such policies are ineffective when no TTL is configured.
func (p EvictionPolicy) VolatileScoped() bool {
	return policyScopes[p] == scopeVolatile
}

// Retention returns the fraction of the keyspace surviving one eviction pass
// under cfg. Allkeys-* policies evict from the whole keyspace and are more
// aggressive than volatile-* policies, which can only touch keys with a TTL.
// A non-evicting policy retains everything.
func (p EvictionPolicy) Retention(cfg Config) float64 {
	switch policyScopes[p] {
	case scopeAllKeys:
		return cfg.AllKeysRetention
	case scopeVolatile:
		return cfg.VolatileRetention
	default:
		return 1
	}
}
