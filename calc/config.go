package calc

// Config groups the formula constants behind every estimate. The zero value
// is not usable; start from DefaultConfig and override per deployment
// profile.
type Config struct {
	PerKeyOverheadBytes float64 // dictionary entry + expiry bookkeeping per key
	BaseMemoryBytes     float64 // fixed server footprint before any data

	KeysPerCore float64 // key-capacity a single core can serve
	TPSPerCore  float64 // transaction throughput a single core can serve

	BaseLatencyMs     float64 // floor latency for a trivial command
	SizeLatencyWeight float64 // weight of the object-size log term
	LoadLatencyWeight float64 // weight of the TPS log term
	KeysLatencyWeight float64 // weight of the keyspace log term
	SizeKneeBytes     float64 // object size below which size adds no latency
	LoadKneeTPS       float64 // TPS below which load adds no latency
	KeysKnee          float64 // key count below which keyspace adds no latency

	// Eviction starts once projected data size exceeds
	// EvictionThresholdFactor * BaseMemoryBytes.
	EvictionThresholdFactor float64
	AllKeysRetention        float64 // fraction of keys surviving an allkeys-* eviction pass
	VolatileRetention       float64 // fraction surviving a volatile-* eviction pass

	ShardMemoryBytes float64 // above this, recommend sharding
	HighTPS          float64 // above this, recommend clustering
}

// DefaultConfig returns the reference constants for a single standalone
// instance.
func DefaultConfig() Config {
	return Config{
		PerKeyOverheadBytes: 150,
		BaseMemoryBytes:     50 * 1024 * 1024,

		KeysPerCore: 1_000_000,
		TPSPerCore:  50_000,

		BaseLatencyMs:     0.2,
		SizeLatencyWeight: 0.1,
		LoadLatencyWeight: 0.2,
		KeysLatencyWeight: 0.1,
		SizeKneeBytes:     1024,
		LoadKneeTPS:       1000,
		KeysKnee:          100_000,

		EvictionThresholdFactor: 10,
		AllKeysRetention:        0.8,
		VolatileRetention:       0.9,

		ShardMemoryBytes: 10 * 1024 * 1024 * 1024,
		HighTPS:          50_000,
	}
}
