package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sjakati98/RedisEstimator/calc"
)

// Profile overrides a subset of the formula constants in calc.Config.
// Zero-valued fields keep the default; a profile only lists what it changes.
type Profile struct {
	PerKeyOverheadBytes     float64 `yaml:"per_key_overhead_bytes"`
	BaseMemoryBytes         float64 `yaml:"base_memory_bytes"`
	KeysPerCore             float64 `yaml:"keys_per_core"`
	TPSPerCore              float64 `yaml:"tps_per_core"`
	BaseLatencyMs           float64 `yaml:"base_latency_ms"`
	EvictionThresholdFactor float64 `yaml:"eviction_threshold_factor"`
	AllKeysRetention        float64 `yaml:"allkeys_retention"`
	VolatileRetention       float64 `yaml:"volatile_retention"`
	ShardMemoryBytes        float64 `yaml:"shard_memory_bytes"`
	HighTPS                 float64 `yaml:"high_tps"`
}

// profilesFile is the top-level structure of profiles.yaml.
type profilesFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Apply layers the profile's non-zero overrides onto cfg.
func (p Profile) Apply(cfg calc.Config) calc.Config {
	overrides := []struct {
		value  float64
		target *float64
	}{
		{p.PerKeyOverheadBytes, &cfg.PerKeyOverheadBytes},
		{p.BaseMemoryBytes, &cfg.BaseMemoryBytes},
		{p.KeysPerCore, &cfg.KeysPerCore},
		{p.TPSPerCore, &cfg.TPSPerCore},
		{p.BaseLatencyMs, &cfg.BaseLatencyMs},
		{p.EvictionThresholdFactor, &cfg.EvictionThresholdFactor},
		{p.AllKeysRetention, &cfg.AllKeysRetention},
		{p.VolatileRetention, &cfg.VolatileRetention},
		{p.ShardMemoryBytes, &cfg.ShardMemoryBytes},
		{p.HighTPS, &cfg.HighTPS},
	}
	for _, o := range overrides {
		if o.value != 0 {
			*o.target = o.value
		}
	}
	return cfg
}

// LoadProfiles parses a profiles.yaml file with strict field checking so a
// misspelled constant name fails loudly instead of silently keeping the
// default.
func LoadProfiles(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}
	var file profilesFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}
	return file.Profiles, nil
}

// ResolveConfig returns the formula constants for the named profile, or the
// defaults when name is empty.
func ResolveConfig(path, name string) (calc.Config, error) {
	cfg := calc.DefaultConfig()
	if name == "" {
		return cfg, nil
	}
	profiles, err := LoadProfiles(path)
	if err != nil {
		return calc.Config{}, err
	}
	profile, ok := profiles[name]
	if !ok {
		return calc.Config{}, fmt.Errorf("profile %q not found in %s", name, path)
	}
	return profile.Apply(cfg), nil
}
