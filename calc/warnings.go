package calc

import "fmt"

// WarningCode identifies a configuration concern derived from an estimate.
type WarningCode string

const (
	WarnShardDeployment  WarningCode = "shard-deployment"
	WarnIneffectiveTTL   WarningCode = "ineffective-ttl-policy"
	WarnHighTransactions WarningCode = "high-tps"
)

// Warning is a human-readable recommendation tied to a stable code so
// callers can filter or restyle without parsing messages.
type Warning struct {
	Code    WarningCode
	Message string
}

// Warn derives configuration recommendations from validated parameters and
// their memory estimate.
func Warn(cfg Config, p WorkloadParameters, memoryBytes float64) []Warning {
	var warnings []Warning
	if memoryBytes > cfg.ShardMemoryBytes {
		warnings = append(warnings, Warning{
			Code: WarnShardDeployment,
			Message: fmt.Sprintf("estimated memory %s exceeds %s; consider sharding the deployment",
				FormatMemorySize(memoryBytes), FormatMemorySize(cfg.ShardMemoryBytes)),
		})
	}
	if p.TTLSeconds == 0 && p.Policy.VolatileScoped() {
		warnings = append(warnings, Warning{
			Code:    WarnIneffectiveTTL,
			Message: fmt.Sprintf("%s only evicts keys with a TTL, but no TTL is set", p.Policy),
		})
	}
	if p.TPS > cfg.HighTPS {
		warnings = append(warnings, Warning{
			Code:    WarnHighTransactions,
			Message: fmt.Sprintf("%.0f TPS exceeds %.0f; consider a clustered deployment", p.TPS, cfg.HighTPS),
		})
	}
	return warnings
}
