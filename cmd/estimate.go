package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sjakati98/RedisEstimator/calc"
	"github.com/sjakati98/RedisEstimator/internal/ui"
)

var (
	// CLI flags shared by estimate and simulate
	avgObjectSize  float64 // raw average object size in sizeUnit
	sizeUnit       string  // unit of avgObjectSize (Bytes, KB, MB, GB, TB)
	numKeys        int64   // total keys in the keyspace
	tps            float64 // expected transactions per second (0 = not modeled)
	ttlSeconds     int64   // key TTL in seconds (0 = no expiration)
	evictionPolicy string  // Redis maxmemory-policy name
	profileName    string  // deployment profile from profiles.yaml
	profilesPath   string  // path to profiles.yaml
	jsonOutput     bool    // machine-readable output instead of styled text
)

// workloadFromFlags converts and validates the raw flag values into
// WorkloadParameters plus the resolved formula constants.
func workloadFromFlags() (calc.WorkloadParameters, calc.Config) {
	cfg, err := ResolveConfig(profilesPath, profileName)
	if err != nil {
		logrus.Fatalf("Failed to resolve profile: %v", err)
	}

	unit, err := calc.ParseSizeUnit(sizeUnit)
	if err != nil {
		logrus.Fatalf("Invalid size unit: %v", err)
	}
	policy, err := calc.ParseEvictionPolicy(evictionPolicy)
	if err != nil {
		logrus.Fatalf("Invalid eviction policy: %v", err)
	}

	params := calc.WorkloadParameters{
		AvgObjectSizeBytes: unit.Bytes(avgObjectSize),
		NumKeys:            numKeys,
		TPS:                tps,
		TTLSeconds:         ttlSeconds,
		Policy:             policy,
	}
	if err := params.Validate(); err != nil {
		logrus.Fatalf("Invalid workload parameters: %v", err)
	}
	return params, cfg
}

// estimateOutput is the JSON shape of an estimate result.
type estimateOutput struct {
	MemoryBytes float64         `json:"memory_bytes"`
	MemoryHuman string          `json:"memory_human"`
	LatencyMs   float64         `json:"latency_ms"`
	CPUCores    int             `json:"cpu_cores"`
	Warnings    []warningOutput `json:"warnings,omitempty"`
}

type warningOutput struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func warningsOutput(warnings []calc.Warning) []warningOutput {
	out := make([]warningOutput, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, warningOutput{Code: string(w.Code), Message: w.Message})
	}
	return out
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logrus.Fatalf("Failed to encode output: %v", err)
	}
}

// estimateCmd computes the point-in-time resource estimate.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate memory, latency, and CPU for a workload",
	Run: func(cmd *cobra.Command, args []string) {
		params, cfg := workloadFromFlags()

		estimate, err := calc.NewEstimator(cfg).Estimate(params)
		if err != nil {
			logrus.Fatalf("Estimation failed: %v", err)
		}
		warnings := calc.Warn(cfg, params, estimate.MemoryBytes)

		if jsonOutput {
			printJSON(estimateOutput{
				MemoryBytes: estimate.MemoryBytes,
				MemoryHuman: calc.FormatMemorySize(estimate.MemoryBytes),
				LatencyMs:   estimate.LatencyMs,
				CPUCores:    estimate.CPUCores,
				Warnings:    warningsOutput(warnings),
			})
			return
		}

		term := ui.New()
		fmt.Println(term.Header("Deployment Requirements"))
		fmt.Println(term.MetricCards(estimate))
		if s := term.Warnings(warnings); s != "" {
			fmt.Println(s)
		}
	},
}

// addWorkloadFlags registers the shared workload flags on a command.
func addWorkloadFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&avgObjectSize, "avg-object-size", 1000, "Average object size in --size-unit units")
	cmd.Flags().StringVar(&sizeUnit, "size-unit", "Bytes", "Unit of --avg-object-size (Bytes, KB, MB, GB, TB)")
	cmd.Flags().Int64Var(&numKeys, "keys", 100000, "Total number of keys in the database")
	cmd.Flags().Float64Var(&tps, "tps", 0, "Expected transactions per second (0 = not modeled)")
	cmd.Flags().Int64Var(&ttlSeconds, "ttl", 0, "Key TTL in seconds (0 = no expiration)")
	cmd.Flags().StringVar(&evictionPolicy, "eviction-policy", "noeviction", "Redis maxmemory-policy")
	cmd.Flags().StringVar(&profileName, "profile", "", "Deployment profile from the profiles file")
	cmd.Flags().StringVar(&profilesPath, "profiles-file", "profiles.yaml", "Path to the deployment profiles file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of styled text")
}

func init() {
	addWorkloadFlags(estimateCmd)
	rootCmd.AddCommand(estimateCmd)
}
