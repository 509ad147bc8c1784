package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sjakati98/RedisEstimator/calc"
	"github.com/sjakati98/RedisEstimator/internal/ui"
)

var durationHours float64

// simulateOutput is the JSON shape of a simulation result.
type simulateOutput struct {
	DurationHours     float64         `json:"duration_hours"`
	Samples           []sampleOutput  `json:"samples"`
	Trend             string          `json:"trend"`
	PercentChange     float64         `json:"percent_change"`
	SlopeBytesPerHour float64         `json:"slope_bytes_per_hour"`
	Warnings          []warningOutput `json:"warnings,omitempty"`
}

type sampleOutput struct {
	Hours       float64 `json:"hours"`
	MemoryBytes float64 `json:"memory_bytes"`
}

// simulateCmd projects memory usage over the configured horizon.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project memory usage over time for a workload",
	Run: func(cmd *cobra.Command, args []string) {
		params, cfg := workloadFromFlags()

		series, err := calc.NewSimulator(cfg).Run(params, durationHours)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		report, err := calc.AnalyzeMemoryTrend(series)
		if err != nil {
			logrus.Fatalf("Trend analysis failed: %v", err)
		}

		estimate, err := calc.NewEstimator(cfg).Estimate(params)
		if err != nil {
			logrus.Fatalf("Estimation failed: %v", err)
		}
		warnings := calc.Warn(cfg, params, estimate.MemoryBytes)

		if jsonOutput {
			samples := make([]sampleOutput, len(series.Samples))
			for i, s := range series.Samples {
				samples[i] = sampleOutput{Hours: s.Hours, MemoryBytes: s.MemoryBytes}
			}
			printJSON(simulateOutput{
				DurationHours:     series.DurationHours,
				Samples:           samples,
				Trend:             string(report.Trend),
				PercentChange:     report.PercentChange,
				SlopeBytesPerHour: report.SlopeBytesPerHour,
				Warnings:          warningsOutput(warnings),
			})
			return
		}

		term := ui.New()
		fmt.Println(term.Header(fmt.Sprintf("Memory Projection (%gh)", series.DurationHours)))
		fmt.Println(term.Chart(series))
		fmt.Println(term.TrendLine(report))
		if s := term.Warnings(warnings); s != "" {
			fmt.Println(s)
		}
	},
}

func init() {
	addWorkloadFlags(simulateCmd)
	simulateCmd.Flags().Float64Var(&durationHours, "duration-hours", calc.DefaultDurationHours, "Projection horizon in hours")
	rootCmd.AddCommand(simulateCmd)
}
