package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sjakati98/RedisEstimator/internal/server"
)

var envFile string

// serveCmd runs the HTTP estimation API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the estimation API over HTTP",
	Long: `serve exposes POST /v1/estimate and POST /v1/simulate as JSON endpoints,
plus /healthz and Prometheus metrics on /metrics. Server settings come from
REDISCALC_* environment variables, optionally loaded from a .env file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(envFile); err != nil {
			logrus.Debugf("No env file loaded from %s: %v", envFile, err)
		}

		srvCfg, err := server.Load()
		if err != nil {
			logrus.Fatalf("Failed to load server config: %v", err)
		}
		calcCfg, err := ResolveConfig(profilesPath, profileName)
		if err != nil {
			logrus.Fatalf("Failed to resolve profile: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(srvCfg, calcCfg)
		if err := srv.Run(ctx); err != nil {
			logrus.Fatalf("Server error: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")
	serveCmd.Flags().StringVar(&profileName, "profile", "", "Deployment profile from the profiles file")
	serveCmd.Flags().StringVar(&profilesPath, "profiles-file", "profiles.yaml", "Path to the deployment profiles file")
	rootCmd.AddCommand(serveCmd)
}
