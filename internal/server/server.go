// Package server exposes the estimator and simulator as a JSON HTTP API
// with Prometheus metrics. The core stays pure; this is a thin presentation
// shell doing the unit conversion and validation a UI would otherwise do.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/sjakati98/RedisEstimator/calc"
)

// Server serves the estimation API.
type Server struct {
	cfg     Config
	calcCfg calc.Config
	est     *calc.Estimator
	sim     *calc.Simulator
}

// New creates a Server evaluating requests under the given formula
// constants.
func New(cfg Config, calcCfg calc.Config) *Server {
	return &Server{
		cfg:     cfg,
		calcCfg: calcCfg,
		est:     calc.NewEstimator(calcCfg),
		sim:     calc.NewSimulator(calcCfg),
	}
}

// estimateRequest is the JSON body accepted by both endpoints. SizeUnit
// defaults to Bytes and EvictionPolicy to noeviction when omitted.
type estimateRequest struct {
	AvgObjectSize  float64 `json:"avg_object_size"`
	SizeUnit       string  `json:"size_unit"`
	NumKeys        int64   `json:"num_keys"`
	TPS            float64 `json:"tps"`
	TTLSeconds     int64   `json:"ttl_seconds"`
	EvictionPolicy string  `json:"eviction_policy"`
	DurationHours  float64 `json:"duration_hours"` // simulate only
}

// params converts and validates the raw request into WorkloadParameters.
func (r estimateRequest) params() (calc.WorkloadParameters, error) {
	unitName := r.SizeUnit
	if unitName == "" {
		unitName = string(calc.UnitBytes)
	}
	unit, err := calc.ParseSizeUnit(unitName)
	if err != nil {
		return calc.WorkloadParameters{}, err
	}

	policyName := r.EvictionPolicy
	if policyName == "" {
		policyName = string(calc.EvictNone)
	}
	policy, err := calc.ParseEvictionPolicy(policyName)
	if err != nil {
		return calc.WorkloadParameters{}, err
	}

	p := calc.WorkloadParameters{
		AvgObjectSizeBytes: unit.Bytes(r.AvgObjectSize),
		NumKeys:            r.NumKeys,
		TPS:                r.TPS,
		TTLSeconds:         r.TTLSeconds,
		Policy:             policy,
	}
	return p, p.Validate()
}

type warningPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type estimateResponse struct {
	MemoryBytes float64          `json:"memory_bytes"`
	MemoryHuman string           `json:"memory_human"`
	LatencyMs   float64          `json:"latency_ms"`
	CPUCores    int              `json:"cpu_cores"`
	Warnings    []warningPayload `json:"warnings,omitempty"`
}

type samplePayload struct {
	Hours       float64 `json:"hours"`
	MemoryBytes float64 `json:"memory_bytes"`
}

type simulateResponse struct {
	DurationHours     float64          `json:"duration_hours"`
	Samples           []samplePayload  `json:"samples"`
	Trend             string           `json:"trend"`
	PercentChange     float64          `json:"percent_change"`
	SlopeBytesPerHour float64          `json:"slope_bytes_per_hour"`
	Warnings          []warningPayload `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeParams reads the request body and returns validated parameters,
// writing the error response itself on failure.
func decodeParams(w http.ResponseWriter, r *http.Request) (estimateRequest, calc.WorkloadParameters, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return estimateRequest{}, calc.WorkloadParameters{}, false
	}
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invalidInputs.Inc()
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return estimateRequest{}, calc.WorkloadParameters{}, false
	}
	params, err := req.params()
	if err != nil {
		invalidInputs.Inc()
		writeError(w, http.StatusBadRequest, err)
		return estimateRequest{}, calc.WorkloadParameters{}, false
	}
	return req, params, true
}

func warningPayloads(warnings []calc.Warning) []warningPayload {
	out := make([]warningPayload, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, warningPayload{Code: string(w.Code), Message: w.Message})
	}
	return out
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	_, params, ok := decodeParams(w, r)
	if !ok {
		return
	}

	estimate, err := s.est.Estimate(params)
	if err != nil {
		invalidInputs.Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}
	estimateRequests.Inc()

	writeJSON(w, http.StatusOK, estimateResponse{
		MemoryBytes: estimate.MemoryBytes,
		MemoryHuman: calc.FormatMemorySize(estimate.MemoryBytes),
		LatencyMs:   estimate.LatencyMs,
		CPUCores:    estimate.CPUCores,
		Warnings:    warningPayloads(calc.Warn(s.calcCfg, params, estimate.MemoryBytes)),
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, params, ok := decodeParams(w, r)
	if !ok {
		return
	}

	series, err := s.sim.Run(params, req.DurationHours)
	if err != nil {
		invalidInputs.Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, err := calc.AnalyzeMemoryTrend(series)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	simulateRequests.Inc()

	samples := make([]samplePayload, len(series.Samples))
	for i, sample := range series.Samples {
		samples[i] = samplePayload{Hours: sample.Hours, MemoryBytes: sample.MemoryBytes}
	}

	estimate, _ := s.est.Estimate(params)
	writeJSON(w, http.StatusOK, simulateResponse{
		DurationHours:     series.DurationHours,
		Samples:           samples,
		Trend:             string(report.Trend),
		PercentChange:     report.PercentChange,
		SlopeBytesPerHour: report.SlopeBytesPerHour,
		Warnings:          warningPayloads(calc.Warn(s.calcCfg, params, estimate.MemoryBytes)),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// instrument wraps a handler with a per-endpoint duration observation.
func instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the API routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/estimate", instrument("estimate", s.handleEstimate))
	mux.HandleFunc("/v1/simulate", instrument("simulate", s.handleSimulate))
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Run serves the API until ctx is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Serving estimation API on %s", s.cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
