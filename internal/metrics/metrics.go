// Package metrics exposes Prometheus instruments for network operations.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for OperationsTotal.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds all metrics for the application.
type Registry struct {
	// OperationsTotal counts session operations by name and outcome.
	OperationsTotal *prometheus.CounterVec
	// Facilities is the facility count of the current network.
	Facilities prometheus.Gauge
	// Towns is the town count of the current network.
	Towns prometheus.Gauge
	// SolverDuration observes greedy and full-coverage runs.
	SolverDuration *prometheus.HistogramVec
	// FallbacksTotal counts loads that needed full coverage.
	FallbacksTotal prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.OperationsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "schoolnet_operations_total",
			Help: "Total number of network operations",
		},
		[]string{"op", "result"},
	)
	r.Facilities = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "schoolnet_facilities",
		Help: "Number of towns currently hosting a facility",
	})
	r.Towns = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "schoolnet_towns",
		Help: "Number of towns in the loaded network",
	})
	r.SolverDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schoolnet_solver_duration_seconds",
			Help:    "Facility placement duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"solver"},
	)
	r.FallbacksTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "schoolnet_fallbacks_total",
		Help: "Loads whose stored facilities were replaced by full coverage",
	})

	return r
}

// RecordOperation counts op with an outcome derived from err.
func (r *Registry) RecordOperation(op string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.OperationsTotal.WithLabelValues(op, result).Inc()
}

// RecordSolve observes a solver run.
func (r *Registry) RecordSolve(solver string, d time.Duration) {
	r.SolverDuration.WithLabelValues(solver).Observe(d.Seconds())
}

// SetNetwork updates the size gauges.
func (r *Registry) SetNetwork(towns, facilities int) {
	r.Towns.Set(float64(towns))
	r.Facilities.Set(float64(facilities))
}

// Gatherer exposes the underlying registry (tests, custom exporters).
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Registry) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
