// Package metrics exposes Prometheus instrumentation for the CLI driver
// and benchmark harness: step duration, kinetic energy and quadtree
// rebuild cost. The core layout packages are not instrumented directly;
// callers record around Step calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles the metrics recorded around a layout run.
type Registry struct {
	StepDuration     prometheus.Histogram
	StepsTotal       prometheus.Counter
	KineticEnergy    prometheus.Gauge
	Temperature      prometheus.Gauge
	QuadTreeRebuilds prometheus.Counter
	QuadTreeCells    prometheus.Gauge
}

// NewRegistry constructs and registers a fresh Registry against reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forcelayout",
			Name:      "step_duration_seconds",
			Help:      "Duration of a single Fruchterman-Reingold step.",
			Buckets:   prometheus.DefBuckets,
		}),
		StepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forcelayout",
			Name:      "steps_total",
			Help:      "Total number of layout steps executed.",
		}),
		KineticEnergy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forcelayout",
			Name:      "kinetic_energy",
			Help:      "Kinetic energy recorded by the last completed step.",
		}),
		Temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forcelayout",
			Name:      "temperature",
			Help:      "Current annealing temperature.",
		}),
		QuadTreeRebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forcelayout",
			Name:      "quadtree_rebuilds_total",
			Help:      "Total number of Barnes-Hut quadtree rebuilds.",
		}),
		QuadTreeCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forcelayout",
			Name:      "quadtree_cells",
			Help:      "Number of cells allocated in the Barnes-Hut quadtree pool.",
		}),
	}

	reg.MustRegister(
		r.StepDuration, r.StepsTotal, r.KineticEnergy,
		r.Temperature, r.QuadTreeRebuilds, r.QuadTreeCells,
	)
	return r
}

// RecordStep records the outcome of one Step call.
func (r *Registry) RecordStep(duration time.Duration, kineticEnergy, temperature float64) {
	r.StepDuration.Observe(duration.Seconds())
	r.StepsTotal.Inc()
	r.KineticEnergy.Set(kineticEnergy)
	r.Temperature.Set(temperature)
}

// RecordQuadTreeRebuild records one Barnes-Hut quadtree rebuild.
func (r *Registry) RecordQuadTreeRebuild(cells int) {
	r.QuadTreeRebuilds.Inc()
	r.QuadTreeCells.Set(float64(cells))
}
