package diagnostics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/notargets/riemann/riemann"
)

// Metrics counts solver events and the iterations each star state took.
type Metrics struct {
	events     *prometheus.CounterVec
	repairs    *prometheus.CounterVec
	iterations prometheus.Histogram
}

// NewMetrics registers its collectors with reg; a nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) (m *Metrics) {
	factory := promauto.With(reg)
	m = &Metrics{
		// Labels: "converged", "degraded", "bisection", "non-converged", "repair"
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "riemann_events_total",
			Help: "Riemann solver events by kind",
		}, []string{"kind"}),
		repairs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "riemann_repairs_total",
			Help: "Input states re-derived from the EOS at the temperature floor",
		}, []string{"side"}),
		iterations: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "riemann_star_iterations",
			Help:    "Secant plus bisection iterations per CG star state",
			Buckets: []float64{2, 3, 4, 6, 8, 12, 16, 24, 36},
		}),
	}
	return
}

func (m *Metrics) Record(ev riemann.Event) {
	m.events.WithLabelValues(ev.Kind.String()).Inc()
	if ev.Kind == riemann.EventRepair {
		m.repairs.WithLabelValues(ev.Side.String()).Inc()
		return
	}
	m.iterations.Observe(float64(ev.Iterations))
}
