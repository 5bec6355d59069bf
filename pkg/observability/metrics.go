package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/wayline/pkg/domain"
)

// Metrics holds the Prometheus collectors for one router instance.
type Metrics struct {
	actionsTotal   *prometheus.CounterVec
	stallsTotal    prometheus.Counter
	batchesTotal   prometheus.Counter
	actionDuration *prometheus.HistogramVec
	routeDepth     prometheus.Gauge
}

// NewMetrics creates and registers the router collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		actionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wayline",
			Name:      "actions_total",
			Help:      "Navigation actions dispatched, by kind.",
		}, []string{"kind"}),
		stallsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "wayline",
			Name:      "stalls_total",
			Help:      "Actions whose completion signal never arrived within the timeout.",
		}),
		batchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "wayline",
			Name:      "batches_total",
			Help:      "Route diff batches fully processed.",
		}),
		actionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wayline",
			Name:      "action_duration_seconds",
			Help:      "Time between action dispatch and handler completion.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		routeDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "wayline",
			Name:      "route_depth",
			Help:      "Number of route segments in the last committed route.",
		}),
	}
}

// Hooks returns lifecycle hooks feeding these collectors. Pass the result to
// the router via WithLifecycleHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionDispatch: func(ev *domain.ActionEvent) {
			m.actionsTotal.WithLabelValues(string(ev.Action.Kind)).Inc()
		},
		OnActionComplete: func(ev *domain.ActionEvent) {
			m.actionDuration.WithLabelValues(string(ev.Action.Kind)).Observe(ev.Duration.Seconds())
		},
		OnActionStall: func(ev *domain.ActionEvent) {
			m.stallsTotal.Inc()
		},
		OnBatchApplied: func(ev *domain.BatchEvent) {
			m.batchesTotal.Inc()
			m.routeDepth.Set(float64(len(ev.To)))
		},
	}
}
