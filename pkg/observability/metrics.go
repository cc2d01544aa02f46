package observability

import (
	"fmt"
	"io"

	"github.com/aretw0/relay/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "relay"

// Metrics counts dispatch lifecycle events per action.
type Metrics struct {
	Dispatches *prometheus.CounterVec
	Deliveries *prometheus.CounterVec
	Transforms *prometheus.CounterVec
	Errors     *prometheus.CounterVec
	Drops      *prometheus.CounterVec
	gatherer   prometheus.Gatherer
}

// NewMetrics creates the counters and registers them with reg.
// A nil reg registers with the default prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatches_total",
			Help:      "Number of dispatches per action.",
		}, []string{"action"}),
		Deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Number of observer deliveries per action.",
		}, []string{"action"}),
		Transforms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transforms_total",
			Help:      "Number of transformer runs per action.",
		}, []string{"action"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Number of error handler deliveries per action.",
		}, []string{"action"}),
		Drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drops_total",
			Help:      "Number of dropped dispatches per action and reason.",
		}, []string{"action", "reason"}),
	}
	reg.MustRegister(m.Dispatches, m.Deliveries, m.Transforms, m.Errors, m.Drops)

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	} else {
		m.gatherer = prometheus.DefaultGatherer
	}
	return m
}

// Hooks returns lifecycle hooks that feed the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			m.Dispatches.WithLabelValues(e.Action.String()).Inc()
		},
		OnTransform: func(e *domain.DispatchEvent) {
			m.Transforms.WithLabelValues(e.Action.String()).Inc()
		},
		OnDeliver: func(e *domain.DispatchEvent) {
			m.Deliveries.WithLabelValues(e.Action.String()).Inc()
		},
		OnError: func(e *domain.DispatchEvent) {
			m.Errors.WithLabelValues(e.Action.String()).Inc()
		},
		OnDrop: func(e *domain.DispatchEvent) {
			m.Drops.WithLabelValues(e.Action.String(), e.Reason).Inc()
		},
	}
}

// WriteText writes the gathered metrics in the prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	return WriteText(w, m.gatherer)
}

// WriteText writes every metric family of g in the prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if err := writeFamily(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func writeFamily(w io.Writer, mf *dto.MetricFamily) error {
	if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
		return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
	}
	return nil
}
