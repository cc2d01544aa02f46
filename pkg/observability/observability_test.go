package observability_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/relay"
	"github.com/aretw0/relay/internal/logging"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	store := relay.New(relay.WithLifecycleHooks(metrics.Hooks()))

	store.SubscribeTransformer("A", "t1", func(p any) any { return p })
	store.Subscribe("A", func(any) {})
	store.Subscribe("A", func(any) {})
	store.SubscribeError("A", "e1", func(error) {})

	store.Dispatch("A", 1)
	store.DispatchFirst("A", 2)
	store.Dispatch("B", 3)
	store.DispatchError("A", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Dispatches.WithLabelValues("A")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Dispatches.WithLabelValues("B")))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Deliveries.WithLabelValues("A")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Transforms.WithLabelValues("A")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Errors.WithLabelValues("A")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Drops.WithLabelValues("B", domain.DropNoObservers)))
}

func TestMetrics_WriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	store := relay.New(relay.WithLifecycleHooks(metrics.Hooks()))
	store.Subscribe("A", func(any) {})
	store.Dispatch("A", 1)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf))
	assert.Contains(t, buf.String(), `relay_dispatches_total{action="A"} 1`)
	assert.Contains(t, buf.String(), "# TYPE relay_deliveries_total counter")
}

func TestTrace_RecordsInOrder(t *testing.T) {
	trace := observability.NewTrace()
	store := relay.New(relay.WithLifecycleHooks(trace.Hooks()))
	store.SubscribeTransformer("A", "t1", func(p any) any { return p })
	store.Subscribe("A", func(any) {})

	store.Dispatch("A", 1)

	var types []domain.EventType
	for _, e := range trace.Events() {
		types = append(types, e.Type)
	}
	assert.Equal(t, []domain.EventType{domain.EventDispatch, domain.EventTransform, domain.EventDeliver}, types)
	require.Len(t, trace.Of(domain.EventTransform), 1)
	assert.Equal(t, "t1", trace.Of(domain.EventTransform)[0].HandlerID)

	trace.Reset()
	assert.Empty(t, trace.Events())
}

func TestCombine_FansOut(t *testing.T) {
	a, b := observability.NewTrace(), observability.NewTrace()
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug)

	store := relay.New(relay.WithLifecycleHooks(observability.Combine(a.Hooks(), b.Hooks(), observability.DebugHooks(logger))))
	store.Dispatch("NOBODY", 1)

	assert.Len(t, a.Events(), 2)
	assert.Equal(t, a.Events(), b.Events())
	assert.Contains(t, buf.String(), "reason=no_observers")
}
