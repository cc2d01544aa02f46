/*
Package observability turns dispatch lifecycle events into logs, metrics and traces.

Every helper returns a domain.LifecycleHooks value. Use Combine to install several at once:

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	trace := observability.NewTrace()
	store := relay.New(relay.WithLifecycleHooks(observability.Combine(
		metrics.Hooks(),
		trace.Hooks(),
		observability.DebugHooks(logger),
	)))
*/
package observability
