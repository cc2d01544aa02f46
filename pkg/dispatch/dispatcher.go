package dispatch

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/relay/internal/logging"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/registry"
)

// Dispatcher delivers payloads and errors to the subscriptions held by a Registry.
type Dispatcher struct {
	registry *registry.Registry
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	catalog  *domain.Catalog
	recover  bool
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithLogger configures a logger for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Dispatcher) {
		d.hooks = hooks
	}
}

// WithCatalog enables payload validation against c.
// A payload that does not match its declaration is not delivered; ErrPayloadMismatch is sent to the
// error channel of the action instead.
func WithCatalog(c *domain.Catalog) Option {
	return func(d *Dispatcher) {
		d.catalog = c
	}
}

// WithRecovery turns callback panics into error dispatches.
func WithRecovery(enabled bool) Option {
	return func(d *Dispatcher) {
		d.recover = enabled
	}
}

// New creates a Dispatcher over reg.
func New(reg *registry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry the dispatcher reads from.
func (d *Dispatcher) Registry() *registry.Registry {
	return d.registry
}

// DispatchData runs payload through the transformers of action and delivers the result.
// With first set, only the earliest registered observer receives it.
// Dispatching an action nobody subscribed to is a silent no-op; transformers still run.
func (d *Dispatcher) DispatchData(action domain.ActionID, payload any, first bool) {
	e := domain.NewEvent(domain.EventDispatch, action)
	e.First = first
	d.hooks.Fire(e)

	if d.catalog != nil {
		if err := d.catalog.Validate(action, payload); err != nil {
			d.logger.Warn("Payload rejected", "action", action, "err", err)
			d.drop(action, domain.DropMismatch, err)
			d.DispatchError(domain.ErrorAction(action), err)
			return
		}
	}

	if d.recover {
		defer d.recoverData(action)
	}

	transformed := payload
	for i, t := range d.registry.TransformersOf(action) {
		transformed = t.Handler(transformed)

		e := domain.NewEvent(domain.EventTransform, action)
		e.HandlerID = t.ID
		e.Index = i
		d.hooks.Fire(e)
	}

	observers := d.registry.ObserversOf(action)
	if len(observers) == 0 {
		d.logger.Debug("No observers", "action", action)
		d.drop(action, domain.DropNoObservers, nil)
		return
	}
	if first {
		observers = observers[:1]
	}

	d.logger.Debug("Dispatch", "action", action, "observers", len(observers), "first", first)
	for i, observer := range observers {
		observer(transformed)

		e := domain.NewEvent(domain.EventDeliver, action)
		e.Index = i
		e.First = first
		d.hooks.Fire(e)
	}
}

// DispatchError hands err to every error handler of action, in registration order.
func (d *Dispatcher) DispatchError(action domain.ActionID, err error) {
	handlers := d.registry.ErrorHandlersOf(action)
	d.logger.Debug("Dispatch error", "action", action, "handlers", len(handlers), "err", err)

	if d.recover {
		defer d.recoverError(action)
	}

	for i, h := range handlers {
		h.Handler(err)

		e := domain.NewEvent(domain.EventError, action)
		e.HandlerID = h.ID
		e.Index = i
		e.Err = err
		d.hooks.Fire(e)
	}
}

func (d *Dispatcher) drop(action domain.ActionID, reason string, err error) {
	e := domain.NewEvent(domain.EventDrop, action)
	e.Reason = reason
	e.Err = err
	d.hooks.Fire(e)
}

// recoverData must be deferred directly by DispatchData.
func (d *Dispatcher) recoverData(action domain.ActionID) {
	r := recover()
	if r == nil {
		return
	}
	err := fmt.Errorf("%w: %s: %v", domain.ErrCallbackPanic, action, r)
	d.logger.Error("Observer panicked", "action", action, "err", err)
	d.drop(action, domain.DropPanic, err)
	d.DispatchError(domain.ErrorAction(action), err)
}

// recoverError must be deferred directly by DispatchError.
// A failing error handler is logged only, so a broken handler cannot loop.
func (d *Dispatcher) recoverError(action domain.ActionID) {
	r := recover()
	if r == nil {
		return
	}
	err := fmt.Errorf("%w: %s: %v", domain.ErrCallbackPanic, action, r)
	d.logger.Error("Error handler panicked", "action", action, "err", err)
	d.drop(action, domain.DropPanic, err)
}
