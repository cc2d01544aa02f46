package relay

import (
	"log/slog"

	"github.com/aretw0/relay/internal/logging"
	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/dispatch"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/ports"
	"github.com/aretw0/relay/pkg/presentation"
	"github.com/aretw0/relay/pkg/registry"
)

// Store is the high-level entry point for the relay library.
// It owns a registry, a dispatcher and the presentation router, and implements ports.Bus.
// Create one per application root and pass it to every collaborator.
type Store struct {
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	router     *presentation.Router
	codec      codec.Codec
	catalog    *domain.Catalog
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	recover    bool
	strict     bool
}

var (
	_ ports.Bus         = (*Store)(nil)
	_ ports.Coordinator = (*Store)(nil)
)

// Option defines a functional option for configuring the Store.
type Option func(*Store)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Store) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCodec sets the codec used at the edges (default JSON).
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// WithCatalog validates dispatched payloads against c.
func WithCatalog(c *domain.Catalog) Option {
	return func(s *Store) {
		s.catalog = c
	}
}

// WithRecovery turns callback panics into error dispatches on the action's error channel.
func WithRecovery(enabled bool) Option {
	return func(s *Store) {
		s.recover = enabled
	}
}

// WithStrictEnvelopes reports malformed presentation envelopes instead of dropping them.
func WithStrictEnvelopes(strict bool) Option {
	return func(s *Store) {
		s.strict = strict
	}
}

// New creates an empty store. The presentation handler is installed, so Coordinate works out of the box.
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.codec == nil {
		s.codec = codec.JSON{}
	}

	s.registry = registry.NewRegistry()
	s.dispatcher = dispatch.New(s.registry,
		dispatch.WithLogger(s.logger),
		dispatch.WithLifecycleHooks(s.hooks),
		dispatch.WithCatalog(s.catalog),
		dispatch.WithRecovery(s.recover),
	)
	s.router = presentation.NewRouter(s,
		presentation.WithLogger(s.logger),
		presentation.WithStrictEnvelopes(s.strict),
		presentation.WithDropHook(s.envelopeDropped),
	)
	s.router.Install()

	return s
}

func (s *Store) envelopeDropped(err error) {
	e := domain.NewEvent(domain.EventDrop, domain.ActionPresent)
	e.Reason = domain.DropDecode
	e.Err = err
	s.hooks.Fire(e)
}

// Subscribe appends fn to the observers of action.
func (s *Store) Subscribe(action domain.ActionID, fn domain.Observer) {
	s.registry.RegisterObserver(action, fn)
}

// SubscribeTransformer adds fn under id, replacing and moving to the end any transformer with that id.
func (s *Store) SubscribeTransformer(action domain.ActionID, id string, fn domain.TransformFunc) {
	s.registry.RegisterTransformer(action, id, fn)
}

// SubscribeError adds fn under id, with the same replace semantics as transformers.
func (s *Store) SubscribeError(action domain.ActionID, id string, fn domain.ErrorFunc) {
	s.registry.RegisterErrorHandler(action, id, fn)
}

// RemoveTransformer removes the transformer registered under id.
func (s *Store) RemoveTransformer(action domain.ActionID, id string) {
	s.registry.UnregisterTransformer(action, id)
}

// RemoveErrorHandler removes the error handler registered under id.
func (s *Store) RemoveErrorHandler(action domain.ActionID, id string) {
	s.registry.UnregisterErrorHandler(action, id)
}

// ClearObservers drops every observer of action.
func (s *Store) ClearObservers(action domain.ActionID) {
	s.registry.ClearObservers(action)
}

// Dispatch delivers payload to every observer of action.
func (s *Store) Dispatch(action domain.ActionID, payload any) {
	s.dispatcher.DispatchData(action, payload, false)
}

// DispatchFirst delivers payload to the first observer of action only.
func (s *Store) DispatchFirst(action domain.ActionID, payload any) {
	s.dispatcher.DispatchData(action, payload, true)
}

// DispatchError delivers err to every error handler of action.
func (s *Store) DispatchError(action domain.ActionID, err error) {
	s.dispatcher.DispatchError(action, err)
}

// DispatchEncoded encodes v with the store codec and dispatches the bytes.
// If v does not encode, the failure is dispatched on domain.ErrorAction(action) instead.
func (s *Store) DispatchEncoded(action domain.ActionID, v any) {
	data, err := s.codec.Encode(v)
	if err != nil {
		s.dispatcher.DispatchError(domain.ErrorAction(action), err)
		return
	}
	s.dispatcher.DispatchData(action, data, false)
}

// Coordinate routes env through the presentation channel.
func (s *Store) Coordinate(env domain.Envelope) {
	s.router.Coordinate(env)
}

// AddPresentor replaces the presentation handler with fn.
func (s *Store) AddPresentor(fn domain.Observer) {
	s.router.SetHandler(fn)
}

// Codec returns the codec used at the edges.
func (s *Store) Codec() codec.Codec {
	return s.codec
}

// Catalog returns the validation catalog, or nil.
func (s *Store) Catalog() *domain.Catalog {
	return s.catalog
}

// Registry returns the underlying registry, mostly for introspection.
func (s *Store) Registry() *registry.Registry {
	return s.registry
}

// Router returns the presentation router.
func (s *Store) Router() *presentation.Router {
	return s.router
}
