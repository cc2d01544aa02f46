package presentation

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/relay/internal/logging"
	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/ports"
)

// Router owns the PRESENT channel of a bus.
type Router struct {
	bus    ports.Bus
	logger *slog.Logger
	strict bool
	onDrop func(err error)
}

// Option configures the Router.
type Option func(*Router)

// WithLogger configures a logger for routing decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStrictEnvelopes reports malformed envelopes on the PRESENT error channel instead of dropping them.
func WithStrictEnvelopes(strict bool) Option {
	return func(r *Router) {
		r.strict = strict
	}
}

// WithDropHook is called with the reason every time an envelope is discarded.
func WithDropHook(fn func(err error)) Option {
	return func(r *Router) {
		r.onDrop = fn
	}
}

// NewRouter creates a router over bus. It does not install a handler; call Install or SetHandler.
func NewRouter(bus ports.Bus, opts ...Option) *Router {
	r := &Router{
		bus:    bus,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Coordinate sends env to the presentation handler.
// An envelope without a mode is sent as ModePresent. If env does not encode, the failure goes to the
// PRESENT error channel and nothing is dispatched.
func (r *Router) Coordinate(env domain.Envelope) {
	if env.Mode == "" {
		env.Mode = domain.ModePresent
	}
	data, err := codec.Encode(r.bus.Codec(), env)
	if err != nil {
		r.logger.Warn("Envelope encode failed", "action", env.Action, "err", err)
		r.bus.DispatchError(domain.ErrorAction(domain.ActionPresent), err)
		return
	}
	r.logger.Debug("Coordinate", "action", env.Action, "mode", env.Mode, "url", env.Locator)
	r.bus.DispatchFirst(domain.ActionPresent, data)
}

// SetHandler makes fn the only observer of PRESENT.
func (r *Router) SetHandler(fn domain.Observer) {
	r.bus.ClearObservers(domain.ActionPresent)
	r.bus.Subscribe(domain.ActionPresent, fn)
}

// Install makes Handle the presentation handler.
func (r *Router) Install() {
	r.SetHandler(r.Handle)
}

// Handle decodes an envelope and broadcasts its payload on the envelope's action.
// The delivery mode does not affect routing. Envelopes without a payload are ignored; envelopes that
// do not decode are dropped, or reported when the router is strict.
func (r *Router) Handle(payload any) {
	env, err := codec.DecodeErr[domain.Envelope](r.bus.Codec(), payload)
	if err == nil && env.Action == "" {
		err = fmt.Errorf("%w: envelope without action", domain.ErrDecode)
	}
	if err != nil {
		r.reject(err)
		return
	}

	if !env.HasPayload() {
		r.logger.Debug("Envelope without payload", "action", env.Action, "mode", env.Mode)
		return
	}
	r.bus.Dispatch(env.Action, env.Payload)
}

func (r *Router) reject(err error) {
	r.logger.Debug("Envelope dropped", "err", err)
	if r.onDrop != nil {
		r.onDrop(err)
	}
	if r.strict {
		r.bus.DispatchError(domain.ErrorAction(domain.ActionPresent), err)
	}
}

// Present registers fn as the presentor of action. Payloads that do not decode to T are ignored.
func Present[T any](bus ports.Bus, action domain.ActionID, fn func(T)) {
	bus.Subscribe(action, func(payload any) {
		v, ok := codec.Decode[T](bus.Codec(), payload)
		if !ok {
			return
		}
		fn(v)
	})
}
