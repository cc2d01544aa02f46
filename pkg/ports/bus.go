package ports

import (
	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
)

// Subscriber defines the registration side of the store.
type Subscriber interface {
	// Subscribe appends an observer. Observers are not individually removable.
	Subscribe(action domain.ActionID, fn domain.Observer)

	// SubscribeTransformer adds or replaces the transformer registered under id.
	SubscribeTransformer(action domain.ActionID, id string, fn domain.TransformFunc)

	// SubscribeError adds or replaces the error handler registered under id.
	SubscribeError(action domain.ActionID, id string, fn domain.ErrorFunc)

	RemoveTransformer(action domain.ActionID, id string)
	RemoveErrorHandler(action domain.ActionID, id string)

	// ClearObservers drops every observer of action.
	ClearObservers(action domain.ActionID)
}

// Bus is the full surface a feature needs.
type Bus interface {
	Subscriber
	ActionDispatcher

	// Codec returns the codec payloads are encoded with at the edges.
	Codec() codec.Codec
}

// Coordinator routes navigation envelopes.
type Coordinator interface {
	Coordinate(env domain.Envelope)
}
