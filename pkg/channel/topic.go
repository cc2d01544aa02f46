// Package channel binds one action to one payload type.
//
// A Topic[T] wraps the untyped bus so that the observers, transformers and dispatches of an action are
// all checked against T at compile time. Decoding only happens when the payload arrives as bytes or a
// map, that is, when it crossed a boundary.
package channel

import (
	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/ports"
)

// Topic is a typed view of one action on a bus.
type Topic[T any] struct {
	bus    ports.Bus
	action domain.ActionID
}

// NewTopic binds action to T on bus.
func NewTopic[T any](bus ports.Bus, action domain.ActionID) *Topic[T] {
	return &Topic[T]{bus: bus, action: action}
}

// Action returns the bound action.
func (t *Topic[T]) Action() domain.ActionID { return t.action }

// Declare records T as the payload type of the action in c.
func (t *Topic[T]) Declare(c *domain.Catalog) *Topic[T] {
	domain.Expect[T](c, t.action)
	return t
}

// Subscribe registers fn as an observer. Payloads that are not a T are skipped.
func (t *Topic[T]) Subscribe(fn func(T)) {
	t.bus.Subscribe(t.action, func(payload any) {
		v, ok := codec.Decode[T](t.bus.Codec(), payload)
		if !ok {
			return
		}
		fn(v)
	})
}

// Transform registers fn as the transformer id. Payloads that are not a T pass through unchanged.
func (t *Topic[T]) Transform(id string, fn func(T) T) {
	t.bus.SubscribeTransformer(t.action, id, func(payload any) any {
		v, ok := codec.Decode[T](t.bus.Codec(), payload)
		if !ok {
			return payload
		}
		return fn(v)
	})
}

// RemoveTransform removes the transformer id.
func (t *Topic[T]) RemoveTransform(id string) {
	t.bus.RemoveTransformer(t.action, id)
}

// OnError registers fn as the error handler id of the action.
func (t *Topic[T]) OnError(id string, fn func(error)) {
	t.bus.SubscribeError(t.action, id, fn)
}

// Dispatch broadcasts v.
func (t *Topic[T]) Dispatch(v T) {
	t.bus.Dispatch(t.action, v)
}

// DispatchFirst delivers v to the first observer only.
func (t *Topic[T]) DispatchFirst(v T) {
	t.bus.DispatchFirst(t.action, v)
}

// Fail dispatches err on the action.
func (t *Topic[T]) Fail(err error) {
	t.bus.DispatchError(t.action, err)
}
