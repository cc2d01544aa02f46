package tests

import (
	"errors"
	"testing"

	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BusContractTest is a reusable test suite that verifies if an implementation complies with ports.Bus.
// newBus must return a fresh, empty bus on every call.
func BusContractTest(t *testing.T, newBus func() ports.Bus) {
	t.Helper()

	const action domain.ActionID = "CONTRACT.TEST.ACTION"

	t.Run("Broadcast in order", func(t *testing.T) {
		bus := newBus()
		var got []string
		bus.Subscribe(action, func(any) { got = append(got, "a") })
		bus.Subscribe(action, func(any) { got = append(got, "b") })
		bus.Subscribe(action, func(any) { got = append(got, "c") })

		bus.Dispatch(action, nil)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("First only", func(t *testing.T) {
		bus := newBus()
		var got []string
		bus.Subscribe(action, func(any) { got = append(got, "a") })
		bus.Subscribe(action, func(any) { got = append(got, "b") })

		bus.DispatchFirst(action, nil)
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("Transformers compose and replace by id", func(t *testing.T) {
		bus := newBus()
		bus.SubscribeTransformer(action, "t1", func(p any) any { return p.(string) + "1" })
		bus.SubscribeTransformer(action, "t2", func(p any) any { return p.(string) + "2" })
		bus.SubscribeTransformer(action, "t1", func(p any) any { return p.(string) + "!" })

		var got any
		bus.Subscribe(action, func(p any) { got = p })
		bus.Dispatch(action, "v")
		assert.Equal(t, "v2!", got)

		bus.RemoveTransformer(action, "t1")
		bus.Dispatch(action, "v")
		assert.Equal(t, "v2", got)
	})

	t.Run("Errors reach handlers", func(t *testing.T) {
		bus := newBus()
		boom := errors.New("boom")
		var got []error
		bus.SubscribeError(action, "h1", func(err error) { got = append(got, err) })
		bus.SubscribeError(action, "h2", func(err error) { got = append(got, err) })

		bus.DispatchError(action, boom)
		require.Len(t, got, 2)
		assert.ErrorIs(t, got[1], boom)

		bus.RemoveErrorHandler(action, "h1")
		got = nil
		bus.DispatchError(action, boom)
		assert.Len(t, got, 1)
	})

	t.Run("Clear observers", func(t *testing.T) {
		bus := newBus()
		var calls int
		bus.Subscribe(action, func(any) { calls++ })
		bus.ClearObservers(action)

		bus.Dispatch(action, nil)
		assert.Zero(t, calls)
	})

	t.Run("Silent on unknown action", func(t *testing.T) {
		bus := newBus()
		assert.NotPanics(t, func() {
			bus.Dispatch("CONTRACT.UNKNOWN", nil)
			bus.DispatchFirst("CONTRACT.UNKNOWN", nil)
			bus.DispatchError("CONTRACT.UNKNOWN", errors.New("x"))
		})
	})

	t.Run("Codec", func(t *testing.T) {
		bus := newBus()
		require.NotNil(t, bus.Codec())
		data, err := bus.Codec().Encode(domain.Person{ID: "p1", Name: "David"})
		require.NoError(t, err)

		var p domain.Person
		require.NoError(t, bus.Codec().Decode(data, &p))
		assert.Equal(t, "David", p.Name)
	})
}
