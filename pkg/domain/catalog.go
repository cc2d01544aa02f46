package domain

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Catalog is a static table of action identifiers and the payload type each one expects.
// Actions that are not declared accept anything.
type Catalog struct {
	mu    sync.RWMutex
	types map[ActionID]reflect.Type
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{types: make(map[ActionID]reflect.Type)}
}

// Expect declares that action carries payloads of type T.
func Expect[T any](c *Catalog, action ActionID) {
	c.Declare(action, reflect.TypeOf((*T)(nil)).Elem())
}

// Declare records t as the payload type of action, replacing any earlier declaration.
func (c *Catalog) Declare(action ActionID, t reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types[action] = t
}

// Lookup returns the declared payload type of action.
func (c *Catalog) Lookup(action ActionID) (reflect.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.types[action]
	return t, ok
}

// Validate checks payload against the declaration of action.
// Raw byte payloads always pass: they are decoded, and checked, by the receiving side.
func (c *Catalog) Validate(action ActionID, payload any) error {
	want, ok := c.Lookup(action)
	if !ok {
		return nil
	}
	if _, raw := payload.([]byte); raw {
		return nil
	}
	if payload == nil {
		return fmt.Errorf("%w: %s expects %s, got nil", ErrPayloadMismatch, action, want)
	}
	got := reflect.TypeOf(payload)
	if got == want || (want.Kind() == reflect.Interface && got.Implements(want)) {
		return nil
	}
	return fmt.Errorf("%w: %s expects %s, got %s", ErrPayloadMismatch, action, want, got)
}

// Actions returns the declared actions in lexical order.
func (c *Catalog) Actions() []ActionID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ActionID, 0, len(c.types))
	for a := range c.types {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EmptyParams is the payload of requests that carry no data, such as PEOPLE.GET_ALL.ACTION.
type EmptyParams struct{}

// DefaultCatalog declares the actions of the bundled people feature and the presentation channel.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	Expect[Envelope](c, ActionPresent)
	Expect[EmptyParams](c, PeopleActions.GetAll)
	Expect[[]Person](c, PeopleActions.All)
	Expect[Person](c, PersonActions.Update)
	Expect[Person](c, PersonActions.Delete)
	Expect[Person](c, PersonActions.Detail)
	Expect[Person](c, PersonActions.Create)
	return c
}
