package registry

import (
	"slices"
	"sort"
	"sync"

	"github.com/aretw0/relay/pkg/domain"
	"github.com/google/uuid"
)

// Registry holds the observers, transformers and error handlers of every action.
//
// Insertion order is delivery order. Read accessors return copies, so a dispatch that iterates a
// snapshot is not affected by registrations made from inside a callback. The lock is held only while
// the tables are read or written, never while a callback runs.
type Registry struct {
	mu           sync.RWMutex
	observers    map[domain.ActionID][]domain.Observer
	transformers map[domain.ActionID][]domain.Transformer
	errors       map[domain.ActionID][]domain.ErrorHandler
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		observers:    make(map[domain.ActionID][]domain.Observer),
		transformers: make(map[domain.ActionID][]domain.Transformer),
		errors:       make(map[domain.ActionID][]domain.ErrorHandler),
	}
}

// NewID returns a random identifier for anonymous transformers and error handlers.
func NewID() string { return uuid.NewString() }

// RegisterObserver appends fn to the observers of action. The same observer may be registered twice.
func (r *Registry) RegisterObserver(action domain.ActionID, fn domain.Observer) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers[action] = append(r.observers[action], fn)
}

// RegisterTransformer adds fn under id. An existing transformer with the same id is removed first,
// so the replacement runs last.
func (r *Registry) RegisterTransformer(action domain.ActionID, id string, fn domain.TransformFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := slices.DeleteFunc(r.transformers[action], func(t domain.Transformer) bool { return t.ID == id })
	r.transformers[action] = append(list, domain.Transformer{ID: id, Handler: fn})
}

// RegisterErrorHandler adds fn under id with the same replace semantics as RegisterTransformer.
func (r *Registry) RegisterErrorHandler(action domain.ActionID, id string, fn domain.ErrorFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := slices.DeleteFunc(r.errors[action], func(h domain.ErrorHandler) bool { return h.ID == id })
	r.errors[action] = append(list, domain.ErrorHandler{ID: id, Handler: fn})
}

// UnregisterTransformer removes the transformer with id. It is a no-op if there is none.
func (r *Registry) UnregisterTransformer(action domain.ActionID, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.transformers[action]
	if !ok {
		return
	}
	r.transformers[action] = slices.DeleteFunc(list, func(t domain.Transformer) bool { return t.ID == id })
}

// UnregisterErrorHandler removes the error handler with id. It is a no-op if there is none.
func (r *Registry) UnregisterErrorHandler(action domain.ActionID, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.errors[action]
	if !ok {
		return
	}
	r.errors[action] = slices.DeleteFunc(list, func(h domain.ErrorHandler) bool { return h.ID == id })
}

// ClearObservers removes every observer of action.
func (r *Registry) ClearObservers(action domain.ActionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.observers, action)
}

// ObserversOf returns a copy of the observers of action, in registration order.
func (r *Registry) ObserversOf(action domain.ActionID) []domain.Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.observers[action])
}

// TransformersOf returns a copy of the transformers of action, in application order.
func (r *Registry) TransformersOf(action domain.ActionID) []domain.Transformer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.transformers[action])
}

// ErrorHandlersOf returns a copy of the error handlers of action, in registration order.
func (r *Registry) ErrorHandlersOf(action domain.ActionID) []domain.ErrorHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.errors[action])
}

// Actions lists, in lexical order, every action that has at least one subscription of any kind.
func (r *Registry) Actions() []domain.ActionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[domain.ActionID]struct{})
	for a, l := range r.observers {
		if len(l) > 0 {
			seen[a] = struct{}{}
		}
	}
	for a, l := range r.transformers {
		if len(l) > 0 {
			seen[a] = struct{}{}
		}
	}
	for a, l := range r.errors {
		if len(l) > 0 {
			seen[a] = struct{}{}
		}
	}

	out := make([]domain.ActionID, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
