package observability

import (
	"slices"
	"sync"

	"github.com/aretw0/relay/pkg/domain"
)

// Trace records lifecycle events in arrival order.
type Trace struct {
	mu     sync.Mutex
	events []domain.DispatchEvent
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// Hooks returns lifecycle hooks that append every event to the trace.
func (t *Trace) Hooks() domain.LifecycleHooks {
	record := func(e *domain.DispatchEvent) {
		t.mu.Lock()
		t.events = append(t.events, *e)
		t.mu.Unlock()
	}
	return domain.LifecycleHooks{
		OnDispatch:  record,
		OnTransform: record,
		OnDeliver:   record,
		OnError:     record,
		OnDrop:      record,
	}
}

// Events returns a copy of the recorded events.
func (t *Trace) Events() []domain.DispatchEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.events)
}

// Of returns the recorded events of type typ.
func (t *Trace) Of(typ domain.EventType) []domain.DispatchEvent {
	var out []domain.DispatchEvent
	for _, e := range t.Events() {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops the recorded events.
func (t *Trace) Reset() {
	t.mu.Lock()
	t.events = nil
	t.mu.Unlock()
}
