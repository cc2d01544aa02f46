package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventDispatch  EventType = "dispatch"
	EventTransform EventType = "transform"
	EventDeliver   EventType = "deliver"
	EventError     EventType = "error"
	EventDrop      EventType = "drop"
)

// Drop reasons reported through EventDrop.
const (
	DropNoObservers = "no_observers"
	DropDecode      = "decode"
	DropMismatch    = "mismatch"
	DropPanic       = "panic"
)

// DispatchEvent describes one step of a dispatch.
type DispatchEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Action    ActionID  `json:"action"`
	// HandlerID is set for transformer and error handler steps.
	HandlerID string `json:"handler_id,omitempty"`
	// Index is the position of the callback in its snapshot.
	Index int `json:"index"`
	// First is set when the dispatch delivers to the first observer only.
	First  bool   `json:"first,omitempty"`
	Reason string `json:"reason,omitempty"`
	Err    error  `json:"-"`
}

// NewEvent stamps a DispatchEvent with the current time.
func NewEvent(t EventType, action ActionID) *DispatchEvent {
	return &DispatchEvent{Timestamp: time.Now(), Type: t, Action: action}
}

// LifecycleHooks defines callbacks for dispatch observability.
// Any of them may be nil.
type LifecycleHooks struct {
	OnDispatch  func(*DispatchEvent)
	OnTransform func(*DispatchEvent)
	OnDeliver   func(*DispatchEvent)
	OnError     func(*DispatchEvent)
	OnDrop      func(*DispatchEvent)
}

// Fire calls the hook matching e.Type, if set.
func (h LifecycleHooks) Fire(e *DispatchEvent) {
	var fn func(*DispatchEvent)
	switch e.Type {
	case EventDispatch:
		fn = h.OnDispatch
	case EventTransform:
		fn = h.OnTransform
	case EventDeliver:
		fn = h.OnDeliver
	case EventError:
		fn = h.OnError
	case EventDrop:
		fn = h.OnDrop
	}
	if fn != nil {
		fn(e)
	}
}
