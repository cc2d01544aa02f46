package ports

import "github.com/aretw0/relay/pkg/domain"

// ActionDispatcher defines how payloads and errors reach subscribers.
type ActionDispatcher interface {
	// Dispatch delivers payload to every observer of action, after its transformers ran.
	Dispatch(action domain.ActionID, payload any)

	// DispatchFirst delivers payload to the earliest registered observer of action only.
	DispatchFirst(action domain.ActionID, payload any)

	// DispatchError delivers err to every error handler of action.
	DispatchError(action domain.ActionID, err error)
}
