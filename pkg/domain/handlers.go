package domain

// Observer receives the payload of a dispatched action.
// Observers have no identity and cannot be removed one by one.
type Observer func(payload any)

// TransformFunc maps a payload to the payload seen by the next transformer, and finally by observers.
// Returning the input unchanged is the way to leave a payload alone.
type TransformFunc func(payload any) any

// Transformer is an identified TransformFunc.
// An action holds at most one transformer per ID.
type Transformer struct {
	ID      string
	Handler TransformFunc
}

// ErrorFunc receives an error dispatched on an action.
type ErrorFunc func(err error)

// ErrorHandler is an identified ErrorFunc.
// An action holds at most one error handler per ID.
type ErrorHandler struct {
	ID      string
	Handler ErrorFunc
}
