package domain

import "strings"

// ActionID names a category of event. Two identifiers are equal only if their strings match exactly.
type ActionID string

func (a ActionID) String() string { return string(a) }

// Reserved action identifiers.
const (
	// ActionPresent is the single-subscriber channel used to route navigation requests.
	// Payload: encoded Envelope
	ActionPresent ActionID = "PRESENT"
)

// errorSuffix is appended to an action to build its error channel.
const errorSuffix = "_ERROR_ACTION"

// ErrorAction returns the error channel for action, following the <ACTION>_ERROR_ACTION convention.
// Dots are flattened so that "PERSON.UPDATE.ACTION" maps to "PERSON_UPDATE_ERROR_ACTION".
func ErrorAction(action ActionID) ActionID {
	base := strings.TrimSuffix(string(action), ".ACTION")
	base = strings.TrimSuffix(base, "_ACTION")
	return ActionID(strings.ReplaceAll(base, ".", "_") + errorSuffix)
}

// EntityActions holds the conventional action identifiers of one entity.
type EntityActions struct {
	GetAll ActionID
	All    ActionID
	Update ActionID
	Delete ActionID
	Detail ActionID
	Create ActionID
}

// ActionsFor builds the "<ENTITY>.<VERB>.ACTION" identifiers for entity.
// The entity name is upper-cased.
func ActionsFor(entity string) EntityActions {
	e := strings.ToUpper(entity)
	verb := func(v string) ActionID { return ActionID(e + "." + v + ".ACTION") }
	return EntityActions{
		GetAll: verb("GET_ALL"),
		All:    verb("ALL"),
		Update: verb("UPDATE"),
		Delete: verb("DELETE"),
		Detail: verb("DETAIL"),
		Create: verb("CREATE"),
	}
}
