package domain

// Person is the record held by the people feature.
type Person struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

var (
	// PeopleActions are the collection-level actions of the people feature.
	PeopleActions = ActionsFor("PEOPLE")
	// PersonActions are the record-level actions of the people feature.
	PersonActions = ActionsFor("PERSON")
)

// ActionPeopleError is the error channel of PEOPLE.ALL.ACTION.
// The name predates the <ACTION>_ERROR_ACTION convention and is kept as is.
const ActionPeopleError ActionID = "PEOPLE_ERROR_ALL_ACTION"
