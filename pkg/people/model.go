package people

import (
	"slices"

	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/ports"
)

// Model is the list view model. It only knows the bus, never the repository.
type Model struct {
	bus        ports.Bus
	items      []domain.Person
	pending    []func()
	subscribed bool
}

// NewModel creates a model showing items until the first Load.
func NewModel(bus ports.Bus, items ...domain.Person) *Model {
	return &Model{bus: bus, items: slices.Clone(items)}
}

// Len returns the number of rows.
func (m *Model) Len() int { return len(m.items) }

// Get returns the person shown at row i.
func (m *Model) Get(i int) domain.Person { return m.items[i] }

// Items returns a copy of the rows.
func (m *Model) Items() []domain.Person { return slices.Clone(m.items) }

// Load requests the list and calls done once it arrived.
//
// The model subscribes to PEOPLE.ALL.ACTION on its first Load only, since observers cannot be removed.
// A list that does not decode is reported on PEOPLE_ERROR_ALL_ACTION; the rows and the pending done
// callbacks are kept until a list decodes.
func (m *Model) Load(done func()) {
	if !m.subscribed {
		m.bus.Subscribe(domain.PeopleActions.All, m.receive)
		m.subscribed = true
	}
	if done != nil {
		m.pending = append(m.pending, done)
	}
	m.bus.Dispatch(domain.PeopleActions.GetAll, domain.EmptyParams{})
}

func (m *Model) receive(payload any) {
	people, err := codec.DecodeErr[[]domain.Person](m.bus.Codec(), payload)
	if err != nil {
		m.bus.DispatchError(domain.ActionPeopleError, err)
		return
	}
	m.items = people

	pending := m.pending
	m.pending = nil
	for _, done := range pending {
		done()
	}
}
