package people

import (
	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/ports"
	"github.com/aretw0/relay/pkg/presentation"
)

// Locator is the feature locator carried by envelopes coming from the people list.
const Locator = "app://people"

// Persist dispatches p on PERSON.UPDATE.ACTION.
func Persist(bus ports.Bus, p domain.Person) {
	send(bus, domain.PersonActions.Update, p)
}

// Remove dispatches p on PERSON.DELETE.ACTION.
func Remove(bus ports.Bus, p domain.Person) {
	send(bus, domain.PersonActions.Delete, p)
}

// Create dispatches a new person named name on PERSON.CREATE.ACTION.
func Create(bus ports.Bus, name string) {
	send(bus, domain.PersonActions.Create, domain.Person{Name: name})
}

// send encodes p and dispatches it, or reports the encode failure on the action's error channel.
func send(bus ports.Bus, action domain.ActionID, p domain.Person) {
	data, err := codec.Encode(bus.Codec(), p)
	if err != nil {
		bus.DispatchError(domain.ErrorAction(action), err)
		return
	}
	bus.Dispatch(action, data)
}

// Select asks the coordinator to show the detail of p.
func Select(bus ports.Bus, c ports.Coordinator, p domain.Person, mode domain.DeliveryMode) {
	data, err := codec.Encode(bus.Codec(), p)
	if err != nil {
		bus.DispatchError(domain.ErrorAction(domain.PersonActions.Detail), err)
		return
	}
	c.Coordinate(domain.Envelope{
		Locator: Locator,
		Payload: data,
		Action:  domain.PersonActions.Detail,
		Mode:    mode,
	})
}

// RegisterDetail installs fn as the presentor of PERSON.DETAIL.ACTION.
func RegisterDetail(bus ports.Bus, fn func(domain.Person)) {
	presentation.Present(bus, domain.PersonActions.Detail, fn)
}

// Flows describes which actions the feature dispatches in reaction to which.
func Flows() []domain.Flow {
	return []domain.Flow{
		{From: domain.PeopleActions.GetAll, To: domain.PeopleActions.All, Label: "send all"},
		{From: domain.PeopleActions.All, To: domain.ActionPeopleError, Label: "decode failure", Error: true},
		{From: domain.ActionPresent, To: domain.PersonActions.Detail, Label: "route"},
		{From: domain.PersonActions.Detail, To: domain.PersonActions.Update, Label: "edit"},
	}
}
