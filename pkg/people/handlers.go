package people

import (
	"log/slog"

	"github.com/aretw0/relay/internal/logging"
	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/ports"
)

// Option configures Register.
type Option func(*handlers)

// WithLogger configures a logger for the people handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(h *handlers) {
		if logger != nil {
			h.logger = logger
		}
	}
}

type handlers struct {
	bus    ports.Bus
	repo   *Repository
	logger *slog.Logger
}

// Register subscribes the handlers answering the people actions:
//
//	PEOPLE.GET_ALL.ACTION  sends the whole list on PEOPLE.ALL.ACTION
//	PERSON.UPDATE.ACTION   replaces a person by id
//	PERSON.DELETE.ACTION   removes a person by id
//	PERSON.CREATE.ACTION   appends a person
//
// Payloads that do not decode to a Person are ignored.
func Register(bus ports.Bus, repo *Repository, opts ...Option) {
	h := &handlers{bus: bus, repo: repo, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(h)
	}

	bus.Subscribe(domain.PeopleActions.GetAll, h.sendAll)
	bus.Subscribe(domain.PersonActions.Update, h.update)
	bus.Subscribe(domain.PersonActions.Delete, h.delete)
	bus.Subscribe(domain.PersonActions.Create, h.create)
}

func (h *handlers) sendAll(any) {
	data, err := codec.Encode(h.bus.Codec(), h.repo.All())
	if err != nil {
		h.bus.DispatchError(domain.ActionPeopleError, err)
		return
	}
	h.bus.Dispatch(domain.PeopleActions.All, data)
}

func (h *handlers) update(payload any) {
	p, ok := codec.Decode[domain.Person](h.bus.Codec(), payload)
	if !ok {
		return
	}
	if !h.repo.Update(p) {
		h.logger.Debug("Update of unknown person ignored", "id", p.ID)
	}
}

func (h *handlers) delete(payload any) {
	p, ok := codec.Decode[domain.Person](h.bus.Codec(), payload)
	if !ok {
		return
	}
	h.repo.Delete(p.ID)
}

func (h *handlers) create(payload any) {
	p, ok := codec.Decode[domain.Person](h.bus.Codec(), payload)
	if !ok {
		return
	}
	created := h.repo.Add(p)
	h.logger.Debug("Person created", "id", created.ID)
}
