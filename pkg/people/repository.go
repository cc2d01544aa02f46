package people

import (
	"slices"
	"sync"

	"github.com/aretw0/relay/pkg/domain"
	"github.com/google/uuid"
)

// Repository is the ordered in-memory collection of people.
// Safe for concurrent use.
type Repository struct {
	mu     sync.RWMutex
	people []domain.Person
}

// NewRepository creates a repository holding a copy of people.
func NewRepository(people ...domain.Person) *Repository {
	return &Repository{people: slices.Clone(people)}
}

// Seed returns the default people list.
func Seed() []domain.Person {
	return []domain.Person{
		{ID: uuid.NewString(), Name: "David"},
		{ID: uuid.NewString(), Name: "Giannis"},
		{ID: uuid.NewString(), Name: "Fabio"},
	}
}

// All returns a copy of the list, in order.
func (r *Repository) All() []domain.Person {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.people)
}

// Len returns the number of people.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.people)
}

// Get returns the person with id.
func (r *Repository) Get(id string) (domain.Person, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := slices.IndexFunc(r.people, func(p domain.Person) bool { return p.ID == id })
	if i < 0 {
		return domain.Person{}, false
	}
	return r.people[i], true
}

// Update replaces every entry with p's id by p, keeping its position.
// It reports whether anything matched; unknown ids are not inserted.
func (r *Repository) Update(p domain.Person) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for i := range r.people {
		if r.people[i].ID == p.ID {
			r.people[i] = p
			found = true
		}
	}
	return found
}

// Delete removes every entry with id and reports whether anything was removed.
func (r *Repository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.people)
	r.people = slices.DeleteFunc(r.people, func(p domain.Person) bool { return p.ID == id })
	return len(r.people) != n
}

// Add appends p, giving it a new id if it has none.
func (r *Repository) Add(p domain.Person) domain.Person {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.people = append(r.people, p)
	return p
}

// Create appends a new person named name.
func (r *Repository) Create(name string) domain.Person {
	return r.Add(domain.Person{Name: name})
}
