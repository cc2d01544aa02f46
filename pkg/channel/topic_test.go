package channel_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/relay"
	"github.com/aretw0/relay/pkg/channel"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_TypedPipeline(t *testing.T) {
	store := relay.New()
	topic := channel.NewTopic[domain.Person](store, domain.PersonActions.Update)

	topic.Transform("trim", func(p domain.Person) domain.Person {
		p.Name = strings.TrimSpace(p.Name)
		return p
	})
	topic.Transform("upper", func(p domain.Person) domain.Person {
		p.Name = strings.ToUpper(p.Name)
		return p
	})

	var got []domain.Person
	topic.Subscribe(func(p domain.Person) { got = append(got, p) })

	topic.Dispatch(domain.Person{ID: "p1", Name: "  david "})
	store.Dispatch(topic.Action(), []byte(`{"id":"p2","name":" fabio"}`))

	require.Len(t, got, 2)
	assert.Equal(t, "DAVID", got[0].Name)
	assert.Equal(t, "FABIO", got[1].Name)

	topic.RemoveTransform("upper")
	topic.Dispatch(domain.Person{ID: "p3", Name: " giannis "})
	assert.Equal(t, "giannis", got[2].Name)
}

func TestTopic_ForeignPayloads(t *testing.T) {
	store := relay.New()
	topic := channel.NewTopic[domain.Person](store, "PERSON.ANY.ACTION")

	var typed int
	var raw []any
	topic.Transform("t", func(p domain.Person) domain.Person { return p })
	topic.Subscribe(func(domain.Person) { typed++ })
	store.Subscribe(topic.Action(), func(p any) { raw = append(raw, p) })

	store.Dispatch(topic.Action(), 42)

	assert.Zero(t, typed)
	assert.Equal(t, []any{42}, raw, "transformers pass foreign payloads through")
}

func TestTopic_FirstAndErrors(t *testing.T) {
	store := relay.New()
	topic := channel.NewTopic[int](store, "COUNT.ACTION")

	var a, b int
	topic.Subscribe(func(v int) { a += v })
	topic.Subscribe(func(v int) { b += v })
	topic.DispatchFirst(5)
	assert.Equal(t, 5, a)
	assert.Zero(t, b)

	var got error
	topic.OnError("e", func(err error) { got = err })
	boom := errors.New("boom")
	topic.Fail(boom)
	assert.ErrorIs(t, got, boom)
}

func TestTopic_Declare(t *testing.T) {
	cat := domain.NewCatalog()
	store := relay.New(relay.WithCatalog(cat))
	topic := channel.NewTopic[int](store, "COUNT.ACTION").Declare(cat)

	var got []int
	topic.Subscribe(func(v int) { got = append(got, v) })

	store.Dispatch(topic.Action(), "seven")
	topic.Dispatch(7)

	assert.Equal(t, []int{7}, got)
}
