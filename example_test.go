package relay_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/relay"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/presentation"
)

// ExampleStore_Dispatch shows a transformer pipeline feeding two observers.
func ExampleStore_Dispatch() {
	store := relay.New()

	store.SubscribeTransformer("GREET.ACTION", "upper", func(p any) any {
		return strings.ToUpper(p.(string))
	})
	store.SubscribeTransformer("GREET.ACTION", "bang", func(p any) any {
		return p.(string) + "!"
	})
	store.Subscribe("GREET.ACTION", func(p any) { fmt.Println("first:", p) })
	store.Subscribe("GREET.ACTION", func(p any) { fmt.Println("second:", p) })

	store.Dispatch("GREET.ACTION", "hello")
	store.DispatchFirst("GREET.ACTION", "once")
	// Output:
	// first: HELLO!
	// second: HELLO!
	// first: ONCE!
}

// ExampleStore_Coordinate shows a navigation request reaching the presentor of its target action.
func ExampleStore_Coordinate() {
	store := relay.New()

	presentation.Present(store, domain.PersonActions.Detail, func(p domain.Person) {
		fmt.Printf("showing %s\n", p.Name)
	})

	item, _ := store.Codec().Encode(domain.Person{ID: "p1", Name: "David"})
	store.Coordinate(domain.Envelope{
		Locator: "app://people",
		Payload: item,
		Action:  domain.PersonActions.Detail,
		Mode:    domain.ModeModal,
	})
	// Output:
	// showing David
}

// ExampleStore_DispatchError shows error handlers registered by id.
func ExampleStore_DispatchError() {
	store := relay.New()
	action := domain.ErrorAction("SAVE.ACTION")

	store.SubscribeError(action, "log", func(err error) { fmt.Println("log:", err) })
	store.SubscribeError(action, "toast", func(err error) { fmt.Println("toast:", err) })
	store.SubscribeError(action, "log", func(err error) { fmt.Println("log again:", err) })

	fmt.Println(action)
	store.DispatchError(action, errors.New("disk full"))
	// Output:
	// SAVE_ERROR_ACTION
	// toast: disk full
	// log again: disk full
}
