/*
Package relay is an in-process action store: a publish/subscribe/transform registry keyed by action
identifiers, used to decouple features from each other and from navigation.

# Concept

Features never call each other. They subscribe callbacks to actions and dispatch payloads on actions.
An action carries three kinds of subscription:

  - Observers receive the payload. They are called in registration order.
  - Transformers rewrite the payload before observers see it. They are identified, and registering an
    existing identifier replaces the old transformer and moves it to the end of the pipeline.
  - Error handlers receive errors dispatched on the action. They are identified the same way.

Navigation is a convention on top of that: an Envelope is dispatched on the reserved PRESENT action,
which has exactly one observer, the router. The router unwraps it and re-dispatches the payload under
the action named in the envelope.

Dispatch is synchronous. Every callback has run by the time Dispatch returns.

# Usage

	package main

	import (
		"fmt"
		"strings"

		"github.com/aretw0/relay"
	)

	func main() {
		store := relay.New()

		store.SubscribeTransformer("GREET", "upper", func(p any) any {
			return strings.ToUpper(p.(string))
		})
		store.Subscribe("GREET", func(p any) {
			fmt.Println(p)
		})

		store.Dispatch("GREET", "hello") // HELLO
	}

The bundled people feature (package people) shows a complete consumer, including presentation.
*/
package relay
