/*
Package ports defines the interfaces collaborators of the action store depend on.

Features never hold the concrete store. They receive a Bus, which lets tests hand them an isolated
instance and keeps the dependency pointing inward.

# Key Interfaces

  - Subscriber: Registration of observers, transformers and error handlers.
  - ActionDispatcher: Data and error dispatch.
  - Bus: Both of the above plus the codec used at the edges.
  - Coordinator: Entry point of the presentation channel.

Implementations can be checked with the reusable suite in the tests subpackage:

	contract.BusContractTest(t, func() ports.Bus { return relay.New() })
*/
package ports
