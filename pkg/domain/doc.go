/*
Package domain contains the core types shared by every part of relay.

It defines the vocabulary of the action store: action identifiers, the callback shapes that can be
subscribed to an action, the presentation envelope and the people records used by the bundled feature.
This package is kept free of I/O and of any dependency on the registry or dispatcher.

# Key Entities

  - ActionID: An exact-match string naming a category of event.
  - Observer, Transformer, ErrorHandler: The three kinds of subscription an action can carry.
  - Envelope: A navigation request routed through the reserved PRESENT channel.
  - Catalog: A static table of action identifiers and the payload shape each one expects.
  - LifecycleHooks: Callbacks fired while a dispatch is resolved and delivered.
*/
package domain
