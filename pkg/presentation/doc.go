/*
Package presentation routes navigation requests to exactly one coordinator.

A feature that wants another feature shown does not call it. It builds a domain.Envelope naming the
target action and hands it to Router.Coordinate. The envelope travels through the reserved PRESENT
action, which only ever has one observer. The router's handler unwraps the envelope and broadcasts
its payload on the target action, where the feature's presentor (see Present) picks it up.

A navigation request goes Idle, Dispatched(PRESENT), Decoded, Re-dispatched(target), Idle, all on the
caller's goroutine.
*/
package presentation
