/*
Package dispatch resolves and invokes the subscriptions of an action.

A data dispatch folds the payload through the transformers of the action, in registration order, and
hands the result to the observers of the action: to the first one only, or to all of them. An error
dispatch hands the error to every error handler, without any transformation.

Everything runs synchronously on the caller's goroutine. Each list is copied before it is iterated, so
callbacks may subscribe or unsubscribe while a dispatch is in flight without affecting it.

# Callback failures

A panicking callback aborts the rest of the dispatch and the panic reaches the caller of DispatchData.
WithRecovery changes that: the panic is recovered, the remaining deliveries are still skipped, and the
failure is sent as domain.ErrCallbackPanic to the error channel of the action (domain.ErrorAction).
*/
package dispatch
