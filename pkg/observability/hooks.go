package observability

import (
	"log/slog"

	"github.com/aretw0/relay/pkg/domain"
)

// DebugHooks logs every lifecycle event at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			logger.Debug("Dispatch", "action", e.Action, "first", e.First)
		},
		OnTransform: func(e *domain.DispatchEvent) {
			logger.Debug("Transform", "action", e.Action, "transformer_id", e.HandlerID, "index", e.Index)
		},
		OnDeliver: func(e *domain.DispatchEvent) {
			logger.Debug("Deliver", "action", e.Action, "index", e.Index)
		},
		OnError: func(e *domain.DispatchEvent) {
			logger.Debug("Error Handler", "action", e.Action, "handler_id", e.HandlerID, "err", e.Err)
		},
		OnDrop: func(e *domain.DispatchEvent) {
			logger.Debug("Drop", "action", e.Action, "reason", e.Reason, "err", e.Err)
		},
	}
}

// Combine returns hooks that call each of hooks in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	fire := func(e *domain.DispatchEvent) {
		for _, h := range hooks {
			h.Fire(e)
		}
	}
	return domain.LifecycleHooks{
		OnDispatch:  fire,
		OnTransform: fire,
		OnDeliver:   fire,
		OnError:     fire,
		OnDrop:      fire,
	}
}
