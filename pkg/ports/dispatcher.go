package ports

import (
	"context"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// IntentDispatcher defines how run/stop/add side effects leave the engine.
// The engine emits intents and returns immediately; the host implements
// this interface and forwards them to the real executor or persistence
// layer. Dispatch errors are logged, not surfaced to the user: an intent
// that never acknowledges is recovered only by an explicit stop.
type IntentDispatcher interface {
	Dispatch(ctx context.Context, req domain.IntentRequest) error
}

// DispatchFunc adapts a function to the IntentDispatcher interface.
type DispatchFunc func(ctx context.Context, req domain.IntentRequest) error

// Dispatch implements IntentDispatcher.
func (f DispatchFunc) Dispatch(ctx context.Context, req domain.IntentRequest) error {
	return f(ctx, req)
}
