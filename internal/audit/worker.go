package audit

import "context"

// Worker consumes audit events from an inbox and delivers them until the
// inbox closes or the context is cancelled. Delivery is best-effort: a
// failed append must never stall the events queued behind it.
type Worker struct {
	deliver func(context.Context, Event) error
	inbox   <-chan Event
}

// NewWorker builds a worker that persists every inbox event to the store.
// The Publisher uses a worker internally for its async mode; standalone
// workers suit callers that manage their own event channel.
func NewWorker(store Store, inbox <-chan Event) *Worker {
	return &Worker{deliver: store.Append, inbox: inbox}
}

// Run blocks until the inbox is closed (nil) or ctx is cancelled (the
// context error).
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			_ = w.deliver(ctx, event)
		}
	}
}
