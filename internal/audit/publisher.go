package audit

import (
	"context"

	"github.com/google/uuid"

	"unify/pkg/requestcontext"
)

// Store persists audit events. Append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}

// Sink forwards audit events to an external system (e.g. Kafka). Sinks are
// best-effort: a sink failure never fails the run that emitted the event.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
	sink  Sink
	inbox chan Event
	done  chan struct{}
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithSink attaches a best-effort external sink.
func WithSink(sink Sink) PublisherOption {
	return func(p *Publisher) { p.sink = sink }
}

// WithAsyncBuffer makes Emit non-blocking through a buffered channel drained
// by a background worker. Events are dropped when the buffer is full.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) { p.inbox = make(chan Event, size) }
}

func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.inbox != nil {
		p.done = make(chan struct{})
		worker := &Worker{deliver: p.deliver, inbox: p.inbox}
		go func() {
			defer close(p.done)
			_ = worker.Run(context.Background())
		}()
	}
	return p
}

// Emit records one event, stamping ID, timestamp and request correlation
// when absent.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if p.inbox == nil {
		return p.deliver(ctx, event)
	}

	select {
	case p.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Buffer full: audit must not block generation.
		return nil
	}
}

func (p *Publisher) List(ctx context.Context) ([]Event, error) {
	return p.store.List(ctx)
}

// Close drains any buffered events and stops the background worker.
func (p *Publisher) Close() {
	if p.inbox == nil {
		return
	}
	close(p.inbox)
	<-p.done
}

func (p *Publisher) deliver(ctx context.Context, event Event) error {
	if p.sink != nil {
		_ = p.sink.Publish(ctx, event)
	}
	return p.store.Append(ctx, event)
}
