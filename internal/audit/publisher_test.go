package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unify/pkg/requestcontext"
)

type recordingSink struct {
	events []Event
	err    error
}

func (s *recordingSink) Publish(_ context.Context, event Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func TestPublisher_SyncMode(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), Event{
		Action:       ActionGenerateAll,
		SelectionKey: "iso27001;cisControls[ig1]",
		Categories:   []string{"asset-management"},
		Generated:    1,
		TotalItems:   4,
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ActionGenerateAll, events[0].Action)
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for range 10 {
		err := pub.Emit(context.Background(), Event{Action: ActionGenerate})
		require.NoError(t, err)
	}

	pub.Close()

	events, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_AsyncDeliversToSink(t *testing.T) {
	// The async worker forwards to the sink and the store, same as sync mode.
	store := NewInMemoryStore()
	sink := &recordingSink{}
	pub := NewPublisher(store, WithSink(sink), WithAsyncBuffer(8))

	require.NoError(t, pub.Emit(context.Background(), Event{Action: ActionGenerate}))
	pub.Close()

	require.Len(t, sink.events, 1)
	events, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPublisher_StampsFromRequestContext(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), fixed)
	ctx = requestcontext.WithRequestID(ctx, "req-123")

	require.NoError(t, pub.Emit(ctx, Event{Action: ActionGenerate}))

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fixed, events[0].Timestamp)
	assert.Equal(t, "req-123", events[0].RequestID)
}

func TestPublisher_PreservesExistingTimestamp(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	customTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, pub.Emit(context.Background(), Event{
		Action:    ActionGenerate,
		Timestamp: customTime,
	}))

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, customTime, events[0].Timestamp)
}

func TestPublisher_SinkReceivesEvents(t *testing.T) {
	store := NewInMemoryStore()
	sink := &recordingSink{}
	pub := NewPublisher(store, WithSink(sink))
	defer pub.Close()

	require.NoError(t, pub.Emit(context.Background(), Event{Action: ActionGenerateAll}))

	require.Len(t, sink.events, 1)
	assert.Equal(t, ActionGenerateAll, sink.events[0].Action)
}

func TestPublisher_SinkFailureDoesNotFailEmit(t *testing.T) {
	store := NewInMemoryStore()
	sink := &recordingSink{err: errors.New("broker unreachable")}
	pub := NewPublisher(store, WithSink(sink))
	defer pub.Close()

	err := pub.Emit(context.Background(), Event{Action: ActionGenerate})
	require.NoError(t, err)

	events, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1, "store append proceeds despite sink failure")
}
