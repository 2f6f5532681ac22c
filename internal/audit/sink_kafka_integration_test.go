//go:build integration

package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"unify/internal/platform/kafka"
	"unify/pkg/testutil/containers"
)

func TestKafkaSink_PublishesEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	broker := containers.NewRedpandaContainer(t)
	const topic = "unify.audit"

	producer, err := kafka.NewProducer(broker.Brokers, topic)
	require.NoError(t, err)
	defer producer.Close()

	sink := NewKafkaSink(producer)
	event := Event{
		ID:           "e1",
		Action:       ActionGenerateAll,
		SelectionKey: "iso27001;cisControls[ig1]",
		Categories:   []string{"asset-management"},
		Generated:    1,
		TotalItems:   3,
		Timestamp:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, sink.Publish(context.Background(), event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())
	records := fetches.Records()
	require.Len(t, records, 1)

	require.Equal(t, event.SelectionKey, string(records[0].Key))

	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, event, got)
}
