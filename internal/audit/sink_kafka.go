package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"unify/internal/platform/kafka"
)

// KafkaSink publishes audit events to a Kafka topic as JSON, keyed by the
// selection fingerprint so one run's events land in one partition.
type KafkaSink struct {
	producer *kafka.Producer
}

func NewKafkaSink(producer *kafka.Producer) *KafkaSink {
	return &KafkaSink{producer: producer}
}

func (s *KafkaSink) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return s.producer.Produce(ctx, []byte(event.SelectionKey), payload)
}
