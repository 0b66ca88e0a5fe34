package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"campus-canteen/internal/domain"
	"campus-canteen/internal/service"

	"github.com/segmentio/kafka-go"
)

var _ service.OrderPublisher = (*KafkaPublisher)(nil)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}
