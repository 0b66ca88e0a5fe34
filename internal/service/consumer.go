package service

import (
	"context"
	"encoding/json"
	"log"

	"campus-canteen/internal/domain"

	"github.com/segmentio/kafka-go"
)

// CounterBoardConsumer follows the orders topic and keeps the per-counter
// open-order load current: created orders add load, completed ones remove it.
type CounterBoardConsumer struct {
	reader *kafka.Reader
	store  CounterLoadStore
}

func NewCounterBoardConsumer(reader *kafka.Reader, store CounterLoadStore) *CounterBoardConsumer {
	return &CounterBoardConsumer{reader: reader, store: store}
}

func (c *CounterBoardConsumer) Start(ctx context.Context) {
	log.Println("Starting counter board consumer...")
	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling order event: %v", err)
			continue
		}

		c.Process(event)
	}
}

func (c *CounterBoardConsumer) Process(event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderCreated:
		if err := c.store.AddOpenOrder(event.CounterNo); err != nil {
			log.Printf("Error adding open order for counter %d: %v", event.CounterNo, err)
		}
	case domain.EventOrderCompleted:
		if err := c.store.CloseOpenOrder(event.CounterNo); err != nil {
			log.Printf("Error closing open order for counter %d: %v", event.CounterNo, err)
		}
	default:
		log.Printf("Skipping unknown event type %q", event.Type)
	}
}
