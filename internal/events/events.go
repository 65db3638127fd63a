// Package events publishes domain events to Redis streams.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event types.
const (
	TransferCreated = "transfer.created"
	UserRegistered  = "user.registered"
)

// Stream names.
const (
	TransferEventsStream = "transfer.events"
	UserEventsStream     = "user.events"
)

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// TransferCreatedEvent is emitted after a transfer is accepted.
type TransferCreatedEvent struct {
	TransactionID string  `json:"transactionId"`
	RecipientID   int     `json:"recipientId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Purpose       string  `json:"purpose"`
}

// UserRegisteredEvent is emitted after a successful signup.
type UserRegisteredEvent struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish appends the event to the named stream.
func (p *Publisher) Publish(ctx context.Context, stream, eventType string, data any) error {
	event := Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"event": eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
