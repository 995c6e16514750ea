package service

import (
	"context"
	"time"
)

// DispatchEvent is the audit record published after every dispatch attempt
type DispatchEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	DispatchID  string    `json:"dispatch_id"`
	Audience    string    `json:"audience"`
	Messenger   string    `json:"messenger_type"`
	Query       string    `json:"query"` // Encoded backend parameters
	Status      string    `json:"status"`
	Code        string    `json:"code,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	QueuedCount *int      `json:"queued_count,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch audit event
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
