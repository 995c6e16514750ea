package repository

import (
	"context"

	"notifyconsole/internal/domain/audience"
)

// NotificationRepository hands dispatches to the backend. Each method returns
// the backend's acknowledgement; failures are domain errors (rejected or
// transport).
type NotificationRepository interface {
	// SendSingle sends to one user and returns the backend's message.
	SendSingle(ctx context.Context, params audience.Params) (string, error)

	// SendBulk queues a send to every matching user and returns how many were queued.
	SendBulk(ctx context.Context, params audience.Params) (int, error)

	// SendChannel posts to the messenger's broadcast channel and returns the backend's message.
	SendChannel(ctx context.Context, params audience.Params) (string, error)
}
