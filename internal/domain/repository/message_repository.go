package repository

import (
	"context"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
)

// MessageRepository reads the backend's sent-message log.
type MessageRepository interface {
	// ListByUser returns messages sent to one user, oldest first.
	ListByUser(ctx context.Context, userID int64, window audience.Window) ([]*entity.MessageLog, error)
}
