package backend

import (
	"context"
	"net/http"
	"strconv"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/infra/backend/model"
)

type messageRepository struct {
	client *Client
}

// NewMessageRepository creates a backend-backed message log repository
func NewMessageRepository(client *Client) repository.MessageRepository {
	return &messageRepository{client: client}
}

func (r *messageRepository) ListByUser(ctx context.Context, userID int64, window audience.Window) ([]*entity.MessageLog, error) {
	query := append(windowParams(window), audience.Param{Key: "user_id", Value: strconv.FormatInt(userID, 10)})

	var rows []model.MessageModel
	err := r.client.do(ctx, call{
		method: http.MethodGet,
		route:  "/messengers/messages",
		path:   "/messengers/messages",
		query:  query,
	}, &rows)
	if err != nil {
		return nil, err
	}

	messages := make([]*entity.MessageLog, 0, len(rows))
	for i := range rows {
		messages = append(messages, rows[i].ToEntity())
	}

	return messages, nil
}
