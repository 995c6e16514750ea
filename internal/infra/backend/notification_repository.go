package backend

import (
	"context"
	"net/http"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/infra/backend/model"
)

type notificationRepository struct {
	client *Client
}

// NewNotificationRepository creates the backend dispatch gateway
func NewNotificationRepository(client *Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) SendSingle(ctx context.Context, params audience.Params) (string, error) {
	var reply model.ManualSendReply
	if err := r.send(ctx, "/notifications/send-manual", params, &reply); err != nil {
		return "", err
	}

	return reply.Message, nil
}

func (r *notificationRepository) SendBulk(ctx context.Context, params audience.Params) (int, error) {
	var reply model.BulkSendReply
	if err := r.send(ctx, "/notifications/send-bulk", params, &reply); err != nil {
		return 0, err
	}

	return reply.QueuedCount, nil
}

func (r *notificationRepository) SendChannel(ctx context.Context, params audience.Params) (string, error) {
	var reply model.ChannelSendReply
	if err := r.send(ctx, "/notifications/send-channel", params, &reply); err != nil {
		return "", err
	}

	return reply.Message, nil
}

// send posts with all inputs in the query string and no body.
func (r *notificationRepository) send(ctx context.Context, path string, params audience.Params, out any) error {
	return r.client.do(ctx, call{
		method: http.MethodPost,
		route:  path,
		path:   path,
		query:  params,
	}, out)
}
