package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notifyconsole/config"
	"notifyconsole/internal/domain/constants"
	"notifyconsole/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.DispatchEvent {
	queued := 4

	return &service.DispatchEvent{
		RequestID:   "req-1",
		DispatchID:  "d-1",
		Audience:    "bulk",
		Messenger:   "mail",
		Query:       "messenger_type=mail&text=hi",
		Status:      "accepted",
		QueuedCount: &queued,
		OccurredAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var (
		push      PushMessage
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&push)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishDispatchEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, push.Subscription)
	assert.Equal(t, "d-1", push.Message.MessageID)
	assert.Equal(t, "2025-03-01T12:00:00Z", push.Message.PublishTime)
	assert.Equal(t, map[string]string{
		"dispatch_id":    "d-1",
		"audience":       "bulk",
		"messenger_type": "mail",
		"status":         "accepted",
		"request_id":     "req-1",
	}, push.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)

	var event service.DispatchEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "messenger_type=mail&text=hi", event.Query)
	require.NotNil(t, event.QueuedCount)
	assert.Equal(t, 4, *event.QueuedCount)
}

func TestLocalHTTPPublisher_NonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishDispatchEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "500")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "unconfigured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "pubsub.localEndpoint must be set"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "pubsub.projectId and pubsub.topicId must be set"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: `(got "p", "")`},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: `audit publisher "kafka": unsupported provider`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishDispatchEvent(context.Background(), sampleEvent()))
	assert.NoError(t, publisher.Close())
}
