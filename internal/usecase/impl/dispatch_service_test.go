package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"notifyconsole/config"
	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/domain/service"
	mockRepo "notifyconsole/internal/mocks/repository"
	mockSvc "notifyconsole/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchServiceFixtures struct {
	service          *dispatchService
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
	recorder         *mockSvc.MockDispatchRecorder
}

func createTestDispatchService(t *testing.T, cfg *config.Config) dispatchServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	recorder := mockSvc.NewMockDispatchRecorder(t)

	svc := NewDispatchService(DispatchServiceParams{
		NotificationRepo: notificationRepo,
		Publisher:        publisher,
		Recorder:         recorder,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	}).(*dispatchService)
	svc.now = func() time.Time { return time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC) }

	return dispatchServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		recorder:         recorder,
	}
}

// expectBookkeeping accepts the metrics and audit side effects of one Send
// and returns the published event.
func (fx dispatchServiceFixtures) expectBookkeeping(kind entity.AudienceKind, messenger entity.Channel) *service.DispatchEvent {
	event := &service.DispatchEvent{}

	fx.recorder.EXPECT().RecordOutcome(kind, messenger, mock.AnythingOfType("entity.DeliveryOutcome")).Return()
	fx.publisher.EXPECT().
		PublishDispatchEvent(mock.Anything, mock.AnythingOfType("*service.DispatchEvent")).
		RunAndReturn(func(_ context.Context, e *service.DispatchEvent) error {
			*event = *e

			return nil
		})

	return event
}

func TestDispatchService_Send_Single(t *testing.T) {
	fx := createTestDispatchService(t, newTestConfig())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	want := audience.BuildSingle(7, audience.Draft{Messenger: entity.ChannelMail, Text: "Quiz at 5", Link: "https://q.example/a b"})
	fx.notificationRepo.EXPECT().SendSingle(ctx, want).Return("Notification sent", nil)
	event := fx.expectBookkeeping(entity.AudienceSingle, entity.ChannelMail)

	outcome := fx.service.Send(ctx, entity.DispatchRequest{
		Messenger: entity.ChannelMail,
		Text:      "Quiz at 5",
		Link:      "https://q.example/a b",
		Audience:  entity.SingleAudience{UserID: 7},
	})

	assert.True(t, outcome.Accepted())
	assert.Equal(t, "Notification sent", outcome.Detail)
	assert.Nil(t, outcome.QueuedCount)

	assert.Equal(t, "req-42", event.RequestID)
	assert.NotEmpty(t, event.DispatchID)
	assert.Equal(t, "single", event.Audience)
	assert.Equal(t, "accepted", event.Status)
	assert.Equal(t, "user_id=7&messenger_type=mail&text=Quiz%20at%205&link=https%3A%2F%2Fq.example%2Fa%20b", event.Query)
	assert.Equal(t, time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC), event.OccurredAt)
}

func TestDispatchService_Send_SingleMissingTargetNoNetwork(t *testing.T) {
	fx := createTestDispatchService(t, newTestConfig())
	event := fx.expectBookkeeping(entity.AudienceSingle, entity.ChannelMail)

	outcome := fx.service.Send(context.Background(), entity.DispatchRequest{
		Messenger: entity.ChannelMail,
		Text:      "hi",
		Audience:  entity.SingleAudience{},
	})

	assert.Equal(t, entity.OutcomeRejected, outcome.Status)
	assert.Equal(t, domainerrors.CodeMissingTarget, outcome.Code)
	assert.Empty(t, event.Query)
	fx.notificationRepo.AssertNotCalled(t, "SendSingle", mock.Anything, mock.Anything)
}

func TestDispatchService_Send_MissingTargetBeforeTextCheck(t *testing.T) {
	fx := createTestDispatchService(t, newTestConfig())
	fx.expectBookkeeping(entity.AudienceSingle, entity.ChannelTelegram)

	outcome := fx.service.Send(context.Background(), entity.DispatchRequest{
		Messenger: entity.ChannelTelegram,
		Text:      "   ",
		Audience:  entity.SingleAudience{},
	})

	assert.Equal(t, entity.OutcomeRejected, outcome.Status)
	assert.Equal(t, domainerrors.CodeMissingTarget, outcome.Code)
	fx.notificationRepo.AssertNotCalled(t, "SendSingle", mock.Anything, mock.Anything)
}

func TestDispatchService_Send_Bulk(t *testing.T) {
	fx := createTestDispatchService(t, newTestConfig())
	ctx := context.Background()

	criteria, err := audience.Resolve(audience.Selections{Type: audience.TypeSpecific, PackageID: "3", Platform: "quizard"})
	require.NoError(t, err)

	var sent string
	fx.notificationRepo.EXPECT().SendBulk(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, params audience.Params) (int, error) {
			sent = params.Encode()

			return 128, nil
		})
	fx.expectBookkeeping(entity.AudienceBulk, entity.ChannelTelegram)

	outcome := fx.service.Send(ctx, entity.DispatchRequest{
		Messenger: entity.ChannelTelegram,
		Text:      "New round",
		Audience:  entity.BulkAudience{Criteria: criteria},
	})

	assert.True(t, outcome.Accepted())
	require.NotNil(t, outcome.QueuedCount)
	assert.Equal(t, 128, *outcome.QueuedCount)
	assert.Equal(t, "messenger_type=telegram&text=New%20round&has_subscription=true&subscription_id=3&quizard=true", sent)
}

func TestDispatchService_Send_BulkNoSubNeverSendsPackage(t *testing.T) {
	fx := createTestDispatchService(t, newTestConfig())
	ctx := context.Background()

	criteria, err := audience.Resolve(audience.Selections{Type: audience.TypeNoSub, PackageID: "3"})
	require.NoError(t, err)

	fx.notificationRepo.EXPECT().SendBulk(ctx, mock.MatchedBy(func(p audience.Params) bool {
		v, _ := p.Get("has_subscription")

		return v == "false" && !p.Has("subscription_id")
	})).Return(0, nil)
	fx.expectBookkeeping(entity.AudienceBulk, entity.ChannelMail)

	outcome := fx.service.Send(ctx, entity.DispatchRequest{
		Messenger: entity.ChannelMail,
		Text:      "hi",
		Audience:  entity.BulkAudience{Criteria: criteria},
	})

	assert.True(t, outcome.Accepted())
	assert.Equal(t, 0, *outcome.QueuedCount)
}

func TestDispatchService_Send_Channel(t *testing.T) {
	t.Run("default channel has no warning", func(t *testing.T) {
		fx := createTestDispatchService(t, newTestConfig())
		ctx := context.Background()

		fx.notificationRepo.EXPECT().SendChannel(ctx, audience.BuildChannel(audience.Draft{Messenger: entity.ChannelTelegram, Text: "hi"})).
			Return("Message sent to channel", nil)
		fx.expectBookkeeping(entity.AudienceChannel, entity.ChannelTelegram)

		outcome := fx.service.Send(ctx, entity.DispatchRequest{Messenger: entity.ChannelTelegram, Text: "hi", Audience: entity.ChannelAudience{}})

		assert.True(t, outcome.Accepted())
		assert.Empty(t, outcome.Warnings)
	})

	t.Run("other messenger warns but still sends", func(t *testing.T) {
		fx := createTestDispatchService(t, newTestConfig())
		ctx := context.Background()

		fx.notificationRepo.EXPECT().SendChannel(ctx, mock.Anything).Return("ok", nil)
		fx.expectBookkeeping(entity.AudienceChannel, entity.ChannelDiscord)

		outcome := fx.service.Send(ctx, entity.DispatchRequest{Messenger: entity.ChannelDiscord, Text: "hi", Audience: entity.ChannelAudience{}})

		assert.True(t, outcome.Accepted())
		require.Len(t, outcome.Warnings, 1)
		assert.Contains(t, outcome.Warnings[0], "discord")
	})

	t.Run("warning survives a rejection", func(t *testing.T) {
		fx := createTestDispatchService(t, newTestConfig())
		ctx := context.Background()

		fx.notificationRepo.EXPECT().SendChannel(ctx, mock.Anything).
			Return("", domainerrors.NewRejectedError(http.StatusBadRequest, "Channel not configured"))
		fx.expectBookkeeping(entity.AudienceChannel, entity.ChannelMail)

		outcome := fx.service.Send(ctx, entity.DispatchRequest{Messenger: entity.ChannelMail, Text: "hi", Audience: entity.ChannelAudience{}})

		assert.Equal(t, entity.OutcomeRejected, outcome.Status)
		assert.Equal(t, "Channel not configured", outcome.Detail)
		assert.Len(t, outcome.Warnings, 1)
	})

	t.Run("configured defaults", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Dispatch.ChannelDefaults = []string{"discord", "bogus"}
		fx := createTestDispatchService(t, cfg)

		assert.Equal(t, []entity.Channel{entity.ChannelDiscord}, fx.service.channelDefaults)
	})
}

func TestDispatchService_Send_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  entity.DispatchRequest
	}{
		{name: "empty text", req: entity.DispatchRequest{Messenger: entity.ChannelMail, Text: "  ", Audience: entity.ChannelAudience{}}},
		{name: "unknown messenger", req: entity.DispatchRequest{Messenger: "sms", Text: "hi", Audience: entity.ChannelAudience{}}},
		{name: "no audience", req: entity.DispatchRequest{Messenger: entity.ChannelMail, Text: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatchService(t, newTestConfig())
			var kind entity.AudienceKind
			if tt.req.Audience != nil {
				kind = tt.req.Audience.Kind()
			}
			fx.expectBookkeeping(kind, tt.req.Messenger)

			outcome := fx.service.Send(context.Background(), tt.req)

			assert.Equal(t, entity.OutcomeRejected, outcome.Status)
			assert.Equal(t, domainerrors.CodeInvalidArgument, outcome.Code)
		})
	}
}

func TestDispatchService_Send_BackendFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus entity.OutcomeStatus
		wantCode   string
		wantDetail string
	}{
		{
			name:       "rejected keeps backend reason",
			err:        errors.Wrap(domainerrors.NewRejectedError(http.StatusNotFound, "User not found"), "send"),
			wantStatus: entity.OutcomeRejected,
			wantCode:   domainerrors.CodeRejected,
			wantDetail: "User not found",
		},
		{
			name:       "transport",
			err:        domainerrors.NewTransportError(errors.New("dial tcp: connection refused")),
			wantStatus: entity.OutcomeTransportFailure,
			wantCode:   domainerrors.CodeTransportFailure,
		},
		{
			name:       "unreadable reply",
			err:        errors.New("decode POST /notifications/send-manual response"),
			wantStatus: entity.OutcomeTransportFailure,
			wantCode:   domainerrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatchService(t, newTestConfig())
			ctx := context.Background()

			fx.notificationRepo.EXPECT().SendSingle(ctx, mock.Anything).Return("", tt.err)
			event := fx.expectBookkeeping(entity.AudienceSingle, entity.ChannelMail)

			outcome := fx.service.Send(ctx, entity.DispatchRequest{Messenger: entity.ChannelMail, Text: "hi", Audience: entity.SingleAudience{UserID: 3}})

			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, tt.wantCode, outcome.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, outcome.Detail)
			}
			assert.Equal(t, string(tt.wantStatus), event.Status)
			assert.NotEmpty(t, event.Query)
		})
	}
}

func TestDispatchService_Send_AuditFailureDoesNotChangeOutcome(t *testing.T) {
	fx := createTestDispatchService(t, newTestConfig())
	ctx := context.Background()

	fx.notificationRepo.EXPECT().SendSingle(ctx, mock.Anything).Return("sent", nil)
	fx.recorder.EXPECT().RecordOutcome(entity.AudienceSingle, entity.ChannelMail, mock.Anything).Return()
	fx.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(errors.New("topic gone"))

	outcome := fx.service.Send(ctx, entity.DispatchRequest{Messenger: entity.ChannelMail, Text: "hi", Audience: entity.SingleAudience{UserID: 3}})
	assert.True(t, outcome.Accepted())
}

func TestDispatchService_Preview(t *testing.T) {
	fx := createTestDispatchService(t, newTestConfig())

	preview, err := fx.service.Preview(
		audience.Selections{Type: audience.TypeSpecific, PackageID: audience.AllPackages, Messenger: "mail"},
		audience.Draft{Text: "hello world"},
	)
	require.NoError(t, err)

	assert.Equal(t, entity.True, preview.Criteria.HasSubscription)
	assert.Equal(t, "messenger_type=mail&text=hello%20world&has_subscription=true", preview.Query)
	assert.Empty(t, preview.Warnings)

	preview, err = fx.service.Preview(
		audience.Selections{Type: audience.TypeAll, PackageID: "9"},
		audience.Draft{Messenger: entity.ChannelMail, Text: "x"},
	)
	require.NoError(t, err)
	assert.Equal(t, "messenger_type=mail&text=x", preview.Query)
	assert.Len(t, preview.Warnings, 1)

	_, err = fx.service.Preview(audience.Selections{Type: "premium"}, audience.Draft{})
	assertCode(t, err, domainerrors.CodeInvalidArgument)
}
