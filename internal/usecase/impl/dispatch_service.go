package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"notifyconsole/config"
	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/domain/service"
	"notifyconsole/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dispatchService struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	recorder         service.DispatchRecorder
	channelDefaults  []entity.Channel
	now              func() time.Time
	logger           *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Recorder         service.DispatchRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	defaults := []entity.Channel{entity.ChannelTelegram}
	if params.Config != nil && params.Config.Dispatch.ChannelDefaults != nil {
		defaults = defaults[:0]
		for _, name := range params.Config.Dispatch.ChannelDefaults {
			if channel, err := entity.ParseChannel(name); err == nil {
				defaults = append(defaults, channel)
			} else {
				params.Logger.Warn("Ignoring unknown channel default", slog.String("messenger", name))
			}
		}
	}

	return &dispatchService{
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		recorder:         params.Recorder,
		channelDefaults:  defaults,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send validates the request, calls the backend and folds the result into an
// outcome. Every attempt is counted and audited, including the ones rejected
// before any network call.
func (srv *dispatchService) Send(ctx context.Context, req entity.DispatchRequest) entity.DeliveryOutcome {
	var kind entity.AudienceKind
	if req.Audience != nil {
		kind = req.Audience.Kind()
	}

	outcome, params := srv.send(ctx, req)

	srv.recorder.RecordOutcome(kind, req.Messenger, outcome)
	srv.audit(ctx, kind, req.Messenger, params, outcome)

	logger := srv.log(ctx).With(
		slog.String("audience", string(kind)),
		slog.String("messenger", req.Messenger.String()),
		slog.String("status", string(outcome.Status)),
	)
	if outcome.Accepted() {
		logger.Info("Dispatch accepted")
	} else {
		logger.Warn("Dispatch not accepted", slog.String("code", outcome.Code), slog.String("detail", outcome.Detail))
	}

	return outcome
}

// send returns the outcome and the parameters sent, nil when the request
// never reached the backend.
func (srv *dispatchService) send(ctx context.Context, req entity.DispatchRequest) (entity.DeliveryOutcome, audience.Params) {
	// A missing target outranks any other input problem
	if single, ok := req.Audience.(entity.SingleAudience); ok && single.UserID <= 0 {
		return outcomeFromError(domainerrors.ErrMissingTarget), nil
	}
	if err := validateDispatch(req); err != nil {
		return outcomeFromError(err), nil
	}

	draft := audience.Draft{
		Messenger: req.Messenger,
		Text:      req.Text,
		Link:      strings.TrimSpace(req.Link),
	}

	switch target := req.Audience.(type) {
	case entity.SingleAudience:
		params := audience.BuildSingle(target.UserID, draft)
		message, err := srv.notificationRepo.SendSingle(ctx, params)
		if err != nil {
			return outcomeFromError(err), params
		}

		return entity.DeliveryOutcome{Status: entity.OutcomeAccepted, Detail: message}, params

	case entity.BulkAudience:
		params := audience.BuildBulk(target.Criteria, draft)
		queued, err := srv.notificationRepo.SendBulk(ctx, params)
		if err != nil {
			return outcomeFromError(err), params
		}

		return entity.DeliveryOutcome{
			Status:      entity.OutcomeAccepted,
			Detail:      fmt.Sprintf("%d notifications queued", queued),
			QueuedCount: &queued,
		}, params

	case entity.ChannelAudience:
		var warnings []string
		if !slices.Contains(srv.channelDefaults, req.Messenger) {
			warnings = append(warnings, fmt.Sprintf("%s has no default channel configured; the backend may reject the post", req.Messenger))
		}

		params := audience.BuildChannel(draft)
		message, err := srv.notificationRepo.SendChannel(ctx, params)
		if err != nil {
			outcome := outcomeFromError(err)
			outcome.Warnings = warnings

			return outcome, params
		}

		return entity.DeliveryOutcome{Status: entity.OutcomeAccepted, Detail: message, Warnings: warnings}, params

	default:
		return outcomeFromError(domainerrors.ErrInvalidArgument.WithDetails("unknown audience")), nil
	}
}

func validateDispatch(req entity.DispatchRequest) error {
	if req.Audience == nil {
		return domainerrors.ErrInvalidArgument.WithDetails("audience is required")
	}
	if _, err := entity.ParseChannel(req.Messenger.String()); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}
	if strings.TrimSpace(req.Text) == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("message text is required")
	}

	return nil
}

// outcomeFromError classifies a failure. Backend rejections keep the
// backend's reason verbatim.
func outcomeFromError(err error) entity.DeliveryOutcome {
	var (
		rejected  *domainerrors.RejectedError
		transport *domainerrors.TransportError
		appErr    domainerrors.AppError
	)

	switch {
	case errors.As(err, &rejected):
		return entity.DeliveryOutcome{Status: entity.OutcomeRejected, Code: rejected.ErrorCode(), Detail: rejected.Reason()}
	case errors.As(err, &transport):
		return entity.DeliveryOutcome{Status: entity.OutcomeTransportFailure, Code: transport.ErrorCode(), Detail: transport.Error()}
	case errors.As(err, &appErr):
		detail := appErr.Message()
		if appErr.Details() != "" {
			detail += ": " + appErr.Details()
		}

		return entity.DeliveryOutcome{Status: entity.OutcomeRejected, Code: appErr.ErrorCode(), Detail: detail}
	default:
		// The backend answered 2xx with a body we could not read; delivery state is unknown.
		return entity.DeliveryOutcome{Status: entity.OutcomeTransportFailure, Code: domainerrors.CodeInternal, Detail: err.Error()}
	}
}

func (srv *dispatchService) audit(ctx context.Context, kind entity.AudienceKind, messenger entity.Channel, params audience.Params, outcome entity.DeliveryOutcome) {
	event := &service.DispatchEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		DispatchID:  uuid.New().String(),
		Audience:    string(kind),
		Messenger:   messenger.String(),
		Query:       params.Encode(),
		Status:      string(outcome.Status),
		Code:        outcome.Code,
		Detail:      outcome.Detail,
		QueuedCount: outcome.QueuedCount,
		OccurredAt:  srv.now().UTC(),
	}

	if err := srv.publisher.PublishDispatchEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish dispatch audit event",
			slog.String("dispatch_id", event.DispatchID),
			slog.Any("error", err),
		)
	}
}

// Preview resolves selections into the bulk query without sending anything.
func (srv *dispatchService) Preview(sel audience.Selections, draft audience.Draft) (*usecase.AudiencePreview, error) {
	criteria, err := audience.Resolve(sel)
	if err != nil {
		return nil, err
	}

	if draft.Messenger == "" {
		draft.Messenger = criteria.Messenger
	}

	preview := &usecase.AudiencePreview{
		Criteria: criteria,
		Query:    audience.BuildBulk(criteria, draft).Encode(),
	}

	pkg := strings.TrimSpace(sel.PackageID)
	if strings.TrimSpace(sel.Type) != audience.TypeSpecific && pkg != "" && pkg != audience.AllPackages {
		preview.Warnings = append(preview.Warnings, "package selection is ignored unless the audience type is specific")
	}

	return preview, nil
}
