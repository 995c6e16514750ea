package handler

import (
	"net/http"

	"notifyconsole/internal/delivery/api/response"
	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	"notifyconsole/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
}

// DispatchHandler sends notifications. Send outcomes are always returned in
// the success envelope; the HTTP status reflects the outcome class.
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
}

func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{dispatchUC: params.DispatchUC}
}

// MessageRequest is the message part shared by every dispatch. Empty text
// and unknown messengers are not rejected here; they come back as a
// rejected outcome without reaching the backend.
type MessageRequest struct {
	MessengerType string `json:"messenger_type"`
	Text          string `json:"text"`
	Link          string `json:"link"`
}

func (r MessageRequest) draft() audience.Draft {
	return audience.Draft{
		Messenger: entity.Channel(r.MessengerType),
		Text:      r.Text,
		Link:      r.Link,
	}
}

type SingleDispatchRequest struct {
	MessageRequest
	UserID int64 `json:"user_id"`
}

type BulkDispatchRequest struct {
	MessageRequest
	Audience    audience.Selections `json:"audience"`
	HasMessages bool                `json:"has_messages"`
}

// ResolveAudience previews the criteria and backend query of a bulk send.
func (h *DispatchHandler) ResolveAudience(c echo.Context) error {
	var req BulkDispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid audience input")
	}

	preview, err := h.dispatchUC.Preview(req.Audience, req.draft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// SendSingle sends to one user. A missing user_id yields MISSING_TARGET.
func (h *DispatchHandler) SendSingle(c echo.Context) error {
	var req SingleDispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}

	outcome := h.dispatchUC.Send(c.Request().Context(), entity.DispatchRequest{
		Messenger: entity.Channel(req.MessengerType),
		Text:      req.Text,
		Link:      req.Link,
		Audience:  entity.SingleAudience{UserID: req.UserID},
	})

	return writeOutcome(c, outcome, http.StatusOK)
}

// SendBulk sends to every user matching the audience selections. The
// messenger falls back to the one chosen in the audience filter.
func (h *DispatchHandler) SendBulk(c echo.Context) error {
	var req BulkDispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}

	criteria, err := audience.Resolve(req.Audience)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	criteria.HasMessages = req.HasMessages

	messenger := entity.Channel(req.MessengerType)
	if messenger == "" {
		messenger = criteria.Messenger
	}

	outcome := h.dispatchUC.Send(c.Request().Context(), entity.DispatchRequest{
		Messenger: messenger,
		Text:      req.Text,
		Link:      req.Link,
		Audience:  entity.BulkAudience{Criteria: criteria},
	})

	return writeOutcome(c, outcome, http.StatusAccepted)
}

func (h *DispatchHandler) SendChannel(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}

	outcome := h.dispatchUC.Send(c.Request().Context(), entity.DispatchRequest{
		Messenger: entity.Channel(req.MessengerType),
		Text:      req.Text,
		Link:      req.Link,
		Audience:  entity.ChannelAudience{},
	})

	return writeOutcome(c, outcome, http.StatusOK)
}

// writeOutcome maps rejected to 422 and transport failures to 502.
func writeOutcome(c echo.Context, outcome entity.DeliveryOutcome, accepted int) error {
	status := accepted
	switch outcome.Status {
	case entity.OutcomeRejected:
		status = http.StatusUnprocessableEntity
	case entity.OutcomeTransportFailure:
		status = http.StatusBadGateway
	}

	return response.Success(c, status, outcome)
}
