package handler

import (
	"log/slog"
	"net/http"

	"notifyconsole/internal/delivery/api/response"
	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMessageLimit = 50

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC      usecase.UserUsecase
	ProfileUC   usecase.ProfileUsecase
	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// UserHandler serves the stateless user endpoints: directory listing,
// user records and channel profiles.
type UserHandler struct {
	userUC      usecase.UserUsecase
	profileUC   usecase.ProfileUsecase
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:      params.UserUC,
		profileUC:   params.ProfileUC,
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// ListUsersRequest is the directory query string.
type ListUsersRequest struct {
	Type        string `query:"type"`
	PackageID   string `query:"package_id"`
	Platform    string `query:"platform"`
	Search      string `query:"search"`
	HasMessages bool   `query:"has_messages"`
	Page        int    `query:"page" validate:"gte=0"`
	PageSize    int    `query:"page_size" validate:"gte=0"`
}

// MessagesRequest pages a user's message history.
type MessagesRequest struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0,lte=100"`
}

// LinkProfileRequest names a created profile to attach to the user.
type LinkProfileRequest struct {
	ProfileID int64 `json:"profile_id" validate:"required,gt=0"`
}

// ProfileResponse is a user together with their channel profile.
type ProfileResponse struct {
	User    *entity.User          `json:"user"`
	Profile entity.ChannelProfile `json:"profile"`
}

// ListUsers returns one directory page. Omitted type means all users and
// omitted page means page 1.
func (h *UserHandler) ListUsers(c echo.Context) error {
	var req ListUsersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid directory query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}

	sel := audience.Selections{
		Type:      req.Type,
		PackageID: req.PackageID,
		Platform:  req.Platform,
		Search:    req.Search,
	}
	if sel.Type == "" {
		sel.Type = audience.TypeAll
	}

	criteria, err := audience.Resolve(sel)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	criteria.HasMessages = req.HasMessages

	query := usecase.DirectoryQuery{
		Criteria: criteria,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if query.Page == 0 {
		query.Page = 1
	}
	if query.PageSize == 0 {
		query.PageSize = h.directoryUC.DefaultPageSize()
	}

	page, err := h.directoryUC.ListUsers(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req entity.UserInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}

	user, err := h.userUC.Create(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// GetUser returns the detail aggregate: user, profile, messages and subscriptions.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.userUC.GetDetail(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// UpdateUser rewrites the whole record; omitted optional fields are cleared.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req entity.UserInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}

	user, err := h.userUC.Update(c.Request().Context(), id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.Get(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.LoadProfile(ctx, user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{User: user, Profile: *profile})
}

// SaveChannel loads the current profile and saves one channel over it in a
// single call. On a partial link failure the response names the created
// profile so the caller can retry with LinkProfile.
func (h *UserHandler) SaveChannel(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	channel, err := pathChannel(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChannelValueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid channel value")
	}

	user, err := h.userUC.Get(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	loaded, err := h.profileUC.LoadProfile(ctx, user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.profileUC.SaveChannel(ctx, usecase.SaveChannelInput{
		User:    user,
		Loaded:  *loaded,
		Channel: channel,
		Raw:     req.Text(),
	})
	if err != nil {
		var partial *domainerrors.PartialLinkError
		if errors.As(err, &partial) {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Profile created but not linked",
				slog.Int64("user_id", partial.UserID),
				slog.Int64("profile_id", partial.ProfileID),
				slog.Any("error", err),
			)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{User: out.User, Profile: out.Profile})
}

// LinkProfile retries only the user write after a partial link failure.
func (h *UserHandler) LinkProfile(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LinkProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}

	user, err := h.userUC.Get(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	linked, err := h.profileUC.LinkProfile(ctx, user, req.ProfileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, linked)
}

func (h *UserHandler) ListMessages(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req MessagesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}
	if req.Limit == 0 {
		req.Limit = defaultMessageLimit
	}

	messages, err := h.userUC.Messages(c.Request().Context(), id, audience.Window{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

func (h *UserHandler) ListSubscriptions(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subscriptions, err := h.userUC.Subscriptions(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions)
}
