package handler

import (
	"log/slog"
	"net/http"

	"notifyconsole/internal/console"
	"notifyconsole/internal/delivery/api/response"
	deliverycontext "notifyconsole/internal/delivery/context"
	"notifyconsole/internal/domain/audience"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const codeSuperseded = "SUPERSEDED"

type SessionHandlerParams struct {
	fx.In

	Sessions *console.Store
	UserUC   usecase.UserUsecase
	Logger   *slog.Logger
}

// SessionHandler drives the stateful console views. Each session owns a
// directory paginator and a profile editor; a request whose result was
// overtaken by a later one on the same session gets 409 SUPERSEDED.
type SessionHandler struct {
	sessions *console.Store
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessions: params.Sessions,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// DirectoryFilter is the audience part of a directory change.
type DirectoryFilter struct {
	Type        string `json:"type"`
	PackageID   string `json:"package_id"`
	Platform    string `json:"platform"`
	HasMessages bool   `json:"has_messages"`
}

// UpdateDirectoryRequest changes the directory view. Filter, search and page
// size changes reset to page 1 before Page or Move are applied.
type UpdateDirectoryRequest struct {
	Search   *string          `json:"search"`
	Filter   *DirectoryFilter `json:"filter"`
	PageSize *int             `json:"page_size" validate:"omitempty,gte=1"`
	Page     *int             `json:"page" validate:"omitempty,gte=1"`
	Move     string           `json:"move" validate:"omitempty,oneof=next prev"`
}

type SelectUserRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

func (h *SessionHandler) CreateSession(c echo.Context) error {
	session, err := h.sessions.Create()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session.View())
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session.View())
}

func (h *SessionHandler) DeleteSession(c echo.Context) error {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateDirectory applies the requested changes and fetches the resulting page.
func (h *SessionHandler) UpdateDirectory(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateDirectoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid directory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}

	directory := session.Directory

	if req.Filter != nil {
		sel := audience.Selections{
			Type:      req.Filter.Type,
			PackageID: req.Filter.PackageID,
			Platform:  req.Filter.Platform,
		}
		if sel.Type == "" {
			sel.Type = audience.TypeAll
		}

		criteria, err := audience.Resolve(sel)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		criteria.HasMessages = req.Filter.HasMessages
		directory.SetFilter(criteria)
	}
	if req.Search != nil {
		directory.SetSearch(*req.Search)
	}
	if req.PageSize != nil {
		if _, err := directory.SetPageSize(*req.PageSize); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	if req.Page != nil {
		if err := directory.GoTo(*req.Page); err != nil {
			return response.HandleAppError(c, err)
		}
	}
	switch req.Move {
	case "next":
		directory.Next()
	case "prev":
		directory.Prev()
	}

	if _, err := directory.Fetch(c.Request().Context()); err != nil {
		return h.handleSessionError(c, session.ID, err)
	}

	return response.Success(c, http.StatusOK, session.View())
}

// SelectUser puts a user into the session's profile editor.
func (h *SessionHandler) SelectUser(c echo.Context) error {
	ctx := c.Request().Context()

	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SelectUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user selection")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}

	user, err := h.userUC.Get(ctx, req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := session.Editor.Select(ctx, user)
	if err != nil {
		return h.handleSessionError(c, session.ID, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// SaveChannel saves one channel for the selected user. After a partial link
// failure the session remembers the created profile; the next save or link
// retry reuses it.
func (h *SessionHandler) SaveChannel(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
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

	state, err := session.Editor.Save(c.Request().Context(), channel, req.Text())
	if err != nil {
		return h.handleSessionError(c, session.ID, err)
	}

	return response.Success(c, http.StatusOK, state)
}

func (h *SessionHandler) RetryLink(c echo.Context) error {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := session.Editor.RetryLink(c.Request().Context())
	if err != nil {
		return h.handleSessionError(c, session.ID, err)
	}

	return response.Success(c, http.StatusOK, state)
}

func (h *SessionHandler) handleSessionError(c echo.Context, sessionID string, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if errors.Is(err, console.ErrSuperseded) {
		logger.Debug("Dropped superseded console result", slog.String("session_id", sessionID))

		return response.Conflict(c, codeSuperseded, "A newer request on this session replaced this one")
	}

	var partial *domainerrors.PartialLinkError
	if errors.As(err, &partial) {
		logger.Warn("Profile created but not linked",
			slog.String("session_id", sessionID),
			slog.Int64("user_id", partial.UserID),
			slog.Int64("profile_id", partial.ProfileID),
		)
	}

	return response.HandleAppError(c, err)
}
