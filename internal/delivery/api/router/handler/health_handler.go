package handler

import (
	"net/http"

	"notifyconsole/internal/console"
	"notifyconsole/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type HealthHandlerParams struct {
	fx.In

	Sessions *console.Store
}

// HealthHandler reports liveness; it never calls the backend.
type HealthHandler struct {
	sessions *console.Store
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{sessions: params.Sessions}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	})
}
