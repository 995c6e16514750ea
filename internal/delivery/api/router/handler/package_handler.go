package handler

import (
	"net/http"

	"notifyconsole/internal/delivery/api/response"
	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type PackageHandlerParams struct {
	fx.In

	PackageUC usecase.PackageUsecase
}

// PackageHandler serves the subscription package catalog.
type PackageHandler struct {
	packageUC usecase.PackageUsecase
}

func NewPackageHandler(params PackageHandlerParams) *PackageHandler {
	return &PackageHandler{packageUC: params.PackageUC}
}

func (h *PackageHandler) ListPackages(c echo.Context) error {
	packages, err := h.packageUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, packages)
}

func (h *PackageHandler) GetPackage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pkg, err := h.packageUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pkg)
}

func (h *PackageHandler) CreatePackage(c echo.Context) error {
	var req entity.PackageInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, "end_date must not be before start_date")
	}

	pkg, err := h.packageUC.Create(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pkg)
}

// AssignPackage subscribes a user to a package, both named rather than by id.
func (h *PackageHandler) AssignPackage(c echo.Context) error {
	var req entity.Assignment
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.CodeValidationFailed, err.Error())
	}

	grant, err := h.packageUC.Assign(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, grant)
}
