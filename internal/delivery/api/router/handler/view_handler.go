// Package handler contains the HTTP handlers of the rendering surface bridge.
package handler

import (
	"net/http"

	"vgb/internal/delivery/api/response"
	"vgb/internal/domain/entity"
	"vgb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ViewHandler serves the current view and accepts intents over plain HTTP.
type ViewHandler struct {
	presenter  usecase.PresenterUsecase
	dispatcher usecase.DispatcherUsecase
}

// NewViewHandler is the constructor for ViewHandler, injected by Fx.
func NewViewHandler(presenter usecase.PresenterUsecase, dispatcher usecase.DispatcherUsecase) *ViewHandler {
	return &ViewHandler{
		presenter:  presenter,
		dispatcher: dispatcher,
	}
}

// GetView returns the latest view, rendering one if nothing was painted yet.
func (h *ViewHandler) GetView(c echo.Context) error {
	view := h.presenter.Latest()
	if view == nil {
		rendered, err := h.presenter.Render(c.Request().Context())
		if err != nil && rendered == nil {
			return errors.WithStack(err)
		}
		view = rendered
	}

	return response.Success(c, http.StatusOK, view)
}

// PostIntent dispatches one intent and responds with the resulting view.
// Operation failures arrive as notices inside the view; only intents that
// cannot be interpreted are answered with an error status.
func (h *ViewHandler) PostIntent(c echo.Context) error {
	var intent entity.Intent
	if err := c.Bind(&intent); err != nil {
		return response.BindingError(c, "Invalid intent body")
	}
	if err := c.Validate(&intent); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.dispatcher.Dispatch(c.Request().Context(), intent)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
