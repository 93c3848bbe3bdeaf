// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TimeWindowRequest is an optional delivery window on a stop.
type TimeWindowRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtfield=Start"`
}

// StopRequest is one stop in the optimize request body.
type StopRequest struct {
	ID         string             `json:"id" validate:"required"`
	Lat        float64            `json:"lat" validate:"min=-90,max=90"`
	Lng        float64            `json:"lng" validate:"min=-180,max=180"`
	Priority   *int               `json:"priority,omitempty"`
	TimeWindow *TimeWindowRequest `json:"timeWindow,omitempty"`
}

// DepotRequest overrides the configured depot location.
type DepotRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// OptimizeRequest is the request body for POST /v1/routes/optimize.
type OptimizeRequest struct {
	Stops    []StopRequest `json:"stops" validate:"required,min=1,dive"`
	Vehicles int           `json:"vehicles" validate:"omitempty,min=1"`
	Depot    *DepotRequest `json:"depot,omitempty"`
}

// OptimizeHandler holds dependencies for route optimization handlers.
type OptimizeHandler struct {
	uc     usecase.OptimizerUsecase
	logger *slog.Logger
}

// NewOptimizeHandler is the constructor for OptimizeHandler, injected by Fx.
func NewOptimizeHandler(uc usecase.OptimizerUsecase, logger *slog.Logger) *OptimizeHandler {
	return &OptimizeHandler{
		uc:     uc,
		logger: logger,
	}
}

// Optimize handles the route optimization request.
func (h *OptimizeHandler) Optimize(c echo.Context) error {
	var input OptimizeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid optimize request body")
	}

	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.uc.Optimize(c.Request().Context(), toEntity(&input))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Routes optimized successfully")
}

func toEntity(input *OptimizeRequest) *entity.OptimizeRequest {
	stops := make([]entity.Stop, 0, len(input.Stops))
	for _, s := range input.Stops {
		stop := entity.Stop{
			ID:         s.ID,
			Coordinate: entity.Coordinate{Lat: s.Lat, Lng: s.Lng},
			Priority:   s.Priority,
		}
		if s.TimeWindow != nil {
			stop.TimeWindow = &entity.TimeWindow{
				Start: s.TimeWindow.Start,
				End:   s.TimeWindow.End,
			}
		}
		stops = append(stops, stop)
	}

	req := &entity.OptimizeRequest{
		Stops:        stops,
		VehicleCount: input.Vehicles,
	}
	if input.Depot != nil {
		req.Depot = &entity.Coordinate{Lat: input.Depot.Lat, Lng: input.Depot.Lng}
	}

	return req
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
