package stats

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vitalog/vitalog/internal/platform/auth"
)

// Handler provides the HTTP handler for the aggregator.
type Handler struct {
	svc *Service
}

// NewHandler creates a new aggregator handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the stats route on an authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/stats", h.GetStats)
}

func (h *Handler) GetStats(c echo.Context) error {
	owner, ok := auth.OwnerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	windowDays := DefaultWindowDays
	if s := c.QueryParam("window_days"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "window_days must be a positive integer")
		}
		windowDays = v
	}

	sum, err := h.svc.Compute(c.Request().Context(), owner, windowDays)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute stats")
	}
	return c.JSON(http.StatusOK, sum)
}
