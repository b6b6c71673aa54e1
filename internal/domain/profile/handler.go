package profile

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalog/vitalog/internal/platform/auth"
)

// Handler provides HTTP handlers for the Profile Store.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Profile Store handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers profile routes on an authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpsertProfile)
}

func (h *Handler) GetProfile(c echo.Context) error {
	owner, ok := auth.OwnerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	p, err := h.svc.Get(c.Request().Context(), owner)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load profile")
	}
	if p == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no profile saved yet")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpsertProfile(c echo.Context) error {
	owner, ok := auth.OwnerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var p Profile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.OwnerID = owner

	if err := h.svc.Upsert(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}
