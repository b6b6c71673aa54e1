package record

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vitalog/vitalog/internal/platform/auth"
	"github.com/vitalog/vitalog/pkg/pagination"
)

// Handler provides HTTP handlers for the Record Store.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Record Store handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers record routes on an authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/records", h.CreateRecord)
	g.GET("/records", h.ListRecords)
	g.DELETE("/records/:id", h.DeleteRecord)
}

func (h *Handler) CreateRecord(c echo.Context) error {
	owner, ok := auth.OwnerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.svc.Append(c.Request().Context(), owner, in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store record")
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListRecords(c echo.Context) error {
	owner, ok := auth.OwnerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var f Filter
	if since := c.QueryParam("since"); since != "" {
		d, err := time.Parse("2006-01-02", since)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since date (want YYYY-MM-DD)")
		}
		f.Since = &d
	}
	if kindStr := c.QueryParam("kind"); kindStr != "" {
		kind, err := ParseKind(kindStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		f.Kind = &kind
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), owner, f, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list records")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteRecord(c echo.Context) error {
	owner, ok := auth.OwnerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(c.Request().Context(), owner, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete record")
	}
	return c.NoContent(http.StatusNoContent)
}
