package report

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vitalog/vitalog/internal/domain/profile"
	"github.com/vitalog/vitalog/internal/domain/record"
	"github.com/vitalog/vitalog/internal/domain/stats"
	"github.com/vitalog/vitalog/internal/platform/auth"
)

// RecordSource is the slice of the Record Store the report reads.
type RecordSource interface {
	ListAll(ctx context.Context, owner uuid.UUID, f record.Filter) ([]*record.Record, error)
}

// ProfileSource resolves the patient block for the report header.
type ProfileSource interface {
	Get(ctx context.Context, owner uuid.UUID) (*profile.Profile, error)
}

// Handler provides the PDF export endpoint.
type Handler struct {
	records  RecordSource
	profiles ProfileSource
	renderer *Renderer
}

// NewHandler creates a new report handler.
func NewHandler(records RecordSource, profiles ProfileSource, renderer *Renderer) *Handler {
	return &Handler{records: records, profiles: profiles, renderer: renderer}
}

// RegisterRoutes registers the report route on an authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/reports/pdf", h.ExportPDF)
}

func (h *Handler) ExportPDF(c echo.Context) error {
	owner, ok := auth.OwnerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	windowDays := stats.DefaultWindowDays
	if s := c.QueryParam("window_days"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "window_days must be a positive integer")
		}
		windowDays = v
	}

	f := record.Filter{}
	since := stats.WindowStart(time.Now(), windowDays)
	f.Since = &since

	kindParam := ""
	if s := c.QueryParam("kind"); s != "" {
		k, err := record.ParseKind(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		f.Kind = &k
		kindParam = string(k)
	}

	ctx := c.Request().Context()
	recs, err := h.records.ListAll(ctx, owner, f)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load records")
	}

	// The report is still produced when no profile exists; the header
	// falls back to the login name.
	prof, err := h.profiles.Get(ctx, owner)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load profile")
	}

	hdr := Header{
		DisplayName: auth.Username(c),
		Profile:     prof,
		WindowDays:  windowDays,
	}
	pdfBytes, err := h.renderer.Render(hdr, recs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", Filename(kindParam, windowDays)))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}
