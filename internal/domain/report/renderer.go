package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/vitalog/vitalog/internal/domain/profile"
	"github.com/vitalog/vitalog/internal/domain/record"
)

const (
	pageMargin = 50.0
	lineHeight = 16.0
	// Notes longer than this are cut so a row never wraps.
	maxNoteLen = 72
)

// Renderer produces the printable PDF report from a set of records.
type Renderer struct{}

// NewRenderer creates a new report renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Header carries the identifying block printed on the first page.
type Header struct {
	DisplayName string
	Profile     *profile.Profile
	WindowDays  int
}

// Render writes the report for the given records as a PDF document.
// Records are expected in the store's newest-first order and are printed
// in that order.
func (r *Renderer) Render(h Header, recs []*record.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageH := pdf.GetPageSize()
	bottom := pageH - pageMargin

	pdf.AddPage()
	y := r.writeHeader(pdf, tr, h)

	pdf.SetFont("Helvetica", "", 10)
	if len(recs) == 0 {
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(0, lineHeight, tr("No records in the selected period."), "", 1, "L", false, 0, "")
	}

	for _, rec := range recs {
		if y+lineHeight > bottom {
			pdf.AddPage()
			y = pageMargin
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(0, lineHeight, tr(FormatLine(rec)), "", 1, "L", false, 0, "")
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeHeader prints the title and patient block and returns the Y cursor
// below it. The header appears on the first page only.
func (r *Renderer) writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, h Header) float64 {
	y := pageMargin

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(pageMargin, y)
	pdf.CellFormat(0, 20, tr("Health Report"), "", 1, "L", false, 0, "")
	y += 26

	name := h.DisplayName
	if h.Profile != nil && h.Profile.FullName != nil && *h.Profile.FullName != "" {
		name = *h.Profile.FullName
	}

	line := func(s string) {
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(0, lineHeight, tr(s), "", 1, "L", false, 0, "")
		y += lineHeight
	}

	pdf.SetFont("Helvetica", "", 11)
	line("Patient: " + name)

	if p := h.Profile; p != nil {
		var details []string
		if p.Age != nil {
			details = append(details, fmt.Sprintf("age %d", *p.Age))
		}
		if p.Sex != nil && *p.Sex != "" {
			details = append(details, *p.Sex)
		}
		if p.Weight != nil {
			details = append(details, fmt.Sprintf("%g kg", *p.Weight))
		}
		if len(details) > 0 {
			line(strings.Join(details, ", "))
		}
		if p.PhysicianName != nil && *p.PhysicianName != "" {
			line("Physician: " + *p.PhysicianName)
		}
		if p.Insurer != nil && *p.Insurer != "" {
			line("Insurer: " + *p.Insurer)
		}
	}

	line(fmt.Sprintf("Period: last %d days", h.WindowDays))
	line("Generated: " + time.Now().Format("2006-01-02 15:04"))
	y += 10

	return y
}

// FormatLine renders one record as a single report row.
func FormatLine(rec *record.Record) string {
	line := fmt.Sprintf("%s %s  %-14s %s",
		rec.RecordedOn.Format("2006-01-02"), rec.RecordedAt, rec.Kind, formatValue(rec))
	if rec.Note != nil && *rec.Note != "" {
		note := *rec.Note
		if len(note) > maxNoteLen {
			note = note[:maxNoteLen] + "..."
		}
		line += "  " + note
	}
	return line
}

func formatValue(rec *record.Record) string {
	switch rec.Kind {
	case record.KindDrainage:
		return fmt.Sprintf("I:%gmL D:%gmL", deref(rec.DrainageLeft), deref(rec.DrainageRight))
	case record.KindBloodPressure:
		return fmt.Sprintf("%d/%d (pulse %d)", derefInt(rec.Systolic), derefInt(rec.Diastolic), derefInt(rec.Pulse))
	case record.KindGlucose:
		return fmt.Sprintf("%d mg/dL", derefInt(rec.GlucoseLevel))
	case record.KindOxygen:
		return fmt.Sprintf("%d%% sat.", derefInt(rec.OxygenSaturation))
	case record.KindTemperature:
		return fmt.Sprintf("%.1f °C", deref(rec.Temperature))
	}
	return ""
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Filename builds the download name for a report covering windowDays. kind
// is "all" when no kind filter applies.
func Filename(kind string, windowDays int) string {
	if kind == "" {
		kind = "all"
	}
	return fmt.Sprintf("health-report-%s-%dd.pdf", kind, windowDays)
}
