package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vitalog/vitalog/internal/domain/profile"
	"github.com/vitalog/vitalog/internal/domain/record"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func sampleRecord(kind record.Kind) *record.Record {
	rec := &record.Record{
		OwnerID:    uuid.New(),
		RecordedOn: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		RecordedAt: "08:30",
		Kind:       kind,
	}
	switch kind {
	case record.KindDrainage:
		rec.DrainageLeft = floatPtr(30.5)
		rec.DrainageRight = floatPtr(25)
	case record.KindBloodPressure:
		rec.Systolic = intPtr(130)
		rec.Diastolic = intPtr(85)
		rec.Pulse = intPtr(70)
	case record.KindGlucose:
		rec.GlucoseLevel = intPtr(110)
	case record.KindOxygen:
		rec.OxygenSaturation = intPtr(97)
	case record.KindTemperature:
		rec.Temperature = floatPtr(36.8)
	}
	return rec
}

func TestFormatLine_PerKind(t *testing.T) {
	cases := []struct {
		kind record.Kind
		want string
	}{
		{record.KindDrainage, "I:30.5mL D:25mL"},
		{record.KindBloodPressure, "130/85 (pulse 70)"},
		{record.KindGlucose, "110 mg/dL"},
		{record.KindOxygen, "97% sat."},
		{record.KindTemperature, "36.8 °C"},
	}
	for _, tc := range cases {
		line := FormatLine(sampleRecord(tc.kind))
		if !strings.Contains(line, tc.want) {
			t.Errorf("kind %s: expected line to contain %q, got %q", tc.kind, tc.want, line)
		}
		if !strings.HasPrefix(line, "2026-08-20 08:30") {
			t.Errorf("kind %s: expected date/time prefix, got %q", tc.kind, line)
		}
	}
}

func TestFormatLine_TruncatesLongNotes(t *testing.T) {
	rec := sampleRecord(record.KindGlucose)
	rec.Note = strPtr(strings.Repeat("x", 100))

	line := FormatLine(rec)
	if !strings.Contains(line, strings.Repeat("x", 72)+"...") {
		t.Errorf("expected note truncated to 72 chars with ellipsis, got %q", line)
	}
	if strings.Contains(line, strings.Repeat("x", 73)) {
		t.Errorf("note not truncated: %q", line)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("glucose", 30); got != "health-report-glucose-30d.pdf" {
		t.Errorf("unexpected filename %q", got)
	}
	if got := Filename("", 7); got != "health-report-all-7d.pdf" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	recs := []*record.Record{
		sampleRecord(record.KindGlucose),
		sampleRecord(record.KindBloodPressure),
	}
	hdr := Header{DisplayName: "testuser", WindowDays: 30}

	out, err := NewRenderer().Render(hdr, recs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("expected PDF magic bytes, got %q", out[:min(8, len(out))])
	}
}

func TestRender_EmptyWindowStillProducesPDF(t *testing.T) {
	hdr := Header{DisplayName: "testuser", WindowDays: 30}
	out, err := NewRenderer().Render(hdr, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("expected PDF output for empty record set")
	}
}

func TestRender_ManyRecordsPaginate(t *testing.T) {
	var recs []*record.Record
	for i := 0; i < 120; i++ {
		recs = append(recs, sampleRecord(record.KindGlucose))
	}
	hdr := Header{DisplayName: "testuser", WindowDays: 30}

	out, err := NewRenderer().Render(hdr, recs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// 120 rows cannot fit one A4 page. A single-page document carries one
	// /Type /Page object plus the /Type /Pages tree node, so anything over
	// two means real pagination happened.
	if bytes.Count(out, []byte("/Type /Page")) <= 2 {
		t.Error("expected the report to span multiple pages")
	}
}

func TestRender_ProfileNameOverridesDisplayName(t *testing.T) {
	hdr := Header{
		DisplayName: "login-name",
		Profile:     &profile.Profile{FullName: strPtr("Jane Roe")},
		WindowDays:  30,
	}
	out, err := NewRenderer().Render(hdr, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty PDF")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
