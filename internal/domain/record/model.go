package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates which measurement fields of a record are meaningful.
type Kind string

const (
	KindDrainage      Kind = "drainage"
	KindBloodPressure Kind = "blood_pressure"
	KindGlucose       Kind = "glucose"
	KindOxygen        Kind = "oxygen"
	KindTemperature   Kind = "temperature"
)

// Kinds lists every known measurement kind.
var Kinds = []Kind{KindDrainage, KindBloodPressure, KindGlucose, KindOxygen, KindTemperature}

// kindAliases maps the legacy form values of the original UI (Spanish) to
// canonical kinds, alongside the canonical names themselves.
var kindAliases = map[string]Kind{
	"drainage":       KindDrainage,
	"drenaje":        KindDrainage,
	"blood_pressure": KindBloodPressure,
	"presion":        KindBloodPressure,
	"tension":        KindBloodPressure,
	"glucose":        KindGlucose,
	"glucosa":        KindGlucose,
	"oxygen":         KindOxygen,
	"oxigeno":        KindOxygen,
	"temperature":    KindTemperature,
	"temperatura":    KindTemperature,
}

// ParseKind resolves a kind string (canonical or legacy alias) to a Kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown measurement kind %q", s)}
	}
	return k, nil
}

// ValidationError reports a malformed or missing field for the given kind.
// A record that fails validation is never persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Record maps to the measurements table. Exactly the value fields relevant
// to Kind are non-nil; Normalize enforces this before any insert.
type Record struct {
	ID               int64      `db:"id" json:"id"`
	OwnerID          uuid.UUID  `db:"owner_id" json:"owner_id"`
	RecordedOn       time.Time  `db:"recorded_on" json:"recorded_on"`
	RecordedAt       string     `db:"recorded_at" json:"recorded_at"`
	Kind             Kind       `db:"kind" json:"kind"`
	DrainageLeft     *float64   `db:"drainage_left" json:"drainage_left,omitempty"`
	DrainageRight    *float64   `db:"drainage_right" json:"drainage_right,omitempty"`
	Systolic         *int       `db:"systolic" json:"systolic,omitempty"`
	Diastolic        *int       `db:"diastolic" json:"diastolic,omitempty"`
	Pulse            *int       `db:"pulse" json:"pulse,omitempty"`
	GlucoseLevel     *int       `db:"glucose_level" json:"glucose_level,omitempty"`
	OxygenSaturation *int       `db:"oxygen_saturation" json:"oxygen_saturation,omitempty"`
	Temperature      *float64   `db:"temperature" json:"temperature,omitempty"`
	Note             *string    `db:"note" json:"note,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// Input is the raw form/JSON payload for a new measurement. Numeric fields
// arrive as strings so that both "12.5" and "12,5" are accepted.
type Input struct {
	Date             string `json:"date" form:"date"`
	Time             string `json:"time" form:"time"`
	Kind             string `json:"kind" form:"kind"`
	DrainageLeft     string `json:"drainage_left" form:"drainage_left"`
	DrainageRight    string `json:"drainage_right" form:"drainage_right"`
	Systolic         string `json:"systolic" form:"systolic"`
	Diastolic        string `json:"diastolic" form:"diastolic"`
	Pulse            string `json:"pulse" form:"pulse"`
	GlucoseLevel     string `json:"glucose_level" form:"glucose_level"`
	OxygenSaturation string `json:"oxygen_saturation" form:"oxygen_saturation"`
	Temperature      string `json:"temperature" form:"temperature"`
	Note             string `json:"note" form:"note"`
}

// ParseDecimal parses a decimal value accepting both "." and "," as the
// separator. Malformed input is rejected, never coerced to zero.
func ParseDecimal(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a number", s)}
	}
	return v, nil
}

// ParseInteger parses an integer measurement value.
func ParseInteger(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not an integer", s)}
	}
	return v, nil
}

// Normalize validates the input against its kind and builds a Record with
// exactly the fields that kind requires. Fields belonging to other kinds
// must be empty.
func (in Input) Normalize(owner uuid.UUID) (*Record, error) {
	kind, err := ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := parseTimeOfDay(in.Time)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		OwnerID:    owner,
		RecordedOn: date,
		RecordedAt: timeOfDay,
		Kind:       kind,
	}
	if note := strings.TrimSpace(in.Note); note != "" {
		rec.Note = &note
	}

	if err := in.rejectForeignFields(kind); err != nil {
		return nil, err
	}

	switch kind {
	case KindDrainage:
		left, err := ParseDecimal("drainage_left", in.DrainageLeft)
		if err != nil {
			return nil, err
		}
		right, err := ParseDecimal("drainage_right", in.DrainageRight)
		if err != nil {
			return nil, err
		}
		if left < 0 || right < 0 {
			return nil, &ValidationError{Field: "drainage", Reason: "volumes must not be negative"}
		}
		rec.DrainageLeft = &left
		rec.DrainageRight = &right

	case KindBloodPressure:
		sys, err := ParseInteger("systolic", in.Systolic)
		if err != nil {
			return nil, err
		}
		dia, err := ParseInteger("diastolic", in.Diastolic)
		if err != nil {
			return nil, err
		}
		pulse, err := ParseInteger("pulse", in.Pulse)
		if err != nil {
			return nil, err
		}
		if sys <= 0 || dia <= 0 || pulse <= 0 {
			return nil, &ValidationError{Field: "blood_pressure", Reason: "values must be positive"}
		}
		rec.Systolic = &sys
		rec.Diastolic = &dia
		rec.Pulse = &pulse

	case KindGlucose:
		level, err := ParseInteger("glucose_level", in.GlucoseLevel)
		if err != nil {
			return nil, err
		}
		if level <= 0 {
			return nil, &ValidationError{Field: "glucose_level", Reason: "must be positive"}
		}
		rec.GlucoseLevel = &level

	case KindOxygen:
		sat, err := ParseInteger("oxygen_saturation", in.OxygenSaturation)
		if err != nil {
			return nil, err
		}
		if sat < 0 || sat > 100 {
			return nil, &ValidationError{Field: "oxygen_saturation", Reason: "must be between 0 and 100"}
		}
		rec.OxygenSaturation = &sat

	case KindTemperature:
		temp, err := ParseDecimal("temperature", in.Temperature)
		if err != nil {
			return nil, err
		}
		rec.Temperature = &temp
	}

	return rec, nil
}

// rejectForeignFields refuses input fields that do not belong to the kind,
// keeping the tagged-variant invariant at the write boundary.
func (in Input) rejectForeignFields(kind Kind) error {
	fields := map[Kind][]struct{ name, value string }{
		KindDrainage: {
			{"drainage_left", in.DrainageLeft},
			{"drainage_right", in.DrainageRight},
		},
		KindBloodPressure: {
			{"systolic", in.Systolic},
			{"diastolic", in.Diastolic},
			{"pulse", in.Pulse},
		},
		KindGlucose: {
			{"glucose_level", in.GlucoseLevel},
		},
		KindOxygen: {
			{"oxygen_saturation", in.OxygenSaturation},
		},
		KindTemperature: {
			{"temperature", in.Temperature},
		},
	}

	for k, fs := range fields {
		if k == kind {
			continue
		}
		for _, f := range fs {
			if strings.TrimSpace(f.value) != "" {
				return &ValidationError{Field: f.name, Reason: fmt.Sprintf("not allowed for kind %s", kind)}
			}
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ValidationError{Field: "date", Reason: "is required"}
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a date (want YYYY-MM-DD)", s)}
	}
	return d, nil
}

func parseTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: "time", Reason: "is required"}
	}
	// Accept HH:MM and HH:MM:SS, store zero-padded HH:MM so that
	// lexicographic ordering matches chronological ordering.
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", &ValidationError{Field: "time", Reason: fmt.Sprintf("%q is not a time of day (want HH:MM)", s)}
}
