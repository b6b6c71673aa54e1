package stats

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/vitalog/vitalog/internal/domain/record"
)

// DefaultWindowDays is the trailing window used when the caller does not
// specify one.
const DefaultWindowDays = 30

// Alert thresholds per measurement kind.
const (
	glucoseHigh   = 140
	glucoseLow    = 70
	systolicHigh  = 140
	diastolicHigh = 90
	oxygenLow     = 95
	feverFrom     = 37.5
)

// RecordSource is the slice of the Record Store the aggregator reads.
type RecordSource interface {
	ListAll(ctx context.Context, owner uuid.UUID, f record.Filter) ([]*record.Record, error)
}

// Service computes rolling per-kind statistics for one owner.
type Service struct {
	records RecordSource
}

// NewService creates a new aggregator service.
func NewService(records RecordSource) *Service {
	return &Service{records: records}
}

// Compute aggregates the owner's records with recorded_on on or after
// today minus windowDays. Records of the right kind whose relevant field
// is null are skipped entirely.
func (s *Service) Compute(ctx context.Context, owner uuid.UUID, windowDays int) (*Summary, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	since := WindowStart(time.Now(), windowDays)

	recs, err := s.records.ListAll(ctx, owner, record.Filter{Since: &since})
	if err != nil {
		return nil, err
	}

	sum := &Summary{WindowDays: windowDays}

	var (
		glucoseTotal  int
		sysTotal      int
		diaTotal      int
		pulseTotal    int
		oxygenTotal   int
		tempTotal     float64
	)

	for _, r := range recs {
		switch r.Kind {
		case record.KindGlucose:
			if r.GlucoseLevel == nil {
				continue
			}
			v := *r.GlucoseLevel
			g := &sum.Glucose
			if g.Count == 0 || v > g.Max {
				g.Max = v
			}
			if g.Count == 0 || v < g.Min {
				g.Min = v
			}
			if v > glucoseHigh || v < glucoseLow {
				g.AlertCount++
			}
			glucoseTotal += v
			g.Count++

		case record.KindBloodPressure:
			if r.Systolic == nil || r.Diastolic == nil {
				continue
			}
			bp := &sum.BloodPressure
			if bp.Count == 0 || *r.Systolic > bp.MaxSystolic {
				bp.MaxSystolic = *r.Systolic
			}
			if bp.Count == 0 || *r.Systolic < bp.MinSystolic {
				bp.MinSystolic = *r.Systolic
			}
			if *r.Systolic >= systolicHigh || *r.Diastolic >= diastolicHigh {
				bp.AlertCount++
			}
			sysTotal += *r.Systolic
			diaTotal += *r.Diastolic
			if r.Pulse != nil {
				pulseTotal += *r.Pulse
			}
			bp.Count++

		case record.KindOxygen:
			if r.OxygenSaturation == nil {
				continue
			}
			v := *r.OxygenSaturation
			o := &sum.Oxygen
			if o.Count == 0 || v < o.Min {
				o.Min = v
			}
			if v < oxygenLow {
				o.AlertCount++
			}
			oxygenTotal += v
			o.Count++

		case record.KindTemperature:
			if r.Temperature == nil {
				continue
			}
			v := *r.Temperature
			t := &sum.Temperature
			if t.Count == 0 || v > t.Max {
				t.Max = v
			}
			if v >= feverFrom {
				t.AlertCount++
			}
			tempTotal += v
			t.Count++

		case record.KindDrainage:
			if r.DrainageLeft == nil || r.DrainageRight == nil {
				continue
			}
			d := &sum.Drainage
			d.TotalLeft += *r.DrainageLeft
			d.TotalRight += *r.DrainageRight
			d.Count++
		}
	}

	if sum.Glucose.Count > 0 {
		sum.Glucose.Average = glucoseTotal / sum.Glucose.Count
	}
	if sum.BloodPressure.Count > 0 {
		sum.BloodPressure.AvgSystolic = sysTotal / sum.BloodPressure.Count
		sum.BloodPressure.AvgDiastolic = diaTotal / sum.BloodPressure.Count
		sum.BloodPressure.AvgPulse = pulseTotal / sum.BloodPressure.Count
	}
	if sum.Oxygen.Count > 0 {
		sum.Oxygen.Average = oxygenTotal / sum.Oxygen.Count
	}
	if sum.Temperature.Count > 0 {
		sum.Temperature.Average = math.Round(tempTotal/float64(sum.Temperature.Count)*10) / 10
	}
	sum.Drainage.Total = sum.Drainage.TotalLeft + sum.Drainage.TotalRight

	return sum, nil
}

// WindowStart returns the first calendar day inside a trailing window of
// windowDays ending at now (date >= now - windowDays, inclusive).
func WindowStart(now time.Time, windowDays int) time.Time {
	start := now.AddDate(0, 0, -windowDays)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
}
