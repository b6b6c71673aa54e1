package stats

// Summary holds the per-kind rolling statistics for one owner's trailing
// window.
//
// Zero-state convention: when Count is 0 for a kind, its averages and
// extremes are reported as 0 — deliberately, not as an omission. "No data"
// and "value is zero" are distinguished by the accompanying Count.
type Summary struct {
	WindowDays    int                `json:"window_days"`
	Glucose       GlucoseStats       `json:"glucose"`
	BloodPressure BloodPressureStats `json:"blood_pressure"`
	Oxygen        OxygenStats        `json:"oxygen"`
	Temperature   TemperatureStats   `json:"temperature"`
	Drainage      DrainageStats      `json:"drainage"`
}

// GlucoseStats summarizes glucose readings. Average is integer-truncated.
// A reading above 140 or below 70 mg/dL counts as an alert.
type GlucoseStats struct {
	Count      int `json:"count"`
	Average    int `json:"average"`
	Max        int `json:"max"`
	Min        int `json:"min"`
	AlertCount int `json:"alert_count"`
}

// BloodPressureStats summarizes blood pressure readings. A systolic of 140
// or more, or a diastolic of 90 or more, counts as an alert.
type BloodPressureStats struct {
	Count        int `json:"count"`
	AvgSystolic  int `json:"avg_systolic"`
	AvgDiastolic int `json:"avg_diastolic"`
	MaxSystolic  int `json:"max_systolic"`
	MinSystolic  int `json:"min_systolic"`
	AvgPulse     int `json:"avg_pulse"`
	AlertCount   int `json:"alert_count"`
}

// OxygenStats summarizes oxygen saturation readings. A saturation below
// 95% counts as an alert.
type OxygenStats struct {
	Count      int `json:"count"`
	Average    int `json:"average"`
	Min        int `json:"min"`
	AlertCount int `json:"alert_count"`
}

// TemperatureStats summarizes temperature readings. Average is rounded to
// one decimal. A temperature of 37.5 °C or more counts as an alert.
type TemperatureStats struct {
	Count      int     `json:"count"`
	Average    float64 `json:"average"`
	Max        float64 `json:"max"`
	AlertCount int     `json:"alert_count"`
}

// DrainageStats totals drainage volumes over the window.
type DrainageStats struct {
	Count      int     `json:"count"`
	TotalLeft  float64 `json:"total_left"`
	TotalRight float64 `json:"total_right"`
	Total      float64 `json:"total"`
}
