package schema

import "time"

// CauseCount is one row of the ranked cause table.
type CauseCount struct {
	Cause string `json:"cause"`
	Count int    `json:"count"`
}

// HourHistogram counts records per begin hour. All 24 buckets are always present.
type HourHistogram [HoursPerDay]int

// Peak returns the hour with the highest count, preferring the earliest hour on ties.
// ok is false when every bucket is zero.
func (h HourHistogram) Peak() (hour int, ok bool) {
	best := 0
	for i, c := range h {
		if c > h[best] {
			best = i
		}
	}
	return best, h[best] > 0
}

// Total returns the sum of all buckets.
func (h HourHistogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// DurationBin is one equal-width bin of the duration distribution.
type DurationBin struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Center returns the midpoint of the bin.
func (b DurationBin) Center() float64 {
	return (b.Min + b.Max) / 2
}

// DurationHistogram is the distribution of durations with its modal bin marked.
type DurationHistogram struct {
	Bins     []DurationBin `json:"bins"`
	ModalBin int           `json:"modal_bin"` // Index into Bins; -1 when empty
}

// Empty reports whether there is nothing to draw.
func (h DurationHistogram) Empty() bool {
	return len(h.Bins) == 0
}

// TrendPoint is the mean duration on one calendar date.
type TrendPoint struct {
	Date            time.Time `json:"date"`
	MeanDuration    float64   `json:"mean_duration"`
	NumDisturbances int       `json:"num_disturbances"`
}

// ForecastPoint is a predicted duration for a future date.
type ForecastPoint struct {
	Date             time.Time `json:"date"`
	PredictedMinutes float64   `json:"predicted_minutes"`
}

// Summary is the scalar and tabular view of a dataset.
type Summary struct {
	NumRecords     int           `json:"num_records"`
	NumRejected    int           `json:"num_rejected"`
	TopCause       string        `json:"top_cause,omitempty"`
	HasTopCause    bool          `json:"has_top_cause"`
	TopResponsible string        `json:"top_responsible,omitempty"`
	MeanImpact     float64       `json:"mean_impact"`
	MeanDuration   float64       `json:"mean_duration"`
	RankedCauses   []CauseCount  `json:"ranked_causes"`
	Hours          HourHistogram `json:"hours"`
}
