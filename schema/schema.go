// Package schema has models, identities and constants shared by all parts of protokoll.
package schema

import "time"

// RawRecord is a disturbance record exactly as persisted in the store.
// Date, Begin and End are kept as text; interpreting them is the job of the deriver.
type RawRecord struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`        // DD-MM-YYYY
	Begin       string `json:"begin"`       // HH:MM
	End         string `json:"end"`         // HH:MM
	Cause       string `json:"cause"`       // Free-text cause category
	Responsible string `json:"responsible"` // Free-text responsible party
	Impact      int    `json:"impact"`      // Subjective severity 1-5
}

// Record is a disturbance record after date/time normalization.
type Record struct {
	RawRecord
	Day             time.Time `json:"day"`      // Calendar date at UTC midnight
	BeginAt         time.Time `json:"begin_at"` // Day + Begin
	EndAt           time.Time `json:"end_at"`   // Day + End
	DurationMinutes float64   `json:"duration_minutes"`
}

// RejectedRecord identifies a raw record that could not be derived.
type RejectedRecord struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// DeriveResult holds the accepted records in source order and the rejected ones.
type DeriveResult struct {
	Records  []Record
	Rejected []RejectedRecord
}

// Dataset is an immutable snapshot of the derived records.
// A refresh builds a new Dataset and never mutates a published one.
type Dataset struct {
	Records  []Record
	Rejected []RejectedRecord
	BuiltAt  time.Time
}

// Len returns the number of usable records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Empty reports whether the dataset has no usable records.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// RemedialAction is a measure taken in response to disturbances.
type RemedialAction struct {
	ID          int64  `json:"id"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Outcome     string `json:"outcome"`
}
