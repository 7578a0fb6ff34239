package contract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
)

var (
	dateRegex = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidateRecord checks a disturbance record before it reaches the store.
// Unlike the analytics path, entry enforces begin < end on the same day.
func ValidateRecord(rec schema.RawRecord) error {
	if !dateRegex.MatchString(rec.Date) {
		return fmt.Errorf("date must be DD-MM-YYYY (received %q)", rec.Date)
	}
	if _, err := time.Parse(schema.DateLayout, rec.Date); err != nil {
		return fmt.Errorf("date %q is not a calendar date: %w", rec.Date, err)
	}
	for _, t := range []string{rec.Begin, rec.End} {
		if !timeRegex.MatchString(t) {
			return fmt.Errorf("time must be HH:MM (received %q)", t)
		}
		if _, err := time.Parse(schema.TimeLayout, t); err != nil {
			return fmt.Errorf("time %q is not a time of day: %w", t, err)
		}
	}
	// Zero-padded HH:MM compares correctly as text.
	if rec.Begin >= rec.End {
		return fmt.Errorf("begin (%s) must be before end (%s)", rec.Begin, rec.End)
	}
	if strings.TrimSpace(rec.Cause) == "" || strings.TrimSpace(rec.Responsible) == "" {
		return errors.New("cause and responsible party are required")
	}
	if rec.Impact < schema.MinImpact || rec.Impact > schema.MaxImpact {
		return fmt.Errorf("impact must be between %d and %d (received %d)", schema.MinImpact, schema.MaxImpact, rec.Impact)
	}
	return nil
}

// ValidateAction checks a remedial action before it reaches the store.
func ValidateAction(action schema.RemedialAction) error {
	for _, field := range []string{action.Period, action.Description, action.Outcome} {
		if strings.TrimSpace(field) == "" {
			return errors.New("period, description and outcome are required")
		}
	}
	return nil
}

// ApplyEntryDefaults fills an empty date, begin or end with now, the way the entry form is prefilled.
// now is converted to UTC first.
func ApplyEntryDefaults(rec *schema.RawRecord, now time.Time) {
	now = now.UTC()
	if rec.Date == "" {
		rec.Date = now.Format(schema.DateLayout)
	}
	if rec.Begin == "" {
		rec.Begin = now.Format(schema.TimeLayout)
	}
	if rec.End == "" {
		rec.End = now.Format(schema.TimeLayout)
	}
}
