package core

import (
	"fmt"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
)

// DeriveRecord normalizes the date and times of a raw record and computes its duration.
// Begin and end are placed on the same calendar date, so an end before the begin
// yields a negative duration rather than an error.
func DeriveRecord(raw schema.RawRecord) (schema.Record, error) {
	day, err := time.ParseInLocation(schema.DateLayout, raw.Date, time.UTC)
	if err != nil {
		return schema.Record{}, fmt.Errorf("invalid date %q: %w", raw.Date, err)
	}
	begin, err := clockOn(day, raw.Begin)
	if err != nil {
		return schema.Record{}, fmt.Errorf("invalid begin time %q: %w", raw.Begin, err)
	}
	end, err := clockOn(day, raw.End)
	if err != nil {
		return schema.Record{}, fmt.Errorf("invalid end time %q: %w", raw.End, err)
	}

	return schema.Record{
		RawRecord:       raw,
		Day:             day,
		BeginAt:         begin,
		EndAt:           end,
		DurationMinutes: end.Sub(begin).Minutes(),
	}, nil
}

// clockOn combines a calendar date with an HH:MM wall clock time.
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(schema.TimeLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// DeriveRecords derives every raw record in order.
// Records that cannot be parsed are left out of Records and listed in Rejected.
func DeriveRecords(raw []schema.RawRecord) schema.DeriveResult {
	result := schema.DeriveResult{Records: make([]schema.Record, 0, len(raw))}
	for _, r := range raw {
		rec, err := DeriveRecord(r)
		if err != nil {
			result.Rejected = append(result.Rejected, schema.RejectedRecord{ID: r.ID, Reason: err.Error()})
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result
}
