package contract

import (
	"testing"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/stretchr/testify/assert"
)

func TestValidateRecord(t *testing.T) {
	valid := schema.RawRecord{
		Date:        "14-03-2025",
		Begin:       "22:15",
		End:         "23:40",
		Cause:       "Music",
		Responsible: "Flat 3B",
		Impact:      4,
	}

	tests := []struct {
		name        string
		mutate      func(*schema.RawRecord)
		errContains string
	}{
		{name: "valid", mutate: func(*schema.RawRecord) {}},
		{name: "iso date", mutate: func(r *schema.RawRecord) { r.Date = "2025-03-14" }, errContains: "DD-MM-YYYY"},
		{name: "impossible date", mutate: func(r *schema.RawRecord) { r.Date = "31-02-2025" }, errContains: "not a calendar date"},
		{name: "short time", mutate: func(r *schema.RawRecord) { r.Begin = "9:15" }, errContains: "HH:MM"},
		{name: "impossible time", mutate: func(r *schema.RawRecord) { r.End = "24:30" }, errContains: "not a time of day"},
		{name: "end before begin", mutate: func(r *schema.RawRecord) { r.End = "21:00" }, errContains: "must be before"},
		{name: "zero length", mutate: func(r *schema.RawRecord) { r.End = r.Begin }, errContains: "must be before"},
		{name: "blank cause", mutate: func(r *schema.RawRecord) { r.Cause = "  " }, errContains: "required"},
		{name: "blank responsible", mutate: func(r *schema.RawRecord) { r.Responsible = "" }, errContains: "required"},
		{name: "impact too low", mutate: func(r *schema.RawRecord) { r.Impact = 0 }, errContains: "impact"},
		{name: "impact too high", mutate: func(r *schema.RawRecord) { r.Impact = 6 }, errContains: "impact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid
			tt.mutate(&rec)
			err := ValidateRecord(rec)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestValidateAction(t *testing.T) {
	assert.NoError(t, ValidateAction(schema.RemedialAction{
		Period:      "March 2025",
		Description: "Letter to landlord",
		Outcome:     "No reply",
	}))
	assert.Error(t, ValidateAction(schema.RemedialAction{Period: "March 2025", Description: "Letter"}))
}

func TestApplyEntryDefaults(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 40, 59, 0, time.UTC)

	rec := schema.RawRecord{Begin: "22:15"}
	ApplyEntryDefaults(&rec, now)
	assert.Equal(t, "14-03-2025", rec.Date)
	assert.Equal(t, "22:15", rec.Begin)
	assert.Equal(t, "23:40", rec.End)
	assert.NoError(t, ValidateRecord(schema.RawRecord{
		Date: rec.Date, Begin: rec.Begin, End: rec.End, Cause: "Music", Responsible: "Flat 3B", Impact: 3,
	}))

	// Begin and end both default to now, which entry validation rejects.
	rec = schema.RawRecord{Cause: "Music", Responsible: "Flat 3B", Impact: 3}
	ApplyEntryDefaults(&rec, now)
	assert.ErrorContains(t, ValidateRecord(rec), "must be before")
}
