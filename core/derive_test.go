package core

import (
	"testing"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRecord(t *testing.T) {
	tests := []struct {
		name         string
		raw          schema.RawRecord
		wantErr      bool
		wantDuration float64
	}{
		{"ninety minutes", schema.RawRecord{Date: "03-01-2024", Begin: "22:00", End: "23:30"}, false, 90},
		{"zero length", schema.RawRecord{Date: "03-01-2024", Begin: "10:00", End: "10:00"}, false, 0},
		{"end before begin is negative", schema.RawRecord{Date: "03-01-2024", Begin: "23:30", End: "00:15"}, false, -1395},
		{"leap day", schema.RawRecord{Date: "29-02-2024", Begin: "08:00", End: "08:05"}, false, 5},
		{"ISO date rejected", schema.RawRecord{Date: "2024-01-03", Begin: "10:00", End: "11:00"}, true, 0},
		{"impossible date", schema.RawRecord{Date: "31-02-2024", Begin: "10:00", End: "11:00"}, true, 0},
		{"bad begin", schema.RawRecord{Date: "03-01-2024", Begin: "25:00", End: "11:00"}, true, 0},
		{"bad end", schema.RawRecord{Date: "03-01-2024", Begin: "10:00", End: "late"}, true, 0},
		{"empty", schema.RawRecord{}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := DeriveRecord(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantDuration, rec.DurationMinutes, 1e-9)
		})
	}
}

func TestDeriveRecord_Timestamps(t *testing.T) {
	raw := schema.RawRecord{ID: 7, Date: "03-01-2024", Begin: "22:05", End: "23:30", Cause: "Music", Responsible: "Flat 2", Impact: 4}
	rec, err := DeriveRecord(raw)
	require.NoError(t, err)

	assert.Equal(t, raw, rec.RawRecord)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), rec.Day)
	assert.Equal(t, time.Date(2024, 1, 3, 22, 5, 0, 0, time.UTC), rec.BeginAt)
	assert.Equal(t, time.Date(2024, 1, 3, 23, 30, 0, 0, time.UTC), rec.EndAt)
	assert.InDelta(t, 85, rec.DurationMinutes, 1e-9)
}

func TestDeriveRecords_KeepsOrderAndListsRejected(t *testing.T) {
	raw := []schema.RawRecord{
		{ID: 1, Date: "05-01-2024", Begin: "10:00", End: "10:30"},
		{ID: 2, Date: "not a date", Begin: "10:00", End: "10:30"},
		{ID: 3, Date: "01-01-2024", Begin: "09:00", End: "10:00"},
		{ID: 4, Date: "02-01-2024", Begin: "9am", End: "10:00"},
	}

	result := DeriveRecords(raw)

	require.Len(t, result.Records, 2)
	assert.Equal(t, int64(1), result.Records[0].ID)
	assert.Equal(t, int64(3), result.Records[1].ID)
	require.Len(t, result.Rejected, 2)
	assert.Equal(t, int64(2), result.Rejected[0].ID)
	assert.Contains(t, result.Rejected[0].Reason, "invalid date")
	assert.Equal(t, int64(4), result.Rejected[1].ID)
	assert.Contains(t, result.Rejected[1].Reason, "invalid begin time")
}

func TestDeriveRecords_Empty(t *testing.T) {
	result := DeriveRecords(nil)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Rejected)
}

func BenchmarkDeriveRecords(b *testing.B) {
	raw := make([]schema.RawRecord, 1000)
	for i := range raw {
		raw[i] = schema.RawRecord{ID: int64(i + 1), Date: "12-03-2024", Begin: "22:00", End: "23:30", Cause: "Music", Responsible: "Flat 2", Impact: 3}
	}
	for b.Loop() {
		_ = DeriveRecords(raw)
	}
}
