// Package agg has aggregation logic for derived disturbance records.
// Every function is pure and safe on empty input.
package agg

import (
	"sort"
	"time"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/core/algo"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"gonum.org/v1/gonum/stat"
)

// TopCause returns the most frequent cause. On a tie the cause seen first wins.
// ok is false for an empty input.
func TopCause(records []schema.Record) (cause string, ok bool) {
	return mode(records, func(r schema.Record) string { return r.Cause })
}

// TopResponsible returns the most frequent responsible party, with the same tie rule as TopCause.
func TopResponsible(records []schema.Record) (responsible string, ok bool) {
	return mode(records, func(r schema.Record) string { return r.Responsible })
}

// mode finds the most frequent label in first-seen order.
func mode(records []schema.Record, label func(schema.Record) string) (string, bool) {
	counts := countInOrder(records, label)
	if len(counts) == 0 {
		return "", false
	}
	best := counts[0]
	for _, c := range counts[1:] {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Cause, true
}

// countInOrder counts labels, listing them in the order they first appear.
func countInOrder(records []schema.Record, label func(schema.Record) string) []schema.CauseCount {
	index := make(map[string]int)
	var counts []schema.CauseCount
	for _, r := range records {
		key := label(r)
		i, seen := index[key]
		if !seen {
			i = len(counts)
			index[key] = i
			counts = append(counts, schema.CauseCount{Cause: key})
		}
		counts[i].Count++
	}
	return counts
}

// MeanImpact returns the arithmetic mean of the impact scores, or 0 for an empty input.
func MeanImpact(records []schema.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	xs := make([]float64, len(records))
	for i, r := range records {
		xs[i] = float64(r.Impact)
	}
	return stat.Mean(xs, nil)
}

// MeanDuration returns the mean duration in minutes, or 0 for an empty input.
func MeanDuration(records []schema.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	return stat.Mean(durations(records), nil)
}

func durations(records []schema.Record) []float64 {
	xs := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.DurationMinutes
	}
	return xs
}

// RankCauses returns the n most frequent causes, by count descending.
// Equal counts keep first-seen order. n <= 0 returns every cause.
func RankCauses(records []schema.Record, n int) []schema.CauseCount {
	counts := countInOrder(records, func(r schema.Record) string { return r.Cause })
	if n <= 0 {
		n = len(counts)
	}
	return algo.RankCauses(counts, n)
}

// HourHistogram counts records by the hour of their begin time.
func HourHistogram(records []schema.Record) schema.HourHistogram {
	var h schema.HourHistogram
	for _, r := range records {
		h[r.BeginAt.Hour()]++
	}
	return h
}

// DurationHistogram splits the duration range into equal-width bins and marks the modal bin.
// When all durations are equal the range is widened to one minute around that value.
func DurationHistogram(records []schema.Record, bins int) schema.DurationHistogram {
	if len(records) == 0 || bins <= 0 {
		return schema.DurationHistogram{ModalBin: -1}
	}

	xs := durations(records)
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)

	hist := schema.DurationHistogram{Bins: make([]schema.DurationBin, bins)}
	for i := range hist.Bins {
		hist.Bins[i].Min = lo + float64(i)*width
		hist.Bins[i].Max = lo + float64(i+1)*width
	}
	hist.Bins[bins-1].Max = hi

	for _, x := range xs {
		i := int((x - lo) / width)
		if i >= bins {
			i = bins - 1 // the maximum belongs to the last, closed bin
		}
		hist.Bins[i].Count++
	}

	for i, b := range hist.Bins {
		if b.Count > hist.Bins[hist.ModalBin].Count {
			hist.ModalBin = i
		}
	}
	return hist
}

// DailyTrend returns the mean duration per calendar date, ascending by date.
func DailyTrend(records []schema.Record) []schema.TrendPoint {
	type acc struct {
		sum   float64
		count int
	}
	byDay := make(map[time.Time]*acc)
	for _, r := range records {
		a, ok := byDay[r.Day]
		if !ok {
			a = &acc{}
			byDay[r.Day] = a
		}
		a.sum += r.DurationMinutes
		a.count++
	}

	points := make([]schema.TrendPoint, 0, len(byDay))
	for day, a := range byDay {
		points = append(points, schema.TrendPoint{
			Date:            day,
			MeanDuration:    a.sum / float64(a.count),
			NumDisturbances: a.count,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// Tail returns the n most recent records by begin timestamp, oldest first.
// The input slice is not reordered.
func Tail(records []schema.Record, n int) []schema.Record {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	sorted := make([]schema.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BeginAt.Before(sorted[j].BeginAt)
	})
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// Summarize computes the scalar statistics, the ranked causes and the hour histogram.
// NumRejected is left for the caller, which knows the dataset.
func Summarize(records []schema.Record, topN int) schema.Summary {
	topCause, hasTopCause := TopCause(records)
	topResponsible, _ := TopResponsible(records)
	return schema.Summary{
		NumRecords:     len(records),
		TopCause:       topCause,
		HasTopCause:    hasTopCause,
		TopResponsible: topResponsible,
		MeanImpact:     MeanImpact(records),
		MeanDuration:   MeanDuration(records),
		RankedCauses:   RankCauses(records, topN),
		Hours:          HourHistogram(records),
	}
}
