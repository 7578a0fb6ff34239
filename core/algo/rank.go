package algo

import (
	"sort"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
)

// RankCauses sorts causes by count in descending order and returns the top
// 'limit' causes. Causes with equal counts keep their input order, so the
// ranking is deterministic for a given input.
func RankCauses(causes []schema.CauseCount, limit int) []schema.CauseCount {
	ranked := make([]schema.CauseCount, len(causes))
	copy(ranked, causes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
