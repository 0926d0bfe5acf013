package filtering

import (
	"sort"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/matching"
)

// Employment narrows a talent list by current employment status.
type Employment string

const (
	EmploymentAll     Employment = "all"
	EmploymentLayoff  Employment = "layoff"
	EmploymentCurrent Employment = "current"
)

// SortByMatchScore orders entries by match score, highest first. Entries
// without a score sort as zero. The sort is stable so aggregation order
// breaks ties.
func SortByMatchScore(entries []*matching.TalentWithMatch) {
	sort.SliceStable(entries, func(i, j int) bool {
		return scoreOf(entries[i]) > scoreOf(entries[j])
	})
}

// SortByLayoffDate orders entries by layoff date, most recent first.
// Dates are ISO-8601 strings so byte comparison matches chronological
// order. Entries without a layoff date sort last.
func SortByLayoffDate(entries []*matching.TalentWithMatch) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].LayoffDate, entries[j].LayoffDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})
}

// FilterByEmployment keeps only entries matching the given employment
// status. EmploymentAll returns the input unchanged.
func FilterByEmployment(entries []*matching.TalentWithMatch, status Employment) []*matching.TalentWithMatch {
	if status == EmploymentAll || status == "" {
		return entries
	}

	kept := make([]*matching.TalentWithMatch, 0, len(entries))
	for _, e := range entries {
		laidOff := e.LayoffDate != nil
		if (status == EmploymentLayoff) == laidOff {
			kept = append(kept, e)
		}
	}
	return kept
}

func scoreOf(t *matching.TalentWithMatch) int {
	if t.MatchScore == nil {
		return 0
	}
	return *t.MatchScore
}
