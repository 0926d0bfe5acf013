// Package matching reconciles talent records with their per-role match
// sub-records into the flat working set the filtering pipeline operates on.
package matching

import (
	"fmt"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/talent"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/tenure"
)

// TalentWithMatch is a talent record merged with at most one role match. A
// talent without any match is represented by a single entry with nil match
// fields. Each entry also carries the person's derived tenure analysis.
type TalentWithMatch struct {
	ID           string
	Name         string
	Title        string
	Company      string
	Location     string
	LayoffDate   *string
	Skills       []string
	LinkedinURL  string
	Email        string
	MatchScore   *int
	MatchReasons []string
	RoleID       string
	Tenure       *tenure.Analysis
}

// Key uniquely identifies the entry: "talentID_roleID" when a match is
// present, the bare talent id otherwise.
func (t *TalentWithMatch) Key() string {
	if t.RoleID == "" {
		return t.ID
	}
	return fmt.Sprintf("%s_%s", t.ID, t.RoleID)
}

// Aggregate flattens the pool into TalentWithMatch entries: one per role
// match, or one null-match entry for talents with no matches. Entries are
// held in an insertion-ordered map so a later entry with an identical key
// overwrites the earlier one without changing its position; keys are expected
// unique by construction, so the overwrite is de-duplication, not a
// tie-break policy. Output order follows the pool's iteration order, with a
// multi-match talent's entries contiguous.
func Aggregate(pool *talent.Pool, histories talent.Histories) []*TalentWithMatch {
	byKey := make(map[string]*TalentWithMatch)
	order := make([]string, 0, pool.Len())

	insert := func(entry *TalentWithMatch) {
		key := entry.Key()
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = entry
	}

	for _, record := range pool.Items {
		analysis := tenure.Analyze(histories[record.ID])

		if len(record.RoleMatches) == 0 {
			insert(merge(record, nil, analysis))
			continue
		}

		for _, match := range record.RoleMatches {
			insert(merge(record, match, analysis))
		}
	}

	result := make([]*TalentWithMatch, 0, len(order))
	for _, key := range order {
		result = append(result, byKey[key])
	}
	return result
}

func merge(record *talent.Record, match *talent.RoleMatch, analysis *tenure.Analysis) *TalentWithMatch {
	entry := &TalentWithMatch{
		ID:          record.ID,
		Name:        record.Name,
		Title:       record.Title,
		Company:     record.Company,
		Location:    record.Location,
		LayoffDate:  record.LayoffDate,
		Skills:      record.Skills,
		LinkedinURL: record.LinkedinURL,
		Email:       record.Email,
		Tenure:      analysis,
	}

	if match != nil {
		entry.MatchScore = match.MatchScore
		entry.MatchReasons = match.MatchReasons
		entry.RoleID = match.RoleID
	}

	return entry
}
