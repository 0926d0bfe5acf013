// Package filtering owns the session filter state and the composable
// filter pipelines over the talent, role, and company views. All active
// predicates combine with AND semantics; absent or "all" filters always pass.
package filtering

import (
	"strings"

	"go.uber.org/zap"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/logger"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/matching"
)

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

func (s Step) fields() []zap.Field {
	return []zap.Field{
		zap.Int("initial", s.Initial),
		zap.Int("dropped", s.Dropped),
		zap.Int("left", s.Left),
	}
}

// step is one named predicate in a view's pipeline. Disabled steps pass
// everything through without logging.
type step[T any] struct {
	name    string
	enabled bool
	keep    func(T) bool
}

// Pipeline runs the per-view filter steps. It holds no view data; callers
// pass a state snapshot and the collection on every run, so running twice
// with identical inputs produces identical output.
type Pipeline struct {
	logger *zap.Logger
}

func NewPipeline(log *zap.Logger) *Pipeline {
	return &Pipeline{logger: log}
}

// Talents filters the flat talent/match set for the talent view.
func (p *Pipeline) Talents(snap Snapshot, entries []*matching.TalentWithMatch) []*matching.TalentWithMatch {
	steps := []step[*matching.TalentWithMatch]{
		{
			name:    "search",
			enabled: snap.SearchTerm != "",
			keep: func(t *matching.TalentWithMatch) bool {
				return containsFold(t.Name, snap.SearchTerm) ||
					containsFold(t.Title, snap.SearchTerm) ||
					containsFold(t.Company, snap.SearchTerm)
			},
		},
		{
			name:    "layoff_affected",
			enabled: snap.ShowOnlyLayoffAffected,
			keep: func(t *matching.TalentWithMatch) bool {
				return t.LayoffDate != nil
			},
		},
		{
			name:    "skill",
			enabled: snap.FilterBySkill != "",
			keep: func(t *matching.TalentWithMatch) bool {
				return hasSkill(t, snap.FilterBySkill)
			},
		},
		{
			name:    "approaching_tenure",
			enabled: snap.ShowApproachingTenure,
			keep: func(t *matching.TalentWithMatch) bool {
				return t.Tenure != nil && t.Tenure.IsApproachingAverage
			},
		},
	}

	return runSteps(p.logger, "talent", entries, steps)
}

// Roles filters the role views.
func (p *Pipeline) Roles(snap Snapshot, views []*RoleView) []*RoleView {
	steps := []step[*RoleView]{
		{
			name:    "search",
			enabled: snap.SearchTerm != "",
			keep: func(v *RoleView) bool {
				return containsFold(v.Role.Title, snap.SearchTerm) ||
					containsFold(v.Role.Description, snap.SearchTerm) ||
					containsFold(v.Department(), snap.SearchTerm)
			},
		},
		{
			name:    "department",
			enabled: snap.Department != allFilter && snap.Department != "",
			keep: func(v *RoleView) bool {
				return strings.EqualFold(v.Department(), snap.Department)
			},
		},
		{
			name:    "layoff_affected",
			enabled: snap.ShowOnlyLayoffAffected,
			keep: func(v *RoleView) bool {
				for _, t := range v.MatchingTalent {
					if t.LayoffDate != nil {
						return true
					}
				}
				return false
			},
		},
		{
			name:    "skill",
			enabled: snap.FilterBySkill != "",
			keep: func(v *RoleView) bool {
				for _, t := range v.MatchingTalent {
					if hasSkill(t, snap.FilterBySkill) {
						return true
					}
				}
				return false
			},
		},
	}

	return runSteps(p.logger, "roles", views, steps)
}

// Companies filters the company views.
func (p *Pipeline) Companies(snap Snapshot, views []*CompanyView) []*CompanyView {
	steps := []step[*CompanyView]{
		{
			name:    "search",
			enabled: snap.SearchTerm != "",
			keep: func(v *CompanyView) bool {
				return containsFold(v.Name, snap.SearchTerm)
			},
		},
		{
			name:    "industry",
			enabled: snap.Industry != allFilter && snap.Industry != "",
			keep: func(v *CompanyView) bool {
				return strings.EqualFold(v.Profile.Industry, snap.Industry)
			},
		},
		{
			name:    "sentiment_issues",
			enabled: snap.ShowSentimentIssues,
			keep: func(v *CompanyView) bool {
				return v.Profile.HasSentimentIssues()
			},
		},
		{
			name:    "approaching_tenure",
			enabled: snap.ShowApproachingTenure,
			keep: func(v *CompanyView) bool {
				return v.ApproachingTenure > 0
			},
		},
	}

	return runSteps(p.logger, "companies", views, steps)
}

func runSteps[T any](log *zap.Logger, view string, items []T, steps []step[T]) []T {
	for _, s := range steps {
		if !s.enabled {
			continue
		}

		initial := len(items)
		kept := make([]T, 0, initial)
		for _, item := range items {
			if s.keep(item) {
				kept = append(kept, item)
			}
		}
		items = kept

		st := Step{Initial: initial, Dropped: initial - len(items), Left: len(items)}
		if log != nil {
			fields := []zap.Field{
				zap.String(logger.FieldView, view),
				zap.String(logger.FieldFilter, s.name),
			}
			log.Info("filter step", append(fields, st.fields()...)...)
		}
	}

	return items
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func hasSkill(t *matching.TalentWithMatch, term string) bool {
	for _, skill := range t.Skills {
		if containsFold(skill, term) {
			return true
		}
	}
	return false
}
