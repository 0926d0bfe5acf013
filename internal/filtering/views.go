package filtering

import (
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/company"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/matching"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/reasons"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/talent"
	"github.com/charnpreetsingh/just-in-time-recruiter/internal/tenure"
)

// UncategorizedDepartment is the bucket for roles with no department set.
const UncategorizedDepartment = "Uncategorized"

// RoleView is an open role together with its matching candidates.
type RoleView struct {
	Role           *talent.Role
	MatchingTalent []*matching.TalentWithMatch
}

// Department returns the role's department, falling back to the
// uncategorized bucket.
func (v *RoleView) Department() string {
	if v.Role.Department == "" {
		return UncategorizedDepartment
	}
	return v.Role.Department
}

// BuildRoleViews groups the flat match set by role, preserving role order and
// the entries' aggregation order within each role. Entries without a role
// match are not part of any role view.
func BuildRoleViews(roles *talent.Roles, entries []*matching.TalentWithMatch) []*RoleView {
	byRole := make(map[string][]*matching.TalentWithMatch)
	for _, entry := range entries {
		if entry.RoleID == "" {
			continue
		}
		byRole[entry.RoleID] = append(byRole[entry.RoleID], entry)
	}

	views := make([]*RoleView, 0, roles.Len())
	for _, role := range roles.Items {
		views = append(views, &RoleView{
			Role:           role,
			MatchingTalent: byRole[role.ID],
		})
	}
	return views
}

// TalentCard is a talent entry prepared for display: match reasons bucketed
// by category, a sentiment flag, and tenure figures rendered as text.
type TalentCard struct {
	*matching.TalentWithMatch
	Reasons       reasons.Buckets
	SentimentFlag bool
	CurrentTenure string
	AverageTenure string
}

// BuildTalentCards renders entries into cards, preserving order.
func BuildTalentCards(entries []*matching.TalentWithMatch) []*TalentCard {
	cards := make([]*TalentCard, 0, len(entries))
	for _, entry := range entries {
		card := &TalentCard{
			TalentWithMatch: entry,
			Reasons:         reasons.Classify(entry.MatchReasons),
			SentimentFlag:   reasons.HasSentiment(entry.MatchReasons),
			CurrentTenure:   tenure.FormatMonths(nil),
			AverageTenure:   tenure.FormatMonths(nil),
		}
		if entry.Tenure != nil {
			card.CurrentTenure = tenure.FormatMonths(entry.Tenure.CurrentTenureMonths)
			if avg := entry.Tenure.AverageTenureMonths; avg > 0 {
				card.AverageTenure = tenure.FormatMonths(&avg)
			}
		}
		cards = append(cards, card)
	}
	return cards
}

// CompanyView is a company derived from the talent set, enriched with its
// tracked (or defaulted) profile and per-company signal counts.
type CompanyView struct {
	Name              string
	Profile           *company.Profile
	Talent            []*matching.TalentWithMatch
	ApproachingTenure int
	LayoffAffected    int
}

// BuildCompanyViews derives one view per distinct company in the match set,
// in first-seen order. Profiles missing from the lookup resolve to the
// documented defaults.
func BuildCompanyViews(entries []*matching.TalentWithMatch, lookup company.Lookup) []*CompanyView {
	byName := make(map[string]*CompanyView)
	views := make([]*CompanyView, 0)

	for _, entry := range entries {
		view, ok := byName[entry.Company]
		if !ok {
			view = &CompanyView{
				Name:    entry.Company,
				Profile: company.Resolve(lookup, entry.Company),
			}
			byName[entry.Company] = view
			views = append(views, view)
		}

		view.Talent = append(view.Talent, entry)
		if entry.Tenure != nil && entry.Tenure.IsApproachingAverage {
			view.ApproachingTenure++
		}
		if entry.LayoffDate != nil {
			view.LayoffAffected++
		}
	}

	return views
}
