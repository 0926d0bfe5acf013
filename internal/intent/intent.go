// Package intent maps free-form assistant questions onto filter actions
// using a fixed, ordered rule table. Rules are plain regular expressions
// and keyword checks. Every rule that matches contributes both its actions
// and a sentence to the reply, so one question can drive several filters.
package intent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/filtering"
)

// Result is the outcome of parsing one message: the reply to show and the
// filter actions to apply. Actions is empty when no rule matched.
type Result struct {
	Response string
	Actions  []filtering.Action
}

// Matched reports whether any rule fired.
func (r Result) Matched() bool {
	return len(r.Actions) > 0
}

const fallbackResponse = "I'm not sure how to filter based on that. " +
	"Try asking about specific companies, skills, layoffs, tenure, or sentiment issues."

// Extraction patterns run against the original message so captured names
// keep their casing. First matching pattern wins.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)from\s+([a-z0-9\s]+)`),
	regexp.MustCompile(`(?i)at\s+([a-z0-9\s]+)`),
	regexp.MustCompile(`(?i)work(?:ing|ed)?\s+(?:at|for)\s+([a-z0-9\s]+)`),
}

var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)with\s+([a-z0-9\s]+)\s+(?:skill|experience)`),
	regexp.MustCompile(`(?i)who\s+knows?\s+([a-z0-9\s]+)`),
}

// Parse evaluates the rule table against the message. When nothing matches,
// the result carries only the fallback reply.
func Parse(message string) Result {
	lower := strings.ToLower(message)

	var reply strings.Builder
	var actions []filtering.Action

	if name := extract(companyPatterns, message); name != "" {
		actions = append(actions,
			filtering.CompanyAction(name),
			filtering.TabAction(filtering.TabCompanies),
		)
		fmt.Fprintf(&reply, "I'll filter for talent from %s. Switching to the Company Watch tab. ", name)
	}

	if skill := extract(skillPatterns, message); skill != "" {
		actions = append(actions, filtering.SkillAction(skill))
		fmt.Fprintf(&reply, "Looking for candidates with %s skills. ", skill)
	}

	if containsAny(lower, "layoff", "laid off") {
		actions = append(actions, filtering.LayoffAction())
		reply.WriteString("Filtering for candidates affected by layoffs. ")
	}

	if containsAny(lower, "tenure", "approaching average") {
		actions = append(actions, filtering.ApproachingTenureAction())
		reply.WriteString("Showing candidates approaching their average tenure. ")
	}

	if containsAny(lower, "sentiment", "low morale", "company issues") {
		actions = append(actions, filtering.SentimentIssuesAction())
		reply.WriteString("Filtering for candidates from companies with sentiment issues. ")
	}

	if containsAny(lower, "role", "job", "position") {
		actions = append(actions, filtering.TabAction(filtering.TabRoles))
		reply.WriteString("Switching to the Open Roles tab. ")
	}

	if containsAny(lower, "company", "companies", "watch") {
		actions = append(actions, filtering.TabAction(filtering.TabCompanies))
		reply.WriteString("Switching to the Company Watch tab. ")
	}

	if len(actions) == 0 {
		return Result{Response: fallbackResponse}
	}

	return Result{
		Response: reply.String(),
		Actions:  actions,
	}
}

func extract(patterns []*regexp.Regexp, message string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(message); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
