package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/filtering"
)

func TestParseCompanyKeepsCasing(t *testing.T) {
	res := Parse("Show me people from Google")

	require.True(t, res.Matched())
	require.Len(t, res.Actions, 2)
	assert.Equal(t, filtering.CompanyAction("Google"), res.Actions[0])
	assert.Equal(t, filtering.TabAction(filtering.TabCompanies), res.Actions[1])
	assert.Equal(t, "I'll filter for talent from Google. Switching to the Company Watch tab. ", res.Response)
}

func TestParseSkill(t *testing.T) {
	res := Parse("Find candidates with React experience")

	require.Len(t, res.Actions, 1)
	assert.Equal(t, filtering.SkillAction("React"), res.Actions[0])
	assert.Equal(t, "Looking for candidates with React skills. ", res.Response)
}

func TestParseApproachingTenure(t *testing.T) {
	res := Parse("Who is approaching average tenure?")

	require.Len(t, res.Actions, 1)
	assert.Equal(t, filtering.ApproachingTenureAction(), res.Actions[0])
}

func TestParseLayoffAndSentiment(t *testing.T) {
	res := Parse("Anyone laid off recently?")
	require.Len(t, res.Actions, 1)
	assert.Equal(t, filtering.LayoffAction(), res.Actions[0])

	res = Parse("any low morale signals?")
	require.Len(t, res.Actions, 1)
	assert.Equal(t, filtering.SentimentIssuesAction(), res.Actions[0])
}

func TestParseTabSwitches(t *testing.T) {
	res := Parse("show open positions")
	require.Len(t, res.Actions, 1)
	assert.Equal(t, filtering.TabAction(filtering.TabRoles), res.Actions[0])

	res = Parse("open the watch list")
	require.Len(t, res.Actions, 1)
	assert.Equal(t, filtering.TabAction(filtering.TabCompanies), res.Actions[0])
}

func TestParseCombinedRules(t *testing.T) {
	res := Parse("Find candidates with React experience who were affected by layoffs")

	require.Len(t, res.Actions, 2)
	assert.Equal(t, filtering.SkillAction("React"), res.Actions[0])
	assert.Equal(t, filtering.LayoffAction(), res.Actions[1])
	assert.Equal(t,
		"Looking for candidates with React skills. Filtering for candidates affected by layoffs. ",
		res.Response)
}

func TestParseFallback(t *testing.T) {
	res := Parse("hello there")

	assert.False(t, res.Matched())
	assert.Empty(t, res.Actions)
	assert.Equal(t, fallbackResponse, res.Response)
}
