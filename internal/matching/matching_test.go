package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charnpreetsingh/just-in-time-recruiter/internal/talent"
)

func score(s int) *int { return &s }

func TestAggregateEmitsOneEntryPerMatch(t *testing.T) {
	pool := &talent.Pool{
		Items: []*talent.Record{
			{
				ID:      "t1",
				Name:    "Sarah Lee",
				Company: "Acme Corp",
				RoleMatches: []*talent.RoleMatch{
					{RoleID: "r1", MatchScore: score(92), MatchReasons: []string{"Strong React skill match"}},
					{RoleID: "r2", MatchScore: score(81)},
				},
			},
			{
				ID:      "t2",
				Name:    "Jordan Kim",
				Company: "Gamma Inc",
			},
		},
	}

	entries := Aggregate(pool, nil)
	require.Len(t, entries, 3)

	assert.Equal(t, "t1_r1", entries[0].Key())
	assert.Equal(t, "t1_r2", entries[1].Key())
	assert.Equal(t, "t2", entries[2].Key())

	assert.Equal(t, 92, *entries[0].MatchScore)
	assert.Equal(t, []string{"Strong React skill match"}, entries[0].MatchReasons)

	// Null-match entry keeps the talent fields and nothing else.
	assert.Nil(t, entries[2].MatchScore)
	assert.Nil(t, entries[2].MatchReasons)
	assert.Empty(t, entries[2].RoleID)
	assert.Equal(t, "Jordan Kim", entries[2].Name)
}

func TestAggregateDuplicateKeyLastWriteWins(t *testing.T) {
	pool := &talent.Pool{
		Items: []*talent.Record{
			{
				ID: "t1",
				RoleMatches: []*talent.RoleMatch{
					{RoleID: "r1", MatchScore: score(50)},
					{RoleID: "r1", MatchScore: score(75)},
				},
			},
		},
	}

	entries := Aggregate(pool, nil)
	require.Len(t, entries, 1)
	assert.Equal(t, 75, *entries[0].MatchScore)
}

func TestAggregateAttachesTenureAnalysis(t *testing.T) {
	end := "2022-03-31"
	pool := &talent.Pool{
		Items: []*talent.Record{
			{ID: "t1", Name: "Jordan Kim"},
			{ID: "t2", Name: "No History"},
		},
	}
	histories := talent.Histories{
		"t1": {
			{TalentID: "t1", DurationMonths: 28},
			{TalentID: "t1", DurationMonths: 31, EndDate: &end},
		},
	}

	entries := Aggregate(pool, histories)
	require.Len(t, entries, 2)

	first := entries[0].Tenure
	require.NotNil(t, first)
	assert.Equal(t, 31, first.AverageTenureMonths)
	require.NotNil(t, first.CurrentTenureMonths)
	assert.Equal(t, 28, *first.CurrentTenureMonths)
	// 28/31 = 90%, inside the approaching window.
	assert.True(t, first.IsApproachingAverage)

	// Missing history resolves to the zero-value analysis, never nil.
	second := entries[1].Tenure
	require.NotNil(t, second)
	assert.Equal(t, 0, second.AverageTenureMonths)
	assert.Nil(t, second.CurrentTenureMonths)
	assert.False(t, second.IsApproachingAverage)
}
