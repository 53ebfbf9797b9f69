package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octoscout/octoscout/internal/domain"
)

func buildRecordSet(totals map[string]int, order []string) *domain.RecordSet {
	now := time.Now()
	set := domain.NewRecordSet()
	for _, username := range order {
		rec := domain.NewContributorRecord(domain.Profile{Username: username}, "acme/widgets", now)
		rec.Apply(domain.ContributionEvent{Kind: domain.KindCommit, Count: totals[username]}, now)
		set.Put(rec)
	}
	return set
}

func usernames(records []*domain.ContributorRecord) []string {
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Username
	}
	return names
}

// TestRank uses a table-driven approach to cover thresholds and ordering.
func TestRank(t *testing.T) {
	testCases := []struct {
		name      string
		totals    map[string]int
		order     []string
		threshold int
		expected  []string
	}{
		{
			name:      "sorts by total descending",
			totals:    map[string]int{"alice": 5, "bob": 12, "carol": 1},
			order:     []string{"alice", "bob", "carol"},
			threshold: 1,
			expected:  []string{"bob", "alice", "carol"},
		},
		{
			name:      "threshold zero keeps every record",
			totals:    map[string]int{"alice": 5, "bob": 12},
			order:     []string{"alice", "bob"},
			threshold: 0,
			expected:  []string{"bob", "alice"},
		},
		{
			name:      "threshold above every total returns empty",
			totals:    map[string]int{"alice": 5, "bob": 12},
			order:     []string{"alice", "bob"},
			threshold: 100,
			expected:  []string{},
		},
		{
			name:      "stable sort preserves tie order",
			totals:    map[string]int{"alice": 7, "bob": 7, "carol": 7, "dave": 9},
			order:     []string{"alice", "bob", "carol", "dave"},
			threshold: 1,
			expected:  []string{"dave", "alice", "bob", "carol"},
		},
		{
			name:      "threshold is inclusive",
			totals:    map[string]int{"alice": 5, "bob": 4},
			order:     []string{"alice", "bob"},
			threshold: 5,
			expected:  []string{"alice"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := Rank(buildRecordSet(tc.totals, tc.order), tc.threshold)
			assert.Equal(t, tc.expected, usernames(ranked))
		})
	}
}

func TestSummarize(t *testing.T) {
	set := buildRecordSet(map[string]int{"alice": 2, "bob": 4, "carol": 12}, []string{"alice", "bob", "carol"})
	ranked := Rank(set, 1)
	require.Len(t, ranked, 3)

	summary := Summarize(ranked)
	assert.Equal(t, 3, summary.Contributors)
	assert.InDelta(t, 6.0, summary.MeanTotal, 0.001)
	assert.InDelta(t, 4.0, summary.MedianTotal, 0.001)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.Contributors)
	assert.Zero(t, summary.MeanTotal)
	assert.Zero(t, summary.MedianTotal)
}
