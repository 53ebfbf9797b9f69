package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchConfiguration_MatchesLocation(t *testing.T) {
	testCases := []struct {
		name     string
		terms    []string
		location string
		expected bool
	}{
		{
			name:     "no terms admits any location",
			terms:    nil,
			location: "Berlin",
			expected: true,
		},
		{
			name:     "no terms admits empty location",
			terms:    nil,
			location: "",
			expected: true,
		},
		{
			name:     "case-insensitive substring match",
			terms:    []string{"bangalore"},
			location: "Bangalore, India",
			expected: true,
		},
		{
			name:     "non-matching location rejected",
			terms:    []string{"bangalore"},
			location: "Berlin",
			expected: false,
		},
		{
			name:     "empty location rejected when terms configured",
			terms:    []string{"bangalore"},
			location: "",
			expected: false,
		},
		{
			name:     "any of several terms admits",
			terms:    []string{"bangalore", "berlin"},
			location: "Berlin, Germany",
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := FetchConfiguration{LocationTerms: tc.terms}
			assert.Equal(t, tc.expected, cfg.MatchesLocation(tc.location))
		})
	}
}

func TestFetchConfiguration_RecencyCutoff(t *testing.T) {
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	cfg := DefaultFetchConfiguration()
	assert.Nil(t, cfg.RecencyCutoff(now))

	cfg.ActiveWithinMonths = 6
	cutoff := cfg.RecencyCutoff(now)
	require.NotNil(t, cutoff)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *cutoff)
}

func TestDefaultFetchConfiguration(t *testing.T) {
	cfg := DefaultFetchConfiguration()
	assert.Equal(t, 1, cfg.MinimumContributions)
	assert.Zero(t, cfg.ActiveWithinMonths)
	assert.True(t, cfg.IncludeCommits)
	assert.True(t, cfg.IncludePullRequests)
	assert.True(t, cfg.IncludeIssues)
}
