package domain

import (
	"strings"
	"time"
)

// FetchConfiguration holds the recognized collection options.
type FetchConfiguration struct {
	// LocationTerms are matched case-insensitively as substrings of a
	// contributor's location field. Empty means no location filtering.
	LocationTerms []string

	// MinimumContributions is the inclusive threshold a record's total must
	// meet to appear in the final output.
	MinimumContributions int

	// ActiveWithinMonths limits PR/issue pagination to items created within
	// the last N months. Zero means no recency cutoff.
	ActiveWithinMonths int

	IncludeCommits      bool
	IncludePullRequests bool
	IncludeIssues       bool
}

// DefaultFetchConfiguration returns the defaults: all contribution streams
// enabled, minimum of one contribution, no location or recency filtering.
func DefaultFetchConfiguration() FetchConfiguration {
	return FetchConfiguration{
		MinimumContributions: 1,
		IncludeCommits:       true,
		IncludePullRequests:  true,
		IncludeIssues:        true,
	}
}

// RecencyCutoff derives the pagination cutoff from ActiveWithinMonths, or
// nil when no recency filtering is configured.
func (c FetchConfiguration) RecencyCutoff(now time.Time) *time.Time {
	if c.ActiveWithinMonths <= 0 {
		return nil
	}
	cutoff := now.AddDate(0, -c.ActiveWithinMonths, 0)
	return &cutoff
}

// MatchesLocation reports whether a profile location passes the configured
// location filter. With no terms configured every location passes; with
// terms configured an empty location never passes.
func (c FetchConfiguration) MatchesLocation(location string) bool {
	if len(c.LocationTerms) == 0 {
		return true
	}
	if location == "" {
		return false
	}
	lower := strings.ToLower(location)
	for _, term := range c.LocationTerms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
