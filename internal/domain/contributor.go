package domain

import (
	"time"
)

// ContributionKind identifies the source stream of a contribution event.
type ContributionKind string

const (
	KindCommit      ContributionKind = "commit"
	KindPullRequest ContributionKind = "pull_request"
	KindIssue       ContributionKind = "issue"
)

// ContributionEvent is one observed unit of activity attributable to one
// username within one repository. Commit events carry a cumulative count and
// no date; pull request and issue events carry count 1, a title, and a
// creation date.
type ContributionEvent struct {
	Kind       ContributionKind
	Count      int
	Title      string
	OccurredAt *time.Time
}

// Profile holds the public profile fields of a contributor. Absent values
// are empty strings; ProfileURL is never empty.
type Profile struct {
	Username   string
	Name       string
	Email      string
	Location   string
	Bio        string
	Company    string
	Twitter    string
	Blog       string
	ProfileURL string
}

// PlaceholderProfile is substituted when a profile lookup fails: all fields
// empty except the username and a profile URL derived from it.
func PlaceholderProfile(username string) Profile {
	return Profile{
		Username:   username,
		ProfileURL: DerivedProfileURL(username),
	}
}

// DerivedProfileURL returns the profile URL implied by a username alone.
func DerivedProfileURL(username string) string {
	return "https://github.com/" + username
}

// NotableTitleCap is the storage cap for the notable contributions sample.
const NotableTitleCap = 5

// NotableTitles is a small fixed-capacity ordered set of contribution
// titles. Once at capacity, further titles are rejected, not rotated. The
// sample is for personalization of outreach, not a complete activity log.
type NotableTitles struct {
	titles []string
}

// Add appends a title unless the set is full or the title is empty.
// It reports whether the title was stored.
func (n *NotableTitles) Add(title string) bool {
	if title == "" || len(n.titles) >= NotableTitleCap {
		return false
	}
	n.titles = append(n.titles, title)
	return true
}

// Union appends every title from other that is not already present, in
// order, until the cap is reached.
func (n *NotableTitles) Union(other NotableTitles) {
	for _, title := range other.titles {
		if len(n.titles) >= NotableTitleCap {
			return
		}
		if !n.contains(title) {
			n.titles = append(n.titles, title)
		}
	}
}

func (n *NotableTitles) contains(title string) bool {
	for _, t := range n.titles {
		if t == title {
			return true
		}
	}
	return false
}

// Sample returns up to max titles in insertion order.
func (n *NotableTitles) Sample(max int) []string {
	if len(n.titles) <= max {
		return n.titles
	}
	return n.titles[:max]
}

// Len returns the number of stored titles.
func (n *NotableTitles) Len() int {
	return len(n.titles)
}

// ContributorRecord is the aggregated per-username summary of all
// contribution events across all processed repositories.
type ContributorRecord struct {
	Profile

	Commits            int
	PullRequests       int
	Issues             int
	TotalContributions int

	Notable NotableTitles

	FirstContributionAt *time.Time
	LastContributionAt  *time.Time

	// Repositories lists the full names of the repositories this record's
	// contributions came from, in order of first appearance.
	Repositories []string

	CollectedAt time.Time
}

// NewContributorRecord creates a record for a username first observed in the
// given repository.
func NewContributorRecord(profile Profile, repository string, now time.Time) *ContributorRecord {
	return &ContributorRecord{
		Profile:      profile,
		Repositories: []string{repository},
		CollectedAt:  now,
	}
}

// Apply folds one contribution event into the record. Counters only ever
// increase, and TotalContributions always equals the sum of the three
// per-kind counters.
func (r *ContributorRecord) Apply(event ContributionEvent, now time.Time) {
	switch event.Kind {
	case KindCommit:
		r.Commits += event.Count
	case KindPullRequest:
		r.PullRequests += event.Count
	case KindIssue:
		r.Issues += event.Count
	}
	r.TotalContributions += event.Count

	r.Notable.Add(event.Title)
	r.observeDate(event.OccurredAt)
	r.CollectedAt = now
}

// MergeFrom folds another record for the same username into this one:
// counters add, notable titles union up to the cap, contribution dates take
// min/max, and unseen repositories are appended in order.
func (r *ContributorRecord) MergeFrom(other *ContributorRecord, now time.Time) {
	r.Commits += other.Commits
	r.PullRequests += other.PullRequests
	r.Issues += other.Issues
	r.TotalContributions += other.TotalContributions

	r.Notable.Union(other.Notable)
	r.observeDate(other.FirstContributionAt)
	r.observeDate(other.LastContributionAt)

	for _, repo := range other.Repositories {
		if !r.hasRepository(repo) {
			r.Repositories = append(r.Repositories, repo)
		}
	}
	r.CollectedAt = now
}

func (r *ContributorRecord) hasRepository(name string) bool {
	for _, repo := range r.Repositories {
		if repo == name {
			return true
		}
	}
	return false
}

func (r *ContributorRecord) observeDate(at *time.Time) {
	if at == nil {
		return
	}
	if r.FirstContributionAt == nil || at.Before(*r.FirstContributionAt) {
		t := *at
		r.FirstContributionAt = &t
	}
	if r.LastContributionAt == nil || at.After(*r.LastContributionAt) {
		t := *at
		r.LastContributionAt = &t
	}
}
