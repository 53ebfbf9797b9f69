// Package gateway provides a gateway to the GitHub REST API, abstracting
// away the underlying client, pagination, and volume limits.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/octoscout/octoscout/internal/domain"
)

const (
	// pageSize is the GitHub API page-size ceiling.
	pageSize = 100

	// maxListPages caps PR and issue pagination at 300 items per stream.
	// A deliberate trade-off between completeness and API quota usage.
	maxListPages = 3
)

// CommitStat is one entry of the repository's aggregated contributor
// statistics. The count is an API-side cumulative total and carries no date.
type CommitStat struct {
	Login   string
	Commits int
}

// AuthoredItem is one pull request or issue authored by a user.
type AuthoredItem struct {
	Author    string
	Title     string
	CreatedAt time.Time
}

// Fetcher defines the behavior of a gateway for fetching contributor data
// from GitHub. All list methods return whatever partial results were
// gathered before an error, so callers can keep them.
type Fetcher interface {
	FetchCommitStats(ctx context.Context, repo domain.RepositoryIdentifier) ([]CommitStat, error)
	FetchPullRequests(ctx context.Context, repo domain.RepositoryIdentifier, cutoff *time.Time) ([]AuthoredItem, error)
	FetchIssues(ctx context.Context, repo domain.RepositoryIdentifier, cutoff *time.Time) ([]AuthoredItem, error)
	FetchUserProfile(ctx context.Context, username string) (domain.Profile, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *logrus.Logger
}

// NewGitHubGateway creates a gateway authenticated with the given token.
// The HTTP client waits out secondary rate limits beneath the oauth2
// transport.
func NewGitHubGateway(token string, logger *logrus.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// FetchCommitStats fetches one page of the repository's contributor list.
// The endpoint returns cumulative per-user commit counts, capped at 100
// entries by the API. Entries that are not individual user accounts (bots,
// anonymous authors) are skipped.
func (g *GitHubGateway) FetchCommitStats(ctx context.Context, repo domain.RepositoryIdentifier) ([]CommitStat, error) {
	g.logger.Debugf("fetching contributor stats for %s", repo.FullName())
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: pageSize},
	}
	contributors, _, err := g.client.Repositories.ListContributors(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributors for %s: %w", repo.FullName(), err)
	}

	stats := make([]CommitStat, 0, len(contributors))
	for _, c := range contributors {
		if c.GetType() != "User" {
			continue
		}
		stats = append(stats, CommitStat{Login: c.GetLogin(), Commits: c.GetContributions()})
	}
	return stats, nil
}

// FetchPullRequests fetches pull requests ordered by creation date
// descending, up to maxListPages pages. When a cutoff is set, the first PR
// older than the cutoff stops both the current page scan and pagination;
// newer PRs already scanned on that page are kept.
func (g *GitHubGateway) FetchPullRequests(ctx context.Context, repo domain.RepositoryIdentifier, cutoff *time.Time) ([]AuthoredItem, error) {
	g.logger.Debugf("fetching pull requests for %s", repo.FullName())
	opts := &github.PullRequestListOptions{
		State:       "all",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	var items []AuthoredItem
	for page := 1; page <= maxListPages; page++ {
		opts.Page = page
		prs, resp, err := g.client.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return items, fmt.Errorf("failed to list pull requests for %s: %w", repo.FullName(), err)
		}

		reachedCutoff := false
		for _, pr := range prs {
			createdAt := pr.GetCreatedAt().Time
			if cutoff != nil && createdAt.Before(*cutoff) {
				reachedCutoff = true
				break
			}
			items = append(items, AuthoredItem{
				Author:    pr.GetUser().GetLogin(),
				Title:     pr.GetTitle(),
				CreatedAt: createdAt,
			})
		}
		if reachedCutoff || resp.NextPage == 0 {
			break
		}
		g.logger.Debugf("  fetching next page of pull requests for %s", repo.FullName())
	}
	return items, nil
}

// FetchIssues fetches issues with the same pagination, cap, and cutoff
// policy as FetchPullRequests. The issues endpoint also returns pull
// requests; those are excluded via their pull-request back-reference.
func (g *GitHubGateway) FetchIssues(ctx context.Context, repo domain.RepositoryIdentifier, cutoff *time.Time) ([]AuthoredItem, error) {
	g.logger.Debugf("fetching issues for %s", repo.FullName())
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	var items []AuthoredItem
	for page := 1; page <= maxListPages; page++ {
		opts.Page = page
		issues, resp, err := g.client.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return items, fmt.Errorf("failed to list issues for %s: %w", repo.FullName(), err)
		}

		reachedCutoff := false
		for _, issue := range issues {
			createdAt := issue.GetCreatedAt().Time
			if cutoff != nil && createdAt.Before(*cutoff) {
				reachedCutoff = true
				break
			}
			if issue.IsPullRequest() {
				continue
			}
			items = append(items, AuthoredItem{
				Author:    issue.GetUser().GetLogin(),
				Title:     issue.GetTitle(),
				CreatedAt: createdAt,
			})
		}
		if reachedCutoff || resp.NextPage == 0 {
			break
		}
		g.logger.Debugf("  fetching next page of issues for %s", repo.FullName())
	}
	return items, nil
}

// FetchUserProfile looks up a user's public profile by username.
func (g *GitHubGateway) FetchUserProfile(ctx context.Context, username string) (domain.Profile, error) {
	user, _, err := g.client.Users.Get(ctx, username)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to fetch profile for %s: %w", username, err)
	}

	profileURL := user.GetHTMLURL()
	if profileURL == "" {
		profileURL = domain.DerivedProfileURL(username)
	}
	return domain.Profile{
		Username:   username,
		Name:       user.GetName(),
		Email:      user.GetEmail(),
		Location:   user.GetLocation(),
		Bio:        user.GetBio(),
		Company:    user.GetCompany(),
		Twitter:    user.GetTwitterUsername(),
		Blog:       user.GetBlog(),
		ProfileURL: profileURL,
	}, nil
}
