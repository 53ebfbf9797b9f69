// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/octoscout/octoscout/internal/domain"
	"github.com/octoscout/octoscout/internal/gateway"
)

// Collector gathers contributor records for one repository at a time. It
// runs the enabled collection passes sequentially and folds their events
// into a fresh per-repository RecordSet.
type Collector struct {
	fetcher gateway.Fetcher
	logger  *logrus.Logger
	now     func() time.Time
}

// NewCollector creates a new Collector instance.
func NewCollector(fetcher gateway.Fetcher, logger *logrus.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Collect runs the commit, pull request, and issue passes for one repository
// and returns the accumulated records. A request failure aborts only its own
// pass; whatever that pass gathered before failing is still folded in, and
// the remaining passes run.
func (c *Collector) Collect(ctx context.Context, repo domain.RepositoryIdentifier, cfg domain.FetchConfiguration) *domain.RecordSet {
	records := domain.NewRecordSet()
	cutoff := cfg.RecencyCutoff(c.now())

	if cfg.IncludeCommits {
		c.logger.Infof("[%s] collecting commit contributors", repo.FullName())
		stats, err := c.fetcher.FetchCommitStats(ctx, repo)
		if err != nil {
			c.logger.Warnf("[%s] commit pass aborted: %v", repo.FullName(), err)
		}
		for _, stat := range stats {
			c.observe(ctx, records, repo, cfg, stat.Login, domain.ContributionEvent{
				Kind:  domain.KindCommit,
				Count: stat.Commits,
			})
		}
	}

	if cfg.IncludePullRequests {
		c.logger.Infof("[%s] collecting pull requests", repo.FullName())
		prs, err := c.fetcher.FetchPullRequests(ctx, repo, cutoff)
		if err != nil {
			c.logger.Warnf("[%s] pull request pass aborted: %v", repo.FullName(), err)
		}
		for _, pr := range prs {
			createdAt := pr.CreatedAt
			c.observe(ctx, records, repo, cfg, pr.Author, domain.ContributionEvent{
				Kind:       domain.KindPullRequest,
				Count:      1,
				Title:      pr.Title,
				OccurredAt: &createdAt,
			})
		}
	}

	if cfg.IncludeIssues {
		c.logger.Infof("[%s] collecting issues", repo.FullName())
		issues, err := c.fetcher.FetchIssues(ctx, repo, cutoff)
		if err != nil {
			c.logger.Warnf("[%s] issue pass aborted: %v", repo.FullName(), err)
		}
		for _, issue := range issues {
			createdAt := issue.CreatedAt
			c.observe(ctx, records, repo, cfg, issue.Author, domain.ContributionEvent{
				Kind:       domain.KindIssue,
				Count:      1,
				Title:      issue.Title,
				OccurredAt: &createdAt,
			})
		}
	}

	c.logger.Infof("[%s] collected %d contributors", repo.FullName(), records.Len())
	return records
}

// observe folds one contribution event into the per-repository record set.
// The first observation of a username triggers exactly one profile lookup
// and one location filter evaluation; a filtered-out username creates no
// record, so a later pass observing it again will re-attempt the filter with
// the same outcome.
func (c *Collector) observe(ctx context.Context, records *domain.RecordSet, repo domain.RepositoryIdentifier, cfg domain.FetchConfiguration, username string, event domain.ContributionEvent) {
	if username == "" {
		return
	}

	if rec, ok := records.Get(username); ok {
		rec.Apply(event, c.now())
		return
	}

	profile, err := c.fetcher.FetchUserProfile(ctx, username)
	if err != nil {
		c.logger.Debugf("profile lookup failed for %s, using placeholder: %v", username, err)
		profile = domain.PlaceholderProfile(username)
	}

	if !cfg.MatchesLocation(profile.Location) {
		c.logger.Debugf("skipping %s: location %q does not match filter", username, profile.Location)
		return
	}

	rec := domain.NewContributorRecord(profile, repo.FullName(), c.now())
	rec.Apply(event, c.now())
	records.Put(rec)
}
