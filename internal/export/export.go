// Package export serializes ranked contributor records to tabular files.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/octoscout/octoscout/internal/domain"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"

	// notableDisplayMax truncates the notable-contributions sample for
	// display, independent of the storage cap.
	notableDisplayMax = 3
)

// Header returns the fixed, ordered column titles of the export schema.
func Header() []string {
	return []string{
		"Username",
		"Name",
		"Email",
		"Location",
		"Company",
		"Bio",
		"Twitter",
		"Blog",
		"Profile URL",
		"Repositories",
		"Total Contributions",
		"Commits",
		"Pull Requests",
		"Issues",
		"Notable Contributions",
		"First Contribution",
		"Last Contribution",
		"Collected At",
	}
}

// Row renders one contributor record in the column order of Header.
func Row(rec *domain.ContributorRecord) []string {
	return []string{
		rec.Username,
		rec.Name,
		rec.Email,
		rec.Location,
		rec.Company,
		rec.Bio,
		rec.Twitter,
		rec.Blog,
		rec.ProfileURL,
		strings.Join(rec.Repositories, ", "),
		strconv.Itoa(rec.TotalContributions),
		strconv.Itoa(rec.Commits),
		strconv.Itoa(rec.PullRequests),
		strconv.Itoa(rec.Issues),
		strings.Join(rec.Notable.Sample(notableDisplayMax), " | "),
		formatDate(rec.FirstContributionAt),
		formatDate(rec.LastContributionAt),
		rec.CollectedAt.Format(timestampLayout),
	}
}

func formatDate(at *time.Time) string {
	if at == nil {
		return ""
	}
	return at.Format(dateLayout)
}

// FileName returns the dated export file name for the given run time and
// extension.
func FileName(runAt time.Time, ext string) string {
	return "contributors_" + runAt.Format(dateLayout) + "." + ext
}
