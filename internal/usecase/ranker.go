package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/octoscout/octoscout/internal/domain"
)

// Rank filters the merged record set by the minimum-contribution threshold
// and sorts the survivors by total contribution count descending. The sort
// is stable: records with equal totals keep the relative order produced by
// the merge.
func Rank(set *domain.RecordSet, minimumContributions int) []*domain.ContributorRecord {
	ranked := make([]*domain.ContributorRecord, 0, set.Len())
	for _, rec := range set.Records() {
		if rec.TotalContributions >= minimumContributions {
			ranked = append(ranked, rec)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalContributions > ranked[j].TotalContributions
	})
	return ranked
}

// Summary holds run-level statistics over the ranked records.
type Summary struct {
	Contributors int
	MeanTotal    float64
	MedianTotal  float64
}

// Summarize computes the mean and median of the total contribution counts.
func Summarize(records []*domain.ContributorRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	totals := make([]float64, len(records))
	for i, rec := range records {
		totals[i] = float64(rec.TotalContributions)
	}
	mean, _ := stats.Mean(totals)
	median, _ := stats.Median(totals)
	return Summary{
		Contributors: len(records),
		MeanTotal:    mean,
		MedianTotal:  median,
	}
}
