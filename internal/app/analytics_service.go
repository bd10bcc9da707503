package app

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Samrat25/HireX/internal/domain/analytics"
	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/domain/job"
)

// AnalyticsService recomputes the full metrics snapshot from scratch on every
// call. Nothing is cached; cost is linear in the candidate count.
type AnalyticsService struct {
	jobs       job.Repository
	candidates candidate.Repository
	now        func() time.Time
}

func NewAnalyticsService(jobs job.Repository, candidates candidate.Repository) *AnalyticsService {
	return &AnalyticsService{jobs: jobs, candidates: candidates, now: time.Now}
}

func (s *AnalyticsService) Snapshot(ctx context.Context) (*analytics.Snapshot, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, err
	}

	total := len(candidates)
	snapshot := &analytics.Snapshot{
		TotalJobs:           len(jobs),
		TotalCandidates:     total,
		TopPerformers:       []candidate.Candidate{},
		ScoreDistribution:   scoreDistribution(candidates),
		DepartmentStats:     departmentStats(jobs, candidates),
		MonthlyApplications: monthlyApplications(candidates, s.now().UTC()),
	}

	if total > 0 {
		var sum float64
		completed := 0
		for _, c := range candidates {
			sum += rawScore(c)
			if c.Status == candidate.StatusCompleted {
				completed++
			}
		}
		snapshot.AverageScore = int(math.Round(sum / float64(total)))
		snapshot.CompletionRate = int(math.Round(100 * float64(completed) / float64(total)))
	}

	snapshot.TopPerformers = topPerformers(candidates)
	return snapshot, nil
}

// topPerformers ranks by composite score descending; ties keep collection
// order.
func topPerformers(candidates []candidate.Candidate) []candidate.Candidate {
	ranked := make([]candidate.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return OverallScore(ranked[i]) > OverallScore(ranked[j])
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

func scoreDistribution(candidates []candidate.Candidate) []analytics.ScoreBucket {
	ranges := []struct {
		label    string
		min, max int
	}{
		{"90-100", 90, 100},
		{"80-89", 80, 89},
		{"70-79", 70, 79},
		{"60-69", 60, 69},
		{"Below 60", 0, 59},
	}
	total := len(candidates)
	buckets := make([]analytics.ScoreBucket, 0, len(ranges))
	for _, r := range ranges {
		count := 0
		for _, c := range candidates {
			score := OverallScore(c)
			if score >= r.min && score <= r.max {
				count++
			}
		}
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(100 * float64(count) / float64(total)))
		}
		buckets = append(buckets, analytics.ScoreBucket{Range: r.label, Count: count, Percentage: percentage})
	}
	return buckets
}

// departmentStats groups candidates by their job's department. A candidate
// whose job no longer exists lands in the "Unknown" bucket rather than being
// dropped.
func departmentStats(jobs []job.Job, candidates []candidate.Candidate) []analytics.DepartmentStat {
	byID := make(map[string]job.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID.String()] = j
	}

	type accumulator struct {
		count int
		total float64
	}
	order := []string{}
	groups := make(map[string]*accumulator)
	for _, c := range candidates {
		department := "Unknown"
		if j, ok := byID[c.JobID.String()]; ok {
			department = j.Department
		}
		group, ok := groups[department]
		if !ok {
			group = &accumulator{}
			groups[department] = group
			order = append(order, department)
		}
		group.count++
		group.total += rawScore(c)
	}

	stats := make([]analytics.DepartmentStat, 0, len(order))
	for _, department := range order {
		group := groups[department]
		stats = append(stats, analytics.DepartmentStat{
			Department: department,
			Candidates: group.count,
			AvgScore:   int(math.Round(group.total / float64(group.count))),
		})
	}
	return stats
}

// monthlyApplications always returns six entries, oldest first, ending at the
// current calendar month.
func monthlyApplications(candidates []candidate.Candidate, now time.Time) []analytics.MonthlyCount {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]analytics.MonthlyCount, 0, 6)
	for i := 5; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		count := 0
		for _, c := range candidates {
			applied := c.AppliedDate.UTC()
			if applied.Year() == month.Year() && applied.Month() == month.Month() {
				count++
			}
		}
		months = append(months, analytics.MonthlyCount{
			Month:        month.Format("Jan 2006"),
			Applications: count,
		})
	}
	return months
}
