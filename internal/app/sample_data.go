package app

import (
	"context"

	"github.com/Samrat25/HireX/internal/domain/job"
)

// SeedSampleJobs inserts the demo faculty postings when the collection is
// empty. Gated by config in cmd/api.
func SeedSampleJobs(ctx context.Context, jobs job.Repository) error {
	existing, err := jobs.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	samples := []job.Job{
		{
			Title:        "Professor of Computer Science",
			Department:   "Computer Science",
			Salary:       "$80,000 - $120,000",
			Deadline:     "2025-12-15",
			Requirements: "PhD in Computer Science, 5+ years teaching experience, Research publications",
			Description:  "Lead computer science curriculum development and conduct cutting-edge research in AI and machine learning.",
			Status:       job.StatusActive,
		},
		{
			Title:        "Associate Professor - Mathematics",
			Department:   "Mathematics",
			Salary:       "$70,000 - $100,000",
			Deadline:     "2025-12-20",
			Requirements: "PhD in Mathematics, 3+ years experience, Strong analytical skills",
			Description:  "Teach undergraduate and graduate mathematics courses with focus on applied mathematics.",
			Status:       job.StatusActive,
		},
		{
			Title:        "Research Associate - Physics",
			Department:   "Physics",
			Salary:       "$60,000 - $80,000",
			Deadline:     "2025-12-30",
			Requirements: "PhD in Physics, Research experience, Lab management skills",
			Description:  "Conduct research in quantum physics and mentor graduate students.",
			Status:       job.StatusActive,
		},
	}
	for _, sample := range samples {
		if _, err := jobs.Create(ctx, sample); err != nil {
			return err
		}
	}
	return nil
}
