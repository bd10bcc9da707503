package analytics

import "github.com/Samrat25/HireX/internal/domain/candidate"

// Snapshot is recomputed from the full collections on every request and is
// never persisted.
type Snapshot struct {
	TotalJobs           int                   `json:"total_jobs"`
	TotalCandidates     int                   `json:"total_candidates"`
	AverageScore        int                   `json:"average_score"`
	CompletionRate      int                   `json:"completion_rate"`
	TopPerformers       []candidate.Candidate `json:"top_performers"`
	ScoreDistribution   []ScoreBucket         `json:"score_distribution"`
	DepartmentStats     []DepartmentStat      `json:"department_stats"`
	MonthlyApplications []MonthlyCount        `json:"monthly_applications"`
}

type ScoreBucket struct {
	Range      string `json:"range"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type DepartmentStat struct {
	Department string `json:"department"`
	Candidates int    `json:"candidates"`
	AvgScore   int    `json:"avg_score"`
}

type MonthlyCount struct {
	Month        string `json:"month"`
	Applications int    `json:"applications"`
}
