package app

import (
	"math"

	"github.com/Samrat25/HireX/internal/domain/candidate"
)

// rawScore is the unrounded composite score. A final-interview score of zero
// means the stage has not been reached, so it is excluded from the divisor.
func rawScore(c candidate.Candidate) float64 {
	sum := c.ResumeScore + c.QuizScore + c.AIInterviewScore + c.FinalInterviewScore
	divisor := 3.0
	if c.FinalInterviewScore > 0 {
		divisor = 4.0
	}
	return float64(sum) / divisor
}

// OverallScore is the single 0-100 composite used for ranking, distribution
// buckets and reports.
func OverallScore(c candidate.Candidate) int {
	return int(math.Round(rawScore(c)))
}
