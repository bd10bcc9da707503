package candidate

import (
	"time"

	"github.com/Samrat25/HireX/internal/common"
)

// Status tracks a candidate's furthest point in the assessment pipeline.
type Status string

const (
	StatusApplied                Status = "applied"
	StatusResumeUploaded         Status = "resume_uploaded"
	StatusQuizComplete           Status = "quiz_complete"
	StatusAIInterviewComplete    Status = "ai_interview_complete"
	StatusFinalInterviewPending  Status = "final_interview_pending"
	StatusFinalInterviewComplete Status = "final_interview_complete"
	StatusCompleted              Status = "completed"
)

type Candidate struct {
	ID                  common.UUID `json:"id"`
	Name                string      `json:"name"`
	Email               string      `json:"email"`
	Phone               string      `json:"phone"`
	Position            string      `json:"position"`
	ResumeScore         int         `json:"resume_score"`
	QuizScore           int         `json:"quiz_score"`
	AIInterviewScore    int         `json:"ai_interview_score"`
	FinalInterviewScore int         `json:"final_interview_score"`
	Status              Status      `json:"status"`
	AppliedDate         time.Time   `json:"applied_date"`
	Experience          string      `json:"experience"`
	Education           string      `json:"education"`
	Skills              []string    `json:"skills"`
	JobID               common.UUID `json:"job_id"`
	Report              *Report     `json:"report,omitempty"`
}

// Report is the generated feedback artifact, embedded inline on the candidate.
type Report struct {
	ID              common.UUID `json:"id"`
	CandidateID     common.UUID `json:"candidate_id"`
	OverallScore    int         `json:"overall_score"`
	Strengths       []string    `json:"strengths"`
	Recommendation  string      `json:"recommendation"`
	Feedback        string      `json:"feedback"`
	GeneratedAt     time.Time   `json:"generated_at"`
	SentToCandidate bool        `json:"sent_to_candidate"`
}
