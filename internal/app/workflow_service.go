package app

import (
	"context"
	"strings"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/domain/identity"
	"github.com/Samrat25/HireX/internal/domain/job"
)

// WorkflowService drives a candidate through the linear assessment pipeline:
// applied -> resume_uploaded -> quiz_complete -> ai_interview_complete ->
// final_interview_pending -> final_interview_complete -> completed.
type WorkflowService struct {
	candidates candidate.Repository
	jobs       job.Repository
	logger     Logger
}

func NewWorkflowService(candidates candidate.Repository, jobs job.Repository, logger Logger) *WorkflowService {
	return &WorkflowService{candidates: candidates, jobs: jobs, logger: logger}
}

type ApplyDetails struct {
	Phone      string
	Experience string
	Education  string
}

// Apply keeps at most one candidate record per (email, job) pair. Re-applying
// resumes the existing record instead of creating a duplicate.
func (s *WorkflowService) Apply(ctx context.Context, profile identity.Profile, jobID common.UUID, details ApplyDetails) (*candidate.Candidate, error) {
	if strings.TrimSpace(profile.Email) == "" {
		return nil, common.NewError(common.CodeValidation, "email is required", nil)
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.StatusActive {
		return nil, common.NewError(common.CodeValidation, "job is not active", nil)
	}
	if existing, err := s.candidates.FindByEmailAndJob(ctx, profile.Email, jobID); err == nil {
		return existing, nil
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.candidates.Create(ctx, candidate.Candidate{
		Name:       profile.DisplayName,
		Email:      profile.Email,
		Phone:      details.Phone,
		Position:   j.Title,
		Experience: details.Experience,
		Education:  details.Education,
		Skills:     []string{},
		JobID:      jobID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.jobs.IncrementApplicants(ctx, jobID); err != nil {
		return nil, err
	}
	s.logInfo("candidate applied: " + created.ID.String())
	return created, nil
}

func (s *WorkflowService) CompleteResume(ctx context.Context, id common.UUID, score int, skills []string) (*candidate.Candidate, error) {
	return s.advance(ctx, id, candidate.StatusResumeUploaded, func(c *candidate.Candidate) error {
		if err := validateScore(score); err != nil {
			return err
		}
		c.ResumeScore = score
		c.Skills = skills
		return nil
	})
}

func (s *WorkflowService) CompleteQuiz(ctx context.Context, id common.UUID, score int) (*candidate.Candidate, error) {
	return s.advance(ctx, id, candidate.StatusQuizComplete, func(c *candidate.Candidate) error {
		if err := validateScore(score); err != nil {
			return err
		}
		c.QuizScore = score
		return nil
	})
}

func (s *WorkflowService) CompleteAIInterview(ctx context.Context, id common.UUID, score int) (*candidate.Candidate, error) {
	return s.advance(ctx, id, candidate.StatusAIInterviewComplete, func(c *candidate.Candidate) error {
		if err := validateScore(score); err != nil {
			return err
		}
		c.AIInterviewScore = score
		return nil
	})
}

func (s *WorkflowService) ScheduleFinalInterview(ctx context.Context, id common.UUID) (*candidate.Candidate, error) {
	return s.advance(ctx, id, candidate.StatusFinalInterviewPending, func(*candidate.Candidate) error {
		return nil
	})
}

func (s *WorkflowService) CompleteFinalInterview(ctx context.Context, id common.UUID, score int) (*candidate.Candidate, error) {
	return s.advance(ctx, id, candidate.StatusCompleted, func(c *candidate.Candidate) error {
		if err := validateScore(score); err != nil {
			return err
		}
		c.FinalInterviewScore = score
		return nil
	})
}

func (s *WorkflowService) Get(ctx context.Context, id common.UUID) (*candidate.Candidate, error) {
	return s.candidates.GetByID(ctx, id)
}

func (s *WorkflowService) List(ctx context.Context) ([]candidate.Candidate, error) {
	return s.candidates.List(ctx)
}

func (s *WorkflowService) ListByUser(ctx context.Context, email string) ([]candidate.Candidate, error) {
	return s.candidates.ListByEmail(ctx, email)
}

// Delete removes the record outright. The job's applicant count is left
// untouched, matching the original system.
func (s *WorkflowService) Delete(ctx context.Context, id common.UUID) error {
	return s.candidates.Delete(ctx, id)
}

func (s *WorkflowService) advance(ctx context.Context, id common.UUID, next candidate.Status, mutate func(*candidate.Candidate) error) (*candidate.Candidate, error) {
	c, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAllowedTransition(c.Status, next) {
		return nil, common.NewError(common.CodeConflict, "invalid status transition", nil)
	}
	if err := mutate(c); err != nil {
		return nil, err
	}
	c.Status = next
	updated, err := s.candidates.Update(ctx, *c)
	if err != nil {
		return nil, err
	}
	s.logInfo("candidate " + updated.ID.String() + " moved to " + string(next))
	return updated, nil
}

// isAllowedTransition permits the immediate successor of the current status,
// or re-entering the current status (a candidate may redo the stage they just
// finished). Completing the final interview skips final_interview_complete
// and lands directly on completed, as the original flow does.
func isAllowedTransition(from, to candidate.Status) bool {
	if from == to {
		return true
	}
	switch from {
	case candidate.StatusApplied:
		return to == candidate.StatusResumeUploaded
	case candidate.StatusResumeUploaded:
		return to == candidate.StatusQuizComplete
	case candidate.StatusQuizComplete:
		return to == candidate.StatusAIInterviewComplete
	case candidate.StatusAIInterviewComplete:
		return to == candidate.StatusFinalInterviewPending
	case candidate.StatusFinalInterviewPending:
		return to == candidate.StatusFinalInterviewComplete || to == candidate.StatusCompleted
	case candidate.StatusFinalInterviewComplete:
		return to == candidate.StatusCompleted
	default:
		return false
	}
}

func validateScore(score int) error {
	if score < 0 || score > 100 {
		return common.NewValidationError("invalid score", map[string]string{"score": "score must be between 0 and 100"})
	}
	return nil
}

func (s *WorkflowService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
