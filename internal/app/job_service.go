package app

import (
	"context"
	"strings"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/job"
)

type JobService struct {
	repo job.Repository
}

func NewJobService(repo job.Repository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	if err := validateJob(j); err != nil {
		return nil, err
	}
	if j.Status == "" {
		j.Status = job.StatusActive
	}
	if err := validateJobStatus(j.Status); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, j)
}

func (s *JobService) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	if err := validateJob(j); err != nil {
		return nil, err
	}
	if j.Status == "" {
		j.Status = current.Status
	}
	if err := validateJobStatus(j.Status); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, j)
}

func (s *JobService) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	normalized := job.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if err := validateJobStatus(normalized); err != nil {
		return nil, err
	}
	current.Status = normalized
	return s.repo.Update(ctx, *current)
}

func (s *JobService) Delete(ctx context.Context, id common.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]job.Job, error) {
	return s.repo.List(ctx)
}

// ListActive is the posting list candidates browse.
func (s *JobService) ListActive(ctx context.Context) ([]job.Job, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var items []job.Job
	for _, j := range jobs {
		if j.Status == job.StatusActive {
			items = append(items, j)
		}
	}
	return items, nil
}

func validateJob(j job.Job) error {
	fields := map[string]string{}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(j.Department) == "" {
		fields["department"] = "department is required"
	}
	if strings.TrimSpace(j.Salary) == "" {
		fields["salary"] = "salary is required"
	}
	if strings.TrimSpace(j.Deadline) == "" {
		fields["deadline"] = "deadline is required"
	}
	if strings.TrimSpace(j.Description) == "" {
		fields["description"] = "description is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}

func validateJobStatus(status job.Status) error {
	switch status {
	case job.StatusActive, job.StatusClosed:
		return nil
	default:
		return common.NewValidationError("invalid job status", map[string]string{"status": "status must be active or closed"})
	}
}
