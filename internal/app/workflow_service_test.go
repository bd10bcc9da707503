package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/domain/identity"
	"github.com/Samrat25/HireX/internal/domain/job"
)

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs []job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	j.Applicants = 0
	j.CreatedAt = time.Now().UTC()
	r.jobs = append(r.jobs, j)
	return &j, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == j.ID {
			j.Applicants = r.jobs[i].Applicants
			j.CreatedAt = r.jobs[i].CreatedAt
			r.jobs[i] = j
			return &j, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			found := r.jobs[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *fakeJobRepo) List(ctx context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]job.Job(nil), r.jobs...), nil
}

func (r *fakeJobRepo) IncrementApplicants(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].Applicants++
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "job not found", nil)
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates []candidate.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{}
}

func (r *fakeCandidateRepo) Create(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = common.NewUUID()
	c.AppliedDate = time.Now().UTC()
	c.Status = candidate.StatusApplied
	r.candidates = append(r.candidates, c)
	return &c, nil
}

func (r *fakeCandidateRepo) Update(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.candidates {
		if r.candidates[i].ID == c.ID {
			c.AppliedDate = r.candidates[i].AppliedDate
			r.candidates[i] = c
			return &c, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
}

func (r *fakeCandidateRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.candidates {
		if r.candidates[i].ID == id {
			r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "candidate not found", nil)
}

func (r *fakeCandidateRepo) GetByID(ctx context.Context, id common.UUID) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.candidates {
		if r.candidates[i].ID == id {
			found := r.candidates[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
}

func (r *fakeCandidateRepo) List(ctx context.Context) ([]candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]candidate.Candidate(nil), r.candidates...), nil
}

func (r *fakeCandidateRepo) ListByEmail(ctx context.Context, email string) ([]candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []candidate.Candidate
	for _, c := range r.candidates {
		if c.Email == email {
			items = append(items, c)
		}
	}
	return items, nil
}

func (r *fakeCandidateRepo) FindByEmailAndJob(ctx context.Context, email string, jobID common.UUID) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.candidates {
		if r.candidates[i].Email == email && r.candidates[i].JobID == jobID {
			found := r.candidates[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
}

func seedJob(t *testing.T, repo *fakeJobRepo, status job.Status) *job.Job {
	t.Helper()
	created, err := repo.Create(context.Background(), job.Job{
		Title:       "Professor of Computer Science",
		Department:  "Computer Science",
		Salary:      "$80,000",
		Deadline:    "2025-12-15",
		Description: "Teach and research.",
		Status:      status,
	})
	if err != nil {
		t.Fatalf("expected job created, got %v", err)
	}
	return created
}

func applicantProfile() identity.Profile {
	return identity.Profile{
		UserID:      "user-1",
		Email:       "jane@example.com",
		DisplayName: "Jane Doe",
		Role:        identity.RoleCandidate,
	}
}

func TestWorkflowApply_CreatesCandidateAndIncrementsApplicants(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candidateRepo := newFakeCandidateRepo()
	service := NewWorkflowService(candidateRepo, jobRepo, nil)
	posting := seedJob(t, jobRepo, job.StatusActive)

	created, err := service.Apply(context.Background(), applicantProfile(), posting.ID, ApplyDetails{Phone: "+1 555 0100"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != candidate.StatusApplied {
		t.Fatalf("expected status applied, got %s", created.Status)
	}
	if created.Position != posting.Title {
		t.Fatalf("expected position %q, got %q", posting.Title, created.Position)
	}
	if created.Skills == nil || len(created.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %v", created.Skills)
	}
	after, err := jobRepo.GetByID(context.Background(), posting.ID)
	if err != nil {
		t.Fatalf("expected job, got %v", err)
	}
	if after.Applicants != 1 {
		t.Fatalf("expected applicants 1, got %d", after.Applicants)
	}
}

func TestWorkflowApply_DuplicateReturnsExisting(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candidateRepo := newFakeCandidateRepo()
	service := NewWorkflowService(candidateRepo, jobRepo, nil)
	posting := seedJob(t, jobRepo, job.StatusActive)

	first, err := service.Apply(context.Background(), applicantProfile(), posting.ID, ApplyDetails{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second, err := service.Apply(context.Background(), applicantProfile(), posting.ID, ApplyDetails{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected existing candidate %s, got %s", first.ID, second.ID)
	}
	if len(candidateRepo.candidates) != 1 {
		t.Fatalf("expected one candidate record, got %d", len(candidateRepo.candidates))
	}
	after, err := jobRepo.GetByID(context.Background(), posting.ID)
	if err != nil {
		t.Fatalf("expected job, got %v", err)
	}
	if after.Applicants != 1 {
		t.Fatalf("expected applicants to stay at 1, got %d", after.Applicants)
	}
}

func TestWorkflowApply_InactiveJobRejected(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candidateRepo := newFakeCandidateRepo()
	service := NewWorkflowService(candidateRepo, jobRepo, nil)
	posting := seedJob(t, jobRepo, job.StatusClosed)

	_, err := service.Apply(context.Background(), applicantProfile(), posting.ID, ApplyDetails{})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWorkflowApply_MissingEmailRejected(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candidateRepo := newFakeCandidateRepo()
	service := NewWorkflowService(candidateRepo, jobRepo, nil)
	posting := seedJob(t, jobRepo, job.StatusActive)

	profile := applicantProfile()
	profile.Email = "  "
	_, err := service.Apply(context.Background(), profile, posting.ID, ApplyDetails{})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWorkflowAdvance_FullPipeline(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candidateRepo := newFakeCandidateRepo()
	service := NewWorkflowService(candidateRepo, jobRepo, nil)
	posting := seedJob(t, jobRepo, job.StatusActive)

	created, err := service.Apply(context.Background(), applicantProfile(), posting.ID, ApplyDetails{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := service.CompleteResume(context.Background(), created.ID, 85, []string{"Go", "SQL"}); err != nil {
		t.Fatalf("resume stage failed: %v", err)
	}
	if _, err := service.CompleteQuiz(context.Background(), created.ID, 90); err != nil {
		t.Fatalf("quiz stage failed: %v", err)
	}
	if _, err := service.CompleteAIInterview(context.Background(), created.ID, 80); err != nil {
		t.Fatalf("ai interview stage failed: %v", err)
	}
	if _, err := service.ScheduleFinalInterview(context.Background(), created.ID); err != nil {
		t.Fatalf("schedule stage failed: %v", err)
	}
	final, err := service.CompleteFinalInterview(context.Background(), created.ID, 95)
	if err != nil {
		t.Fatalf("final interview stage failed: %v", err)
	}

	if final.Status != candidate.StatusCompleted {
		t.Fatalf("expected status completed, got %s", final.Status)
	}
	if final.ResumeScore != 85 || final.QuizScore != 90 || final.AIInterviewScore != 80 || final.FinalInterviewScore != 95 {
		t.Fatalf("unexpected scores: %+v", final)
	}
	if len(final.Skills) != 2 {
		t.Fatalf("expected skills to persist, got %v", final.Skills)
	}
}

func TestWorkflowAdvance_SkippingStageRejected(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candidateRepo := newFakeCandidateRepo()
	service := NewWorkflowService(candidateRepo, jobRepo, nil)
	posting := seedJob(t, jobRepo, job.StatusActive)

	created, err := service.Apply(context.Background(), applicantProfile(), posting.ID, ApplyDetails{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := service.CompleteQuiz(context.Background(), created.ID, 90); !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if _, err := service.CompleteFinalInterview(context.Background(), created.ID, 90); !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestWorkflowAdvance_RepeatingStageAllowed(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candidateRepo := newFakeCandidateRepo()
	service := NewWorkflowService(candidateRepo, jobRepo, nil)
	posting := seedJob(t, jobRepo, job.StatusActive)

	created, err := service.Apply(context.Background(), applicantProfile(), posting.ID, ApplyDetails{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := service.CompleteResume(context.Background(), created.ID, 60, []string{"Go"}); err != nil {
		t.Fatalf("first resume stage failed: %v", err)
	}
	updated, err := service.CompleteResume(context.Background(), created.ID, 75, []string{"Go", "Docker"})
	if err != nil {
		t.Fatalf("expected redo to be allowed, got %v", err)
	}
	if updated.ResumeScore != 75 {
		t.Fatalf("expected resume score 75, got %d", updated.ResumeScore)
	}
}

func TestWorkflowAdvance_InvalidScoreRejected(t *testing.T) {
	jobRepo := newFakeJobRepo()
	candidateRepo := newFakeCandidateRepo()
	service := NewWorkflowService(candidateRepo, jobRepo, nil)
	posting := seedJob(t, jobRepo, job.StatusActive)

	created, err := service.Apply(context.Background(), applicantProfile(), posting.ID, ApplyDetails{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := service.CompleteResume(context.Background(), created.ID, 101, nil); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := service.CompleteResume(context.Background(), created.ID, -1, nil); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	after, err := service.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected candidate, got %v", err)
	}
	if after.Status != candidate.StatusApplied {
		t.Fatalf("expected status unchanged, got %s", after.Status)
	}
}
