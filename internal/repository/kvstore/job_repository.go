package kvstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/job"
	"github.com/Samrat25/HireX/internal/kv"
)

const jobsKey = "hirex:jobs"

// JobRepository persists the job collection as a single JSON array document.
// The mutex serializes the load-mutate-save cycle; the store is single-writer
// by design.
type JobRepository struct {
	mu    sync.Mutex
	store kv.Store
}

func NewJobRepository(store kv.Store) *JobRepository {
	return &JobRepository{store: store}
}

func (r *JobRepository) load(ctx context.Context) ([]job.Job, error) {
	raw, err := r.store.Get(ctx, jobsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []job.Job{}, nil
	}
	var jobs []job.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode jobs", err)
	}
	return jobs, nil
}

func (r *JobRepository) save(ctx context.Context, jobs []job.Job) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode jobs", err)
	}
	return r.store.Set(ctx, jobsKey, raw)
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	j.ID = common.NewUUID()
	j.Applicants = 0
	j.CreatedAt = time.Now().UTC()
	jobs = append(jobs, j)
	if err := r.save(ctx, jobs); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == j.ID {
			j.Applicants = jobs[i].Applicants
			j.CreatedAt = jobs[i].CreatedAt
			jobs[i] = j
			if err := r.save(ctx, jobs); err != nil {
				return nil, err
			}
			return &j, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs, err := r.load(ctx)
	if err != nil {
		return err
	}
	filtered := jobs[:0:0]
	for _, j := range jobs {
		if j.ID != id {
			filtered = append(filtered, j)
		}
	}
	if len(filtered) == len(jobs) {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return r.save(ctx, filtered)
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			found := jobs[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *JobRepository) IncrementApplicants(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			jobs[i].Applicants++
			return r.save(ctx, jobs)
		}
	}
	return common.NewError(common.CodeNotFound, "job not found", nil)
}
