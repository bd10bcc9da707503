package kvstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/kv"
)

const candidatesKey = "hirex:candidates"

type CandidateRepository struct {
	mu    sync.Mutex
	store kv.Store
}

func NewCandidateRepository(store kv.Store) *CandidateRepository {
	return &CandidateRepository{store: store}
}

func (r *CandidateRepository) load(ctx context.Context) ([]candidate.Candidate, error) {
	raw, err := r.store.Get(ctx, candidatesKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []candidate.Candidate{}, nil
	}
	var candidates []candidate.Candidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode candidates", err)
	}
	return candidates, nil
}

func (r *CandidateRepository) save(ctx context.Context, candidates []candidate.Candidate) error {
	raw, err := json.Marshal(candidates)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode candidates", err)
	}
	return r.store.Set(ctx, candidatesKey, raw)
}

func (r *CandidateRepository) Create(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidates, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	c.ID = common.NewUUID()
	c.AppliedDate = time.Now().UTC()
	c.Status = candidate.StatusApplied
	candidates = append(candidates, c)
	if err := r.save(ctx, candidates); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) Update(ctx context.Context, c candidate.Candidate) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidates, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].ID == c.ID {
			c.AppliedDate = candidates[i].AppliedDate
			candidates[i] = c
			if err := r.save(ctx, candidates); err != nil {
				return nil, err
			}
			return &c, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
}

func (r *CandidateRepository) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidates, err := r.load(ctx)
	if err != nil {
		return err
	}
	filtered := candidates[:0:0]
	for _, c := range candidates {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == len(candidates) {
		return common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	return r.save(ctx, filtered)
}

func (r *CandidateRepository) GetByID(ctx context.Context, id common.UUID) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidates, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].ID == id {
			found := candidates[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
}

func (r *CandidateRepository) List(ctx context.Context) ([]candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *CandidateRepository) ListByEmail(ctx context.Context, email string) ([]candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidates, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var items []candidate.Candidate
	for _, c := range candidates {
		if c.Email == email {
			items = append(items, c)
		}
	}
	return items, nil
}

func (r *CandidateRepository) FindByEmailAndJob(ctx context.Context, email string, jobID common.UUID) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidates, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].Email == email && candidates[i].JobID == jobID {
			found := candidates[i]
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
}
