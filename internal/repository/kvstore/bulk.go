package kvstore

import (
	"context"
	"encoding/json"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/domain/job"
	"github.com/Samrat25/HireX/internal/kv"
)

// BulkWriter rewrites whole collection documents for import/clear operations.
type BulkWriter struct {
	store kv.Store
}

func NewBulkWriter(store kv.Store) *BulkWriter {
	return &BulkWriter{store: store}
}

func (w *BulkWriter) ReplaceJobs(ctx context.Context, jobs []job.Job) error {
	if jobs == nil {
		jobs = []job.Job{}
	}
	raw, err := json.Marshal(jobs)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode jobs", err)
	}
	return w.store.Set(ctx, jobsKey, raw)
}

func (w *BulkWriter) ReplaceCandidates(ctx context.Context, candidates []candidate.Candidate) error {
	if candidates == nil {
		candidates = []candidate.Candidate{}
	}
	raw, err := json.Marshal(candidates)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode candidates", err)
	}
	return w.store.Set(ctx, candidatesKey, raw)
}

func (w *BulkWriter) ClearAll(ctx context.Context) error {
	if err := w.store.Delete(ctx, jobsKey); err != nil {
		return err
	}
	return w.store.Delete(ctx, candidatesKey)
}
