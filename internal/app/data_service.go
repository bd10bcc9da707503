package app

import (
	"context"

	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/domain/job"
)

type ExportBundle struct {
	Jobs       []job.Job             `json:"jobs"`
	Candidates []candidate.Candidate `json:"candidates"`
}

// DataService covers the original system's bulk utilities: export, wholesale
// import and a full wipe.
type DataService struct {
	jobs       job.Repository
	candidates candidate.Repository
	bulk       BulkWriter
}

// BulkWriter replaces or removes a whole collection in one pass.
type BulkWriter interface {
	ReplaceJobs(ctx context.Context, jobs []job.Job) error
	ReplaceCandidates(ctx context.Context, candidates []candidate.Candidate) error
	ClearAll(ctx context.Context) error
}

func NewDataService(jobs job.Repository, candidates candidate.Repository, bulk BulkWriter) *DataService {
	return &DataService{jobs: jobs, candidates: candidates, bulk: bulk}
}

func (s *DataService) Export(ctx context.Context) (*ExportBundle, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ExportBundle{Jobs: jobs, Candidates: candidates}, nil
}

func (s *DataService) Import(ctx context.Context, bundle ExportBundle) error {
	if err := s.bulk.ReplaceJobs(ctx, bundle.Jobs); err != nil {
		return err
	}
	return s.bulk.ReplaceCandidates(ctx, bundle.Candidates)
}

func (s *DataService) Clear(ctx context.Context) error {
	return s.bulk.ClearAll(ctx)
}
