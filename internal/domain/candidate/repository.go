package candidate

import (
	"context"

	"github.com/Samrat25/HireX/internal/common"
)

type Repository interface {
	Create(ctx context.Context, candidate Candidate) (*Candidate, error)
	Update(ctx context.Context, candidate Candidate) (*Candidate, error)
	Delete(ctx context.Context, id common.UUID) error
	GetByID(ctx context.Context, id common.UUID) (*Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	ListByEmail(ctx context.Context, email string) ([]Candidate, error)
	FindByEmailAndJob(ctx context.Context, email string, jobID common.UUID) (*Candidate, error)
}
