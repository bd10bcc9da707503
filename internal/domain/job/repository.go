package job

import (
	"context"

	"github.com/Samrat25/HireX/internal/common"
)

type Repository interface {
	Create(ctx context.Context, job Job) (*Job, error)
	Update(ctx context.Context, job Job) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	List(ctx context.Context) ([]Job, error)
	IncrementApplicants(ctx context.Context, id common.UUID) error
}
