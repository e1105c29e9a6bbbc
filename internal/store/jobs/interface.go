package jobs

import (
	"context"

	"github.com/talentflow-app/talentflow/internal/models"
)

// Repository is the local mirror of jobs, keyed by id. Jobs are never hard
// deleted, so no delete operation is exposed.
type Repository interface {
	// GetByID returns a job or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Job, error)

	// GetAll returns every mirrored job.
	GetAll(ctx context.Context) ([]models.Job, error)

	// Upsert inserts or replaces a job by id. Replacing with identical data
	// is a no-op.
	Upsert(ctx context.Context, job *models.Job) error

	// UpsertAll inserts or replaces many jobs in one all-or-nothing batch.
	UpsertAll(ctx context.Context, jobs []models.Job) error
}
