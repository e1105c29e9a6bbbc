package assessments

import (
	"context"

	"github.com/talentflow-app/talentflow/internal/models"
)

// Repository caches assessments keyed by job id, so the storage layer itself
// enforces the one-assessment-per-job invariant: upserting for a job that
// already has one replaces it wholesale.
//
// Note the asymmetry with the backend: deletes against the backend are not
// guaranteed to reach this mirror, so a cache-preferred reader may observe a
// stale assessment after a delete. That staleness is an accepted, documented
// gap, not something this layer masks.
type Repository interface {
	// GetByJobID returns the assessment for a job, or common.ErrNotFound.
	GetByJobID(ctx context.Context, jobID string) (*models.Assessment, error)

	// GetAll returns every cached assessment.
	GetAll(ctx context.Context) ([]models.Assessment, error)

	// Upsert inserts or replaces the assessment for its job id, sections and
	// questions included.
	Upsert(ctx context.Context, assessment *models.Assessment) error

	// DeleteByID removes an assessment by its own id (not the job id).
	// Deleting an absent assessment is not an error.
	DeleteByID(ctx context.Context, id string) error
}
