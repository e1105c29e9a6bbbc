package candidates

import (
	"context"

	"github.com/talentflow-app/talentflow/internal/models"
)

// Repository is the local mirror of candidates, keyed by id. Candidates are
// never hard deleted, so no delete operation is exposed. The mirror is what
// the stage-change flow consults for a candidate's prior stage.
type Repository interface {
	// GetByID returns a candidate or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Candidate, error)

	// GetAll returns every mirrored candidate.
	GetAll(ctx context.Context) ([]models.Candidate, error)

	// Upsert inserts or replaces a candidate by id.
	Upsert(ctx context.Context, candidate *models.Candidate) error

	// UpsertAll inserts or replaces many candidates in one all-or-nothing batch.
	UpsertAll(ctx context.Context, candidates []models.Candidate) error
}
