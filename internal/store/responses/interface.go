package responses

import (
	"context"

	"github.com/talentflow-app/talentflow/internal/models"
)

// Repository stores submitted assessment responses, keyed by id with a
// secondary lookup by assessment id. Responses live only in the local store;
// the backend only receives a fire-and-forget notification. Rows are
// immutable once written.
type Repository interface {
	// GetByID returns a response or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.AssessmentResponse, error)

	// GetAll returns every stored response.
	GetAll(ctx context.Context) ([]models.AssessmentResponse, error)

	// GetByAssessmentID returns all responses submitted for one assessment,
	// served by the secondary index rather than a table scan.
	GetByAssessmentID(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error)

	// Upsert inserts or replaces a response by id.
	Upsert(ctx context.Context, response *models.AssessmentResponse) error
}
