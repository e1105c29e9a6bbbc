package timeline

import (
	"context"

	"github.com/talentflow-app/talentflow/internal/models"
)

// Repository is the append-only log of candidate pipeline history. Events are
// synthesized client-side (the backend never stores them) and looked up by
// candidate through a secondary index.
type Repository interface {
	// Append stores a new event. Event ids are unique by construction;
	// appending a duplicate id is an error.
	Append(ctx context.Context, event *models.TimelineEvent) error

	// GetByCandidateID returns a candidate's events ordered by date, oldest
	// first, so the stage history can be replayed in order.
	GetByCandidateID(ctx context.Context, candidateID string) ([]models.TimelineEvent, error)

	// GetAll returns every event.
	GetAll(ctx context.Context) ([]models.TimelineEvent, error)
}
