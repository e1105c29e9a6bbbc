package timeline

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/talentflow-app/talentflow/internal/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, e *models.TimelineEvent) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to encode event data: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO timeline_events (id, candidate_id, type, date, data) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.CandidateID, string(e.Type), e.Date.Format(time.RFC3339Nano), string(data))
	if err != nil {
		return fmt.Errorf("failed to append timeline event: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByCandidateID(ctx context.Context, candidateID string) ([]models.TimelineEvent, error) {
	return r.query(ctx,
		`SELECT id, candidate_id, type, date, data FROM timeline_events
		 WHERE candidate_id = ? ORDER BY date`, candidateID)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.TimelineEvent, error) {
	return r.query(ctx,
		`SELECT id, candidate_id, type, date, data FROM timeline_events ORDER BY date`)
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]models.TimelineEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select timeline events: %w", err)
	}
	defer rows.Close()

	var result []models.TimelineEvent
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(rows *sql.Rows) (*models.TimelineEvent, error) {
	var (
		e    models.TimelineEvent
		date string
		data string
	)
	err := rows.Scan(&e.ID, &e.CandidateID, &e.Type, &date, &data)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &e.Data); err != nil {
		return nil, fmt.Errorf("failed to decode event data: %w", err)
	}
	e.Date, err = time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event date: %w", err)
	}
	return &e, nil
}
