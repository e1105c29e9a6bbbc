package responses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, resp *models.AssessmentResponse) error {
	answers, err := json.Marshal(resp.Responses)
	if err != nil {
		return fmt.Errorf("failed to encode responses: %w", err)
	}
	query := `INSERT INTO assessment_responses (id, assessment_id, responses, submitted_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET assessment_id = excluded.assessment_id,
			responses = excluded.responses,
			submitted_at = excluded.submitted_at
	`
	_, err = r.db.ExecContext(ctx, query,
		resp.ID, resp.AssessmentID, string(answers), resp.SubmittedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert response: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.AssessmentResponse, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, assessment_id, responses, submitted_at FROM assessment_responses WHERE id = ?`, id)
	resp, err := scan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select response: %w", err)
	}
	return resp, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.AssessmentResponse, error) {
	return r.query(ctx,
		`SELECT id, assessment_id, responses, submitted_at FROM assessment_responses`)
}

func (r *SQLiteRepository) GetByAssessmentID(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error) {
	return r.query(ctx,
		`SELECT id, assessment_id, responses, submitted_at FROM assessment_responses
		 WHERE assessment_id = ? ORDER BY submitted_at`, assessmentID)
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]models.AssessmentResponse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select responses: %w", err)
	}
	defer rows.Close()

	var result []models.AssessmentResponse
	for rows.Next() {
		resp, err := scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(scanFn func(dest ...any) error) (*models.AssessmentResponse, error) {
	var (
		resp        models.AssessmentResponse
		answers     string
		submittedAt string
	)
	err := scanFn(&resp.ID, &resp.AssessmentID, &answers, &submittedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(answers), &resp.Responses); err != nil {
		return nil, fmt.Errorf("failed to decode responses: %w", err)
	}
	resp.SubmittedAt, err = time.Parse(time.RFC3339Nano, submittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse submitted_at: %w", err)
	}
	return &resp, nil
}
