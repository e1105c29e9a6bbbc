package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, a *models.Assessment) error {
	sections, err := json.Marshal(a.Sections)
	if err != nil {
		return fmt.Errorf("failed to encode sections: %w", err)
	}
	query := `INSERT INTO assessments (job_id, id, title, description, sections)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(job_id) DO UPDATE SET id = excluded.id,
			title = excluded.title,
			description = excluded.description,
			sections = excluded.sections
	`
	_, err = r.db.ExecContext(ctx, query, a.JobID, a.ID, a.Title, a.Description, string(sections))
	if err != nil {
		return fmt.Errorf("failed to upsert assessment: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByJobID(ctx context.Context, jobID string) (*models.Assessment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT job_id, id, title, description, sections FROM assessments WHERE job_id = ?`, jobID)
	a, err := scan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select assessment: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Assessment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT job_id, id, title, description, sections FROM assessments`)
	if err != nil {
		return nil, fmt.Errorf("failed to select assessments: %w", err)
	}
	defer rows.Close()

	var result []models.Assessment
	for rows.Next() {
		a, err := scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	return nil
}

func scan(scanFn func(dest ...any) error) (*models.Assessment, error) {
	var (
		a        models.Assessment
		sections string
	)
	if err := scanFn(&a.JobID, &a.ID, &a.Title, &a.Description, &sections); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(sections), &a.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	return &a, nil
}
