package candidates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/dbx"
	"github.com/talentflow-app/talentflow/internal/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, candidate *models.Candidate) error {
	return upsert(ctx, r.db, candidate)
}

func (r *SQLiteRepository) UpsertAll(ctx context.Context, candidates []models.Candidate) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i := range candidates {
			if err := upsert(ctx, tx, &candidates[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(ctx context.Context, q dbx.DBTX, c *models.Candidate) error {
	query := `INSERT INTO candidates (id, name, email, phone, avatar, stage,
			applied_at, current_company, job_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			avatar = excluded.avatar,
			stage = excluded.stage,
			applied_at = excluded.applied_at,
			current_company = excluded.current_company,
			job_id = excluded.job_id
	`
	_, err := q.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Avatar, string(c.Stage),
		c.AppliedAt.Format(time.RFC3339Nano), c.CurrentCompany, c.JobID)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}
	return nil
}

const selectCols = `id, name, email, phone, avatar, stage, applied_at, current_company, job_id`

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectCols+` FROM candidates WHERE id = ?`, id)
	c, err := scan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select candidate: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectCols+` FROM candidates`)
	if err != nil {
		return nil, fmt.Errorf("failed to select candidates: %w", err)
	}
	defer rows.Close()

	var result []models.Candidate
	for rows.Next() {
		c, err := scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(scanFn func(dest ...any) error) (*models.Candidate, error) {
	var (
		c         models.Candidate
		appliedAt string
	)
	err := scanFn(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Avatar, &c.Stage,
		&appliedAt, &c.CurrentCompany, &c.JobID)
	if err != nil {
		return nil, err
	}
	c.AppliedAt, err = time.Parse(time.RFC3339Nano, appliedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse applied_at: %w", err)
	}
	return &c, nil
}
