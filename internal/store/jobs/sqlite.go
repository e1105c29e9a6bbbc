package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/dbx"
	"github.com/talentflow-app/talentflow/internal/models"
)

// SQLiteRepository implements Repository on the local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, job *models.Job) error {
	return upsert(ctx, r.db, job)
}

func (r *SQLiteRepository) UpsertAll(ctx context.Context, jobs []models.Job) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i := range jobs {
			if err := upsert(ctx, tx, &jobs[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(ctx context.Context, q dbx.DBTX, job *models.Job) error {
	tags, err := json.Marshal(job.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	query := `INSERT INTO jobs (id, title, company, slug, status, tags, department,
			location, salary_range, experience, description, created_at, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title,
			company = excluded.company,
			slug = excluded.slug,
			status = excluded.status,
			tags = excluded.tags,
			department = excluded.department,
			location = excluded.location,
			salary_range = excluded.salary_range,
			experience = excluded.experience,
			description = excluded.description,
			created_at = excluded.created_at,
			sort_order = excluded.sort_order
	`
	_, err = q.ExecContext(ctx, query,
		job.ID, job.Title, job.Company, job.Slug, string(job.Status), string(tags),
		job.Department, job.Location, job.SalaryRange, job.Experience,
		job.Description, job.CreatedAt.Format(time.RFC3339Nano), job.Order)
	if err != nil {
		return fmt.Errorf("failed to upsert job: %w", err)
	}
	return nil
}

const selectCols = `id, title, company, slug, status, tags, department,
	location, salary_range, experience, description, created_at, sort_order`

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectCols+` FROM jobs WHERE id = ?`, id)
	job, err := scan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select job: %w", err)
	}
	return job, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectCols+` FROM jobs`)
	if err != nil {
		return nil, fmt.Errorf("failed to select jobs: %w", err)
	}
	defer rows.Close()

	var result []models.Job
	for rows.Next() {
		job, err := scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(scanFn func(dest ...any) error) (*models.Job, error) {
	var (
		job       models.Job
		tags      string
		createdAt string
	)
	err := scanFn(&job.ID, &job.Title, &job.Company, &job.Slug, &job.Status, &tags,
		&job.Department, &job.Location, &job.SalaryRange, &job.Experience,
		&job.Description, &createdAt, &job.Order)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &job.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	job.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &job, nil
}
