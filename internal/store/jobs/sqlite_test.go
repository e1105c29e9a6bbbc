package jobs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE jobs (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL DEFAULT '',
  slug TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'active',
  tags TEXT NOT NULL DEFAULT '[]',
  department TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  salary_range TEXT NOT NULL DEFAULT '',
  experience INTEGER NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  sort_order INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func testJob(id string) *models.Job {
	return &models.Job{
		ID:          id,
		Title:       "Backend Developer",
		Company:     "Acme",
		Slug:        "backend-developer",
		Status:      models.JobStatusActive,
		Tags:        []string{"remote", "golang"},
		Department:  "Engineering",
		Location:    "Remote",
		SalaryRange: "$100k - $150k",
		Experience:  4,
		Description: "Builds backends.",
		CreatedAt:   time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
		Order:       1,
	}
}

func TestUpsert_InsertAndReplace(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	j := testJob("j1")
	require.NoError(t, r.Upsert(ctx, j))

	got, err := r.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, j, got)

	// replace by same key
	j.Title = "Staff Backend Developer"
	j.Status = models.JobStatusArchived
	require.NoError(t, r.Upsert(ctx, j))

	got, err = r.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "Staff Backend Developer", got.Title)
	assert.Equal(t, models.JobStatusArchived, got.Status)
	// slug untouched by the replace
	assert.Equal(t, "backend-developer", got.Slug)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM jobs`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestUpsert_IdenticalDataIsNoOp(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	j := testJob("j1")
	require.NoError(t, r.Upsert(ctx, j))
	require.NoError(t, r.Upsert(ctx, j))

	got, err := r.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, j, got)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestUpsertAll_Batch(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	batch := []models.Job{*testJob("a"), *testJob("b"), *testJob("c")}
	require.NoError(t, r.UpsertAll(ctx, batch))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpsertAll_Empty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	require.NoError(t, r.UpsertAll(context.Background(), nil))
}
