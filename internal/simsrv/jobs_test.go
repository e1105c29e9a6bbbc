package simsrv

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow-app/talentflow/internal/models"
)

func TestListJobs_SeededActivePage(t *testing.T) {
	s, db := newTestServer(t)
	Seed(db, 123, 120, 0)

	active := 0
	for _, j := range db.Jobs() {
		if j.Status == models.JobStatusActive {
			active++
		}
	}

	var out JobListResponse
	status := request(t, s, http.MethodGet, "/api/jobs?status=active&page=1&pageSize=10", nil, &out)
	require.Equal(t, http.StatusOK, status)

	assert.LessOrEqual(t, len(out.Jobs), 10)
	for _, j := range out.Jobs {
		assert.Equal(t, models.JobStatusActive, j.Status)
	}
	assert.Equal(t, active, out.Total)
	assert.Equal(t, (active+9)/10, out.TotalPages)
}

func TestListJobs_PaginationArithmetic(t *testing.T) {
	s, db := newTestServer(t)
	Seed(db, 123, 45, 0)

	for page := 1; page <= 6; page++ {
		var out JobListResponse
		status := request(t, s, http.MethodGet, fmt.Sprintf("/api/jobs?page=%d&pageSize=10", page), nil, &out)
		require.Equal(t, http.StatusOK, status)

		want := out.Total - (page-1)*out.PageSize
		if want > out.PageSize {
			want = out.PageSize
		}
		if want < 0 {
			want = 0
		}
		assert.Len(t, out.Jobs, want, "page %d", page)
	}
}

func TestListJobs_DefaultsOnBadParams(t *testing.T) {
	s, db := newTestServer(t)
	Seed(db, 123, 30, 0)

	var out JobListResponse
	status := request(t, s, http.MethodGet, "/api/jobs?page=abc&pageSize=-5", nil, &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.PageSize)
	assert.Len(t, out.Jobs, 10)
}

func TestListJobs_SortedByCreatedAtDescending(t *testing.T) {
	s, db := newTestServer(t)
	Seed(db, 123, 50, 0)

	var out JobListResponse
	request(t, s, http.MethodGet, "/api/jobs?pageSize=50", nil, &out)
	for i := 1; i < len(out.Jobs); i++ {
		assert.False(t, out.Jobs[i-1].CreatedAt.Before(out.Jobs[i].CreatedAt))
	}
}

func TestListJobs_SearchAndTagFilters(t *testing.T) {
	s, db := newTestServer(t)
	db.InsertJob(&models.Job{ID: "a", Title: "Backend Developer", Company: "Initech", Tags: []string{"remote"}, CreatedAt: time.Now()})
	db.InsertJob(&models.Job{ID: "b", Title: "Designer", Company: "Acme", Location: "Berlin, Germany", Tags: []string{"onsite"}, CreatedAt: time.Now()})

	var out JobListResponse
	request(t, s, http.MethodGet, "/api/jobs?search=backend", nil, &out)
	require.Len(t, out.Jobs, 1)
	assert.Equal(t, "a", out.Jobs[0].ID)

	// search also matches company and location, case-insensitively
	request(t, s, http.MethodGet, "/api/jobs?search=BERLIN", nil, &out)
	require.Len(t, out.Jobs, 1)
	assert.Equal(t, "b", out.Jobs[0].ID)

	request(t, s, http.MethodGet, "/api/jobs?tag=remote", nil, &out)
	require.Len(t, out.Jobs, 1)
	assert.Equal(t, "a", out.Jobs[0].ID)

	request(t, s, http.MethodGet, "/api/jobs?search=nothing-matches", nil, &out)
	assert.Empty(t, out.Jobs)
	assert.Equal(t, 0, out.Total)
}

func TestCreateJob_AssignsServerDefaults(t *testing.T) {
	s, _ := newTestServer(t)
	start := time.Now()

	var out JobEnvelope
	status := request(t, s, http.MethodPost, "/api/jobs", JobCreateRequest{
		Title:   "Platform Engineer",
		Company: "Initech",
		Tags:    []string{"remote"},
	}, &out)
	require.Equal(t, http.StatusOK, status)

	assert.NotEmpty(t, out.Job.ID)
	assert.Equal(t, models.JobStatusActive, out.Job.Status)
	assert.Equal(t, "platform-engineer", out.Job.Slug)
	assert.False(t, out.Job.CreatedAt.Before(start.Add(-time.Second)))
	assert.Equal(t, 1, out.Job.Order)
}

func TestCreateJob_MissingTitleRejected(t *testing.T) {
	s, db := newTestServer(t)

	var body errorBody
	status := request(t, s, http.MethodPost, "/api/jobs", JobCreateRequest{Company: "Acme"}, &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Title is required", body.Error)
	// nothing persisted
	assert.Empty(t, db.Jobs())
}

func TestUpdateJob_PartialMergeRoundTrip(t *testing.T) {
	s, db := newTestServer(t)
	db.InsertJob(&models.Job{ID: "j1", Title: "Old Title", Slug: "old-title", Company: "Acme", Status: models.JobStatusActive, CreatedAt: time.Now()})

	newTitle := "New Title"
	var out JobEnvelope
	status := request(t, s, http.MethodPatch, "/api/jobs/j1", models.JobPatch{Title: &newTitle}, &out)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "New Title", out.Job.Title)
	// slug derived at creation only, never re-derived
	assert.Equal(t, "old-title", out.Job.Slug)
	// untouched fields survive
	assert.Equal(t, "Acme", out.Job.Company)
	assert.Equal(t, models.JobStatusActive, out.Job.Status)

	var got JobEnvelope
	request(t, s, http.MethodGet, "/api/jobs/j1", nil, &got)
	assert.Equal(t, out.Job, got.Job)
}

func TestGetJob_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	var body errorBody
	status := request(t, s, http.MethodGet, "/api/jobs/missing", nil, &body)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Job not found", body.Error)

	status = request(t, s, http.MethodPatch, "/api/jobs/missing", models.JobPatch{}, &body)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReorderJob_ShiftsNeighbors(t *testing.T) {
	s, db := newTestServer(t)
	for i := 1; i <= 4; i++ {
		db.InsertJob(&models.Job{ID: fmt.Sprintf("j%d", i), Title: "t", Order: i, CreatedAt: time.Now()})
	}

	var out JobEnvelope
	status := request(t, s, http.MethodPatch, "/api/jobs/j1/reorder", ReorderRequest{FromOrder: 1, ToOrder: 3}, &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, out.Job.Order)

	orders := map[string]int{}
	for _, j := range db.Jobs() {
		orders[j.ID] = j.Order
	}
	assert.Equal(t, map[string]int{"j1": 3, "j2": 1, "j3": 2, "j4": 4}, orders)
}
