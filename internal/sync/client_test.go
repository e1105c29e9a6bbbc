package sync

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow-app/talentflow/internal/chaos"
	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/logging"
	"github.com/talentflow-app/talentflow/internal/models"
	"github.com/talentflow-app/talentflow/internal/simsrv"
	"github.com/talentflow-app/talentflow/internal/store"
)

// newTestClient wires a chaos-free in-process backend to a fresh on-disk
// store, mirroring the production wiring in internal/app.
func newTestClient(t *testing.T) (*Client, *simsrv.DB, *store.Store) {
	t.Helper()

	db := simsrv.NewDB()
	srv := simsrv.New(db, nil, logging.NewDiscardLogger())

	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "talentflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return New(InProcDoer{App: srv.App()}, st, nil, logging.NewDiscardLogger()), db, st
}

// brokenDoer simulates a backend that is unreachable at the transport level.
type brokenDoer struct{}

func (brokenDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestListJobs_MirrorsPageIntoStore(t *testing.T) {
	c, db, st := newTestClient(t)
	ctx := context.Background()
	simsrv.Seed(db, 123, 30, 0)

	out, err := c.ListJobs(ctx, JobListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, out.Jobs, 10)
	assert.Equal(t, 30, out.Total)

	mirrored, err := st.Jobs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, mirrored, 10)

	// a second page lands alongside the first
	_, err = c.ListJobs(ctx, JobListParams{Page: 2, PageSize: 10})
	require.NoError(t, err)
	mirrored, err = st.Jobs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, mirrored, 20)
}

func TestGetJob_MirrorsAndMapsNotFound(t *testing.T) {
	c, db, st := newTestClient(t)
	ctx := context.Background()
	db.InsertJob(&models.Job{ID: "j1", Title: "Backend Developer", CreatedAt: time.Now().UTC()})

	job, err := c.GetJob(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", job.Title)

	cached, err := st.Jobs.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", cached.Title)

	_, err = c.GetJob(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateJob_ValidationErrorDoesNotMirror(t *testing.T) {
	c, _, st := newTestClient(t)
	ctx := context.Background()

	job, err := c.CreateJob(ctx, simsrv.JobCreateRequest{Title: "Platform Engineer"})
	require.NoError(t, err)
	cached, err := st.Jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "platform-engineer", cached.Slug)

	_, err = c.CreateJob(ctx, simsrv.JobCreateRequest{Company: "Acme"})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "Title is required")

	all, err := st.Jobs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateJob_MirrorReflectsBackendResult(t *testing.T) {
	c, db, st := newTestClient(t)
	ctx := context.Background()
	db.InsertJob(&models.Job{ID: "j1", Title: "Old", Slug: "old", Status: models.JobStatusActive, CreatedAt: time.Now().UTC()})

	status := models.JobStatusArchived
	job, err := c.UpdateJob(ctx, "j1", models.JobPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusArchived, job.Status)

	cached, err := st.Jobs.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusArchived, cached.Status)
	assert.Equal(t, "old", cached.Slug)
}

func TestUpdateCandidateStage_AppendsTimelineEvents(t *testing.T) {
	c, db, _ := newTestClient(t)
	ctx := context.Background()
	db.InsertCandidate(&models.Candidate{ID: "c1", Name: "Ada", Stage: models.StageApplied, AppliedAt: time.Now().UTC()})

	// first transition: prior stage comes from the backend fallback, since
	// the local mirror has never seen this candidate
	updated, err := c.UpdateCandidateStage(ctx, "c1", models.StageScreen)
	require.NoError(t, err)
	assert.Equal(t, models.StageScreen, updated.Stage)

	// second transition: prior stage now comes from the mirror
	_, err = c.UpdateCandidateStage(ctx, "c1", models.StageTech)
	require.NoError(t, err)

	events, err := c.Timeline(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, events, 2)

	byTarget := map[models.Stage]models.TimelineEvent{}
	for _, e := range events {
		assert.Equal(t, models.EventStageChange, e.Type)
		assert.Equal(t, "c1", e.CandidateID)
		byTarget[e.Data.To] = e
	}
	assert.Equal(t, models.StageApplied, byTarget[models.StageScreen].Data.From)
	assert.Equal(t, models.StageScreen, byTarget[models.StageTech].Data.From)
}

func TestUpdateCandidateStage_NotFound(t *testing.T) {
	c, _, _ := newTestClient(t)

	_, err := c.UpdateCandidateStage(context.Background(), "missing", models.StageOffer)
	assert.ErrorIs(t, err, common.ErrNotFound)

	events, err := c.Timeline(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAddNote_SurvivesBackendOutage(t *testing.T) {
	c, _, st := newTestClient(t)
	ctx := context.Background()

	// swap in a dead transport: the note is local-first, so it must land
	offline := New(brokenDoer{}, st, nil, logging.NewDiscardLogger())
	event, err := offline.AddNote(ctx, "c1", "Strong take-home")
	require.NoError(t, err)
	assert.Equal(t, models.EventNoteAdded, event.Type)
	assert.Equal(t, "Strong take-home", event.Data.Content)

	events, err := c.Timeline(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Strong take-home", events[0].Data.Content)
}

func TestTimeline_InterleavesNotesAndStageChanges(t *testing.T) {
	c, db, _ := newTestClient(t)
	ctx := context.Background()
	db.InsertCandidate(&models.Candidate{ID: "c1", Name: "Ada", Stage: models.StageApplied, AppliedAt: time.Now().UTC()})

	_, err := c.UpdateCandidateStage(ctx, "c1", models.StageScreen)
	require.NoError(t, err)
	_, err = c.AddNote(ctx, "c1", "Good phone screen")
	require.NoError(t, err)

	events, err := c.Timeline(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i-1].Date.After(events[i].Date))
	}
}

func TestGetCandidate_MirrorsCandidateOnly(t *testing.T) {
	c, db, st := newTestClient(t)
	ctx := context.Background()
	db.InsertJob(&models.Job{ID: "j1", Title: "Backend Developer", CreatedAt: time.Now().UTC()})
	db.InsertCandidate(&models.Candidate{ID: "c1", Name: "Ada", JobID: "j1", Stage: models.StageApplied, AppliedAt: time.Now().UTC()})

	candidate, job, err := c.GetCandidate(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", candidate.Name)
	require.NotNil(t, job)
	assert.Equal(t, "Backend Developer", job.Title)

	cached, err := st.Candidates.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", cached.Name)
}

func TestGetAssessment_CachePreferred(t *testing.T) {
	c, db, _ := newTestClient(t)
	ctx := context.Background()
	simsrv.Seed(db, 123, 5, 0)

	jobID := db.Assessments()[0].JobID

	// first read misses the cache and populates it from the backend
	first, err := c.GetAssessment(ctx, jobID)
	require.NoError(t, err)
	require.NotNil(t, first)

	// wipe the backend; the cached copy keeps answering
	db.DeleteAssessment(first.ID)
	second, err := c.GetAssessment(ctx, jobID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Title, second.Title)
}

func TestGetAssessment_DoubleMissIsNilNil(t *testing.T) {
	c, _, _ := newTestClient(t)

	a, err := c.GetAssessment(context.Background(), "job-without-assessment")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestSaveAssessment_MirrorServesLaterReads(t *testing.T) {
	c, _, _ := newTestClient(t)
	ctx := context.Background()

	saved, err := c.SaveAssessment(ctx, "j1", simsrv.AssessmentUpsertRequest{
		Title: "Backend Screen",
		Sections: []models.Section{{ID: "s1", Title: "Basics", Questions: []models.Question{
			{ID: "q1", Type: models.QuestionTextShort, Text: "Years with Go?"},
		}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "j1", saved.JobID)

	got, err := c.GetAssessment(ctx, "j1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, 1, got.QuestionCount())
}

func TestDeleteAssessment_LeavesMirrorStale(t *testing.T) {
	c, db, _ := newTestClient(t)
	ctx := context.Background()

	saved, err := c.SaveAssessment(ctx, "j1", simsrv.AssessmentUpsertRequest{Title: "Screen"})
	require.NoError(t, err)

	require.NoError(t, c.DeleteAssessment(ctx, saved.ID))
	assert.Empty(t, db.Assessments())

	// the cache is not invalidated on delete; the read still serves it
	got, err := c.GetAssessment(ctx, "j1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)
}

func TestSubmitResponse_SurvivesBackendOutage(t *testing.T) {
	_, _, st := newTestClient(t)
	ctx := context.Background()

	offline := New(brokenDoer{}, st, nil, logging.NewDiscardLogger())
	resp, err := offline.SubmitResponse(ctx, "asm-1", map[string]any{"q1": "three years"})
	require.NoError(t, err)
	assert.Equal(t, "asm-1", resp.AssessmentID)
	assert.NotEmpty(t, resp.ID)

	stored, err := offline.ListResponses(ctx, "asm-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.ID, stored[0].ID)
	assert.Equal(t, "three years", stored[0].Responses["q1"])
}

func TestSubmitResponse_IDsAreUniquePerSubmission(t *testing.T) {
	c, db, _ := newTestClient(t)
	ctx := context.Background()
	simsrv.Seed(db, 123, 5, 0)

	r1, err := c.SubmitResponse(ctx, "asm-1", map[string]any{"q1": "a"})
	require.NoError(t, err)
	r2, err := c.SubmitResponse(ctx, "asm-1", map[string]any{"q1": "b"})
	require.NoError(t, err)
	assert.NotEqual(t, r1.ID, r2.ID)

	all, err := c.GetAllResponses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDo_MapsTransportFailureToUnavailable(t *testing.T) {
	_, _, st := newTestClient(t)

	offline := New(brokenDoer{}, st, nil, logging.NewDiscardLogger())
	_, err := offline.ListJobs(context.Background(), JobListParams{})
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestDo_ClientChaosInjectsUnavailable(t *testing.T) {
	c, db, st := newTestClient(t)
	ctx := context.Background()
	simsrv.Seed(db, 123, 5, 0)

	flaky := New(c.doer, st, chaos.New(0, 0, 1.0, 9), logging.NewDiscardLogger())
	_, err := flaky.ListJobs(ctx, JobListParams{})
	assert.ErrorIs(t, err, common.ErrUnavailable)

	// a sound policy lets the same call through
	calm := New(c.doer, st, chaos.New(0, 0, 0, 9), logging.NewDiscardLogger())
	out, err := calm.ListJobs(ctx, JobListParams{})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Total)
}
