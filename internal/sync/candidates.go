package sync

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/talentflow-app/talentflow/internal/models"
	"github.com/talentflow-app/talentflow/internal/simsrv"
)

type CandidateListParams struct {
	Search   string
	Stage    string
	JobID    string
	Page     int
	PageSize int
}

func (p CandidateListParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Stage != "" {
		q.Set("stage", p.Stage)
	}
	if p.JobID != "" {
		q.Set("jobId", p.JobID)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

func (c *Client) ListCandidates(ctx context.Context, params CandidateListParams) (*simsrv.CandidateListResponse, error) {
	var out simsrv.CandidateListResponse
	if err := c.do(ctx, http.MethodGet, "/api/candidates", params.values(), nil, &out); err != nil {
		return nil, err
	}
	c.mirrorCandidates(ctx, out.Candidates)
	return &out, nil
}

// GetCandidate returns the candidate and their resolved job (nil when the
// candidate has none).
func (c *Client) GetCandidate(ctx context.Context, id string) (*models.Candidate, *models.Job, error) {
	var out simsrv.CandidateDetailEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/candidates/"+id, nil, nil, &out); err != nil {
		return nil, nil, err
	}
	c.mirrorCandidate(ctx, &out.Candidate)
	return &out.Candidate, out.Job, nil
}

func (c *Client) UpdateCandidate(ctx context.Context, id string, patch models.CandidatePatch) (*models.Candidate, error) {
	var out simsrv.CandidateEnvelope
	if err := c.do(ctx, http.MethodPatch, "/api/candidates/"+id, nil, patch, &out); err != nil {
		return nil, err
	}
	c.mirrorCandidate(ctx, &out.Candidate)
	return &out.Candidate, nil
}

// UpdateCandidateStage is the one place pipeline history is derived rather
// than stored by the backend: the prior stage is captured before the update,
// and once the backend confirms, a stage_change event is appended to the
// local timeline before the candidate is mirrored.
func (c *Client) UpdateCandidateStage(ctx context.Context, id string, stage models.Stage) (*models.Candidate, error) {
	prior := c.priorStage(ctx, id)

	patch := models.CandidatePatch{Stage: &stage}
	var out simsrv.CandidateEnvelope
	if err := c.do(ctx, http.MethodPatch, "/api/candidates/"+id, nil, patch, &out); err != nil {
		return nil, err
	}

	event := models.TimelineEvent{
		ID:          uuid.NewString(),
		CandidateID: out.Candidate.ID,
		Type:        models.EventStageChange,
		Date:        time.Now().UTC(),
		Data:        models.EventData{From: prior, To: out.Candidate.Stage},
	}
	if err := c.store.Timeline.Append(ctx, &event); err != nil {
		c.log.Error(ctx, "failed to append stage change", "candidate", id, "err", err)
	}

	c.mirrorCandidate(ctx, &out.Candidate)
	return &out.Candidate, nil
}

// priorStage prefers the local mirror; on a cache miss it falls back to a
// fresh backend read. An unknown prior stage is recorded as empty rather
// than failing the update.
func (c *Client) priorStage(ctx context.Context, id string) models.Stage {
	if cached, err := c.store.Candidates.GetByID(ctx, id); err == nil {
		return cached.Stage
	}
	var out simsrv.CandidateDetailEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/candidates/"+id, nil, nil, &out); err == nil {
		return out.Candidate.Stage
	}
	return ""
}

// AddNote records a note on the candidate's local timeline first, then sends
// a best-effort notification to the backend (which acknowledges without
// persisting). A failed notification does not roll the note back.
func (c *Client) AddNote(ctx context.Context, candidateID, content string) (*models.TimelineEvent, error) {
	event := models.TimelineEvent{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Type:        models.EventNoteAdded,
		Date:        time.Now().UTC(),
		Data:        models.EventData{Content: content},
	}
	if err := c.store.Timeline.Append(ctx, &event); err != nil {
		return nil, err
	}

	req := simsrv.NoteRequest{Content: content}
	if err := c.do(ctx, http.MethodPost, "/api/candidates/"+candidateID+"/notes", nil, req, nil); err != nil {
		c.log.Warn(ctx, "note notification failed", "candidate", candidateID, "err", err)
	}

	return &event, nil
}

// Timeline reads a candidate's history from the local store; the backend only
// ever returns an empty placeholder for it.
func (c *Client) Timeline(ctx context.Context, candidateID string) ([]models.TimelineEvent, error) {
	return c.store.Timeline.GetByCandidateID(ctx, candidateID)
}

func (c *Client) mirrorCandidate(ctx context.Context, candidate *models.Candidate) {
	if err := c.store.Candidates.Upsert(ctx, candidate); err != nil {
		c.log.Error(ctx, "failed to mirror candidate", "id", candidate.ID, "err", err)
	}
}

func (c *Client) mirrorCandidates(ctx context.Context, candidates []models.Candidate) {
	if len(candidates) == 0 {
		return
	}
	if err := c.store.Candidates.UpsertAll(ctx, candidates); err != nil {
		c.log.Error(ctx, "failed to mirror candidate page", "count", len(candidates), "err", err)
	}
}
