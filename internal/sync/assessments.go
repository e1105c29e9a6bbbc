package sync

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/models"
	"github.com/talentflow-app/talentflow/internal/simsrv"
)

// GetAssessment is the one cache-preferred read: the local store answers
// first, the backend is only consulted on a miss, and a backend hit
// populates the cache. No assessment anywhere is (nil, nil), not an error.
func (c *Client) GetAssessment(ctx context.Context, jobID string) (*models.Assessment, error) {
	cached, err := c.store.Assessments.GetByJobID(ctx, jobID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		c.log.Warn(ctx, "assessment cache read failed, falling back to backend", "job", jobID, "err", err)
	}

	var out simsrv.AssessmentEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/assessments/"+jobID, nil, nil, &out); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	c.mirrorAssessment(ctx, &out.Assessment)
	return &out.Assessment, nil
}

func (c *Client) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	var out simsrv.AssessmentListResponse
	if err := c.do(ctx, http.MethodGet, "/api/assessments", nil, nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Assessments {
		c.mirrorAssessment(ctx, &out.Assessments[i])
	}
	return out.Assessments, nil
}

// SaveAssessment upserts the whole document for a job on the backend and
// mirrors the authoritative result.
func (c *Client) SaveAssessment(ctx context.Context, jobID string, req simsrv.AssessmentUpsertRequest) (*models.Assessment, error) {
	var out simsrv.AssessmentEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/assessments/"+jobID, nil, req, &out); err != nil {
		return nil, err
	}
	c.mirrorAssessment(ctx, &out.Assessment)
	return &out.Assessment, nil
}

// DeleteAssessment deletes on the backend only. The local mirror is not
// touched, so a cache-preferred read may keep serving the deleted assessment
// until it is overwritten — a known, accepted staleness.
func (c *Client) DeleteAssessment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/assessments/"+id, nil, nil, nil)
}

// SubmitResponse persists the filled-out response locally first, so it
// survives any network outcome, then notifies the backend best-effort.
func (c *Client) SubmitResponse(ctx context.Context, assessmentID string, answers map[string]any) (*models.AssessmentResponse, error) {
	resp := models.AssessmentResponse{
		ID:           fmt.Sprintf("%s-%d", assessmentID, time.Now().UnixNano()),
		AssessmentID: assessmentID,
		Responses:    answers,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := c.store.Responses.Upsert(ctx, &resp); err != nil {
		return nil, err
	}

	if err := c.do(ctx, http.MethodPost, "/api/assessments/"+assessmentID+"/submit", nil, answers, nil); err != nil {
		c.log.Warn(ctx, "submit notification failed, response kept locally", "assessment", assessmentID, "err", err)
	}

	return &resp, nil
}

// ListResponses returns the locally stored submissions for one assessment;
// the backend has no equivalent endpoint.
func (c *Client) ListResponses(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error) {
	return c.store.Responses.GetByAssessmentID(ctx, assessmentID)
}

func (c *Client) GetAllResponses(ctx context.Context) ([]models.AssessmentResponse, error) {
	return c.store.Responses.GetAll(ctx)
}

func (c *Client) mirrorAssessment(ctx context.Context, a *models.Assessment) {
	if err := c.store.Assessments.Upsert(ctx, a); err != nil {
		c.log.Error(ctx, "failed to mirror assessment", "job", a.JobID, "err", err)
	}
}
