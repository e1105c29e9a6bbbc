// Package sync implements the access layer the UI calls. Every operation goes
// to the simulated backend first; on success the authoritative result is
// mirrored into the local store before the call returns. The mirror is a side
// effect, not the source of truth — except for assessments (cache-preferred
// reads) and the local-only records (timeline events, assessment responses)
// the backend never persists.
package sync

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/talentflow-app/talentflow/internal/chaos"
	"github.com/talentflow-app/talentflow/internal/logging"
	"github.com/talentflow-app/talentflow/internal/models"
	"github.com/talentflow-app/talentflow/internal/simsrv"
	"github.com/talentflow-app/talentflow/internal/store"
)

// Client is the single point of access for UI code.
type Client struct {
	doer   Doer
	store  *store.Store
	policy *chaos.Policy
	log    logging.Logger
}

// New builds a client over a backend transport and an opened local store.
// policy is the client's own flakiness (independent of the backend's) and may
// be nil.
func New(doer Doer, st *store.Store, policy *chaos.Policy, log logging.Logger) *Client {
	return &Client{doer: doer, store: st, policy: policy, log: log}
}

// JobListParams narrows and pages the jobs listing. Zero values mean "not
// set" and are omitted from the query.
type JobListParams struct {
	Search   string
	Status   string
	Tag      string
	Page     int
	PageSize int
}

func (p JobListParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Tag != "" {
		q.Set("tag", p.Tag)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

// ListJobs queries the backend and mirrors the returned page into the local
// store. The backend's payload is returned as-is.
func (c *Client) ListJobs(ctx context.Context, params JobListParams) (*simsrv.JobListResponse, error) {
	var out simsrv.JobListResponse
	if err := c.do(ctx, http.MethodGet, "/api/jobs", params.values(), nil, &out); err != nil {
		return nil, err
	}
	c.mirrorJobs(ctx, out.Jobs)
	return &out, nil
}

func (c *Client) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var out simsrv.JobEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	c.mirrorJob(ctx, &out.Job)
	return &out.Job, nil
}

func (c *Client) CreateJob(ctx context.Context, req simsrv.JobCreateRequest) (*models.Job, error) {
	var out simsrv.JobEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/jobs", nil, req, &out); err != nil {
		return nil, err
	}
	c.mirrorJob(ctx, &out.Job)
	return &out.Job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error) {
	var out simsrv.JobEnvelope
	if err := c.do(ctx, http.MethodPatch, "/api/jobs/"+id, nil, patch, &out); err != nil {
		return nil, err
	}
	c.mirrorJob(ctx, &out.Job)
	return &out.Job, nil
}

// ReorderJob moves a job between manual ranks. On failure the caller is
// expected to roll its optimistic UI move back and retry by hand.
func (c *Client) ReorderJob(ctx context.Context, id string, fromOrder, toOrder int) (*models.Job, error) {
	var out simsrv.JobEnvelope
	req := simsrv.ReorderRequest{FromOrder: fromOrder, ToOrder: toOrder}
	if err := c.do(ctx, http.MethodPatch, "/api/jobs/"+id+"/reorder", nil, req, &out); err != nil {
		return nil, err
	}
	c.mirrorJob(ctx, &out.Job)
	return &out.Job, nil
}

// mirror helpers: a failed local write never fails the primary operation,
// since the backend response is authoritative and already in hand.

func (c *Client) mirrorJob(ctx context.Context, job *models.Job) {
	if err := c.store.Jobs.Upsert(ctx, job); err != nil {
		c.log.Error(ctx, "failed to mirror job", "id", job.ID, "err", err)
	}
}

func (c *Client) mirrorJobs(ctx context.Context, jobs []models.Job) {
	if len(jobs) == 0 {
		return
	}
	if err := c.store.Jobs.UpsertAll(ctx, jobs); err != nil {
		c.log.Error(ctx, "failed to mirror job page", "count", len(jobs), "err", err)
	}
}
