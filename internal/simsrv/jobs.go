package simsrv

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/models"
)

const defaultJobPageSize = 10

// JobListResponse is the list envelope: the page slice plus pagination
// bookkeeping computed over the filtered set.
type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

type JobEnvelope struct {
	Job models.Job `json:"job"`
}

// JobCreateRequest is the create body. Title is the only required field;
// status, slug, createdAt, and order are server-assigned.
type JobCreateRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Tags        []string `json:"tags"`
	Department  string   `json:"department"`
	Location    string   `json:"location"`
	SalaryRange string   `json:"salaryRange"`
	Experience  int      `json:"experience"`
	Description string   `json:"description"`
}

// ReorderRequest moves a job between manual ranks.
type ReorderRequest struct {
	FromOrder int `json:"fromOrder"`
	ToOrder   int `json:"toOrder"`
}

func (s *Server) handleListJobs(c fiber.Ctx) error {
	jobs := s.db.Jobs()

	if search := strings.ToLower(c.Query("search")); search != "" {
		jobs = slices.DeleteFunc(jobs, func(j models.Job) bool {
			return !strings.Contains(strings.ToLower(j.Title), search) &&
				!strings.Contains(strings.ToLower(j.Company), search) &&
				!strings.Contains(strings.ToLower(j.Location), search)
		})
	}
	if status := c.Query("status"); status != "" && status != "all" {
		jobs = slices.DeleteFunc(jobs, func(j models.Job) bool {
			return string(j.Status) != status
		})
	}
	if tag := c.Query("tag"); tag != "" {
		jobs = slices.DeleteFunc(jobs, func(j models.Job) bool {
			return !slices.Contains(j.Tags, tag)
		})
	}

	p := parsePage(c, defaultJobPageSize)
	total := len(jobs)

	return c.JSON(JobListResponse{
		Jobs:       paginate(jobs, p),
		Total:      total,
		Page:       p.Number,
		PageSize:   p.Size,
		TotalPages: totalPages(total, p.Size),
	})
}

func (s *Server) handleGetJob(c fiber.Ctx) error {
	job, err := s.db.JobByID(c.Params("id"))
	if errors.Is(err, common.ErrNotFound) {
		return errorOf(fiber.StatusNotFound, "Job not found")
	}
	return c.JSON(JobEnvelope{Job: *job})
}

func (s *Server) handleCreateJob(c fiber.Ctx) error {
	var req JobCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorOf(fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" {
		return errorOf(fiber.StatusBadRequest, "Title is required")
	}

	job := models.Job{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Company:     req.Company,
		Slug:        models.Slugify(req.Title),
		Status:      models.JobStatusActive,
		Tags:        req.Tags,
		Department:  req.Department,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		Experience:  req.Experience,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
		Order:       s.db.NextJobOrder(),
	}
	s.db.InsertJob(&job)

	return c.JSON(JobEnvelope{Job: job})
}

func (s *Server) handleUpdateJob(c fiber.Ctx) error {
	var patch models.JobPatch
	if err := c.Bind().Body(&patch); err != nil {
		return errorOf(fiber.StatusBadRequest, "Invalid request body")
	}

	job, err := s.db.UpdateJob(c.Params("id"), &patch)
	if errors.Is(err, common.ErrNotFound) {
		return errorOf(fiber.StatusNotFound, "Job not found")
	}
	return c.JSON(JobEnvelope{Job: *job})
}

func (s *Server) handleReorderJob(c fiber.Ctx) error {
	var req ReorderRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorOf(fiber.StatusBadRequest, "Invalid request body")
	}

	job, err := s.db.ReorderJob(c.Params("id"), req.FromOrder, req.ToOrder)
	if errors.Is(err, common.ErrNotFound) {
		return errorOf(fiber.StatusNotFound, "Job not found")
	}
	return c.JSON(JobEnvelope{Job: *job})
}
