package simsrv

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/models"
)

const defaultCandidatePageSize = 20

type CandidateListResponse struct {
	Candidates []models.Candidate `json:"candidates"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

type CandidateEnvelope struct {
	Candidate models.Candidate `json:"candidate"`
}

// CandidateDetailEnvelope resolves the weak job reference alongside the
// candidate; Job is null when the candidate has no job or the reference is
// dangling.
type CandidateDetailEnvelope struct {
	Candidate models.Candidate `json:"candidate"`
	Job       *models.Job      `json:"job"`
}

// TimelineEnvelope is the backend's placeholder answer: pipeline history is
// tracked client-side, so the server always reports an empty timeline.
type TimelineEnvelope struct {
	Timeline []models.TimelineEvent `json:"timeline"`
}

type NoteRequest struct {
	Content string `json:"content"`
}

type Note struct {
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// NoteResponse acknowledges a note without persisting it; notes live in the
// client's timeline only.
type NoteResponse struct {
	Success bool `json:"success"`
	Note    Note `json:"note"`
}

func (s *Server) handleListCandidates(c fiber.Ctx) error {
	candidates := s.db.Candidates()

	if search := strings.ToLower(c.Query("search")); search != "" {
		candidates = slices.DeleteFunc(candidates, func(cd models.Candidate) bool {
			return !strings.Contains(strings.ToLower(cd.Name), search) &&
				!strings.Contains(strings.ToLower(cd.Email), search)
		})
	}
	if stage := c.Query("stage"); stage != "" && stage != "all" {
		candidates = slices.DeleteFunc(candidates, func(cd models.Candidate) bool {
			return string(cd.Stage) != stage
		})
	}
	if jobID := c.Query("jobId"); jobID != "" {
		candidates = slices.DeleteFunc(candidates, func(cd models.Candidate) bool {
			return cd.JobID != jobID
		})
	}

	p := parsePage(c, defaultCandidatePageSize)
	total := len(candidates)

	return c.JSON(CandidateListResponse{
		Candidates: paginate(candidates, p),
		Total:      total,
		Page:       p.Number,
		PageSize:   p.Size,
		TotalPages: totalPages(total, p.Size),
	})
}

func (s *Server) handleGetCandidate(c fiber.Ctx) error {
	candidate, err := s.db.CandidateByID(c.Params("id"))
	if errors.Is(err, common.ErrNotFound) {
		return errorOf(fiber.StatusNotFound, "Candidate not found")
	}

	var job *models.Job
	if candidate.JobID != "" {
		// dangling references resolve to null, not an error
		job, _ = s.db.JobByID(candidate.JobID)
	}

	return c.JSON(CandidateDetailEnvelope{Candidate: *candidate, Job: job})
}

func (s *Server) handleUpdateCandidate(c fiber.Ctx) error {
	var patch models.CandidatePatch
	if err := c.Bind().Body(&patch); err != nil {
		return errorOf(fiber.StatusBadRequest, "Invalid request body")
	}
	if patch.Stage != nil && !patch.Stage.Valid() {
		return errorOf(fiber.StatusBadRequest, "Invalid stage")
	}

	candidate, err := s.db.UpdateCandidate(c.Params("id"), &patch)
	if errors.Is(err, common.ErrNotFound) {
		return errorOf(fiber.StatusNotFound, "Candidate not found")
	}
	return c.JSON(CandidateEnvelope{Candidate: *candidate})
}

func (s *Server) handleCandidateTimeline(c fiber.Ctx) error {
	return c.JSON(TimelineEnvelope{Timeline: []models.TimelineEvent{}})
}

func (s *Server) handleAddCandidateNote(c fiber.Ctx) error {
	var req NoteRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorOf(fiber.StatusBadRequest, "Invalid request body")
	}
	return c.JSON(NoteResponse{
		Success: true,
		Note:    Note{Content: req.Content, Date: time.Now().UTC()},
	})
}
