package simsrv

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/models"
)

type AssessmentListResponse struct {
	Assessments []models.Assessment `json:"assessments"`
}

type AssessmentEnvelope struct {
	Assessment models.Assessment `json:"assessment"`
}

// AssessmentUpsertRequest carries the whole document; sections and questions
// replace whatever was stored before.
type AssessmentUpsertRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Sections    []models.Section `json:"sections"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func (s *Server) handleListAssessments(c fiber.Ctx) error {
	return c.JSON(AssessmentListResponse{Assessments: s.db.Assessments()})
}

func (s *Server) handleGetAssessment(c fiber.Ctx) error {
	a, err := s.db.AssessmentByJobID(c.Params("jobId"))
	if errors.Is(err, common.ErrNotFound) {
		return errorOf(fiber.StatusNotFound, "Assessment not found")
	}
	return c.JSON(AssessmentEnvelope{Assessment: *a})
}

func (s *Server) handleUpsertAssessment(c fiber.Ctx) error {
	var req AssessmentUpsertRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorOf(fiber.StatusBadRequest, "Invalid request body")
	}

	doc := &models.Assessment{
		ID:          uuid.NewString(), // replaced by the stored id on update
		Title:       req.Title,
		Description: req.Description,
		Sections:    req.Sections,
	}
	saved := s.db.UpsertAssessmentByJob(c.Params("jobId"), doc)

	return c.JSON(AssessmentEnvelope{Assessment: *saved})
}

func (s *Server) handleDeleteAssessment(c fiber.Ctx) error {
	// idempotent: deleting an unknown id still reports success
	s.db.DeleteAssessment(c.Params("id"))
	return c.JSON(SuccessResponse{Success: true})
}

func (s *Server) handleSubmitAssessment(c fiber.Ctx) error {
	// fire-and-forget: the body is acknowledged, never stored. Responses are
	// the client's local-only data.
	var body map[string]any
	if err := c.Bind().Body(&body); err != nil {
		return errorOf(fiber.StatusBadRequest, "Invalid request body")
	}
	return c.JSON(SuccessResponse{Success: true})
}
