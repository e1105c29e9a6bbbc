// Package simsrv is the simulated hiring-platform API: an in-memory,
// deterministically seeded stand-in for a real backend. It speaks the same
// HTTP surface a production API would (list/filter/paginate/CRUD under /api)
// while injecting artificial latency and, depending on configuration, random
// failures through a chaos policy.
package simsrv

import (
	"github.com/gofiber/fiber/v3"

	"github.com/talentflow-app/talentflow/internal/chaos"
	"github.com/talentflow-app/talentflow/internal/logging"
)

type Server struct {
	db     *DB
	policy *chaos.Policy
	log    logging.Logger
	app    *fiber.App
}

// New builds the fiber app over db. policy may be nil for a well-behaved
// backend (tests rely on that).
func New(db *DB, policy *chaos.Policy, log logging.Logger) *Server {
	s := &Server{
		db:     db,
		policy: policy,
		log:    log,
		app:    fiber.New(),
	}
	s.registerRoutes()
	return s
}

// App exposes the fiber app so the sync client can drive it in-process
// without a network listener.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api", s.normalizeErrors, s.simulateNetwork)

	api.Get("/jobs", s.handleListJobs)
	api.Post("/jobs", s.handleCreateJob)
	api.Get("/jobs/:id", s.handleGetJob)
	api.Patch("/jobs/:id", s.handleUpdateJob)
	api.Patch("/jobs/:id/reorder", s.handleReorderJob)

	api.Get("/candidates", s.handleListCandidates)
	api.Get("/candidates/:id", s.handleGetCandidate)
	api.Patch("/candidates/:id", s.handleUpdateCandidate)
	api.Get("/candidates/:id/timeline", s.handleCandidateTimeline)
	api.Post("/candidates/:id/notes", s.handleAddCandidateNote)

	api.Get("/assessments", s.handleListAssessments)
	api.Get("/assessments/:jobId", s.handleGetAssessment)
	api.Put("/assessments/:jobId", s.handleUpsertAssessment)
	api.Delete("/assessments/:id", s.handleDeleteAssessment)
	api.Post("/assessments/:id/submit", s.handleSubmitAssessment)
}

// simulateNetwork applies the backend's artificial latency before every
// handler and occasionally fails the call outright.
func (s *Server) simulateNetwork(c fiber.Ctx) error {
	if err := s.policy.Wait(c.Context()); err != nil {
		return err
	}
	if s.policy.ShouldFail() {
		s.log.Warn(c.Context(), "injecting backend failure", "path", c.Path())
		return errorOf(fiber.StatusInternalServerError, "Injected network failure")
	}
	return c.Next()
}
