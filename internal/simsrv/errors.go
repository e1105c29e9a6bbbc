package simsrv

import (
	"errors"

	"github.com/gofiber/fiber/v3"
)

// apiError carries the HTTP status and the message rendered into the
// `{"error": ...}` body the API uses for every failure.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

func errorOf(status int, message string) *apiError {
	return &apiError{Status: status, Message: message}
}

type errorBody struct {
	Error string `json:"error"`
}

// normalizeErrors renders handler errors as the API's error envelope and
// turns panics into plain 500s.
func (s *Server) normalizeErrors(c fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error(c.Context(), "panic recovered", "panic", r)
			err = c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: "Internal error"})
		}
	}()

	err = c.Next()
	if err == nil {
		return nil
	}

	var ae *apiError
	if errors.As(err, &ae) {
		return c.Status(ae.Status).JSON(errorBody{Error: ae.Message})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorBody{Error: fe.Message})
	}

	s.log.Error(c.Context(), "unhandled error", "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: "Internal error"})
}
