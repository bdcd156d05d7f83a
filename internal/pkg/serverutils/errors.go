package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// HTTPError carries the status a handler wants the client to see.
// Everything else falls through as a 500.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func BadRequest(message string) *HTTPError {
	return &HTTPError{Code: fiber.StatusBadRequest, Message: message}
}

func NotFound(message string) *HTTPError {
	return &HTTPError{Code: fiber.StatusNotFound, Message: message}
}

func Internal(message string) *HTTPError {
	return &HTTPError{Code: fiber.StatusInternalServerError, Message: message}
}

// ErrorBody is the JSON error envelope: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorHandlerMiddleware converts errors returned by handlers into the
// {"error": string} body with the right status. Validation errors map to 400,
// missing resources to 404, everything unexpected to 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return ctx.Status(httpErr.Code).JSON(ErrorBody{Error: httpErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorBody{Error: fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorBody{Error: err.Error()})
	}
}
