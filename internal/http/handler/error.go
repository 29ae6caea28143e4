package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"salarydash/internal/filter"
	"salarydash/internal/http/middleware"
	"salarydash/internal/logger"
	"salarydash/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_SELECTION", "NO_DATA", "DATASET_UNAVAILABLE")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// classify maps a service error to status, code and safe message.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, service.ErrDatasetUnavailable):
		return fiber.StatusBadGateway, "DATASET_UNAVAILABLE", "dataset could not be loaded"
	case errors.Is(err, filter.ErrInvalidSelection):
		return fiber.StatusBadRequest, "INVALID_SELECTION", "invalid filter selection"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

// logServiceError logs err with the request id and returns its classification.
func logServiceError(c *fiber.Ctx, err error) (int, string, string) {
	status, code, msg := classify(err)
	ev := logger.C(c.UserContext()).Warn()
	if status >= fiber.StatusInternalServerError {
		ev = logger.C(c.UserContext()).Error()
	}
	ev.Err(err).Str("code", code).Str("path", c.Path()).Msg("request failed")
	return status, code, msg
}

// writeServiceError answers with the classified envelope for err.
func writeServiceError(c *fiber.Ctx, err error) error {
	status, code, msg := logServiceError(c, err)
	return writeError(c, status, code, msg)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusBadGateway:
			return writeError(c, status, "DATASET_UNAVAILABLE", "dataset could not be loaded")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
