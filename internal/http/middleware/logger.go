package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"salarydash/internal/logger"
)

// Logger is a middleware that logs each HTTP request as one JSON line through the root logger.
// Fields: request_id, method, path, status, latency (milliseconds, float).
func Logger() fiber.Handler {
	return requestLogger(func() *logger.Logger { return logger.Get() })
}

// LoggerWithWriter is Logger writing to w instead of the root logger's output.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	l := logger.New(logger.Options{Level: "info", Writer: w})
	return requestLogger(func() *logger.Logger { return &l })
}

func requestLogger(get func() *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after handler executed to capture final status
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		latency := float64(time.Since(start).Microseconds()) / 1000

		ev := get().Info()
		if status >= fiber.StatusInternalServerError {
			ev = get().Error()
		}
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", latency).
			Msg("request")

		return err
	}
}
