package middleware

import (
	"errors"
	"time"

	"github.com/chickenboard/activity"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// Locals keys shared with handlers and templates
const (
	TraceIDKey        = "TraceID"
	ActivityKindKey   = "ActivityKind"
	ActivityDetailKey = "ActivityDetail"
)

// TraceHeader carries the trace ID back to the client
const TraceHeader = "X-Trace-ID"

// RenderTrace tags each request with a trace ID and, when the handler
// marked the request with an activity kind, records it in log.
func RenderTrace(log *activity.Log) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := uuid.New().String()
		c.Locals(TraceIDKey, traceID)
		c.Set(TraceHeader, traceID)

		start := time.Now()

		// Process request
		err := c.Next()

		kind, ok := c.Locals(ActivityKindKey).(activity.Kind)
		if !ok || log == nil {
			return err
		}

		entry := activity.Entry{
			ID:       traceID,
			Kind:     kind,
			Path:     utils.CopyString(c.Path()),
			Status:   c.Response().StatusCode(),
			Duration: time.Since(start),
		}
		if detail, ok := c.Locals(ActivityDetailKey).(string); ok {
			entry.Detail = detail
		}
		if err != nil {
			// The error handler has not written the response yet
			entry.Status = fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				entry.Status = e.Code
			}
			entry.Error = err.Error()
		}
		log.Record(entry)

		return err
	}
}

// TraceID returns the trace ID assigned to the request
func TraceID(c *fiber.Ctx) string {
	id, _ := c.Locals(TraceIDKey).(string)
	return id
}
