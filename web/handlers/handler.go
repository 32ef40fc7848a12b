package handlers

import (
	"time"

	"github.com/chickenboard/activity"
	"github.com/chickenboard/report"
	"github.com/chickenboard/web/middleware"
	"github.com/gofiber/fiber/v2"
)

// Handler serves the earnings board. The board is built once at startup
// and only read afterwards.
type Handler struct {
	board    report.Board
	activity *activity.Log
	pause    time.Duration
	sleep    func(time.Duration)
}

// New creates handlers for board. pause separates celebration effects.
func New(board report.Board, activityLog *activity.Log, pause time.Duration) *Handler {
	return &Handler{
		board:    board,
		activity: activityLog,
		pause:    pause,
		sleep:    time.Sleep,
	}
}

// mark tags the request for the render trace middleware
func mark(c *fiber.Ctx, kind activity.Kind, detail string) {
	c.Locals(middleware.ActivityKindKey, kind)
	if detail != "" {
		c.Locals(middleware.ActivityDetailKey, detail)
	}
}
