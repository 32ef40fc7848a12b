package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/chickenboard/activity"
	"github.com/chickenboard/celebration"
	"github.com/chickenboard/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// CelebrationSteps returns the effect sequence one activation plays
func (h *Handler) CelebrationSteps(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"pause_ms": h.pause.Milliseconds(),
		"steps":    celebration.Sequence(h.pause),
	})
}

// CelebrationStream plays the sequence on the server as server-sent events.
// The request goroutine sleeps between effects and always finishes the
// sequence unless the client goes away.
func (h *Handler) CelebrationStream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	traceID := middleware.TraceID(c)
	path := utils.CopyString(c.Path())
	player := &celebration.Player{Pause: h.pause, Sleep: h.sleep}

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		start := time.Now()
		n, err := player.Play(celebration.SinkFunc(func(step celebration.Step) error {
			return writeEvent(w, "effect", step.Seq, step)
		}))
		if err == nil {
			err = writeEvent(w, "done", n+1, fiber.Map{"steps": n})
		}

		entry := activity.Entry{
			ID:       traceID,
			Kind:     activity.KindStream,
			Path:     path,
			Status:   fiber.StatusOK,
			Duration: time.Since(start),
			Detail:   fmt.Sprintf("steps=%d", n),
		}
		if err != nil {
			log.Printf("celebration stream %s stopped: %v", traceID, err)
			entry.Error = err.Error()
		}
		if h.activity != nil {
			h.activity.Record(entry)
		}
	})
	return nil
}

func writeEvent(w *bufio.Writer, event string, id int, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\nid: %d\ndata: %s\n\n", event, id, data); err != nil {
		return err
	}
	return w.Flush()
}
