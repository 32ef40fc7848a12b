package handlers

import (
	"fmt"

	"github.com/chickenboard/activity"
	"github.com/chickenboard/celebration"
	"github.com/chickenboard/export"
	"github.com/chickenboard/report"
	"github.com/chickenboard/web/middleware"
	"github.com/gofiber/fiber/v2"
)

// ReportPage handles the board page
func (h *Handler) ReportPage(c *fiber.Ctx) error {
	mark(c, activity.KindRender, fmt.Sprintf("rows=%d", len(h.board.Table.Rows)))
	return h.render(c, nil)
}

// Celebrate re-renders the whole page with a fresh effect sequence
func (h *Handler) Celebrate(c *fiber.Ctx) error {
	steps := celebration.Sequence(h.pause)
	mark(c, activity.KindCelebrate, fmt.Sprintf("steps=%d", len(steps)))
	return h.render(c, steps)
}

func (h *Handler) render(c *fiber.Ctx, steps []celebration.Step) error {
	return c.Render("pages/report", fiber.Map{
		"PageTitle":       "치킨 브랜드 분석",
		"Board":           h.board,
		"ChampionMargin":  h.board.ChampionMargin(),
		"TableHeading":    report.TableHeading,
		"InsightHeading":  report.InsightHeading,
		"CelebrateButton": report.CelebrateButton,
		"Caption":         report.Caption,
		"Celebration":     steps,
		"TraceID":         middleware.TraceID(c),
	}, "layouts/base")
}

// Brands returns the dataset, table model and champion as JSON
func (h *Handler) Brands(c *fiber.Ctx) error {
	return c.JSON(h.board)
}

// ExportXLSX sends the table as a spreadsheet download
func (h *Handler) ExportXLSX(c *fiber.Ctx) error {
	mark(c, activity.KindExport, export.FileName)

	c.Attachment(export.FileName)
	c.Set(fiber.HeaderContentType, export.ContentType)
	if err := export.Write(c.Response().BodyWriter(), h.board); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "엑셀 파일을 만들 수 없습니다: "+err.Error())
	}
	return nil
}

// GetActivityLogs returns recent interaction logs as JSON
func (h *Handler) GetActivityLogs(c *fiber.Ctx) error {
	n := c.QueryInt("limit", 20)
	return c.JSON(h.activity.Recent(n))
}

// ClearActivityLogs clears all interaction logs
func (h *Handler) ClearActivityLogs(c *fiber.Ctx) error {
	h.activity.Clear()
	return c.SendStatus(fiber.StatusOK)
}
