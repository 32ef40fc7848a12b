package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chickenboard/activity"
	"github.com/chickenboard/celebration"
	"github.com/chickenboard/export"
	"github.com/chickenboard/report"
	"github.com/chickenboard/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler, *activity.Log) {
	t.Helper()

	log := activity.NewLog(50)
	h := New(report.NewBoard(report.MustBrands()), log, time.Second)

	app := fiber.New()
	app.Use(middleware.RenderTrace(log))
	app.Get("/api/brands", h.Brands)
	app.Get("/api/celebration", h.CelebrationSteps)
	app.Get("/celebrate/stream", h.CelebrationStream)
	app.Get("/reports/export.xlsx", h.ExportXLSX)
	app.Get("/api/debug/activity", h.GetActivityLogs)
	app.Delete("/api/debug/activity", h.ClearActivityLogs)
	return app, h, log
}

func TestBrandsJSON(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/brands", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var board report.Board
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(board.Records) != 5 || len(board.Table.Rows) != 5 {
		t.Errorf("records/rows = %d/%d, want 5/5", len(board.Records), len(board.Table.Rows))
	}
	if board.Champion == nil || board.Champion.Brand != "BHC" {
		t.Errorf("champion = %+v", board.Champion)
	}
	if board.Table.Columns[2].Max != 5176 || board.Table.Columns[3].Max != 1418 {
		t.Errorf("scales = %d/%d", board.Table.Columns[2].Max, board.Table.Columns[3].Max)
	}
}

func TestCelebrationStepsJSON(t *testing.T) {
	app, _, _ := newTestApp(t)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/celebration", nil))
		if err != nil {
			t.Fatal(err)
		}
		var body struct {
			PauseMS int64 `json:"pause_ms"`
			Steps   []struct {
				Seq     int    `json:"seq"`
				Kind    string `json:"kind"`
				Emoji   string `json:"emoji"`
				DelayMS int64  `json:"delay_ms"`
			} `json:"steps"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.PauseMS != 1000 || len(body.Steps) != 4 {
			t.Fatalf("body = %+v", body)
		}
		if body.Steps[0].Kind != "balloons" || body.Steps[1].DelayMS != 1000 || body.Steps[3].Emoji != "🍗" {
			t.Errorf("steps = %+v", body.Steps)
		}
	}
}

func TestCelebrationStream(t *testing.T) {
	app, h, log := newTestApp(t)
	var slept []time.Duration
	h.sleep = func(d time.Duration) { slept = append(slept, d) }

	resp, err := app.Test(httptest.NewRequest("GET", "/celebrate/stream", nil))
	if err != nil {
		t.Fatal(err)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(b)

	if got := strings.Count(body, "event: effect\n"); got != 4 {
		t.Errorf("got %d effect events, want 4\n%s", got, body)
	}
	if !strings.Contains(body, "event: done\n") {
		t.Errorf("missing done event\n%s", body)
	}
	balloons := strings.Index(body, `"kind":"balloons"`)
	success := strings.Index(body, celebration.SuccessMessage)
	drumstick := strings.Index(body, `"emoji":"🍗"`)
	if balloons < 0 || success < balloons || drumstick < success {
		t.Errorf("effects out of order\n%s", body)
	}

	// the stream writer records after its last flush
	deadline := time.Now().Add(time.Second)
	for log.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	entries := log.Entries()
	if len(entries) != 1 || entries[0].Kind != activity.KindStream || entries[0].Detail != "steps=4" {
		t.Errorf("activity = %+v", entries)
	}
	if len(slept) != 2 {
		t.Errorf("slept %v, want two pauses", slept)
	}
}

func TestExportXLSX(t *testing.T) {
	app, _, log := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/export.xlsx", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != export.ContentType {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, export.FileName) {
		t.Errorf("content disposition = %q", cd)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue(export.SheetName, "B3"); v != "BHC" {
		t.Errorf("B3 = %q, want BHC", v)
	}

	if entries := log.Entries(); len(entries) != 1 || entries[0].Kind != activity.KindExport {
		t.Errorf("activity = %+v", entries)
	}
}

func TestActivityLogsEndpoints(t *testing.T) {
	app, _, log := newTestApp(t)
	log.Record(activity.Entry{Kind: activity.KindRender, Path: "/"})
	log.Record(activity.Entry{Kind: activity.KindCelebrate, Path: "/celebrate"})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/debug/activity?limit=1", nil))
	if err != nil {
		t.Fatal(err)
	}
	var entries []activity.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != activity.KindCelebrate {
		t.Errorf("entries = %+v", entries)
	}

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/debug/activity", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("clear status = %d", resp.StatusCode)
	}
	if log.Len() != 0 {
		t.Errorf("Len() after clear = %d", log.Len())
	}
}
