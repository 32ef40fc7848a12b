package web

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"github.com/chickenboard/activity"
	"github.com/chickenboard/config"
	"github.com/chickenboard/report"
	"github.com/chickenboard/web/handlers"
	"github.com/chickenboard/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates static
var assets embed.FS

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server serving board
func NewServer(cfg *config.Config, board report.Board, activityLog *activity.Log) (*Server, error) {
	templates, err := fs.Sub(assets, "templates")
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	// Initialize template engine
	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.Reload(cfg.App.IsDevelopment())

	// SVG bar chart glyph is 24px tall
	engine.AddFunc("barHeight", func(fill float64) float64 {
		return fill * 24 / 100
	})
	engine.AddFunc("barY", func(fill float64) float64 {
		return 24 - fill*24/100
	})

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: !cfg.App.IsDevelopment(),
		ErrorHandler:          errorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.App.IsDevelopment(),
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(middleware.RenderTrace(activityLog))

	// Static files
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(static),
	}))

	h := handlers.New(board, activityLog, cfg.Celebration.Pause.Duration)
	limiter := middleware.NewIPRateLimiter(cfg.Celebration.Rate, cfg.Celebration.Burst)
	setupRoutes(app, h, limiter)

	return &Server{app: app}, nil
}

// App exposes the underlying Fiber app, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown stops accepting requests and waits for running ones
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	// Log error details to console
	log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

	// Check if it's an API request
	if c.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON || c.Get(fiber.HeaderAccept) == fiber.MIMEApplicationJSON {
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// HTML error page
	return c.Status(code).Render("pages/error", fiber.Map{
		"PageTitle": "오류",
		"Error":     err.Error(),
		"Code":      code,
		"TraceID":   c.Locals(middleware.TraceIDKey),
	}, "layouts/base")
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler, limiter *middleware.IPRateLimiter) {
	// Board page
	app.Get("/", h.ReportPage)
	app.Post("/celebrate", h.Celebrate)
	app.Get("/celebrate/stream", limiter.Handler(), h.CelebrationStream)

	// Spreadsheet export
	reports := app.Group("/reports")
	reports.Get("/export.xlsx", h.ExportXLSX)

	// API endpoints
	api := app.Group("/api")
	api.Get("/brands", h.Brands)
	api.Get("/celebration", h.CelebrationSteps)

	// Debug endpoint for interaction logs
	api.Get("/debug/activity", h.GetActivityLogs)
	api.Delete("/debug/activity", h.ClearActivityLogs)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "페이지를 찾을 수 없습니다: "+c.Path())
	})
}
