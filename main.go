package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chickenboard/activity"
	"github.com/chickenboard/config"
	"github.com/chickenboard/report"
	"github.com/chickenboard/web"
)

func main() {
	// Command line flags
	var (
		configPath = flag.String("config", "", "Path to a TOML config file (default: $CONFIG_FILE)")
		help       = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Build the dataset once; it is read-only from here on
	records, err := report.Brands()
	if err != nil {
		log.Fatalf("Failed to build brand dataset: %v", err)
	}
	board := report.NewBoard(records)
	if board.Champion != nil {
		log.Printf("Loaded %d brands, margin champion %s (%s)", len(records), board.Champion.Brand, board.ChampionMargin())
	}

	server, err := web.NewServer(cfg, board, activity.NewLog(cfg.Activity.LogSize))
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func showHelp() {
	log.Print(`
Chicken Brand Earnings Board

Usage:
  go run . [options]

Options:
  -config   Path to a TOML config file
  -help     Show this help message

Environment:
  APP_ENV             development | production (default: development)
  APP_PORT            HTTP port (default: 8080)
  CELEBRATION_PAUSE   Pause between celebration effects (default: 1s)
  CELEBRATE_RATE      Celebration streams per second per client (default: 2)
  CELEBRATE_BURST     Celebration stream burst per client (default: 5)
  ACTIVITY_LOG_SIZE   Interaction log entries kept (default: 100)

Routes:
  GET  /                      Earnings board
  POST /celebrate             Board with the celebration effects
  GET  /celebrate/stream      Celebration as server-sent events
  GET  /api/brands            Dataset, table and champion as JSON
  GET  /api/celebration       Celebration effect sequence as JSON
  GET  /reports/export.xlsx   Table as a spreadsheet
`)
}
