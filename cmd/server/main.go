package main

import (
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nicexwisly/Linebot-Jonggajang/config"
	httpDelivery "github.com/nicexwisly/Linebot-Jonggajang/internal/delivery/http"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/infrastructure/catalog"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/infrastructure/line"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/metrics"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Jonggajang MM Bot v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	store := catalog.NewStore()

	lineClient := line.NewClient(cfg.Line.ChannelAccessToken, cfg.Line.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		lineClient.SetDebug(true)
		log.Printf("LINE client debug mode enabled")
	}

	if cfg.Line.ChannelSecret != "" {
		log.Printf("Webhook signature validation enabled")
	} else {
		log.Printf("WARNING: no channel secret configured - webhook signatures are NOT validated")
	}

	// Metrics
	collector := metrics.New()
	registry := prometheus.NewRegistry()
	collector.Register(registry)

	// Initialize usecase layer
	engine := usecase.NewSearchService(store, collector, usecase.SearchServiceConfig{
		HistoryDays:        cfg.Report.HistoryDays,
		CharBudget:         cfg.Report.CharBudget,
		MaxCards:           cfg.Report.MaxCards,
		EnableDebugLogging: cfg.Server.Environment == "development",
	})

	log.Printf("Report budgets: chars=%d, cards=%d, history=%d days",
		cfg.Report.CharBudget, cfg.Report.MaxCards, cfg.Report.HistoryDays)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(engine, store, lineClient, collector)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, registry)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
