package main

import (
	"fmt"
	"log"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/config"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/handler"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/parser/gemini"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/router"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// One ledger per server process; every component that touches it gets
	// the same injected instance.
	store := ledger.NewStore()
	classifier := ledger.NewClassifier(store, cfg.Ingest.MatchVendor)
	model := gemini.NewClient(&cfg.Parser)

	ingestSvc := service.NewIngestService(classifier, model, &cfg.Ingest)
	statsSvc := service.NewStatsService(store)
	insightsSvc := service.NewInsightsService(store, model)

	defaultLang := domain.Language(cfg.Export.Language)

	ingestH := handler.NewIngestHandler(ingestSvc, defaultLang)
	ledgerH := handler.NewLedgerHandler(store, statsSvc)
	insightsH := handler.NewInsightsHandler(insightsSvc, defaultLang)
	exportH := handler.NewExportHandler(store, cfg.Export.Locale)
	healthH := handler.NewHealthHandler(store)

	r := router.Setup(cfg, ingestH, ledgerH, insightsH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
