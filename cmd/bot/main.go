package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/ai"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/market"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/news"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/pricing"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/scanner"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/scheduler"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/storage"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/telegram"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/trader"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/web"
)

func main() {
	// .env is optional; env vars may come from the environment directly
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	dbPath := flag.String("db", "data/analyser.db", "path to SQLite database")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("starting nt-market-analyser")

	db, err := storage.NewDatabase(*dbPath)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	repo := storage.NewRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scanClient := scanner.NewClient(cfg, log)
	rates := pricing.NewRateClient(log)
	resolver := pricing.NewResolver(cfg, scanClient, rates, log)
	analyzer := market.NewAnalyzer(scanClient, rates, cfg, log)
	newsClient := news.NewClient(log)
	scorer := ai.NewScorer(cfg, log)
	notifier := telegram.NewNotifier(cfg, log)

	bot := trader.NewBot(analyzer, scorer, resolver, newsClient, repo, notifier, cfg, log)
	sched := scheduler.New(bot, notifier, cfg, log)
	webServer := web.NewServer(repo, resolver, bot, cfg, log)

	go sched.Run(ctx)

	go func() {
		if err := webServer.Start(); err != nil {
			log.Error("web server error", "error", err)
		}
	}()

	notifier.NotifyStatus("🤖 NT Market Analyser started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutdown signal received", "signal", sig.String())

	cancel() // stop scheduler

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := webServer.Shutdown(shutdownCtx); err != nil {
		log.Error("web server shutdown error", "error", err)
	}

	notifier.NotifyStatus("🛑 NT Market Analyser stopped")
	log.Info("nt-market-analyser stopped")
}
