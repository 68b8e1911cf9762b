package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/pricing"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/scanner"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/storage"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	dbPath := flag.String("db", "data/analyser.db", "path to SQLite database")
	dryRun := flag.Bool("dry-run", false, "show positions without closing")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	db, err := storage.NewDatabase(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database error: %v\n", err)
		os.Exit(1)
	}
	repo := storage.NewRepository(db)

	positions, err := repo.OpenPositions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "list positions error: %v\n", err)
		os.Exit(1)
	}

	if len(positions) == 0 {
		fmt.Println("No open positions.")
		return
	}

	ctx := context.Background()
	scanClient := scanner.NewClient(cfg, log)
	rates := pricing.NewRateClient(log)
	resolver := pricing.NewResolver(cfg, scanClient, rates, log)

	fmt.Printf("Found %d position(s):\n\n", len(positions))
	for _, p := range positions {
		live := resolver.Resolve(ctx, p.Symbol)
		pnl := 0.0
		if live > 0 {
			pnl = (live - p.EntryPrice) * p.Quantity
		}
		fmt.Printf("  #%d %s: qty %.6f, entry %.4f, live %.4f, P&L %.2f\n",
			p.ID, p.Symbol, p.Quantity, p.EntryPrice, live, pnl)
	}
	fmt.Println()

	if *dryRun {
		fmt.Println("Dry run — no positions closed.")
		return
	}

	var closed, failed int
	for i := range positions {
		p := &positions[i]

		exit := resolver.Resolve(ctx, p.Symbol)
		if exit <= 0 {
			// close flat when no source answers
			exit = p.EntryPrice
		}

		now := time.Now()
		p.Status = storage.StatusClosed
		p.ExitPrice = exit
		p.CloseReason = storage.CloseManual
		p.ClosedAt = &now
		p.RealizedPnL = (exit - p.EntryPrice) * p.Quantity

		if err := repo.UpdatePosition(p); err != nil {
			fmt.Fprintf(os.Stderr, "  [FAIL] %s: %v\n", p.Symbol, err)
			failed++
			continue
		}

		fmt.Printf("  [OK]   %s: closed @ %.4f, P&L %.2f\n", p.Symbol, exit, p.RealizedPnL)
		closed++
	}

	fmt.Printf("\nDone: %d closed, %d failed.\n", closed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
