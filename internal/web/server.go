package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/market"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/storage"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/trader"
)

const historyLimit = 100

// Server exposes the dashboard and its JSON API.
type Server struct {
	repo     *storage.Repository
	resolver trader.PriceResolver
	bot      *trader.Bot
	logger   *logger.Logger
	httpSrv  *http.Server
}

func NewServer(repo *storage.Repository, resolver trader.PriceResolver, bot *trader.Bot, cfg *config.Config, log *logger.Logger) *Server {
	s := &Server{
		repo:     repo,
		resolver: resolver,
		bot:      bot,
		logger:   log,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleDashboard)
	r.Get("/api/portfolio", s.handlePortfolio)
	r.Get("/api/history", s.handleHistory)
	r.Get("/api/signals", s.handleSignals)
	r.Get("/api/sentiment", s.handleSentiment)
	r.Post("/trade/sell/{id}", s.handleSell)

	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Web.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Start() error {
	s.logger.Info("web server listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, dashboardHTML)
}

type portfolioEntry struct {
	storage.Position
	LivePrice    float64 `json:"live_price"`
	CurrentValue float64 `json:"current_value"`
	PnLPct       float64 `json:"pnl_pct"`
	PnLUSD       float64 `json:"pnl_usd"`
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	positions, err := s.repo.OpenPositions()
	if err != nil {
		s.fail(w, "list open positions", err)
		return
	}

	entries := make([]portfolioEntry, 0, len(positions))
	for _, p := range positions {
		e := portfolioEntry{Position: p, LivePrice: s.resolver.Resolve(r.Context(), p.Symbol)}
		if e.LivePrice > 0 {
			e.CurrentValue = e.LivePrice * p.Quantity
			e.PnLUSD = (e.LivePrice - p.EntryPrice) * p.Quantity
			e.PnLPct = (e.LivePrice - p.EntryPrice) / p.EntryPrice * 100
		}
		entries = append(entries, e)
	}

	s.respond(w, map[string]any{"positions": entries, "count": len(entries)})
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	closed, err := s.repo.ClosedPositions(historyLimit)
	if err != nil {
		s.fail(w, "list closed positions", err)
		return
	}
	total, err := s.repo.TotalRealizedPnL()
	if err != nil {
		s.fail(w, "total pnl", err)
		return
	}
	today, err := s.repo.TodayRealizedPnL()
	if err != nil {
		s.fail(w, "today pnl", err)
		return
	}

	s.respond(w, map[string]any{
		"trades":    closed,
		"total_pnl": total,
		"today_pnl": today,
	})
}

func (s *Server) handleSignals(w http.ResponseWriter, _ *http.Request) {
	signals, err := s.repo.RecentSignals(50)
	if err != nil {
		s.fail(w, "list signals", err)
		return
	}
	s.respond(w, map[string]any{"signals": signals})
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	fng, err := market.FetchFearGreed(r.Context())
	if err != nil {
		s.fail(w, "fetch fear and greed", err)
		return
	}
	s.respond(w, fng)
}

func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		http.Error(w, "invalid position id", http.StatusBadRequest)
		return
	}

	if err := s.bot.CloseManual(r.Context(), uint(id)); err != nil {
		s.fail(w, "manual close", err)
		return
	}
	s.respond(w, map[string]any{"status": "closed", "id": id})
}

func (s *Server) respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, context string, err error) {
	s.logger.Error(context, "error", err)
	http.Error(w, fmt.Sprintf("%s: %v", context, err), http.StatusInternalServerError)
}
