package trader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/ai"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/market"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/news"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/storage"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/telegram"
)

// OpportunityFinder yields ranked dip candidates for one market.
type OpportunityFinder interface {
	FindOpportunities(ctx context.Context, m market.Market, dropThreshold, tier1Threshold float64) ([]market.Opportunity, error)
}

// SentimentScorer judges one candidate from its headlines.
type SentimentScorer interface {
	Score(ctx context.Context, req ai.Request) ai.Sentiment
}

// PriceResolver returns a live USD price, or 0 when every source failed.
type PriceResolver interface {
	Resolve(ctx context.Context, symbol string) float64
}

// HeadlineSearcher fetches recent news for one asset.
type HeadlineSearcher interface {
	Search(ctx context.Context, q news.Query) []news.Headline
}

// Bot runs the two trading loops: the hunter opens simulated positions on
// scored dips, the guardian watches open positions for exit conditions.
type Bot struct {
	finder   OpportunityFinder
	scorer   SentimentScorer
	resolver PriceResolver
	searcher HeadlineSearcher
	repo     *storage.Repository
	notifier *telegram.Notifier
	cfg      *config.Config
	logger   *logger.Logger
}

func NewBot(
	finder OpportunityFinder,
	scorer SentimentScorer,
	resolver PriceResolver,
	searcher HeadlineSearcher,
	repo *storage.Repository,
	notifier *telegram.Notifier,
	cfg *config.Config,
	log *logger.Logger,
) *Bot {
	return &Bot{
		finder:   finder,
		scorer:   scorer,
		resolver: resolver,
		searcher: searcher,
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		logger:   log,
	}
}

// thresholds picks the per-market drop and Tier-1 cutoffs from config.
func (b *Bot) thresholds(m market.Market) (drop, tier1 float64) {
	t := b.cfg.Trading
	switch m {
	case market.Crypto:
		return t.CryptoDropPct, t.CryptoTier1Pct
	case market.Merval:
		return t.MervalDropPct, t.MervalTier1Pct
	default:
		return t.USADropPct, t.USATier1Pct
	}
}

// RunHunterCycle scans one market, scores its candidates and opens positions
// on favorable sentiment. Returns the scored opportunities for reporting.
func (b *Bot) RunHunterCycle(ctx context.Context, m market.Market) ([]market.Opportunity, error) {
	open, err := b.repo.CountOpenPositions()
	if err != nil {
		return nil, fmt.Errorf("count open positions: %w", err)
	}
	if open >= b.cfg.Trading.MaxOpenPositions {
		b.logger.Info("position cap reached, skipping hunt",
			"market", string(m), "open", open)
		return nil, nil
	}

	drop, tier1 := b.thresholds(m)
	opportunities, err := b.finder.FindOpportunities(ctx, m, drop, tier1)
	if err != nil {
		return nil, fmt.Errorf("find opportunities: %w", err)
	}
	if len(opportunities) == 0 {
		b.logger.Info("no dip candidates", "market", string(m))
		return nil, nil
	}

	scored := make([]market.Opportunity, 0, len(opportunities))
	for i := range opportunities {
		op := &opportunities[i]

		bought := b.evaluate(ctx, m, op)
		scored = append(scored, *op)

		if bought {
			open++
			if open >= b.cfg.Trading.MaxOpenPositions {
				b.logger.Info("position cap reached mid-cycle", "market", string(m))
				break
			}
			sleepCtx(ctx, b.cfg.BuyCooldown())
		} else {
			sleepCtx(ctx, b.cfg.ScorePause())
		}
		if ctx.Err() != nil {
			break
		}
	}
	return scored, nil
}

// evaluate scores one candidate, persists the signal and opens a position when
// sentiment allows. A panic on one symbol never takes down the cycle.
func (b *Bot) evaluate(ctx context.Context, m market.Market, op *market.Opportunity) (bought bool) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic evaluating candidate",
				"symbol", op.Symbol, "panic", r)
			bought = false
		}
	}()

	if held, err := b.repo.OpenPositionBySymbol(op.Symbol); err != nil {
		b.logger.Error("check open position", "symbol", op.Symbol, "error", err)
		return false
	} else if held != nil {
		b.logger.Info("already holding, skipping", "symbol", op.Symbol)
		return false
	}

	headlines := b.searcher.Search(ctx, news.Query{
		Symbol:   op.Symbol,
		Name:     op.Name,
		IsCrypto: m == market.Crypto,
		IsMerval: m == market.Merval,
	})

	sentiment := b.scorer.Score(ctx, ai.Request{
		Symbol:    op.Symbol,
		Name:      op.Name,
		IsCrypto:  m == market.Crypto,
		IsMerval:  m == market.Merval,
		Headlines: headlines,
	})

	op.AIScore = sentiment.Score
	op.AIDecision = sentiment.Decision
	op.AIReason = sentiment.Reason

	if err := b.repo.SaveSignal(&storage.Signal{
		Market:          string(m),
		Symbol:          op.Symbol,
		Name:            op.Name,
		Price:           op.Price,
		PercentChange:   op.PercentChange,
		RSI:             op.RSI,
		TechnicalSignal: op.TechnicalSignal,
		AIScore:         sentiment.Score,
		AIDecision:      sentiment.Decision,
		AIReason:        sentiment.Reason,
	}); err != nil {
		b.logger.Error("save signal", "symbol", op.Symbol, "error", err)
	}

	b.logger.Info("candidate scored",
		"symbol", op.Symbol, "change", op.PercentChange,
		"decision", sentiment.Decision, "score", sentiment.Score)

	if sentiment.Decision != ai.DecisionBuy || sentiment.Score < b.cfg.Trading.MinAIScore {
		return false
	}
	return b.openPosition(ctx, m, op)
}

func (b *Bot) openPosition(ctx context.Context, m market.Market, op *market.Opportunity) bool {
	price := b.resolver.Resolve(ctx, op.Symbol)
	if price <= 0 {
		price = op.Price
	}
	if price <= 0 {
		b.logger.Warn("no usable price, skipping buy", "symbol", op.Symbol)
		return false
	}

	amount := b.cfg.Trading.TradeAmountUSD
	position := &storage.Position{
		Symbol:         strings.ToUpper(op.Symbol),
		EntryPrice:     price,
		Quantity:       amount / price,
		InvestedAmount: amount,
		Status:         storage.StatusOpen,
		BoughtAt:       time.Now(),
		Snapshot:       entrySnapshot(m, op),
	}

	if err := b.repo.SavePosition(position); err != nil {
		b.logger.Error("save position", "symbol", op.Symbol, "error", err)
		return false
	}

	b.logger.Info("position opened",
		"symbol", position.Symbol, "price", price, "quantity", position.Quantity)
	b.notifier.NotifyBuy(position.Symbol, price, position.Quantity, amount,
		op.AIScore, op.AIReason)
	return true
}

func entrySnapshot(m market.Market, op *market.Opportunity) string {
	reason := op.AIReason
	if len(reason) > 50 {
		reason = reason[:50]
	}
	raw, err := json.Marshal(map[string]any{
		"rsi":         op.RSI,
		"pct_change":  op.PercentChange,
		"ai_score":    op.AIScore,
		"market_type": string(m),
		"reason":      reason,
	})
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// RunGuardianCycle walks every open position, checks its live price and closes
// on take-profit or stop-loss.
func (b *Bot) RunGuardianCycle(ctx context.Context) error {
	positions, err := b.repo.OpenPositions()
	if err != nil {
		return fmt.Errorf("list open positions: %w", err)
	}
	if len(positions) == 0 {
		return nil
	}
	b.logger.Info("guardian cycle", "open", len(positions))

	for i := range positions {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b.guard(ctx, &positions[i])
	}
	return nil
}

func (b *Bot) guard(ctx context.Context, position *storage.Position) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic guarding position",
				"symbol", position.Symbol, "panic", r)
		}
	}()

	live := b.resolver.Resolve(ctx, position.Symbol)
	if live <= 0 {
		b.logger.Warn("no live price, holding", "symbol", position.Symbol)
		return
	}

	pnlPct := (live - position.EntryPrice) / position.EntryPrice * 100

	var reason string
	switch {
	case pnlPct >= b.cfg.Trading.TakeProfitPct:
		reason = storage.CloseTakeProfit
	case pnlPct <= b.cfg.Trading.StopLossPct:
		reason = storage.CloseStopLoss
	default:
		b.logger.Debug("holding",
			"symbol", position.Symbol, "pnl_pct", pnlPct)
		return
	}

	if err := b.close(position, live, pnlPct, reason); err != nil {
		b.logger.Error("close position",
			"symbol", position.Symbol, "error", err)
	}
}

// CloseManual closes one open position at the best available price. When no
// live price resolves the entry price is reused and the trade closes flat.
func (b *Bot) CloseManual(ctx context.Context, id uint) error {
	position, err := b.repo.PositionByID(id)
	if err != nil {
		return fmt.Errorf("load position %d: %w", id, err)
	}
	if position.Status != storage.StatusOpen {
		return fmt.Errorf("position %d is not open", id)
	}

	live := b.resolver.Resolve(ctx, position.Symbol)
	pnlPct := 0.0
	if live > 0 {
		pnlPct = (live - position.EntryPrice) / position.EntryPrice * 100
	} else {
		live = position.EntryPrice
	}

	return b.close(position, live, pnlPct, storage.CloseManual)
}

// close writes the full closed state in one update.
func (b *Bot) close(position *storage.Position, exitPrice, pnlPct float64, reason string) error {
	now := time.Now()
	pnlUSD := (exitPrice - position.EntryPrice) * position.Quantity

	position.Status = storage.StatusClosed
	position.ExitPrice = exitPrice
	position.CloseReason = reason
	position.ClosedAt = &now
	position.RealizedPnL = pnlUSD

	if err := b.repo.UpdatePosition(position); err != nil {
		return fmt.Errorf("update position: %w", err)
	}

	b.logger.Info("position closed",
		"symbol", position.Symbol, "reason", reason,
		"exit", exitPrice, "pnl_pct", pnlPct, "pnl_usd", pnlUSD)
	b.notifier.NotifySell(position.Symbol, reason, exitPrice, pnlPct, pnlUSD)
	return nil
}

// sleepCtx waits the given duration unless the context is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
