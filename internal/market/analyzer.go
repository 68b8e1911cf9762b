package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/scanner"
)

// oversoldRSI flags a dip whose RSI suggests capitulation.
const oversoldRSI = 30.0

// RateSource supplies the CCL cross rate used to bring Merval peso prices into
// USD. Implemented by pricing.RateClient.
type RateSource interface {
	CCL(ctx context.Context) float64
}

// Scanner is the slice of the scan client the analyzer needs.
type Scanner interface {
	EquityScan(ctx context.Context, markets []string, limit int) (*scanner.Table, error)
	CoinScan(ctx context.Context, limit int) (*scanner.Table, error)
}

// Analyzer runs the scan → normalize → rank → annotate pipeline for one
// market and shapes the result into unscored opportunities.
type Analyzer struct {
	scanner Scanner
	rates   RateSource
	ranker  *Ranker
	logger  *logger.Logger
}

func NewAnalyzer(sc Scanner, rates RateSource, cfg *config.Config, log *logger.Logger) *Analyzer {
	return &Analyzer{
		scanner: sc,
		rates:   rates,
		ranker:  NewRanker(cfg.Markets.CedearWhitelist),
		logger:  log,
	}
}

// FindOpportunities scans one market and returns its ranked dip candidates,
// unscored. An empty scan result yields an empty list, not an error.
func (a *Analyzer) FindOpportunities(ctx context.Context, m Market, dropThreshold, tier1Threshold float64) ([]Opportunity, error) {
	p := ProfileFor(m)

	var (
		table *scanner.Table
		err   error
	)
	if m == Crypto {
		table, err = a.scanner.CoinScan(ctx, p.ScanLimit)
	} else {
		table, err = a.scanner.EquityScan(ctx, p.ScanMarkets, p.ScanLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", m, err)
	}

	quotes := Normalize(table, p)
	ranked := a.ranker.Rank(quotes, p, dropThreshold, tier1Threshold)
	a.logger.Info("market scanned",
		"market", string(m), "rows", len(quotes), "candidates", len(ranked))

	if m == Merval && len(ranked) > 0 {
		if rate := a.rates.CCL(ctx); rate > 0 {
			for i := range ranked {
				ranked[i].Price = ranked[i].Price / rate
			}
		} else {
			a.logger.Warn("CCL rate unavailable, leaving Merval prices unconverted")
		}
	}

	out := make([]Opportunity, 0, len(ranked))
	for _, q := range ranked {
		out = append(out, Opportunity{
			Quote:           q,
			TechnicalSignal: annotate(q, m),
		})
	}
	return out, nil
}

// annotate builds the human-readable technical signal: tier, rank bucket
// (crypto only), candle pattern and oversold flag.
func annotate(q Quote, m Market) string {
	var parts []string
	if q.Tier != "" {
		parts = append(parts, string(q.Tier))
	}
	if m == Crypto && q.Rank != WorstRank && q.Rank > cryptoTier1Rank {
		parts = append(parts, fmt.Sprintf("GEM #%d", q.Rank))
	}
	if q.Pattern != "" {
		parts = append(parts, q.Pattern)
	}
	if q.RSI < oversoldRSI {
		parts = append(parts, fmt.Sprintf("Oversold (%.0f)", q.RSI))
	}
	if len(parts) == 0 {
		return "Dip detected"
	}
	return strings.Join(parts, " | ")
}
