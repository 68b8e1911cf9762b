package pricing

import (
	"context"
	"net/http"
	"time"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/scanner"
)

// sourceTimeout bounds each individual source call inside a chain.
const sourceTimeout = 8 * time.Second

// Resolver resolves a live price by classifying the symbol and walking an
// ordered chain of sources until one returns a positive price. Exhausting the
// chain yields 0.0; no source failure ever escapes the resolver.
type Resolver struct {
	classifier *Classifier
	rates      *RateClient
	chains     map[AssetClass][]Source
	logger     *logger.Logger
}

func NewResolver(cfg *config.Config, sc *scanner.Client, rates *RateClient, log *logger.Logger) *Resolver {
	httpClient := &http.Client{Timeout: sourceTimeout}

	history := &historySource{httpClient: httpClient}

	return &Resolver{
		classifier: NewClassifier(cfg.Markets.MervalWatchlist, cfg.Markets.USWatchlist),
		rates:      rates,
		logger:     log,
		chains: map[AssetClass][]Source{
			ClassLocal: {
				&equityScanSource{client: sc, market: "argentina"},
				history,
			},
			ClassDomestic: {
				&equityScanSource{client: sc, market: "america"},
				history,
			},
			ClassCrypto: {
				&cmcSource{httpClient: httpClient, apiKey: cfg.CoinMarketCap.APIKey},
				&binanceSource{httpClient: httpClient},
				&coinScanSource{client: sc},
			},
		},
	}
}

// Resolve returns the best available USD price for a symbol, 0.0 when every
// source in its chain fails.
func (r *Resolver) Resolve(ctx context.Context, symbol string) float64 {
	class := r.classifier.Classify(symbol)
	r.logger.Debug("resolving price", "symbol", symbol, "class", string(class))

	for _, src := range r.chains[class] {
		price := r.try(ctx, src, symbol)
		if price <= 0 {
			continue
		}

		if class == ClassLocal {
			// Peso prices come back from the local screener; the CCL rate
			// brings them into USD. When the rate is unavailable the raw
			// price beats no price.
			if rate := r.rates.CCL(ctx); rate > 0 {
				price = price / rate
			}
		}

		r.logger.Debug("price resolved", "symbol", symbol, "source", src.Name(), "price", price)
		return price
	}

	r.logger.Warn("all price sources exhausted", "symbol", symbol, "class", string(class))
	return 0.0
}

func (r *Resolver) try(ctx context.Context, src Source, symbol string) float64 {
	ctx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	price, err := src.Price(ctx, symbol)
	if err != nil {
		r.logger.Debug("price source failed", "symbol", symbol, "source", src.Name(), "error", err)
		return 0
	}
	return price
}
