package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/scanner"
)

// Source is one capability-equivalent price provider in a cascade chain.
// A zero price with nil error means "this source has no quote".
type Source interface {
	Name() string
	Price(ctx context.Context, symbol string) (float64, error)
}

// --- screener lookups ---

// equityScanSource resolves through a single-symbol screener lookup in one
// country market.
type equityScanSource struct {
	client *scanner.Client
	market string
}

func (s *equityScanSource) Name() string { return "scanner:" + s.market }

func (s *equityScanSource) Price(ctx context.Context, symbol string) (float64, error) {
	symbol = strings.TrimSuffix(strings.ToUpper(symbol), localSuffix)
	table, err := s.client.SymbolScan(ctx, symbol, s.market)
	if err != nil {
		return 0, err
	}
	if table.Empty() {
		return 0, nil
	}
	return table.Float(0, "close", 0), nil
}

type coinScanSource struct {
	client *scanner.Client
}

func (s *coinScanSource) Name() string { return "scanner:coin" }

func (s *coinScanSource) Price(ctx context.Context, symbol string) (float64, error) {
	table, err := s.client.CoinSymbolScan(ctx, strings.ToUpper(symbol))
	if err != nil {
		return 0, err
	}
	if table.Empty() {
		return 0, nil
	}
	return table.Float(0, "close", 0), nil
}

// --- general-purpose price-history provider ---

const historyURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?range=1d&interval=1d"

type historySource struct {
	httpClient *http.Client
}

func (s *historySource) Name() string { return "history" }

func (s *historySource) Price(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf(historyURL, strings.ToUpper(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("history provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var payload struct {
		Chart struct {
			Result []struct {
				Meta struct {
					RegularMarketPrice float64 `json:"regularMarketPrice"`
				} `json:"meta"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, err
	}
	if len(payload.Chart.Result) == 0 {
		return 0, nil
	}
	return payload.Chart.Result[0].Meta.RegularMarketPrice, nil
}

// --- crypto quote APIs ---

const cmcQuoteURL = "https://pro-api.coinmarketcap.com/v1/cryptocurrency/quotes/latest"

// cmcSource is the paid, authoritative crypto quote API.
type cmcSource struct {
	httpClient *http.Client
	apiKey     string
}

func (s *cmcSource) Name() string { return "coinmarketcap" }

func (s *cmcSource) Price(ctx context.Context, symbol string) (float64, error) {
	if s.apiKey == "" {
		return 0, fmt.Errorf("no API key configured")
	}

	symbol = strings.ToUpper(symbol)
	url := fmt.Sprintf("%s?symbol=%s&convert=USD", cmcQuoteURL, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accepts", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var payload struct {
		Data map[string]struct {
			Quote map[string]struct {
				Price float64 `json:"price"`
			} `json:"quote"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, err
	}
	return payload.Data[symbol].Quote["USD"].Price, nil
}

const binanceTickerURL = "https://api.binance.com/api/v3/ticker/price?symbol=%sUSDT"

// binanceSource is the public exchange ticker fallback; pairs carry no
// separator ("BTCUSDT").
type binanceSource struct {
	httpClient *http.Client
}

func (s *binanceSource) Name() string { return "binance" }

func (s *binanceSource) Price(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf(binanceTickerURL, strings.ToUpper(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ticker API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var payload struct {
		Price string `json:"price"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, err
	}
	var price float64
	if _, err := fmt.Sscanf(payload.Price, "%f", &price); err != nil {
		return 0, fmt.Errorf("unparseable ticker price %q", payload.Price)
	}
	return price, nil
}
