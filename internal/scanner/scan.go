package scanner

import (
	"context"
	"fmt"
)

// EquityScan queries the global equity screener for one or more country
// markets, sorted by market cap descending. The type filter keeps common and
// preferred stock plus depositary receipts (ADRs/CEDEARs) and drops pre-IPO
// listings.
func (c *Client) EquityScan(ctx context.Context, markets []string, limit int) (*Table, error) {
	if limit <= 0 {
		limit = 500
	}

	payload := map[string]any{
		"columns":               EquityColumns,
		"ignore_unknown_fields": false,
		"options":               map[string]any{"lang": "es"},
		"range":                 []int{0, limit},
		"sort":                  map[string]any{"sortBy": "market_cap_basic", "sortOrder": "desc"},
		"symbols":               map[string]any{},
		"markets":               markets,
		"filter2":               equityTypeFilter(),
	}

	table, err := c.post(ctx, globalScanURL, payload, EquityColumns)
	if err != nil {
		return nil, fmt.Errorf("equity scan %v: %w", markets, err)
	}
	return table, nil
}

// CoinScan queries the coin screener (one row per coin, not per trading pair),
// sorted by market-cap rank ascending.
func (c *Client) CoinScan(ctx context.Context, limit int) (*Table, error) {
	if limit <= 0 {
		limit = 300
	}

	payload := map[string]any{
		"columns":               CoinColumns,
		"ignore_unknown_fields": false,
		"options":               map[string]any{"lang": "es"},
		"range":                 []int{0, limit},
		"sort":                  map[string]any{"sortBy": "crypto_total_rank", "sortOrder": "asc"},
		"symbols":               map[string]any{},
		"markets":               []string{"coin"},
	}

	table, err := c.post(ctx, coinScanURL, payload, CoinColumns)
	if err != nil {
		return nil, fmt.Errorf("coin scan: %w", err)
	}
	return table, nil
}

var symbolColumns = []string{"name", "description", "close", "change", "currency"}

// SymbolScan looks a single symbol up within one country market. Used by the
// price resolution cascade, so only the minimal price columns are requested.
func (c *Client) SymbolScan(ctx context.Context, symbol, market string) (*Table, error) {
	payload := map[string]any{
		"columns":               symbolColumns,
		"ignore_unknown_fields": false,
		"options":               map[string]any{"lang": "es"},
		"range":                 []int{0, 5},
		"symbols":               map[string]any{},
		"markets":               []string{market},
		"filter": []map[string]any{
			{"left": "name", "operation": "equal", "right": symbol},
		},
	}

	table, err := c.post(ctx, globalScanURL, payload, symbolColumns)
	if err != nil {
		return nil, fmt.Errorf("symbol scan %s@%s: %w", symbol, market, err)
	}
	return table, nil
}

func equityTypeFilter() map[string]any {
	stockWith := func(spec string) map[string]any {
		return map[string]any{
			"operation": map[string]any{
				"operator": "and",
				"operands": []map[string]any{
					{"expression": map[string]any{"left": "type", "operation": "equal", "right": "stock"}},
					{"expression": map[string]any{"left": "typespecs", "operation": "has", "right": []string{spec}}},
				},
			},
		}
	}

	dr := map[string]any{
		"operation": map[string]any{
			"operator": "and",
			"operands": []map[string]any{
				{"expression": map[string]any{"left": "type", "operation": "equal", "right": "dr"}},
			},
		},
	}

	return map[string]any{
		"operator": "and",
		"operands": []map[string]any{
			{
				"operation": map[string]any{
					"operator": "or",
					"operands": []map[string]any{stockWith("common"), stockWith("preferred"), dr},
				},
			},
			{"expression": map[string]any{"left": "typespecs", "operation": "has_none_of", "right": []string{"pre-ipo"}}},
		},
	}
}

var coinSymbolColumns = []string{"base_currency", "base_currency_desc", "close", "crypto_total_rank"}

// CoinSymbolScan looks a single coin up on the coin screener by base currency.
func (c *Client) CoinSymbolScan(ctx context.Context, symbol string) (*Table, error) {
	payload := map[string]any{
		"columns":               coinSymbolColumns,
		"ignore_unknown_fields": false,
		"options":               map[string]any{"lang": "es"},
		"range":                 []int{0, 5},
		"symbols":               map[string]any{},
		"markets":               []string{"coin"},
		"filter": []map[string]any{
			{"left": "base_currency", "operation": "equal", "right": symbol},
		},
	}

	table, err := c.post(ctx, coinScanURL, payload, coinSymbolColumns)
	if err != nil {
		return nil, fmt.Errorf("coin symbol scan %s: %w", symbol, err)
	}
	return table, nil
}
