package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
)

const (
	globalScanURL = "https://scanner.tradingview.com/global/scan"
	coinScanURL   = "https://scanner.tradingview.com/coin/scan"
)

type Client struct {
	httpClient *http.Client
	cfg        *config.Config
	logger     *logger.Logger
}

func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.ScannerTimeout()},
		cfg:        cfg,
		logger:     log,
	}
}

type scanResponse struct {
	TotalCount int `json:"totalCount"`
	Data       []struct {
		Symbol string `json:"s"`
		Cells  []any  `json:"d"`
	} `json:"data"`
}

// post runs one scan query and maps the positional result rows onto the
// requested column names. A row count mismatch is reduced best-effort, never
// fatal: when the source returns fewer cells than requested columns, the
// column list is truncated to match.
func (c *Client) post(ctx context.Context, url string, payload map[string]any, columns []string) (*Table, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal scan payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create scan request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "text/plain;charset=UTF-8")
	req.Header.Set("Origin", "https://es.tradingview.com")
	req.Header.Set("Referer", "https://es.tradingview.com/")
	req.Header.Set("User-Agent", c.cfg.Scanner.UserAgent)
	if c.cfg.Scanner.Cookie != "" {
		req.Header.Set("Cookie", c.cfg.Scanner.Cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scan request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scanner returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read scan response: %w", err)
	}

	var sr scanResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return nil, fmt.Errorf("parse scan response: %w", err)
	}

	table := &Table{Columns: columns}
	for _, d := range sr.Data {
		if len(d.Cells) < len(table.Columns) {
			c.logger.Debug("scan row shorter than requested columns",
				"got", len(d.Cells), "want", len(table.Columns))
			table.Columns = table.Columns[:len(d.Cells)]
		}
		table.Rows = append(table.Rows, d.Cells)
	}
	return table, nil
}
