package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const fearGreedURL = "https://api.alternative.me/fng/"

// FearGreed is the crypto Fear & Greed index snapshot.
type FearGreed struct {
	Value          string `json:"value"`
	Classification string `json:"value_classification"`
}

var fngClient = &http.Client{Timeout: 3 * time.Second}

// FetchFearGreed returns the current market-wide sentiment index.
func FetchFearGreed(ctx context.Context) (FearGreed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fearGreedURL, nil)
	if err != nil {
		return FearGreed{}, fmt.Errorf("create fng request: %w", err)
	}

	resp, err := fngClient.Do(req)
	if err != nil {
		return FearGreed{}, fmt.Errorf("fetch fng: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FearGreed{}, fmt.Errorf("fng returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FearGreed{}, fmt.Errorf("read fng response: %w", err)
	}

	var payload struct {
		Data []FearGreed `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return FearGreed{}, fmt.Errorf("parse fng response: %w", err)
	}
	if len(payload.Data) == 0 {
		return FearGreed{}, fmt.Errorf("fng returned no data")
	}
	return payload.Data[0], nil
}
