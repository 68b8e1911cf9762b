package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
)

const cclURL = "https://dolarapi.com/v1/dolares/contadoconliqui"

// emergencyCCL is the hardcoded last-resort cross rate used when the source
// is down and no previous fetch succeeded. Better a stale-ish conversion than
// peso prices leaking into USD comparisons.
const emergencyCCL = 1250.0

// RateClient fetches the CCL (contado con liquidación) implied ARS/USD rate,
// caching the last good value.
type RateClient struct {
	httpClient *http.Client
	logger     *logger.Logger

	mu   sync.Mutex
	last float64
}

func NewRateClient(log *logger.Logger) *RateClient {
	return &RateClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     log,
	}
}

// CCL returns the current cross rate, the last known one on fetch failure, or
// the emergency fallback if no fetch has ever succeeded.
func (r *RateClient) CCL(ctx context.Context) float64 {
	rate, err := r.fetch(ctx)
	if err == nil && rate > 0 {
		r.mu.Lock()
		r.last = rate
		r.mu.Unlock()
		return rate
	}
	r.logger.Warn("CCL fetch failed", "error", err)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last > 0 {
		return r.last
	}
	return emergencyCCL
}

func (r *RateClient) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cclURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create CCL request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch CCL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("CCL source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read CCL response: %w", err)
	}

	var payload struct {
		Compra float64 `json:"compra"`
		Venta  float64 `json:"venta"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("parse CCL response: %w", err)
	}
	if payload.Venta <= 0 {
		return 0, fmt.Errorf("CCL source returned non-positive rate")
	}
	return payload.Venta, nil
}
