package market

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/scanner"
)

type fakeScanner struct {
	equity *scanner.Table
	coin   *scanner.Table
	err    error
}

func (f *fakeScanner) EquityScan(_ context.Context, _ []string, _ int) (*scanner.Table, error) {
	return f.equity, f.err
}

func (f *fakeScanner) CoinScan(_ context.Context, _ int) (*scanner.Table, error) {
	return f.coin, f.err
}

type fakeRates struct{ rate float64 }

func (f *fakeRates) CCL(_ context.Context) float64 { return f.rate }

func testConfig() *config.Config {
	return &config.Config{
		Markets: config.MarketsConfig{CedearWhitelist: []string{"MELI"}},
	}
}

func TestFindOpportunitiesCrypto(t *testing.T) {
	sc := &fakeScanner{coin: &scanner.Table{
		Columns: []string{"base_currency", "base_currency_desc", "close", "24h_close_change|5", "crypto_total_rank", "RSI"},
		Rows: [][]any{
			{"BTC", "Bitcoin", 64000.0, -3.0, 1.0, 28.0},
			{"ETH", "Ethereum", 3100.0, -0.5, 2.0, 55.0},
			{"PEPE", "Pepe", 0.00001, -6.0, 130.0, 45.0},
		},
	}}

	a := NewAnalyzer(sc, &fakeRates{}, testConfig(), logger.New("error"))
	got, err := a.FindOpportunities(context.Background(), Crypto, -3.0, -2.0)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "BTC", got[0].Symbol)
	assert.Contains(t, got[0].TechnicalSignal, "TOP_RANK")
	assert.Contains(t, got[0].TechnicalSignal, "Oversold (28)")

	assert.Equal(t, "PEPE", got[1].Symbol)
	assert.Contains(t, got[1].TechnicalSignal, "GEM #130")
}

func TestFindOpportunitiesMervalConvertsPrices(t *testing.T) {
	sc := &fakeScanner{equity: &scanner.Table{
		Columns: []string{"name", "description", "close", "change", "type"},
		Rows: [][]any{
			{"GGAL", "Grupo Financiero Galicia", 6000.0, -2.5, "stock"},
		},
	}}

	a := NewAnalyzer(sc, &fakeRates{rate: 1200}, testConfig(), logger.New("error"))
	got, err := a.FindOpportunities(context.Background(), Merval, -2.0, -1.5)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.InDelta(t, 5.0, got[0].Price, 1e-9)
}

func TestFindOpportunitiesMervalRateUnavailable(t *testing.T) {
	sc := &fakeScanner{equity: &scanner.Table{
		Columns: []string{"name", "description", "close", "change", "type"},
		Rows: [][]any{
			{"GGAL", "Grupo Financiero Galicia", 6000.0, -2.5, "stock"},
		},
	}}

	a := NewAnalyzer(sc, &fakeRates{rate: 0}, testConfig(), logger.New("error"))
	got, err := a.FindOpportunities(context.Background(), Merval, -2.0, -1.5)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 6000.0, got[0].Price)
}

func TestFindOpportunitiesScanError(t *testing.T) {
	sc := &fakeScanner{err: errors.New("scanner down")}
	a := NewAnalyzer(sc, &fakeRates{}, testConfig(), logger.New("error"))

	_, err := a.FindOpportunities(context.Background(), USA, -2.0, -1.5)
	assert.Error(t, err)
}

func TestFindOpportunitiesEmptyScan(t *testing.T) {
	sc := &fakeScanner{coin: &scanner.Table{}}
	a := NewAnalyzer(sc, &fakeRates{}, testConfig(), logger.New("error"))

	got, err := a.FindOpportunities(context.Background(), Crypto, -3.0, -2.0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
