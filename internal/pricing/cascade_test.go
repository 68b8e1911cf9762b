package pricing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
)

type fakeSource struct {
	name   string
	price  float64
	err    error
	called bool
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Price(_ context.Context, _ string) (float64, error) {
	f.called = true
	return f.price, f.err
}

// stubTransport answers every request with a fixed body, keeping rate fetches
// off the network.
type stubTransport struct {
	status int
	body   string
}

func (s stubTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     make(http.Header),
	}, nil
}

func stubRateClient(status int, body string) *RateClient {
	rc := NewRateClient(logger.New("error"))
	rc.httpClient = &http.Client{Transport: stubTransport{status: status, body: body}}
	return rc
}

func newTestResolver(rates *RateClient, chains map[AssetClass][]Source) *Resolver {
	return &Resolver{
		classifier: NewClassifier([]string{"GGAL"}, []string{"AAPL"}),
		rates:      rates,
		chains:     chains,
		logger:     logger.New("error"),
	}
}

func TestResolveFallsThroughFailingSources(t *testing.T) {
	first := &fakeSource{name: "first", err: errors.New("timeout")}
	second := &fakeSource{name: "second", price: 42.5}
	third := &fakeSource{name: "third", price: 99}

	r := newTestResolver(stubRateClient(500, ""), map[AssetClass][]Source{
		ClassCrypto: {first, second, third},
	})

	price := r.Resolve(context.Background(), "BTC")
	assert.Equal(t, 42.5, price)
	assert.True(t, first.called)
	assert.True(t, second.called)
	assert.False(t, third.called, "chain must stop at the first positive price")
}

func TestResolveSkipsNonPositivePrices(t *testing.T) {
	zero := &fakeSource{name: "zero", price: 0}
	negative := &fakeSource{name: "negative", price: -1}
	good := &fakeSource{name: "good", price: 3.14}

	r := newTestResolver(stubRateClient(500, ""), map[AssetClass][]Source{
		ClassCrypto: {zero, negative, good},
	})

	assert.Equal(t, 3.14, r.Resolve(context.Background(), "DOGE"))
}

func TestResolveExhaustedChainYieldsZero(t *testing.T) {
	r := newTestResolver(stubRateClient(500, ""), map[AssetClass][]Source{
		ClassCrypto: {
			&fakeSource{name: "a", err: errors.New("down")},
			&fakeSource{name: "b", err: errors.New("down")},
		},
	})

	assert.Equal(t, 0.0, r.Resolve(context.Background(), "SHIB"))
}

func TestResolveConvertsLocalPricesWithCCL(t *testing.T) {
	local := &fakeSource{name: "scanner", price: 5000} // pesos
	r := newTestResolver(
		stubRateClient(200, `{"compra": 1240, "venta": 1250}`),
		map[AssetClass][]Source{ClassLocal: {local}},
	)

	assert.InDelta(t, 4.0, r.Resolve(context.Background(), "GGAL"), 1e-9)
}

func TestCCLFallsBackToEmergencyRate(t *testing.T) {
	rc := stubRateClient(503, "")
	assert.Equal(t, emergencyCCL, rc.CCL(context.Background()))
}

func TestCCLCachesLastGoodRate(t *testing.T) {
	rc := stubRateClient(200, `{"compra": 1190, "venta": 1200}`)
	assert.Equal(t, 1200.0, rc.CCL(context.Background()))

	rc.httpClient = &http.Client{Transport: stubTransport{status: 503}}
	assert.Equal(t, 1200.0, rc.CCL(context.Background()))
}
