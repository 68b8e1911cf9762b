package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/news"
)

func TestScoreWithoutHeadlinesSkipsModel(t *testing.T) {
	s := NewScorer(&config.Config{}, logger.New("error"))

	sent := s.Score(context.Background(), Request{Symbol: "PEPE"})
	assert.Equal(t, 50, sent.Score)
	assert.Equal(t, DecisionNeutral, sent.Decision)
	assert.Contains(t, sent.Reason, "PEPE")
}

func TestScoreAllProvidersFailingDegrades(t *testing.T) {
	// no providers configured behaves like every provider failing
	s := NewScorer(&config.Config{}, logger.New("error"))

	sent := s.Score(context.Background(), Request{
		Symbol:    "BTC",
		Headlines: []news.Headline{{Title: "Bitcoin drops 5%", Source: "Reuters"}},
	})
	assert.Equal(t, DecisionError, sent.Decision)
	assert.Equal(t, 50, sent.Score)
}

func TestBuildPromptByMarket(t *testing.T) {
	headlines := []news.Headline{{Title: "YPF announces buyback", Source: "Ámbito"}}

	merval := BuildPrompt(Request{Symbol: "YPF", Name: "YPF Sociedad Anónima", IsMerval: true, Headlines: headlines})
	assert.Contains(t, merval, "Merval")
	assert.Contains(t, merval, "Argentine stock")
	assert.Contains(t, merval, "YPF announces buyback")

	crypto := BuildPrompt(Request{Symbol: "SOL", Name: "Solana", IsCrypto: true, Headlines: headlines})
	assert.Contains(t, crypto, "Crypto Analyst")
	assert.Contains(t, crypto, "cryptocurrency")

	usa := BuildPrompt(Request{Symbol: "AAPL", Headlines: headlines})
	assert.Contains(t, usa, "Wall Street")
	// name falls back to the ticker
	assert.True(t, strings.Contains(usa, "Asset: AAPL"))
}
