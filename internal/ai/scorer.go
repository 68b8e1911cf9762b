package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/config"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/logger"
)

const systemPrompt = `You are a financial sentiment analyst. You receive recent
news headlines about a single asset and must judge whether the market mood
justifies buying its current dip. Respond with a single JSON object and
nothing else.`

type provider struct {
	name   string
	model  string
	client *openai.Client
}

// Scorer cascades across OpenAI-compatible providers: first provider that
// answers with parseable JSON wins. Any total failure degrades to a neutral
// ERROR sentiment instead of propagating.
type Scorer struct {
	providers []provider
	cfg       *config.Config
	logger    *logger.Logger
}

func NewScorer(cfg *config.Config, log *logger.Logger) *Scorer {
	s := &Scorer{cfg: cfg, logger: log}
	for _, p := range cfg.AI.Providers {
		ocfg := openai.DefaultConfig(p.APIKey)
		ocfg.BaseURL = p.BaseURL
		s.providers = append(s.providers, provider{
			name:   p.Name,
			model:  p.Model,
			client: openai.NewClientWithConfig(ocfg),
		})
	}
	return s
}

// Score runs the sentiment analysis for one candidate. Without headlines the
// model is not consulted at all.
func (s *Scorer) Score(ctx context.Context, req Request) Sentiment {
	if len(req.Headlines) == 0 {
		return Sentiment{
			Score:    50,
			Decision: DecisionNeutral,
			Reason:   fmt.Sprintf("No recent news for %s", req.Symbol),
		}
	}

	prompt := BuildPrompt(req)

	for _, p := range s.providers {
		sent, err := s.ask(ctx, p, prompt)
		if err != nil {
			s.logger.Warn("sentiment provider failed",
				"provider", p.name, "symbol", req.Symbol, "error", err)
			continue
		}
		return sent
	}

	s.logger.Error("all sentiment providers failed", "symbol", req.Symbol)
	return errorSentiment()
}

func (s *Scorer) ask(ctx context.Context, p provider, prompt string) (Sentiment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.AITimeout())
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return Sentiment{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Sentiment{}, fmt.Errorf("model returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	s.logger.Debug("sentiment raw response", "provider", p.name, "content", raw)

	sent, err := ParseSentiment(raw)
	if err != nil {
		return Sentiment{}, fmt.Errorf("parse sentiment: %w", err)
	}
	return sent, nil
}
