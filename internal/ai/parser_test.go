package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentimentPlainJSON(t *testing.T) {
	s, err := ParseSentiment(`{"score": 72, "decision": "BUY", "reason": "strong earnings"}`)
	require.NoError(t, err)
	assert.Equal(t, 72, s.Score)
	assert.Equal(t, DecisionBuy, s.Decision)
	assert.Equal(t, "strong earnings", s.Reason)
}

func TestParseSentimentStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"score\": 40, \"decision\": \"WAIT\", \"reason\": \"mixed news\"}\n```"
	s, err := ParseSentiment(raw)
	require.NoError(t, err)
	assert.Equal(t, 40, s.Score)
	assert.Equal(t, DecisionWait, s.Decision)
}

func TestParseSentimentExtractsEmbeddedObject(t *testing.T) {
	raw := `Here is my analysis: {"score": 65, "decision": "buy", "reason": "oversold"} hope it helps`
	s, err := ParseSentiment(raw)
	require.NoError(t, err)
	assert.Equal(t, 65, s.Score)
	assert.Equal(t, DecisionBuy, s.Decision) // decision normalized to uppercase
}

func TestParseSentimentGarbageFails(t *testing.T) {
	_, err := ParseSentiment("the asset looks fine to me")
	assert.Error(t, err)
}

func TestParseSentimentClampsScore(t *testing.T) {
	s, err := ParseSentiment(`{"score": 140, "decision": "BUY", "reason": "x"}`)
	require.NoError(t, err)
	assert.Equal(t, 100, s.Score)

	s, err = ParseSentiment(`{"score": -5, "decision": "WAIT", "reason": "x"}`)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Score)
}

func TestParseSentimentUnknownDecisionBecomesNeutral(t *testing.T) {
	s, err := ParseSentiment(`{"score": 55, "decision": "HOLD", "reason": "x"}`)
	require.NoError(t, err)
	assert.Equal(t, DecisionNeutral, s.Decision)
}
