package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseSentiment parses a model response into a Sentiment. Handles markdown
// code fences and prose wrapped around the JSON object.
func ParseSentiment(text string) (Sentiment, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var s Sentiment
	if err := json.Unmarshal([]byte(cleaned), &s); err == nil {
		return sanitize(s), nil
	}

	// Try to extract the first JSON object embedded in the text.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &s); err == nil {
			return sanitize(s), nil
		}
	}

	return Sentiment{}, fmt.Errorf("failed to parse sentiment response as JSON: %.200s", cleaned)
}

func sanitize(s Sentiment) Sentiment {
	if s.Score < 0 {
		s.Score = 0
	}
	if s.Score > 100 {
		s.Score = 100
	}
	switch strings.ToUpper(s.Decision) {
	case DecisionBuy, DecisionWait, DecisionNeutral, DecisionError:
		s.Decision = strings.ToUpper(s.Decision)
	default:
		s.Decision = DecisionNeutral
	}
	return s
}
