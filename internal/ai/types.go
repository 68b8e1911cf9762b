package ai

import "github.com/NicoTorreseg/NTmarketAnalyser/internal/news"

const (
	DecisionBuy     = "BUY"
	DecisionWait    = "WAIT"
	DecisionNeutral = "NEUTRAL"
	DecisionError   = "ERROR"
)

// Request carries everything the sentiment model sees about one candidate.
type Request struct {
	Symbol    string
	Name      string
	IsCrypto  bool
	IsMerval  bool
	Headlines []news.Headline
}

// Sentiment is the scorer's verdict. Score 0 is panic, 50 neutral, 100 greed.
type Sentiment struct {
	Score    int    `json:"score"`
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// errorSentiment is the degraded result for any scoring failure; the position
// manager treats ERROR as "do not buy".
func errorSentiment() Sentiment {
	return Sentiment{Score: 50, Decision: DecisionError, Reason: "AI analysis failed"}
}
