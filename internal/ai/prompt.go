package ai

import (
	"fmt"
	"strings"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/news"
)

// BuildPrompt contextualizes the analyst role by market: Wall Street for US
// stocks, emerging-markets for Merval, crypto otherwise.
func BuildPrompt(req Request) string {
	var role, assetType string
	switch {
	case req.IsCrypto:
		role = "Crypto Analyst, Senior Financial Analyst"
		assetType = "cryptocurrency"
	case req.IsMerval:
		role = "Senior Financial Analyst in Emerging Markets and Argentina (Merval)"
		assetType = "Argentine stock"
	default:
		role = "Senior Financial Analyst, Wall Street expert"
		assetType = "stock"
	}

	name := req.Name
	if name == "" {
		name = req.Symbol
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Role: %s.\n", role)
	fmt.Fprintf(&sb, "Asset: %s (%s).\n", name, assetType)
	fmt.Fprintf(&sb, "Ticker: %s\n\n", req.Symbol)
	sb.WriteString("Recent Headlines:\n")
	sb.WriteString(news.Format(req.Headlines))
	sb.WriteString(`
Task:
1. Analyze sentiment considering local economic context (inflation, regulations).
2. Filter out irrelevant news (e.g., if analyzing 'Dash' crypto, ignore 'DoorDash' stocks).
3. Identify FUD, hype, or fundamentals.
4. Analyze the sentiment ONLY based on relevant news.

Response format (JSON only):
{
    "score": (integer 0-100, 0=Panic, 50=Neutral/Irrelevant, 100=Greed),
    "decision": ("BUY", "WAIT", "NEUTRAL"),
    "reason": "Brief explanation. If news are irrelevant, state it."
}
`)
	return sb.String()
}
