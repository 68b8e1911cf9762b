package pricing

import "strings"

// AssetClass routes a symbol to one source chain in the cascade.
type AssetClass string

const (
	ClassLocal    AssetClass = "LOCAL"    // Argentine market listing
	ClassDomestic AssetClass = "DOMESTIC" // US equity
	ClassCrypto   AssetClass = "CRYPTO"
)

// localSuffix marks a Buenos Aires listing ("GGAL.BA").
const localSuffix = ".BA"

// Classifier buckets symbols by the configured watchlists. Anything unknown is
// assumed to be crypto; a newly added equity ticker missing from both sets
// will be misrouted until the watchlist catches up, so every resolution logs
// its class.
type Classifier struct {
	local    map[string]struct{}
	domestic map[string]struct{}
}

func NewClassifier(mervalWatchlist, usWatchlist []string) *Classifier {
	c := &Classifier{
		local:    make(map[string]struct{}, len(mervalWatchlist)),
		domestic: make(map[string]struct{}, len(usWatchlist)),
	}
	for _, s := range mervalWatchlist {
		c.local[strings.ToUpper(s)] = struct{}{}
	}
	for _, s := range usWatchlist {
		c.domestic[strings.ToUpper(s)] = struct{}{}
	}
	return c
}

func (c *Classifier) Classify(symbol string) AssetClass {
	s := strings.ToUpper(symbol)
	if strings.HasSuffix(s, localSuffix) {
		return ClassLocal
	}
	if _, ok := c.local[s]; ok {
		return ClassLocal
	}
	if _, ok := c.domestic[s]; ok {
		return ClassDomestic
	}
	return ClassCrypto
}
