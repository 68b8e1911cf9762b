package market

import (
	"sort"
	"strings"
)

// tier2Cap bounds the speculative tail: only the 4 deepest dips among Tier-2
// passers survive a scan.
const tier2Cap = 4

// usaTier1Size is how many names, by market cap, count as blue chips in a
// domestic-equity scan.
const usaTier1Size = 30

// cryptoTier1Rank is the worst market-cap rank still considered Tier-1.
const cryptoTier1Rank = 50

// Ranker is the opportunity ranking engine: it partitions normalized quotes
// into tiers, applies the per-tier drop thresholds, caps the speculative tail
// and deduplicates near-identical listings.
type Ranker struct {
	whitelist map[string]struct{} // Merval symbols kept Tier-1 despite a DR label
}

func NewRanker(whitelist []string) *Ranker {
	wl := make(map[string]struct{}, len(whitelist))
	for _, s := range whitelist {
		wl[strings.ToUpper(s)] = struct{}{}
	}
	return &Ranker{whitelist: wl}
}

// Rank filters and orders dip candidates. Tier-1 keeps rows at or below
// tier1Threshold (the stricter cutoff reserved for large names); Tier-2 keeps
// rows at or below dropThreshold and is capped to the most-negative four.
// Tier-1 is unbounded: large-cap dips are rare enough not to need a cap.
func (r *Ranker) Rank(quotes []Quote, p Profile, dropThreshold, tier1Threshold float64) []Quote {
	if len(quotes) == 0 {
		return nil
	}

	if p.Market == Merval {
		quotes = r.filterJunk(quotes)
	}
	if p.MinVolume > 0 {
		quotes = filterVolume(quotes, p.MinVolume)
	}

	tier1, tier2 := r.partition(quotes, p)

	var passed []Quote
	for _, q := range tier1 {
		if q.PercentChange <= tier1Threshold {
			passed = append(passed, q)
		}
	}

	var deep []Quote
	for _, q := range tier2 {
		if q.PercentChange <= dropThreshold {
			deep = append(deep, q)
		}
	}
	sort.SliceStable(deep, func(i, j int) bool {
		return deep[i].PercentChange < deep[j].PercentChange
	})
	if len(deep) > tier2Cap {
		deep = deep[:tier2Cap]
	}
	passed = append(passed, deep...)

	return Dedupe(passed)
}

// partition assigns tier labels using the market-dependent rule.
func (r *Ranker) partition(quotes []Quote, p Profile) (tier1, tier2 []Quote) {
	switch p.Market {
	case Crypto:
		for _, q := range quotes {
			if q.Rank <= cryptoTier1Rank {
				q.Tier = TierTopRank
				tier1 = append(tier1, q)
			} else {
				q.Tier = TierRisk
				tier2 = append(tier2, q)
			}
		}

	case Merval:
		for _, q := range quotes {
			_, whitelisted := r.whitelist[strings.ToUpper(q.Symbol)]
			if !q.IsDepositaryReceipt() || whitelisted {
				q.Tier = TierBlueChip
				tier1 = append(tier1, q)
			} else {
				q.Tier = TierSpeculative
				tier2 = append(tier2, q)
			}
		}

	default: // USA: top names by market cap are Tier-1, ties keep input order
		idx := make([]int, len(quotes))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return quotes[idx[a]].MarketCap > quotes[idx[b]].MarketCap
		})
		blue := make(map[int]struct{}, usaTier1Size)
		for n, i := range idx {
			if n >= usaTier1Size {
				break
			}
			blue[i] = struct{}{}
		}
		for i, q := range quotes {
			if _, ok := blue[i]; ok {
				q.Tier = TierBlueChip
				tier1 = append(tier1, q)
			} else {
				q.Tier = TierSpeculative
				tier2 = append(tier2, q)
			}
		}
	}
	return tier1, tier2
}

// junkSuffixes mark Buenos Aires listing variants of a root symbol already in
// the scan: W warrants, O corporate debt, C/D settlement-class duplicates.
var junkSuffixes = "WODC"

// filterJunk removes non-equity variants from a Merval scan before any
// threshold runs: typed warrants/bonds, and suffix duplicates whose root
// symbol is itself present.
func (r *Ranker) filterJunk(quotes []Quote) []Quote {
	present := make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		present[q.Symbol] = struct{}{}
	}

	out := quotes[:0:0]
	for _, q := range quotes {
		switch q.Type {
		case "warrant", "bond", "right":
			continue
		}
		if len(q.Symbol) > 1 && strings.ContainsRune(junkSuffixes, rune(q.Symbol[len(q.Symbol)-1])) {
			root := q.Symbol[:len(q.Symbol)-1]
			if _, ok := present[root]; ok {
				continue
			}
		}
		out = append(out, q)
	}
	return out
}

func filterVolume(quotes []Quote, min float64) []Quote {
	out := quotes[:0:0]
	for _, q := range quotes {
		if q.Volume >= min {
			out = append(out, q)
		}
	}
	return out
}
