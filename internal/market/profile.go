package market

// Profile describes how one market's raw scan maps onto quotes: which column
// carries the percent change (the coin screener hides it behind an oddly
// suffixed key), which free-text column is the dedup identity, and the
// liquidity floor (0 disables it).
type Profile struct {
	Market       Market
	SymbolColumn string
	NameColumn   string
	ChangeColumn string
	CapColumn    string
	MinVolume    float64
	ScanLimit    int
	ScanMarkets  []string // country markets for the equity screener
}

func ProfileFor(m Market) Profile {
	switch m {
	case Crypto:
		return Profile{
			Market:       Crypto,
			SymbolColumn: "base_currency",
			NameColumn:   "base_currency_desc",
			ChangeColumn: "24h_close_change|5",
			CapColumn:    "market_cap_calc",
			MinVolume:    0,
			ScanLimit:    300,
		}
	case Merval:
		return Profile{
			Market:       Merval,
			SymbolColumn: "name",
			NameColumn:   "description",
			ChangeColumn: "change",
			CapColumn:    "market_cap_basic",
			MinVolume:    0,
			ScanLimit:    400,
			ScanMarkets:  []string{"argentina"},
		}
	default:
		return Profile{
			Market:       USA,
			SymbolColumn: "name",
			NameColumn:   "description",
			ChangeColumn: "change",
			CapColumn:    "market_cap_basic",
			MinVolume:    50000,
			ScanLimit:    800,
			ScanMarkets:  []string{"america"},
		}
	}
}
