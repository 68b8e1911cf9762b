package scanner

// Column lists mirror the screener's own groupings: general info, performance,
// and the technicals/candles block. Requests send the flattened union; the
// technicals block is what the normalizer ultimately consumes.

var equityLists = [][]string{
	{
		"name", "description", "logoid", "update_mode", "type", "typespecs",
		"close", "pricescale", "minmov", "fractional", "minmove2", "currency",
		"change", "volume", "relative_volume_10d_calc", "market_cap_basic",
		"fundamental_currency_code", "price_earnings_ttm",
		"earnings_per_share_diluted_ttm", "dividends_yield_current",
		"sector", "market", "AnalystRating", "exchange",
	},
	{
		"name", "description", "close", "change",
		"Perf.W", "Perf.1M", "Perf.3M", "Perf.6M", "Perf.YTD", "Perf.Y",
		"Volatility.W", "Volatility.M", "exchange",
	},
	technicalColumns("name", "description", "exchange"),
}

var coinLists = [][]string{
	{
		"base_currency", "base_currency_desc", "base_currency_logoid",
		"update_mode", "type", "typespecs", "exchange", "crypto_total_rank",
		"close", "pricescale", "minmov", "fractional", "minmove2", "currency",
		"24h_close_change|5", "market_cap_calc", "fundamental_currency_code",
		"24h_vol_cmc", "circulating_supply", "24h_vol_to_market_cap",
		"crypto_common_categories.tr", "TechRating_1D", "TechRating_1D.tr",
	},
	{
		"base_currency", "base_currency_desc", "crypto_total_rank",
		"market_cap_calc", "24h_close_change|5",
		"Perf.W", "Perf.1M", "Perf.3M", "Perf.6M", "Perf.YTD", "Perf.Y",
		"Volatility.D",
	},
	technicalColumns("base_currency", "base_currency_desc", "crypto_total_rank"),
}

// CandleColumns are the 0/1 candlestick-pattern flags requested from the
// screener; the technical normalizer joins the set bits into a label.
var CandleColumns = []string{
	"Candle.3BlackCrows", "Candle.3WhiteSoldiers",
	"Candle.AbandonedBaby.Bearish", "Candle.AbandonedBaby.Bullish",
	"Candle.Doji", "Candle.Doji.Dragonfly", "Candle.Doji.Gravestone",
	"Candle.Engulfing.Bearish", "Candle.Engulfing.Bullish",
	"Candle.EveningStar", "Candle.Hammer", "Candle.HangingMan",
	"Candle.Harami.Bearish", "Candle.Harami.Bullish",
	"Candle.InvertedHammer", "Candle.Kicking.Bearish", "Candle.Kicking.Bullish",
	"Candle.LongShadow.Lower", "Candle.LongShadow.Upper",
	"Candle.Marubozu.Black", "Candle.Marubozu.White",
	"Candle.MorningStar", "Candle.ShootingStar",
	"Candle.SpinningTop.Black", "Candle.SpinningTop.White",
	"Candle.TriStar.Bearish", "Candle.TriStar.Bullish",
}

func technicalColumns(extra ...string) []string {
	cols := append([]string{}, extra...)
	cols = append(cols,
		"TechRating_1D", "TechRating_1D.tr", "MARating_1D", "OsRating_1D",
		"RSI", "Mom", "AO", "CCI20", "Stoch.K", "Stoch.D",
	)
	return append(cols, CandleColumns...)
}

// flatten unifies the sub-lists preserving first-seen order, so the vital
// identity/price columns stay at the front of the request.
func flatten(lists [][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, c := range list {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

var (
	EquityColumns = flatten(equityLists)
	CoinColumns   = flatten(coinLists)
)
