package market

// Market identifies which scan profile produced a quote.
type Market string

const (
	Crypto Market = "CRYPTO"
	USA    Market = "USA"
	Merval Market = "MERVAL"
)

// Tier buckets separate large/liquid names from the speculative tail. Equities
// use BLUE_CHIP/SPECULATIVE, crypto uses TOP_RANK/RISK.
type Tier string

const (
	TierBlueChip    Tier = "BLUE_CHIP"
	TierSpeculative Tier = "SPECULATIVE"
	TierTopRank     Tier = "TOP_RANK"
	TierRisk        Tier = "RISK"
)

// WorstRank is the sentinel for a crypto row whose market-cap rank is missing;
// it sorts the row into the speculative tier.
const WorstRank = 1 << 20

// Quote is the canonical per-instrument record every scan source is
// normalized into. One scan produces fresh quotes; nothing here is persisted.
type Quote struct {
	Symbol        string
	Name          string
	Price         float64
	PercentChange float64
	RSI           float64
	Rank          int     // crypto market-cap rank, lower = larger; WorstRank if unknown
	MarketCap     float64 // equities; 0 if unknown
	Volume        float64
	Type          string // scanner instrument type ("stock", "dr", "warrant", ...)

	// Pattern is the joined candlestick label. PatternKnown distinguishes "no
	// pattern fired" from "candle columns were absent from the scan".
	Pattern      string
	PatternKnown bool

	Tier Tier // assigned by the ranking engine, empty before
}

// IsDepositaryReceipt reports whether the scanner typed the row as a DR
// (ADR/CEDEAR) rather than a locally domiciled listing.
func (q Quote) IsDepositaryReceipt() bool {
	return q.Type == "dr"
}

// Opportunity is a ranked quote plus the sentiment annotation filled in by the
// AI scorer. AIDecision is empty until scored.
type Opportunity struct {
	Quote

	TechnicalSignal string
	AIScore         int
	AIDecision      string // BUY, WAIT, NEUTRAL, ERROR
	AIReason        string
}
