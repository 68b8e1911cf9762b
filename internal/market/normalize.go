package market

import (
	"math"

	"github.com/NicoTorreseg/NTmarketAnalyser/internal/scanner"
	"github.com/NicoTorreseg/NTmarketAnalyser/internal/technical"
)

// Normalize reshapes a raw scan table into canonical quotes. Renaming and
// numeric coercion happen here, before any filtering: a row whose change cell
// cannot be parsed becomes 0.0 rather than being dropped, and missing optional
// columns degrade to defaults (RSI 50, cap 0, worst rank) instead of aborting
// the scan.
func Normalize(t *scanner.Table, p Profile) []Quote {
	if t.Empty() {
		return nil
	}

	quotes := make([]Quote, 0, len(t.Rows))
	for i := range t.Rows {
		symbol := t.String(i, p.SymbolColumn)
		if symbol == "" {
			continue
		}
		name := t.String(i, p.NameColumn)
		if name == "" {
			name = symbol
		}

		q := Quote{
			Symbol:        symbol,
			Name:          name,
			Price:         t.Float(i, "close", 0),
			PercentChange: t.Float(i, p.ChangeColumn, 0),
			RSI:           t.Float(i, "RSI", technical.NeutralRSI),
			Rank:          int(t.Float(i, "crypto_total_rank", WorstRank)),
			MarketCap:     t.Float(i, p.CapColumn, 0),
			Volume:        t.Float(i, "volume", 0),
			Type:          t.String(i, "type"),
		}
		q.Pattern, q.PatternKnown = patternFromRow(t, i)

		quotes = append(quotes, q)
	}
	return quotes
}

func patternFromRow(t *scanner.Table, row int) (string, bool) {
	var flags []technical.Flag
	for _, col := range scanner.CandleColumns {
		if t.ColumnIndex(col) < 0 {
			continue
		}
		flags = append(flags, technical.Flag{
			Name:  col,
			Value: t.Float(row, col, math.NaN()),
		})
	}
	if len(flags) == 0 {
		return "", false
	}
	return technical.PatternLabel(flags), true
}
