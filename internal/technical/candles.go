package technical

import (
	"math"
	"strings"
)

// Flag is one named 0/1 candlestick indicator cell from a scan row.
type Flag struct {
	Name  string
	Value float64
}

// PatternLabel joins the candle flags whose value is exactly 1 into a
// human-readable label ("Hammer, Doji Dragonfly"). NaN counts as unset. An
// empty result means no pattern fired; callers keep that distinct from
// "candle columns absent".
func PatternLabel(flags []Flag) string {
	var names []string
	for _, f := range flags {
		if math.IsNaN(f.Value) || f.Value != 1 {
			continue
		}
		names = append(names, cleanPatternName(f.Name))
	}
	return strings.Join(names, ", ")
}

// cleanPatternName turns "Candle.Doji.Dragonfly" into "Doji Dragonfly".
func cleanPatternName(column string) string {
	name := strings.TrimPrefix(column, "Candle.")
	return strings.ReplaceAll(name, ".", " ")
}
