package technical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternLabelJoinsFiredFlags(t *testing.T) {
	flags := []Flag{
		{Name: "Candle.Hammer", Value: 1},
		{Name: "Candle.Doji", Value: 0},
		{Name: "Candle.Doji.Dragonfly", Value: 1},
		{Name: "Candle.Engulfing.Bullish", Value: math.NaN()},
	}
	assert.Equal(t, "Hammer, Doji Dragonfly", PatternLabel(flags))
}

func TestPatternLabelEmptyWhenNothingFires(t *testing.T) {
	flags := []Flag{
		{Name: "Candle.Hammer", Value: 0},
		{Name: "Candle.Doji", Value: math.NaN()},
	}
	assert.Equal(t, "", PatternLabel(flags))
	assert.Equal(t, "", PatternLabel(nil))
}

func TestPatternLabelIgnoresNonUnitValues(t *testing.T) {
	flags := []Flag{
		{Name: "Candle.Hammer", Value: 2},
		{Name: "Candle.Doji", Value: -1},
		{Name: "Candle.Marubozu.White", Value: 1},
	}
	assert.Equal(t, "Marubozu White", PatternLabel(flags))
}
