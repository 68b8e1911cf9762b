package technical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSIShortSeriesIsNeutral(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104}
	assert.Equal(t, 50.0, RSI(closes, DefaultRSIPeriod))

	// exactly period samples is still one short of computable
	closes = make([]float64, DefaultRSIPeriod)
	for i := range closes {
		closes[i] = float64(100 + i)
	}
	assert.Equal(t, 50.0, RSI(closes, DefaultRSIPeriod))
}

func TestRSIMonotonicGainsIsHundred(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.5
	}
	assert.Equal(t, 100.0, RSI(closes, DefaultRSIPeriod))
}

func TestRSISingleLossThenFlatIsZero(t *testing.T) {
	// only losing delta in the window, average gain stays zero
	closes := make([]float64, 20)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		closes[i] = 90
	}
	assert.Equal(t, 0.0, RSI(closes, DefaultRSIPeriod))
}

func TestRSIMixedSeriesBoundsAndBias(t *testing.T) {
	down := []float64{
		110, 108, 109, 105, 106, 103, 104, 100, 101, 98,
		99, 95, 96, 93, 94, 90, 91, 88, 89, 85,
	}
	rsi := RSI(down, DefaultRSIPeriod)
	assert.Greater(t, rsi, 0.0)
	assert.Less(t, rsi, 50.0)

	up := make([]float64, len(down))
	for i, c := range down {
		up[len(down)-1-i] = c
	}
	assert.Greater(t, RSI(up, DefaultRSIPeriod), 50.0)
}

func TestRSIZeroPeriodUsesDefault(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	assert.Equal(t, RSI(closes, DefaultRSIPeriod), RSI(closes, 0))
}

func TestRSIIsRoundedToTwoDecimals(t *testing.T) {
	closes := []float64{
		44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42,
		45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00,
	}
	rsi := RSI(closes, DefaultRSIPeriod)
	assert.InDelta(t, math.Round(rsi*100)/100, rsi, 1e-9)
}
