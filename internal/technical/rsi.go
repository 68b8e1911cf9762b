package technical

import "math"

const DefaultRSIPeriod = 14

// NeutralRSI is returned when the series is too short to determine strength.
const NeutralRSI = 50.0

// RSI computes the Relative Strength Index over closing prices using Wilder
// exponential smoothing (alpha = 1/period). Fewer than period+1 samples is
// undeterminable and yields the neutral 50. A series with zero average loss
// yields 100 exactly.
func RSI(closes []float64, period int) float64 {
	if period <= 0 {
		period = DefaultRSIPeriod
	}
	if len(closes) < period+1 {
		return NeutralRSI
	}

	alpha := 1.0 / float64(period)
	var avgGain, avgLoss float64

	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		var gain, loss float64
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}

		if i == 1 {
			avgGain, avgLoss = gain, loss
			continue
		}
		avgGain = alpha*gain + (1-alpha)*avgGain
		avgLoss = alpha*loss + (1-alpha)*avgLoss
	}

	if avgLoss == 0 {
		return 100.0
	}

	rs := avgGain / avgLoss
	rsi := 100 - 100/(1+rs)
	return math.Round(rsi*100) / 100
}
