package service

import "math"

const (
	irrMaxIterations = 100
	irrTolerance     = 1e-9
	irrLowerBound    = -0.999999 // a periodic rate of -100% is a total loss
	irrUpperBound    = 10.0
)

// internalRateOfReturn solves for the periodic rate that zeroes the net
// present value of the series. Newton-Raphson from a small positive guess,
// falling back to bisection when Newton wanders outside the sensible
// range. Returns false when the series has no solvable rate (all-zero
// capital, no sign change, or no convergence).
func internalRateOfReturn(flows []float64) (float64, bool) {
	if len(flows) < 2 || flows[0] == 0 {
		return 0, false
	}

	rate := 0.1
	for i := 0; i < irrMaxIterations; i++ {
		value, derivative := netPresentValue(flows, rate)
		if math.Abs(value) < irrTolerance {
			return rate, true
		}
		if derivative == 0 || math.IsNaN(derivative) {
			break
		}
		next := rate - value/derivative
		if math.IsNaN(next) || next <= irrLowerBound || next >= irrUpperBound {
			break
		}
		if math.Abs(next-rate) < irrTolerance {
			return next, true
		}
		rate = next
	}

	return bisectIRR(flows)
}

func bisectIRR(flows []float64) (float64, bool) {
	lo, hi := irrLowerBound, irrUpperBound
	fLo, _ := netPresentValue(flows, lo)
	fHi, _ := netPresentValue(flows, hi)
	if math.IsNaN(fLo) || math.IsNaN(fHi) || fLo*fHi > 0 {
		return 0, false
	}

	for i := 0; i < irrMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid, _ := netPresentValue(flows, mid)
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return 0, false
}

// netPresentValue returns NPV(rate) and its derivative with respect to the
// rate, for the Newton step.
func netPresentValue(flows []float64, rate float64) (value, derivative float64) {
	for t, cf := range flows {
		if cf == 0 {
			continue
		}
		discount := math.Pow(1+rate, float64(t))
		value += cf / discount
		if t > 0 {
			derivative -= float64(t) * cf / (discount * (1 + rate))
		}
	}
	return value, derivative
}
