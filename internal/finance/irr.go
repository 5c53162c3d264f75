package finance

import (
	"math"

	"github.com/rs/zerolog/log"
)

const (
	irrInitialGuess  = 0.10
	irrMaxIterations = 100
	irrTolerance     = 1e-6
)

// NPV computes the net present value of a cash-flow sequence at the given
// discount rate. Index 0 is the initial (typically negative) outflow and is
// not discounted.
func NPV(rate float64, cashflows []float64) float64 {
	npv := 0.0
	for t, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR solves NPV(rate) = 0 via Newton-Raphson.
//
// A series without at least one negative and one positive entry has no real
// economic return and yields 0 without iterating. Divergence (non-finite guess,
// usually a near-zero derivative) also yields 0 rather than propagating NaN.
// Newton-Raphson is local: on series with multiple sign changes it may miss a
// materially different root. There is no bracketing fallback.
func IRR(cashflows []float64) float64 {
	hasNegative, hasPositive := false, false
	for _, cf := range cashflows {
		if cf < 0 {
			hasNegative = true
		}
		if cf > 0 {
			hasPositive = true
		}
	}
	if !hasNegative || !hasPositive {
		return 0
	}

	guess := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		derivative := npvDerivative(guess, cashflows)
		if derivative == 0 {
			log.Debug().Float64("guess", guess).Int("iteration", i).Msg("IRR derivative vanished, returning 0")
			return 0
		}

		next := guess - NPV(guess, cashflows)/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) {
			log.Debug().Float64("guess", guess).Int("iteration", i).Msg("IRR iteration diverged, returning 0")
			return 0
		}

		if math.Abs(next-guess) < irrTolerance {
			return next
		}
		guess = next
	}

	log.Debug().Float64("guess", guess).Msg("IRR did not converge within iteration cap, returning 0")
	return 0
}

// npvDerivative is the analytic dNPV/drate: sum of -t*cf_t / (1+rate)^(t+1).
func npvDerivative(rate float64, cashflows []float64) float64 {
	d := 0.0
	for t, cf := range cashflows {
		d += -float64(t) * cf / math.Pow(1+rate, float64(t+1))
	}
	return d
}
