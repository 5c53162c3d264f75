package analysis

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dealrisk-mcp/internal/finance"
)

const (
	breakEvenTolerance     = 1e-4
	breakEvenMaxIterations = 100

	occupancySearchMin = 0.30
	occupancySearchMax = 1.00
	exitCapSearchMin   = 0.03
	exitCapSearchMax   = 0.15

	// A boundary this close to the top of the search range means the
	// predicate never truly flips inside it.
	upperBoundEpsilon = 0.001
)

// BreakEvenKind selects which boundary to search for.
type BreakEvenKind string

const (
	BreakEvenOccupancy BreakEvenKind = "occupancy"
	BreakEvenRent      BreakEvenKind = "rent"
	BreakEvenExitCap   BreakEvenKind = "exit_cap"
	BreakEvenPayback   BreakEvenKind = "payback"
)

// BreakEvenRequest carries the mode-specific parameters.
type BreakEvenRequest struct {
	Kind      BreakEvenKind `json:"kind"`
	RentKey   string        `json:"rent_key,omitempty"`   // assumption swept for rent break-even
	TargetIRR float64       `json:"target_irr,omitempty"` // rent break-even target
	MinIRR    float64       `json:"min_irr,omitempty"`    // exit-cap break-even floor
}

// BreakEvenResult reports a boundary value or infeasibility. An infeasible
// search is an expected business answer, not a fault: BreakEvenValue is
// omitted and Feasible is false.
type BreakEvenResult struct {
	AnalysisID      string        `json:"analysis_id"`
	Kind            BreakEvenKind `json:"kind"`
	Feasible        bool          `json:"feasible"`
	BreakEvenValue  *float64      `json:"break_even_value,omitempty"`
	CurrentValue    float64       `json:"current_value"`
	SafetyMarginPct *float64      `json:"safety_margin_pct,omitempty"`
	SearchMin       float64       `json:"search_min,omitempty"`
	SearchMax       float64       `json:"search_max,omitempty"`
}

// bisect binary-searches [lo, hi] for the boundary where a monotonic
// predicate flips from false to true. Exceeding the iteration cap returns the
// best current midpoint rather than hanging.
func bisect(lo, hi float64, test func(float64) bool) float64 {
	for i := 0; hi-lo > breakEvenTolerance; i++ {
		if i >= breakEvenMaxIterations {
			log.Warn().Float64("lo", lo).Float64("hi", hi).Msg("break-even search hit iteration cap, returning midpoint")
			break
		}
		mid := (lo + hi) / 2
		if test(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}

// OccupancyBreakEven finds the lowest occupancy at which NOI covers debt
// service. Returns NaN when even full occupancy cannot cover it.
func OccupancyBreakEven(eval finance.MetricEvaluator, base finance.Assumptions) float64 {
	covers := func(occ float64) bool {
		res := eval.Evaluate(base.With("occupancy", occ))
		return res.NOI >= res.DebtService
	}

	if covers(occupancySearchMin) {
		return occupancySearchMin
	}

	boundary := bisect(occupancySearchMin, occupancySearchMax, covers)
	if boundary > occupancySearchMax-upperBoundEpsilon {
		return math.NaN()
	}
	return boundary
}

// RentBreakEven finds the rent (or ADR) level at which the deal's IRR reaches
// targetIRR, searching [0.5x, 2x] of the current value. Returns NaN when even
// doubled rent falls short.
func RentBreakEven(eval finance.MetricEvaluator, base finance.Assumptions, rentKey string, targetIRR float64) float64 {
	current := base.Get(rentKey)
	if current <= 0 {
		return math.NaN()
	}

	lo, hi := 0.5*current, 2.0*current
	clears := func(rent float64) bool {
		return eval.Evaluate(base.With(rentKey, rent)).IRR >= targetIRR
	}

	if clears(lo) {
		return lo
	}

	boundary := bisect(lo, hi, clears)
	if boundary > hi-upperBoundEpsilon*(hi-lo) {
		return math.NaN()
	}
	return boundary
}

// ExitCapBreakEven finds the highest exit cap rate that still clears minIRR.
// Monotonicity is inverted here: a higher exit cap means a lower IRR. If even
// the most favorable (lowest) cap in range fails, the search is infeasible
// (NaN); if even the worst (highest) cap clears the bar, the deal is robust
// and the upper bound itself is returned.
func ExitCapBreakEven(eval finance.MetricEvaluator, base finance.Assumptions, minIRR float64) float64 {
	fails := func(cap float64) bool {
		return eval.Evaluate(base.With("exit_cap_rate", cap)).IRR < minIRR
	}

	if fails(exitCapSearchMin) {
		return math.NaN()
	}
	if !fails(exitCapSearchMax) {
		return exitCapSearchMax
	}

	return bisect(exitCapSearchMin, exitCapSearchMax, fails)
}

// YearsToBreakEven locates the fractional year at which cumulative cash flow
// crosses zero, by linear interpolation across the yearly series (index 0 is
// the initial outflow). Returns NaN when the series never turns non-negative
// within the horizon.
func YearsToBreakEven(cashflows []float64) float64 {
	if len(cashflows) == 0 {
		return math.NaN()
	}
	if cashflows[0] >= 0 {
		return 0
	}

	cumulative := cashflows[0]
	for t := 1; t < len(cashflows); t++ {
		previous := cumulative
		cumulative += cashflows[t]
		if cumulative >= 0 {
			if cashflows[t] == 0 {
				return float64(t)
			}
			return float64(t-1) + (-previous)/cashflows[t]
		}
	}
	return math.NaN()
}

// BreakEven dispatches one break-even search and wraps it into a typed
// report, including the safety margin ("how much cushion exists before the
// deal breaks").
func BreakEven(eval finance.MetricEvaluator, base finance.Assumptions, req BreakEvenRequest) (BreakEvenResult, error) {
	result := BreakEvenResult{
		AnalysisID: uuid.NewString(),
		Kind:       req.Kind,
	}

	var boundary float64

	switch req.Kind {
	case BreakEvenOccupancy:
		result.CurrentValue = base.GetOr("occupancy", 1-base.Get("vacancy_rate"))
		result.SearchMin, result.SearchMax = occupancySearchMin, occupancySearchMax
		boundary = OccupancyBreakEven(eval, base)

	case BreakEvenRent:
		key := req.RentKey
		if key == "" {
			key = "gross_rent_monthly"
		}
		result.CurrentValue = base.Get(key)
		result.SearchMin, result.SearchMax = 0.5*result.CurrentValue, 2.0*result.CurrentValue
		boundary = RentBreakEven(eval, base, key, req.TargetIRR)

	case BreakEvenExitCap:
		result.CurrentValue = base.Get("exit_cap_rate")
		result.SearchMin, result.SearchMax = exitCapSearchMin, exitCapSearchMax
		boundary = ExitCapBreakEven(eval, base, req.MinIRR)

	case BreakEvenPayback:
		projector, ok := eval.(finance.CashFlowProjector)
		if !ok {
			return result, fmt.Errorf("payback break-even requires an evaluator with a cash-flow projection")
		}
		boundary = YearsToBreakEven(projector.ProjectCashFlows(base))

	default:
		return result, fmt.Errorf("unknown break-even kind %q", req.Kind)
	}

	if math.IsNaN(boundary) {
		return result, nil
	}

	result.Feasible = true
	result.BreakEvenValue = &boundary

	switch req.Kind {
	case BreakEvenOccupancy, BreakEvenRent:
		if boundary != 0 {
			margin := (result.CurrentValue - boundary) / boundary * 100
			result.SafetyMarginPct = &margin
		}
	case BreakEvenExitCap:
		// Direction flips: a lower current cap assumption is the safer one.
		if result.CurrentValue != 0 {
			margin := (boundary - result.CurrentValue) / result.CurrentValue * 100
			result.SafetyMarginPct = &margin
		}
	}

	return result, nil
}
