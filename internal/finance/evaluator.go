package finance

import "fmt"

// Assumptions is a named set of numeric deal inputs. A missing key reads as 0.
// Sets are never mutated in place: analysis code derives fresh copies so that
// evaluators stay pure and results stay order-independent.
type Assumptions map[string]float64

// Get returns the value for name, or 0 when absent.
func (a Assumptions) Get(name string) float64 {
	return a[name]
}

// GetOr returns the value for name, or fallback when the key is absent.
func (a Assumptions) GetOr(name string, fallback float64) float64 {
	if v, ok := a[name]; ok {
		return v
	}
	return fallback
}

// Clone returns an independent copy of the set.
func (a Assumptions) Clone() Assumptions {
	out := make(Assumptions, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// With returns a copy of the set with one value replaced.
func (a Assumptions) With(name string, value float64) Assumptions {
	out := a.Clone()
	out[name] = value
	return out
}

// MetricType selects which outcome figure an evaluator reports as its headline metric.
type MetricType string

const (
	MetricCashOnCash MetricType = "cash_on_cash"
	MetricCapRate    MetricType = "cap_rate"
	MetricDSCR       MetricType = "dscr"
	MetricIRR        MetricType = "irr"
)

// ParseMetricType validates a wire-level metric type string.
func ParseMetricType(s string) (MetricType, error) {
	switch MetricType(s) {
	case MetricCashOnCash, MetricCapRate, MetricDSCR, MetricIRR:
		return MetricType(s), nil
	case "":
		return MetricCashOnCash, nil
	default:
		return "", fmt.Errorf("unknown metric type %q (expected cash_on_cash, cap_rate, dscr or irr)", s)
	}
}

// MetricResult carries the headline metric plus the auxiliary figures the
// analysis modes and callers read. Fields an evaluator cannot produce stay 0.
type MetricResult struct {
	Metric      float64 `json:"metric"`
	NOI         float64 `json:"noi"`
	DebtService float64 `json:"debt_service"`
	CashFlow    float64 `json:"cash_flow"`
	DSCR        float64 `json:"dscr"`
	IRR         float64 `json:"irr"`
	ExitValue   float64 `json:"exit_value"`
	MAO         float64 `json:"mao,omitempty"`
}

// MetricEvaluator recomputes the outcome metric for a perturbed assumption set.
// Implementations must be pure: no side effects, no retained state, the same
// input always produces the same output. The analysis modes call Evaluate
// thousands of times per request.
type MetricEvaluator interface {
	Evaluate(assumptions Assumptions) MetricResult
}

// CashFlowProjector is implemented by evaluators that can lay out a yearly
// operating cash-flow series (index 0 holds the initial equity outflow). The
// payback break-even needs it.
type CashFlowProjector interface {
	ProjectCashFlows(assumptions Assumptions) []float64
}

// NewEvaluator builds the evaluator for a property type.
func NewEvaluator(propertyType string, metric MetricType) (MetricEvaluator, error) {
	switch propertyType {
	case "multifamily", "single_family", "commercial", "":
		return &RentalEvaluator{Metric: metric}, nil
	case "fix_and_flip":
		return &FlipEvaluator{Metric: metric}, nil
	default:
		return nil, fmt.Errorf("unknown property type %q", propertyType)
	}
}
