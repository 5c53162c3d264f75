package analysis

import (
	"math"
	"testing"

	"dealrisk-mcp/internal/finance"
)

// linearEvaluator computes offset + sum of weighted assumptions. Its closed
// form makes grid and ranking outcomes exactly predictable.
type linearEvaluator struct {
	offset  float64
	weights map[string]float64
}

func (e *linearEvaluator) Evaluate(a finance.Assumptions) finance.MetricResult {
	m := e.offset
	for k, w := range e.weights {
		m += w * a.Get(k)
	}
	return finance.MetricResult{Metric: m}
}

func TestTornado_Ranking(t *testing.T) {
	eval := &linearEvaluator{weights: map[string]float64{"a": 1, "b": 10}}
	base := finance.Assumptions{"a": 10, "b": 10}
	vars := []Variable{
		{Name: "a", Base: 10, Min: 8, Max: 12},
		{Name: "b", Base: 10, Min: 9, Max: 11},
	}

	res := Tornado(eval, base, vars)

	if res.BaseMetric != 110 {
		t.Fatalf("Expected base metric 110, got %f", res.BaseMetric)
	}
	if res.Evaluations != 5 {
		t.Errorf("Expected 5 evaluations (1 base + 2 per variable), got %d", res.Evaluations)
	}

	// b moves the metric by 20, a only by 4, so b must rank first.
	if res.Variables[0].Variable != "b" || res.Variables[0].Rank != 1 {
		t.Errorf("Expected b at rank 1, got %s at rank %d", res.Variables[0].Variable, res.Variables[0].Rank)
	}
	if math.Abs(res.Variables[0].MetricRange-20) > 1e-9 {
		t.Errorf("Expected metric range 20 for b, got %f", res.Variables[0].MetricRange)
	}
	if math.Abs(res.Variables[0].ImpactPercentage-20.0/110.0) > 1e-9 {
		t.Errorf("Expected impact 20/110 for b, got %f", res.Variables[0].ImpactPercentage)
	}
	if res.Variables[1].Variable != "a" || res.Variables[1].Rank != 2 {
		t.Errorf("Expected a at rank 2, got %s at rank %d", res.Variables[1].Variable, res.Variables[1].Rank)
	}
}

func TestTornado_InputOrderIrrelevant(t *testing.T) {
	eval := &linearEvaluator{weights: map[string]float64{"a": 1, "b": 10}}
	base := finance.Assumptions{"a": 10, "b": 10}
	vars := []Variable{
		{Name: "a", Base: 10, Min: 8, Max: 12},
		{Name: "b", Base: 10, Min: 9, Max: 11},
	}
	reversed := []Variable{vars[1], vars[0]}

	r1 := Tornado(eval, base, vars)
	r2 := Tornado(eval, base, reversed)

	for i := range r1.Variables {
		if r1.Variables[i].Variable != r2.Variables[i].Variable {
			t.Errorf("Ranking depends on input order: %s vs %s at position %d",
				r1.Variables[i].Variable, r2.Variables[i].Variable, i)
		}
		if r1.Variables[i].Rank != r2.Variables[i].Rank {
			t.Errorf("Rank differs for %s", r1.Variables[i].Variable)
		}
	}
}

func TestTornado_ZeroBaseMetric(t *testing.T) {
	eval := &linearEvaluator{weights: map[string]float64{"a": 1}}
	base := finance.Assumptions{"a": 0}
	vars := []Variable{{Name: "a", Base: 0, Min: -1, Max: 1}}

	res := Tornado(eval, base, vars)

	// Division by a zero base is guarded; the range still reports.
	if res.Variables[0].ImpactPercentage != 0 {
		t.Errorf("Expected impact 0 for zero base metric, got %f", res.Variables[0].ImpactPercentage)
	}
	if math.Abs(res.Variables[0].MetricRange-2) > 1e-9 {
		t.Errorf("Expected metric range 2, got %f", res.Variables[0].MetricRange)
	}
}

func TestTornado_MinimalDeal(t *testing.T) {
	// A bare price-plus-NOI listing: varying the interest rate must move the
	// cash-on-cash and outrank an inert variable.
	eval, err := finance.NewEvaluator("", finance.MetricCashOnCash)
	if err != nil {
		t.Fatal(err)
	}
	base := finance.Assumptions{"purchase_price": 500000, "noi": 35000, "interest_rate": 0.06}
	vars := []Variable{
		{Name: "unused_knob", Base: 1, Min: 0.5, Max: 1.5},
		{Name: "interest_rate", Base: 0.06, Min: 0.04, Max: 0.08},
	}

	res := Tornado(eval, base, vars)

	if res.Variables[0].Variable != "interest_rate" {
		t.Fatalf("Expected interest_rate to rank first, got %s", res.Variables[0].Variable)
	}
	if res.Variables[0].MetricRange <= 0 {
		t.Errorf("Expected a nonzero metric range for interest_rate, got %f", res.Variables[0].MetricRange)
	}
}
