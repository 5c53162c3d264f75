package analysis

import (
	"math"
	"testing"

	"dealrisk-mcp/internal/finance"
)

func TestHeatMap_Grid(t *testing.T) {
	eval := &linearEvaluator{weights: map[string]float64{"x": 2, "y": 3}}
	base := finance.Assumptions{"x": 1, "y": 1}
	x := Variable{Name: "x", Base: 1, Min: 0, Max: 4}
	y := Variable{Name: "y", Base: 1, Min: 0, Max: 2}

	res := HeatMap(eval, base, x, y, 5)

	if len(res.Matrix) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(res.Matrix))
	}
	for j, row := range res.Matrix {
		if len(row) != 5 {
			t.Fatalf("Expected 5 columns in row %d, got %d", j, len(row))
		}
	}

	// Axes span the declared ranges exactly, endpoints included.
	if res.XValues[0] != 0 || res.XValues[4] != 4 {
		t.Errorf("X axis endpoints wrong: %v", res.XValues)
	}
	if res.YValues[0] != 0 || res.YValues[4] != 2 {
		t.Errorf("Y axis endpoints wrong: %v", res.YValues)
	}

	// Row-major with Y outer: cell (j, i) is 2*x_i + 3*y_j.
	for j := range res.YValues {
		for i := range res.XValues {
			want := 2*res.XValues[i] + 3*res.YValues[j]
			if math.Abs(res.Matrix[j][i]-want) > 1e-9 {
				t.Errorf("Cell (%d,%d): expected %f, got %f", j, i, want, res.Matrix[j][i])
			}
		}
	}

	if res.Evaluations != 26 {
		t.Errorf("Expected 26 evaluations (25 cells + base), got %d", res.Evaluations)
	}
}

func TestHeatMap_Stats(t *testing.T) {
	eval := &linearEvaluator{weights: map[string]float64{"x": 1, "y": 1}}
	base := finance.Assumptions{}
	x := Variable{Name: "x", Base: 5, Min: 0, Max: 10}
	y := Variable{Name: "y", Base: 5, Min: 0, Max: 10}

	res := HeatMap(eval, base, x, y, 7)

	if res.Stats.Min != 0 || res.Stats.Max != 20 {
		t.Errorf("Expected min 0 max 20, got %f / %f", res.Stats.Min, res.Stats.Max)
	}
	if res.Stats.Range != res.Stats.Max-res.Stats.Min {
		t.Errorf("Range must equal max-min")
	}
	// Symmetric linear surface: the mean sits at the center value.
	if math.Abs(res.Stats.Mean-10) > 1e-9 {
		t.Errorf("Expected mean 10, got %f", res.Stats.Mean)
	}
}

func TestHeatMap_MinimumSteps(t *testing.T) {
	eval := &linearEvaluator{weights: map[string]float64{"x": 1}}
	res := HeatMap(eval, finance.Assumptions{}, Variable{Name: "x", Min: 0, Max: 1}, Variable{Name: "y", Min: 0, Max: 1}, 1)

	if len(res.Matrix) != 2 {
		t.Errorf("Steps below 2 should clamp to 2, got %d rows", len(res.Matrix))
	}
}
