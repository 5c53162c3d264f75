package analysis

import (
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dealrisk-mcp/internal/finance"
)

// HeatMapStats summarizes the flattened metric matrix.
type HeatMapStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Range float64 `json:"range"`
}

// HeatMapResult is a steps x steps metric grid over two simultaneously
// perturbed variables. Row index follows YValues, column index follows
// XValues.
type HeatMapResult struct {
	AnalysisID  string       `json:"analysis_id"`
	XVariable   string       `json:"x_variable"`
	YVariable   string       `json:"y_variable"`
	XValues     []float64    `json:"x_values"`
	YValues     []float64    `json:"y_values"`
	Matrix      [][]float64  `json:"matrix"`
	Stats       HeatMapStats `json:"statistics"`
	BaseMetric  float64      `json:"base_metric"`
	Evaluations int          `json:"evaluations"`
}

// HeatMap evaluates the metric over every (x, y) combination of two variables
// swept across their declared ranges. Grid values come straight from the
// evenly spaced in-range axes, so no re-clamping is needed. Rows are
// independent and evaluated concurrently; each row writes only its own slot,
// so the result is deterministic.
func HeatMap(eval finance.MetricEvaluator, base finance.Assumptions, x, y Variable, steps int) HeatMapResult {
	if steps < 2 {
		steps = 2
	}

	xValues := linspace(x.Min, x.Max, steps)
	yValues := linspace(y.Min, y.Max, steps)

	matrix := make([][]float64, steps)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for j := 0; j < steps; j++ {
		g.Go(func() error {
			row := make([]float64, steps)
			for i := 0; i < steps; i++ {
				perturbed := base.Clone()
				perturbed[x.Name] = xValues[i]
				perturbed[y.Name] = yValues[j]
				row[i] = eval.Evaluate(perturbed).Metric
			}
			matrix[j] = row
			return nil
		})
	}
	_ = g.Wait() // evaluators are pure, rows cannot fail

	flat := make([]float64, 0, steps*steps)
	for _, row := range matrix {
		flat = append(flat, row...)
	}

	stats := HeatMapStats{Min: flat[0], Max: flat[0], Mean: Mean(flat)}
	for _, v := range flat {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Range = stats.Max - stats.Min

	return HeatMapResult{
		AnalysisID:  uuid.NewString(),
		XVariable:   x.Name,
		YVariable:   y.Name,
		XValues:     xValues,
		YValues:     yValues,
		Matrix:      matrix,
		Stats:       stats,
		BaseMetric:  eval.Evaluate(base).Metric,
		Evaluations: steps*steps + 1,
	}
}

// linspace returns n evenly spaced values across [min, max], both endpoints
// included.
func linspace(min, max float64, n int) []float64 {
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max // avoid drift on the closing endpoint
	return out
}
