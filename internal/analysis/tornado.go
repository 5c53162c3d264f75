package analysis

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"dealrisk-mcp/internal/finance"
)

// TornadoEntry is one variable's marginal influence on the metric: the metric
// evaluated at the variable's min and max with every other assumption held at
// base.
type TornadoEntry struct {
	Variable         string  `json:"variable"`
	Label            string  `json:"label,omitempty"`
	Unit             string  `json:"unit,omitempty"`
	MetricAtMin      float64 `json:"metric_at_min"`
	MetricAtMax      float64 `json:"metric_at_max"`
	MetricRange      float64 `json:"metric_range"`
	ImpactPercentage float64 `json:"impact_percentage"`
	Rank             int     `json:"rank"`
}

// TornadoResult ranks variables by their one-way sensitivity impact, widest
// range first.
type TornadoResult struct {
	AnalysisID  string               `json:"analysis_id"`
	BaseMetric  float64              `json:"base_metric"`
	Base        finance.MetricResult `json:"base_result"`
	Variables   []TornadoEntry       `json:"variables"`
	Evaluations int                  `json:"evaluations"`
}

// Tornado runs a one-way sensitivity sweep. Each variable is pushed to its
// declared min and max independently; values are deliberately not re-clamped
// since they come straight from the declared range. Ranking is descending by
// impact, 1-indexed, ties broken by declaration order.
func Tornado(eval finance.MetricEvaluator, base finance.Assumptions, vars []Variable) TornadoResult {
	baseRes := eval.Evaluate(base)
	baseMetric := baseRes.Metric

	entries := make([]TornadoEntry, len(vars))
	for i, v := range vars {
		atMin := eval.Evaluate(base.With(v.Name, v.Min)).Metric
		atMax := eval.Evaluate(base.With(v.Name, v.Max)).Metric

		impact := 0.0
		metricRange := math.Abs(atMax - atMin)
		if baseMetric != 0 {
			impact = metricRange / math.Abs(baseMetric)
		}

		entries[i] = TornadoEntry{
			Variable:         v.Name,
			Label:            v.Label,
			Unit:             v.Unit,
			MetricAtMin:      atMin,
			MetricAtMax:      atMax,
			MetricRange:      metricRange,
			ImpactPercentage: impact,
		}
	}

	// Stable sort keeps declaration order for tied impacts.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ImpactPercentage > entries[j].ImpactPercentage
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return TornadoResult{
		AnalysisID:  uuid.NewString(),
		BaseMetric:  baseMetric,
		Base:        baseRes,
		Variables:   entries,
		Evaluations: 1 + 2*len(vars),
	}
}
