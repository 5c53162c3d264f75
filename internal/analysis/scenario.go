package analysis

import (
	"math"

	"github.com/google/uuid"

	"dealrisk-mcp/internal/finance"
)

// ScenarioOutcome is one named scenario's metric and its delta against the
// base case. The applied adjustments are echoed for traceability.
type ScenarioOutcome struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Metric      float64               `json:"metric"`
	VsBase      float64               `json:"vs_base"`
	VsBasePct   float64               `json:"vs_base_pct"`
	Adjustments map[string]Adjustment `json:"adjustments"`
	Result      finance.MetricResult  `json:"result"`
}

// ScenarioComparison lists scenario outcomes in input order; unlike the
// tornado ranking this mode never re-sorts.
type ScenarioComparison struct {
	AnalysisID  string               `json:"analysis_id"`
	BaseMetric  float64              `json:"base_metric"`
	Base        finance.MetricResult `json:"base_result"`
	Scenarios   []ScenarioOutcome    `json:"scenarios"`
	Evaluations int                  `json:"evaluations"`
}

// CompareScenarios evaluates the base case and each named scenario's adjusted
// assumption set.
func CompareScenarios(eval finance.MetricEvaluator, base finance.Assumptions, scenarios []Scenario) ScenarioComparison {
	baseRes := eval.Evaluate(base)
	baseMetric := baseRes.Metric

	outcomes := make([]ScenarioOutcome, len(scenarios))
	for i, sc := range scenarios {
		res := eval.Evaluate(sc.Apply(base))

		vsBase := res.Metric - baseMetric
		vsBasePct := 0.0
		if baseMetric != 0 {
			vsBasePct = vsBase / math.Abs(baseMetric) * 100
		}

		outcomes[i] = ScenarioOutcome{
			Name:        sc.Name,
			Description: sc.Description,
			Metric:      res.Metric,
			VsBase:      vsBase,
			VsBasePct:   vsBasePct,
			Adjustments: sc.Adjustments,
			Result:      res,
		}
	}

	return ScenarioComparison{
		AnalysisID:  uuid.NewString(),
		BaseMetric:  baseMetric,
		Base:        baseRes,
		Scenarios:   outcomes,
		Evaluations: 1 + len(scenarios),
	}
}
