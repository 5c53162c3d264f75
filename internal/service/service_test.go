package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealrisk-mcp/internal/analysis"
	"dealrisk-mcp/internal/templates"
)

func newTestService() *Service {
	return New(templates.NewStore(""), analysis.NewDefaults())
}

func TestService_TemplateHydration(t *testing.T) {
	svc := newTestService()

	// No explicit inputs: the multifamily template fills both base and vars.
	res, err := svc.Tornado(TornadoRequest{AnalysisRequest: AnalysisRequest{PropertyType: "multifamily"}})
	require.NoError(t, err)

	tr := res.Result.(analysis.TornadoResult)
	assert.Len(t, tr.Variables, 5)
	assert.NotZero(t, tr.BaseMetric)
	assert.Equal(t, "multifamily", res.PropertyType)
	assert.Equal(t, "cash_on_cash", res.MetricType)
}

func TestService_ExplicitInputsWinOverTemplate(t *testing.T) {
	svc := newTestService()

	req := TornadoRequest{AnalysisRequest: AnalysisRequest{
		PropertyType: "multifamily",
		BaseInputs:   map[string]float64{"purchase_price": 500000, "noi": 35000, "interest_rate": 0.06},
		Variables: []analysis.Variable{
			{Name: "interest_rate", Base: 0.06, Min: 0.04, Max: 0.08},
		},
	}}

	res, err := svc.Tornado(req)
	require.NoError(t, err)

	tr := res.Result.(analysis.TornadoResult)
	require.Len(t, tr.Variables, 1)
	assert.Equal(t, "interest_rate", tr.Variables[0].Variable)
}

func TestService_Errors(t *testing.T) {
	svc := newTestService()

	t.Run("no base and no template", func(t *testing.T) {
		_, err := svc.Tornado(TornadoRequest{AnalysisRequest: AnalysisRequest{PropertyType: ""}})
		assert.Error(t, err)
	})

	t.Run("unknown property type", func(t *testing.T) {
		_, err := svc.Tornado(TornadoRequest{AnalysisRequest: AnalysisRequest{PropertyType: "hotel"}})
		assert.Error(t, err)
	})

	t.Run("unknown metric", func(t *testing.T) {
		_, err := svc.Tornado(TornadoRequest{AnalysisRequest: AnalysisRequest{PropertyType: "multifamily", MetricType: "roi"}})
		assert.Error(t, err)
	})

	t.Run("invalid variable", func(t *testing.T) {
		_, err := svc.Tornado(TornadoRequest{AnalysisRequest: AnalysisRequest{
			PropertyType: "multifamily",
			Variables:    []analysis.Variable{{Name: "x", Base: 5, Min: 10, Max: 0}},
		}})
		assert.Error(t, err)
	})
}

func TestService_Matrix(t *testing.T) {
	svc := newTestService()

	res, err := svc.Matrix(MatrixRequest{
		AnalysisRequest: AnalysisRequest{PropertyType: "multifamily"},
		XVariable:       "vacancy_rate",
		YVariable:       "interest_rate",
		Steps:           5,
	})
	require.NoError(t, err)

	hm := res.Result.(analysis.HeatMapResult)
	assert.Len(t, hm.Matrix, 5)
	assert.Equal(t, "vacancy_rate", hm.XVariable)

	t.Run("default steps from config", func(t *testing.T) {
		res, err := svc.Matrix(MatrixRequest{
			AnalysisRequest: AnalysisRequest{PropertyType: "multifamily"},
			XVariable:       "vacancy_rate",
			YVariable:       "interest_rate",
		})
		require.NoError(t, err)
		assert.Len(t, res.Result.(analysis.HeatMapResult).Matrix, analysis.NewDefaults().HeatMapSteps)
	})

	t.Run("same axis rejected", func(t *testing.T) {
		_, err := svc.Matrix(MatrixRequest{
			AnalysisRequest: AnalysisRequest{PropertyType: "multifamily"},
			XVariable:       "vacancy_rate",
			YVariable:       "vacancy_rate",
		})
		assert.Error(t, err)
	})

	t.Run("unknown axis rejected", func(t *testing.T) {
		_, err := svc.Matrix(MatrixRequest{
			AnalysisRequest: AnalysisRequest{PropertyType: "multifamily"},
			XVariable:       "vacancy_rate",
			YVariable:       "weather",
		})
		assert.Error(t, err)
	})
}

func TestService_MonteCarlo(t *testing.T) {
	svc := newTestService()
	seed := int64(42)

	res, err := svc.MonteCarlo(MonteCarloRequest{
		AnalysisRequest: AnalysisRequest{PropertyType: "single_family"},
		Iterations:      1000,
		Seed:            &seed,
	})
	require.NoError(t, err)

	mc := res.Result.(analysis.MonteCarloResult)
	assert.Equal(t, 1000, mc.Iterations)
	assert.Equal(t, int64(42), mc.Seed)
	assert.Equal(t, analysis.DistributionNormal, mc.Distribution)

	t.Run("unknown distribution rejected", func(t *testing.T) {
		_, err := svc.MonteCarlo(MonteCarloRequest{
			AnalysisRequest: AnalysisRequest{PropertyType: "single_family"},
			Distribution:    "cauchy",
		})
		assert.Error(t, err)
	})
}

func TestService_CompareScenarios(t *testing.T) {
	svc := newTestService()
	factor := 0.9

	res, err := svc.CompareScenarios(ScenariosRequest{
		AnalysisRequest: AnalysisRequest{PropertyType: "commercial"},
		Scenarios: []analysis.Scenario{
			{Name: "Soft market", Adjustments: map[string]analysis.Adjustment{
				"gross_rent_monthly": {Factor: &factor},
			}},
		},
	})
	require.NoError(t, err)

	sc := res.Result.(analysis.ScenarioComparison)
	require.Len(t, sc.Scenarios, 1)
	assert.Less(t, sc.Scenarios[0].Metric, sc.BaseMetric)

	t.Run("empty scenario list rejected", func(t *testing.T) {
		_, err := svc.CompareScenarios(ScenariosRequest{
			AnalysisRequest: AnalysisRequest{PropertyType: "commercial"},
		})
		assert.Error(t, err)
	})
}

func TestService_BreakEven(t *testing.T) {
	svc := newTestService()

	res, err := svc.BreakEven(BreakEvenRequest{
		AnalysisRequest: AnalysisRequest{PropertyType: "multifamily"},
		Kind:            "occupancy",
	})
	require.NoError(t, err)

	be := res.Result.(analysis.BreakEvenResult)
	assert.Equal(t, analysis.BreakEvenOccupancy, be.Kind)

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := svc.BreakEven(BreakEvenRequest{
			AnalysisRequest: AnalysisRequest{PropertyType: "multifamily"},
			Kind:            "equity",
		})
		assert.Error(t, err)
	})
}

func TestService_Templates(t *testing.T) {
	svc := newTestService()
	assert.Len(t, svc.Templates(), 4)
}
