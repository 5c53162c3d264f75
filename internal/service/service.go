package service

import (
	"fmt"

	"dealrisk-mcp/internal/analysis"
	"dealrisk-mcp/internal/finance"
	"dealrisk-mcp/internal/templates"
)

// Service resolves analysis requests against the template store and runs the
// engine. Both the MCP tool surface and the HTTP API sit on top of it.
type Service struct {
	templates *templates.Store
	defaults  analysis.Defaults
}

func New(store *templates.Store, defaults analysis.Defaults) *Service {
	return &Service{templates: store, defaults: defaults}
}

// AnalysisRequest is the request shape shared by every analysis mode.
type AnalysisRequest struct {
	BaseInputs   map[string]float64  `json:"base_inputs"`
	PropertyType string              `json:"property_type"`
	MetricType   string              `json:"metric_type"`
	Variables    []analysis.Variable `json:"variables"`
}

type TornadoRequest struct {
	AnalysisRequest
}

type MatrixRequest struct {
	AnalysisRequest
	XVariable string `json:"x_variable"`
	YVariable string `json:"y_variable"`
	Steps     int    `json:"steps"`
}

type MonteCarloRequest struct {
	AnalysisRequest
	Iterations   int    `json:"iterations"`
	Distribution string `json:"distribution"`
	Seed         *int64 `json:"seed"`
	Bins         int    `json:"bins"`
}

type ScenariosRequest struct {
	AnalysisRequest
	Scenarios []analysis.Scenario `json:"scenarios"`
}

type BreakEvenRequest struct {
	AnalysisRequest
	Kind      string  `json:"kind"`
	RentKey   string  `json:"rent_key"`
	TargetIRR float64 `json:"target_irr"`
	MinIRR    float64 `json:"min_irr"`
}

// Response wraps an engine result with the request context so a transcript
// stays self-describing.
type Response struct {
	PropertyType string      `json:"property_type"`
	MetricType   string      `json:"metric_type"`
	Result       interface{} `json:"result"`
}

// preparedRun is the resolved input for one analysis call: the evaluator, the
// base assumption set and the variable model, hydrated from the request or
// the property template.
type preparedRun struct {
	eval         finance.MetricEvaluator
	base         finance.Assumptions
	vars         []analysis.Variable
	propertyType string
	metricType   finance.MetricType
}

func (s *Service) prepare(req AnalysisRequest) (*preparedRun, error) {
	metric, err := finance.ParseMetricType(req.MetricType)
	if err != nil {
		return nil, err
	}

	eval, err := finance.NewEvaluator(req.PropertyType, metric)
	if err != nil {
		return nil, err
	}

	base := finance.Assumptions(req.BaseInputs)
	vars := req.Variables

	if tpl, ok := s.templates.Get(req.PropertyType); ok {
		if len(base) == 0 {
			base = tpl.BaseInputs.Clone()
		}
		if len(vars) == 0 {
			vars = tpl.Variables
		}
	}

	if len(base) == 0 {
		return nil, fmt.Errorf("base_inputs are required (no template exists for property type %q)", req.PropertyType)
	}
	if err := analysis.ValidateVariables(vars); err != nil {
		return nil, err
	}

	return &preparedRun{
		eval:         eval,
		base:         base,
		vars:         vars,
		propertyType: req.PropertyType,
		metricType:   metric,
	}, nil
}

// variable resolves a variable by name from the run's model.
func (r *preparedRun) variable(name string) (analysis.Variable, error) {
	for _, v := range r.vars {
		if v.Name == name {
			return v, nil
		}
	}
	return analysis.Variable{}, fmt.Errorf("variable %q is not declared in this request or its template", name)
}

func (r *preparedRun) respond(result interface{}) Response {
	return Response{
		PropertyType: r.propertyType,
		MetricType:   string(r.metricType),
		Result:       result,
	}
}

// Templates lists the property templates in stable order.
func (s *Service) Templates() []templates.Template {
	return s.templates.List()
}

// Tornado runs the one-way sensitivity ranking.
func (s *Service) Tornado(req TornadoRequest) (Response, error) {
	run, err := s.prepare(req.AnalysisRequest)
	if err != nil {
		return Response{}, err
	}
	if len(run.vars) == 0 {
		return Response{}, fmt.Errorf("no variables to analyze: supply 'variables' or use a property type with a template")
	}
	return run.respond(analysis.Tornado(run.eval, run.base, run.vars)), nil
}

// Matrix runs the two-way sensitivity grid.
func (s *Service) Matrix(req MatrixRequest) (Response, error) {
	run, err := s.prepare(req.AnalysisRequest)
	if err != nil {
		return Response{}, err
	}

	x, err := run.variable(req.XVariable)
	if err != nil {
		return Response{}, err
	}
	y, err := run.variable(req.YVariable)
	if err != nil {
		return Response{}, err
	}
	if x.Name == y.Name {
		return Response{}, fmt.Errorf("x_variable and y_variable must differ")
	}

	steps := req.Steps
	if steps <= 0 {
		steps = s.defaults.HeatMapSteps
	}

	return run.respond(analysis.HeatMap(run.eval, run.base, x, y, steps)), nil
}

// MonteCarlo runs the distributional simulation.
func (s *Service) MonteCarlo(req MonteCarloRequest) (Response, error) {
	run, err := s.prepare(req.AnalysisRequest)
	if err != nil {
		return Response{}, err
	}
	if len(run.vars) == 0 {
		return Response{}, fmt.Errorf("no variables to simulate: supply 'variables' or use a property type with a template")
	}

	dist, err := analysis.ParseDistribution(req.Distribution, s.defaults.Distribution)
	if err != nil {
		return Response{}, err
	}

	res := analysis.MonteCarlo(run.eval, run.base, run.vars, analysis.MonteCarloRequest{
		Iterations:   req.Iterations,
		Distribution: dist,
		Seed:         req.Seed,
		Bins:         req.Bins,
	}, s.defaults)
	return run.respond(res), nil
}

// CompareScenarios evaluates named what-if narratives against the base case.
func (s *Service) CompareScenarios(req ScenariosRequest) (Response, error) {
	run, err := s.prepare(req.AnalysisRequest)
	if err != nil {
		return Response{}, err
	}
	if len(req.Scenarios) == 0 {
		return Response{}, fmt.Errorf("at least one scenario is required")
	}
	return run.respond(analysis.CompareScenarios(run.eval, run.base, req.Scenarios)), nil
}

// BreakEven runs one boundary search.
func (s *Service) BreakEven(req BreakEvenRequest) (Response, error) {
	run, err := s.prepare(req.AnalysisRequest)
	if err != nil {
		return Response{}, err
	}

	res, err := analysis.BreakEven(run.eval, run.base, analysis.BreakEvenRequest{
		Kind:      analysis.BreakEvenKind(req.Kind),
		RentKey:   req.RentKey,
		TargetIRR: req.TargetIRR,
		MinIRR:    req.MinIRR,
	})
	if err != nil {
		return Response{}, err
	}
	return run.respond(res), nil
}
