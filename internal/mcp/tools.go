package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
)

func (s *Server) buildTools() []*tool {
	return []*tool{
		{
			Name:   "list_property_templates",
			handle: s.handleListTemplates,
			Description: "List the available property templates (multifamily, single_family, commercial, fix_and_flip): " +
				"typical base assumptions plus the variable ranges worth sweeping. " +
				"Guidance: use a template's base_inputs and variables as the starting point for any analysis tool, then override what the user knows about their specific deal.",
			Schema: objectSchema(map[string]*jsonschema.Schema{}),
		},
		{
			Name:   "run_tornado_analysis",
			handle: s.handleTornado,
			Description: "One-way sensitivity analysis (tornado ranking). Each variable is pushed to its min and max independently while everything else stays at base, " +
				"isolating its marginal influence on the chosen return metric. Variables come back ranked by impact, widest swing first.\n\n" +
				"Use this to answer 'which assumption matters most?'. Omit 'variables' to sweep the property template's stock ranges.",
			Schema: objectSchema(analysisProperties(map[string]*jsonschema.Schema{}), "property_type"),
		},
		{
			Name:   "run_matrix_analysis",
			handle: s.handleMatrix,
			Description: "Two-way sensitivity analysis (heat map). Sweeps two variables simultaneously across their ranges and evaluates the metric at every grid point. " +
				"The matrix is row-major with the Y variable on rows. Use this to answer 'where is the optimum region?' for a pair of assumptions (e.g. rent vs. exit cap).",
			Schema: objectSchema(analysisProperties(map[string]*jsonschema.Schema{
				"x_variable": {Type: "string", Description: "Variable name for the matrix columns"},
				"y_variable": {Type: "string", Description: "Variable name for the matrix rows"},
				"steps":      {Type: "integer", Description: "Grid resolution per axis (default 7, both endpoints included)"},
			}), "property_type", "x_variable", "y_variable"),
		},
		{
			Name:   "run_monte_carlo",
			handle: s.handleMonteCarlo,
			Description: "Monte Carlo simulation of the return metric distribution. Draws one random sample per variable per iteration " +
				"(normal truncated to the declared range, uniform, or triangular with the mode at base) and reports mean/median/std, " +
				"percentiles, probability of loss, 95% Value-at-Risk, expected shortfall and an outcome histogram.\n\n" +
				"STRICT GUARDRAIL: NEVER estimate probabilities or percentiles yourself if this tool fails; report the error instead. " +
				"Pass 'seed' only to reproduce a previous run.",
			Schema: objectSchema(analysisProperties(map[string]*jsonschema.Schema{
				"iterations":   {Type: "integer", Description: "Simulation iterations (default 10000)"},
				"distribution": {Type: "string", Enum: []interface{}{"normal", "uniform", "triangular"}, Description: "Sampling distribution applied to all variables unless a variable overrides it"},
				"seed":         {Type: "integer", Description: "Optional RNG seed for reproducible runs"},
				"bins":         {Type: "integer", Description: "Histogram bin count (default 25)"},
			}), "property_type"),
		},
		{
			Name:   "compare_scenarios",
			handle: s.handleCompareScenarios,
			Description: "Evaluate named what-if scenarios ('Optimistic', 'Recession', ...) against the base case. " +
				"Each scenario adjusts assumptions by an additive delta or a multiplicative factor; output preserves input order and echoes the applied adjustments. " +
				"Unlike the tornado ranking this mode is about named narratives, not automatic ranking.",
			Schema: objectSchema(analysisProperties(map[string]*jsonschema.Schema{
				"scenarios": {
					Type:  "array",
					Items: scenarioSchema(),
				},
			}), "property_type", "scenarios"),
		},
		{
			Name:   "find_break_even",
			handle: s.handleBreakEven,
			Description: "Root-finding for a deal's break-even boundary. Kinds:\n" +
				"- 'occupancy': lowest occupancy where NOI still covers debt service (search 30%-100%)\n" +
				"- 'rent': rent level reaching 'target_irr' (search 0.5x-2x current rent)\n" +
				"- 'exit_cap': highest exit cap rate still clearing 'min_irr' (search 3%-15%; higher cap = lower IRR)\n" +
				"- 'payback': fractional year where cumulative operating cash flow turns positive\n\n" +
				"An infeasible search (no boundary in range) is a meaningful answer, reported as feasible=false, not an error. " +
				"Feasible results include the safety margin: how much cushion exists before the deal breaks.",
			Schema: objectSchema(analysisProperties(map[string]*jsonschema.Schema{
				"kind":       {Type: "string", Enum: []interface{}{"occupancy", "rent", "exit_cap", "payback"}},
				"rent_key":   {Type: "string", Description: "Assumption swept for 'rent' (default gross_rent_monthly)"},
				"target_irr": {Type: "number", Description: "IRR target for 'rent' (e.g. 0.15)"},
				"min_irr":    {Type: "number", Description: "Minimum IRR for 'exit_cap' (e.g. 0.12)"},
			}), "property_type", "kind"),
		},
	}
}

// analysisProperties merges the request fields shared by every analysis tool
// with the mode-specific extras.
func analysisProperties(extra map[string]*jsonschema.Schema) map[string]*jsonschema.Schema {
	props := map[string]*jsonschema.Schema{
		"base_inputs": {
			Type:                 "object",
			Description:          "Named numeric deal assumptions (purchase_price, interest_rate, ...). Omit to use the property template's base inputs.",
			AdditionalProperties: &jsonschema.Schema{Type: "number"},
		},
		"property_type": {
			Type: "string",
			Enum: []interface{}{"multifamily", "single_family", "commercial", "fix_and_flip"},
		},
		"metric_type": {
			Type:        "string",
			Enum:        []interface{}{"cash_on_cash", "cap_rate", "dscr", "irr"},
			Description: "Outcome metric to analyze (default cash_on_cash)",
		},
		"variables": {
			Type:        "array",
			Description: "Variables allowed to vary. Omit to use the property template's list.",
			Items:       variableSchema(),
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func variableSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":         {Type: "string"},
			"label":        {Type: "string"},
			"base_value":   {Type: "number"},
			"min":          {Type: "number"},
			"max":          {Type: "number"},
			"unit":         {Type: "string"},
			"distribution": {Type: "string", Enum: []interface{}{"normal", "uniform", "triangular"}},
		},
		Required: []string{"name", "base_value", "min", "max"},
	}
}

func scenarioSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":        {Type: "string"},
			"description": {Type: "string"},
			"adjustments": {
				Type:        "object",
				Description: "Map of assumption name to an adjustment: {\"delta\": x} adds, {\"factor\": x} multiplies.",
				AdditionalProperties: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"delta":  {Type: "number"},
						"factor": {Type: "number"},
					},
				},
			},
		},
		Required: []string{"name", "adjustments"},
	}
}

func objectSchema(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}
