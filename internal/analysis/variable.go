package analysis

import (
	"fmt"

	"dealrisk-mcp/internal/finance"
)

// Distribution identifies the sampling shape implied by a variable's range.
type Distribution string

const (
	DistributionNormal     Distribution = "normal"
	DistributionUniform    Distribution = "uniform"
	DistributionTriangular Distribution = "triangular"
)

// ParseDistribution validates a wire-level distribution string. Empty input
// falls back to the provided default.
func ParseDistribution(s string, fallback Distribution) (Distribution, error) {
	switch Distribution(s) {
	case DistributionNormal, DistributionUniform, DistributionTriangular:
		return Distribution(s), nil
	case "":
		return fallback, nil
	default:
		return "", fmt.Errorf("unknown distribution %q (expected normal, uniform or triangular)", s)
	}
}

// Variable declares one assumption that is allowed to vary: its base value,
// its plausible range, and (for Monte Carlo) an optional per-variable
// distribution override. Variables are immutable during analysis.
type Variable struct {
	Name         string       `json:"name" yaml:"name"`
	Label        string       `json:"label,omitempty" yaml:"label,omitempty"`
	Base         float64      `json:"base_value" yaml:"base_value"`
	Min          float64      `json:"min" yaml:"min"`
	Max          float64      `json:"max" yaml:"max"`
	Unit         string       `json:"unit,omitempty" yaml:"unit,omitempty"`
	Distribution Distribution `json:"distribution,omitempty" yaml:"distribution,omitempty"`
}

// Validate enforces min <= base <= max.
func (v Variable) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("variable name is required")
	}
	if v.Min > v.Max {
		return fmt.Errorf("variable %q: min %v exceeds max %v", v.Name, v.Min, v.Max)
	}
	if v.Base < v.Min || v.Base > v.Max {
		return fmt.Errorf("variable %q: base %v outside [%v, %v]", v.Name, v.Base, v.Min, v.Max)
	}
	return nil
}

// Clamp bounds a value to the variable's declared range.
func (v Variable) Clamp(x float64) float64 {
	if x < v.Min {
		return v.Min
	}
	if x > v.Max {
		return v.Max
	}
	return x
}

// ValidateVariables checks a full variable list and rejects duplicate names.
func ValidateVariables(vars []Variable) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if err := v.Validate(); err != nil {
			return err
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate variable %q", v.Name)
		}
		seen[v.Name] = true
	}
	return nil
}

// Adjustment shifts one assumption, either by an additive delta or a
// multiplicative factor. Exactly one of the two should be set.
type Adjustment struct {
	Delta  *float64 `json:"delta,omitempty"`
	Factor *float64 `json:"factor,omitempty"`
}

func (adj Adjustment) apply(old float64) float64 {
	if adj.Delta != nil {
		return old + *adj.Delta
	}
	if adj.Factor != nil {
		return old * *adj.Factor
	}
	return old
}

// Scenario is a named narrative: a set of discrete adjustments applied
// together ("Recession", "Optimistic").
type Scenario struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Adjustments map[string]Adjustment `json:"adjustments"`
}

// Apply produces a fresh assumption set with the scenario's adjustments
// applied. Keys unknown to the evaluator are applied verbatim; the evaluator
// decides relevance. The base set is never touched.
func (s Scenario) Apply(base finance.Assumptions) finance.Assumptions {
	out := base.Clone()
	for name, adj := range s.Adjustments {
		out[name] = adj.apply(out[name])
	}
	return out
}
