package analysis

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dealrisk-mcp/internal/finance"
)

// mcBatches is fixed (not CPU-derived) so a seeded run reproduces the exact
// same samples on any machine.
const mcBatches = 16

// MonteCarloRequest carries the mode-specific parameters. Zero values fall
// back to the Defaults passed into MonteCarlo.
type MonteCarloRequest struct {
	Iterations   int          `json:"iterations,omitempty"`
	Distribution Distribution `json:"distribution,omitempty"`
	Seed         *int64       `json:"seed,omitempty"`
	Bins         int          `json:"bins,omitempty"`
}

// MonteCarloSummary is the distributional summary of the simulated outcomes.
type MonteCarloSummary struct {
	Mean                   float64 `json:"mean"`
	Median                 float64 `json:"median"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	P5                     float64 `json:"percentile_5"`
	P25                    float64 `json:"percentile_25"`
	P50                    float64 `json:"percentile_50"`
	P75                    float64 `json:"percentile_75"`
	P95                    float64 `json:"percentile_95"`
}

// RiskMetrics are the downside figures derived from the outcome distribution.
type RiskMetrics struct {
	ProbabilityOfLoss float64 `json:"probability_of_loss"` // % of iterations below 0
	ValueAtRisk95     float64 `json:"value_at_risk_95"`    // 5th percentile outcome
	ExpectedShortfall float64 `json:"expected_shortfall"`  // mean of the tail at or below VaR95
}

// MonteCarloResult is the typed report for one simulation run.
type MonteCarloResult struct {
	AnalysisID   string            `json:"analysis_id"`
	Iterations   int               `json:"iterations"`
	Distribution Distribution      `json:"distribution"`
	Seed         int64             `json:"seed"`
	BaseMetric   float64           `json:"base_metric"`
	Summary      MonteCarloSummary `json:"summary"`
	Risk         RiskMetrics       `json:"risk"`
	Histogram    []HistogramBin    `json:"histogram"`
	Evaluations  int               `json:"evaluations"`
}

// MonteCarlo simulates the metric distribution by drawing one sample per
// variable per iteration and re-evaluating the metric on the perturbed set.
//
// Iterations run in a fixed number of parallel batches; batch b derives its
// RNG from seed+b, and every batch writes a disjoint segment of the results
// slice, so a fixed seed reproduces results exactly regardless of scheduling.
func MonteCarlo(eval finance.MetricEvaluator, base finance.Assumptions, vars []Variable, req MonteCarloRequest, defaults Defaults) MonteCarloResult {
	iterations := req.Iterations
	if iterations <= 0 {
		iterations = defaults.Iterations
	}
	if defaults.MaxIterations > 0 && iterations > defaults.MaxIterations {
		iterations = defaults.MaxIterations
	}

	dist := req.Distribution
	if dist == "" {
		dist = defaults.Distribution
	}

	bins := req.Bins
	if bins <= 0 {
		bins = defaults.HistogramBins
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	results := make([]float64, iterations)

	batchSize := iterations / mcBatches
	var g errgroup.Group
	for b := 0; b < mcBatches; b++ {
		start := b * batchSize
		end := start + batchSize
		if b == mcBatches-1 {
			end = iterations
		}
		s := newSampler(seed + int64(b))
		g.Go(func() error {
			for i := start; i < end; i++ {
				perturbed := base.Clone()
				for _, v := range vars {
					perturbed[v.Name] = s.sample(v, dist)
				}
				results[i] = eval.Evaluate(perturbed).Metric
			}
			return nil
		})
	}
	_ = g.Wait() // batches cannot fail, evaluators are pure

	sorted := make([]float64, len(results))
	copy(sorted, results)
	slices.Sort(sorted)

	summary := MonteCarloSummary{
		Mean:   Mean(results),
		Median: Median(results),
		StdDev: StdDev(results),
		P5:     PercentileSorted(sorted, 5),
		P25:    PercentileSorted(sorted, 25),
		P50:    PercentileSorted(sorted, 50),
		P75:    PercentileSorted(sorted, 75),
		P95:    PercentileSorted(sorted, 95),
	}
	if summary.Mean != 0 {
		summary.CoefficientOfVariation = summary.StdDev / summary.Mean * 100
	}

	risk := RiskMetrics{ValueAtRisk95: summary.P5}
	losses := 0
	tailSum, tailCount := 0.0, 0
	for _, v := range results {
		if v < 0 {
			losses++
		}
		if v <= summary.P5 {
			tailSum += v
			tailCount++
		}
	}
	risk.ProbabilityOfLoss = float64(losses) / float64(iterations) * 100
	if tailCount > 0 {
		risk.ExpectedShortfall = tailSum / float64(tailCount)
	}

	return MonteCarloResult{
		AnalysisID:   uuid.NewString(),
		Iterations:   iterations,
		Distribution: dist,
		Seed:         seed,
		BaseMetric:   eval.Evaluate(base).Metric,
		Summary:      summary,
		Risk:         risk,
		Histogram:    buildHistogram(results, bins),
		Evaluations:  iterations + 1,
	}
}
