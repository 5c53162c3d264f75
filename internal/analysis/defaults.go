package analysis

// Defaults carries the tunable knobs shared by the analysis modes. A value is
// passed explicitly into each call so parallel requests cannot interfere
// through shared state.
type Defaults struct {
	Iterations    int          // Monte Carlo iterations when the request omits them
	MaxIterations int          // hard cap to bound worst-case latency
	HeatMapSteps  int          // grid resolution when the request omits steps
	HistogramBins int          // Monte Carlo outcome histogram resolution
	Distribution  Distribution // sampling shape when the request omits one
}

// NewDefaults returns the stock configuration.
func NewDefaults() Defaults {
	return Defaults{
		Iterations:    10000,
		MaxIterations: 100000,
		HeatMapSteps:  7,
		HistogramBins: 25,
		Distribution:  DistributionNormal,
	}
}
