package analysis

import (
	"math"
	"math/rand"
)

// maxResampleAttempts bounds truncated-normal rejection sampling before
// falling back to a clamp.
const maxResampleAttempts = 100

// sampler draws variable values from their implied distributions. Each
// sampler owns its rand.Rand, so concurrent batches never share RNG state.
type sampler struct {
	rng *rand.Rand
}

func newSampler(seed int64) *sampler {
	return &sampler{rng: rand.New(rand.NewSource(seed))}
}

// sample draws one value for v. The variable's own distribution wins over the
// run-wide kind. Degenerate ranges collapse to the base value.
func (s *sampler) sample(v Variable, kind Distribution) float64 {
	if v.Max <= v.Min {
		return v.Base
	}

	dist := kind
	if v.Distribution != "" {
		dist = v.Distribution
	}

	switch dist {
	case DistributionUniform:
		return v.Min + s.rng.Float64()*(v.Max-v.Min)
	case DistributionTriangular:
		return s.triangular(v.Min, v.Base, v.Max)
	default:
		return s.truncatedNormal(v)
	}
}

// truncatedNormal samples N(base, (max-min)/4) rejected into [min, max].
func (s *sampler) truncatedNormal(v Variable) float64 {
	std := (v.Max - v.Min) / 4.0
	for i := 0; i < maxResampleAttempts; i++ {
		x := v.Base + s.rng.NormFloat64()*std
		if x >= v.Min && x <= v.Max {
			return x
		}
	}
	return v.Clamp(v.Base)
}

// triangular samples via the inverse CDF with the mode at the base value.
func (s *sampler) triangular(min, mode, max float64) float64 {
	u := s.rng.Float64()
	cut := (mode - min) / (max - min)
	if u < cut {
		return min + math.Sqrt(u*(max-min)*(mode-min))
	}
	return max - math.Sqrt((1-u)*(max-min)*(max-mode))
}
