package analysis

import (
	"math"
	"slices"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Expected 2.5, got %f", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Expected 0 for empty input, got %f", got)
	}
}

func TestMedian(t *testing.T) {
	if got := Median([]float64{9, 1, 5}); got != 5 {
		t.Errorf("Expected 5 for odd count, got %f", got)
	}
	// Even counts truncate to the upper middle, matching PercentileSorted.
	if got := Median([]float64{4, 1, 3, 2}); got != 3 {
		t.Errorf("Expected 3 for even count, got %f", got)
	}
	if got := Median(nil); got != 0 {
		t.Errorf("Expected 0 for empty input, got %f", got)
	}
}

func TestMedian_MatchesP50(t *testing.T) {
	// The Monte Carlo summary reports both figures; they must agree for odd
	// and even counts alike.
	for _, values := range [][]float64{
		{7, 3, 9},
		{4, 1, 3, 2},
		{0.9, 0.1, 0.5, 0.7, 0.3, 0.2},
	} {
		sorted := make([]float64, len(values))
		copy(sorted, values)
		slices.Sort(sorted)

		if m, p := Median(values), PercentileSorted(sorted, 50); m != p {
			t.Errorf("Median %f and P50 %f disagree for %v", m, p, values)
		}
	}
}

func TestStdDev(t *testing.T) {
	// Population standard deviation of the classic 8-value set is exactly 2.
	got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2) > 1e-9 {
		t.Errorf("Expected 2, got %f", got)
	}
	if got := StdDev([]float64{42}); got != 0 {
		t.Errorf("Expected 0 for a single value, got %f", got)
	}
}

func TestPercentileSorted(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	if got := PercentileSorted(sorted, 10); got != 2 {
		t.Errorf("Expected P10 to be 2, got %f", got)
	}
	if got := PercentileSorted(sorted, 50); got != 6 {
		t.Errorf("Expected P50 to be 6, got %f", got)
	}
	if got := PercentileSorted(sorted, 90); got != 10 {
		t.Errorf("Expected P90 to be 10, got %f", got)
	}
	if got := PercentileSorted(sorted, 100); got != 10 {
		t.Errorf("Expected P100 clamped to the last value, got %f", got)
	}
	if got := PercentileSorted(nil, 50); got != 0 {
		t.Errorf("Expected 0 for empty input, got %f", got)
	}
}
