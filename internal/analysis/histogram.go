package analysis

// HistogramBin is one partition of the simulated outcome range.
type HistogramBin struct {
	BinStart  float64 `json:"bin_start"`
	BinEnd    float64 `json:"bin_end"`
	BinCenter float64 `json:"bin_center"`
	Count     int     `json:"count"`
}

// buildHistogram partitions [min(results), max(results)] into bins equal-width
// buckets. A degenerate (zero-width) range collapses into a single bin holding
// every outcome.
func buildHistogram(results []float64, bins int) []HistogramBin {
	if len(results) == 0 || bins < 1 {
		return nil
	}

	lo, hi := results[0], results[0]
	for _, v := range results {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		return []HistogramBin{{BinStart: lo, BinEnd: hi, BinCenter: lo, Count: len(results)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		start := lo + float64(i)*width
		out[i] = HistogramBin{
			BinStart:  start,
			BinEnd:    start + width,
			BinCenter: start + width/2,
		}
	}

	for _, v := range results {
		idx := int((v - lo) / width)
		if idx >= bins { // max value lands in the last bin
			idx = bins - 1
		}
		out[idx].Count++
	}

	return out
}
