package helper

import "sort"

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mode returns the most frequent value. On a tie the first value reaching
// the highest count wins, matching the Counter fallback of the reporting
// screen this replaces.
func Mode(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[float64]int, len(values))
	best := values[0]
	bestCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
