package search

import "math"

// Expected returns the expected Probes of a pass at prefix length k.
//
// For RandomPair this is the mean number of draws from 16^k equally likely
// prefixes until one repeats, approximated as sqrt(pi*N/2) + 2/3. For
// FixedTarget every draw matches with probability 16^-k, so the mean is
// 16^k.
func Expected(mode Mode, k int) float64 {
	space := math.Pow(16, float64(k))
	switch mode {
	case RandomPair:
		return math.Sqrt(math.Pi*space/2) + 2.0/3
	case FixedTarget:
		return space
	default:
		return math.NaN()
	}
}

// MeanProbes averages Probes per prefix length over several runs. Element
// k-1 of the result is the mean for prefix length k. Lengths no run reached
// are NaN.
func MeanProbes(runs [][]Result) []float64 {
	var sums []float64
	var counts []int
	for _, run := range runs {
		for _, r := range run {
			if r.Prefix < 1 {
				continue
			}
			for len(sums) < r.Prefix {
				sums = append(sums, 0)
				counts = append(counts, 0)
			}
			sums[r.Prefix-1] += float64(r.Probes)
			counts[r.Prefix-1]++
		}
	}
	for i := range sums {
		if counts[i] == 0 {
			sums[i] = math.NaN()
			continue
		}
		sums[i] /= float64(counts[i])
	}
	return sums
}
