package stat

import "sort"

// Summary is the set of descriptive statistics of a sequence of
// observations.
type Summary struct {
	N         int
	Min, Max  float64
	Mean      float64
	Mode      float64
	ModeCount int // number of occurrences of Mode
	Median    float64
	Q1, Q2    float64 // Q2 equals Median
	Q3        float64
}

// Calculate computes mean, mode, median and the first and third quartile
// of observations.
//
// The mode is the value occurring most often; on ties the smallest such
// value wins. Quartiles are the medians of the lower half s[:n/2] and the
// upper half s[n/2:] of the sorted observations s. For odd n the middle
// element thus belongs to the upper half only.
func Calculate(observations []float64) (Summary, error) {
	if err := checkObservations(observations); err != nil {
		return Summary{}, err
	}

	s := make([]float64, len(observations))
	copy(s, observations)
	sort.Float64s(s)
	n := len(s)

	sum := 0.0
	for _, x := range s {
		sum += x
	}

	mode, modeCount := modeOf(s)
	median := Median(s)

	var b Summary
	b.N = n
	b.Min, b.Max = s[0], s[n-1]
	b.Mean = sum / float64(n)
	b.Mode, b.ModeCount = mode, modeCount
	b.Median = median
	b.Q1 = quartile(s[:n/2], median)
	b.Q2 = median
	b.Q3 = quartile(s[n/2:], median)
	return b, nil
}

// Median of the sorted, non-empty slice d.
func Median(d []float64) float64 {
	n := len(d)
	if n%2 == 1 {
		return d[n/2]
	}
	return (d[n/2-1] + d[n/2]) / 2
}

// quartile is the median of half. A single observation has an empty
// lower half, its quartile is the overall median.
func quartile(half []float64, median float64) float64 {
	if len(half) == 0 {
		return median
	}
	return Median(half)
}

// modeOf scans the sorted slice s run by run and keeps the first run of
// maximal length.
func modeOf(s []float64) (mode float64, count int) {
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if j-i > count {
			mode, count = s[i], j-i
		}
		i = j
	}
	return mode, count
}
