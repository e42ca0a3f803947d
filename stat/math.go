package stat

import (
	"fmt"
	"math"
)

// RoundDown rounds a down to the next multiple of b.
func RoundDown(a, b float64) float64 {
	return math.Floor(a/b) * b
}

// RoundUp rounds a up to the next multiple of b.
func RoundUp(a, b float64) float64 {
	return math.Ceil(a/b) * b
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// checkObservations makes sure data is non-empty and finite.
func checkObservations(data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: no observations", ErrInvalidInput)
	}
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: observation %d is %v", ErrInvalidInput, i, x)
		}
	}
	return nil
}

// minMax of a non-empty slice.
func minMax(data []float64) (min, max float64) {
	min, max = data[0], data[0]
	for _, x := range data[1:] {
		if x < min {
			min = x
		} else if x > max {
			max = x
		}
	}
	return min, max
}
