package stat

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate2011(t *testing.T) {
	s, err := Calculate(goals2011)
	require.NoError(t, err)

	assert.Equal(t, 20, s.N)
	assert.InDelta(t, 50.75, s.Mean, 1e-9)
	assert.Equal(t, 57.0, s.Mode)
	assert.Equal(t, 5, s.ModeCount)
	// The two middle values of the sorted goals are 50 and 51.
	assert.Equal(t, 50.5, s.Median)
	assert.Equal(t, s.Median, s.Q2)
	assert.Equal(t, 46.5, s.Q1)
	assert.Equal(t, 57.0, s.Q3)
	assert.Equal(t, 38.0, s.Min)
	assert.Equal(t, 60.0, s.Max)
}

func TestCalculateNineteenValues(t *testing.T) {
	// The 2011 goals with one of the five 57s missing.
	obs := []float64{38, 43, 43, 45, 46, 47, 48, 49, 50, 50, 51, 52, 53, 55, 57, 57, 57, 57, 60}
	s, err := Calculate(obs)
	require.NoError(t, err)

	assert.Equal(t, 19, s.N)
	assert.InDelta(t, 958.0/19, s.Mean, 1e-9)
	assert.Equal(t, 57.0, s.Mode)
	assert.Equal(t, 4, s.ModeCount)
	assert.Equal(t, 50.0, s.Median)
	// Lower half 38..50 (9 values), upper half 50..60 (10 values).
	assert.Equal(t, 46.0, s.Q1)
	assert.Equal(t, 56.0, s.Q3)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		obs                        []float64
		mean, mode, q1, median, q3 float64
	}{
		{[]float64{1, 2, 3, 4}, 2.5, 1, 1.5, 2.5, 3.5},
		{[]float64{4, 3, 2, 1}, 2.5, 1, 1.5, 2.5, 3.5},
		{[]float64{1, 2, 3, 4, 5}, 3, 1, 1.5, 3, 4},
		{[]float64{7}, 7, 7, 7, 7, 7},
		{[]float64{1, 2}, 1.5, 1, 1, 1.5, 2},
		{[]float64{1, 2, 3}, 2, 1, 1, 2, 2.5},
		{[]float64{9, 8, 7, 6, 5, 4, 3, 2, 1}, 5, 1, 2.5, 5, 7},
		{[]float64{3, 1, 3, 1, 2}, 2, 1, 1, 2, 3},
		{[]float64{2.5, 2.5, 0.5}, 11.0 / 6, 2.5, 0.5, 2.5, 2.5},
	}

	for i, tc := range tests {
		s, err := Calculate(tc.obs)
		if err != nil {
			t.Errorf("%d: unexpected error %s", i, err)
			continue
		}
		if math.Abs(s.Mean-tc.mean) > 1e-9 {
			t.Errorf("%d: Got mean %v, want %v", i, s.Mean, tc.mean)
		}
		if s.Mode != tc.mode {
			t.Errorf("%d: Got mode %v, want %v", i, s.Mode, tc.mode)
		}
		if s.Q1 != tc.q1 || s.Median != tc.median || s.Q3 != tc.q3 {
			t.Errorf("%d: Got quartiles %v/%v/%v, want %v/%v/%v",
				i, s.Q1, s.Median, s.Q3, tc.q1, tc.median, tc.q3)
		}
	}
}

func TestCalculateSingleElement(t *testing.T) {
	s, err := Calculate([]float64{42})
	require.NoError(t, err)
	for name, v := range map[string]float64{
		"mean": s.Mean, "mode": s.Mode, "median": s.Median,
		"q1": s.Q1, "q2": s.Q2, "q3": s.Q3,
	} {
		assert.Equal(t, 42.0, v, name)
	}
	assert.Equal(t, 1, s.ModeCount)
}

func TestCalculateModeTieBreak(t *testing.T) {
	// 5 and 2 both occur twice; the smaller one is reached first.
	s, err := Calculate([]float64{5, 2, 9, 5, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Mode)
	assert.Equal(t, 2, s.ModeCount)

	// All distinct: every value has count one, the minimum wins.
	s, err = Calculate([]float64{8, 3, 6})
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Mode)
}

func TestCalculateInvalidInput(t *testing.T) {
	for _, obs := range [][]float64{nil, {}, {1, math.NaN()}, {math.Inf(-1)}} {
		s, err := Calculate(obs)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, Summary{}, s)
	}
}

func TestCalculateDoesNotModifyInput(t *testing.T) {
	obs := []float64{3, 1, 2}
	_, err := Calculate(obs)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, obs)
}

func TestCalculateQuartileOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(50))
	for run := 0; run < 500; run++ {
		obs := make([]float64, 1+rnd.Intn(40))
		for i := range obs {
			obs[i] = rnd.NormFloat64() * 20
		}
		s, err := Calculate(obs)
		require.NoError(t, err)
		if !(s.Q1 <= s.Median && s.Median <= s.Q3) {
			t.Fatalf("run %d: Got Q1=%v median=%v Q3=%v for %v", run, s.Q1, s.Median, s.Q3, obs)
		}
		if s.Min > s.Q1 || s.Q3 > s.Max {
			t.Fatalf("run %d: quartiles outside [%v,%v]", run, s.Min, s.Max)
		}
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{1, 2, 3}))
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 6.0, Median([]float64{6}))
}
