package stat

import (
	"fmt"
	"math"
	"sort"
)

// Bin is the half open interval [Lo, Hi).
type Bin struct {
	Lo, Hi float64
}

// Contains reports whether Lo <= x < Hi.
func (b Bin) Contains(x float64) bool { return x >= b.Lo && x < b.Hi }

// Mid returns the midpoint of b.
func (b Bin) Mid() float64 { return b.Lo + (b.Hi-b.Lo)/2 }

// Label formats b with integer bounds and an inclusive upper bound,
// e.g. [35,40) is "35-39".
func (b Bin) Label() string {
	return fmt.Sprintf("%d-%d", int64(b.Lo), int64(b.Hi-1))
}

// Row is one line of a frequency table.
type Row struct {
	Bin        Bin
	Label      string  // interval label, see Bin.Label
	Count      int     // absolute frequency fi
	Relative   float64 // relative frequency fri, rounded to 3 decimals
	Cumulative int     // cumulative absolute frequency Fac
	Midpoint   float64 // class midpoint xi
}

// FrequencyTable groups observations into bins of equal width. Only
// non-empty bins are listed, in ascending order.
type FrequencyTable struct {
	Width int
	Total int
	Rows  []Row
}

// Columns are the column headings used when a table is exported.
var Columns = []string{"Intervalo", "fi", "fri", "Fac", "xi"}

// MaxClasses limits the number of classes Edges produces.
const MaxClasses = 10000

// Edges returns the bin edges used to group observations into classes of
// width classWidth. The first edge is min rounded down to a multiple of
// classWidth, the last one is max rounded up plus one extra class.
func Edges(observations []float64, classWidth int) ([]float64, error) {
	if classWidth <= 0 {
		return nil, fmt.Errorf("%w: class width %d", ErrInvalidInput, classWidth)
	}
	if err := checkObservations(observations); err != nil {
		return nil, err
	}

	width := float64(classWidth)
	min, max := minMax(observations)
	lo := RoundDown(min, width)
	hi := RoundUp(max, width) + width

	classes := math.Round((hi - lo) / width)
	if classes > MaxClasses {
		return nil, fmt.Errorf("%w: range [%v,%v] needs more than %d classes of width %d",
			ErrInvalidInput, min, max, MaxClasses, classWidth)
	}
	n := int(classes) + 1
	edges := make([]float64, n)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	return edges, nil
}

// Counts returns the number of observations in each of the len(edges)-1
// bins [edges[i], edges[i+1]). Empty bins are included. Observations
// outside of the edges are not counted.
func Counts(observations []float64, edges []float64) []int {
	if len(edges) < 2 {
		return nil
	}
	counts := make([]int, len(edges)-1)
	for _, x := range observations {
		if b := binIndex(x, edges); b >= 0 {
			counts[b]++
		}
	}
	return counts
}

// binIndex locates x in edges, -1 if x is outside.
func binIndex(x float64, edges []float64) int {
	origin, width := edges[0], edges[1]-edges[0]
	b := int(math.Floor((x - origin) / width))
	if b < 0 || b >= len(edges)-1 {
		return -1
	}
	// Guard against rounding right at an edge.
	if x < edges[b] {
		b--
	} else if x >= edges[b+1] {
		b++
	}
	if b < 0 || b >= len(edges)-1 {
		return -1
	}
	return b
}

// BuildFrequencyTable bins observations into classes of width classWidth
// and computes absolute, relative and cumulative frequencies as well as
// class midpoints. Classes start at multiples of classWidth; empty ones
// are not listed.
func BuildFrequencyTable(observations []float64, classWidth int) (*FrequencyTable, error) {
	if classWidth <= 0 {
		return nil, fmt.Errorf("%w: class width %d", ErrInvalidInput, classWidth)
	}
	if err := checkObservations(observations); err != nil {
		return nil, err
	}

	// Class k covers [k*width, (k+1)*width).
	width := float64(classWidth)
	counts := make(map[float64]int)
	for _, x := range observations {
		counts[classOf(x, width)]++
	}
	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	total := len(observations)
	table := &FrequencyTable{
		Width: classWidth,
		Total: total,
		Rows:  make([]Row, 0, len(keys)),
	}
	cumulative := 0
	for _, k := range keys {
		count := counts[k]
		cumulative += count
		bin := Bin{Lo: k * width, Hi: (k + 1) * width}
		table.Rows = append(table.Rows, Row{
			Bin:        bin,
			Label:      bin.Label(),
			Count:      count,
			Relative:   Round(float64(count)/float64(total), 3),
			Cumulative: cumulative,
			Midpoint:   bin.Lo + width/2,
		})
	}
	return table, nil
}

// classOf returns k such that k*width <= x < (k+1)*width.
func classOf(x, width float64) float64 {
	k := math.Floor(x / width)
	// Guard against rounding right at an edge.
	if x < k*width {
		k--
	} else if x >= (k+1)*width {
		k++
	}
	return k
}

// Sum returns the sum of all absolute frequencies in t.
func (t *FrequencyTable) Sum() int {
	sum := 0
	for _, r := range t.Rows {
		sum += r.Count
	}
	return sum
}
