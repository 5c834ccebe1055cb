package stats

import (
	"cmp"
	"slices"
)

// Frequency is the count of one distinct value.
type Frequency[T comparable] struct {
	Value T
	Count int
}

// Frequencies counts each distinct element, in order of first appearance.
func Frequencies[T comparable](x []T) []Frequency[T] {
	pos := make(map[T]int)
	var out []Frequency[T]
	for _, v := range x {
		i, ok := pos[v]
		if !ok {
			i = len(out)
			pos[v] = i
			out = append(out, Frequency[T]{Value: v})
		}
		out[i].Count++
	}
	return out
}

// RelativeFrequencies maps each distinct element to its share of x.
func RelativeFrequencies[T comparable](x []T) map[T]float64 {
	out := make(map[T]float64)
	if len(x) == 0 {
		return out
	}
	for _, f := range Frequencies(x) {
		out[f.Value] = float64(f.Count) / float64(len(x))
	}
	return out
}

// Cumulative is a running frequency at one value of the sorted domain.
type Cumulative[T cmp.Ordered] struct {
	Value T
	Count float64
}

// CumulativeFrequencies accumulates counts over the sorted distinct values.
// When relative is set the counts are divided by len(x).
func CumulativeFrequencies[T cmp.Ordered](x []T, relative bool) []Cumulative[T] {
	freqs := Frequencies(x)
	slices.SortFunc(freqs, func(a, b Frequency[T]) int { return cmp.Compare(a.Value, b.Value) })

	out := make([]Cumulative[T], len(freqs))
	acc := 0
	for i, f := range freqs {
		acc += f.Count
		c := float64(acc)
		if relative {
			c /= float64(len(x))
		}
		out[i] = Cumulative[T]{Value: f.Value, Count: c}
	}
	return out
}

// ConditionalProbability treats x as a sequence and returns the probability
// that a value equal to next directly follows a value equal to prev.
func ConditionalProbability[T comparable](x []T, next, prev T) float64 {
	if len(x) < 2 {
		return 0
	}
	prevCount := 0
	for _, v := range x {
		if v == prev {
			prevCount++
		}
	}
	if prevCount == 0 {
		return 0
	}
	seq := 0
	for i := 0; i < len(x)-1; i++ {
		if x[i] == prev && x[i+1] == next {
			seq++
		}
	}
	return float64(seq) / float64(prevCount)
}
