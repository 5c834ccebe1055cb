package stats

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmpty is returned when a statistic is requested over no values.
var ErrEmpty = errors.New("no values")

// Mean computes the average of a slice.
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}
	return stat.Mean(x, nil), nil
}

// Variance computes the population variance of a slice.
func Variance(x []float64) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmpty
	}
	if n == 1 {
		return 0, nil
	}
	// stat.MeanVariance is the unbiased estimator; rescale to the population form.
	_, v := stat.MeanVariance(x, nil)
	return v * float64(n-1) / float64(n), nil
}

// Std computes the population standard deviation of a slice.
func Std(x []float64) (float64, error) {
	v, err := Variance(x)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64, error) {
	if len(x) == 0 {
		return 0, 0, ErrEmpty
	}
	return floats.Min(x), floats.Max(x), nil
}

// Median returns the median value of the slice (allocates a copy).
func Median(x []float64) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmpty
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5, nil
	}
	return cp[mid], nil
}

// Mode returns the most frequent value; ties go to the value seen first.
func Mode(x []float64) (float64, error) {
	return ModeOf(x)
}

// ModeOf returns the most frequent element; ties go to the element seen first.
func ModeOf[T comparable](x []T) (T, error) {
	var zero T
	if len(x) == 0 {
		return zero, ErrEmpty
	}
	freqs := Frequencies(x)
	best := freqs[0]
	for _, f := range freqs[1:] {
		if f.Count > best.Count {
			best = f
		}
	}
	return best.Value, nil
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100)
// using linear interpolation between closest ranks.
func Percentile(x []float64, p float64) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmpty
	}
	min, max := floats.Min(x), floats.Max(x)
	if p <= 0 {
		return min, nil
	}
	if p >= 100 {
		return max, nil
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower], nil
	}
	return cp[lower]*(1-weight) + cp[upper]*weight, nil
}

// Covariance computes the population covariance between two slices.
func Covariance(x, y []float64) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmpty
	}
	if len(y) != n {
		return 0, errors.Errorf("covariance: length mismatch %d != %d", n, len(y))
	}
	mx, my := stat.Mean(x, nil), stat.Mean(y, nil)
	var sum float64
	for i := range x {
		sum += (x[i] - mx) * (y[i] - my)
	}
	return sum / float64(n), nil
}

// Correlation computes the Pearson correlation coefficient between two
// slices. Zero-variance input yields 0.
func Correlation(x, y []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}
	if len(y) != len(x) {
		return 0, errors.Errorf("correlation: length mismatch %d != %d", len(x), len(y))
	}
	sx, _ := Std(x)
	sy, _ := Std(y)
	if sx == 0 || sy == 0 {
		return 0, nil
	}
	cov, _ := Covariance(x, y)
	return cov / (sx * sy), nil
}
