package dataprep

import (
	"math"

	"github.com/pkg/errors"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/stats"
)

// Log applies log(x+1) to each value. Values at or below -1 fail.
func (s *Scaler) Log(cols ...string) error {
	return s.apply("log", cols, func(x []float64) error {
		for i, v := range x {
			if v <= -1 {
				return errors.Errorf("log1p undefined for %v", v)
			}
			x[i] = math.Log1p(v)
		}
		return nil
	})
}

// Bin replaces each value by the index of its equal-width bin in [0, n).
// A constant column falls entirely in bin 0.
func (s *Scaler) Bin(n int, cols ...string) error {
	if n < 1 {
		return errors.Errorf("bin: need at least one bin, got %d", n)
	}
	return s.apply("bin", cols, func(x []float64) error {
		min, max, err := stats.MinMax(x)
		if err != nil {
			return err
		}
		width := (max - min) / float64(n)
		for i, v := range x {
			b := 0
			if width > 0 {
				b = int((v - min) / width)
			}
			if b >= n {
				b = n - 1
			}
			x[i] = float64(b)
		}
		return nil
	})
}
