package dataprep

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/stats"
)

// Scaler rescales numeric columns in place. Missing cells are skipped and
// left missing.
type Scaler struct {
	ds    *dataset.Dataset
	stats stats.Provider
}

func NewScaler(ds *dataset.Dataset, p stats.Provider) *Scaler {
	if p == nil {
		p = stats.Gonum{}
	}
	return &Scaler{ds: ds, stats: p}
}

// Scale dispatches to the rescaling named by method.
func (s *Scaler) Scale(method ScaleMethod, cols ...string) error {
	switch method {
	case ScaleMinMax:
		return s.MinMax(cols...)
	case ScaleStandard:
		return s.Standard(cols...)
	case ScaleRobust:
		return s.Robust(cols...)
	case ScaleLog:
		return s.Log(cols...)
	}
	return errors.Wrapf(dataset.ErrUnsupportedMethod, "scale method %d", int(method))
}

// MinMax maps every value to (v - min) / (max - min). A constant column maps to 0.
func (s *Scaler) MinMax(cols ...string) error {
	return s.apply("minmax", cols, stats.MinMaxScale)
}

// Standard maps every value to (v - mean) / stddev using the population
// deviation. A zero-variance column maps to 0.
func (s *Scaler) Standard(cols ...string) error {
	return s.apply("standard", cols, func(x []float64) error {
		return stats.Standardize(x, s.stats)
	})
}

// Robust maps every value to (v - median) / IQR. A zero IQR maps to 0.
func (s *Scaler) Robust(cols ...string) error {
	return s.apply("robust", cols, stats.RobustScale)
}

// Clip clamps every value to the lower and upper percentiles of its column.
func (s *Scaler) Clip(lower, upper float64, cols ...string) error {
	if lower < 0 || upper > 100 || lower > upper {
		return errors.Errorf("clip: invalid percentile range [%v, %v]", lower, upper)
	}
	return s.apply("clip", cols, func(x []float64) error {
		return stats.Clip(x, lower, upper)
	})
}

// numeric validates the selection and requires every selected column to be
// numeric.
func (s *Scaler) numeric(op string, cols []string) ([]*dataset.Column, error) {
	selected, err := s.ds.Select(cols)
	if err != nil {
		return nil, err
	}
	for _, col := range selected {
		if col.Kind != dataset.Numeric {
			return nil, dataset.NewColumnError(op, col.Name, dataset.ErrTypeMismatch,
				"%s column cannot be scaled", col.Kind)
		}
	}
	return selected, nil
}

// apply runs f over the present values of each selected column and only
// writes back once every column succeeded.
func (s *Scaler) apply(op string, cols []string, f func([]float64) error) error {
	selected, err := s.numeric(op, cols)
	if err != nil {
		return err
	}

	scaled := make([][]dataset.Cell, len(selected))
	for i, col := range selected {
		x := col.Numbers()
		if len(x) == 0 {
			continue
		}
		if err := f(x); err != nil {
			return &dataset.ColumnError{Op: op, Column: col.Name, Kind: dataset.ErrComputation, Err: err}
		}
		cells := slices.Clone(col.Cells)
		j := 0
		for k, c := range cells {
			if !c.IsMissing() {
				cells[k] = dataset.Number(x[j])
				j++
			}
		}
		scaled[i] = cells
	}

	for i, col := range selected {
		if scaled[i] != nil {
			col.Cells = scaled[i]
		}
	}
	return nil
}
