package dataprep

import (
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/stats"
)

// Missing detects, fills and drops missing cells of a dataset.
type Missing struct {
	ds    *dataset.Dataset
	stats stats.Provider
}

func NewMissing(ds *dataset.Dataset, p stats.Provider) *Missing {
	if p == nil {
		p = stats.Gonum{}
	}
	return &Missing{ds: ds, stats: p}
}

// mask flags every row where any selected column is missing.
func (m *Missing) mask(cols []string) ([]bool, error) {
	selected, err := m.ds.Select(cols)
	if err != nil {
		return nil, err
	}
	out := make([]bool, m.ds.Len())
	for _, col := range selected {
		for i, c := range col.Cells {
			if c.IsMissing() {
				out[i] = true
			}
		}
	}
	return out, nil
}

// IsNA returns a copy of the rows where any selected column is missing.
func (m *Missing) IsNA(cols ...string) (*dataset.Dataset, error) {
	return m.take(cols, true)
}

// NotNA returns a copy of the rows where no selected column is missing.
func (m *Missing) NotNA(cols ...string) (*dataset.Dataset, error) {
	return m.take(cols, false)
}

func (m *Missing) take(cols []string, missing bool) (*dataset.Dataset, error) {
	mask, err := m.mask(cols)
	if err != nil {
		return nil, err
	}
	var rows []int
	for i, na := range mask {
		if na == missing {
			rows = append(rows, i)
		}
	}
	return m.ds.Take(rows), nil
}

// FillNA replaces the missing cells of every selected column. Statistical
// methods that cannot be computed fall back to def when it is not missing.
// Fill values for all columns are computed before any cell changes.
func (m *Missing) FillNA(method FillMethod, def dataset.Cell, cols ...string) error {
	selected, err := m.ds.Select(cols)
	if err != nil {
		return err
	}

	fills := make([]dataset.Cell, len(selected))
	for i, col := range selected {
		fills[i], err = m.fillValue(col, method, def)
		if err != nil {
			return err
		}
	}

	for i, col := range selected {
		if fills[i].IsMissing() {
			continue
		}
		for j, c := range col.Cells {
			if c.IsMissing() {
				col.Cells[j] = fills[i]
			}
		}
	}
	return nil
}

func (m *Missing) fillValue(col *dataset.Column, method FillMethod, def dataset.Cell) (dataset.Cell, error) {
	if (method == FillMean || method == FillMedian) && col.Kind != dataset.Numeric {
		return dataset.Missing(), dataset.NewColumnError("fillna", col.Name, dataset.ErrTypeMismatch,
			"%s needs a numeric column, got %s", method, col.Kind)
	}
	if col.MissingCount() == 0 {
		return dataset.Missing(), nil
	}

	var (
		v     float64
		cause error
	)
	switch method {
	case FillMean:
		if v, cause = m.stats.Mean(col.Numbers()); cause == nil {
			return dataset.Number(v), nil
		}
	case FillMedian:
		if v, cause = m.stats.Median(col.Numbers()); cause == nil {
			return dataset.Number(v), nil
		}
	case FillMode:
		if col.Kind == dataset.Numeric {
			if v, cause = m.stats.Mode(col.Numbers()); cause == nil {
				return dataset.Number(v), nil
			}
		} else {
			var c dataset.Cell
			if c, cause = stats.ModeOf(col.Present()); cause == nil {
				return c, nil
			}
		}
	case FillDefault:
		// Nothing to fill with: the column stays as it is.
		if def.IsMissing() {
			return dataset.Missing(), nil
		}
	}

	if def.IsMissing() {
		return dataset.Missing(), &dataset.ColumnError{Op: "fillna", Column: col.Name, Kind: dataset.ErrComputation, Err: cause}
	}
	if def.IsText() && col.Kind == dataset.Numeric {
		return dataset.Missing(), dataset.NewColumnError("fillna", col.Name, dataset.ErrTypeMismatch,
			"text default %q for a numeric column", def.Label())
	}
	return def, nil
}

// DropNA removes every row where any selected column is missing.
func (m *Missing) DropNA(cols ...string) error {
	mask, err := m.mask(cols)
	if err != nil {
		return err
	}
	keep := make([]bool, len(mask))
	for i, na := range mask {
		keep[i] = !na
	}
	m.ds.KeepRows(keep)
	return nil
}
