package stats

import (
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

// Describer computes per-column statistics over a live dataset. Missing
// cells are excluded everywhere except the frequency tables, where the
// missing marker counts as its own value.
type Describer struct {
	ds *dataset.Dataset
	p  Provider
}

func NewDescriber(ds *dataset.Dataset, p Provider) *Describer {
	if p == nil {
		p = Gonum{}
	}
	return &Describer{ds: ds, p: p}
}

func (d *Describer) column(op, name string) (*dataset.Column, error) {
	col, ok := d.ds.Column(name)
	if !ok {
		return nil, dataset.NewColumnError(op, name, dataset.ErrUnknownColumn, "")
	}
	return col, nil
}

func (d *Describer) numbers(op, name string) ([]float64, error) {
	col, err := d.column(op, name)
	if err != nil {
		return nil, err
	}
	if col.Kind != dataset.Numeric {
		return nil, dataset.NewColumnError(op, name, dataset.ErrTypeMismatch, "%s column", col.Kind)
	}
	return col.Numbers(), nil
}

func (d *Describer) numeric(op, name string, f func([]float64) (float64, error)) (float64, error) {
	x, err := d.numbers(op, name)
	if err != nil {
		return 0, err
	}
	v, err := f(x)
	if err != nil {
		return 0, &dataset.ColumnError{Op: op, Column: name, Kind: dataset.ErrComputation, Err: err}
	}
	return v, nil
}

func (d *Describer) Mean(name string) (float64, error) {
	return d.numeric("mean", name, d.p.Mean)
}

func (d *Describer) Median(name string) (float64, error) {
	return d.numeric("median", name, d.p.Median)
}

func (d *Describer) StdDev(name string) (float64, error) {
	return d.numeric("stddev", name, d.p.StdDev)
}

func (d *Describer) Variance(name string) (float64, error) {
	return d.numeric("variance", name, Variance)
}

// Modes returns every non-missing value that reaches the highest count, in
// order of first appearance.
func (d *Describer) Modes(name string) ([]dataset.Cell, error) {
	col, err := d.column("mode", name)
	if err != nil {
		return nil, err
	}
	freqs := Frequencies(col.Present())
	top := 0
	for _, f := range freqs {
		top = max(top, f.Count)
	}
	var out []dataset.Cell
	for _, f := range freqs {
		if f.Count == top {
			out = append(out, f.Value)
		}
	}
	return out, nil
}

// Covariance is computed over the rows where both columns are present.
func (d *Describer) Covariance(a, b string) (float64, error) {
	x, y, err := d.pairs("covariance", a, b)
	if err != nil {
		return 0, err
	}
	v, err := Covariance(x, y)
	if err != nil {
		return 0, &dataset.ColumnError{Op: "covariance", Column: a, Kind: dataset.ErrComputation, Err: err}
	}
	return v, nil
}

// Correlation is computed over the rows where both columns are present.
func (d *Describer) Correlation(a, b string) (float64, error) {
	x, y, err := d.pairs("correlation", a, b)
	if err != nil {
		return 0, err
	}
	v, err := Correlation(x, y)
	if err != nil {
		return 0, &dataset.ColumnError{Op: "correlation", Column: a, Kind: dataset.ErrComputation, Err: err}
	}
	return v, nil
}

func (d *Describer) pairs(op, a, b string) ([]float64, []float64, error) {
	if _, err := d.numbers(op, a); err != nil {
		return nil, nil, err
	}
	if _, err := d.numbers(op, b); err != nil {
		return nil, nil, err
	}
	ca, _ := d.ds.Column(a)
	cb, _ := d.ds.Column(b)
	var x, y []float64
	for i := range ca.Cells {
		va, okA := ca.Cells[i].Float()
		vb, okB := cb.Cells[i].Float()
		if okA && okB {
			x = append(x, va)
			y = append(y, vb)
		}
	}
	return x, y, nil
}

// Itemset returns the distinct values of a column in order of first appearance.
func (d *Describer) Itemset(name string) ([]dataset.Cell, error) {
	freqs, err := d.AbsoluteFrequency(name)
	if err != nil {
		return nil, err
	}
	out := make([]dataset.Cell, len(freqs))
	for i, f := range freqs {
		out[i] = f.Value
	}
	return out, nil
}

func (d *Describer) AbsoluteFrequency(name string) ([]Frequency[dataset.Cell], error) {
	col, err := d.column("frequency", name)
	if err != nil {
		return nil, err
	}
	return Frequencies(col.Cells), nil
}

func (d *Describer) RelativeFrequency(name string) (map[dataset.Cell]float64, error) {
	col, err := d.column("frequency", name)
	if err != nil {
		return nil, err
	}
	return RelativeFrequencies(col.Cells), nil
}

// CumulativeFrequency accumulates over the sorted non-missing values of a
// numeric column.
func (d *Describer) CumulativeFrequency(name string, relative bool) ([]Cumulative[float64], error) {
	col, err := d.column("frequency", name)
	if err != nil {
		return nil, err
	}
	if col.Kind != dataset.Numeric {
		return nil, dataset.NewColumnError("frequency", name, dataset.ErrTypeMismatch, "%s column", col.Kind)
	}
	x := col.Numbers()
	out := CumulativeFrequencies(x, false)
	if relative {
		for i := range out {
			out[i].Count /= float64(col.Len())
		}
	}
	return out, nil
}

// ConditionalProbability returns P(cell[i] == next | cell[i-1] == prev).
func (d *Describer) ConditionalProbability(name string, next, prev dataset.Cell) (float64, error) {
	col, err := d.column("probability", name)
	if err != nil {
		return 0, err
	}
	return ConditionalProbability(col.Cells, next, prev), nil
}
