package dataprep

import (
	"github.com/pkg/errors"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/stats"
)

// Encoder turns categories into numbers. Categories are ordered by first
// appearance and the missing marker is a category of its own. Numeric
// columns are accepted; their values are categories by value.
type Encoder struct {
	ds       *dataset.Dataset
	mappings map[string][]dataset.Cell
}

func NewEncoder(ds *dataset.Dataset) *Encoder {
	return &Encoder{ds: ds, mappings: make(map[string][]dataset.Cell)}
}

// Encode dispatches to the encoding named by method.
func (e *Encoder) Encode(method EncodeMethod, cols ...string) error {
	switch method {
	case EncodeLabel:
		return e.Label(cols...)
	case EncodeOneHot:
		return e.OneHot(cols...)
	case EncodeFrequency:
		return e.Frequency(cols...)
	}
	return errors.Wrapf(dataset.ErrUnsupportedMethod, "encode method %d", int(method))
}

// Mapping returns the categories of the last encoding of a column, indexed
// by code.
func (e *Encoder) Mapping(col string) ([]dataset.Cell, bool) {
	m, ok := e.mappings[col]
	return m, ok
}

// categories returns the distinct cells in first-appearance order and the
// code of each.
func categories(cells []dataset.Cell) ([]dataset.Cell, map[dataset.Cell]int) {
	freqs := stats.Frequencies(cells)
	order := make([]dataset.Cell, len(freqs))
	codes := make(map[dataset.Cell]int, len(freqs))
	for i, f := range freqs {
		order[i] = f.Value
		codes[f.Value] = i
	}
	return order, codes
}

// Label replaces each value by its category code.
func (e *Encoder) Label(cols ...string) error {
	selected, err := e.ds.Select(cols)
	if err != nil {
		return err
	}

	encoded := make([]*dataset.Column, len(selected))
	orders := make([][]dataset.Cell, len(selected))
	for i, col := range selected {
		order, codes := categories(col.Cells)
		cells := make([]dataset.Cell, len(col.Cells))
		for j, c := range col.Cells {
			cells[j] = dataset.Int(codes[c])
		}
		encoded[i] = &dataset.Column{Name: col.Name, Kind: dataset.Numeric, Cells: cells}
		orders[i] = order
	}

	for i, col := range encoded {
		if err := e.ds.SetColumn(col); err != nil {
			return err
		}
		e.mappings[col.Name] = orders[i]
	}
	return nil
}

// OneHot replaces each column by one binary column per category, named
// column_label, inserted where the column was.
func (e *Encoder) OneHot(cols ...string) error {
	selected, err := e.ds.Select(cols)
	if err != nil {
		return err
	}

	generated := make(map[string]string)
	expanded := make([][]*dataset.Column, len(selected))
	orders := make([][]dataset.Cell, len(selected))
	for i, col := range selected {
		order, codes := categories(col.Cells)
		labels := oneHotLabels(order)
		out := make([]*dataset.Column, len(order))
		for k := range order {
			name := col.Name + "_" + labels[k]
			if owner, dup := generated[name]; dup {
				return dataset.NewColumnError("onehot", owner, dataset.ErrDuplicateColumn,
					"generated column %q twice", name)
			}
			if e.ds.Has(name) {
				return dataset.NewColumnError("onehot", col.Name, dataset.ErrDuplicateColumn,
					"generated column %q already exists", name)
			}
			generated[name] = col.Name
			out[k] = &dataset.Column{Name: name, Kind: dataset.Numeric, Cells: make([]dataset.Cell, col.Len())}
		}
		for j, c := range col.Cells {
			hot := codes[c]
			for k := range out {
				if k == hot {
					out[k].Cells[j] = dataset.Int(1)
				} else {
					out[k].Cells[j] = dataset.Int(0)
				}
			}
		}
		expanded[i] = out
		orders[i] = order
	}

	for i, col := range selected {
		if err := e.ds.Splice(col.Name, expanded[i]...); err != nil {
			return err
		}
		e.mappings[col.Name] = orders[i]
	}
	return nil
}

// oneHotLabels names each category by its label. Categories of different
// types that share a label, such as 1 and "1" or a missing cell and "NA",
// get the type appended: 1(number), 1(text).
func oneHotLabels(order []dataset.Cell) []string {
	seen := make(map[string]int, len(order))
	for _, c := range order {
		seen[c.Label()]++
	}
	out := make([]string, len(order))
	for i, c := range order {
		out[i] = c.Label()
		if seen[out[i]] > 1 {
			out[i] += "(" + cellType(c) + ")"
		}
	}
	return out
}

func cellType(c dataset.Cell) string {
	switch {
	case c.IsMissing():
		return "missing"
	case c.IsNumber():
		return "number"
	default:
		return "text"
	}
}

// Frequency replaces each value by the share of rows holding it.
func (e *Encoder) Frequency(cols ...string) error {
	selected, err := e.ds.Select(cols)
	if err != nil {
		return err
	}

	encoded := make([]*dataset.Column, len(selected))
	for i, col := range selected {
		rel := stats.RelativeFrequencies(col.Cells)
		cells := make([]dataset.Cell, len(col.Cells))
		for j, c := range col.Cells {
			cells[j] = dataset.Number(rel[c])
		}
		encoded[i] = &dataset.Column{Name: col.Name, Kind: dataset.Numeric, Cells: cells}
	}

	for _, col := range encoded {
		if err := e.ds.SetColumn(col); err != nil {
			return err
		}
	}
	return nil
}
