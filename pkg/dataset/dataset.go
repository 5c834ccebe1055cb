package dataset

import (
	"slices"
	"sort"

	"github.com/pkg/errors"
)

// Column is a named, typed sequence of cells.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// NewColumn builds a column and infers its kind from the cells.
func NewColumn(name string, cells []Cell) *Column {
	return &Column{Name: name, Kind: InferKind(cells), Cells: cells}
}

func (c *Column) Len() int { return len(c.Cells) }

// Numbers returns the non-missing numeric values in row order.
func (c *Column) Numbers() []float64 {
	out := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if v, ok := cell.Float(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Present returns the non-missing cells in row order.
func (c *Column) Present() []Cell {
	out := make([]Cell, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.IsMissing() {
			out = append(out, cell)
		}
	}
	return out
}

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.IsMissing() {
			n++
		}
	}
	return n
}

// Clone deep copies the column.
func (c *Column) Clone() *Column {
	return &Column{Name: c.Name, Kind: c.Kind, Cells: slices.Clone(c.Cells)}
}

// Row is the tuple of cells at one index, by column position.
type Row []Cell

// Dataset is a mutable column store. All columns have the same length and
// column names are unique.
type Dataset struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New builds a dataset from columns in the given order.
func New(cols ...*Column) (*Dataset, error) {
	d := &Dataset{index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, dup := d.index[c.Name]; dup {
			return nil, NewColumnError("new", c.Name, ErrDuplicateColumn, "")
		}
		if i > 0 && c.Len() != d.rows {
			return nil, NewColumnError("new", c.Name, ErrShape,
				"has %d rows, expected %d", c.Len(), d.rows)
		}
		d.rows = c.Len()
		d.index[c.Name] = i
		d.cols = append(d.cols, c)
	}
	return d, nil
}

// FromMap builds a dataset from column-oriented input. A nil value is the
// missing marker. order fixes the column order; when nil the names are
// sorted.
func FromMap(order []string, data map[string][]any) (*Dataset, error) {
	if order == nil {
		order = make([]string, 0, len(data))
		for name := range data {
			order = append(order, name)
		}
		sort.Strings(order)
	} else if len(order) != len(data) {
		for name := range data {
			if !slices.Contains(order, name) {
				return nil, NewColumnError("new", name, ErrShape, "column missing from order")
			}
		}
	}

	cols := make([]*Column, 0, len(order))
	for _, name := range order {
		raw, ok := data[name]
		if !ok {
			return nil, NewColumnError("new", name, ErrUnknownColumn, "")
		}
		cells := make([]Cell, len(raw))
		for i, v := range raw {
			c, err := ToCell(v)
			if err != nil {
				return nil, errors.Wrapf(err, "column %q row %d", name, i)
			}
			cells[i] = c
		}
		cols = append(cols, NewColumn(name, cells))
	}
	return New(cols...)
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Width returns the number of columns.
func (d *Dataset) Width() int { return len(d.cols) }

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.cols))
	for i, c := range d.cols {
		out[i] = c.Name
	}
	return out
}

// Has reports whether the named column exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Column returns the live column with the given name.
func (d *Dataset) Column(name string) (*Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.cols[i], true
}

// Columns returns the live columns in order.
func (d *Dataset) Columns() []*Column { return slices.Clone(d.cols) }

// Schema returns the names and kinds of the columns.
func (d *Dataset) Schema() Schema {
	s := Schema{FeatureNames: d.Names(), Kinds: make([]Kind, len(d.cols))}
	for i, c := range d.cols {
		s.Kinds[i] = c.Kind
	}
	return s
}

// Row returns a copy of row i.
func (d *Dataset) Row(i int) Row {
	r := make(Row, len(d.cols))
	for j, c := range d.cols {
		r[j] = c.Cells[i]
	}
	return r
}

// Rows returns copies of every row.
func (d *Dataset) Rows() []Row {
	out := make([]Row, d.rows)
	for i := range d.rows {
		out[i] = d.Row(i)
	}
	return out
}

// Validate checks a column selection. It fails on an empty selection or on
// any name that is not in the dataset.
func (d *Dataset) Validate(names []string) error {
	if len(names) == 0 {
		return NewColumnError("select", "", ErrUnknownColumn, "empty column selection")
	}
	for _, name := range names {
		if !d.Has(name) {
			return NewColumnError("select", name, ErrUnknownColumn, "")
		}
	}
	return nil
}

// Select validates a selection and returns its columns once each, in
// dataset order.
func (d *Dataset) Select(names []string) ([]*Column, error) {
	if err := d.Validate(names); err != nil {
		return nil, err
	}
	picked := make([]bool, len(d.cols))
	for _, name := range names {
		picked[d.index[name]] = true
	}
	var out []*Column
	for i, c := range d.cols {
		if picked[i] {
			out = append(out, c)
		}
	}
	return out, nil
}

// Take returns a new dataset holding copies of the given rows.
func (d *Dataset) Take(rows []int) *Dataset {
	out := &Dataset{index: make(map[string]int, len(d.cols)), rows: len(rows)}
	for i, c := range d.cols {
		cells := make([]Cell, len(rows))
		for j, r := range rows {
			cells[j] = c.Cells[r]
		}
		out.cols = append(out.cols, &Column{Name: c.Name, Kind: c.Kind, Cells: cells})
		out.index[c.Name] = i
	}
	return out
}

// KeepRows removes every row whose keep flag is false. Remaining rows are
// re-indexed from 0.
func (d *Dataset) KeepRows(keep []bool) {
	n := 0
	for _, k := range keep {
		if k {
			n++
		}
	}
	for _, c := range d.cols {
		cells := make([]Cell, 0, n)
		for i, cell := range c.Cells {
			if keep[i] {
				cells = append(cells, cell)
			}
		}
		c.Cells = cells
	}
	d.rows = n
}

// SetColumn replaces the cells and kind of an existing column.
func (d *Dataset) SetColumn(col *Column) error {
	i, ok := d.index[col.Name]
	if !ok {
		return NewColumnError("set", col.Name, ErrUnknownColumn, "")
	}
	if col.Len() != d.rows {
		return NewColumnError("set", col.Name, ErrShape, "has %d rows, expected %d", col.Len(), d.rows)
	}
	d.cols[i] = col
	return nil
}

// Splice replaces the named column by repl, in place. repl may be empty.
func (d *Dataset) Splice(name string, repl ...*Column) error {
	at, ok := d.index[name]
	if !ok {
		return NewColumnError("splice", name, ErrUnknownColumn, "")
	}
	seen := make(map[string]struct{}, len(repl))
	for _, c := range repl {
		if c.Len() != d.rows {
			return NewColumnError("splice", c.Name, ErrShape, "has %d rows, expected %d", c.Len(), d.rows)
		}
		if _, dup := seen[c.Name]; dup {
			return NewColumnError("splice", c.Name, ErrDuplicateColumn, "")
		}
		if i, exists := d.index[c.Name]; exists && i != at {
			return NewColumnError("splice", c.Name, ErrDuplicateColumn, "")
		}
		seen[c.Name] = struct{}{}
	}

	d.cols = slices.Replace(d.cols, at, at+1, repl...)
	d.reindex()
	return nil
}

// Drop removes the named columns.
func (d *Dataset) Drop(names ...string) error {
	if err := d.Validate(names); err != nil {
		return err
	}
	d.cols = slices.DeleteFunc(d.cols, func(c *Column) bool {
		return slices.Contains(names, c.Name)
	})
	d.reindex()
	return nil
}

func (d *Dataset) reindex() {
	clear(d.index)
	for i, c := range d.cols {
		d.index[c.Name] = i
	}
}

// Clone deep copies the dataset.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{index: make(map[string]int, len(d.cols)), rows: d.rows}
	for i, c := range d.cols {
		out.cols = append(out.cols, c.Clone())
		out.index[c.Name] = i
	}
	return out
}

// Equal reports whether both datasets have the same columns, kinds and cells.
func (d *Dataset) Equal(o *Dataset) bool {
	if d.rows != o.rows || len(d.cols) != len(o.cols) {
		return false
	}
	for i, c := range d.cols {
		oc := o.cols[i]
		if c.Name != oc.Name || c.Kind != oc.Kind || !slices.Equal(c.Cells, oc.Cells) {
			return false
		}
	}
	return true
}

// ToMap returns the dataset as column name to plain values. Missing cells
// are nil.
func (d *Dataset) ToMap() map[string][]any {
	out := make(map[string][]any, len(d.cols))
	for _, c := range d.cols {
		vals := make([]any, len(c.Cells))
		for i, cell := range c.Cells {
			vals[i] = cell.Value()
		}
		out[c.Name] = vals
	}
	return out
}
