package main

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

// plotHistogram saves a histogram of the present values of a numeric column.
func plotHistogram(ds *dataset.Dataset, name string, bins int, filename string) error {
	col, ok := ds.Column(name)
	if !ok {
		return dataset.NewColumnError("plot", name, dataset.ErrUnknownColumn, "")
	}
	if col.Kind != dataset.Numeric {
		return dataset.NewColumnError("plot", name, dataset.ErrTypeMismatch, "%s column", col.Kind)
	}
	values := col.Numbers()
	if len(values) == 0 {
		return dataset.NewColumnError("plot", name, dataset.ErrComputation, "no values to plot")
	}

	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = name
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return errors.Wrap(err, "histogram")
	}
	p.Add(h)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "save %s", filename)
	}
	return nil
}
