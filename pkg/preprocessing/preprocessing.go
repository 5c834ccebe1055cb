// Package preprocessing is the fluent entry point of the engine. A
// Preprocessor owns one dataset and applies missing-value handling,
// scaling and encoding to it in place.
//
//	p, err := preprocessing.FromMap(nil, raw)
//	if err != nil {
//		return err
//	}
//	p.FillNA(dataprep.FillMean, nil, "idade").
//		Scale(dataprep.ScaleMinMax, "idade").
//		Encode(dataprep.EncodeOneHot, "cidade")
//	if err := p.Err(); err != nil {
//		return err
//	}
//
// The first failing step is recorded and every later step is skipped, so a
// chain stops at its first error. A failing step never leaves a partial
// change behind.
package preprocessing

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/core"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataprep"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/stats"
)

type Option func(*Preprocessor)

// WithStats replaces the statistics provider used for imputation and scaling.
func WithStats(p stats.Provider) Option {
	return func(pp *Preprocessor) { pp.stats = p }
}

// WithLogger sets the logger for step tracing. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(pp *Preprocessor) { pp.log = l }
}

// Preprocessor owns a dataset and mutates it through chainable steps.
// It is not safe for concurrent use.
type Preprocessor struct {
	ds    *dataset.Dataset
	stats stats.Provider
	log   *slog.Logger

	missing *dataprep.Missing
	scaler  *dataprep.Scaler
	encoder *dataprep.Encoder

	err error
}

func New(ds *dataset.Dataset, opts ...Option) *Preprocessor {
	p := &Preprocessor{ds: ds, stats: stats.Gonum{}, log: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	p.missing = dataprep.NewMissing(ds, p.stats)
	p.scaler = dataprep.NewScaler(ds, p.stats)
	p.encoder = dataprep.NewEncoder(ds)
	return p
}

// FromMap builds the dataset from column-oriented input and wraps it.
func FromMap(order []string, data map[string][]any, opts ...Option) (*Preprocessor, error) {
	ds, err := dataset.FromMap(order, data)
	if err != nil {
		return nil, err
	}
	return New(ds, opts...), nil
}

// Dataset returns the live dataset.
func (p *Preprocessor) Dataset() *dataset.Dataset { return p.ds }

// Err returns the error of the step that stopped the chain, if any.
func (p *Preprocessor) Err() error { return p.err }

// ClearErr forgets a recorded failure so the next steps run again.
func (p *Preprocessor) ClearErr() { p.err = nil }

func (p *Preprocessor) step(op string, cols []string, f func() error) *Preprocessor {
	if p.err != nil {
		return p
	}
	if err := f(); err != nil {
		p.err = err
		p.log.Warn("preprocessing step failed", "op", op, "columns", cols, "error", err)
		return p
	}
	p.log.Debug("preprocessing step applied",
		"op", op,
		"columns", cols,
		"rows", p.ds.Len(),
		"width", p.ds.Width())
	return p
}

// FillNA fills the missing cells of cols. def is the literal used by
// FillDefault and the fallback when a statistic cannot be computed; nil
// means none.
func (p *Preprocessor) FillNA(method dataprep.FillMethod, def any, cols ...string) *Preprocessor {
	return p.step("fillna:"+method.String(), cols, func() error {
		c, err := dataset.ToCell(def)
		if err != nil {
			return errors.Wrap(err, "fillna default")
		}
		return p.missing.FillNA(method, c, cols...)
	})
}

// DropNA removes rows where any of cols is missing.
func (p *Preprocessor) DropNA(cols ...string) *Preprocessor {
	return p.step("dropna", cols, func() error {
		return p.missing.DropNA(cols...)
	})
}

// Scale rescales numeric cols with the given method.
func (p *Preprocessor) Scale(method dataprep.ScaleMethod, cols ...string) *Preprocessor {
	return p.step("scale:"+method.String(), cols, func() error {
		return p.scaler.Scale(method, cols...)
	})
}

// Clip clamps numeric cols to their lower and upper percentiles.
func (p *Preprocessor) Clip(lower, upper float64, cols ...string) *Preprocessor {
	return p.step("clip", cols, func() error {
		return p.scaler.Clip(lower, upper, cols...)
	})
}

// Bin replaces numeric cols by their equal-width bin index.
func (p *Preprocessor) Bin(n int, cols ...string) *Preprocessor {
	return p.step("bin", cols, func() error {
		return p.scaler.Bin(n, cols...)
	})
}

// Encode encodes cols with the given method.
func (p *Preprocessor) Encode(method dataprep.EncodeMethod, cols ...string) *Preprocessor {
	return p.step("encode:"+method.String(), cols, func() error {
		return p.encoder.Encode(method, cols...)
	})
}

// DropDuplicates removes repeated rows, keeping the first.
func (p *Preprocessor) DropDuplicates() *Preprocessor {
	return p.step("dedupe", nil, func() error {
		dataprep.DropDuplicates(p.ds)
		return nil
	})
}

// DropSparse removes columns whose missing ratio exceeds threshold.
func (p *Preprocessor) DropSparse(threshold float64) *Preprocessor {
	return p.step("dropsparse", nil, func() error {
		dropped, err := dataprep.DropSparse(p.ds, threshold)
		if len(dropped) > 0 {
			p.log.Info("dropped sparse columns", "columns", dropped, "threshold", threshold)
		}
		return err
	})
}

// IsNA returns a copy of the rows where any of cols is missing.
func (p *Preprocessor) IsNA(cols ...string) (*dataset.Dataset, error) {
	return p.missing.IsNA(cols...)
}

// NotNA returns a copy of the rows where none of cols is missing.
func (p *Preprocessor) NotNA(cols ...string) (*dataset.Dataset, error) {
	return p.missing.NotNA(cols...)
}

// Mapping returns the categories of the last encoding of col, indexed by code.
func (p *Preprocessor) Mapping(col string) ([]dataset.Cell, bool) {
	return p.encoder.Mapping(col)
}

// Statistics describes the live dataset with the configured provider.
func (p *Preprocessor) Statistics() *stats.Describer {
	return stats.NewDescriber(p.ds, p.stats)
}

// Matrix exports cols as a dense matrix with the columns in dataset order.
// Every selected column must be numeric and fully present.
func (p *Preprocessor) Matrix(cols ...string) (*core.Matrix, error) {
	selected, err := p.ds.Select(cols)
	if err != nil {
		return nil, err
	}
	values := make([][]float64, len(selected))
	for j, col := range selected {
		if col.Kind != dataset.Numeric {
			return nil, dataset.NewColumnError("matrix", col.Name, dataset.ErrTypeMismatch, "%s column", col.Kind)
		}
		if n := col.MissingCount(); n > 0 {
			return nil, dataset.NewColumnError("matrix", col.Name, dataset.ErrComputation, "%d missing cells", n)
		}
		values[j] = col.Numbers()
	}
	return core.FromColumns(values)
}
