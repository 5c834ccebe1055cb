package pipeline

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataprep"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/preprocessing"
)

// Step is one preprocessing operation applied to a Preprocessor.
type Step interface {
	Name() string
	Apply(p *preprocessing.Preprocessor)
}

// Pipeline chains multiple steps.
type Pipeline struct {
	steps []Step
}

func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Add appends steps and returns the pipeline.
func (pl *Pipeline) Add(steps ...Step) *Pipeline {
	pl.steps = append(pl.steps, steps...)
	return pl
}

// Steps returns the names of the steps in run order.
func (pl *Pipeline) Steps() []string {
	names := make([]string, len(pl.steps))
	for i, s := range pl.steps {
		names[i] = s.Name()
	}
	return names
}

// Run applies every step in order and stops at the first failure. The
// returned error names the failing step.
func (pl *Pipeline) Run(p *preprocessing.Preprocessor) error {
	if err := p.Err(); err != nil {
		return errors.Wrap(err, "pipeline: preprocessor already failed")
	}
	for i, s := range pl.steps {
		s.Apply(p)
		if err := p.Err(); err != nil {
			return errors.Wrapf(err, "step %d (%s)", i+1, s.Name())
		}
	}
	return nil
}

// Fill fills missing cells with a statistic or a default literal.
type Fill struct {
	Method  dataprep.FillMethod
	Default any
	Columns []string
}

func (s Fill) Name() string { return "fillna:" + s.Method.String() }

func (s Fill) Apply(p *preprocessing.Preprocessor) { p.FillNA(s.Method, s.Default, s.Columns...) }

// DropNA removes rows with a missing cell in Columns.
type DropNA struct {
	Columns []string
}

func (s DropNA) Name() string { return "dropna" }

func (s DropNA) Apply(p *preprocessing.Preprocessor) { p.DropNA(s.Columns...) }

type Scale struct {
	Method  dataprep.ScaleMethod
	Columns []string
}

func (s Scale) Name() string { return "scale:" + s.Method.String() }

func (s Scale) Apply(p *preprocessing.Preprocessor) { p.Scale(s.Method, s.Columns...) }

type Encode struct {
	Method  dataprep.EncodeMethod
	Columns []string
}

func (s Encode) Name() string { return "encode:" + s.Method.String() }

func (s Encode) Apply(p *preprocessing.Preprocessor) { p.Encode(s.Method, s.Columns...) }

// Clip clamps Columns to the [Lower, Upper] percentile range (0 to 100).
type Clip struct {
	Lower, Upper float64
	Columns      []string
}

func (s Clip) Name() string { return fmt.Sprintf("clip:%g-%g", s.Lower, s.Upper) }

func (s Clip) Apply(p *preprocessing.Preprocessor) { p.Clip(s.Lower, s.Upper, s.Columns...) }

type Bin struct {
	Bins    int
	Columns []string
}

func (s Bin) Name() string { return fmt.Sprintf("bin:%d", s.Bins) }

func (s Bin) Apply(p *preprocessing.Preprocessor) { p.Bin(s.Bins, s.Columns...) }

type Dedupe struct{}

func (Dedupe) Name() string { return "dedupe" }

func (Dedupe) Apply(p *preprocessing.Preprocessor) { p.DropDuplicates() }

// DropSparse removes columns whose missing ratio exceeds Threshold.
type DropSparse struct {
	Threshold float64
}

func (s DropSparse) Name() string { return fmt.Sprintf("dropsparse:%g", s.Threshold) }

func (s DropSparse) Apply(p *preprocessing.Preprocessor) { p.DropSparse(s.Threshold) }
