package pipeline

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataprep"
)

var validate = validator.New()

// Recipe is the YAML form of a pipeline:
//
//	steps:
//	  - op: fillna
//	    method: mean
//	    columns: [idade]
//	  - op: encode
//	    method: oneHot
//	    columns: [cidade]
type Recipe struct {
	Steps []StepConfig `yaml:"steps" validate:"required,min=1,dive"`
}

// StepConfig describes one step. Which fields apply depends on Op.
type StepConfig struct {
	Op        string   `yaml:"op" validate:"required,oneof=fillna dropna scale encode clip bin dedupe dropsparse"`
	Columns   []string `yaml:"columns" validate:"dive,required"`
	Method    string   `yaml:"method"`
	Default   any      `yaml:"default"`
	Lower     float64  `yaml:"lower" validate:"gte=0,lte=100"`
	Upper     *float64 `yaml:"upper" validate:"omitempty,gte=0,lte=100"`
	Bins      int      `yaml:"bins" validate:"gte=0"`
	Threshold float64  `yaml:"threshold" validate:"gte=0,lte=1"`
}

// LoadRecipe reads and validates a recipe file.
func LoadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read recipe")
	}
	r, err := ParseRecipe(data)
	if err != nil {
		return nil, errors.Wrapf(err, "recipe %s", path)
	}
	return r, nil
}

// ParseRecipe decodes YAML and validates it. Unknown keys are rejected.
func ParseRecipe(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.UnmarshalStrict(data, &r); err != nil {
		return nil, errors.Wrap(err, "decode recipe")
	}
	if err := validate.Struct(&r); err != nil {
		return nil, errors.Wrap(err, "invalid recipe")
	}
	return &r, nil
}

// Pipeline resolves every step config into a runnable step.
func (r *Recipe) Pipeline() (*Pipeline, error) {
	pl := NewPipeline()
	for i, sc := range r.Steps {
		s, err := sc.step()
		if err != nil {
			return nil, errors.Wrapf(err, "step %d (%s)", i+1, sc.Op)
		}
		pl.Add(s)
	}
	return pl, nil
}

func (s StepConfig) step() (Step, error) {
	switch s.Op {
	case "dedupe":
		return Dedupe{}, nil
	case "dropsparse":
		return DropSparse{Threshold: s.Threshold}, nil
	}

	if len(s.Columns) == 0 {
		return nil, errors.New("columns are required")
	}
	switch s.Op {
	case "fillna":
		return Fill{Method: dataprep.ParseFillMethod(s.Method), Default: s.Default, Columns: s.Columns}, nil
	case "dropna":
		return DropNA{Columns: s.Columns}, nil
	case "scale":
		m, err := dataprep.ParseScaleMethod(s.Method)
		if err != nil {
			return nil, err
		}
		return Scale{Method: m, Columns: s.Columns}, nil
	case "encode":
		m, err := dataprep.ParseEncodeMethod(s.Method)
		if err != nil {
			return nil, err
		}
		return Encode{Method: m, Columns: s.Columns}, nil
	case "clip":
		upper := 100.0
		if s.Upper != nil {
			upper = *s.Upper
		}
		return Clip{Lower: s.Lower, Upper: upper, Columns: s.Columns}, nil
	case "bin":
		return Bin{Bins: s.Bins, Columns: s.Columns}, nil
	}
	return nil, errors.Errorf("unknown op %q", s.Op)
}
