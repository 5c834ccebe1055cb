package dataprep

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

// FillMethod selects how FillNA computes the fill value.
type FillMethod int

const (
	FillDefault FillMethod = iota
	FillMean
	FillMedian
	FillMode
)

// ParseFillMethod maps "mean", "median" and "mode" to their methods.
// Anything else fills with the literal default.
func ParseFillMethod(s string) FillMethod {
	switch strings.ToLower(s) {
	case "mean":
		return FillMean
	case "median":
		return FillMedian
	case "mode":
		return FillMode
	default:
		return FillDefault
	}
}

func (m FillMethod) String() string {
	switch m {
	case FillMean:
		return "mean"
	case FillMedian:
		return "median"
	case FillMode:
		return "mode"
	default:
		return "default"
	}
}

// ScaleMethod selects a numeric rescaling.
type ScaleMethod int

const (
	ScaleMinMax ScaleMethod = iota
	ScaleStandard
	ScaleRobust
	ScaleLog
)

// ParseScaleMethod accepts minMax, standard, robust and log.
func ParseScaleMethod(s string) (ScaleMethod, error) {
	switch strings.ToLower(s) {
	case "minmax", "min_max":
		return ScaleMinMax, nil
	case "standard", "zscore":
		return ScaleStandard, nil
	case "robust":
		return ScaleRobust, nil
	case "log":
		return ScaleLog, nil
	}
	return 0, errors.Wrapf(dataset.ErrUnsupportedMethod, "scale method %q (use minMax, standard, robust or log)", s)
}

func (m ScaleMethod) String() string {
	switch m {
	case ScaleMinMax:
		return "minMax"
	case ScaleStandard:
		return "standard"
	case ScaleRobust:
		return "robust"
	case ScaleLog:
		return "log"
	default:
		return "unknown"
	}
}

// EncodeMethod selects a categorical encoding.
type EncodeMethod int

const (
	EncodeLabel EncodeMethod = iota
	EncodeOneHot
	EncodeFrequency
)

// ParseEncodeMethod accepts label, oneHot and freq.
func ParseEncodeMethod(s string) (EncodeMethod, error) {
	switch strings.ToLower(s) {
	case "label":
		return EncodeLabel, nil
	case "onehot", "one_hot":
		return EncodeOneHot, nil
	case "freq", "frequency":
		return EncodeFrequency, nil
	}
	return 0, errors.Wrapf(dataset.ErrUnsupportedMethod, "encode method %q (use label, oneHot or freq)", s)
}

func (m EncodeMethod) String() string {
	switch m {
	case EncodeLabel:
		return "label"
	case EncodeOneHot:
		return "oneHot"
	case EncodeFrequency:
		return "freq"
	default:
		return "unknown"
	}
}
