package dataset

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// ToCell converts a raw Go value into a cell. nil and NaN are missing,
// numbers and bools are numeric, strings are text.
func ToCell(v any) (Cell, error) {
	switch x := v.(type) {
	case nil:
		return Missing(), nil
	case Cell:
		return x, nil
	case string:
		return Text(x), nil
	case []byte:
		return Text(string(x)), nil
	case float64:
		if math.IsNaN(x) {
			return Missing(), nil
		}
		return Number(x), nil
	case float32:
		if math.IsNaN(float64(x)) {
			return Missing(), nil
		}
		return Number(float64(x)), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		bool, json.Number:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return Missing(), errors.Wrapf(ErrTypeMismatch, "convert %T: %v", v, err)
		}
		return Number(f), nil
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return Missing(), errors.Wrapf(ErrTypeMismatch, "unsupported value type %T", v)
		}
		return Text(s), nil
	}
}

// ParseCell interprets a text field. Fields listed in markers are missing,
// fields that parse as floats are numeric and everything else is text.
func ParseCell(field string, markers []string) Cell {
	for _, m := range markers {
		if field == m {
			return Missing()
		}
	}
	if field == "" {
		return Text(field)
	}
	if f, err := cast.ToFloat64E(field); err == nil && !math.IsNaN(f) {
		return Number(f)
	}
	return Text(field)
}
