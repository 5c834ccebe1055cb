package dataset

import (
	"strconv"
)

type cellState uint8

const (
	stateMissing cellState = iota
	stateNumber
	stateText
)

// MissingLabel is the label used for the missing marker in generated column names.
const MissingLabel = "NA"

// Cell is a single value: missing, a number or a text.
// The zero value is missing.
type Cell struct {
	state cellState
	num   float64
	text  string
}

// Missing returns the missing marker.
func Missing() Cell { return Cell{} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{state: stateNumber, num: v} }

// Int returns a numeric cell holding an integer code.
func Int(v int) Cell { return Number(float64(v)) }

// Text returns a categorical cell.
func Text(s string) Cell { return Cell{state: stateText, text: s} }

func (c Cell) IsMissing() bool { return c.state == stateMissing }
func (c Cell) IsNumber() bool  { return c.state == stateNumber }
func (c Cell) IsText() bool    { return c.state == stateText }

// Float returns the numeric value and whether the cell holds one.
func (c Cell) Float() (float64, bool) {
	return c.num, c.state == stateNumber
}

// Str returns the text value and whether the cell holds one.
func (c Cell) Str() (string, bool) {
	return c.text, c.state == stateText
}

// Label is the human readable form used for one-hot column names.
func (c Cell) Label() string {
	switch c.state {
	case stateNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case stateText:
		return c.text
	default:
		return MissingLabel
	}
}

// Value returns nil, a float64 or a string.
func (c Cell) Value() any {
	switch c.state {
	case stateNumber:
		return c.num
	case stateText:
		return c.text
	default:
		return nil
	}
}

// Equal reports whether both cells hold the same state and value.
func (c Cell) Equal(o Cell) bool {
	return c == o
}

func (c Cell) String() string { return c.Label() }
