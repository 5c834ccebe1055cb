package dataset

// Kind is the declared type of a column.
type Kind uint8

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Kinds        []Kind
}

// Numeric returns the names of the numeric columns in order.
func (s Schema) Numeric() []string { return s.filter(Numeric) }

// Categorical returns the names of the categorical columns in order.
func (s Schema) Categorical() []string { return s.filter(Categorical) }

func (s Schema) filter(k Kind) []string {
	var out []string
	for i, name := range s.FeatureNames {
		if s.Kinds[i] == k {
			out = append(out, name)
		}
	}
	return out
}

// InferKind returns Numeric when every non-missing cell is a number.
func InferKind(cells []Cell) Kind {
	for _, c := range cells {
		if c.IsText() {
			return Categorical
		}
	}
	return Numeric
}
