package stats

// Provider computes descriptive statistics over non-missing numeric values.
// Every method fails with ErrEmpty on an empty slice.
type Provider interface {
	Mean(x []float64) (float64, error)
	Median(x []float64) (float64, error)
	Mode(x []float64) (float64, error)
	StdDev(x []float64) (float64, error)
}

// Gonum is the default stateless Provider.
type Gonum struct{}

var _ Provider = Gonum{}

func (Gonum) Mean(x []float64) (float64, error)   { return Mean(x) }
func (Gonum) Median(x []float64) (float64, error) { return Median(x) }
func (Gonum) Mode(x []float64) (float64, error)   { return Mode(x) }
func (Gonum) StdDev(x []float64) (float64, error) { return Std(x) }
