package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

func newDescriber(t *testing.T) *Describer {
	t.Helper()
	ds, err := dataset.FromMap([]string{"idade", "renda", "cidade"}, map[string][]any{
		"idade":  {20, 30, nil, 50},
		"renda":  {1000, 2000, 3000, nil},
		"cidade": {"A", "B", "A", nil},
	})
	require.NoError(t, err)
	return NewDescriber(ds, nil)
}

func TestDescriberNumeric(t *testing.T) {
	d := newDescriber(t)

	mean, err := d.Mean("idade")
	require.NoError(t, err)
	assert.InDelta(t, 100.0/3.0, mean, 1e-9)

	median, err := d.Median("idade")
	require.NoError(t, err)
	assert.Equal(t, 30.0, median)

	v, err := d.Variance("renda")
	require.NoError(t, err)
	assert.InDelta(t, 2e6/3, v, 1e-6)

	// rows 0 and 1 are the only ones with both values
	cov, err := d.Covariance("idade", "renda")
	require.NoError(t, err)
	assert.InDelta(t, 2500, cov, 1e-9)
}

func TestDescriberErrors(t *testing.T) {
	d := newDescriber(t)

	_, err := d.Mean("cidade")
	assert.ErrorIs(t, err, dataset.ErrTypeMismatch)

	_, err = d.Mean("pais")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)

	ds, err := dataset.FromMap(nil, map[string][]any{"vazio": {nil, nil}})
	require.NoError(t, err)
	_, err = NewDescriber(ds, Gonum{}).StdDev("vazio")
	assert.ErrorIs(t, err, dataset.ErrComputation)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDescriberCategorical(t *testing.T) {
	d := newDescriber(t)

	modes, err := d.Modes("cidade")
	require.NoError(t, err)
	assert.Equal(t, []dataset.Cell{dataset.Text("A")}, modes)

	items, err := d.Itemset("cidade")
	require.NoError(t, err)
	assert.Equal(t, []dataset.Cell{dataset.Text("A"), dataset.Text("B"), dataset.Missing()}, items)

	rel, err := d.RelativeFrequency("cidade")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rel[dataset.Text("A")], 1e-12)
	assert.InDelta(t, 0.25, rel[dataset.Missing()], 1e-12)

	p, err := d.ConditionalProbability("cidade", dataset.Text("B"), dataset.Text("A"))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)
}

func TestDescriberCumulative(t *testing.T) {
	d := newDescriber(t)

	cum, err := d.CumulativeFrequency("idade", false)
	require.NoError(t, err)
	assert.Equal(t, []Cumulative[float64]{{20, 1}, {30, 2}, {50, 3}}, cum)

	rel, err := d.CumulativeFrequency("idade", true)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, rel[2].Count, 1e-12)

	_, err = d.CumulativeFrequency("cidade", false)
	assert.ErrorIs(t, err, dataset.ErrTypeMismatch)
}
