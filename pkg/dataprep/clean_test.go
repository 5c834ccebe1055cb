package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

func TestDropDuplicates(t *testing.T) {
	ds, err := dataset.FromMap([]string{"a", "b"}, map[string][]any{
		"a": {1, 1, nil, nil, 1},
		"b": {"x", "x", "y", "y", "1"},
	})
	require.NoError(t, err)

	DropDuplicates(ds)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, dataset.Row{dataset.Number(1), dataset.Text("x")}, ds.Row(0))
	assert.Equal(t, dataset.Row{dataset.Missing(), dataset.Text("y")}, ds.Row(1))
	assert.Equal(t, dataset.Row{dataset.Number(1), dataset.Text("1")}, ds.Row(2))
}

func TestDropSparse(t *testing.T) {
	ds, err := dataset.FromMap([]string{"a", "b", "c"}, map[string][]any{
		"a": {1, 2, 3, 4},
		"b": {nil, nil, nil, 1},
		"c": {nil, 1, 2, 3},
	})
	require.NoError(t, err)

	dropped, err := DropSparse(ds, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, dropped)
	assert.Equal(t, []string{"a", "c"}, ds.Names())

	_, err = DropSparse(ds, 2)
	assert.Error(t, err)
}
