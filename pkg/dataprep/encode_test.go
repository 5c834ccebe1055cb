package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

func cityDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromMap([]string{"id", "cidade", "nota"}, map[string][]any{
		"id":     {1, 2, 3, 4},
		"cidade": {"Recife", "Salvador", "Recife", "São Paulo"},
		"nota":   {"b", nil, "a", "b"},
	})
	require.NoError(t, err)
	return ds
}

func ints(cs ...int) []dataset.Cell {
	out := make([]dataset.Cell, len(cs))
	for i, c := range cs {
		out[i] = dataset.Int(c)
	}
	return out
}

func TestLabel(t *testing.T) {
	ds := cityDataset(t)
	e := NewEncoder(ds)

	require.NoError(t, e.Label("cidade", "nota"))
	assert.Equal(t, ints(0, 1, 0, 2), cells(t, ds, "cidade"))
	assert.Equal(t, ints(0, 1, 2, 0), cells(t, ds, "nota"))

	col, _ := ds.Column("cidade")
	assert.Equal(t, dataset.Numeric, col.Kind)

	m, ok := e.Mapping("nota")
	require.True(t, ok)
	assert.Equal(t, []dataset.Cell{dataset.Text("b"), dataset.Missing(), dataset.Text("a")}, m)
}

func TestLabelIsIdempotent(t *testing.T) {
	ds := cityDataset(t)
	e := NewEncoder(ds)

	require.NoError(t, e.Label("cidade"))
	first := ds.Clone()
	require.NoError(t, e.Label("cidade"))
	assert.True(t, first.Equal(ds))
}

func TestLabelDeterministic(t *testing.T) {
	a, b := cityDataset(t), cityDataset(t)
	require.NoError(t, NewEncoder(a).Label("cidade", "nota"))
	require.NoError(t, NewEncoder(b).Label("cidade", "nota"))
	assert.True(t, a.Equal(b))
}

func TestOneHot(t *testing.T) {
	ds := cityDataset(t)
	require.NoError(t, NewEncoder(ds).OneHot("cidade"))

	assert.Equal(t, []string{"id", "cidade_Recife", "cidade_Salvador", "cidade_São Paulo", "nota"}, ds.Names())
	assert.False(t, ds.Has("cidade"))

	want := [][]int{{1, 0, 0}, {0, 1, 0}, {1, 0, 0}, {0, 0, 1}}
	for i, row := range want {
		for k, name := range []string{"cidade_Recife", "cidade_Salvador", "cidade_São Paulo"} {
			assert.Equal(t, dataset.Int(row[k]), cells(t, ds, name)[i], "row %d column %s", i, name)
		}
	}
	assert.Equal(t, []dataset.Cell{dataset.Number(1), dataset.Number(2), dataset.Number(3), dataset.Number(4)}, cells(t, ds, "id"))
}

func TestOneHotMissingCategoryRowSums(t *testing.T) {
	ds := cityDataset(t)
	require.NoError(t, NewEncoder(ds).OneHot("nota"))

	names := []string{"nota_b", "nota_NA", "nota_a"}
	for _, n := range names {
		assert.True(t, ds.Has(n), n)
	}
	for i := range ds.Len() {
		sum := 0.0
		for _, n := range names {
			v, _ := cells(t, ds, n)[i].Float()
			sum += v
		}
		assert.Equal(t, 1.0, sum, "row %d", i)
	}
}

func TestOneHotSharedLabels(t *testing.T) {
	ds, err := dataset.New(dataset.NewColumn("v", []dataset.Cell{
		dataset.Number(1), dataset.Text("1"), dataset.Missing(), dataset.Text("NA"), dataset.Text("x"),
	}))
	require.NoError(t, err)

	require.NoError(t, NewEncoder(ds).OneHot("v"))
	names := []string{"v_1(number)", "v_1(text)", "v_NA(missing)", "v_NA(text)", "v_x"}
	assert.Equal(t, names, ds.Names())
	for k, name := range names {
		for i := range ds.Len() {
			want := 0
			if i == k {
				want = 1
			}
			assert.Equal(t, dataset.Int(want), cells(t, ds, name)[i], "row %d column %s", i, name)
		}
	}
}

func TestOneHotNameCollision(t *testing.T) {
	ds, err := dataset.FromMap([]string{"cor", "cor_azul"}, map[string][]any{
		"cor":      {"azul", "verde"},
		"cor_azul": {1, 0},
	})
	require.NoError(t, err)
	before := ds.Clone()

	err = NewEncoder(ds).OneHot("cor")
	assert.ErrorIs(t, err, dataset.ErrDuplicateColumn)
	assert.True(t, before.Equal(ds))
}

func TestEncodeErrors(t *testing.T) {
	ds := cityDataset(t)
	before := ds.Clone()
	e := NewEncoder(ds)

	assert.ErrorIs(t, e.OneHot("cidade", "pais"), dataset.ErrUnknownColumn)
	assert.ErrorIs(t, e.Label(), dataset.ErrUnknownColumn)
	assert.ErrorIs(t, e.Encode(EncodeMethod(42), "cidade"), dataset.ErrUnsupportedMethod)
	assert.True(t, before.Equal(ds))

	_, err := ParseEncodeMethod("binary")
	assert.ErrorIs(t, err, dataset.ErrUnsupportedMethod)
}

func TestFrequencyEncode(t *testing.T) {
	ds := cityDataset(t)
	require.NoError(t, NewEncoder(ds).Encode(EncodeFrequency, "cidade"))
	assert.Equal(t, []dataset.Cell{
		dataset.Number(0.5), dataset.Number(0.25), dataset.Number(0.5), dataset.Number(0.25),
	}, cells(t, ds, "cidade"))
}
