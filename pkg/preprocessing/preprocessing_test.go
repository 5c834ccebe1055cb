package preprocessing

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataprep"
	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Mean(x []float64) (float64, error) {
	args := m.Called(x)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockProvider) Median(x []float64) (float64, error) {
	args := m.Called(x)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockProvider) Mode(x []float64) (float64, error) {
	args := m.Called(x)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockProvider) StdDev(x []float64) (float64, error) {
	args := m.Called(x)
	return args.Get(0).(float64), args.Error(1)
}

func scenario() map[string][]any {
	return map[string][]any{
		"idade":   {25, 30, nil, 45},
		"salario": {50000, 60000, 45000, nil},
		"cidade":  {"Recife", "Salvador", "Recife", "São Paulo"},
	}
}

func numbers(t *testing.T, p *Preprocessor, name string) []float64 {
	t.Helper()
	col, ok := p.Dataset().Column(name)
	require.True(t, ok, "column %q", name)
	out := make([]float64, len(col.Cells))
	for i, c := range col.Cells {
		v, ok := c.Float()
		require.True(t, ok, "%s[%d] is not a number", name, i)
		out[i] = v
	}
	return out
}

func TestFromMapShapeError(t *testing.T) {
	_, err := FromMap(nil, map[string][]any{"a": {1, 2}, "b": {3}})
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrShape)
}

func TestChainScenario(t *testing.T) {
	p, err := FromMap([]string{"idade", "salario", "cidade"}, scenario())
	require.NoError(t, err)

	got := p.FillNA(dataprep.FillMean, nil, "idade").
		FillNA(dataprep.FillMedian, nil, "salario").
		Scale(dataprep.ScaleMinMax, "idade").
		Encode(dataprep.EncodeOneHot, "cidade")
	require.Same(t, p, got)
	require.NoError(t, p.Err())

	idade := numbers(t, p, "idade")
	assert.Equal(t, 0.0, idade[0])
	assert.InDelta(t, (100.0/3.0-25)/20, idade[2], 1e-12)
	assert.Equal(t, 1.0, idade[3])

	assert.Equal(t, []float64{50000, 60000, 45000, 50000}, numbers(t, p, "salario"))

	assert.Equal(t, []string{"idade", "salario", "cidade_Recife", "cidade_Salvador", "cidade_São Paulo"}, p.Dataset().Names())
	assert.Equal(t, []float64{1, 0, 1, 0}, numbers(t, p, "cidade_Recife"))
	assert.Equal(t, []float64{0, 0, 0, 1}, numbers(t, p, "cidade_São Paulo"))

	m, ok := p.Mapping("cidade")
	require.True(t, ok)
	assert.Len(t, m, 3)
}

func TestLabelScenario(t *testing.T) {
	p, err := FromMap(nil, map[string][]any{"cidade": {"Recife", "Salvador", "Recife", "São Paulo"}})
	require.NoError(t, err)

	require.NoError(t, p.Encode(dataprep.EncodeLabel, "cidade").Err())
	assert.Equal(t, []float64{0, 1, 0, 2}, numbers(t, p, "cidade"))
}

func TestChainStopsAtFirstFailure(t *testing.T) {
	p, err := FromMap(nil, scenario())
	require.NoError(t, err)
	before := p.Dataset().Clone()

	p.Scale(dataprep.ScaleStandard, "idade", "pais").
		FillNA(dataprep.FillMean, nil, "idade")

	require.Error(t, p.Err())
	assert.ErrorIs(t, p.Err(), dataset.ErrUnknownColumn)
	assert.Contains(t, p.Err().Error(), "pais")
	assert.True(t, before.Equal(p.Dataset()), "no step may run after a failure")

	p.ClearErr()
	require.NoError(t, p.FillNA(dataprep.FillMean, nil, "idade").Err())
	assert.Len(t, numbers(t, p, "idade"), 4)
}

func TestScaleTypeMismatchIsAtomic(t *testing.T) {
	p, err := FromMap(nil, scenario())
	require.NoError(t, err)
	before := p.Dataset().Clone()

	err = p.Scale(dataprep.ScaleMinMax, "idade", "salario", "cidade").Err()
	assert.ErrorIs(t, err, dataset.ErrTypeMismatch)
	assert.True(t, before.Equal(p.Dataset()))
}

func TestUnsupportedMethods(t *testing.T) {
	p, err := FromMap(nil, scenario())
	require.NoError(t, err)

	assert.ErrorIs(t, p.Scale(dataprep.ScaleMethod(-1), "idade").Err(), dataset.ErrUnsupportedMethod)
	p.ClearErr()
	assert.ErrorIs(t, p.Encode(dataprep.EncodeMethod(-1), "cidade").Err(), dataset.ErrUnsupportedMethod)
}

func TestIsNANotNADoNotMutate(t *testing.T) {
	p, err := FromMap(nil, scenario())
	require.NoError(t, err)
	before := p.Dataset().Clone()

	na, err := p.IsNA("idade", "salario")
	require.NoError(t, err)
	ok, err := p.NotNA("idade", "salario")
	require.NoError(t, err)

	assert.Equal(t, 2, na.Len())
	assert.Equal(t, 2, ok.Len())
	assert.True(t, before.Equal(p.Dataset()))

	_, err = p.IsNA("pais")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)

	require.NoError(t, p.DropNA("idade", "salario").Err())
	assert.True(t, ok.Equal(p.Dataset()))
}

func TestDelegatesToProvider(t *testing.T) {
	prov := new(mockProvider)
	prov.On("Median", []float64{25, 30, 45}).Return(99.0, nil).Once()
	prov.On("Mean", []float64{50000, 60000, 45000}).Return(1.0, nil).Once()
	prov.On("StdDev", []float64{50000, 60000, 45000}).Return(0.0, nil).Once()

	p, err := FromMap(nil, scenario(), WithStats(prov))
	require.NoError(t, err)

	require.NoError(t, p.FillNA(dataprep.FillMedian, nil, "idade").Err())
	assert.Equal(t, 99.0, numbers(t, p, "idade")[2])

	require.NoError(t, p.Scale(dataprep.ScaleStandard, "salario").Err())
	col, _ := p.Dataset().Column("salario")
	assert.Equal(t, dataset.Number(0), col.Cells[0])
	assert.True(t, col.Cells[3].IsMissing())

	prov.AssertExpectations(t)
	prov.AssertNotCalled(t, "Mode", mock.Anything)
}

func TestFillNADefaultLiteral(t *testing.T) {
	p, err := FromMap(nil, scenario())
	require.NoError(t, err)

	require.NoError(t, p.FillNA(dataprep.ParseFillMethod("default_value"), 0, "idade", "salario").Err())
	assert.Equal(t, []float64{25, 30, 0, 45}, numbers(t, p, "idade"))
	assert.Equal(t, []float64{50000, 60000, 45000, 0}, numbers(t, p, "salario"))

	err = p.FillNA(dataprep.FillDefault, struct{}{}, "idade").Err()
	assert.Error(t, err)
}

func TestFillNAUnknownMethodWithoutDefault(t *testing.T) {
	p, err := FromMap(nil, scenario())
	require.NoError(t, err)
	before := p.Dataset().Clone()

	require.NoError(t, p.FillNA(dataprep.ParseFillMethod("bogus"), nil, "idade", "cidade").Err())
	assert.True(t, before.Equal(p.Dataset()))
}

func TestMatrix(t *testing.T) {
	p, err := FromMap([]string{"idade", "salario", "cidade"}, scenario())
	require.NoError(t, err)

	_, err = p.Matrix("idade")
	assert.ErrorIs(t, err, dataset.ErrComputation)

	_, err = p.Matrix("cidade")
	assert.ErrorIs(t, err, dataset.ErrTypeMismatch)

	require.NoError(t, p.DropNA("idade", "salario").Encode(dataprep.EncodeLabel, "cidade").Err())
	m, err := p.Matrix(p.Dataset().Names()...)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{25, 50000, 0}, {30, 60000, 1}}, m.Rows())
	assert.Equal(t, 60000.0, m.At(1, 1))
}

func TestStatisticsAndCleaning(t *testing.T) {
	p, err := FromMap(nil, map[string][]any{
		"a": {1, 1, 2, nil},
		"b": {"x", "x", "y", nil},
		"c": {nil, nil, nil, 1},
	})
	require.NoError(t, err)

	mean, err := p.Statistics().Mean("a")
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, mean, 1e-12)

	require.NoError(t, p.DropSparse(0.5).DropDuplicates().Err())
	assert.Equal(t, []string{"a", "b"}, p.Dataset().Names())
	assert.Equal(t, 3, p.Dataset().Len())
}

func TestLogsSteps(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := FromMap(nil, scenario(), WithLogger(log))
	require.NoError(t, err)
	p.DropNA("idade").Scale(dataprep.ScaleMinMax, "cidade")

	out := buf.String()
	assert.Contains(t, out, `"op":"dropna"`)
	assert.Contains(t, out, "preprocessing step failed")
	assert.Contains(t, out, `"op":"scale:minMax"`)
}
