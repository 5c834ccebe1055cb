package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromColumns(t *testing.T) {
	m, err := FromColumns([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 3, m.R)
	assert.Equal(t, 2, m.C)
	assert.Equal(t, 5.0, m.At(1, 1))
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m.Rows())

	rows := m.Rows()
	rows[0][0] = -1
	assert.Equal(t, 1.0, m.At(0, 0), "Rows returns copies")

	_, err = FromColumns([][]float64{{1}, {1, 2}})
	assert.Error(t, err)

	empty, err := FromColumns(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Rows())
}
