// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/openpath/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseShapes checks the accepted and rejected shapes of NewDense.
func TestNewDenseShapes(t *testing.T) {
	m, err := matrix.NewDense(0, 0) // the empty instance is legal
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(0, 3) // 0×k has no cell layout
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	_, err = empty.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGetClone validates Set/At round trips and that Clone is deep.
func TestSetGetClone(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	cp := m.Clone()
	require.NoError(t, cp.Set(1, 2, 1))
	val, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val, "clone must not alias the original buffer")
}

// TestRowAndFlatAreCopies checks that Row and Flat never expose internal storage.
func TestRowAndFlatAreCopies(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0}, row)
	row[0] = 99

	flat := m.Flat()
	require.Equal(t, []float64{0, 1, 2, 0}, flat)
	flat[1] = 99

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestString renders a small matrix row by row.
func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1.5}, {2, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1.5]\n[2, 0]\n", m.String())
}
