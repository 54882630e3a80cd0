// Package matrix_test contains unit tests for sequence ingestion and flat
// export.
package matrix_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/mx/matrix"
	"github.com/stretchr/testify/require"
)

// TestFlat_IsACopy ensures the exported slice never aliases backing storage.
func TestFlat_IsACopy(t *testing.T) {
	m, err := matrix.NewFromFlat(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	buf := m.Flat() // export (e.g. toward a GPU-facing byte buffer)
	buf[0] = 42     // scribble over the exported copy

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // the matrix is untouched

	err = m.Set(0, 0, 7) // and mutating the matrix ...
	require.NoError(t, err)
	require.Equal(t, 42.0, buf[0]) // ... leaves the exported copy alone
}

// TestValues_RowMajorOrder drains the iterator and checks row-major order.
func TestValues_RowMajorOrder(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{0, 1, 2, 3}, {4, 5, 6, 7}})
	require.NoError(t, err)

	var got []int
	for v := range m.Values() { // one row-major pass
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, got)
}

// TestValues_EarlyBreak ensures the iterator honors consumer termination.
func TestValues_EarlyBreak(t *testing.T) {
	m, err := matrix.NewFromFlat(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)

	var got []int
	for v := range m.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break // stop mid-sequence
		}
	}
	require.Equal(t, []int{1, 2}, got)
}

// TestNewFromSeq_Exact ingests exactly rows*cols elements.
func TestNewFromSeq_Exact(t *testing.T) {
	src := []float64{0, 1, 2, 3, 4, 5}
	m, err := matrix.NewFromSeq(2, 3, slices.Values(src))
	require.NoError(t, err)

	require.Equal(t, src, m.Flat())
}

// TestNewFromSeq_Truncates ensures longer input is cut at rows*cols.
func TestNewFromSeq_Truncates(t *testing.T) {
	src := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	m, err := matrix.NewFromSeq(2, 2, slices.Values(src)) // only 4 slots
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3}, m.Flat()) // surplus ignored
}

// TestNewFromSeq_PadsWithZero ensures shorter input zero-fills the tail.
func TestNewFromSeq_PadsWithZero(t *testing.T) {
	src := []float64{9, 8}
	m, err := matrix.NewFromSeq(2, 2, slices.Values(src))
	require.NoError(t, err)

	require.Equal(t, []float64{9, 8, 0, 0}, m.Flat()) // default pad is zero
}

// TestNewFromSeq_WithFill overrides the pad value for the unfilled tail.
func TestNewFromSeq_WithFill(t *testing.T) {
	src := []float64{9, 8}
	m, err := matrix.NewFromSeq(2, 2, slices.Values(src), matrix.WithFill(-1.0))
	require.NoError(t, err)

	require.Equal(t, []float64{9, 8, -1, -1}, m.Flat())
}

// TestNewFromSeq_FiniteOnly rejects non-finite elements under strict policy.
func TestNewFromSeq_FiniteOnly(t *testing.T) {
	src := []float64{1, math.Inf(1), 3, 4}

	_, err := matrix.NewFromSeq(2, 2, slices.Values(src), matrix.WithFiniteOnly[float64]())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewFromSeq(2, 2, slices.Values(src)) // lax default
	require.NoError(t, err)
	got, err := m.AtFlat(1)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))
}

// TestNewFromSeq_NilAndBadShape covers the remaining failure modes.
func TestNewFromSeq_NilAndBadShape(t *testing.T) {
	_, err := matrix.NewFromSeq[int](2, 2, nil) // nil sequence
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewFromSeq(0, 2, slices.Values([]int{1})) // zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestMatrixRoundTrip_SeqValues verifies that consuming a matrix through
// Values and re-ingesting through NewFromSeq reproduces the original.
func TestMatrixRoundTrip_SeqValues(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	back, err := matrix.NewFromSeq(2, 3, m.Values())
	require.NoError(t, err)

	ok, err := matrix.Equal(m, back)
	require.NoError(t, err)
	require.True(t, ok)
}
