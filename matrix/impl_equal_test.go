// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEqualLaws checks reflexivity, symmetry and transitivity.
func TestEqualLaws(t *testing.T) {
	a := seqGrid(t, 3, 2)
	b := seqGrid(t, 3, 2)
	c, ok := b.Clone().(*matrix.Dense[int])
	require.True(t, ok)

	require.True(t, a.Equal(a))
	require.True(t, a.Equal(a.Clone()))

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	require.True(t, b.Equal(c))
	require.True(t, a.Equal(c))

	require.NoError(t, c.Set(1, 2, -1))
	require.False(t, a.Equal(c))
	require.False(t, c.Equal(a))
}

// TestEqualSemanticNotIdentity verifies that equal strings built separately
// compare equal.
func TestEqualSemanticNotIdentity(t *testing.T) {
	x := strings.Repeat("ab", 3)
	y := strings.Join([]string{"ab", "ab", "ab"}, "")

	a := mustNew(t, 1, 1, "")
	b := mustNew(t, 1, 1, "")
	require.NoError(t, a.Set(0, 0, x))
	require.NoError(t, b.Set(0, 0, y))

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

// TestEqualShape verifies that same cells in a different shape differ.
func TestEqualShape(t *testing.T) {
	a := mustNew(t, 2, 3, 0)
	b := mustNew(t, 3, 2, 0)
	require.False(t, a.Equal(b))

	e1 := mustNew(t, 0, 2, 0)
	e2 := mustNew(t, 0, 3, 0)
	require.False(t, e1.Equal(e2))
	require.True(t, e1.Equal(mustNew(t, 0, 2, 5)), "default does not take part")
}

// TestEqualAbsentCells verifies absent cells equal only absent cells.
func TestEqualAbsentCells(t *testing.T) {
	absent, err := matrix.New[int](1, 1)
	require.NoError(t, err)
	zero := mustNew(t, 1, 1, 0)

	require.False(t, absent.Equal(zero))
	require.False(t, zero.Equal(absent))

	other, err := matrix.New[int](1, 1)
	require.NoError(t, err)
	require.True(t, absent.Equal(other))

	require.NoError(t, absent.Set(0, 0, 0))
	require.True(t, absent.Equal(zero))
}

// TestEqualFallbackPath compares against a non-*Dense Matrix.
func TestEqualFallbackPath(t *testing.T) {
	a := seqGrid(t, 3, 3)
	b := seqGrid(t, 3, 3)

	require.True(t, a.Equal(hide[int]{b}))

	require.NoError(t, b.Set(2, 2, 100))
	require.False(t, a.Equal(hide[int]{b}))

	n, err := matrix.New[int](3, 3)
	require.NoError(t, err)
	require.False(t, a.Equal(hide[int]{n}), "absent cells differ from present zero")
}

// TestEqualNil verifies nil arguments are never equal to a grid.
func TestEqualNil(t *testing.T) {
	a := mustNew(t, 1, 1, 0)
	require.False(t, a.Equal(nil))

	var typed *matrix.Dense[int]
	require.False(t, a.Equal(typed))
	require.True(t, typed.Equal(nil))

	require.ErrorIs(t, matrix.ValidateNotNil[int](typed), matrix.ErrNilMatrix)
}

// TestEqualFunc uses a custom equivalence.
func TestEqualFunc(t *testing.T) {
	a := mustFromRows(t, [][]string{{"Go", "grid"}})
	b := mustFromRows(t, [][]string{{"GO", "GRID"}})

	require.False(t, a.Equal(b))
	require.True(t, a.EqualFunc(b, strings.EqualFold))

	fold := func(s string) uint64 { return uint64(len(s)) }
	require.Equal(t, a.HashFunc(fold), b.HashFunc(fold))
}

// TestHashConsistency checks equal grids hash equal across edits and clones.
func TestHashConsistency(t *testing.T) {
	a := seqGrid(t, 4, 3)
	b := seqGrid(t, 4, 3)
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, a.Hash(), a.Hash(), "deterministic")

	c := a.Clone().(*matrix.Dense[int])
	require.Equal(t, a.Hash(), c.Hash())

	require.NoError(t, c.Set(0, 0, 1000))
	assert.NotEqual(t, a.Hash(), c.Hash())

	// Shape takes part even with no cells.
	e1 := mustNew(t, 2, 0, 0)
	e2 := mustNew(t, 0, 2, 0)
	require.Equal(t, uint64(2), e1.Hash())
	require.Equal(t, uint64(14), e2.Hash())
}

// TestHashSignedZero verifies +0 and -0, which are ==, hash the same.
func TestHashSignedZero(t *testing.T) {
	a := mustNew(t, 1, 1, 0.0)
	b := mustNew(t, 1, 1, math.Copysign(0, -1))

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

// TestHashSkipsAbsent verifies absent cells contribute nothing.
func TestHashSkipsAbsent(t *testing.T) {
	m, err := matrix.New[string](2, 1)
	require.NoError(t, err)

	width, height := m.Shape()
	require.Equal(t, uint64(width+7*height), m.Hash())

	require.NoError(t, m.Set(0, 1, "x"))
	constant := func(string) uint64 { return 1 }
	require.Equal(t, uint64((width+7*height)*7+1), m.HashFunc(constant))
}

// TestEqualFuncNaN shows EqualFunc/HashFunc restoring reflexivity for float
// cells, where == alone treats NaN as unequal to itself.
func TestEqualFuncNaN(t *testing.T) {
	m := mustNew(t, 2, 1, math.NaN())
	c := m.Clone()

	require.False(t, m.Equal(c), "NaN != NaN under ==")

	sameFloat := func(a, b float64) bool {
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	}
	require.True(t, m.EqualFunc(c, sameFloat))

	c2, ok := c.(*matrix.Dense[float64])
	require.True(t, ok)
	bits := func(v float64) uint64 {
		if math.IsNaN(v) {
			return 1
		}
		if v == 0 {
			return 0
		}
		return math.Float64bits(v)
	}
	require.Equal(t, m.HashFunc(bits), c2.HashFunc(bits))
}
