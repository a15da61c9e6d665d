// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense tests and benchmarks.
//   • Compare whole grids with a readable diff instead of cell-by-cell asserts.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvgrid/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense path in Equal.
type hide[T comparable] struct{ matrix.Matrix[T] }

// mustNew allocates a w×h grid filled with def or fails the test.
func mustNew[T comparable](tb testing.TB, w, h int, def T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New(w, h, matrix.WithDefault(def))
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", w, h, err)
	}

	return m
}

// mustFromRows builds a grid from literal rows or fails the test.
func mustFromRows[T comparable](tb testing.TB, rows [][]T, opts ...matrix.Option[T]) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// gridOf snapshots m as row slices via Row. Absent cells appear as zero T.
func gridOf[T comparable](tb testing.TB, m *matrix.Dense[T]) [][]T {
	tb.Helper()
	out := make([][]T, m.Height())
	for i := range out {
		row, err := m.Row(i)
		if err != nil {
			tb.Fatalf("Row(%d): %v", i, err)
		}
		out[i] = row
	}

	return out
}

// requireGrid fails with a diff when m's cells differ from want.
// Nil and empty slices compare equal, so a 0-tall grid matches nil.
func requireGrid[T comparable](tb testing.TB, m *matrix.Dense[T], want [][]T) {
	tb.Helper()
	if diff := cmp.Diff(want, gridOf(tb, m), cmpopts.EquateEmpty()); diff != "" {
		tb.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// filledRows returns h rows of w copies of v.
func filledRows[T any](w, h int, v T) [][]T {
	rows := make([][]T, h)
	for i := range rows {
		rows[i] = make([]T, w)
		for j := range rows[i] {
			rows[i][j] = v
		}
	}

	return rows
}

// seqGrid returns a w×h grid whose cell (i,j) holds i*w + j, handy for
// tracking where cells move after an edit.
func seqGrid(tb testing.TB, w, h int) *matrix.Dense[int] {
	tb.Helper()
	m := mustNew(tb, w, h, 0)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if err := m.Set(i, j, i*w+j); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}
