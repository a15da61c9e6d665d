// SPDX-License-Identifier: MIT

// Package matrix - bulk fills on Dense (rectangular region, strided line).
//
// Both fills validate the whole footprint before the first write.

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxFillRegion = "FillRegion"
	ctxFillLine   = "FillLine"
)

// FillRegion sets every cell (i, j) with r0 ≤ i < r1 and c0 ≤ j < c1 to v.
//
// The start corner must lie inside the grid. The end corner is exclusive and
// may reach Height()/Width() but not exceed them; it is not clamped. A region
// with r1 ≤ r0 or c1 ≤ c0 is empty and the call is a no-op.
//
// Errors:
//   - ErrOutOfRange when (r0, c0) is outside the grid or r1 > Height() or c1 > Width().
//
// Complexity:
//   - Time O((r1-r0)*(c1-c0)), Space O(1).
func (m *Dense[T]) FillRegion(r0, c0, r1, c1 int, v T) error {
	if _, err := m.indexOf(r0, c0); err != nil {
		return regionErrorf(r0, c0, r1, c1, err)
	}
	if r1 <= r0 || c1 <= c0 {
		return nil
	}
	if r1 > m.h || c1 > m.w {
		return regionErrorf(r0, c0, r1, c1, ErrOutOfRange)
	}

	fill := slot[T]{v: v, ok: true}
	var i, j, base int
	for i = r0; i < r1; i++ {
		base = i * m.w
		for j = c0; j < c1; j++ {
			m.cells[base+j] = fill
		}
	}

	return nil
}

func regionErrorf(r0, c0, r1, c1 int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxFillRegion, r0, c0, r1, c1, err)
}

// FillLine stores v at (r0 + k*dr, c0 + k*dc) for k = 0, 1, ... while the row
// stays below r1 and the column stays below c1.
//
// dr == 0 draws a horizontal line, dc == 0 a vertical one, both positive a
// diagonal. Steps must be non-negative and not both zero.
//
// The start corner must lie inside the grid, and so must every visited cell;
// since coordinates only grow, checking the last one covers the rest. A walk
// that visits nothing (r0 ≥ r1 or c0 ≥ c1) is a no-op.
//
// Errors:
//   - ErrBadStep when dr < 0, dc < 0 or dr == dc == 0.
//   - ErrOutOfRange when the start corner or any visited cell is outside the grid.
//
// Complexity:
//   - Time O(k) for k visited cells, Space O(1).
func (m *Dense[T]) FillLine(r0, c0, dr, dc, r1, c1 int, v T) error {
	if dr < 0 || dc < 0 || (dr == 0 && dc == 0) {
		return lineFillErrorf(r0, c0, dr, dc, r1, c1, ErrBadStep)
	}
	if _, err := m.indexOf(r0, c0); err != nil {
		return lineFillErrorf(r0, c0, dr, dc, r1, c1, err)
	}

	n := lineSteps(r0, dr, r1)
	if nc := lineSteps(c0, dc, c1); nc < n {
		n = nc
	}
	if n == 0 {
		return nil
	}
	last := n - 1
	if _, err := m.indexOf(r0+last*dr, c0+last*dc); err != nil {
		return lineFillErrorf(r0, c0, dr, dc, r1, c1, err)
	}

	fill := slot[T]{v: v, ok: true}
	var k int
	for k = 0; k < n; k++ {
		m.cells[(r0+k*dr)*m.w+(c0+k*dc)] = fill
	}

	return nil
}

// lineSteps counts the k ≥ 0 with start + k*step < end.
// A zero step never advances: the axis imposes no limit when start < end.
func lineSteps(start, step, end int) int {
	if start >= end {
		return 0
	}
	if step == 0 {
		return maxSteps
	}

	return (end-start-1)/step + 1
}

// maxSteps stands in for "unbounded" on a zero-step axis. The other axis has
// a positive step (ErrBadStep guards dr == dc == 0) and always bounds the walk.
const maxSteps = math.MaxInt

func lineFillErrorf(r0, c0, dr, dc, r1, c1 int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d,%d,%d,%d,%d): %w", ctxFillLine, r0, c0, dr, dc, r1, c1, err)
}
