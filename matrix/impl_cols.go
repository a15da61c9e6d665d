// SPDX-License-Identifier: MIT

// Package matrix - column edits on Dense.
//
// Columns are strided in the row-major buffer, so each edit walks the rows
// and copies the two segments around the edited column. The new buffer is
// always h rows of the new width.

package matrix

const (
	ctxInsertCol       = "InsertCol"
	ctxInsertColValues = "InsertColValues"
	ctxDeleteCol       = "DeleteCol"
)

// InsertCol inserts a column of default cells at position col, 0 ≤ col ≤ Width().
// Columns previously at index ≥ col move right by one. col == Width() appends.
//
// Errors:
//   - ErrOutOfRange when col is outside [0, Width()].
//
// Complexity:
//   - Time O(w*h), Space O((w+1)*h).
func (m *Dense[T]) InsertCol(col int) error {
	if err := checkInsertIndex(col, m.w); err != nil {
		return lineErrorf(ctxInsertCol, col, err)
	}
	fill := m.defaultSlot()
	m.spliceCol(col, func(int) slot[T] { return fill })

	return nil
}

// InsertColValues inserts vals as a new column at position col, 0 ≤ col ≤ Width().
// len(vals) must equal Height(); vals[i] lands in row i.
//
// Errors:
//   - ErrOutOfRange when col is outside [0, Width()].
//   - ErrDimensionMismatch when len(vals) != Height().
//
// Complexity:
//   - Time O(w*h), Space O((w+1)*h).
func (m *Dense[T]) InsertColValues(col int, vals []T) error {
	if err := checkInsertIndex(col, m.w); err != nil {
		return lineErrorf(ctxInsertColValues, col, err)
	}
	if err := ValidateVecLen(vals, m.h); err != nil {
		return lineErrorf(ctxInsertColValues, col, err)
	}
	m.spliceCol(col, func(i int) slot[T] { return slot[T]{v: vals[i], ok: true} })

	return nil
}

// spliceCol rebuilds the buffer with one extra column at index col; cellAt
// supplies the new cell for each row. Caller has validated col ∈ [0, w].
func (m *Dense[T]) spliceCol(col int, cellAt func(row int) slot[T]) {
	oldW, newW := m.w, m.w+1
	buf := make([]slot[T], m.h*newW)

	var i, src, dst int
	for i = 0; i < m.h; i++ {
		src, dst = i*oldW, i*newW
		copy(buf[dst:dst+col], m.cells[src:src+col])             // cols [0,col)
		buf[dst+col] = cellAt(i)                                 // new cell
		copy(buf[dst+col+1:dst+newW], m.cells[src+col:src+oldW]) // cols [col,w) shifted right
	}

	m.cells = buf
	m.w = newW
}

// DeleteCol removes col, 0 ≤ col < Width(). Columns right of it move left by one.
//
// Errors:
//   - ErrOutOfRange when col is outside [0, Width()).
//
// Complexity:
//   - Time O(w*h), Space O((w-1)*h).
func (m *Dense[T]) DeleteCol(col int) error {
	if err := checkIndex(col, m.w); err != nil {
		return lineErrorf(ctxDeleteCol, col, err)
	}
	oldW, newW := m.w, m.w-1
	buf := make([]slot[T], m.h*newW)

	var i, src, dst int
	for i = 0; i < m.h; i++ {
		src, dst = i*oldW, i*newW
		copy(buf[dst:dst+col], m.cells[src:src+col])
		copy(buf[dst+col:dst+newW], m.cells[src+col+1:src+oldW])
	}

	m.cells = buf
	m.w = newW

	return nil
}
