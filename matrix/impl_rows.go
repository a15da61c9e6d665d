// SPDX-License-Identifier: MIT

// Package matrix - row edits on Dense.
//
// Every edit validates first, builds the new buffer, then swaps it in, so a
// failed call leaves the grid untouched. Rows are contiguous in the buffer,
// which makes each edit three block copies.

package matrix

const (
	ctxInsertRow       = "InsertRow"
	ctxInsertRowValues = "InsertRowValues"
	ctxDeleteRow       = "DeleteRow"
)

// InsertRow inserts a row of default cells at position row, 0 ≤ row ≤ Height().
// Rows previously at index ≥ row move down by one. row == Height() appends.
//
// Errors:
//   - ErrOutOfRange when row is outside [0, Height()].
//
// Complexity:
//   - Time O(w*h), Space O(w*(h+1)).
func (m *Dense[T]) InsertRow(row int) error {
	if err := checkInsertIndex(row, m.h); err != nil {
		return lineErrorf(ctxInsertRow, row, err)
	}
	m.spliceRow(row, func(dst []slot[T]) {
		fill := m.defaultSlot()
		for j := range dst {
			dst[j] = fill
		}
	})

	return nil
}

// InsertRowValues inserts vals as a new row at position row, 0 ≤ row ≤ Height().
// len(vals) must equal Width(); vals is copied.
//
// Errors:
//   - ErrOutOfRange when row is outside [0, Height()].
//   - ErrDimensionMismatch when len(vals) != Width().
//
// Complexity:
//   - Time O(w*h), Space O(w*(h+1)).
func (m *Dense[T]) InsertRowValues(row int, vals []T) error {
	if err := checkInsertIndex(row, m.h); err != nil {
		return lineErrorf(ctxInsertRowValues, row, err)
	}
	if err := ValidateVecLen(vals, m.w); err != nil {
		return lineErrorf(ctxInsertRowValues, row, err)
	}
	m.spliceRow(row, func(dst []slot[T]) {
		for j, v := range vals {
			dst[j] = slot[T]{v: v, ok: true}
		}
	})

	return nil
}

// spliceRow rebuilds the buffer with one extra row at index row, populated by fill.
// Caller has validated row ∈ [0, h].
func (m *Dense[T]) spliceRow(row int, fill func(dst []slot[T])) {
	w := m.w
	buf := make([]slot[T], (m.h+1)*w)

	copy(buf[:row*w], m.cells[:row*w])     // rows [0,row) unchanged
	fill(buf[row*w : (row+1)*w])           // the new row
	copy(buf[(row+1)*w:], m.cells[row*w:]) // rows [row,h) shifted down

	m.cells = buf
	m.h++
}

// DeleteRow removes row, 0 ≤ row < Height(). Rows below it move up by one.
// Deleting the last row of a 1-tall grid leaves a 0-tall grid of the same width.
//
// Errors:
//   - ErrOutOfRange when row is outside [0, Height()).
//
// Complexity:
//   - Time O(w*h), Space O(w*(h-1)).
func (m *Dense[T]) DeleteRow(row int) error {
	if err := checkIndex(row, m.h); err != nil {
		return lineErrorf(ctxDeleteRow, row, err)
	}
	w := m.w
	buf := make([]slot[T], (m.h-1)*w)

	copy(buf[:row*w], m.cells[:row*w])
	copy(buf[row*w:], m.cells[(row+1)*w:])

	m.cells = buf
	m.h--

	return nil
}
