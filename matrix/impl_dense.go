// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula row*w + col.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep a presence bit per cell so "no default" grids can tell an unset
//     cell from a stored zero value.
//
// Complexity quicksheet:
//   - New: O(w*h); At/Set/Lookup: O(1); Clone: O(w*h); Row: O(w); Col: O(h).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"         // ctor tag
	ctxRows   = "NewFromRows" // ctor tag
	ctxAt     = "At"          // method tag used in error wrappers
	ctxLookup = "Lookup"      // method tag used in error wrappers
	ctxSet    = "Set"         // method tag used in error wrappers
	ctxRow    = "Row"         // method tag used in error wrappers
	ctxCol    = "Col"         // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtAbsent   = "_"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// lineErrorf is denseErrorf for single-index methods (row or column edits).
func lineErrorf(method string, i int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, i, err)
}

// Dense is a concrete row-major grid.
//   - w,h hold dimensions (width = columns, height = rows).
//   - cells is a flat buffer of length w*h in row-major order (offset = row*w + col).
//   - def/hasDef is the default element fixed at construction.
//
// Structural edits replace cells wholesale; callers must not rely on storage
// identity. Dense is not safe for concurrent mutation.
type Dense[T comparable] struct {
	w, h   int       // column and row counts (>=0)
	cells  []slot[T] // contiguous row-major storage (len == w*h)
	def    T         // default element
	hasDef bool      // false ⇒ new cells are absent
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// New creates a width×height grid. With WithDefault every cell holds the
// default; without it every cell is absent.
//
// Implementation:
//   - Stage 1: validate width>=0 && height>=0 and that width*height fits
//     in an int; else ErrBadShape.
//   - Stage 2: resolve options and allocate the slot buffer.
//   - Stage 3: fill with the default when one is configured.
//
// Zero dimensions are legal: New[T](0, 3) is a 0-wide, 3-tall grid that
// still accepts InsertCol(0, ...).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New[T comparable](width, height int, opts ...Option[T]) (*Dense[T], error) {
	if err := checkShape(width, height); err != nil {
		return nil, denseErrorf(ctxNew, width, height, err)
	}
	o := gatherOptions(opts...)

	m := &Dense[T]{
		w:      width,
		h:      height,
		def:    o.def,
		hasDef: o.hasDef,
	}
	m.cells = m.newBuffer(width * height)

	return m, nil
}

// NewFromRows builds a grid from row slices: height = len(rows), width =
// len(rows[0]). Every cell is present; the input is copied.
//
// Errors:
//   - ErrDimensionMismatch when rows have differing lengths.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewFromRows[T comparable](rows [][]T, opts ...Option[T]) (*Dense[T], error) {
	var width int
	if len(rows) > 0 {
		width = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("Dense.%s: row %d has %d values, want %d: %w",
				ctxRows, i, len(r), width, ErrDimensionMismatch)
		}
	}

	m, err := New(width, len(rows), opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m.h; i++ {
		base := i * m.w
		for j = 0; j < m.w; j++ {
			m.cells[base+j] = slot[T]{v: rows[i][j], ok: true}
		}
	}

	return m, nil
}

// newBuffer allocates n slots holding the default (or absent slots when no
// default is configured).
func (m *Dense[T]) newBuffer(n int) []slot[T] {
	buf := make([]slot[T], n)
	if m.hasDef {
		fill := m.defaultSlot()
		for i := range buf {
			buf[i] = fill
		}
	}

	return buf
}

// defaultSlot is the slot placed into newly created cells.
func (m *Dense[T]) defaultSlot() slot[T] {
	return slot[T]{v: m.def, ok: m.hasDef}
}

// Width returns the column count.
// Complexity: O(1).
func (m *Dense[T]) Width() int { return m.w }

// Height returns the row count.
// Complexity: O(1).
func (m *Dense[T]) Height() int { return m.h }

// Shape packs Width() and Height() into a single call.
// Complexity: O(1).
func (m *Dense[T]) Shape() (width, height int) { return m.w, m.h }

// Default returns the default element and whether one was configured.
func (m *Dense[T]) Default() (T, bool) { return m.def, m.hasDef }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with their own tag.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if err := checkIndex(row, m.h); err != nil {
		return 0, err
	}
	if err := checkIndex(col, m.w); err != nil {
		return 0, err
	}

	return row*m.w + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Absent cells yield the zero T; use Lookup to tell them apart.
//
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.cells[off].v, nil
}

// Lookup returns the value at (row, col) and whether the cell is present.
//
// Complexity: O(1).
func (m *Dense[T]) Lookup(row, col int) (T, bool, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, false, denseErrorf(ctxLookup, row, col, err)
	}
	s := m.cells[off]

	return s.v, s.ok, nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.cells[off] = slot[T]{v: v, ok: true}

	return nil
}

// Row returns a copy of row r. Absent cells appear as the zero T.
//
// Complexity: O(w).
func (m *Dense[T]) Row(r int) ([]T, error) {
	if err := checkIndex(r, m.h); err != nil {
		return nil, lineErrorf(ctxRow, r, err)
	}
	out := make([]T, m.w)
	base := r * m.w
	for j := range out {
		out[j] = m.cells[base+j].v
	}

	return out, nil
}

// Col returns a copy of column c. Absent cells appear as the zero T.
//
// Complexity: O(h).
func (m *Dense[T]) Col(c int) ([]T, error) {
	if err := checkIndex(c, m.w); err != nil {
		return nil, lineErrorf(ctxCol, c, err)
	}
	out := make([]T, m.h)
	for i := range out {
		out[i] = m.cells[i*m.w+c].v
	}

	return out, nil
}

// Clone returns an independent copy: new buffer, same shape and default.
// Element values are copied as-is, so pointer elements are shared.
//
// Complexity: O(w*h).
func (m *Dense[T]) Clone() Matrix[T] {
	return m.clone()
}

// clone is Clone with the concrete return type.
func (m *Dense[T]) clone() *Dense[T] {
	cp := make([]slot[T], len(m.cells))
	copy(cp, m.cells)

	return &Dense[T]{
		w:      m.w,
		h:      m.h,
		cells:  cp,
		def:    m.def,
		hasDef: m.hasDef,
	}
}

// String dumps rows for diagnostics, "[a, b]\n[c, d]\n", absent cells as "_".
// Not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.h; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.w
		for j = 0; j < m.w; j++ {
			if s := m.cells[base+j]; s.ok {
				fmt.Fprintf(&b, "%v", s.v)
			} else {
				b.WriteString(_fmtAbsent)
			}
			if j+1 < m.w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
