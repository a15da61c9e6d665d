// SPDX-License-Identifier: MIT

// Package matrix: public Matrix interface and the cell slot type.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix is a two-dimensional mutable grid of T values.
//
// Width is the column count and Height the row count; indices are zero-based
// (row, col). Implementations return ErrOutOfRange instead of panicking on
// invalid indices.
//
// Complexity notes: all methods are expected O(1) except Clone (O(w*h)).
type Matrix[T comparable] interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// At returns the element at (row, col). An absent cell yields the zero T.
	At(row, col int) (T, error)

	// Lookup is At that also reports whether the cell holds a value.
	Lookup(row, col int) (T, bool, error)

	// Set stores v at (row, col).
	Set(row, col int, v T) error

	// Clone returns an independent grid of the same shape and default whose
	// cells hold the same element values (shallow copy).
	Clone() Matrix[T]
}

// slot is one cell of the backing buffer.
// ok == false is the absent marker: no default was configured and nothing has
// been stored there yet.
type slot[T comparable] struct {
	v  T    // stored value (zero when absent)
	ok bool // presence bit
}
