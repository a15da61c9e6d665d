// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for index, shape and length checks.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//    with their own method tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkIndex reports ErrOutOfRange unless 0 ≤ i < n.
// Used for cell access and deletion.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// checkInsertIndex reports ErrOutOfRange unless 0 ≤ i ≤ n.
// Insertion at n appends after the last row/column.
func checkInsertIndex(i, n int) error {
	if i < 0 || i > n {
		return ErrOutOfRange
	}

	return nil
}

// checkShape reports ErrBadShape for negative dimensions and for shapes
// whose cell count width*height does not fit in an int.
func checkShape(width, height int) error {
	if width < 0 || height < 0 {
		return ErrBadShape
	}
	if width != 0 && height > math.MaxInt/width {
		return ErrBadShape
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Complexity: O(1).
func ValidateNotNil[T comparable](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal width and height.
// Assumes both are non-nil (see ValidateNotNil).
//
// Complexity: O(1).
func ValidateSameShape[T comparable](a, b Matrix[T]) error {
	if a.Width() != b.Width() {
		return validatorErrorf("ValidateSameShape: Width", ErrDimensionMismatch)
	}
	if a.Height() != b.Height() {
		return validatorErrorf("ValidateSameShape: Height", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the value slice has exactly n elements.
// A nil slice is accepted only when n == 0 (a zero-width row or a
// zero-height column).
//
// Complexity: O(1).
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
