// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public method returns one of these (wrapped with call context)
// and tests match them via errors.Is. No method panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Public
// methods wrap the sentinel once with their own tag and arguments, e.g.
// "Dense.InsertRow(4): matrix: index out of range"; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// step -> index -> length. A call with both a bad index and a bad value
// slice reports ErrOutOfRange.

var (
	// ErrBadShape is returned when a requested dimension is negative or the
	// cell count width*height overflows int.
	// Zero dimensions are legal and produce an empty matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// half-open interval the operation accepts.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a value slice does not match the
	// dimension it must fill (InsertRowValues, InsertColValues) or that
	// NewFromRows received ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadStep indicates a FillLine stride that is negative or zero in both
	// directions (the walk would never terminate or would move backwards).
	ErrBadStep = errors.New("matrix: invalid step")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
