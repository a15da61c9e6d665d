// SPDX-License-Identifier: MIT

// Package matrix - structural equality and hashing for Dense.
//
// Two grids are equal when they share width and height and every pair of
// cells is equal: both absent, or both present with equal values. The default
// element does not take part. Hash walks cells in the same row-major order so
// equal grids hash equal.

package matrix

import "hash/maphash"

// hashMul is the multiplier of the hash recurrence.
const hashMul = 7

// hashSeed keys cell hashing for Hash. Fixed per process, so hashes are
// stable for the lifetime of the program but not across runs.
var hashSeed = maphash.MakeSeed()

// Equal reports whether other has the same shape and pairwise equal cells,
// comparing values with ==. A nil other is never equal to a non-nil grid.
//
// T's == must be an equivalence relation for Equal and Hash to behave: float
// cells holding NaN are unequal even to themselves, and interface cells
// holding uncomparable values (slices, maps) make == panic. Use EqualFunc
// and HashFunc for such element types.
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Dense[T]) Equal(other Matrix[T]) bool {
	return m.EqualFunc(other, func(a, b T) bool { return a == b })
}

// EqualFunc is Equal with a caller-supplied element equivalence. eq is only
// called for pairs of present cells.
//
// Implementation:
//   - Stage 1: nil and shape guards.
//   - Stage 2: *Dense fast path over both flat buffers.
//   - Stage 3: fallback through Lookup for other Matrix implementations.
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Dense[T]) EqualFunc(other Matrix[T], eq func(a, b T) bool) bool {
	if m == nil {
		return ValidateNotNil(other) != nil
	}
	if ValidateNotNil(other) != nil {
		return false
	}
	if ValidateSameShape[T](m, other) != nil {
		return false
	}

	if o, ok := other.(*Dense[T]); ok {
		if o == m {
			return true
		}
		for i, s := range m.cells {
			if !slotsEqual(s, o.cells[i], eq) {
				return false
			}
		}

		return true
	}

	var i, j int
	for i = 0; i < m.h; i++ {
		for j = 0; j < m.w; j++ {
			v, ok, err := other.Lookup(i, j)
			if err != nil {
				return false
			}
			if !slotsEqual(m.cells[i*m.w+j], slot[T]{v: v, ok: ok}, eq) {
				return false
			}
		}
	}

	return true
}

// slotsEqual treats absent as equal only to absent.
func slotsEqual[T comparable](a, b slot[T], eq func(a, b T) bool) bool {
	if a.ok != b.ok {
		return false
	}

	return !a.ok || eq(a.v, b.v)
}

// Hash returns a hash of the shape and the present cells, consistent with
// Equal: h = w + 7*h, then h = h*7 + hash(cell) for each present cell in
// row-major order, wrapping on overflow. Cells are hashed with
// maphash.Comparable, which agrees with == (including +0 and -0). NaN cells
// hash randomly and interface cells holding uncomparable values panic; use
// HashFunc for those.
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Dense[T]) Hash() uint64 {
	return m.HashFunc(func(v T) uint64 { return maphash.Comparable(hashSeed, v) })
}

// HashFunc is Hash with a caller-supplied cell hash. Pair it with EqualFunc:
// cells equal under the caller's equivalence must hash equal.
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Dense[T]) HashFunc(hash func(T) uint64) uint64 {
	h := uint64(m.w) + hashMul*uint64(m.h)
	for _, s := range m.cells {
		if s.ok {
			h = h*hashMul + hash(s.v)
		}
	}

	return h
}
