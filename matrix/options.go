// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The default element is the only knob. Leaving it unset is itself a
//     configuration: every new cell starts absent (see slot in types.go).
//   - The default is fixed at construction; Clone carries it over.
package matrix

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option[T comparable] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
type Options[T comparable] struct {
	def    T    // default element for new cells
	hasDef bool // false ⇒ new cells are absent
}

// WithDefault sets the element used to fill the initial grid, rows inserted
// by InsertRow and columns inserted by InsertCol.
//
// Complexity: O(1).
func WithDefault[T comparable](def T) Option[T] {
	return func(o *Options[T]) {
		o.def = def
		o.hasDef = true
	}
}

// gatherOptions resolves opts over the zero configuration (no default).
// Nil options are skipped.
func gatherOptions[T comparable](opts ...Option[T]) Options[T] {
	var o Options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
