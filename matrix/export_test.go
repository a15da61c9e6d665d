// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private helpers and the options snapshot.
// Lives in a _test.go file, so none of it reaches production builds.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot[T comparable] struct {
	Def    T
	HasDef bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way New does.
func GatherOptionsSnapshot_TestOnly[T comparable](opts ...Option[T]) OptionsSnapshot[T] {
	o := gatherOptions(opts...)

	return OptionsSnapshot[T]{Def: o.def, HasDef: o.hasDef}
}

// LineSteps_TestOnly forwards to lineSteps.
var LineSteps_TestOnly = lineSteps

// MaxSteps_TestOnly exposes the zero-step sentinel.
const MaxSteps_TestOnly = maxSteps
