// Package lvgrid is an in-memory grid toolkit: a generic two-dimensional
// container for canvases, board and puzzle state, and small tables.
//
// What is inside
//
//	matrix/ — Dense[T]: bounds-checked access, row/column insert & delete,
//	          region and line fills, shallow clone, equality & hashing
//
// Quick example:
//
//	m, _ := matrix.New(3, 3, matrix.WithDefault("."))
//	_ = m.FillLine(0, 0, 1, 1, 3, 3, "X")
//	fmt.Print(m)
//
//	[X, ., .]
//	[., X, .]
//	[., ., X]
//
// Pure Go, no cgo; the only dependencies are test tooling.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
