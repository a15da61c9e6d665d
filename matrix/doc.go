// Package matrix offers a generic, mutable two-dimensional grid.
//
// The matrix package provides:
//
//   - Dense[T], a row-major grid of comparable elements with bounds-checked
//     At/Set/Lookup that return errors instead of panicking.
//   - Structural edits: InsertRow/InsertRowValues, InsertCol/InsertColValues,
//     DeleteRow, DeleteCol. Insertion at Height()/Width() appends.
//   - Bulk fills: FillRegion for rectangles, FillLine for horizontal,
//     vertical and diagonal strides.
//   - Clone (shallow: pointer elements are shared), structural Equal and a
//     Hash consistent with it.
//
// A grid is built with a fixed default element (WithDefault) or without one;
// in the latter case new cells are absent until set, and Lookup reports it.
//
// Every failed call leaves the grid exactly as it was. Errors wrap the
// sentinels in errors.go and are matched with errors.Is.
//
// Dense is not safe for concurrent mutation; guard it externally.
//
// Intended for drawing canvases, grid puzzles and tabular data. There is no
// linear algebra here.
package matrix
