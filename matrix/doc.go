// SPDX-License-Identifier: MIT

// Package matrix provides View, a live window onto a named numeric matrix
// owned by a host (host.Matrices).
//
// A View holds the matrix name, two lists of absolute coordinates and one
// display format shared by every element. It never copies data: Get and
// ToGrid read the host on every call and Set writes straight through.
//
// Positions given to Get, Sub and Set are view-local and index the
// coordinate lists; negative positions count from the end, slices follow
// the usual start:stop:step rules (see package index).
//
// Missing values travel as their raw encoding. Get decodes them into
// value sentinels, Set encodes sentinels and nil back, and any NaN or
// infinity written becomes the canonical missing value.
//
// Dense and Set interoperate with gonum: Dense copies a view into a
// *mat.Dense and Set accepts any mat.Matrix as the value to write.
//
//	v, _ := matrix.New(store, "A")
//	top, _ := v.Sub(index.At(0), index.All())
//	_ = top.Set(index.All(), index.All(), []float64{7, 8, 9})
package matrix
