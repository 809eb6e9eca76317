// Package tabview is a view-indexed, missing-value-aware access layer over
// tabular data owned by a host program.
//
// What is tabview?
//
//	A set of small packages that let Go code read and write a host's
//	dataset and matrices through live windows, never copies:
//		• value:    27 missing-value sentinels, scalars, vectors, arithmetic
//		• vecmath:  the numeric function catalogue with domain checks
//		• index:    slices, positions and their composition over index lists
//		• shape:    turning Go values into the rectangle a write selects
//		• view:     Table, the live row×column view, plus bulk helpers
//		• matrix:   View, the live window onto a named host matrix
//		• variable: Proxy, a live single-column façade
//		• format:   display format grammar and rendering
//
// Hosts plug in through package host (Data, Matrices). Package
// host/memhost is an in-memory host backed by gonum matrices with a YAML
// dataset loader, used by the tests and by the tabview command.
//
// Quick example:
//
//	s, _ := memhost.LoadYAML(f)
//	t, _ := view.New(s, view.WithColumnNames("price mpg"))
//	top, _ := t.Sub(index.To(5), index.All())
//	_ = top.Set(index.All(), index.At(1), nil) // five missing values
//
// Missing values are ordinary doubles at the top of the float64 range;
// arithmetic on them yields the canonical missing value "." and numeric
// functions degrade to "." outside their domain instead of failing.
package tabview
