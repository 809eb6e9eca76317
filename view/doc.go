// SPDX-License-Identifier: MIT

// Package view provides Table, a live rectangular window onto a host
// dataset, plus the helpers that read and write blocks of cells directly.
//
// A Table holds no data. It keeps two ordered lists of absolute
// coordinates (rows and columns of the host store) and a getter/setter
// pair bound per column according to the column's type. Every read and
// write goes straight to the host, so several overlapping tables over the
// same store always agree.
//
// Sub-tables are derived with index specifiers resolved against the
// parent's lists; nesting depth never matters, coordinates stay absolute:
//
//	t, _ := view.New(store)
//	tail, _ := t.Sub(index.From(1), index.All())
//	_ = tail.Set(index.At(0), index.At(0), 99) // writes absolute row 1
//
// Writes are all-or-nothing up to the host: specifiers, shape and cell
// conversion are checked before the first setter runs. Errors a host
// setter reports mid-block propagate unchanged.
//
// Iterators returned by Iter read the store lazily; mutating the store
// while an iterator is running is visible to it and is not guarded.
package view
