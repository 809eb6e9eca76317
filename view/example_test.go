// Package view_test provides runnable examples of live tables.
// Each example is runnable via "go test -run Example".
package view_test

import (
	"fmt"

	"github.com/katalvlaran/tabview/host/memhost"
	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/view"
)

// ExampleTable_Sub derives a sub-table and writes through it.
func ExampleTable_Sub() {
	// 1) Build a 3×2 host: x = [1 3 5], y = [2 4 6].
	s := memhost.New(3)
	_ = s.AddNumeric("x", []float64{1, 3, 5})
	_ = s.AddNumeric("y", []float64{2, 4, 6})

	// 2) A table over the whole dataset.
	t, err := view.New(s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Rows 0..1 of column 1, then a write into that column.
	sub, _ := t.Sub(index.Range(0, 2), index.At(1))
	fmt.Println(sub.Rows(), sub.Cols())
	_ = sub.Set(index.All(), index.All(), []int{7, 8})

	// 4) The host sees the write; so does the full table.
	for row, err := range t.Iter() {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(row)
	}
	// Output:
	// [0 1] [1]
	// [1 7]
	// [3 8]
	// [5 6]
}

// ExampleNew_completeCases drops rows with a missing numeric value.
func ExampleNew_completeCases() {
	s := memhost.New(3)
	_ = s.AddNumeric("price", []float64{4099, 0, 3799})
	_ = s.AddString("make", []string{"AMC", "Buick", "Chev"})
	m := view.NewMirror(s, nil)
	_ = m.Set(index.At(1), index.At(0), nil) // nil stores "."

	t, _ := view.New(s, view.WithCompleteCases())
	fmt.Println(t.Rows())
	// Output: [0 2]
}
