package atomlist_test

import (
	"fmt"

	"github.com/katalvlaran/atomlist"
)

// ExampleList demonstrates the canonical build/remove/sort flow.
func ExampleList() {
	// 1) Start empty and append three values:
	l, _ := atomlist.New[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)
	fmt.Println("after appends:", l.ToSlice())

	// 2) Remove by value:
	fmt.Println("removed 2?", l.Remove(2))

	// 3) Sort descending:
	_ = l.Sort(func(a, b int) int { return b - a })
	fmt.Println("after sort:", l.ToSlice())

	// Output:
	// after appends: [1 2 3]
	// removed 2? true
	// after sort: [3 1]
}

// ExampleList_slice shows a snapshot-bound sub-range view: later
// mutations of the list never show through an existing view.
func ExampleList_slice() {
	l, _ := atomlist.New(atomlist.WithInitial([]string{"a", "b", "c", "d"}))

	v, _ := l.Slice(1, 3)
	l.Clear() // the view keeps its snapshot

	fmt.Println("view:", v.ToSlice())
	fmt.Println("list empty?", l.IsEmpty())
	fmt.Println("view insert:", v.Insert(0, "x"))

	// Output:
	// view: [b c]
	// list empty? true
	// view insert: atomlist: view is read-only
}

// ExampleList_transform applies an element-wise operator; the result is
// committed as a new snapshot and visible to every later read.
func ExampleList_transform() {
	l, _ := atomlist.New(atomlist.WithInitial([]int{1, 2, 3}))

	_ = l.Transform(func(v int) int { return v * v })

	fmt.Println(l.ToSlice())
	// Output: [1 4 9]
}

// ExampleList_cursor walks a snapshot in both directions.
func ExampleList_cursor() {
	l, _ := atomlist.New(atomlist.WithInitial([]int{10, 20, 30}))

	c := l.Cursor()
	for c.HasNext() {
		v, _ := c.Next()
		fmt.Print(v)
		if c.HasNext() {
			fmt.Print(" ")
		}
	}
	fmt.Println()
	for c.HasPrev() {
		v, _ := c.Prev()
		fmt.Print(v)
		if c.HasPrev() {
			fmt.Print(" ")
		}
	}
	fmt.Println()

	// Output:
	// 10 20 30
	// 30 20 10
}
