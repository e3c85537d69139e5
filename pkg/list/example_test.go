package list_test

import (
	"fmt"

	"github.com/atsuko/constlist/pkg/list"
)

// Tables like this are computed once, while the package is initialized.
var sortedPrimes = list.Sort(list.Of(7, 2, 11, 5, 3))

func Example() {
	fmt.Println(sortedPrimes)
	fmt.Println(list.Index(sortedPrimes, 1))
	// Output:
	// [2 3 5 7 11]
	// 3
}

func ExampleSplit() {
	evens, odds := list.Split(list.Of(1, 2, 3, 4, 5))
	fmt.Println(evens, odds)
	// Output: [1 3 5] [2 4]
}

func ExampleMerge() {
	fmt.Println(list.Merge(list.Of(1, 3, 5), list.Of(2, 4, 6)))
	// Output: [1 2 3 4 5 6]
}

func ExampleAppend() {
	fmt.Println(list.Append(list.Of(1, 2), list.Of(3, 4)))
	// Output: [1 2 3 4]
}

func ExampleInit() {
	l := list.Of(1, 2, 3)
	fmt.Println(list.Init(l), list.Last(l))
	// Output: [1 2] 3
}

func ExampleSortFunc() {
	byLen := func(a, b string) bool { return len(a) <= len(b) }
	fmt.Println(list.SortFunc(list.Of("ccc", "a", "bb"), byLen))
	// Output: [a bb ccc]
}
