package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-collection-utils/arr"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

func ExampleFilter() {
	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleIndex() {
	fmt.Println(arr.Index(map[string]string{"lang": "go"}, "lang"))
	fmt.Println(arr.Index([]string{"a", "b", "c"}, 2))
	fmt.Println(arr.Index([]string{"a", "b", "c"}, -1))
	// Output:
	// go
	// c
	// [a b c]
}

func ExampleIterator() {
	it, ok := arr.Iterator(map[string]int{"b": 2, "a": 1})
	fmt.Println(ok, iterators.Drain(it))
	// Output: true [1 2]
}

func ExampleReverseInPlace() {
	items := []string{"x", "y", "z"}
	arr.ReverseInPlace(items)
	fmt.Println(items)
	// Output: [z y x]
}
