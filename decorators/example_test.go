package decorators_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-collection-utils/collections"
	"github.com/hasbyte1/go-collection-utils/decorators"
)

func ExampleNewPredicated() {
	_, err := decorators.NewPredicated[string](collections.New("a", "bb", "ccc"),
		func(s string) bool { return len(s) <= 2 })
	fmt.Println(errors.Is(err, collections.ErrPredicateRejected))
	// Output: true
}

func ExampleNewBounded() {
	b, _ := decorators.NewBounded[string](collections.Empty[string](), 2)
	b.Add("x")
	b.Add("y")

	_, err := b.Add("z")
	fmt.Println(errors.Is(err, collections.ErrCapacityExceeded))

	_, err = b.Add("x")
	fmt.Println(err)
	// Output:
	// true
	// <nil>
}

func ExampleNewUnmodifiable() {
	u, _ := decorators.NewUnmodifiable[int](collections.New(1, 2, 3))

	_, err := u.Add(4)
	fmt.Println(errors.Is(err, collections.ErrUnsupportedOperation))
	fmt.Println(u.Size(), u.Contains(2))
	// Output:
	// true
	// 3 true
}

func ExampleSynchronized_Do() {
	s, _ := decorators.NewSynchronized[string](collections.New("a", "b"))

	s.Do(func(c collections.Collection[string]) error {
		it := c.Iterator()
		for it.HasNext() {
			v, _ := it.Next()
			fmt.Print(v, " ")
		}
		return nil
	})
	fmt.Println()
	// Output: a b
}
