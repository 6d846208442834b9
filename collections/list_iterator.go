package collections

import "github.com/hasbyte1/go-collection-utils/iterators"

// listIterator is the live cursor behind List.Iterator and List.ListIterator.
// cursor sits between elements; lastRet is the index of the element returned
// by the last Next or Previous, or -1 after a structural change.
type listIterator[T comparable] struct {
	list    *List[T]
	cursor  int
	lastRet int
}

func (it *listIterator[T]) HasNext() bool { return it.cursor < len(it.list.items) }

func (it *listIterator[T]) Next() (T, error) {
	if it.cursor >= len(it.list.items) {
		var zero T
		return zero, iterators.ErrNoSuchElement
	}
	it.lastRet = it.cursor
	it.cursor++
	return it.list.items[it.lastRet], nil
}

func (it *listIterator[T]) HasPrevious() bool { return it.cursor > 0 }

func (it *listIterator[T]) Previous() (T, error) {
	if it.cursor == 0 {
		var zero T
		return zero, iterators.ErrNoSuchElement
	}
	it.cursor--
	it.lastRet = it.cursor
	return it.list.items[it.cursor], nil
}

func (it *listIterator[T]) NextIndex() int { return it.cursor }

func (it *listIterator[T]) PreviousIndex() int { return it.cursor - 1 }

func (it *listIterator[T]) Remove() error {
	if it.lastRet < 0 || it.lastRet >= len(it.list.items) {
		return iterators.ErrIllegalState
	}
	it.list.removeAt(it.lastRet)
	if it.lastRet < it.cursor {
		it.cursor--
	}
	it.lastRet = -1
	return nil
}

func (it *listIterator[T]) Set(item T) error {
	if it.lastRet < 0 || it.lastRet >= len(it.list.items) {
		return iterators.ErrIllegalState
	}
	it.list.items[it.lastRet] = item
	return nil
}

func (it *listIterator[T]) Add(item T) error {
	it.list.insertAt(it.cursor, item)
	it.cursor++
	it.lastRet = -1
	return nil
}
