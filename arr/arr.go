package arr

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		if i := Search(items, fns[0]); i >= 0 {
			return items[i], true
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return Search(items, fn) >= 0
}

// ContainsValue reports whether items contains value (requires comparable T).
func ContainsValue[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Unique returns the distinct elements of items in first-occurrence order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	ReverseInPlace(out)
	return out
}

// ReverseInPlace reverses items by swapping symmetric positions.
// It does not allocate.
func ReverseInPlace[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
