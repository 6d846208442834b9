package arr

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-collection-utils/iterators"
)

// shape is the closed set of source layouts understood by Index and Iterator.
type shape int

const (
	shapeOther shape = iota
	shapeMap
	shapeSequence
	shapeArray
	shapeEnumeration
	shapeIterator
	shapeIterable
)

func shapeOf(v reflect.Value) shape {
	if !v.IsValid() {
		return shapeOther
	}
	switch v.Kind() {
	case reflect.Map:
		return shapeMap
	case reflect.Slice:
		return shapeSequence
	case reflect.Array:
		return shapeArray
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return shapeOther
		}
		if v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Array {
			return shapeArray
		}
	}
	switch {
	case hasMethod(v, "HasMoreElements", reflect.Bool) && hasMethod(v, "NextElement", reflect.Invalid):
		return shapeEnumeration
	case hasMethod(v, "HasNext", reflect.Bool) && hasMethod(v, "Next", reflect.Invalid):
		return shapeIterator
	case hasMethod(v, "Iterator", reflect.Invalid):
		return shapeIterable
	}
	return shapeOther
}

// hasMethod reports whether v has a niladic method called name whose first
// result is of kind first (reflect.Invalid accepts any result type).
func hasMethod(v reflect.Value, name string, first reflect.Kind) bool {
	m := v.MethodByName(name)
	if !m.IsValid() {
		return false
	}
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() == 0 {
		return false
	}
	return first == reflect.Invalid || t.Out(0).Kind() == first
}

// ─────────────────────────────────────────────────────────────────────────────
// Index
// ─────────────────────────────────────────────────────────────────────────────

// Index returns the element of obj addressed by key, or obj itself when key
// addresses nothing.
//
//   - Map containing key literally: the mapped value.
//   - key is a non-negative integer:
//     slice or array: the element at that position;
//     map: the key at that position in sorted key order;
//     enumeration, iterator or iterable: the element after skipping key
//     elements (the source is consumed).
//   - Anything else, including a negative key or a position past the end:
//     obj unchanged.
//
// For example:
//
//	arr.Index(map[string]int{"a": 1}, "a") // → 1
//	arr.Index([]string{"x", "y", "z"}, 2)  // → "z"
//	arr.Index([]string{"x"}, -1)           // → []string{"x"}
func Index(obj, key any) any {
	v, _ := Lookup(obj, key)
	return v
}

// Lookup is [Index] with an explicit hit flag: it returns (obj, false) in
// every case where Index falls back to returning obj unchanged.
func Lookup(obj, key any) (any, bool) {
	v := reflect.ValueOf(obj)
	s := shapeOf(v)

	if s == shapeMap {
		if k, ok := mapKey(v.Type().Key(), key); ok {
			if mv := v.MapIndex(k); mv.IsValid() {
				return mv.Interface(), true
			}
		}
	}

	idx, ok := toIndex(key)
	if !ok {
		return obj, false
	}

	switch s {
	case shapeMap:
		if keys := sortedKeys(v); idx < len(keys) {
			return keys[idx].Interface(), true
		}
	case shapeSequence, shapeArray:
		seq := reflect.Indirect(v)
		if idx < seq.Len() {
			return seq.Index(idx).Interface(), true
		}
	case shapeEnumeration, shapeIterator, shapeIterable:
		if c, ok := newCursor(v, s); ok {
			if item, found := nth(c, idx); found {
				return item, true
			}
		}
	}
	return obj, false
}

// mapKey converts key to a usable map key of type kt without coercion.
func mapKey(kt reflect.Type, key any) (reflect.Value, bool) {
	if key == nil {
		switch kt.Kind() {
		case reflect.Interface, reflect.Pointer:
			return reflect.Zero(kt), true
		}
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(key)
	if !kv.Type().AssignableTo(kt) || !kv.Comparable() {
		return reflect.Value{}, false
	}
	return kv, true
}

// toIndex accepts any integer kind holding a non-negative value.
func toIndex(key any) (int, bool) {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := v.Int(); n >= 0 && n <= math.MaxInt {
			return int(n), true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n := v.Uint(); n <= math.MaxInt {
			return int(n), true
		}
	}
	return 0, false
}

// sortedKeys returns the keys of the map v in a deterministic order.
func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)
	return keys
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		}
	}
	return cmp.Compare(describe(a), describe(b))
}

func describe(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	return fmt.Sprintf("%T:%v", v.Interface(), v.Interface())
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterator
// ─────────────────────────────────────────────────────────────────────────────

// Iterator returns an iterator view of obj.
//
// Iterators and enumerations are walked in place, iterables through their own
// Iterator method, slices and arrays by position and maps over their values
// in sorted key order. Any other shape yields (nil, false).
func Iterator(obj any) (iterators.Iterator[any], bool) {
	if it, ok := obj.(iterators.Iterator[any]); ok {
		return it, true
	}
	v := reflect.ValueOf(obj)
	switch s := shapeOf(v); s {
	case shapeMap:
		keys := sortedKeys(v)
		values := make([]any, len(keys))
		for i, k := range keys {
			values[i] = v.MapIndex(k).Interface()
		}
		return iterators.FromSlice(values), true
	case shapeSequence, shapeArray:
		return &positional{seq: reflect.Indirect(v)}, true
	case shapeEnumeration, shapeIterator, shapeIterable:
		if c, ok := newCursor(v, s); ok {
			return c, true
		}
	}
	return nil, false
}

// positional walks a slice or array value by index.
type positional struct {
	seq reflect.Value
	pos int
}

func (p *positional) HasNext() bool { return p.pos < p.seq.Len() }

func (p *positional) Next() (any, error) {
	if p.pos >= p.seq.Len() {
		return nil, iterators.ErrNoSuchElement
	}
	v := p.seq.Index(p.pos).Interface()
	p.pos++
	return v, nil
}

func (p *positional) Remove() error { return iterators.ErrUnsupportedOperation }

// cursor drives any instantiation of the iterator or enumeration contracts
// through reflection, since their element type is unknown here.
type cursor struct {
	hasNext reflect.Value
	next    reflect.Value
	remove  reflect.Value
}

func newCursor(v reflect.Value, s shape) (*cursor, bool) {
	if s == shapeIterable {
		out := v.MethodByName("Iterator").Call(nil)
		v = out[0]
		if s = shapeOf(v); s != shapeIterator && s != shapeEnumeration {
			return nil, false
		}
	}
	if s == shapeEnumeration {
		return &cursor{
			hasNext: v.MethodByName("HasMoreElements"),
			next:    v.MethodByName("NextElement"),
		}, true
	}
	c := &cursor{
		hasNext: v.MethodByName("HasNext"),
		next:    v.MethodByName("Next"),
	}
	if hasMethod(v, "Remove", reflect.Interface) {
		c.remove = v.MethodByName("Remove")
	}
	return c, true
}

func (c *cursor) HasNext() bool { return c.hasNext.Call(nil)[0].Bool() }

func (c *cursor) Next() (any, error) {
	out := c.next.Call(nil)
	if len(out) > 1 {
		if err, ok := out[len(out)-1].Interface().(error); ok && err != nil {
			return nil, err
		}
	}
	return out[0].Interface(), nil
}

func (c *cursor) Remove() error {
	if !c.remove.IsValid() {
		return iterators.ErrUnsupportedOperation
	}
	if err, ok := c.remove.Call(nil)[0].Interface().(error); ok {
		return err
	}
	return nil
}

// nth skips idx elements of c and returns the next one.
func nth(c *cursor, idx int) (any, bool) {
	for c.HasNext() {
		item, err := c.Next()
		if err != nil {
			return nil, false
		}
		if idx == 0 {
			return item, true
		}
		idx--
	}
	return nil, false
}
