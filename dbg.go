package strs

import (
	"bytes"
	"cmp"
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Debugger is implemented by values which know how to render themselves in
// debug format. Containers of this package render their elements by calling
// AppendDbg for each of them, thus nesting containers and pairs works to any
// depth.
type Debugger interface {
	AppendDbg(dst []byte) []byte
}

// Dbg renders v in a human readable format for diagnostic output.
//
//   - strings and byte slices are put in double quotes, without any escaping
//   - values implementing Debugger render themselves
//   - slices and arrays are rendered like a List, maps like a Map, with
//     their elements rendered recursively
//   - everything else is formatted as with Cat
//
// The output is meant for humans and logs and cannot reliably be parsed again.
func Dbg(v any) string {
	return string(AppendDbg(make([]byte, 0, 64), v))
}

// AppendDbg appends the debug format of v to dst and returns the extended
// buffer. See Dbg.
func AppendDbg(dst []byte, v any) []byte {
	switch x := v.(type) {
	case Debugger:
		return x.AppendDbg(dst)
	case string:
		dst = append(dst, '"')
		dst = append(dst, x...)
		return append(dst, '"')
	case []byte:
		dst = append(dst, '"')
		dst = append(dst, x...)
		return append(dst, '"')
	case error, fmt.Stringer:
		return appendValue(dst, v)
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		return appendSeq(dst, '[', ']', func(yield func(any) bool) {
			for i := range rv.Len() {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		})
	case reflect.Map:
		return appendMap(dst, rv)
	}
	return appendValue(dst, v)
}

// appendMap renders a map of any type. Entries are ordered by key if the keys
// are numbers or strings, otherwise by their rendered text.
func appendMap(dst []byte, m reflect.Value) []byte {
	var kv [][2]reflect.Value
	for it := m.MapRange(); it.Next(); {
		kv = append(kv, [2]reflect.Value{it.Key(), it.Value()})
	}
	entries := func(yield func(Pair[any, any]) bool) {
		for _, e := range kv {
			if !yield(Pair[any, any]{e[0].Interface(), e[1].Interface()}) {
				return
			}
		}
	}
	compare := compareKeys(m.Type().Key().Kind())
	if compare == nil {
		return appendSorted(dst, entries)
	}
	slices.SortFunc(kv, func(a, b [2]reflect.Value) int {
		return compare(a[0], b[0])
	})
	return appendSeq(dst, '{', '}', entries)
}

func compareKeys(k reflect.Kind) func(a, b reflect.Value) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Int(), b.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Uint(), b.Uint()) }
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Float(), b.Float()) }
	case reflect.String:
		return func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) }
	}
	return nil
}

// DbgSlice renders a slice as a List.
func DbgSlice[T any](s []T) string {
	return Dbg(List[T](s))
}

// DbgMap renders a map as a Map, i.e. ordered by key.
func DbgMap[K cmp.Ordered, V any](m map[K]V) string {
	return Dbg(Map[K, V](m))
}

// --- Pairs and containers --------------------------------------------------

// Pair is a key-value pair, rendered as key:value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// AppendDbg is part of interface Debugger.
func (p Pair[K, V]) AppendDbg(dst []byte) []byte {
	dst = AppendDbg(dst, p.Key)
	dst = append(dst, ':')
	return AppendDbg(dst, p.Value)
}

// List is a sequence, rendered as [e1,e2,…].
type List[T any] []T

// AppendDbg is part of interface Debugger.
func (l List[T]) AppendDbg(dst []byte) []byte {
	return appendSeq(dst, '[', ']', slices.Values(l))
}

// Set is a set with ordered elements, rendered as {e1,e2,…} in ascending order.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet creates a set from a list of elements.
func NewSet[T cmp.Ordered](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// AppendDbg is part of interface Debugger.
func (s Set[T]) AppendDbg(dst []byte) []byte {
	return appendSeq(dst, '{', '}', slices.Values(slices.Sorted(maps.Keys(s))))
}

// Map is a map with ordered keys, rendered as {k1:v1,k2:v2,…} in ascending
// order of keys.
type Map[K cmp.Ordered, V any] map[K]V

// AppendDbg is part of interface Debugger.
func (m Map[K, V]) AppendDbg(dst []byte) []byte {
	keys := slices.Sorted(maps.Keys(m))
	return appendSeq(dst, '{', '}', func(yield func(Pair[K, V]) bool) {
		for _, k := range keys {
			if !yield(Pair[K, V]{k, m[k]}) {
				return
			}
		}
	})
}

// HashSet is a set of unordered elements, rendered as {e1,e2,…}.
// Elements are sorted by their rendered text, making the output stable.
type HashSet[T comparable] map[T]struct{}

// AppendDbg is part of interface Debugger.
func (s HashSet[T]) AppendDbg(dst []byte) []byte {
	return appendSorted(dst, maps.Keys(s))
}

// HashMap is a map with unordered keys, rendered as {k1:v1,k2:v2,…}.
// Entries are sorted by their rendered text, making the output stable.
type HashMap[K comparable, V any] map[K]V

// AppendDbg is part of interface Debugger.
func (m HashMap[K, V]) AppendDbg(dst []byte) []byte {
	return appendSorted(dst, func(yield func(Pair[K, V]) bool) {
		for k, v := range m {
			if !yield(Pair[K, V]{k, v}) {
				return
			}
		}
	})
}

// rendered is an element which has already been rendered.
type rendered []byte

func (r rendered) AppendDbg(dst []byte) []byte {
	return append(dst, r...)
}

// appendSorted renders all elements of seq, sorts them by their textual form
// and outputs them enclosed in braces.
func appendSorted[T any](dst []byte, seq iter.Seq[T]) []byte {
	var elems []rendered
	for e := range seq {
		elems = append(elems, AppendDbg(nil, e))
	}
	slices.SortFunc(elems, func(a, b rendered) int {
		return bytes.Compare(a, b)
	})
	return appendSeq(dst, '{', '}', slices.Values(elems))
}

// appendSeq renders elements separated by commas and enclosed in brackets.
// Every element is followed by a comma; the last one is overwritten by the
// closing bracket.
func appendSeq[T any](dst []byte, opening, closing byte, seq iter.Seq[T]) []byte {
	dst = append(dst, opening)
	start := len(dst)
	for e := range seq {
		dst = AppendDbg(dst, e)
		dst = append(dst, ',')
	}
	if len(dst) == start {
		return append(dst, closing)
	}
	dst[len(dst)-1] = closing
	return dst
}
