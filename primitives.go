package optics

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Pair is a two-field product used by First and Second.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Identity returns the Iso that maps every value to itself.
func Identity[S any]() Iso[S, S] {
	return NewIso(
		func(s S) S { return s },
		func(s S) S { return s },
	)
}

// First focuses on the first element of a pair.
func First[A, B any]() Lens[Pair[A, B], A] {
	return NewLens(
		func(p Pair[A, B]) A { return p.First },
		func(p *Pair[A, B], a A) { p.First = a },
	)
}

// Second focuses on the second element of a pair.
func Second[A, B any]() Lens[Pair[A, B], B] {
	return NewLens(
		func(p Pair[A, B]) B { return p.Second },
		func(p *Pair[A, B], b B) { p.Second = b },
	)
}

// Key focuses on the value stored under key. Reads of a missing key fail with
// a MismatchError and writes never insert it. Set replaces the map with an
// updated copy and never writes into the caller's map.
func Key[K comparable, V any](key K) Optional[map[K]V, V] {
	name := fmt.Sprintf("key %v", key)
	return NewOptional(
		func(m map[K]V) (V, error) {
			v, ok := m[key]
			if !ok {
				var zero V
				return zero, mismatch(name, nil)
			}
			return v, nil
		},
		func(m *map[K]V, v V) {
			c := maps.Clone(*m)
			c[key] = v
			*m = c
		},
	)
}

// Index focuses on element i of a slice. Set replaces the slice with an
// updated copy and never writes into the caller's backing array.
func Index[T any](i int) Optional[[]T, T] {
	name := fmt.Sprintf("index %d", i)
	return NewOptional(
		func(s []T) (T, error) {
			if i < 0 || i >= len(s) {
				var zero T
				return zero, mismatch(name, fmt.Errorf("out of range [0:%d]", len(s)))
			}
			return s[i], nil
		},
		func(s *[]T, v T) {
			c := slices.Clone(*s)
			c[i] = v
			*s = c
		},
	)
}

// Deref focuses on the value behind a non-nil pointer. Set on a non-nil
// pointer points it at a fresh copy of the value.
func Deref[T any]() Prism[*T, T] {
	return NewPrism(
		func(p *T) (T, error) {
			if p == nil {
				var zero T
				return zero, mismatch("deref", nil)
			}
			return *p, nil
		},
		func(v T) *T { return &v },
	)
}

// ParseInt focuses on the integer a decimal string spells. Reads of text that
// is not an integer fail with a MismatchError wrapping *strconv.NumError.
func ParseInt() Prism[string, int] {
	return NewPrism(
		func(s string) (int, error) {
			n, err := strconv.Atoi(s)
			if err != nil {
				return 0, mismatch("parse int", err)
			}
			return n, nil
		},
		strconv.Itoa,
	)
}

// Bytes converts between a string and its bytes.
func Bytes() Iso[string, []byte] {
	return NewIso(
		func(s string) []byte { return []byte(s) },
		func(b []byte) string { return string(b) },
	)
}
