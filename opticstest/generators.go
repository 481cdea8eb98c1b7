// Package opticstest provides rapid generators and law checks for optics.
package opticstest

import (
	"strconv"

	"github.com/authcorp/libs/go/optics"
	"pgregory.net/rapid"
)

// PairGen generates optics.Pair values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[optics.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) optics.Pair[A, B] {
		return optics.Pair[A, B]{
			First:  firstGen.Draw(t, "first"),
			Second: secondGen.Draw(t, "second"),
		}
	})
}

// IntTextGen generates decimal integers in the form strconv.Itoa prints them.
func IntTextGen() *rapid.Generator[string] {
	return rapid.Map(rapid.Int(), strconv.Itoa)
}

// WordGen generates lowercase words, which never parse as integers.
func WordGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z]{1,12}`)
}

// NumericTextGen mixes IntTextGen and WordGen.
func NumericTextGen() *rapid.Generator[string] {
	return rapid.OneOf(IntTextGen(), WordGen())
}

// SliceGen generates slices of up to maxLen elements.
func SliceGen[T any](elemGen *rapid.Generator[T], maxLen int) *rapid.Generator[[]T] {
	return rapid.SliceOfN(elemGen, 0, maxLen)
}
