package optics_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/opticstest"
	"pgregory.net/rapid"
)

type nested = optics.Pair[int, optics.Pair[string, string]]

var (
	errTooLarge = errors.New("too large")
	errOdd      = errors.New("odd")
	errNotText  = errors.New("not digits")
)

// small narrows int to uint8.
func small() optics.Prism[int, uint8] {
	return optics.NewPrism(
		func(n int) (uint8, error) {
			if n < 0 || n > 255 {
				return 0, errTooLarge
			}
			return uint8(n), nil
		},
		func(b uint8) int { return int(b) },
	)
}

// half focuses on half of an even byte.
func half() optics.Prism[uint8, uint8] {
	return optics.NewPrism(
		func(b uint8) (uint8, error) {
			if b%2 != 0 {
				return 0, errOdd
			}
			return b / 2, nil
		},
		func(b uint8) uint8 { return b * 2 },
	)
}

func negate() optics.Iso[int, int] {
	return optics.NewIso(
		func(n int) int { return -n },
		func(n int) int { return -n },
	)
}

// decimal converts between non-negative ints and their decimal text.
func decimal() optics.FallibleIso[int, string] {
	return optics.NewFallibleIso(
		func(n int) (string, error) {
			if n < 0 {
				return "", errors.New("negative")
			}
			return strconv.Itoa(n), nil
		},
		func(s string) (int, error) {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || strconv.Itoa(n) != s {
				return 0, errNotText
			}
			return n, nil
		},
	)
}

func nestedGen() *rapid.Generator[nested] {
	return opticstest.PairGen(rapid.Int(), opticstest.PairGen(opticstest.NumericTextGen(), opticstest.WordGen()))
}

func TestAssociativityLensLensPrism(t *testing.T) {
	outer := optics.Second[int, optics.Pair[string, string]]()
	middle := optics.First[string, string]()
	inner := optics.ParseInt()

	left := optics.ComposeLensWithPrism(optics.ComposeLensWithLens(outer, middle), inner)
	right := optics.ComposeLensWithOptional(outer, optics.ComposeLensWithPrism(middle, inner))

	opticstest.SameReads[nested, int](t, left, right, nestedGen())
	opticstest.SameWrites[nested, int](t, left, right, nestedGen(), rapid.Int())
}

func TestAssociativityPrisms(t *testing.T) {
	p := optics.PassThrough
	left := optics.ComposePrismWithPrism(optics.ComposePrismWithPrism(optics.ParseInt(), small(), p, p), half(), p, p)
	right := optics.ComposePrismWithPrism(optics.ParseInt(), optics.ComposePrismWithPrism(small(), half(), p, p), p, p)

	opticstest.SameReads[string, uint8](t, left, right, opticstest.NumericTextGen())
	opticstest.SameWrites[string, uint8](t, left, right, opticstest.NumericTextGen(), rapid.Uint8())

	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint8().Draw(t, "value")
		if l, r := left.ReverseGet(v), right.ReverseGet(v); l != r {
			t.Fatalf("reverse differs for %d: %q vs %q", v, l, r)
		}
	})
}

func TestAssociativityIsoFallibleIsoGetter(t *testing.T) {
	length := optics.NewGetter(func(s string) int { return len(s) })

	left := optics.ComposeFallibleIsoWithGetter(optics.ComposeIsoWithFallibleIso(negate(), decimal()), length)
	right := optics.ComposeIsoWithPartialGetter(negate(), optics.ComposeFallibleIsoWithGetter(decimal(), length))

	opticstest.SameReads[int, int](t, left, right, rapid.Int())
}

func TestAssociativityGetterLensIso(t *testing.T) {
	first := optics.NewGetter(func(p nested) optics.Pair[string, string] { return p.Second })
	word := optics.Second[string, string]()
	bytesLen := optics.ComposeIsoWithGetter(optics.Bytes(), optics.NewGetter(func(b []byte) int { return len(b) }))
	iso := optics.Identity[string]()

	left := optics.ComposeGetterWithIso(optics.ComposeGetterWithLens(first, word), iso)
	right := optics.ComposeGetterWithLens(first, optics.ComposeLensWithIso(word, iso))
	opticstest.SameReads[nested, string](t, left, right, nestedGen())

	counted := optics.ComposeGetterWithGetter(left, bytesLen)
	rapid.Check(t, func(t *rapid.T) {
		source := nestedGen().Draw(t, "source")
		if got := counted.Get(source); got != len(source.Second.Second) {
			t.Fatalf("length %d, want %d", got, len(source.Second.Second))
		}
	})
}

func TestAssociativityMixedWrites(t *testing.T) {
	p := optics.PassThrough
	// Optional ∘ Iso ∘ FallibleIso in both groupings.
	field := optics.Index[int](0)
	left := optics.ComposeOptionalWithFallibleIso(optics.ComposeOptionalWithIso(field, negate()), decimal(), p, p)
	right := optics.ComposeOptionalWithFallibleIso(field, optics.ComposeIsoWithFallibleIso(negate(), decimal()), p, p)

	rapid.Check(t, func(t *rapid.T) {
		xs := opticstest.SliceGen(rapid.IntRange(-1000, 1000), 3).Draw(t, "xs")
		value := opticstest.NumericTextGen().Draw(t, "value")

		a, b := xs, xs
		left.Set(&a, value)
		right.Set(&b, value)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("writes differ at %d: %v vs %v", i, a, b)
			}
		}

		la, errA := left.TryGet(xs)
		lb, errB := right.TryGet(xs)
		if (errA == nil) != (errB == nil) || la != lb {
			t.Fatalf("reads differ: %q/%v vs %q/%v", la, errA, lb, errB)
		}
	})
}

func TestComposedLensLaws(t *testing.T) {
	lens := optics.ComposeLensWithLens(optics.Second[int, optics.Pair[string, string]](), optics.Second[string, string]())
	opticstest.LensLaws[nested, string](t, lens, nestedGen(), rapid.String())
}

func TestComposedOptionalLaws(t *testing.T) {
	focus := optics.ComposeLensWithPrism(optics.Second[int, string](), optics.ParseInt())
	sources := opticstest.PairGen(rapid.Int(), opticstest.NumericTextGen())
	opticstest.OptionalLaws[optics.Pair[int, string], int](t, focus, sources, rapid.Int())
}

func TestParseIntPrismLaws(t *testing.T) {
	opticstest.PrismLaws[string, int](t, optics.ParseInt(), opticstest.NumericTextGen(), rapid.Int())
}

func TestComposedPrismLaws(t *testing.T) {
	p := optics.PassThrough
	byteText := optics.ComposePrismWithPrism(optics.ParseInt(), small(), p, p)
	opticstest.PrismLaws[string, uint8](t, byteText, opticstest.NumericTextGen(), rapid.Uint8())
}

func TestComposedIsoLaws(t *testing.T) {
	twice := optics.ComposeIsoWithIso(negate(), optics.Identity[int]())
	opticstest.IsoLaws[int, int](t, twice, rapid.Int(), rapid.Int())
	opticstest.IsoLaws[int, int](t, twice.Reverse(), rapid.Int(), rapid.Int())
}

func TestComposedFallibleIsoLaws(t *testing.T) {
	p := optics.PassThrough
	text := optics.ComposeFallibleIsoWithFallibleIso(decimal(), optics.Identity[string]().AsFallibleIso(), p, p, p, p)
	opticstest.FallibleIsoLaws[int, string](t, text, rapid.Int(), opticstest.NumericTextGen())
}
