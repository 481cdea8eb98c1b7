package opticstest

import (
	"testing"

	"github.com/authcorp/libs/go/optics"
	"pgregory.net/rapid"
)

// LensLaws checks get-set, set-get and set-set for l.
func LensLaws[S, A comparable](t *testing.T, l optics.LensOptic[S, A], sources *rapid.Generator[S], values *rapid.Generator[A]) {
	t.Helper()
	rapid.Check(t, func(t *rapid.T) {
		source := sources.Draw(t, "source")
		value := values.Draw(t, "value")
		other := values.Draw(t, "other")

		got := source
		l.Set(&got, l.Get(source))
		if got != source {
			t.Fatalf("get-set: %v became %v", source, got)
		}

		got = source
		l.Set(&got, value)
		if v := l.Get(got); v != value {
			t.Fatalf("set-get: set %v, got %v", value, v)
		}

		twice := source
		l.Set(&twice, other)
		l.Set(&twice, value)
		if twice != got {
			t.Fatalf("set-set: %v != %v", twice, got)
		}
	})
}

// OptionalLaws checks that writes round-trip through reads when the focus is
// present and leave the source unchanged when it is absent.
func OptionalLaws[S, A comparable](t *testing.T, o optics.OptionalOptic[S, A], sources *rapid.Generator[S], values *rapid.Generator[A]) {
	t.Helper()
	rapid.Check(t, func(t *rapid.T) {
		checkOptional[S, A](t, o, sources.Draw(t, "source"), values.Draw(t, "value"))
	})
}

func checkOptional[S, A comparable](t *rapid.T, o optics.OptionalOptic[S, A], source S, value A) {
	focus, err := o.TryGet(source)
	if err != nil {
		got := source
		o.Set(&got, value)
		if got != source {
			t.Fatalf("set on mismatch: %v became %v", source, got)
		}
		return
	}

	got := source
	o.Set(&got, focus)
	if got != source {
		t.Fatalf("get-set: %v became %v", source, got)
	}

	got = source
	o.Set(&got, value)
	v, err := o.TryGet(got)
	if err != nil {
		t.Fatalf("set-get: read after set failed: %v", err)
	}
	if v != value {
		t.Fatalf("set-get: set %v, got %v", value, v)
	}
}

// PrismLaws checks OptionalLaws and that reading a built whole returns the
// focus it was built from.
func PrismLaws[S, A comparable](t *testing.T, p optics.PrismOptic[S, A], sources *rapid.Generator[S], values *rapid.Generator[A]) {
	t.Helper()
	rapid.Check(t, func(t *rapid.T) {
		value := values.Draw(t, "value")
		checkOptional[S, A](t, p, sources.Draw(t, "source"), value)

		v, err := p.TryGet(p.ReverseGet(value))
		if err != nil {
			t.Fatalf("round trip: read of built whole failed: %v", err)
		}
		if v != value {
			t.Fatalf("round trip: built from %v, read %v", value, v)
		}
	})
}

// FallibleIsoLaws checks OptionalLaws for every focus that converts back, that
// writing one that does not leaves the source unchanged, and the round trip.
func FallibleIsoLaws[S, A comparable](t *testing.T, f optics.FallibleIsoOptic[S, A], sources *rapid.Generator[S], values *rapid.Generator[A]) {
	t.Helper()
	rapid.Check(t, func(t *rapid.T) {
		source := sources.Draw(t, "source")
		value := values.Draw(t, "value")

		whole, err := f.TryReverseGet(value)
		if err != nil {
			got := source
			f.Set(&got, value)
			if got != source {
				t.Fatalf("set of unconvertible %v: %v became %v", value, source, got)
			}
			return
		}
		checkOptional[S, A](t, f, source, value)

		v, err := f.TryGet(whole)
		if err != nil {
			t.Fatalf("round trip: read of built whole failed: %v", err)
		}
		if v != value {
			t.Fatalf("round trip: built from %v, read %v", value, v)
		}
	})
}

// IsoLaws checks LensLaws and that both directions invert each other.
func IsoLaws[S, A comparable](t *testing.T, i optics.IsoOptic[S, A], sources *rapid.Generator[S], values *rapid.Generator[A]) {
	t.Helper()
	LensLaws[S, A](t, i, sources, values)
	rapid.Check(t, func(t *rapid.T) {
		source := sources.Draw(t, "source")
		value := values.Draw(t, "value")
		if got := i.ReverseGet(i.Get(source)); got != source {
			t.Fatalf("reverse after get: %v became %v", source, got)
		}
		if got := i.Get(i.ReverseGet(value)); got != value {
			t.Fatalf("get after reverse: %v became %v", value, got)
		}
	})
}

// SameReads checks that left and right read the same focus, or fail with the
// same message, for every source.
func SameReads[S, A comparable](t *testing.T, left, right optics.FallibleReader[S, A], sources *rapid.Generator[S]) {
	t.Helper()
	rapid.Check(t, func(t *rapid.T) {
		source := sources.Draw(t, "source")
		a, errA := left.TryGet(source)
		b, errB := right.TryGet(source)
		switch {
		case (errA == nil) != (errB == nil):
			t.Fatalf("reads disagree on failure: %v vs %v", errA, errB)
		case errA != nil && errA.Error() != errB.Error():
			t.Fatalf("read errors differ: %q vs %q", errA, errB)
		case errA == nil && a != b:
			t.Fatalf("reads differ: %v vs %v", a, b)
		}
	})
}

// SameWrites checks that left and right leave every source in the same state.
func SameWrites[S, A comparable](t *testing.T, left, right optics.Writer[S, A], sources *rapid.Generator[S], values *rapid.Generator[A]) {
	t.Helper()
	rapid.Check(t, func(t *rapid.T) {
		source := sources.Draw(t, "source")
		value := values.Draw(t, "value")
		a, b := source, source
		left.Set(&a, value)
		right.Set(&b, value)
		if a != b {
			t.Fatalf("writes differ from %v: %v vs %v", source, a, b)
		}
	})
}
