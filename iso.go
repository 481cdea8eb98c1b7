package optics

// Iso is an exact correspondence between S and A. Both directions are total.
type Iso[S, A any] struct {
	optic IsoOptic[S, A]
}

// NewIso creates an Iso from two inverse functions. Set replaces the whole
// source with reverseGet(value).
func NewIso[S, A any](get func(S) A, reverseGet func(A) S) Iso[S, A] {
	return Iso[S, A]{optic: isoFuncs[S, A]{get: get, reverseGet: reverseGet}}
}

// IsoOf wraps an IsoOptic implementation.
func IsoOf[S, A any](optic IsoOptic[S, A]) Iso[S, A] {
	if i, ok := optic.(Iso[S, A]); ok {
		return i
	}
	return Iso[S, A]{optic: optic}
}

// Kind returns KindIso.
func (i Iso[S, A]) Kind() Kind { return KindIso }

// Get converts source to A.
func (i Iso[S, A]) Get(source S) A {
	return i.optic.Get(source)
}

// TryGet converts source to A and returns a nil error.
func (i Iso[S, A]) TryGet(source S) (A, error) {
	return i.optic.Get(source), nil
}

// Set replaces source with the whole built from value.
func (i Iso[S, A]) Set(source *S, value A) {
	i.optic.Set(source, value)
}

// Modify applies fn to the A view of source.
func (i Iso[S, A]) Modify(source *S, fn func(A) A) {
	i.optic.Set(source, fn(i.optic.Get(*source)))
}

// ReverseGet converts value back to S.
func (i Iso[S, A]) ReverseGet(value A) S {
	return i.optic.ReverseGet(value)
}

// TryReverseGet converts value back to S and returns a nil error.
func (i Iso[S, A]) TryReverseGet(value A) (S, error) {
	return i.optic.ReverseGet(value), nil
}

// Reverse returns the same correspondence seen from A.
func (i Iso[S, A]) Reverse() Iso[A, S] {
	if r, ok := i.optic.(reversedIso[A, S]); ok {
		return r.iso
	}
	return Iso[A, S]{optic: reversedIso[S, A]{iso: i}}
}

// AsGetter forgets that i writes and builds wholes.
func (i Iso[S, A]) AsGetter() Getter[S, A] {
	return Getter[S, A]{optic: i}
}

// AsPartialGetter keeps only the read.
func (i Iso[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{optic: i}
}

// AsLens forgets reverse construction.
func (i Iso[S, A]) AsLens() Lens[S, A] {
	return Lens[S, A]{optic: i}
}

// AsOptional keeps the read and the write.
func (i Iso[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{optic: i}
}

// AsPrism forgets that reads are total.
func (i Iso[S, A]) AsPrism() Prism[S, A] {
	return Prism[S, A]{optic: i}
}

// AsFallibleIso forgets that both directions are total.
func (i Iso[S, A]) AsFallibleIso() FallibleIso[S, A] {
	return FallibleIso[S, A]{optic: i}
}

// reversedIso views Iso[S, A] as an IsoOptic[A, S].
type reversedIso[S, A any] struct {
	iso Iso[S, A]
}

func (r reversedIso[S, A]) Get(source A) S {
	return r.iso.ReverseGet(source)
}

func (r reversedIso[S, A]) Set(source *A, value S) {
	*source = r.iso.Get(value)
}

func (r reversedIso[S, A]) ReverseGet(value S) A {
	return r.iso.Get(value)
}

// ComposeIsoWithGetter joins an Iso and a Getter into a Getter.
func ComposeIsoWithGetter[S, I, A any](first Iso[S, I], second Getter[I, A]) Getter[S, A] {
	return composeGetter[S, I, A](first, second)
}

// ComposeIsoWithPartialGetter joins an Iso and a PartialGetter into a PartialGetter.
// Read errors of the second stage are returned as is.
func ComposeIsoWithPartialGetter[S, I, A any](first Iso[S, I], second PartialGetter[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeIsoWithLens joins an Iso and a Lens into a Lens.
func ComposeIsoWithLens[S, I, A any](first Iso[S, I], second Lens[I, A]) Lens[S, A] {
	return composeLens[S, I, A](first, second)
}

// ComposeIsoWithOptional joins an Iso and an Optional into an Optional.
// Read errors of the second stage are returned as is.
func ComposeIsoWithOptional[S, I, A any](first Iso[S, I], second Optional[I, A]) Optional[S, A] {
	return composeOptional[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeIsoWithPrism joins an Iso and a Prism into a Prism.
// Read errors of the second stage are returned as is.
func ComposeIsoWithPrism[S, I, A any](first Iso[S, I], second Prism[I, A]) Prism[S, A] {
	return composePrism[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeIsoWithIso joins an Iso and an Iso into an Iso.
func ComposeIsoWithIso[S, I, A any](first Iso[S, I], second Iso[I, A]) Iso[S, A] {
	return composeIso[S, I, A](first, second)
}

// ComposeIsoWithFallibleIso joins an Iso and a FallibleIso into a FallibleIso.
// Read errors of the second stage are returned as is.
func ComposeIsoWithFallibleIso[S, I, A any](first Iso[S, I], second FallibleIso[I, A]) FallibleIso[S, A] {
	return composeFallibleIso[S, I, A](first, second, PassThrough, PassThrough, PassThrough, PassThrough)
}
