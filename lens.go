package optics

// Lens reads and replaces a focus that is always present.
type Lens[S, A any] struct {
	optic LensOptic[S, A]
}

// NewLens creates a Lens from get and set functions. set updates the focus
// of the value source points to.
func NewLens[S, A any](get func(S) A, set func(*S, A)) Lens[S, A] {
	return Lens[S, A]{optic: lensFuncs[S, A]{get: get, set: set}}
}

// LensOf wraps a LensOptic implementation.
func LensOf[S, A any](optic LensOptic[S, A]) Lens[S, A] {
	if l, ok := optic.(Lens[S, A]); ok {
		return l
	}
	return Lens[S, A]{optic: optic}
}

// Kind returns KindLens.
func (l Lens[S, A]) Kind() Kind { return KindLens }

// Get returns the focus of source.
func (l Lens[S, A]) Get(source S) A {
	return l.optic.Get(source)
}

// TryGet returns the focus of source and a nil error.
func (l Lens[S, A]) TryGet(source S) (A, error) {
	return l.optic.Get(source), nil
}

// Set replaces the focus of source with value.
func (l Lens[S, A]) Set(source *S, value A) {
	l.optic.Set(source, value)
}

// Modify applies fn to the focus of source.
func (l Lens[S, A]) Modify(source *S, fn func(A) A) {
	l.optic.Set(source, fn(l.optic.Get(*source)))
}

// AsGetter drops the write capability.
func (l Lens[S, A]) AsGetter() Getter[S, A] {
	return Getter[S, A]{optic: l}
}

// AsPartialGetter keeps only the fallible read.
func (l Lens[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{optic: l}
}

// AsOptional forgets that reads are total.
func (l Lens[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{optic: l}
}

// ComposeLensWithGetter joins a Lens and a Getter into a Getter.
func ComposeLensWithGetter[S, I, A any](first Lens[S, I], second Getter[I, A]) Getter[S, A] {
	return composeGetter[S, I, A](first, second)
}

// ComposeLensWithPartialGetter joins a Lens and a PartialGetter into a PartialGetter.
// Read errors of the second stage are returned as is.
func ComposeLensWithPartialGetter[S, I, A any](first Lens[S, I], second PartialGetter[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeLensWithLens joins a Lens and a Lens into a Lens.
func ComposeLensWithLens[S, I, A any](first Lens[S, I], second Lens[I, A]) Lens[S, A] {
	return composeLens[S, I, A](first, second)
}

// ComposeLensWithOptional joins a Lens and an Optional into an Optional.
// Read errors of the second stage are returned as is.
func ComposeLensWithOptional[S, I, A any](first Lens[S, I], second Optional[I, A]) Optional[S, A] {
	return composeOptional[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeLensWithPrism focuses on a variant inside a field. Reads fail with the
// prism's error; Set does nothing while the variant is absent.
func ComposeLensWithPrism[S, I, A any](first Lens[S, I], second Prism[I, A]) Optional[S, A] {
	return composeOptional[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeLensWithIso joins a Lens and an Iso into a Lens.
func ComposeLensWithIso[S, I, A any](first Lens[S, I], second Iso[I, A]) Lens[S, A] {
	return composeLens[S, I, A](first, second)
}

// ComposeLensWithFallibleIso joins a Lens and a FallibleIso into an Optional.
// Read errors of the second stage are returned as is.
func ComposeLensWithFallibleIso[S, I, A any](first Lens[S, I], second FallibleIso[I, A]) Optional[S, A] {
	return composeOptional[S, I, A](first, second, PassThrough, PassThrough)
}
