package optics

// Getter reads a focus that is always present.
type Getter[S, A any] struct {
	optic GetterOptic[S, A]
}

// NewGetter creates a Getter from a read function.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	return Getter[S, A]{optic: getterFunc[S, A](get)}
}

// GetterOf wraps a GetterOptic implementation.
func GetterOf[S, A any](optic GetterOptic[S, A]) Getter[S, A] {
	if g, ok := optic.(Getter[S, A]); ok {
		return g
	}
	return Getter[S, A]{optic: optic}
}

// Kind returns KindGetter.
func (g Getter[S, A]) Kind() Kind { return KindGetter }

// Get returns the focus of source.
func (g Getter[S, A]) Get(source S) A {
	return g.optic.Get(source)
}

// TryGet returns the focus of source and a nil error.
func (g Getter[S, A]) TryGet(source S) (A, error) {
	return g.optic.Get(source), nil
}

// AsPartialGetter forgets that reads are total.
func (g Getter[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{optic: g}
}

// ComposeGetterWithGetter joins a Getter and a Getter into a Getter.
func ComposeGetterWithGetter[S, I, A any](first Getter[S, I], second Getter[I, A]) Getter[S, A] {
	return composeGetter[S, I, A](first, second)
}

// ComposeGetterWithPartialGetter joins a Getter and a PartialGetter into a PartialGetter.
// Read errors of the second stage are returned as is.
func ComposeGetterWithPartialGetter[S, I, A any](first Getter[S, I], second PartialGetter[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeGetterWithLens joins a Getter and a Lens into a Getter.
func ComposeGetterWithLens[S, I, A any](first Getter[S, I], second Lens[I, A]) Getter[S, A] {
	return composeGetter[S, I, A](first, second)
}

// ComposeGetterWithOptional joins a Getter and an Optional into a PartialGetter.
// Read errors of the second stage are returned as is.
func ComposeGetterWithOptional[S, I, A any](first Getter[S, I], second Optional[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeGetterWithPrism joins a Getter and a Prism into a PartialGetter.
// Read errors of the second stage are returned as is.
func ComposeGetterWithPrism[S, I, A any](first Getter[S, I], second Prism[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeGetterWithIso joins a Getter and an Iso into a Getter.
func ComposeGetterWithIso[S, I, A any](first Getter[S, I], second Iso[I, A]) Getter[S, A] {
	return composeGetter[S, I, A](first, second)
}

// ComposeGetterWithFallibleIso joins a Getter and a FallibleIso into a PartialGetter.
// Read errors of the second stage are returned as is.
func ComposeGetterWithFallibleIso[S, I, A any](first Getter[S, I], second FallibleIso[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}
