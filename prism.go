package optics

// Prism focuses on one variant of a sum-like value. Reads fail when another
// variant is active, building a whole from the focus never fails, and writes
// to a non-matching source are ignored.
type Prism[S, A any] struct {
	optic PrismOptic[S, A]
}

// NewPrism creates a Prism from a fallible read and a reverse constructor.
// Set replaces a matching source with reverseGet(value).
func NewPrism[S, A any](tryGet func(S) (A, error), reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{optic: prismFuncs[S, A]{tryGet: tryGet, reverseGet: reverseGet}}
}

// PrismOf wraps a PrismOptic implementation.
func PrismOf[S, A any](optic PrismOptic[S, A]) Prism[S, A] {
	if p, ok := optic.(Prism[S, A]); ok {
		return p
	}
	return Prism[S, A]{optic: optic}
}

// Kind returns KindPrism.
func (p Prism[S, A]) Kind() Kind { return KindPrism }

// TryGet returns the focus of source or the reason it does not match.
func (p Prism[S, A]) TryGet(source S) (A, error) {
	return p.optic.TryGet(source)
}

// Preview returns the focus of source and whether it matched.
func (p Prism[S, A]) Preview(source S) (A, bool) {
	a, err := p.optic.TryGet(source)
	return a, err == nil
}

// Set replaces the focus of a matching source.
func (p Prism[S, A]) Set(source *S, value A) {
	p.optic.Set(source, value)
}

// Modify applies fn to the focus of a matching source.
func (p Prism[S, A]) Modify(source *S, fn func(A) A) {
	a, err := p.optic.TryGet(*source)
	if err != nil {
		return
	}
	p.optic.Set(source, fn(a))
}

// ReverseGet builds a whole from value.
func (p Prism[S, A]) ReverseGet(value A) S {
	return p.optic.ReverseGet(value)
}

// Review is an alias of ReverseGet.
func (p Prism[S, A]) Review(value A) S {
	return p.optic.ReverseGet(value)
}

// TryReverseGet builds a whole from value and a nil error.
func (p Prism[S, A]) TryReverseGet(value A) (S, error) {
	return p.optic.ReverseGet(value), nil
}

// AsPartialGetter keeps only the fallible read.
func (p Prism[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{optic: p}
}

// AsOptional drops the reverse constructor.
func (p Prism[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{optic: p}
}

// AsFallibleIso forgets that reverse construction cannot fail.
func (p Prism[S, A]) AsFallibleIso() FallibleIso[S, A] {
	return FallibleIso[S, A]{optic: p}
}

// ComposePrismWithGetter joins a Prism and a Getter into a PartialGetter.
// Read errors of the first stage are returned as is.
func ComposePrismWithGetter[S, I, A any](first Prism[S, I], second Getter[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposePrismWithPartialGetter joins a Prism and a PartialGetter into a PartialGetter.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposePrismWithPartialGetter[S, I, A any](
	first Prism[S, I],
	second PartialGetter[I, A],
	mapFirst, mapSecond ErrorMapper,
) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposePrismWithLens joins a Prism and a Lens into an Optional.
// Read errors of the first stage are returned as is.
func ComposePrismWithLens[S, I, A any](first Prism[S, I], second Lens[I, A]) Optional[S, A] {
	return composeOptional[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposePrismWithOptional joins a Prism and an Optional into an Optional.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposePrismWithOptional[S, I, A any](
	first Prism[S, I],
	second Optional[I, A],
	mapFirst, mapSecond ErrorMapper,
) Optional[S, A] {
	return composeOptional[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposePrismWithPrism joins a Prism and a Prism into a Prism.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposePrismWithPrism[S, I, A any](
	first Prism[S, I],
	second Prism[I, A],
	mapFirst, mapSecond ErrorMapper,
) Prism[S, A] {
	return composePrism[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposePrismWithIso joins a Prism and an Iso into a Prism.
// Read errors of the first stage are returned as is.
func ComposePrismWithIso[S, I, A any](first Prism[S, I], second Iso[I, A]) Prism[S, A] {
	return composePrism[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposePrismWithFallibleIso maps read errors of both stages. Only the second
// stage can fail to build a whole, so its reverse errors are reported as is.
func ComposePrismWithFallibleIso[S, I, A any](
	first Prism[S, I],
	second FallibleIso[I, A],
	mapFirst, mapSecond ErrorMapper,
) FallibleIso[S, A] {
	return composeFallibleIso[S, I, A](first, second, mapFirst, mapSecond, PassThrough, PassThrough)
}
