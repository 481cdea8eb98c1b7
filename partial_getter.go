package optics

// PartialGetter reads a focus that may be absent.
//
// Compositions where both stages can fail take two mappers: mapFirst converts
// errors of the first stage and mapSecond those of the second.
type PartialGetter[S, A any] struct {
	optic PartialGetterOptic[S, A]
}

// NewPartialGetter creates a PartialGetter from a fallible read function.
func NewPartialGetter[S, A any](tryGet func(S) (A, error)) PartialGetter[S, A] {
	return PartialGetter[S, A]{optic: partialGetterFunc[S, A](tryGet)}
}

// PartialGetterOf wraps a PartialGetterOptic implementation.
func PartialGetterOf[S, A any](optic PartialGetterOptic[S, A]) PartialGetter[S, A] {
	if p, ok := optic.(PartialGetter[S, A]); ok {
		return p
	}
	return PartialGetter[S, A]{optic: optic}
}

// Kind returns KindPartialGetter.
func (p PartialGetter[S, A]) Kind() Kind { return KindPartialGetter }

// TryGet returns the focus of source or the reason it is absent.
func (p PartialGetter[S, A]) TryGet(source S) (A, error) {
	return p.optic.TryGet(source)
}

// Preview returns the focus of source and whether it was present.
func (p PartialGetter[S, A]) Preview(source S) (A, bool) {
	a, err := p.optic.TryGet(source)
	return a, err == nil
}

// ComposePartialGetterWithGetter joins a PartialGetter and a Getter into a PartialGetter.
// Read errors of the first stage are returned as is.
func ComposePartialGetterWithGetter[S, I, A any](first PartialGetter[S, I], second Getter[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposePartialGetterWithPartialGetter joins a PartialGetter and a PartialGetter into a PartialGetter.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposePartialGetterWithPartialGetter[S, I, A any](
	first PartialGetter[S, I],
	second PartialGetter[I, A],
	mapFirst, mapSecond ErrorMapper,
) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposePartialGetterWithLens joins a PartialGetter and a Lens into a PartialGetter.
// Read errors of the first stage are returned as is.
func ComposePartialGetterWithLens[S, I, A any](first PartialGetter[S, I], second Lens[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposePartialGetterWithOptional joins a PartialGetter and an Optional into a PartialGetter.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposePartialGetterWithOptional[S, I, A any](
	first PartialGetter[S, I],
	second Optional[I, A],
	mapFirst, mapSecond ErrorMapper,
) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposePartialGetterWithPrism joins a PartialGetter and a Prism into a PartialGetter.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposePartialGetterWithPrism[S, I, A any](
	first PartialGetter[S, I],
	second Prism[I, A],
	mapFirst, mapSecond ErrorMapper,
) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposePartialGetterWithIso joins a PartialGetter and an Iso into a PartialGetter.
// Read errors of the first stage are returned as is.
func ComposePartialGetterWithIso[S, I, A any](first PartialGetter[S, I], second Iso[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposePartialGetterWithFallibleIso joins a PartialGetter and a FallibleIso into a PartialGetter.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposePartialGetterWithFallibleIso[S, I, A any](
	first PartialGetter[S, I],
	second FallibleIso[I, A],
	mapFirst, mapSecond ErrorMapper,
) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, mapFirst, mapSecond)
}
