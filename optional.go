package optics

// Optional reads and replaces a focus that may be absent. Writing to a source
// whose focus is absent leaves it unchanged.
type Optional[S, A any] struct {
	optic OptionalOptic[S, A]
}

// NewOptional creates an Optional from a fallible read and a set function.
// set is only called when tryGet succeeds on the current source.
func NewOptional[S, A any](tryGet func(S) (A, error), set func(*S, A)) Optional[S, A] {
	return Optional[S, A]{optic: optionalFuncs[S, A]{tryGet: tryGet, set: set}}
}

// OptionalOf wraps an OptionalOptic implementation.
func OptionalOf[S, A any](optic OptionalOptic[S, A]) Optional[S, A] {
	if o, ok := optic.(Optional[S, A]); ok {
		return o
	}
	return Optional[S, A]{optic: optic}
}

// Kind returns KindOptional.
func (o Optional[S, A]) Kind() Kind { return KindOptional }

// TryGet returns the focus of source or the reason it is absent.
func (o Optional[S, A]) TryGet(source S) (A, error) {
	return o.optic.TryGet(source)
}

// Preview returns the focus of source and whether it was present.
func (o Optional[S, A]) Preview(source S) (A, bool) {
	a, err := o.optic.TryGet(source)
	return a, err == nil
}

// Set replaces the focus of source when present.
func (o Optional[S, A]) Set(source *S, value A) {
	o.optic.Set(source, value)
}

// Modify applies fn to the focus of source when present.
func (o Optional[S, A]) Modify(source *S, fn func(A) A) {
	a, err := o.optic.TryGet(*source)
	if err != nil {
		return
	}
	o.optic.Set(source, fn(a))
}

// AsPartialGetter drops the write capability.
func (o Optional[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{optic: o}
}

// ComposeOptionalWithGetter joins an Optional and a Getter into a PartialGetter.
// Read errors of the first stage are returned as is.
func ComposeOptionalWithGetter[S, I, A any](first Optional[S, I], second Getter[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeOptionalWithPartialGetter joins an Optional and a PartialGetter into a PartialGetter.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposeOptionalWithPartialGetter[S, I, A any](
	first Optional[S, I],
	second PartialGetter[I, A],
	mapFirst, mapSecond ErrorMapper,
) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposeOptionalWithLens joins an Optional and a Lens into an Optional.
// Read errors of the first stage are returned as is.
func ComposeOptionalWithLens[S, I, A any](first Optional[S, I], second Lens[I, A]) Optional[S, A] {
	return composeOptional[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeOptionalWithOptional joins an Optional and an Optional into an Optional.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposeOptionalWithOptional[S, I, A any](
	first Optional[S, I],
	second Optional[I, A],
	mapFirst, mapSecond ErrorMapper,
) Optional[S, A] {
	return composeOptional[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposeOptionalWithPrism joins an Optional and a Prism into an Optional.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposeOptionalWithPrism[S, I, A any](
	first Optional[S, I],
	second Prism[I, A],
	mapFirst, mapSecond ErrorMapper,
) Optional[S, A] {
	return composeOptional[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposeOptionalWithIso joins an Optional and an Iso into an Optional.
// Read errors of the first stage are returned as is.
func ComposeOptionalWithIso[S, I, A any](first Optional[S, I], second Iso[I, A]) Optional[S, A] {
	return composeOptional[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeOptionalWithFallibleIso joins an Optional and a FallibleIso into an Optional.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposeOptionalWithFallibleIso[S, I, A any](
	first Optional[S, I],
	second FallibleIso[I, A],
	mapFirst, mapSecond ErrorMapper,
) Optional[S, A] {
	return composeOptional[S, I, A](first, second, mapFirst, mapSecond)
}
