package optics

// FallibleIso is a correspondence between S and A where both directions may
// fail, such as parsing text that must also be valid when printed back.
type FallibleIso[S, A any] struct {
	optic FallibleIsoOptic[S, A]
}

// NewFallibleIso creates a FallibleIso from two fallible conversions. Set
// replaces a readable source with tryReverseGet(value) and leaves it
// unchanged when either direction fails.
func NewFallibleIso[S, A any](tryGet func(S) (A, error), tryReverseGet func(A) (S, error)) FallibleIso[S, A] {
	return FallibleIso[S, A]{optic: fallibleIsoFuncs[S, A]{tryGet: tryGet, tryReverseGet: tryReverseGet}}
}

// FallibleIsoOf wraps a FallibleIsoOptic implementation.
func FallibleIsoOf[S, A any](optic FallibleIsoOptic[S, A]) FallibleIso[S, A] {
	if f, ok := optic.(FallibleIso[S, A]); ok {
		return f
	}
	return FallibleIso[S, A]{optic: optic}
}

// Kind returns KindFallibleIso.
func (f FallibleIso[S, A]) Kind() Kind { return KindFallibleIso }

// TryGet converts source to A.
func (f FallibleIso[S, A]) TryGet(source S) (A, error) {
	return f.optic.TryGet(source)
}

// Preview converts source to A and reports whether it succeeded.
func (f FallibleIso[S, A]) Preview(source S) (A, bool) {
	a, err := f.optic.TryGet(source)
	return a, err == nil
}

// Set replaces the focus of a readable source.
func (f FallibleIso[S, A]) Set(source *S, value A) {
	f.optic.Set(source, value)
}

// Modify applies fn to the focus of a readable source.
func (f FallibleIso[S, A]) Modify(source *S, fn func(A) A) {
	a, err := f.optic.TryGet(*source)
	if err != nil {
		return
	}
	f.optic.Set(source, fn(a))
}

// TryReverseGet converts value back to S.
func (f FallibleIso[S, A]) TryReverseGet(value A) (S, error) {
	return f.optic.TryReverseGet(value)
}

// AsPartialGetter keeps only the read.
func (f FallibleIso[S, A]) AsPartialGetter() PartialGetter[S, A] {
	return PartialGetter[S, A]{optic: f}
}

// AsOptional forgets reverse construction.
func (f FallibleIso[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{optic: f}
}

// ComposeFallibleIsoWithGetter joins a FallibleIso and a Getter into a PartialGetter.
// Read errors of the first stage are returned as is.
func ComposeFallibleIsoWithGetter[S, I, A any](first FallibleIso[S, I], second Getter[I, A]) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeFallibleIsoWithPartialGetter joins a FallibleIso and a PartialGetter into a PartialGetter.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposeFallibleIsoWithPartialGetter[S, I, A any](
	first FallibleIso[S, I],
	second PartialGetter[I, A],
	mapFirst, mapSecond ErrorMapper,
) PartialGetter[S, A] {
	return composePartialGetter[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposeFallibleIsoWithLens joins a FallibleIso and a Lens into an Optional.
// Read errors of the first stage are returned as is.
func ComposeFallibleIsoWithLens[S, I, A any](first FallibleIso[S, I], second Lens[I, A]) Optional[S, A] {
	return composeOptional[S, I, A](first, second, PassThrough, PassThrough)
}

// ComposeFallibleIsoWithOptional joins a FallibleIso and an Optional into an Optional.
// mapFirst and mapSecond convert the read errors of the two stages.
func ComposeFallibleIsoWithOptional[S, I, A any](
	first FallibleIso[S, I],
	second Optional[I, A],
	mapFirst, mapSecond ErrorMapper,
) Optional[S, A] {
	return composeOptional[S, I, A](first, second, mapFirst, mapSecond)
}

// ComposeFallibleIsoWithPrism maps read errors of both stages. Only the first
// stage can fail to build a whole, so its reverse errors are reported as is.
func ComposeFallibleIsoWithPrism[S, I, A any](
	first FallibleIso[S, I],
	second Prism[I, A],
	mapFirst, mapSecond ErrorMapper,
) FallibleIso[S, A] {
	return composeFallibleIso[S, I, A](first, second, mapFirst, mapSecond, PassThrough, PassThrough)
}

// ComposeFallibleIsoWithIso joins a FallibleIso and an Iso into a FallibleIso.
// Read errors of the first stage are returned as is.
func ComposeFallibleIsoWithIso[S, I, A any](first FallibleIso[S, I], second Iso[I, A]) FallibleIso[S, A] {
	return composeFallibleIso[S, I, A](first, second, PassThrough, PassThrough, PassThrough, PassThrough)
}

// ComposeFallibleIsoWithFallibleIso joins two fallible correspondences. Read
// errors go through getterMapFirst/getterMapSecond and reverse errors through
// reverseMapFirst/reverseMapSecond. TryReverseGet runs the second stage first.
func ComposeFallibleIsoWithFallibleIso[S, I, A any](
	first FallibleIso[S, I],
	second FallibleIso[I, A],
	getterMapFirst, getterMapSecond ErrorMapper,
	reverseMapFirst, reverseMapSecond ErrorMapper,
) FallibleIso[S, A] {
	return composeFallibleIso[S, I, A](first, second, getterMapFirst, getterMapSecond, reverseMapFirst, reverseMapSecond)
}
