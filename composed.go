package optics

// Composite optics. Each type joins an outer stage S -> I with an inner stage
// I -> A. They are only reachable through the Compose functions, which pick the
// type matching ComposeKinds of the operands.

func tryGetThrough[S, I, A any](
	outer FallibleReader[S, I],
	inner FallibleReader[I, A],
	mapOuter, mapInner ErrorMapper,
	source S,
) (A, error) {
	var zero A
	i, err := outer.TryGet(source)
	if err != nil {
		return zero, mapOuter(err)
	}
	a, err := inner.TryGet(i)
	if err != nil {
		return zero, mapInner(err)
	}
	return a, nil
}

// setThrough reads the intermediate, updates it and writes it back. A failed
// outer read leaves source as it was.
func setThrough[S, I, A any](outer OptionalOptic[S, I], inner Writer[I, A], source *S, value A) {
	i, err := outer.TryGet(*source)
	if err != nil {
		return
	}
	inner.Set(&i, value)
	outer.Set(source, i)
}

type composedGetter[S, I, A any] struct {
	outer TotalReader[S, I]
	inner TotalReader[I, A]
}

func (c composedGetter[S, I, A]) Get(source S) A {
	return c.inner.Get(c.outer.Get(source))
}

type composedPartialGetter[S, I, A any] struct {
	outer    FallibleReader[S, I]
	inner    FallibleReader[I, A]
	mapOuter ErrorMapper
	mapInner ErrorMapper
}

func (c composedPartialGetter[S, I, A]) TryGet(source S) (A, error) {
	return tryGetThrough[S, I, A](c.outer, c.inner, c.mapOuter, c.mapInner, source)
}

type composedLens[S, I, A any] struct {
	outer LensOptic[S, I]
	inner LensOptic[I, A]
}

func (c composedLens[S, I, A]) Get(source S) A {
	return c.inner.Get(c.outer.Get(source))
}

func (c composedLens[S, I, A]) Set(source *S, value A) {
	i := c.outer.Get(*source)
	c.inner.Set(&i, value)
	c.outer.Set(source, i)
}

type composedOptional[S, I, A any] struct {
	outer    OptionalOptic[S, I]
	inner    OptionalOptic[I, A]
	mapOuter ErrorMapper
	mapInner ErrorMapper
}

func (c composedOptional[S, I, A]) TryGet(source S) (A, error) {
	return tryGetThrough[S, I, A](c.outer, c.inner, c.mapOuter, c.mapInner, source)
}

func (c composedOptional[S, I, A]) Set(source *S, value A) {
	setThrough[S, I, A](c.outer, c.inner, source, value)
}

type composedPrism[S, I, A any] struct {
	outer    PrismOptic[S, I]
	inner    PrismOptic[I, A]
	mapOuter ErrorMapper
	mapInner ErrorMapper
}

func (c composedPrism[S, I, A]) TryGet(source S) (A, error) {
	return tryGetThrough[S, I, A](c.outer, c.inner, c.mapOuter, c.mapInner, source)
}

func (c composedPrism[S, I, A]) Set(source *S, value A) {
	setThrough[S, I, A](c.outer, c.inner, source, value)
}

// ReverseGet rebuilds from the innermost focus outward.
func (c composedPrism[S, I, A]) ReverseGet(value A) S {
	return c.outer.ReverseGet(c.inner.ReverseGet(value))
}

type composedIso[S, I, A any] struct {
	outer IsoOptic[S, I]
	inner IsoOptic[I, A]
}

func (c composedIso[S, I, A]) Get(source S) A {
	return c.inner.Get(c.outer.Get(source))
}

func (c composedIso[S, I, A]) Set(source *S, value A) {
	i := c.outer.Get(*source)
	c.inner.Set(&i, value)
	c.outer.Set(source, i)
}

func (c composedIso[S, I, A]) ReverseGet(value A) S {
	return c.outer.ReverseGet(c.inner.ReverseGet(value))
}

type composedFallibleIso[S, I, A any] struct {
	outer           FallibleIsoOptic[S, I]
	inner           FallibleIsoOptic[I, A]
	getterMapOuter  ErrorMapper
	getterMapInner  ErrorMapper
	reverseMapOuter ErrorMapper
	reverseMapInner ErrorMapper
}

func (c composedFallibleIso[S, I, A]) TryGet(source S) (A, error) {
	return tryGetThrough[S, I, A](c.outer, c.inner, c.getterMapOuter, c.getterMapInner, source)
}

func (c composedFallibleIso[S, I, A]) Set(source *S, value A) {
	setThrough[S, I, A](c.outer, c.inner, source, value)
}

// TryReverseGet runs the inner stage first, then the outer one.
func (c composedFallibleIso[S, I, A]) TryReverseGet(value A) (S, error) {
	var zero S
	i, err := c.inner.TryReverseGet(value)
	if err != nil {
		return zero, c.reverseMapInner(err)
	}
	s, err := c.outer.TryReverseGet(i)
	if err != nil {
		return zero, c.reverseMapOuter(err)
	}
	return s, nil
}

func composeGetter[S, I, A any](outer TotalReader[S, I], inner TotalReader[I, A]) Getter[S, A] {
	return Getter[S, A]{optic: composedGetter[S, I, A]{outer: outer, inner: inner}}
}

func composePartialGetter[S, I, A any](
	outer FallibleReader[S, I],
	inner FallibleReader[I, A],
	mapOuter, mapInner ErrorMapper,
) PartialGetter[S, A] {
	return PartialGetter[S, A]{optic: composedPartialGetter[S, I, A]{
		outer:    outer,
		inner:    inner,
		mapOuter: mapOuter,
		mapInner: mapInner,
	}}
}

func composeLens[S, I, A any](outer LensOptic[S, I], inner LensOptic[I, A]) Lens[S, A] {
	return Lens[S, A]{optic: composedLens[S, I, A]{outer: outer, inner: inner}}
}

func composeOptional[S, I, A any](
	outer OptionalOptic[S, I],
	inner OptionalOptic[I, A],
	mapOuter, mapInner ErrorMapper,
) Optional[S, A] {
	return Optional[S, A]{optic: composedOptional[S, I, A]{
		outer:    outer,
		inner:    inner,
		mapOuter: mapOuter,
		mapInner: mapInner,
	}}
}

func composePrism[S, I, A any](
	outer PrismOptic[S, I],
	inner PrismOptic[I, A],
	mapOuter, mapInner ErrorMapper,
) Prism[S, A] {
	return Prism[S, A]{optic: composedPrism[S, I, A]{
		outer:    outer,
		inner:    inner,
		mapOuter: mapOuter,
		mapInner: mapInner,
	}}
}

func composeIso[S, I, A any](outer IsoOptic[S, I], inner IsoOptic[I, A]) Iso[S, A] {
	return Iso[S, A]{optic: composedIso[S, I, A]{outer: outer, inner: inner}}
}

func composeFallibleIso[S, I, A any](
	outer FallibleIsoOptic[S, I],
	inner FallibleIsoOptic[I, A],
	getterMapOuter, getterMapInner ErrorMapper,
	reverseMapOuter, reverseMapInner ErrorMapper,
) FallibleIso[S, A] {
	return FallibleIso[S, A]{optic: composedFallibleIso[S, I, A]{
		outer:           outer,
		inner:           inner,
		getterMapOuter:  getterMapOuter,
		getterMapInner:  getterMapInner,
		reverseMapOuter: reverseMapOuter,
		reverseMapInner: reverseMapInner,
	}}
}
