package optics

// TotalReader reads a focus that is always present.
type TotalReader[S, A any] interface {
	Get(source S) A
}

// FallibleReader reads a focus that may be absent.
type FallibleReader[S, A any] interface {
	TryGet(source S) (A, error)
}

// Writer replaces the focus inside source.
type Writer[S, A any] interface {
	Set(source *S, value A)
}

// Constructor builds a whole from a focus alone and cannot fail.
type Constructor[S, A any] interface {
	ReverseGet(value A) S
}

// FallibleConstructor builds a whole from a focus alone and may fail.
type FallibleConstructor[S, A any] interface {
	TryReverseGet(value A) (S, error)
}

// Capability bundles. A primitive optic implements the bundle of the kind it
// claims and is wrapped with the matching XOf constructor.
//
// Implementations of OptionalOptic, PrismOptic and FallibleIsoOptic must leave
// source untouched in Set when their own read fails.

// GetterOptic is the bundle behind Getter.
type GetterOptic[S, A any] interface {
	TotalReader[S, A]
}

// PartialGetterOptic is the bundle behind PartialGetter.
type PartialGetterOptic[S, A any] interface {
	FallibleReader[S, A]
}

// LensOptic is the bundle behind Lens.
type LensOptic[S, A any] interface {
	TotalReader[S, A]
	Writer[S, A]
}

// OptionalOptic is the bundle behind Optional.
type OptionalOptic[S, A any] interface {
	FallibleReader[S, A]
	Writer[S, A]
}

// PrismOptic is the bundle behind Prism.
type PrismOptic[S, A any] interface {
	FallibleReader[S, A]
	Writer[S, A]
	Constructor[S, A]
}

// IsoOptic is the bundle behind Iso.
type IsoOptic[S, A any] interface {
	TotalReader[S, A]
	Writer[S, A]
	Constructor[S, A]
}

// FallibleIsoOptic is the bundle behind FallibleIso.
type FallibleIsoOptic[S, A any] interface {
	FallibleReader[S, A]
	Writer[S, A]
	FallibleConstructor[S, A]
}
