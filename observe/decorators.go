package observe

import "github.com/authcorp/libs/go/optics"

// Getter decorates g. Every read is counted as ok.
func Getter[S, A any](o *Observer, g optics.Getter[S, A]) optics.Getter[S, A] {
	return optics.GetterOf[S, A](getter[S, A]{obs: o, next: g})
}

// PartialGetter decorates p.
func PartialGetter[S, A any](o *Observer, p optics.PartialGetter[S, A]) optics.PartialGetter[S, A] {
	return optics.PartialGetterOf[S, A](partialGetter[S, A]{obs: o, next: p})
}

// Lens decorates l.
func Lens[S, A any](o *Observer, l optics.Lens[S, A]) optics.Lens[S, A] {
	return optics.LensOf[S, A](lens[S, A]{obs: o, next: l})
}

// Optional decorates opt. A write is counted as skipped when the focus of the
// source cannot be read.
func Optional[S, A any](o *Observer, opt optics.Optional[S, A]) optics.Optional[S, A] {
	return optics.OptionalOf[S, A](optional[S, A]{obs: o, next: opt})
}

// Prism decorates p.
func Prism[S, A any](o *Observer, p optics.Prism[S, A]) optics.Prism[S, A] {
	return optics.PrismOf[S, A](prism[S, A]{obs: o, next: p})
}

// Iso decorates i.
func Iso[S, A any](o *Observer, i optics.Iso[S, A]) optics.Iso[S, A] {
	return optics.IsoOf[S, A](iso[S, A]{obs: o, next: i})
}

// FallibleIso decorates f. Writes are counted as skipped only when the read
// fails; a write dropped because the value does not convert back counts as ok.
func FallibleIso[S, A any](o *Observer, f optics.FallibleIso[S, A]) optics.FallibleIso[S, A] {
	return optics.FallibleIsoOf[S, A](fallibleIso[S, A]{obs: o, next: f})
}

func setIfPresent[S, A any](o *Observer, next optics.OptionalOptic[S, A], source *S, value A) {
	if _, err := next.TryGet(*source); err != nil {
		o.skipped(err)
		return
	}
	next.Set(source, value)
	o.wrote()
}

type getter[S, A any] struct {
	obs  *Observer
	next optics.Getter[S, A]
}

func (g getter[S, A]) Get(source S) A {
	a := g.next.Get(source)
	g.obs.read(nil)
	return a
}

type partialGetter[S, A any] struct {
	obs  *Observer
	next optics.PartialGetter[S, A]
}

func (p partialGetter[S, A]) TryGet(source S) (A, error) {
	a, err := p.next.TryGet(source)
	p.obs.read(err)
	return a, err
}

type lens[S, A any] struct {
	obs  *Observer
	next optics.Lens[S, A]
}

func (l lens[S, A]) Get(source S) A {
	a := l.next.Get(source)
	l.obs.read(nil)
	return a
}

func (l lens[S, A]) Set(source *S, value A) {
	l.next.Set(source, value)
	l.obs.wrote()
}

type optional[S, A any] struct {
	obs  *Observer
	next optics.Optional[S, A]
}

func (o optional[S, A]) TryGet(source S) (A, error) {
	a, err := o.next.TryGet(source)
	o.obs.read(err)
	return a, err
}

func (o optional[S, A]) Set(source *S, value A) {
	setIfPresent[S, A](o.obs, o.next, source, value)
}

type prism[S, A any] struct {
	obs  *Observer
	next optics.Prism[S, A]
}

func (p prism[S, A]) TryGet(source S) (A, error) {
	a, err := p.next.TryGet(source)
	p.obs.read(err)
	return a, err
}

func (p prism[S, A]) Set(source *S, value A) {
	setIfPresent[S, A](p.obs, p.next, source, value)
}

func (p prism[S, A]) ReverseGet(value A) S {
	s := p.next.ReverseGet(value)
	p.obs.reversed(nil)
	return s
}

type iso[S, A any] struct {
	obs  *Observer
	next optics.Iso[S, A]
}

func (i iso[S, A]) Get(source S) A {
	a := i.next.Get(source)
	i.obs.read(nil)
	return a
}

func (i iso[S, A]) Set(source *S, value A) {
	i.next.Set(source, value)
	i.obs.wrote()
}

func (i iso[S, A]) ReverseGet(value A) S {
	s := i.next.ReverseGet(value)
	i.obs.reversed(nil)
	return s
}

type fallibleIso[S, A any] struct {
	obs  *Observer
	next optics.FallibleIso[S, A]
}

func (f fallibleIso[S, A]) TryGet(source S) (A, error) {
	a, err := f.next.TryGet(source)
	f.obs.read(err)
	return a, err
}

func (f fallibleIso[S, A]) Set(source *S, value A) {
	setIfPresent[S, A](f.obs, f.next, source, value)
}

func (f fallibleIso[S, A]) TryReverseGet(value A) (S, error) {
	s, err := f.next.TryReverseGet(value)
	f.obs.reversed(err)
	return s, err
}
