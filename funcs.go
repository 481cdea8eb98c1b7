package optics

// Function-backed primitives behind the New* constructors.

type getterFunc[S, A any] func(S) A

func (f getterFunc[S, A]) Get(source S) A {
	return f(source)
}

type partialGetterFunc[S, A any] func(S) (A, error)

func (f partialGetterFunc[S, A]) TryGet(source S) (A, error) {
	return f(source)
}

type lensFuncs[S, A any] struct {
	get func(S) A
	set func(*S, A)
}

func (l lensFuncs[S, A]) Get(source S) A {
	return l.get(source)
}

func (l lensFuncs[S, A]) Set(source *S, value A) {
	l.set(source, value)
}

type optionalFuncs[S, A any] struct {
	tryGet func(S) (A, error)
	set    func(*S, A)
}

func (o optionalFuncs[S, A]) TryGet(source S) (A, error) {
	return o.tryGet(source)
}

// Set only calls the user setter when the focus is present.
func (o optionalFuncs[S, A]) Set(source *S, value A) {
	if _, err := o.tryGet(*source); err != nil {
		return
	}
	o.set(source, value)
}

type prismFuncs[S, A any] struct {
	tryGet     func(S) (A, error)
	reverseGet func(A) S
}

func (p prismFuncs[S, A]) TryGet(source S) (A, error) {
	return p.tryGet(source)
}

func (p prismFuncs[S, A]) Set(source *S, value A) {
	if _, err := p.tryGet(*source); err != nil {
		return
	}
	*source = p.reverseGet(value)
}

func (p prismFuncs[S, A]) ReverseGet(value A) S {
	return p.reverseGet(value)
}

type isoFuncs[S, A any] struct {
	get        func(S) A
	reverseGet func(A) S
}

func (i isoFuncs[S, A]) Get(source S) A {
	return i.get(source)
}

func (i isoFuncs[S, A]) Set(source *S, value A) {
	*source = i.reverseGet(value)
}

func (i isoFuncs[S, A]) ReverseGet(value A) S {
	return i.reverseGet(value)
}

type fallibleIsoFuncs[S, A any] struct {
	tryGet        func(S) (A, error)
	tryReverseGet func(A) (S, error)
}

func (f fallibleIsoFuncs[S, A]) TryGet(source S) (A, error) {
	return f.tryGet(source)
}

// Set replaces source only when it currently matches and value converts back.
func (f fallibleIsoFuncs[S, A]) Set(source *S, value A) {
	if _, err := f.tryGet(*source); err != nil {
		return
	}
	s, err := f.tryReverseGet(value)
	if err != nil {
		return
	}
	*source = s
}

func (f fallibleIsoFuncs[S, A]) TryReverseGet(value A) (S, error) {
	return f.tryReverseGet(value)
}
