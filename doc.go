// Package optics provides composable accessors ("optics") that focus on a part A
// of a whole S.
//
// Every optic belongs to one of seven kinds. A kind is a fixed bundle of the
// capabilities below:
//
//	Kind           TryGet  Get  Set  ReverseGet  TryReverseGet
//	Getter         yes     yes  -    -           -
//	PartialGetter  yes     -    -    -           -
//	Lens           yes     yes  yes  -           -
//	Optional       yes     -    yes  -           -
//	Prism          yes     -    yes  yes         yes
//	Iso            yes     yes  yes  yes         yes
//	FallibleIso    yes     -    yes  -           yes
//
// Primitive optics are built from functions (NewLens, NewPrism, ...) or from any
// type implementing the matching bundle interface (LensOf, PrismOf, ...). Two
// optics S -> I and I -> A are joined with one of the Compose<K1>With<K2>
// functions, which returns the strongest kind both operands support.
//
// When both stages of a channel can fail, the caller supplies one ErrorMapper
// per stage to fold the two error domains into the composite's error. Set on a
// composite whose first stage cannot read the intermediate value does nothing.
//
// Set mutates the source in place:
//
//	p := optics.Pair[int, string]{First: 0, Second: "42"}
//	n := optics.ComposeLensWithPrism(optics.Second[int, string](), optics.ParseInt())
//	n.Set(&p, 7) // p.Second == "7"
package optics
