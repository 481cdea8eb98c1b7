package optics

import (
	"slices"
	"strings"
)

// Capabilities is a set of optic capabilities.
// Total read implies fallible read and infallible reverse implies fallible
// reverse, so every kind's set is closed under those implications.
type Capabilities uint8

const (
	// CapFallibleRead is TryGet.
	CapFallibleRead Capabilities = 1 << iota
	// CapTotalRead is Get.
	CapTotalRead
	// CapWrite is Set.
	CapWrite
	// CapFallibleReverse is TryReverseGet.
	CapFallibleReverse
	// CapReverse is ReverseGet.
	CapReverse
)

// Has reports whether c contains every capability in other.
func (c Capabilities) Has(other Capabilities) bool {
	return c&other == other
}

// String lists the capabilities in c joined by "|".
func (c Capabilities) String() string {
	if c == 0 {
		return "none"
	}
	names := make([]string, 0, 5)
	for _, entry := range []struct {
		flag Capabilities
		name string
	}{
		{CapFallibleRead, "fallible-read"},
		{CapTotalRead, "total-read"},
		{CapWrite, "write"},
		{CapFallibleReverse, "fallible-reverse"},
		{CapReverse, "reverse"},
	} {
		if c.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}

// Kind names one of the seven capability bundles.
type Kind uint8

const (
	KindGetter Kind = iota + 1
	KindPartialGetter
	KindLens
	KindOptional
	KindPrism
	KindIso
	KindFallibleIso
)

// allKinds lists every kind, weakest first.
var allKinds = []Kind{
	KindPartialGetter,
	KindGetter,
	KindOptional,
	KindLens,
	KindFallibleIso,
	KindPrism,
	KindIso,
}

// Kinds returns every kind, weakest first.
func Kinds() []Kind {
	return slices.Clone(allKinds)
}

func (k Kind) String() string {
	switch k {
	case KindGetter:
		return "Getter"
	case KindPartialGetter:
		return "PartialGetter"
	case KindLens:
		return "Lens"
	case KindOptional:
		return "Optional"
	case KindPrism:
		return "Prism"
	case KindIso:
		return "Iso"
	case KindFallibleIso:
		return "FallibleIso"
	default:
		return "Unknown"
	}
}

// Capabilities returns the bundle of k.
func (k Kind) Capabilities() Capabilities {
	const (
		read    = CapFallibleRead
		total   = CapFallibleRead | CapTotalRead
		reverse = CapFallibleReverse | CapReverse
	)
	switch k {
	case KindGetter:
		return total
	case KindPartialGetter:
		return read
	case KindLens:
		return total | CapWrite
	case KindOptional:
		return read | CapWrite
	case KindPrism:
		return read | CapWrite | reverse
	case KindIso:
		return total | CapWrite | reverse
	case KindFallibleIso:
		return read | CapWrite | CapFallibleReverse
	default:
		return 0
	}
}

// KindOf returns the kind whose bundle is exactly caps.
func KindOf(caps Capabilities) (Kind, bool) {
	for _, k := range allKinds {
		if k.Capabilities() == caps {
			return k, true
		}
	}
	return 0, false
}

// ComposeKinds returns the kind of k1 composed with k2.
//
// The composite keeps a capability only when both operands have it: reads stay
// total only if both reads are total, writes survive only if both stages
// write, and reverse construction stays infallible only if both stages are.
// The intersection of any two bundles is itself a bundle.
func ComposeKinds(k1, k2 Kind) Kind {
	k, ok := KindOf(k1.Capabilities() & k2.Capabilities())
	if !ok {
		return 0
	}
	return k
}
