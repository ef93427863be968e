package radixlit

import (
	"errors"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Descriptor is a type-erased summary of a Literal's parameters.
type Descriptor struct {
	Name      string
	Prefix    string
	Radix     int
	MaxDigits int
	Bits      int
	Signed    bool
}

// Descriptor returns the parameters of l.
func (l *Literal[T]) Descriptor() Descriptor {
	return Descriptor{
		Name:      l.name,
		Prefix:    l.Prefix(),
		Radix:     l.radix,
		MaxDigits: l.maxDigits,
		Bits:      l.bits,
		Signed:    l.signed,
	}
}

var registry = []Descriptor{
	HexU64.Descriptor(), HexU32.Descriptor(), HexU16.Descriptor(), HexU8.Descriptor(),
	HexI64.Descriptor(), HexI32.Descriptor(), HexI16.Descriptor(), HexI8.Descriptor(),

	OctU64.Descriptor(), OctU36.Descriptor(), OctU32.Descriptor(), OctU24.Descriptor(),
	OctU16.Descriptor(), OctU12.Descriptor(), OctU8.Descriptor(),
	OctI64.Descriptor(), OctI36.Descriptor(), OctI32.Descriptor(), OctI24.Descriptor(),
	OctI16.Descriptor(), OctI12.Descriptor(), OctI8.Descriptor(),

	BinU64.Descriptor(), BinU32.Descriptor(), BinU16.Descriptor(), BinU8.Descriptor(),
	BinI64.Descriptor(), BinI32.Descriptor(), BinI16.Descriptor(), BinI8.Descriptor(),
}

// Descriptors lists every predefined literal parser in declaration order.
func Descriptors() []Descriptor {
	return slices.Clone(registry)
}

// Lookup finds a predefined literal parser by name, e.g. "oct_u24".
func Lookup(name string) (Descriptor, bool) {
	return lo.Find(registry, func(d Descriptor) bool {
		return d.Name == name
	})
}

// ByRadix lists the predefined literal parsers for radix.
func ByRadix(radix int) []Descriptor {
	return lo.Filter(registry, func(d Descriptor, _ int) bool {
		return d.Radix == radix
	})
}

// FirstOf tries lits in order and returns the result of the first one whose
// prefix matches in. Prefixes are the only discriminator: once a prefix
// matches, its outcome is returned even if it is an error.
//
// If no candidate matches, FirstOf returns a nil Literal and ErrPrefixMismatch.
func FirstOf[T constraints.Integer](in []byte, lits ...*Literal[T]) (*Literal[T], []byte, T, error) {
	return firstOf(in, lits, false)
}

// FinalFirstOf is like FirstOf but parses with ParseFinal.
func FinalFirstOf[T constraints.Integer](in []byte, lits ...*Literal[T]) (*Literal[T], []byte, T, error) {
	return firstOf(in, lits, true)
}

func firstOf[T constraints.Integer](in []byte, lits []*Literal[T], final bool) (*Literal[T], []byte, T, error) {
	for _, lit := range lits {
		rest, v, err := lit.parse(in, final)
		if errors.Is(err, ErrPrefixMismatch) {
			continue
		}
		return lit, rest, v, err
	}
	var zero T
	return nil, nil, zero, &Error{Kind: KindPrefixMismatch}
}
