package radixlit

import (
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const (
	prefixLen = 2

	// MinInput is the shortest buffer a parser inspects: the prefix and one digit.
	// It is a lower bound only; a buffer of this length may still be incomplete.
	MinInput = prefixLen + 1
)

// Literal parses one radix-prefixed integer literal kind into T.
//
// A Literal is immutable after construction and safe for concurrent use.
type Literal[T constraints.Integer] struct {
	name      string
	prefix    [prefixLen]byte
	radix     int
	isDigit   func(byte) bool
	maxDigits int
	bits      int
	signed    bool
}

// New returns a parser for literals that start with prefix and continue with
// up to maxDigits bytes accepted by isDigit, decoded in the given radix.
func New[T constraints.Integer](name, prefix string, radix int, isDigit func(byte) bool, maxDigits int) (*Literal[T], error) {
	if len(prefix) != prefixLen {
		return nil, fmt.Errorf("radixlit: %s: prefix %q must be %d bytes", name, prefix, prefixLen)
	}
	switch radix {
	case 2, 8, 16:
	default:
		return nil, fmt.Errorf("radixlit: %s: unsupported radix %d", name, radix)
	}
	if isDigit == nil {
		return nil, fmt.Errorf("radixlit: %s: nil digit predicate", name)
	}
	for b := 0; b < 256; b++ {
		if isDigit(byte(b)) && digitValue(byte(b)) >= radix {
			return nil, fmt.Errorf("radixlit: %s: predicate accepts %q, not a base-%d digit", name, byte(b), radix)
		}
	}
	if maxDigits < 1 {
		return nil, fmt.Errorf("radixlit: %s: maxDigits must be positive, got %d", name, maxDigits)
	}

	var zero T
	return &Literal[T]{
		name:      name,
		prefix:    [prefixLen]byte{prefix[0], prefix[1]},
		radix:     radix,
		isDigit:   isDigit,
		maxDigits: maxDigits,
		bits:      int(unsafe.Sizeof(zero)) * 8,
		signed:    ^zero < 0,
	}, nil
}

// MustNew is like New but panics on invalid parameters.
func MustNew[T constraints.Integer](name, prefix string, radix int, isDigit func(byte) bool, maxDigits int) *Literal[T] {
	l, err := New[T](name, prefix, radix, isDigit, maxDigits)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Literal[T]) Name() string   { return l.name }
func (l *Literal[T]) Prefix() string { return string(l.prefix[:]) }
func (l *Literal[T]) Radix() int     { return l.radix }
func (l *Literal[T]) MaxDigits() int { return l.maxDigits }
func (l *Literal[T]) Bits() int      { return l.bits }
func (l *Literal[T]) Signed() bool   { return l.signed }
func (l *Literal[T]) String() string { return l.name }

// Parse decodes the literal at the start of in and returns the unconsumed
// remainder, which aliases in.
//
// A digit run that continues to the very end of in is reported as
// ErrUnterminated rather than ErrIncomplete, even though more input could
// complete it. Use ParseFinal when in is known to hold all the input.
//
// The digit run stops after MaxDigits digits; any digits that follow are left
// in the remainder without an error.
func (l *Literal[T]) Parse(in []byte) (rest []byte, v T, err error) {
	return l.parse(in, false)
}

// ParseFinal is like Parse but treats the end of in as the end of the
// literal, so a digit run may run up to the last byte.
func (l *Literal[T]) ParseFinal(in []byte) (rest []byte, v T, err error) {
	return l.parse(in, true)
}

func (l *Literal[T]) parse(in []byte, final bool) ([]byte, T, error) {
	var zero T
	if len(in) < MinInput {
		return nil, zero, &Error{Kind: KindIncomplete, Literal: l.name, Needed: MinInput}
	}
	if in[0] != l.prefix[0] || in[1] != l.prefix[1] {
		return nil, zero, &Error{Kind: KindPrefixMismatch, Literal: l.name}
	}

	end := prefixLen + l.maxDigits
	i := prefixLen
	for l.isDigit(in[i]) {
		i++
		if i == len(in) {
			if !final {
				return nil, zero, &Error{Kind: KindUnterminated, Literal: l.name}
			}
			break
		}
		if i == end {
			break
		}
	}
	if i == prefixLen {
		return nil, zero, &Error{Kind: KindNoDigits, Literal: l.name}
	}

	v, err := l.decode(in[prefixLen:i])
	if err != nil {
		return nil, zero, err
	}
	return in[i:], v, nil
}

// decode must only see bytes already accepted by isDigit. New guarantees those
// are digits of l.radix, so strconv can only fail with a range error.
func (l *Literal[T]) decode(digits []byte) (T, error) {
	s := unsafe.String(unsafe.SliceData(digits), len(digits))
	if l.signed {
		v, err := strconv.ParseInt(s, l.radix, l.bits)
		if err != nil {
			return 0, &Error{Kind: KindOverflow, Literal: l.name, Err: err}
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, l.radix, l.bits)
	if err != nil {
		return 0, &Error{Kind: KindOverflow, Literal: l.name, Err: err}
	}
	return T(v), nil
}
