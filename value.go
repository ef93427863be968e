package radixlit

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/apstndb/radixlit/internal/parser"
)

// ErrTrailingInput is returned by ValueParser when bytes follow the literal.
var ErrTrailingInput = errors.New("trailing input after literal")

// ValueParser parses a whole string such as a flag or config value as a
// single literal. Surrounding whitespace is ignored; anything else after the
// literal, including digits beyond the literal's MaxDigits, is an error.
type ValueParser[T constraints.Integer] struct {
	parser.BaseParser[T]
	lits []*Literal[T]
	min  *T
	max  *T
}

// NewValueParser returns a parser accepting any of lits, tried in order.
func NewValueParser[T constraints.Integer](lits ...*Literal[T]) *ValueParser[T] {
	p := &ValueParser[T]{lits: slices.Clone(lits)}
	p.BaseParser = parser.BaseParser[T]{
		ParseFunc: p.parse,
	}
	return p
}

func (p *ValueParser[T]) parse(value string) (T, error) {
	trimmed := strings.TrimSpace(value)
	_, rest, v, err := FinalFirstOf([]byte(trimmed), p.lits...)
	if err != nil {
		return 0, fmt.Errorf("invalid literal %q: %w", value, err)
	}
	if len(rest) > 0 {
		return 0, fmt.Errorf("invalid literal %q: %w: %q", value, ErrTrailingInput, rest)
	}
	return v, nil
}

// WithRange adds range validation to the value parser.
func (p *ValueParser[T]) WithRange(min, max T) *ValueParser[T] {
	p.min = &min
	p.max = &max
	p.ValidateFunc = parser.CreateRangeValidator(p.min, p.max)
	return p
}

// WithMin adds minimum value validation.
func (p *ValueParser[T]) WithMin(min T) *ValueParser[T] {
	p.min = &min
	p.ValidateFunc = parser.CreateRangeValidator(p.min, p.max)
	return p
}

// WithMax adds maximum value validation.
func (p *ValueParser[T]) WithMax(max T) *ValueParser[T] {
	p.max = &max
	p.ValidateFunc = parser.CreateRangeValidator(p.min, p.max)
	return p
}

// Widen converts the output of p to U, failing if a value does not fit.
// It lets parsers of different widths feed one destination type, e.g. an
// OctU12 value stored as uint64.
func Widen[T, U constraints.Integer](p parser.Parser[T]) parser.Parser[U] {
	return parser.WithTransform(p, func(v T) (U, error) {
		u := U(v)
		if T(u) != v || (u < 0) != (v < 0) {
			return 0, fmt.Errorf("value %d does not fit in %T", v, u)
		}
		return u, nil
	})
}
