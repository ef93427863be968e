package parser

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RangeError reports a value outside the configured bounds.
type RangeError[T constraints.Integer] struct {
	Value T
	Min   *T
	Max   *T
}

func (e *RangeError[T]) Error() string {
	if e.Min != nil && e.Value < *e.Min {
		return fmt.Sprintf("value %d is less than minimum %d", e.Value, *e.Min)
	}
	if e.Max != nil {
		return fmt.Sprintf("value %d is greater than maximum %d", e.Value, *e.Max)
	}
	return fmt.Sprintf("value %d is out of range", e.Value)
}

// CreateRangeValidator creates a validation function for integer types with
// optional min/max constraints. A nil bound is not checked.
func CreateRangeValidator[T constraints.Integer](min, max *T) Validator[T] {
	return func(v T) error {
		if (min != nil && v < *min) || (max != nil && v > *max) {
			return &RangeError[T]{Value: v, Min: min, Max: max}
		}
		return nil
	}
}
