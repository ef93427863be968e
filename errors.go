package radixlit

import (
	"errors"
	"fmt"

	"github.com/apstndb/lox"
)

// Kind classifies why a literal could not be parsed.
//
//go:generate go tool enumer -type=Kind -trimprefix=Kind -transform=snake_upper
type Kind int

const (
	// KindIncomplete means the buffer is too short to make progress.
	// Retry with more bytes from the start of the buffer.
	KindIncomplete Kind = iota

	// KindPrefixMismatch means the input does not start with the
	// literal's two-byte prefix. Another literal kind may match.
	KindPrefixMismatch

	// KindUnterminated means the digit run reached the end of the buffer
	// without a terminating byte. Parse reports this as an error rather than
	// as KindIncomplete; ParseFinal never reports it.
	KindUnterminated

	// KindNoDigits means the prefix is not followed by a digit.
	KindNoDigits

	// KindOverflow means the digits decode to a value outside the range of
	// the target integer type.
	KindOverflow
)

// Sentinel errors for use with errors.Is. They match any *Error of the same Kind.
var (
	ErrIncomplete     = &Error{Kind: KindIncomplete}
	ErrPrefixMismatch = &Error{Kind: KindPrefixMismatch}
	ErrUnterminated   = &Error{Kind: KindUnterminated}
	ErrNoDigits       = &Error{Kind: KindNoDigits}
	ErrOverflow       = &Error{Kind: KindOverflow}
)

// Error is the error type returned by every literal parser.
type Error struct {
	Kind Kind

	// Literal is the name of the parser that failed, e.g. "hex_u64".
	Literal string

	// Needed is the minimum buffer length to retry with. Set for KindIncomplete.
	Needed int

	// Offset is the position in the scanned buffer. Only the Scanner sets it.
	Offset int

	// Err is the underlying decode error. Set for KindOverflow.
	Err error
}

func (e *Error) Error() string {
	prefix := lox.IfOrEmpty(e.Literal != "", e.Literal+": ")
	switch e.Kind {
	case KindIncomplete:
		return fmt.Sprintf("%sincomplete input: need at least %d bytes", prefix, e.Needed)
	case KindPrefixMismatch:
		return prefix + "prefix mismatch"
	case KindUnterminated:
		return prefix + "digit run reaches end of input"
	case KindNoDigits:
		return prefix + "no digits after prefix"
	case KindOverflow:
		return fmt.Sprintf("%svalue out of range: %v", prefix, e.Err)
	default:
		return fmt.Sprintf("%sunknown error kind %d", prefix, int(e.Kind))
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsIncomplete reports whether err asks for more input and how many bytes
// the buffer must hold before retrying.
func IsIncomplete(err error) (needed int, ok bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindIncomplete {
		return e.Needed, true
	}
	return 0, false
}

// Retryable reports whether err may go away once more input is available.
// An unterminated digit run counts, even though Parse reports it as an error.
func Retryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindIncomplete || e.Kind == KindUnterminated
}
