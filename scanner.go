package radixlit

import (
	"errors"
	"iter"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Token is a literal found by a Scanner.
type Token[T constraints.Integer] struct {
	// Offset is the position of the prefix in the scanned buffer.
	Offset int
	// Literal is the candidate that matched.
	Literal *Literal[T]
	Value   T
	// Text holds the prefix and digits. It aliases the scanned buffer.
	Text []byte
}

type scannerConfig struct {
	logger *zap.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*scannerConfig)

// WithLogger sets the logger used for debug output. A nil logger disables logging.
func WithLogger(logger *zap.Logger) ScannerOption {
	return func(c *scannerConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

// Scanner finds literals anywhere in a complete buffer.
type Scanner[T constraints.Integer] struct {
	lits   []*Literal[T]
	logger *zap.Logger
}

// NewScanner returns a Scanner that tries lits, in order, at every '0' that
// starts a word. A word starts where the previous byte is not an ASCII letter,
// digit or underscore.
func NewScanner[T constraints.Integer](lits []*Literal[T], opts ...ScannerOption) *Scanner[T] {
	cfg := scannerConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scanner[T]{
		lits:   slices.Clone(lits),
		logger: cfg.logger,
	}
}

// All yields every literal in in. A literal whose prefix matches but which
// cannot be decoded is yielded as an *Error with Offset set, and scanning
// resumes after its prefix. The buffer is treated as complete, so literals
// may end at the last byte.
func (s *Scanner[T]) All(in []byte) iter.Seq2[Token[T], error] {
	return func(yield func(Token[T], error) bool) {
		i := 0
		for i < len(in) {
			if in[i] != '0' || (i > 0 && isWordByte(in[i-1])) {
				i++
				continue
			}

			lit, rest, v, err := FinalFirstOf(in[i:], s.lits...)
			if err == nil {
				n := len(in) - i - len(rest)
				if len(rest) > 0 && lit.isDigit(rest[0]) {
					s.logger.Debug("digit run truncated",
						zap.Int("offset", i),
						zap.String("literal", lit.name),
						zap.Int("maxDigits", lit.maxDigits))
				}
				if !yield(Token[T]{Offset: i, Literal: lit, Value: v, Text: in[i : i+n]}, nil) {
					return
				}
				i += n
				continue
			}

			if errors.Is(err, ErrPrefixMismatch) || errors.Is(err, ErrIncomplete) {
				i++
				continue
			}

			var e *Error
			if !errors.As(err, &e) {
				e = &Error{Kind: KindNoDigits, Err: err}
			}
			e.Offset = i
			s.logger.Debug("malformed literal",
				zap.Int("offset", i),
				zap.Stringer("kind", e.Kind),
				zap.String("literal", e.Literal),
				zap.Error(e.Err))
			if !yield(Token[T]{}, e) {
				return
			}
			i += prefixLen
		}
	}
}

// Collect returns all tokens in in, and the malformed literals joined into
// one error.
func (s *Scanner[T]) Collect(in []byte) ([]Token[T], error) {
	var tokens []Token[T]
	var errs []error
	for tok, err := range s.All(in) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, errors.Join(errs...)
}
