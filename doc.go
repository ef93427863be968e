// Package radixlit parses radix-prefixed integer literals ("0x", "0o", "0b")
// from byte slices into fixed-width Go integers.
//
// # Parsers
//
// Every parser is a *Literal[T] built from one generic algorithm and a small
// parameter set: a two-byte prefix, a radix, a digit predicate, a maximum
// digit count and the output type. The predefined parsers in this package
// cover hexadecimal, octal and binary literals in several widths:
//
//	rest, v, err := radixlit.HexU32.Parse([]byte("0xdeadbeef,"))
//	// rest == []byte(","), v == 0xdeadbeef
//
// Parse returns the unconsumed remainder of the input as a sub-slice.
//
// # Digit limits
//
// A digit run stops after MaxDigits digits even if more digits follow. The
// extra digits are left in the remainder and no error is reported:
//
//	rest, v, _ := radixlit.HexU8.Parse([]byte("0xabcd "))
//	// rest == []byte("cd "), v == 0xab
//
// When MaxDigits admits values wider than T, decoding fails with ErrOverflow
// instead of wrapping.
//
// # Incomplete input
//
// Buffers shorter than MinInput bytes yield ErrIncomplete. A digit run that
// reaches the end of the buffer yields ErrUnterminated from Parse, which is
// an error even though more input could complete the literal; Retryable
// reports both cases. ParseFinal instead accepts a literal that ends at the
// buffer end, for callers that know the buffer is complete.
//
// # Choosing a radix
//
// Prefixes are disjoint, so FirstOf can try several parsers against the same
// input and return the one whose prefix matches. Scanner applies the same
// dispatch at every word start of a buffer, and ValueParser applies it to a
// whole string such as a configuration value.
package radixlit
