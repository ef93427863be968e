package radixlit_test

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"golang.org/x/exp/constraints"

	"github.com/apstndb/radixlit"
)

var alphabets = map[int]string{
	16: "0123456789abcdefABCDEF",
	8:  "01234567",
	2:  "01",
}

func randomDigits(rng *rand.Rand, radix, n int) string {
	alphabet := alphabets[radix]
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(buf)
}

// decodeDigits is the reference decoder: strconv sized to the literal.
func decodeDigits[T constraints.Integer](lit *radixlit.Literal[T], digits string) (T, error) {
	if lit.Signed() {
		v, err := strconv.ParseInt(digits, lit.Radix(), lit.Bits())
		return T(v), err
	}
	v, err := strconv.ParseUint(digits, lit.Radix(), lit.Bits())
	return T(v), err
}

// roundTrip checks prefix + d + tail for random d of every allowed length,
// and the truncation law for runs longer than MaxDigits.
func roundTrip[T constraints.Integer](lit *radixlit.Literal[T]) func(t *testing.T) {
	return func(t *testing.T) {
		rng := rand.New(rand.NewPCG(uint64(lit.MaxDigits()), uint64(lit.Radix())))
		const tail = ";tail 0x1"

		for n := 1; n <= lit.MaxDigits(); n++ {
			for range 8 {
				d := randomDigits(rng, lit.Radix(), n)
				in := lit.Prefix() + d + tail
				rest, got, err := lit.Parse([]byte(in))

				want, wantErr := decodeDigits(lit, d)
				if wantErr != nil {
					if !errors.Is(err, radixlit.ErrOverflow) {
						t.Fatalf("Parse(%q) error = %v, want overflow", in, err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("Parse(%q) unexpected error = %v", in, err)
				}
				if got != want {
					t.Fatalf("Parse(%q) = %d, want %d", in, got, want)
				}
				if string(rest) != tail {
					t.Fatalf("Parse(%q) rest = %q, want %q", in, rest, tail)
				}
			}
		}

		for k := 1; k <= 3; k++ {
			d := randomDigits(rng, lit.Radix(), lit.MaxDigits()+k)
			in := lit.Prefix() + d
			rest, got, err := lit.Parse([]byte(in))

			want, wantErr := decodeDigits(lit, d[:lit.MaxDigits()])
			if wantErr != nil {
				if !errors.Is(err, radixlit.ErrOverflow) {
					t.Fatalf("Parse(%q) error = %v, want overflow", in, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error = %v", in, err)
			}
			if got != want {
				t.Fatalf("Parse(%q) = %d, want %d", in, got, want)
			}
			if string(rest) != d[lit.MaxDigits():] {
				t.Fatalf("Parse(%q) rest = %q, want %q", in, rest, d[lit.MaxDigits():])
			}
		}

		for _, prefix := range []string{"0x", "0o", "0b", "1x", "00", "x0"} {
			if prefix == lit.Prefix() {
				continue
			}
			in := prefix + randomDigits(rng, lit.Radix(), 3) + tail
			if _, _, err := lit.Parse([]byte(in)); !errors.Is(err, radixlit.ErrPrefixMismatch) {
				t.Fatalf("Parse(%q) error = %v, want prefix mismatch", in, err)
			}
		}
	}
}

func TestLiteralProperties(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"hex_u64", roundTrip(radixlit.HexU64)},
		{"hex_u32", roundTrip(radixlit.HexU32)},
		{"hex_u16", roundTrip(radixlit.HexU16)},
		{"hex_u8", roundTrip(radixlit.HexU8)},
		{"hex_i64", roundTrip(radixlit.HexI64)},
		{"hex_i32", roundTrip(radixlit.HexI32)},
		{"hex_i16", roundTrip(radixlit.HexI16)},
		{"hex_i8", roundTrip(radixlit.HexI8)},
		{"oct_u64", roundTrip(radixlit.OctU64)},
		{"oct_u36", roundTrip(radixlit.OctU36)},
		{"oct_u32", roundTrip(radixlit.OctU32)},
		{"oct_u24", roundTrip(radixlit.OctU24)},
		{"oct_u16", roundTrip(radixlit.OctU16)},
		{"oct_u12", roundTrip(radixlit.OctU12)},
		{"oct_u8", roundTrip(radixlit.OctU8)},
		{"oct_i64", roundTrip(radixlit.OctI64)},
		{"oct_i36", roundTrip(radixlit.OctI36)},
		{"oct_i32", roundTrip(radixlit.OctI32)},
		{"oct_i24", roundTrip(radixlit.OctI24)},
		{"oct_i16", roundTrip(radixlit.OctI16)},
		{"oct_i12", roundTrip(radixlit.OctI12)},
		{"oct_i8", roundTrip(radixlit.OctI8)},
		{"bin_u64", roundTrip(radixlit.BinU64)},
		{"bin_u32", roundTrip(radixlit.BinU32)},
		{"bin_u16", roundTrip(radixlit.BinU16)},
		{"bin_u8", roundTrip(radixlit.BinU8)},
		{"bin_i64", roundTrip(radixlit.BinI64)},
		{"bin_i32", roundTrip(radixlit.BinI32)},
		{"bin_i16", roundTrip(radixlit.BinI16)},
		{"bin_i8", roundTrip(radixlit.BinI8)},
	}

	if len(tests) != len(radixlit.Descriptors()) {
		t.Fatalf("property table covers %d parsers, registry has %d", len(tests), len(radixlit.Descriptors()))
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func FuzzHexU64(f *testing.F) {
	for _, seed := range []string{"0xdeadbeef ", "0x", "0xFFFFFFFFFFFFFFFFFFFF ", "0b000 ", "0x0", ""} {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		rest, v, err := radixlit.HexU64.Parse(data)
		if err != nil {
			var e *radixlit.Error
			if !errors.As(err, &e) {
				t.Fatalf("Parse(%q) error = %T, want *radixlit.Error", data, err)
			}
			return
		}

		consumed := data[:len(data)-len(rest)]
		if len(consumed) < 3 || len(consumed) > 18 || string(consumed[:2]) != "0x" {
			t.Fatalf("Parse(%q) consumed %q", data, consumed)
		}
		for _, b := range consumed[2:] {
			if !radixlit.IsHexDigit(b) {
				t.Fatalf("Parse(%q) consumed non-digit %q", data, b)
			}
		}
		want, perr := strconv.ParseUint(string(consumed[2:]), 16, 64)
		if perr != nil || want != v {
			t.Fatalf("Parse(%q) = %d, strconv = %d, %v", data, v, want, perr)
		}
		if len(rest) == 0 {
			t.Fatalf("Parse(%q) succeeded with empty remainder", data)
		}
	})
}
