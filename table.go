package radixlit

// Hexadecimal literals ("0x").
var (
	HexU64 = MustNew[uint64]("hex_u64", "0x", 16, IsHexDigit, 16)
	HexU32 = MustNew[uint32]("hex_u32", "0x", 16, IsHexDigit, 8)
	HexU16 = MustNew[uint16]("hex_u16", "0x", 16, IsHexDigit, 4)
	HexU8  = MustNew[uint8]("hex_u8", "0x", 16, IsHexDigit, 2)
	HexI64 = MustNew[int64]("hex_i64", "0x", 16, IsHexDigit, 16)
	HexI32 = MustNew[int32]("hex_i32", "0x", 16, IsHexDigit, 8)
	HexI16 = MustNew[int16]("hex_i16", "0x", 16, IsHexDigit, 4)
	HexI8  = MustNew[int8]("hex_i8", "0x", 16, IsHexDigit, 2)
)

// Octal literals ("0o"). The 36-, 24- and 12-bit variants decode into the
// next wider Go type but limit the digit count to the narrower width.
var (
	OctU64 = MustNew[uint64]("oct_u64", "0o", 8, IsOctDigit, 21)
	OctU36 = MustNew[uint64]("oct_u36", "0o", 8, IsOctDigit, 12)
	OctU32 = MustNew[uint32]("oct_u32", "0o", 8, IsOctDigit, 10)
	OctU24 = MustNew[uint32]("oct_u24", "0o", 8, IsOctDigit, 8)
	OctU16 = MustNew[uint16]("oct_u16", "0o", 8, IsOctDigit, 5)
	OctU12 = MustNew[uint16]("oct_u12", "0o", 8, IsOctDigit, 3)
	OctU8  = MustNew[uint8]("oct_u8", "0o", 8, IsOctDigit, 2)
	OctI64 = MustNew[int64]("oct_i64", "0o", 8, IsOctDigit, 21)
	OctI36 = MustNew[int64]("oct_i36", "0o", 8, IsOctDigit, 12)
	OctI32 = MustNew[int32]("oct_i32", "0o", 8, IsOctDigit, 10)
	OctI24 = MustNew[int32]("oct_i24", "0o", 8, IsOctDigit, 8)
	OctI16 = MustNew[int16]("oct_i16", "0o", 8, IsOctDigit, 5)
	OctI12 = MustNew[int16]("oct_i12", "0o", 8, IsOctDigit, 3)
	OctI8  = MustNew[int8]("oct_i8", "0o", 8, IsOctDigit, 2)
)

// Binary literals ("0b").
var (
	BinU64 = MustNew[uint64]("bin_u64", "0b", 2, IsBinDigit, 64)
	BinU32 = MustNew[uint32]("bin_u32", "0b", 2, IsBinDigit, 32)
	BinU16 = MustNew[uint16]("bin_u16", "0b", 2, IsBinDigit, 16)
	BinU8  = MustNew[uint8]("bin_u8", "0b", 2, IsBinDigit, 8)
	BinI64 = MustNew[int64]("bin_i64", "0b", 2, IsBinDigit, 64)
	BinI32 = MustNew[int32]("bin_i32", "0b", 2, IsBinDigit, 32)
	BinI16 = MustNew[int16]("bin_i16", "0b", 2, IsBinDigit, 16)
	BinI8  = MustNew[int8]("bin_i8", "0b", 2, IsBinDigit, 8)
)
