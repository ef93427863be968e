package radixlit

// IsHexDigit reports whether b is one of 0-9, a-f or A-F.
func IsHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// IsOctDigit reports whether b is one of 0-7.
func IsOctDigit(b byte) bool {
	return '0' <= b && b <= '7'
}

// IsBinDigit reports whether b is 0 or 1.
func IsBinDigit(b byte) bool {
	return b == '0' || b == '1'
}

func isWordByte(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b == '_'
}

// digitValue returns the numeric value of an ASCII digit or letter, and 36
// for any other byte.
func digitValue(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'z':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'Z':
		return int(b-'A') + 10
	default:
		return 36
	}
}
