package bytesconv

// IsFieldNameByte implements RFC 9110 §5.1's field-name registry guidance:
// field names should be restricted to letters, digits and hyphens. Ported
// directly from the bit-range comparison in the original parser, which is
// measurably faster than a table lookup since it touches no memory outside
// registers.
func IsFieldNameByte(x byte) bool {
	return x == '-' ||
		(x > '/' && x < ':') || // digits
		(x > '@' && x < '[') || // upper-case letters
		(x > '`' && x < '{') // lower-case letters
}

// LowerASCII lower-cases a single ASCII letter byte by setting its 0x20 bit.
// '-' and digits already have that bit set, so they pass through unchanged,
// but other non-letter bytes do not (e.g. '@' becomes '`'), so it must only
// be called on bytes already known to satisfy IsFieldNameByte.
func LowerASCII(c byte) byte {
	return c | 0x20
}
