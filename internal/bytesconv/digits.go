package bytesconv

// maxDigits bounds the input to the bounded decimal parser. Nine ASCII digits
// safely fit inside a 32-bit unsigned integer (999,999,999 < 2^32-1) without
// any need for overflow checks inside the loop.
const maxDigits = 9

// ParseUint parses b as an unsigned decimal integer, rejecting anything that
// isn't 1-9 ASCII digits. It returns false instead of a sentinel value so
// that every caller is forced to handle the "invalid" case explicitly.
func ParseUint(b []byte) (value uint32, ok bool) {
	if len(b) == 0 || len(b) > maxDigits {
		return 0, false
	}

	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}

		value = value*10 + uint32(c-'0')
	}

	return value, true
}
