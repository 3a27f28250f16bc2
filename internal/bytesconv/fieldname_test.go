package bytesconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFieldNameByte(t *testing.T) {
	for c := 'a'; c <= 'z'; c++ {
		assert.True(t, IsFieldNameByte(byte(c)), "%c", c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		assert.True(t, IsFieldNameByte(byte(c)), "%c", c)
	}
	for c := '0'; c <= '9'; c++ {
		assert.True(t, IsFieldNameByte(byte(c)), "%c", c)
	}

	assert.True(t, IsFieldNameByte('-'))

	for _, c := range []byte{':', ' ', '\t', '\r', '\n', '_', '.', '/', '@', '['} {
		assert.False(t, IsFieldNameByte(c), "%q", c)
	}
}

func TestLowerASCII(t *testing.T) {
	assert.Equal(t, byte('a'), LowerASCII('A'))
	assert.Equal(t, byte('z'), LowerASCII('Z'))
	assert.Equal(t, byte('a'), LowerASCII('a'))
	assert.Equal(t, byte('-'), LowerASCII('-'))
}
