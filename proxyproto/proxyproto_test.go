package proxyproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNop_AlwaysDoneAtZero(t *testing.T) {
	done, offset := Nop{}.Parse([]byte("GET / HTTP/1.1\r\n"))
	assert.True(t, done)
	assert.Equal(t, 0, offset)
}

func TestV1_NoPreamble(t *testing.T) {
	done, offset := V1{}.Parse([]byte("GET / HTTP/1.1\r\n"))
	assert.True(t, done)
	assert.Equal(t, 0, offset)
}

func TestV1_CompleteLine(t *testing.T) {
	line := "PROXY TCP4 192.168.1.1 192.168.1.2 56324 443\r\n"
	rest := "GET / HTTP/1.1\r\n"

	done, offset := V1{}.Parse([]byte(line + rest))
	assert.True(t, done)
	assert.Equal(t, len(line), offset)
}

func TestV1_SplitAcrossReads(t *testing.T) {
	full := "PROXY TCP4 192.168.1.1 192.168.1.2 56324 443\r\n"

	done, _ := V1{}.Parse([]byte(full[:10]))
	assert.False(t, done)

	done, offset := V1{}.Parse([]byte(full))
	assert.True(t, done)
	assert.Equal(t, len(full), offset)
}

func TestV1_UnknownFamily(t *testing.T) {
	done, offset := V1{}.Parse([]byte("PROXY UNKNOWN\r\n\r\n"))
	assert.True(t, done)
	assert.Equal(t, len("PROXY UNKNOWN\r\n"), offset)
}
