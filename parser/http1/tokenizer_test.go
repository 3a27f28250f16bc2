package http1

import (
	"testing"

	"github.com/flrdv/reqcore/config"
	"github.com/flrdv/reqcore/method"
	"github.com/flrdv/reqcore/proto"
	"github.com/flrdv/reqcore/proxyproto"
	"github.com/flrdv/reqcore/request"
	"github.com/flrdv/reqcore/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// padded allocates a buffer holding raw with config.MinimumPadding writable
// bytes past it, as Tokenize's contract requires.
func padded(raw string) (buf []byte, n int) {
	n = len(raw)
	buf = make([]byte, n+config.MinimumPadding)
	copy(buf, raw)
	return buf, n
}

func TestTokenize_SimpleGet(t *testing.T) {
	buf, n := padded("GET /a?x=1 HTTP/1.1\r\nHost: example.com\r\n\r\n")
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	consumed, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
	require.NoError(t, err)
	assert.Equal(t, n, consumed)
	assert.Equal(t, []byte("GET"), view.Method())
	assert.Equal(t, method.GET, view.MethodEnum())
	assert.Equal(t, []byte("/a?x=1"), view.FullURL())
	assert.Equal(t, proto.HTTP11, view.Protocol())
	assert.False(t, view.IsAncient())

	host, found := view.Header("host")
	require.True(t, found)
	assert.Equal(t, []byte("example.com"), host)
}

func TestTokenize_HTTP10SetsAncientFlag(t *testing.T) {
	buf, n := padded("GET / HTTP/1.0\r\nHost: h\r\n\r\n")
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	_, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
	require.NoError(t, err)
	assert.True(t, view.IsAncient())
	assert.Equal(t, proto.HTTP10, view.Protocol())
}

func TestTokenize_HeaderNameLowercased(t *testing.T) {
	buf, n := padded("GET / HTTP/1.1\r\nX-Custom-Header: Value\r\nHost: h\r\n\r\n")
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	_, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
	require.NoError(t, err)

	v, found := view.Header("x-custom-header")
	require.True(t, found)
	assert.Equal(t, []byte("Value"), v, "values must not be mutated")
}

func TestTokenize_IncompleteHeadReturnsZeroNoError(t *testing.T) {
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	full := "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"
	for i := 1; i < len(full); i++ {
		buf, n := padded(full[:i])
		consumed, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
		require.NoError(t, err, "prefix length %d", i)
		assert.Equal(t, 0, consumed, "prefix length %d", i)
	}
}

func TestTokenize_NoHeadersIsBadRequest(t *testing.T) {
	buf, n := padded("GET / HTTP/1.1\r\n\r\n")
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	_, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
	assert.Equal(t, status.ErrBadRequest, err)
}

func TestTokenize_InvalidFieldNameByte(t *testing.T) {
	buf, n := padded("GET / HTTP/1.1\r\nHost\x01: h\r\n\r\n")
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	_, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
	assert.Equal(t, status.ErrBadRequest, err)
}

func TestTokenize_UnsupportedVersion(t *testing.T) {
	buf, n := padded("GET / HTTP/2.0\r\nHost: h\r\n\r\n")
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	_, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
	assert.Equal(t, status.ErrHTTPVersionNotSupported, err)
}

func TestTokenize_UnknownMethodStillParsesFreeform(t *testing.T) {
	buf, n := padded("PROPFIND / HTTP/1.1\r\nHost: h\r\n\r\n")
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	_, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
	require.NoError(t, err)
	assert.Equal(t, []byte("PROPFIND"), view.Method())
	assert.Equal(t, method.Unknown, view.MethodEnum())
}

func TestTokenize_ProxyPrefixConsumedFirst(t *testing.T) {
	line := "PROXY TCP4 1.2.3.4 5.6.7.8 1111 2222\r\n"
	req := "GET / HTTP/1.1\r\nHost: h\r\n\r\n"
	buf, n := padded(line + req)
	cfg := config.Default()
	view := request.New(cfg.Headers.Max)

	consumed, err := Tokenize(buf, n, cfg, view, proxyproto.V1{})
	require.NoError(t, err)
	assert.Equal(t, n, consumed)
	assert.Equal(t, []byte("GET"), view.Method())
}

func TestTokenize_HeaderTableOverflow(t *testing.T) {
	cfg := config.Default()
	cfg.Headers.Max = 2 // slot 0 + one slot: no room for a header field and the terminator

	raw := "GET / HTTP/1.1\r\nA: 1\r\nB: 2\r\n\r\n"
	buf, n := padded(raw)
	view := request.New(cfg.Headers.Max)

	_, err := Tokenize(buf, n, cfg, view, proxyproto.Nop{})
	assert.Equal(t, status.ErrTooManyHeaders, err)
}
