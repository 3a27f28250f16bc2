// Package http1 implements the Head Tokenizer (SPEC_FULL.md §4.3): a
// single-pass scan of one request head out of a post-padded byte region,
// grounded on the source's getHeaders()/fenceAndConsumePostPadded() pair but
// restructured into ordinary Go functions instead of a raw pointer-walking C
// loop. The sentinel/post-padding technique is kept: callers guarantee at
// least config.MinimumPadding writable bytes past the real data, and
// Tokenize writes a single '\r' sentinel one byte past it so every inner
// scan can stop on a byte comparison alone, with no length check needed
// until the scan already halted.
package http1

import (
	"github.com/flrdv/reqcore/config"
	"github.com/flrdv/reqcore/internal/bytesconv"
	"github.com/flrdv/reqcore/method"
	"github.com/flrdv/reqcore/proto"
	"github.com/flrdv/reqcore/proxyproto"
	"github.com/flrdv/reqcore/request"
	"github.com/flrdv/reqcore/status"
	"github.com/flrdv/uf"
)

// versionLen is the length of a well-formed "HTTP/x.y" token.
const versionLen = len("HTTP/1.1")

// Tokenize parses a single request head out of buf[:n]. buf must have at
// least one writable byte past n (config.MinimumPadding guarantees far more,
// covering IndexCR's word-at-a-time reads).
//
// consumed > 0 reports a complete head was parsed (view is populated,
// including slot 0), consumed == 0 with a nil error means buf[:n] holds an
// incomplete head and the caller must retry with more bytes, and a non-nil
// error is a terminal, connection-closing parse failure.
func Tokenize(buf []byte, n int, cfg *config.Config, view *request.View, ext proxyproto.Extension) (consumed int, err error) {
	done, offset := ext.Parse(buf[:n])
	if !done {
		return 0, nil
	}

	view.Reset()
	buf[n] = '\r'

	pos, ok, err := tokenizeRequestLine(buf, offset, n, view)
	if err != nil || !ok {
		return 0, err
	}

	slot := 1
	for ; slot < cfg.Headers.Max; slot++ {
		if buf[pos] == '\r' {
			if pos+1 >= n {
				return 0, nil // incomplete: haven't seen the LF yet
			}

			if buf[pos+1] != '\n' {
				return 0, status.ErrBadRequest
			}

			if slot == 1 {
				// A head with no headers at all can never become valid by
				// receiving more bytes (nothing can be inserted before an
				// already-terminated blank line), so this is a hard error
				// rather than "wait for more data".
				return 0, status.ErrBadRequest
			}

			*view.Slot(slot) = request.Header{}
			view.Truncate(slot)
			return pos + 2, nil
		}

		var lineOK bool
		pos, lineOK, err = tokenizeHeaderField(buf, pos, n, view, slot)
		if err != nil || !lineOK {
			return 0, err
		}
	}

	return 0, status.ErrTooManyHeaders
}

// tokenizeRequestLine parses "METHOD SP target [SP HTTP/x.y] CR LF" into
// slot 0, recording the protocol token (and hence the ancient-HTTP flag)
// rather than silently ignoring it as the source does.
func tokenizeRequestLine(buf []byte, pos, n int, view *request.View) (next int, ok bool, err error) {
	methodStart := pos
	for bytesconv.IsFieldNameByte(buf[pos]) {
		pos++
	}

	if pos == n {
		return 0, false, nil
	}

	if buf[pos] != ' ' || pos == methodStart {
		return 0, false, status.ErrBadRequest
	}

	methodBytes := buf[methodStart:pos]
	pos++

	targetStart := pos
	rel := bytesconv.IndexCR(buf[pos : n+1])
	lineEnd := pos + rel
	if lineEnd == n {
		return 0, false, nil
	}

	if lineEnd+1 >= n {
		return 0, false, nil // CR seen, but the LF hasn't arrived yet
	}

	if buf[lineEnd+1] != '\n' {
		return 0, false, status.ErrBadRequest
	}

	target := buf[targetStart:lineEnd]
	version := splitVersion(target)
	if version != nil {
		target = target[:len(target)-versionLen-1]
	}

	if len(target) == 0 {
		return 0, false, status.ErrBadRequest
	}

	*view.Slot(0) = request.Header{Key: methodBytes, Value: target}
	view.SetMethod(method.Parse(uf.B2S(methodBytes)))

	if version == nil {
		view.SetProtocol(proto.Unknown)
	} else {
		p := proto.FromBytes(version)
		if p == proto.Unknown {
			return 0, false, status.ErrHTTPVersionNotSupported
		}

		view.SetProtocol(p)
	}

	return lineEnd + 2, true, nil
}

// splitVersion returns the trailing "HTTP/x.y" token of a request-line
// target span, or nil if the span doesn't end with one (e.g. a bare HTTP/0.9
// style request line, or a target containing an internal space).
func splitVersion(span []byte) []byte {
	if len(span) < versionLen+1 {
		return nil
	}

	if span[len(span)-versionLen-1] != ' ' {
		return nil
	}

	return span[len(span)-versionLen:]
}

// tokenizeHeaderField parses one "name: value CR LF" header field, lowercasing
// the name in place and recording it in the bloom index.
func tokenizeHeaderField(buf []byte, pos, n int, view *request.View, slot int) (next int, ok bool, err error) {
	nameStart := pos
	for bytesconv.IsFieldNameByte(buf[pos]) {
		buf[pos] = bytesconv.LowerASCII(buf[pos])
		pos++
	}

	if pos == n {
		return 0, false, nil
	}

	if buf[pos] != ':' || pos == nameStart {
		return 0, false, status.ErrBadRequest
	}

	name := buf[nameStart:pos]
	pos++

	for pos < n && (buf[pos] == ' ' || buf[pos] == '\t') {
		pos++
	}

	if pos == n {
		return 0, false, nil
	}

	valueStart := pos
	rel := bytesconv.IndexCR(buf[pos : n+1])
	lineEnd := pos + rel
	if lineEnd == n {
		return 0, false, nil
	}

	if lineEnd+1 >= n {
		return 0, false, nil
	}

	if buf[lineEnd+1] != '\n' {
		return 0, false, status.ErrBadRequest
	}

	value := buf[valueStart:lineEnd]
	*view.Slot(slot) = request.Header{Key: name, Value: value}
	view.AddToBloom(name)

	return lineEnd + 2, true, nil
}
