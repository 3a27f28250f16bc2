// Package request implements the Request View: a transient value referencing
// bytes borrowed from the caller's input buffer, valid only for the duration
// of a single RequestHandler call (see SPEC_FULL.md §3).
package request

import (
	"bytes"
	"iter"

	"github.com/flrdv/reqcore/internal/bloom"
	"github.com/flrdv/reqcore/internal/bytesconv"
	"github.com/flrdv/reqcore/method"
	"github.com/flrdv/reqcore/proto"
	"github.com/flrdv/uf"
)

// Header is a borrowed (key, value) pair. An empty Key marks the end of the
// populated slots within View.headers.
type Header struct {
	Key, Value []byte
}

// View is the Request View. Slot 0 always holds (method, target); slots
// 1..N-1 hold header fields. It must never be retained beyond the
// RequestHandler call it was passed to - every slice it exposes shares
// memory with the caller's buffer.
type View struct {
	headers        []Header
	n              int // number of populated slots, including slot 0
	ancient        bool
	yield          bool
	bf             bloom.Filter
	querySeparator int
	params         []string
	protocol       proto.Protocol
	methodEnum     method.Method
	methodLowerBuf [16]byte
}

// New allocates a View with room for max header slots (including slot 0).
// max should match config.Headers.Max.
func New(max int) *View {
	return &View{headers: make([]Header, max)}
}

// Reset clears the view for a fresh head parse. Called by the tokenizer
// before it starts writing slot 0; not meant to be called by handlers.
func (v *View) Reset() {
	v.n = 0
	v.ancient = false
	v.yield = false
	v.querySeparator = 0
	v.protocol = proto.Unknown
	v.methodEnum = method.Unknown
	v.bf.Reset()
}

// Cap returns the maximum number of slots this view can hold.
func (v *View) Cap() int {
	return len(v.headers)
}

// Slot returns a pointer to the i-th slot, growing the populated count if
// i == Len()+1. Exported for the tokenizer only; request handlers should use
// Header/Headers instead.
func (v *View) Slot(i int) *Header {
	if i == v.n {
		v.n = i + 1
	}

	return &v.headers[i]
}

// Truncate drops any slots beyond n, used by the tokenizer after it writes
// the empty-key terminator so that slot isn't counted as a header field.
func (v *View) Truncate(n int) {
	v.n = n
}

// AddToBloom records a lower-cased header name in the bloom index. Called by
// the tokenizer once a header's key is finalized.
func (v *View) AddToBloom(key []byte) {
	v.bf.Add(key)
}

// SetQuerySeparator records the byte offset of '?' within the target, or the
// target's length when absent. Called by the framing state machine.
func (v *View) SetQuerySeparator(offset int) {
	v.querySeparator = offset
}

// SetProtocol records the parsed HTTP version and ancient (1.0) flag. Called
// by the tokenizer once the version token is parsed.
func (v *View) SetProtocol(p proto.Protocol) {
	v.protocol = p
	v.ancient = p == proto.HTTP10
}

// IsAncient reports whether the request-line declared HTTP/1.0.
func (v *View) IsAncient() bool {
	return v.ancient
}

// Protocol returns the parsed HTTP version.
func (v *View) Protocol() proto.Protocol {
	return v.protocol
}

// Yield reports whether the request handler asked the router to fall
// through to the next matching route.
func (v *View) Yield() bool {
	return v.yield
}

// SetYield lets the request handler signal route fall-through.
func (v *View) SetYield(yield bool) {
	v.yield = yield
}

// Method returns the request method bytes exactly as received on the wire.
func (v *View) Method() []byte {
	return v.headers[0].Key
}

// SetMethod records the method's resolved enum value, computed once by the
// tokenizer from the same bytes Method() exposes so handlers can dispatch on
// a cheap uint8 instead of re-comparing the method string on every route.
func (v *View) SetMethod(m method.Method) {
	v.methodEnum = m
}

// MethodEnum returns the request method's enum value, or method.Unknown for
// anything outside the nine methods method.Parse recognizes (still available
// verbatim from Method(), e.g. for a WebDAV-style extension method).
func (v *View) MethodEnum() method.Method {
	return v.methodEnum
}

// MethodLower returns the method lower-cased into a small scratch buffer
// owned by the View (a method longer than that buffer is copied into a fresh
// allocation instead), without mutating the original bytes - unlike the
// source's lazy-mutation approach, two independent views (original case and
// lower case) are always available.
func (v *View) MethodLower() []byte {
	lower := append(v.methodLowerBuf[:0], v.headers[0].Key...)

	for i := range lower {
		lower[i] = bytesconv.LowerASCII(lower[i])
	}

	return lower
}

// FullURL returns the complete request target, including any query string,
// exactly as received (still percent-encoded).
func (v *View) FullURL() []byte {
	return v.headers[0].Value
}

// URL returns the request target with the query string (if any) stripped.
func (v *View) URL() []byte {
	return v.headers[0].Value[:v.querySeparator]
}

// RawQuery returns the raw, still percent-encoded query string, without the
// leading '?'. Returns nil if the target had no query separator.
func (v *View) RawQuery() []byte {
	target := v.headers[0].Value
	if v.querySeparator >= len(target) {
		return nil
	}

	return target[v.querySeparator+1:]
}

// QuerySeparator returns the byte offset within FullURL() where '?' was
// found, or len(FullURL()) when absent.
func (v *View) QuerySeparator() int {
	return v.querySeparator
}

// Len returns the number of header fields (excluding the slot 0
// method/target pseudo-header).
func (v *View) Len() int {
	return v.n - 1
}

// HeaderAt returns the i-th header field (0-indexed, excluding slot 0).
func (v *View) HeaderAt(i int) Header {
	return v.headers[i+1]
}

// Header looks up the first value of a header by a lower-cased name. The
// bloom filter is consulted first to short-circuit the common case of an
// absent header without scanning the table.
func (v *View) Header(lowerName string) (value []byte, found bool) {
	if !v.bf.MightContain([]byte(lowerName)) {
		return nil, false
	}

	name := uf.S2B(lowerName)
	for i := 1; i < v.n; i++ {
		h := v.headers[i]
		if bytes.Equal(h.Key, name) {
			return h.Value, true
		}
	}

	return nil, false
}

// HasHeader is a convenience wrapper around Header for callers that only
// care about presence.
func (v *View) HasHeader(lowerName string) bool {
	_, found := v.Header(lowerName)
	return found
}

// Headers iterates over every header field as (key, value) pairs, in the
// order they appeared on the wire.
func (v *View) Headers() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		for i := 1; i < v.n; i++ {
			h := v.headers[i]
			if !yield(h.Key, h.Value) {
				return
			}
		}
	}
}

// SetParams attaches the externally-owned route parameters vector. The View
// never owns or copies it.
func (v *View) SetParams(params []string) {
	v.params = params
}

// Param returns the i-th route parameter, or an empty string if out of
// range - matching the source's bounds-checked accessor.
func (v *View) Param(i int) string {
	if i < 0 || i >= len(v.params) {
		return ""
	}

	return v.params[i]
}
