// Package proxyproto implements the extension seam described in
// SPEC_FULL.md §6.2: a pointer-sized hook threaded into the head tokenizer so
// a PROXY-protocol preamble (HAProxy's PROXY protocol v1) can be consumed
// before the HTTP request-line is parsed, without the tokenizer itself
// knowing anything about it.
package proxyproto

// Extension is the tokenizer's hook for a pre-HTTP framing layer. Parse is
// called with the buffer currently held (fallback or live input) and reports
// whether it has fully consumed its prefix (done) and, if so, how many bytes
// that prefix occupied (offset). While done is false, the tokenizer reports
// zero bytes consumed and the driver buffers more input - exactly as it does
// for an incomplete head, so a split PROXY line composes with the existing
// fallback machinery for free.
//
// Parse may be called more than once per connection if the driver had to
// retry with more data; a later call overwrites any partial state from an
// earlier one. This is deliberate: PROXY success is never conflated with
// head-parse success, so there is no accounting hazard in letting it retry.
type Extension interface {
	Parse(data []byte) (done bool, offset int)
}

// Nop is the default extension: it reports the prefix as already fully
// consumed at offset 0, i.e. "there is no PROXY preamble here".
type Nop struct{}

func (Nop) Parse([]byte) (done bool, offset int) {
	return true, 0
}
