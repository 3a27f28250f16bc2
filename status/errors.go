// Package status defines the terminal error sentinels the parsing core can
// surface, each tagged with the HTTP status code a hosting application would
// render for it. The core never writes a response itself (out of scope), it
// only classifies the failure.
package status

// Code is a subset of RFC 9110 status codes relevant to request parsing
// failures. It intentionally isn't the full IANA registry - rendering
// responses is an external collaborator's job.
type Code uint16

const (
	BadRequest              Code = 400
	NotFound                Code = 404
	RequestTimeout          Code = 408
	LengthRequired          Code = 411
	RequestEntityTooLarge   Code = 413
	RequestURITooLong       Code = 414
	UnsupportedMediaType    Code = 415
	UnprocessableEntity     Code = 422
	HeaderFieldsTooLarge    Code = 431
	HTTPVersionNotSupported Code = 505
)

// Error is a terminal, connection-closing parse failure. It carries no stack
// or wrapped cause by design: the sentinel value itself is the whole of the
// diagnostic the caller gets, matching the source's single-recognizable-value
// error propagation (see SPEC_FULL.md §7).
type Error struct {
	Code    Code
	Message string
}

func newError(code Code, message string) error {
	return Error{Code: code, Message: message}
}

func (e Error) Error() string {
	return e.Message
}

var (
	ErrBadRequest              = newError(BadRequest, "bad request")
	ErrMethodUnknown           = newError(BadRequest, "unrecognized request method")
	ErrURITooLong              = newError(RequestURITooLong, "request URI too long")
	ErrHTTPVersionNotSupported = newError(HTTPVersionNotSupported, "HTTP version not supported")
	ErrTooManyHeaders          = newError(HeaderFieldsTooLarge, "too many headers")
	ErrHeaderFieldsTooLarge    = newError(HeaderFieldsTooLarge, "too large headers section")
	ErrFallbackOverflow        = newError(HeaderFieldsTooLarge, "request head exceeds the fallback buffer")
	ErrMissingHost             = newError(BadRequest, "missing required host header")
	ErrBadEncoding             = newError(BadRequest, "both transfer-encoding and content-length present")
	ErrBadContentLength        = newError(LengthRequired, "invalid or out-of-range content-length")
	ErrBadChunk                = newError(BadRequest, "malformed chunk-encoded data")
	ErrChunkTooLarge           = newError(RequestEntityTooLarge, "chunk size exceeds the configured maximum")
)
