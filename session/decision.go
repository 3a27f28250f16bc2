// Package session implements the Session Driver (SPEC_FULL.md §4.5): the
// public entry point that manages the fallback buffer, interleaves head
// parsing with body streaming across successive input chunks, and invokes
// the hosting application's callbacks.
package session

import "github.com/flrdv/reqcore/request"

// Verdict tags the disposition a callback asks the driver to apply,
// replacing the source's pointer-identity comparison against a sentinel
// user-token (SPEC_FULL.md §9 "Callback control-flow via tagged Decision").
type Verdict uint8

const (
	// Continue means "keep parsing this connection".
	Continue Verdict = iota
	// Upgrade means the callback took ownership of the connection (e.g. a
	// WebSocket handshake completed); the driver stops and surfaces Value.
	Upgrade
	// Close means the callback wants the connection closed; the driver
	// stops and surfaces Value.
	Close
	// Abort means a fatal condition the callback detected itself; treated
	// identically to Close by the driver, kept distinct for callers that
	// want to tell the two apart in logs/metrics.
	Abort
)

func (v Verdict) String() string {
	switch v {
	case Continue:
		return "continue"
	case Upgrade:
		return "upgrade"
	case Close:
		return "close"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Decision is a callback's tagged return value: Verdict selects how the
// driver should proceed, Value is always the user token to carry forward
// (on Continue, the token for the next callback; on any other verdict, the
// token Consume ultimately returns).
type Decision[T any] struct {
	Verdict Verdict
	Value   T
}

// continueWith is a convenience constructor for the common case.
func continueWith[T any](user T) Decision[T] {
	return Decision[T]{Verdict: Continue, Value: user}
}

// RequestHandler is invoked once per parsed head. It may query headers, URL,
// query string and route parameters off req, but must not retain any of its
// byte-slices beyond the call - they are only valid for its duration.
type RequestHandler[T any] func(user T, req *request.View) Decision[T]

// DataHandler is invoked zero or more times per request with body bytes;
// isEnd is true on the final chunk (possibly empty). A request with no body
// still triggers exactly one call, with an empty chunk and isEnd=true.
type DataHandler[T any] func(user T, chunk []byte, isEnd bool) Decision[T]

// ErrorHandler is invoked only when the fallback buffer overflows (an
// incomplete head fills it up); its return value is what Consume reports
// back to the caller alongside the error. Malformed heads and framing errors
// are returned from Consume without calling it.
type ErrorHandler[T any] func(user T) T
