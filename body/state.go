// Package body implements the tagged body state the Framing State Machine
// drives: {None, Fixed(remaining), Chunked(parser)}. This replaces the
// source's single integer with the top two bits holding the substate (see
// SPEC_FULL.md §9 "Encoded state in a single integer") with a proper Go sum
// type, while keeping the same three states and the same 30-bit/999,999,999
// numeric ceilings as deliberate resource bounds.
package body

import (
	"io"

	"github.com/indigo-web/chunkedbody"
)

// Kind tags which variant State currently holds.
type Kind uint8

const (
	// None means no body is in progress; the driver may parse a new head.
	None Kind = iota
	// Fixed means a Content-Length-declared body is in progress.
	Fixed
	// Chunked means a Transfer-Encoding: chunked body is in progress.
	Chunked
)

// State is the body parser's resumable state across Consume calls. Exactly
// one of the fields below is meaningful at a time, selected by Kind.
type State struct {
	kind       Kind
	remaining  uint32
	chunked    *chunkedbody.Parser
	hasTrailer bool
}

// Kind reports which variant is active.
func (s *State) Kind() Kind {
	return s.kind
}

// Reset returns the state to None, ready for the next head.
func (s *State) Reset() {
	s.kind = None
	s.remaining = 0
}

// SetFixed puts the state into Fixed mode with the given remaining byte
// count, as computed from a validated Content-Length header.
func (s *State) SetFixed(remaining uint32) {
	s.kind = Fixed
	s.remaining = remaining
}

// SetChunked puts the state into Chunked mode, delegating size-line and
// chunk-data framing to the wrapped chunkedbody.Parser. hasTrailer controls
// whether the wrapped parser also consumes trailer fields (never surfaced to
// the application - see SPEC_FULL.md Non-goals).
func (s *State) SetChunked(parser *chunkedbody.Parser, hasTrailer bool) {
	s.kind = Chunked
	s.chunked = parser
	s.hasTrailer = hasTrailer
}

// Resume is the single routine shared by both resumption call sites noted in
// SPEC_FULL.md §9 (mid-stream Consume resumption and fallback-drained
// resumption): it advances whichever variant is active by consuming as much
// of data as it can, returning the body bytes to hand the data-handler,
// whatever of data remains unconsumed, and whether the body has completed.
//
// Calling Resume when Kind() == None is a programmer error; the driver must
// never do so.
func (s *State) Resume(data []byte) (chunk, extra []byte, done bool, err error) {
	switch s.kind {
	case Fixed:
		return s.resumeFixed(data)
	case Chunked:
		return s.resumeChunked(data)
	default:
		return nil, data, true, nil
	}
}

func (s *State) resumeFixed(data []byte) (chunk, extra []byte, done bool, err error) {
	n := uint32(len(data))
	if n >= s.remaining {
		chunk, extra = data[:s.remaining], data[s.remaining:]
		s.remaining = 0
		s.Reset()
		return chunk, extra, true, nil
	}

	s.remaining -= n
	return data, nil, false, nil
}

func (s *State) resumeChunked(data []byte) (chunk, extra []byte, done bool, err error) {
	chunk, extra, perr := s.chunked.Parse(data, s.hasTrailer)
	switch perr {
	case nil:
		return chunk, extra, false, nil
	case io.EOF:
		s.Reset()
		return chunk, extra, true, nil
	default:
		return nil, nil, true, perr
	}
}
