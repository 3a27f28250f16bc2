// Package proto parses and represents the HTTP version token trailing the
// request-line's target (e.g. "HTTP/1.1"), and the handful of upgrade
// protocol tokens the core recognizes well enough to hand off (the actual
// upgrade negotiation is an external collaborator's job).
package proto

import (
	"github.com/flrdv/reqcore/internal/strutil"
	"github.com/flrdv/uf"
)

type Protocol uint8

const (
	Unknown Protocol = iota
	HTTP10
	HTTP11

	// WebSocket, unlike HTTP10/HTTP11, is never produced by FromBytes: it can
	// only ever be observed via an Upgrade header, see ChooseUpgrade.
	WebSocket
)

func (p Protocol) String() string {
	switch p {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	case WebSocket:
		return "websocket"
	default:
		return "unknown"
	}
}

// FromBytes parses the raw "HTTP/x.y" token found right before the
// request-line's trailing CRLF. Only 1.0 and 1.1 are recognized: HTTP/2 and
// later use an entirely different framing and never reach this tokenizer
// (see SPEC_FULL.md Non-goals).
func FromBytes(raw []byte) Protocol {
	const prefix = "HTTP/"

	if len(raw) != len("HTTP/1.1") || uf.B2S(raw[:len(prefix)]) != prefix {
		return Unknown
	}

	switch raw[len(prefix)] {
	case '1':
		switch raw[len(prefix)+2] {
		case '0':
			return HTTP10
		case '1':
			return HTTP11
		}
	}

	return Unknown
}

// ChooseUpgrade maps the value of an Upgrade header to a protocol token. Only
// "websocket" is recognized; anything else yields Unknown, signaling that no
// handoff should occur.
func ChooseUpgrade(value string) Protocol {
	if strutil.EqualFold(value, "websocket") {
		return WebSocket
	}

	return Unknown
}
