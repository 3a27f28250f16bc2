package proxyproto

import (
	"github.com/flrdv/reqcore/internal/bytesconv"
)

// maxV1Line is the hard ceiling the PROXY protocol v1 spec places on a
// header line, including the trailing CRLF.
const maxV1Line = 107

const v1Signature = "PROXY "

// V1 is a reference implementation of the human-readable PROXY protocol
// (v1), the extension this spec's tokenizer seam (§6.2) exists for. It only
// recognizes and skips the header line; the source address/port fields are
// not surfaced to the application, matching the core's Non-goals (transport
// concerns live in the hosting server, not the parser).
//
// A V1 value is reusable across connections but not safe for concurrent use
// by more than one connection at a time, same as the rest of this package.
type V1 struct{}

// Parse implements Extension. It recognizes a line starting with "PROXY "
// and terminated by CRLF within maxV1Line bytes. Any other prefix is treated
// as "no PROXY preamble present" and reported done with a zero offset, so a
// plain HTTP request immediately falls through to the head tokenizer.
func (V1) Parse(data []byte) (done bool, offset int) {
	n := len(data)
	if n > len(v1Signature) {
		n = len(v1Signature)
	}

	for i := 0; i < n; i++ {
		if data[i] != v1Signature[i] {
			return true, 0
		}
	}

	if len(data) < len(v1Signature) {
		return false, 0
	}

	limit := len(data)
	if limit > maxV1Line {
		limit = maxV1Line
	}

	cr := bytesconv.IndexCR(data[:limit])
	if cr == -1 {
		if len(data) >= maxV1Line {
			// No CRLF within the maximum line length: this can never
			// become valid with more bytes, but the seam has no error
			// channel, so we report it done at offset 0 and let the head
			// tokenizer reject whatever garbage follows.
			return true, 0
		}

		return false, 0
	}

	if cr+1 >= len(data) {
		return false, 0
	}

	if data[cr+1] != '\n' {
		return true, 0
	}

	return true, cr + 2
}
