package session

import (
	"github.com/flrdv/reqcore/internal/bytesconv"
	"github.com/flrdv/reqcore/status"
)

// processHead implements the Framing State Machine (SPEC_FULL.md §4.4),
// invoked immediately after the Head Tokenizer produced a populated
// request.View. rest is whatever of the input buffer followed the head.
//
// drain selects "consume-minimally" mode inverted: true for the main driver
// loop (body bytes already present in rest are dispatched immediately),
// false when draining the fallback buffer (tokenize at most one head, never
// greedily consume body bytes - SPEC_FULL.md §4.5 step 2).
func (d *Driver[T]) processHead(
	rest []byte,
	user T,
	reqHandler RequestHandler[T],
	dataHandler DataHandler[T],
	drain bool,
) (newUser T, remaining []byte, verdict Decision[T], err error) {
	view := d.view

	if !view.HasHeader("host") && (d.cfg.Proto.RequireHost || !view.IsAncient()) {
		return user, rest, Decision[T]{}, status.ErrMissingHost
	}

	_, hasTE := view.Header("transfer-encoding")
	clValue, hasCL := view.Header("content-length")
	if hasTE && hasCL {
		return user, rest, Decision[T]{}, status.ErrBadEncoding
	}

	view.SetQuerySeparator(querySeparator(view.FullURL()))

	dec := reqHandler(user, view)
	if dec.Verdict != Continue {
		return dec.Value, rest, dec, nil
	}

	user = dec.Value

	switch {
	case hasTE:
		d.bodySt.SetChunked(d.chunked, false)
	case hasCL:
		n, ok := bytesconv.ParseUint(clValue)
		if !ok || n > d.cfg.Body.MaxContentLength {
			return user, rest, Decision[T]{}, status.ErrBadContentLength
		}

		d.bodySt.SetFixed(n)
	default:
		dec = dataHandler(user, nil, true)
		if dec.Verdict != Continue {
			return dec.Value, rest, dec, nil
		}

		return dec.Value, rest, continueWith(dec.Value), nil
	}

	if !drain {
		return user, rest, continueWith(user), nil
	}

	remaining, verdict, err = d.resumeAndDispatch(rest, user, dataHandler)
	if err != nil {
		return user, rest, Decision[T]{}, err
	}

	return verdict.Value, remaining, verdict, nil
}

// resumeAndDispatch is the single routine shared by every resumption call
// site (a body already in progress at the start of Consume, and a body that
// starts and immediately has bytes available right after head processing) -
// SPEC_FULL.md §9 factors away the source's duplicated branches this way.
func (d *Driver[T]) resumeAndDispatch(data []byte, user T, dataHandler DataHandler[T]) ([]byte, Decision[T], error) {
	chunk, extra, done, err := d.bodySt.Resume(data)
	if err != nil {
		return nil, Decision[T]{}, wrapBodyErr(err)
	}

	dec := dataHandler(user, chunk, done)
	if dec.Verdict != Continue {
		return nil, dec, nil
	}

	return extra, continueWith(dec.Value), nil
}

// drainFallback implements SPEC_FULL.md §4.5 step 2. done=true means Consume
// should return immediately (with verdict.Value if verdict.Verdict != Continue,
// or the plain user token otherwise); done=false means the caller should fall
// through into the main loop with the returned user/data.
func (d *Driver[T]) drainFallback(
	data []byte,
	user T,
	reqHandler RequestHandler[T],
	dataHandler DataHandler[T],
	errHandler ErrorHandler[T],
) (newUser T, remaining []byte, done bool, verdict Decision[T], err error) {
	oldLen := d.fallback.Len()
	take := d.fallback.Append(data)
	newTail := data[take:]

	consumed, terr := d.tokenize(d.fallback.Bytes(), d.fallback.Len())
	if terr != nil {
		return user, nil, true, Decision[T]{}, terr
	}

	if consumed == 0 {
		if d.fallback.Full() {
			return errHandler(user), nil, true, Decision[T]{}, status.ErrFallbackOverflow
		}

		// Still incomplete; wait for the next Consume call.
		return user, nil, true, Decision[T]{}, nil
	}

	// The head was fully contained in the fallback buffer. Whatever of it
	// wasn't consumed (the bytes following the head - body or a pipelined
	// next request) came from the new data we just appended; splice it back
	// together with whatever of the new data didn't fit into the fallback
	// at all, then clear the fallback before handing off to processHead in
	// non-draining mode (SPEC_FULL.md §4.5 step 2: "tokenizes at most one
	// head... without greedy body draining").
	leftover := d.fallback.Bytes()[consumed : oldLen+take]
	combined := make([]byte, len(leftover)+len(newTail), len(leftover)+len(newTail)+d.cfg.Proto.Padding)
	copy(combined, leftover)
	copy(combined[len(leftover):], newTail)

	d.fallback.Reset()

	newUser, rest, verdict, ferr := d.processHead(combined, user, reqHandler, dataHandler, false)
	if ferr != nil {
		return user, nil, true, Decision[T]{}, ferr
	}

	if verdict.Verdict != Continue {
		return verdict.Value, nil, true, verdict, nil
	}

	return newUser, rest, false, Decision[T]{}, nil
}

// querySeparator returns the byte offset of '?' within target, or len(target)
// when absent, as the Request View's QuerySeparator field expects.
func querySeparator(target []byte) int {
	for i, c := range target {
		if c == '?' {
			return i
		}
	}

	return len(target)
}
