package session

import (
	"github.com/flrdv/reqcore/alloc"
	"github.com/flrdv/reqcore/body"
	"github.com/flrdv/reqcore/config"
	"github.com/flrdv/reqcore/parser/http1"
	"github.com/flrdv/reqcore/proxyproto"
	"github.com/flrdv/reqcore/request"
	"github.com/flrdv/reqcore/status"
	"github.com/indigo-web/chunkedbody"
)

// Driver is one connection's parsing state: the fallback buffer for a head
// split across reads, and the body state machine for a body in progress. A
// Driver must only ever be touched by the single goroutine that owns the
// connection it parses for - same single-threaded, cooperative model as the
// rest of this core (SPEC_FULL.md §5).
type Driver[T any] struct {
	cfg *config.Config
	ext proxyproto.Extension

	view    *request.View
	chunked *chunkedbody.Parser
	bodySt  body.State

	fallback alloc.Allocator
}

// New builds a Driver. ext selects the extension consulted before every head
// parse (proxyproto.Nop{} for the common case of no PROXY-protocol prefix).
func New[T any](cfg *config.Config, ext proxyproto.Extension) *Driver[T] {
	if ext == nil {
		ext = proxyproto.Nop{}
	}

	return &Driver[T]{
		cfg:      cfg,
		ext:      ext,
		view:     request.New(cfg.Headers.Max),
		chunked:  body.NewChunkedParser(cfg),
		fallback: alloc.NewAllocator(cfg.MaxFallback, cfg.Proto.Padding),
	}
}

// Consume feeds one chunk of transport-delivered bytes into the driver. See
// SPEC_FULL.md §4.5 for the full algorithm; the four steps below are
// annotated against their spec numbering.
func (d *Driver[T]) Consume(
	data []byte,
	user T,
	reqHandler RequestHandler[T],
	dataHandler DataHandler[T],
	errHandler ErrorHandler[T],
) (T, error) {
	// 1. Resume body, if one is in progress.
	var ok bool
	var err error
	data, user, ok, err = d.resumeInProgress(data, user, dataHandler)
	if !ok {
		return user, err
	}

	// 2. Drain the fallback buffer, if anything is pending from a prior call.
	if d.fallback.Len() > 0 {
		var (
			verdict Decision[T]
			done    bool
		)

		user, data, done, verdict, err = d.drainFallback(data, user, reqHandler, dataHandler, errHandler)
		if err != nil {
			return user, err
		}
		if done {
			if verdict.Verdict != Continue {
				return verdict.Value, nil
			}

			return user, nil
		}

		// drainFallback may have classified a body (Fixed/Chunked) without
		// draining it (SPEC_FULL.md §4.5 step 2 runs consume-minimally): data
		// past the head is body bytes, not the start of the next head, so it
		// must go through the same resumption path as step 1 before the main
		// loop is allowed to tokenize it.
		data, user, ok, err = d.resumeInProgress(data, user, dataHandler)
		if !ok {
			return user, err
		}
	}

	// 3. Main loop: tokenize and drain repeatedly until input is exhausted,
	// a callback breaks out, or a parse error occurs.
	for len(data) > 0 {
		consumed, err := d.tokenize(data, len(data))
		if err != nil {
			return user, err
		}

		if consumed == 0 {
			return d.stash(data, user, errHandler)
		}

		rest := data[consumed:]

		var verdict Decision[T]
		user, data, verdict, err = d.processHead(rest, user, reqHandler, dataHandler, true)
		if err != nil {
			return user, err
		}
		if verdict.Verdict != Continue {
			return verdict.Value, nil
		}

		if d.bodySt.Kind() != body.None {
			// Body still in progress: its remaining bytes, if any were
			// already available, were drained by processHead; what's left
			// waits for the next Consume call.
			return user, nil
		}
	}

	return user, nil
}

// resumeInProgress is the guard both resumption call sites need (a body
// already in progress at the start of Consume, and a body that drainFallback
// just classified without draining): a no-op when no body is in progress,
// otherwise it drives the body state machine via resumeAndDispatch. ok=false
// means the caller must return (newUser, err) immediately - either a
// dataHandler verdict that broke out, or a body parse error.
func (d *Driver[T]) resumeInProgress(data []byte, user T, dataHandler DataHandler[T]) (newData []byte, newUser T, ok bool, err error) {
	if d.bodySt.Kind() == body.None {
		return data, user, true, nil
	}

	remaining, verdict, rerr := d.resumeAndDispatch(data, user, dataHandler)
	if rerr != nil {
		return nil, user, false, rerr
	}
	if verdict.Verdict != Continue {
		return nil, verdict.Value, false, nil
	}

	return remaining, verdict.Value, true, nil
}

// tokenize runs the Head Tokenizer over buf[:n], extending buf into its
// capacity so the tokenizer may write its sentinel byte.
func (d *Driver[T]) tokenize(buf []byte, n int) (int, error) {
	return http1.Tokenize(extend(buf), n, d.cfg, d.view, d.ext)
}

// extend reslices b up to its capacity, exposing the post-padding the caller
// contractually guarantees (SPEC_FULL.md §6.3) so buf[n] is writable.
func extend(b []byte) []byte {
	return b[:cap(b)]
}

// stash copies an incomplete head's bytes into the fallback buffer for the
// next Consume call (SPEC_FULL.md §4.5 step 4).
func (d *Driver[T]) stash(data []byte, user T, errHandler ErrorHandler[T]) (T, error) {
	d.fallback.Reset()
	if taken := d.fallback.Append(data); taken < len(data) || d.fallback.Full() {
		return errHandler(user), status.ErrFallbackOverflow
	}

	return user, nil
}

func wrapBodyErr(err error) error {
	if err == nil {
		return nil
	}

	return status.ErrBadChunk
}
