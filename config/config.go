package config

// Config holds every tunable limit and policy switch used across the parsing core.
// You must always start from Default() and only override the fields you actually
// want to change, because most of them interact (e.g. MaxFallback must be able to
// hold at least one complete MaxHeaders-sized head).
type Config struct {
	Headers Headers
	Body    Body
	Proto   Proto

	// MaxFallback is the hard ceiling on the fallback buffer's length: the
	// prefix of a request head that didn't fully arrive in one Consume call.
	// A per-instance field rather than a compile-time constant, so distinct
	// Driver instances (e.g. a relaxed ceiling for a trusted internal
	// listener versus a tighter one facing the public internet) can disagree.
	MaxFallback int
}

type Headers struct {
	// Max is the maximal number of (key, value) slots in the header table, including
	// the pseudo-header at slot 0 holding the method and target. RFC 9110 doesn't
	// mandate any particular ceiling, this is purely a resource bound.
	Max int
}

type Body struct {
	// MaxContentLength is the highest value the bounded decimal parser will accept
	// out of a Content-Length header. Chosen so that 9 ASCII digits always fit a
	// 32-bit unsigned integer without overflow checks.
	MaxContentLength uint32
	// MaxChunkSize bounds a single chunk's declared size in the chunked transfer
	// coding. 2^30-1 leaves two bits of headroom, a relic of the source's bit-packed
	// state word that we keep as a resource bound even though it's no longer encoded
	// that way.
	MaxChunkSize uint32
}

type Proto struct {
	// RequireHost rejects any request missing a Host header, regardless of declared
	// HTTP version. RFC 9112 only mandates Host for HTTP/1.1; setting this to false
	// relaxes the check for HTTP/1.0 requests.
	RequireHost bool
	// Padding is the number of writable bytes the caller guarantees past the end of
	// the buffer passed to Consume. Must be at least MinimumPadding.
	Padding int
}

// MinimumPadding is the smallest amount of post-padding the tokenizer's sentinel
// write and CR-find scanner are allowed to rely on.
const MinimumPadding = 32

// Default returns a well-balanced configuration matching the behavior described by
// the original parser design: 50 header slots, a 4KiB fallback, Content-Length
// bounded to 999,999,999 and chunk sizes bounded to 2^30-1.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Max: 50,
		},
		Body: Body{
			MaxContentLength: 999_999_999,
			MaxChunkSize:     1<<30 - 1,
		},
		Proto: Proto{
			RequireHost: true,
			Padding:     MinimumPadding,
		},
		MaxFallback: 4096,
	}
}
