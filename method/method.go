// Package method provides a cheap, allocation-free enum for HTTP request
// methods, used to avoid repeated string comparisons in hot paths once the
// tokenizer has located the method bytes (it leaves their case as received).
package method

type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	count
)

var names = [...]string{
	GET:     "GET",
	HEAD:    "HEAD",
	POST:    "POST",
	PUT:     "PUT",
	DELETE:  "DELETE",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
}

func (m Method) String() string {
	if int(m) >= len(names) {
		return "UNKNOWN"
	}

	return names[m]
}

type entry struct {
	method Method
	origin string
}

// lut is indexed by the first two bytes of an upper-cased method token, which
// is enough to disambiguate all nine registered methods without a full string
// compare unless there's an actual collision to rule out.
var lut [256][256]entry

func init() {
	for m := GET; m < count; m++ {
		s := names[m]
		lut[s[0]][s[1]] = entry{method: m, origin: s}
	}
}

// Parse resolves an upper-cased method token (the tokenizer passes the slot-0
// key exactly as received, never lower-cased) to its enum value, or Unknown
// if the token isn't one of the nine methods this parser recognizes.
func Parse(s string) Method {
	if len(s) < 2 {
		return Unknown
	}

	e := lut[s[0]][s[1]]
	if e.origin != s {
		return Unknown
	}

	return e.method
}
