// Package query provides raw (still percent-encoded) access to the query
// string cached by the Request View's query separator offset. Decoding
// percent-escapes is explicitly out of scope for the core (SPEC_FULL.md §1)
// and left to the hosting application.
package query

import "iter"

// Walk iterates over the raw key=value pairs of a query string (without the
// leading '?'), in the order they appear. A pair with no '=' yields an empty
// value, and empty pairs (e.g. from "a=1&&b=2") are skipped. Bytes are not
// validated: every non-empty pair is yielded as-is, whatever it contains, and
// malformed input never stops iteration early.
func Walk(raw []byte) iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		for len(raw) > 0 {
			amp := indexByte(raw, '&')
			var pair []byte
			if amp == -1 {
				pair, raw = raw, nil
			} else {
				pair, raw = raw[:amp], raw[amp+1:]
			}

			if len(pair) == 0 {
				continue
			}

			eq := indexByte(pair, '=')
			var key, value []byte
			if eq == -1 {
				key = pair
			} else {
				key, value = pair[:eq], pair[eq+1:]
			}

			if !yield(key, value) {
				return
			}
		}
	}
}

// Lookup scans raw for the first occurrence of key and returns its raw
// value. The comparison is exact (case-sensitive), matching query string
// semantics where key casing is significant.
func Lookup(raw []byte, key string) (value []byte, found bool) {
	for k, v := range Walk(raw) {
		if string(k) == key {
			return v, true
		}
	}

	return nil, false
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}

	return -1
}
