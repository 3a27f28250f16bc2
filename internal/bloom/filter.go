// Package bloom implements the fixed-width bit filter accelerating header
// lookups in the request view: handlers routinely probe for a handful of
// common headers ("host", "content-type", "upgrade"), and most connections
// carry few headers, so a quick negative answer avoids scanning the header
// table entirely.
package bloom

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// width is the number of bits in the filter, split across two uint64 words -
// a 128-bit index, as called for by the design.
const width = 128

// k is the number of hash positions derived per name via the
// Kirsch-Mitzenmacher double-hashing scheme: a single cryptographic digest is
// split into two base hashes, and k positions are produced as h1 + i*h2,
// saving k-1 independent hash computations per header.
const k = 3

// Filter is a 128-bit Bloom filter over lower-cased header names. It never
// produces a false negative: MightContain(name) is guaranteed true for every
// name ever Added, though it may also be true for names never added.
type Filter struct {
	bits [2]uint64
}

// Add records name (expected already lower-cased) in the filter.
func (f *Filter) Add(name []byte) {
	h1, h2 := split(name)

	for i := uint64(0); i < k; i++ {
		setBit(&f.bits, (h1+i*h2)%width)
	}
}

// MightContain reports whether name may have been Added. False means it
// definitely was not.
func (f *Filter) MightContain(name []byte) bool {
	h1, h2 := split(name)

	for i := uint64(0); i < k; i++ {
		if !testBit(f.bits, (h1+i*h2)%width) {
			return false
		}
	}

	return true
}

// Reset clears the filter for reuse across requests on the same connection.
func (f *Filter) Reset() {
	f.bits = [2]uint64{}
}

func split(name []byte) (h1, h2 uint64) {
	sum := blake2b.Sum256(name)
	return binary.LittleEndian.Uint64(sum[0:8]), binary.LittleEndian.Uint64(sum[8:16])
}

func setBit(bits *[2]uint64, pos uint64) {
	bits[pos/64] |= 1 << (pos % 64)
}

func testBit(bits [2]uint64, pos uint64) bool {
	return bits[pos/64]&(1<<(pos%64)) != 0
}
