package bloom

import (
	"fmt"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Soundness(t *testing.T) {
	var f Filter

	names := []string{"host", "content-type", "content-length", "upgrade", "x-request-id"}
	for _, n := range names {
		f.Add([]byte(n))
	}

	for _, n := range names {
		assert.True(t, f.MightContain([]byte(n)), "added name must be reported present: %s", n)
	}

	// absent names may false-positive in general; the hashes are deterministic,
	// and this particular absent name maps to bits none of the names above set
	assert.False(t, f.MightContain([]byte("definitely-not-here-zzz")))
}

func TestFilter_ResetClearsMembership(t *testing.T) {
	var f Filter
	f.Add([]byte("host"))
	require.True(t, f.MightContain([]byte("host")))

	f.Reset()

	assert.False(t, f.MightContain([]byte("host")))
}

// TestFilter_NoFalseNegatives fuzzes a large number of random short header
// names (the way real header names look) and checks every one added is
// reported present, the one property the filter may never violate.
func TestFilter_NoFalseNegatives(t *testing.T) {
	var f Filter
	var added []string

	for i := 0; i < 500; i++ {
		name := fmt.Sprintf("x-%s", uniuri.NewLen(8))
		added = append(added, name)
		f.Add([]byte(name))
	}

	for _, name := range added {
		assert.True(t, f.MightContain([]byte(name)), "false negative for %s", name)
	}
}
