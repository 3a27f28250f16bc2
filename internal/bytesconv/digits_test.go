package bytesconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUint(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantOk  bool
		comment string
	}{
		{"0", 0, true, "single zero digit"},
		{"5", 5, true, "single digit"},
		{"999999999", 999_999_999, true, "nine nines, the declared ceiling"},
		{"000000001", 1, true, "leading zeros are tolerated"},
		{"1234567890", 0, false, "ten digits overflows the nine-digit bound"},
		{"", 0, false, "empty"},
		{"12a", 0, false, "non-digit"},
		{"-1", 0, false, "sign not allowed"},
		{" 1", 0, false, "leading space not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			got, ok := ParseUint([]byte(tt.in))
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
