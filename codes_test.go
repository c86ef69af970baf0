// codes_test.go — verification for code formatting.
package flub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Formats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code Code
		dec  string
		hex  string
	}{
		{0, "0", "0x0"},
		{1, "1", "0x1"},
		{0xDEADBEEF, "3735928559", "0xdeadbeef"},
		{^Code(0), "18446744073709551615", "0xffffffffffffffff"},
	}
	for _, tc := range cases {
		t.Run(tc.dec, func(t *testing.T) {
			assert.Equal(t, tc.dec, tc.code.String())
			assert.Equal(t, tc.hex, tc.code.Hex())
		})
	}
}

func TestCode_IsOK(t *testing.T) {
	t.Parallel()

	assert.True(t, CodeOK.IsOK())
	assert.False(t, Code(1).IsOK())
}
