package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{25, "25"},
		{int64(-3), "-3"},
		{int8(7), "7"},
		{uint8(255), "255"},
		{uint32(4294967295), "4294967295"},
		{true, "1"},
		{false, "0"},
		{"Living Room", "Living Room"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := EncodeValue(tt.in)
		assert.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []any{nil, 1.5, []byte("x"), struct{}{}} {
		_, err := EncodeValue(bad)
		assert.ErrorIs(t, err, ErrInvalidValue, "%v", bad)
	}
}
