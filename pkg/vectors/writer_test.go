package vectors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/secded/pkg/hamming"
)

func TestWriter_WriteVector(t *testing.T) {
	testCases := []struct {
		name      string
		bigEndian bool
		fields    []any
		want      string
	}{
		{"big endian bits", true, []any{hamming.Bits{1, 0, 0, 0}}, "0001\n"},
		{"little endian bits", false, []any{hamming.Bits{1, 0, 0, 0}}, "1000\n"},
		{"decoder outputs", true, []any{hamming.Bits{1, 1, 0, 1}, true, false}, "1011 1 0\n"},
		{"check bit", true, []any{uint8(1)}, "1\n"},
		{"empty line", true, nil, "\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, tc.bigEndian)
			require.NoError(t, w.WriteVector(tc.fields...))
			require.NoError(t, w.Flush())
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWriter_UnsupportedField(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	err := w.WriteVector("1011")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported vector field type")
}
