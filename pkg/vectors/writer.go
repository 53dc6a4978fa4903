package vectors

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ssargent/secded/pkg/hamming"
)

// Writer formats vectors one per line
type Writer struct {
	w         *bufio.Writer
	bigEndian bool
}

// NewWriter creates a vector writer. With bigEndian set, bit vectors are
// written highest index first.
func NewWriter(w io.Writer, bigEndian bool) *Writer {
	return &Writer{w: bufio.NewWriter(w), bigEndian: bigEndian}
}

// WriteVector writes one line. Fields may be hamming.Bits, bool or uint8.
func (vw *Writer) WriteVector(fields ...any) error {
	parts := make([]string, len(fields))
	for i, f := range fields {
		switch v := f.(type) {
		case hamming.Bits:
			if vw.bigEndian {
				v = v.Reverse()
			}
			parts[i] = v.String()
		case bool:
			parts[i] = "0"
			if v {
				parts[i] = "1"
			}
		case uint8:
			parts[i] = fmt.Sprintf("%d", v)
		default:
			return fmt.Errorf("unsupported vector field type %T", f)
		}
	}

	if _, err := vw.w.WriteString(strings.Join(parts, " ") + "\n"); err != nil {
		return fmt.Errorf("failed to write vector: %w", err)
	}
	return nil
}

// Flush writes any buffered lines to the underlying writer
func (vw *Writer) Flush() error {
	return vw.w.Flush()
}
