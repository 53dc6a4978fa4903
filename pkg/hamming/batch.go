package hamming

import (
	"math/bits"
	"strings"
)

// Partition splits msg into chunks of size bits, zero-padding the last
// chunk. An empty msg yields no chunks.
func Partition(msg Bits, size int) []Bits {
	if size <= 0 {
		return nil
	}

	chunks := make([]Bits, 0, (len(msg)+size-1)/size)
	for start := 0; start < len(msg); start += size {
		chunk := make(Bits, size)
		copy(chunk, msg[start:])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Grid formats a block as rows of width bits separated by spaces. A width of
// zero or less picks log2(len(block)), which lays a 2^m block out as m
// columns.
func Grid(block Bits, width int) string {
	if width <= 0 {
		width = bits.Len(uint(len(block))) - 1
		if width < 1 {
			width = 1
		}
	}

	var sb strings.Builder
	for i, v := range block {
		if i > 0 {
			if i%width == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('0' + v&1)
	}
	return sb.String()
}
