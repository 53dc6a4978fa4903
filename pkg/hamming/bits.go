package hamming

import (
	"fmt"
	"strings"
)

// Bits is a sequence of bits, one per element. Every element must be 0 or 1.
type Bits []uint8

// ParseBits parses a string of '0' and '1' characters. Spaces and underscores
// are ignored so that grouped vectors like "1011 0010" are accepted.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		case ' ', '_':
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, r, i)
		}
	}
	return bits, nil
}

// Validate checks that every element is 0 or 1
func (b Bits) Validate() error {
	for i, v := range b {
		if v > 1 {
			return fmt.Errorf("%w: %d at position %d", ErrInvalidBit, v, i)
		}
	}
	return nil
}

// Clone returns a copy of b
func (b Bits) Clone() Bits {
	if b == nil {
		return nil
	}
	c := make(Bits, len(b))
	copy(c, b)
	return c
}

// Reverse returns a copy of b with the element order reversed
func (b Bits) Reverse() Bits {
	r := make(Bits, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}

// Ones returns the number of set bits
func (b Bits) Ones() int {
	n := 0
	for _, v := range b {
		n += int(v & 1)
	}
	return n
}

// String renders b index 0 first, e.g. "1011"
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		sb.WriteByte('0' + v&1)
	}
	return sb.String()
}
