// Package channel simulates a noisy transmission channel that flips bits in
// encoded blocks. It manufactures corrupted inputs for verification only; the
// codec never calls it.
package channel

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ssargent/secded/pkg/hamming"
)

// MaxDefaultFlips bounds the random flip count when none is requested
const MaxDefaultFlips = 2

// Channel flips bits using an injected random source
type Channel struct {
	rng *rand.Rand
}

// New creates a channel drawing randomness from rng
func New(rng *rand.Rand) *Channel {
	return &Channel{rng: rng}
}

// NewSeeded creates a channel with a reproducible random source
func NewSeeded(seed int64) *Channel {
	return New(rand.New(rand.NewSource(seed)))
}

// NewUnseeded creates a channel seeded from the wall clock
func NewUnseeded() *Channel {
	return NewSeeded(time.Now().UnixNano())
}

// Transmission is the outcome of sending a block through the channel
type Transmission struct {
	Block   hamming.Bits // Block as received
	Flipped []int        // Positions flipped, in the order applied
}

// Perturb returns a copy of block with bits flipped.
//
// When positions is non-empty exactly those positions are flipped, so a
// repeated position cancels out, and count is ignored. Otherwise count
// distinct random positions are flipped; a nil count picks 0, 1 or 2
// uniformly.
func (c *Channel) Perturb(block hamming.Bits, positions []int, count *int) (*Transmission, error) {
	out := block.Clone()
	if out == nil {
		out = hamming.Bits{}
	}

	if len(positions) > 0 {
		for _, p := range positions {
			if p < 0 || p >= len(out) {
				return nil, fmt.Errorf("flip position %d out of range [0, %d)", p, len(out))
			}
			out[p] ^= 1
		}
		flipped := make([]int, len(positions))
		copy(flipped, positions)
		return &Transmission{Block: out, Flipped: flipped}, nil
	}

	n := c.rng.Intn(MaxDefaultFlips + 1)
	if count != nil {
		n = *count
	}
	if n < 0 || n > len(out) {
		return nil, fmt.Errorf("cannot flip %d distinct bits in a %d-bit block", n, len(out))
	}

	// The first n entries of a random permutation are n distinct positions.
	flipped := c.rng.Perm(len(out))[:n]
	for _, p := range flipped {
		out[p] ^= 1
	}

	return &Transmission{Block: out, Flipped: flipped}, nil
}

// Flips is a convenience for building the count argument of Perturb
func Flips(n int) *int {
	return &n
}
