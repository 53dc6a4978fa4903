package hamming

import "fmt"

// MaxParityBits is the largest supported redundancy level (65536-bit blocks)
const MaxParityBits = 16

// Status classifies the outcome of a decode
type Status string

const (
	StatusClean         Status = "clean"
	StatusCorrected     Status = "corrected"
	StatusUncorrectable Status = "uncorrectable"
)

// Result is the outcome of decoding a block
type Result struct {
	Message   Bits // Recovered message; meaningless when Valid is false
	Corrected bool // A single-bit error was found and flipped back
	Valid     bool // False when a double-bit error was detected
	Syndrome  int  // Position indicated by the Hamming parity checks
}

// Status returns the outcome class of the decode
func (r Result) Status() Status {
	switch {
	case !r.Valid:
		return StatusUncorrectable
	case r.Corrected:
		return StatusCorrected
	default:
		return StatusClean
	}
}

// Codec encodes and decodes extended Hamming blocks for one redundancy level
type Codec struct {
	m        int
	n        int
	k        int
	coverage [][]int // coverage[i] = positions checked by parity bit i
	data     []int   // block positions holding message bits, ascending
}

// New creates a codec with m Hamming parity bits (plus the overall parity
// bit). m must be in [2, MaxParityBits].
func New(m int) (*Codec, error) {
	if m < 2 || m > MaxParityBits {
		return nil, fmt.Errorf("%w: %d (must be between 2 and %d)", ErrInvalidRedundancy, m, MaxParityBits)
	}

	n := 1 << m
	c := &Codec{
		m:        m,
		n:        n,
		k:        n - m - 1,
		coverage: coverageTable(m),
		data:     make([]int, 0, n-m-1),
	}
	for pos := 0; pos < n; pos++ {
		if !isReserved(pos) {
			c.data = append(c.data, pos)
		}
	}

	return c, nil
}

// ParityBits returns the redundancy level m
func (c *Codec) ParityBits() int {
	return c.m
}

// TotalLen returns the block length n = 2^m
func (c *Codec) TotalLen() int {
	return c.n
}

// MessageLen returns the message length k = n - m - 1
func (c *Codec) MessageLen() int {
	return c.k
}

// Rate returns the code rate k/n
func (c *Codec) Rate() float64 {
	return float64(c.k) / float64(c.n)
}

// Frame places the message bits into the data positions of a new block and
// leaves every parity position zero.
func (c *Codec) Frame(message Bits) (Bits, error) {
	if err := c.check(message, c.k, "message"); err != nil {
		return nil, err
	}

	block := make(Bits, c.n)
	for j, pos := range c.data {
		block[pos] = message[j]
	}
	return block, nil
}

// Deframe strips the parity positions from a block, returning the message
// bits as they stand. No parity is checked.
func (c *Codec) Deframe(block Bits) (Bits, error) {
	if err := c.check(block, c.n, "block"); err != nil {
		return nil, err
	}
	return c.deframe(block), nil
}

// Encode frames the message and computes every parity bit
func (c *Codec) Encode(message Bits) (Bits, error) {
	block, err := c.Frame(message)
	if err != nil {
		return nil, err
	}

	// Each parity position starts at zero and sits in its own coverage set.
	for i, positions := range c.coverage {
		block[1<<i] = parityAt(block, positions)
	}
	block[0] = ComputeParity(block, true)

	return block, nil
}

// Decode checks a block, corrects a single-bit error if there is one and
// returns the message. A double-bit error is reported with Valid set to
// false; it is not an error.
func (c *Codec) Decode(block Bits) (Result, error) {
	if err := c.check(block, c.n, "block"); err != nil {
		return Result{}, err
	}

	syndrome := c.syndrome(block)
	blockParity := ComputeParity(block, true)

	res := Result{Syndrome: syndrome, Valid: true}
	switch {
	case blockParity == 0 && syndrome == 0:
		res.Message = c.deframe(block)
	case blockParity == 0:
		res.Valid = false
		res.Message = c.deframe(block)
	default:
		fixed := block.Clone()
		fixed[syndrome] ^= 1
		res.Corrected = true
		res.Message = c.deframe(fixed)
	}

	return res, nil
}

// syndrome concatenates the coverage parities, parity bit m-1 first
func (c *Codec) syndrome(block Bits) int {
	idx := 0
	for i := c.m - 1; i >= 0; i-- {
		idx = idx<<1 | int(parityAt(block, c.coverage[i]))
	}
	return idx
}

func (c *Codec) deframe(block Bits) Bits {
	message := make(Bits, c.k)
	for j, pos := range c.data {
		message[j] = block[pos]
	}
	return message
}

func (c *Codec) check(bits Bits, want int, what string) error {
	if len(bits) != want {
		return fmt.Errorf("%w: %s has %d bits, want %d", ErrLengthMismatch, what, len(bits), want)
	}
	if err := bits.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", what, err)
	}
	return nil
}
