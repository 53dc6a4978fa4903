package hamming

// ComputeParity returns the bit that, appended to bits, gives the sequence
// even parity (an even number of ones) when even is true, or odd parity
// otherwise.
func ComputeParity(bits Bits, even bool) uint8 {
	p := uint8(bits.Ones() & 1)
	if !even {
		p ^= 1
	}
	return p
}

// parityAt is ComputeParity(even) over the block values at positions,
// without gathering them into a new slice.
func parityAt(block Bits, positions []int) uint8 {
	var p uint8
	for _, pos := range positions {
		p ^= block[pos]
	}
	return p
}
