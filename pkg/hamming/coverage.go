package hamming

// Coverage returns the block positions checked by parity bit i for
// redundancy level m: every p in [0, 2^m) whose m-bit binary form, written
// most significant bit first, has a 1 at index m-1-i. That is the bit of
// weight 2^i, so the parity position 2^i is a member of its own set and
// position 0 belongs to no set.
//
// i must be in [0, m).
func Coverage(m, i int) []int {
	n := 1 << m
	positions := make([]int, 0, n/2)
	for p := 0; p < n; p++ {
		if (p>>i)&1 == 1 {
			positions = append(positions, p)
		}
	}
	return positions
}

// coverageTable precomputes Coverage(m, i) for every i in [0, m).
func coverageTable(m int) [][]int {
	table := make([][]int, m)
	for i := range table {
		table[i] = Coverage(m, i)
	}
	return table
}

// isReserved reports whether pos holds a parity bit: position 0 or a power
// of two.
func isReserved(pos int) bool {
	return pos&(pos-1) == 0
}
