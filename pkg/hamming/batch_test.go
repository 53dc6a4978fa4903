package hamming

import "testing"

func TestPartition(t *testing.T) {
	testCases := []struct {
		name string
		msg  string
		size int
		want []string
	}{
		{name: "exact fit", msg: "10110010", size: 4, want: []string{"1011", "0010"}},
		{name: "padded tail", msg: "101100", size: 4, want: []string{"1011", "0000"}},
		{name: "short tail", msg: "1011001", size: 4, want: []string{"1011", "0010"}},
		{name: "single short chunk", msg: "11", size: 4, want: []string{"1100"}},
		{name: "empty", msg: "", size: 4, want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := ParseBits(tc.msg)
			if err != nil {
				t.Fatalf("ParseBits failed: %v", err)
			}
			chunks := Partition(msg, tc.size)
			if len(chunks) != len(tc.want) {
				t.Fatalf("got %d chunks, want %d", len(chunks), len(tc.want))
			}
			for i := range chunks {
				if chunks[i].String() != tc.want[i] {
					t.Errorf("chunk %d = %s, want %s", i, chunks[i], tc.want[i])
				}
			}
		})
	}

	if Partition(Bits{1}, 0) != nil {
		t.Error("Partition with size 0 should return nil")
	}
}

func TestPartition_FeedsCodec(t *testing.T) {
	c := mustCodec(t, 3)
	msg, _ := ParseBits("1011001110")

	var out Bits
	for _, chunk := range Partition(msg, c.MessageLen()) {
		block, err := c.Encode(chunk)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		res, err := c.Decode(block)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		out = append(out, res.Message...)
	}

	if out.String() != "101100111000" {
		t.Errorf("reassembled = %s", out)
	}
}

func TestGrid(t *testing.T) {
	block := Bits{0, 0, 1, 1, 0, 0, 1, 1}

	if got, want := Grid(block, 0), "0 0 1\n1 0 0\n1 1"; got != want {
		t.Errorf("Grid(auto) = %q, want %q", got, want)
	}
	if got, want := Grid(block, 4), "0 0 1 1\n0 0 1 1"; got != want {
		t.Errorf("Grid(4) = %q, want %q", got, want)
	}
	if got := Grid(Bits{1}, 0); got != "1" {
		t.Errorf("Grid(single) = %q", got)
	}
}
