package hamming

import "testing"

// FuzzCodec_SingleFlip encodes arbitrary messages and checks that any one
// flipped bit is corrected.
func FuzzCodec_SingleFlip(f *testing.F) {
	f.Add(uint64(0), uint8(0))
	f.Add(uint64(0b1011), uint8(5))
	f.Add(^uint64(0), uint8(15))

	c, err := New(4)
	if err != nil {
		f.Fatalf("New failed: %v", err)
	}

	f.Fuzz(func(t *testing.T, raw uint64, flip uint8) {
		msg := make(Bits, c.MessageLen())
		for j := range msg {
			msg[j] = uint8(raw>>j) & 1
		}

		block, err := c.Encode(msg)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		pos := int(flip) % c.TotalLen()
		block[pos] ^= 1

		res, err := c.Decode(block)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !res.Valid || !res.Corrected || res.Message.String() != msg.String() {
			t.Fatalf("flip %d of %s: got %s corrected=%v valid=%v", pos, msg, res.Message, res.Corrected, res.Valid)
		}
	})
}

// FuzzCodec_Decode feeds arbitrary blocks to Decode; it must never fail for
// correctly sized binary input.
func FuzzCodec_Decode(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xFFFFFFFF))
	f.Add(uint32(0xDEADBEEF))

	c, err := New(5)
	if err != nil {
		f.Fatalf("New failed: %v", err)
	}

	f.Fuzz(func(t *testing.T, raw uint32) {
		block := make(Bits, c.TotalLen())
		for j := range block {
			block[j] = uint8(raw>>j) & 1
		}

		res, err := c.Decode(block)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if len(res.Message) != c.MessageLen() {
			t.Fatalf("message length %d, want %d", len(res.Message), c.MessageLen())
		}
		if res.Syndrome < 0 || res.Syndrome >= c.TotalLen() {
			t.Fatalf("syndrome %d out of range", res.Syndrome)
		}
	})
}
