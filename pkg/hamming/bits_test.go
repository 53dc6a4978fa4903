package hamming

import (
	"errors"
	"testing"
)

func TestParseBits(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "1011", want: "1011"},
		{name: "grouped with spaces", in: "1011 0010", want: "10110010"},
		{name: "grouped with underscores", in: "10_11", want: "1011"},
		{name: "empty", in: "", want: ""},
		{name: "invalid character", in: "10a1", wantErr: true},
		{name: "digit two", in: "102", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseBits(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidBit) {
					t.Errorf("ParseBits(%q) error = %v, want ErrInvalidBit", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBits(%q) failed: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseBits(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestBits_Helpers(t *testing.T) {
	b := Bits{1, 1, 0, 1, 0}

	if b.Ones() != 3 {
		t.Errorf("Ones = %d, want 3", b.Ones())
	}
	if r := b.Reverse(); r.String() != "01011" {
		t.Errorf("Reverse = %s, want 01011", r)
	}

	c := b.Clone()
	c[0] = 0
	if b[0] != 1 {
		t.Error("Clone shares storage with the original")
	}
	if Bits(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}

	if err := (Bits{0, 1, 3}).Validate(); !errors.Is(err, ErrInvalidBit) {
		t.Errorf("Validate error = %v, want ErrInvalidBit", err)
	}
}
