package crc

import (
	"math/rand"
	"testing"
)

func TestReverseBitsRoundTrip(t *testing.T) {
	for _, width := range []int{8, 16, 32, 64} {
		for trial := 0; trial < 256; trial++ {
			v := rand.Uint64() & mask(width)
			got := ReverseBits(ReverseBits(v, width), width)
			if got != v {
				t.Fatalf("width=%d: reverse(reverse(%#x)) = %#x, want %#x", width, v, got, v)
			}
		}
	}
}

func TestReverseBits8KnownValues(t *testing.T) {
	cases := []struct {
		in, out byte
	}{
		{0x00, 0x00},
		{0xFF, 0xFF},
		{0x01, 0x80},
		{0x80, 0x01},
		{0x0F, 0xF0},
		{0xA5, 0xA5},
	}
	for _, c := range cases {
		if got := reverseBits8(c.in); got != c.out {
			t.Errorf("reverseBits8(%#02x) = %#02x, want %#02x", c.in, got, c.out)
		}
	}
}

func TestReverseBitsPanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid width")
		}
	}()
	ReverseBits(0, 24)
}
