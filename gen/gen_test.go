package gen

import (
	"testing"

	"github.com/bemasher/paramcrc/crc"
)

var kermit = crc.Params{Width: 16, Poly: 0x1021, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true, RefReg: true}
var sae = crc.Params{Width: 8, Poly: 0x1D, Init: 0xFF, XorOut: 0xFF, RefIn: false, RefOut: false, RefReg: false}

func TestRandomPayloadLength(t *testing.T) {
	for _, n := range []int{0, 1, 16, 256} {
		p, err := RandomPayload(n)
		if err != nil {
			t.Fatalf("RandomPayload(%d): %v", n, err)
		}
		if len(p) != n {
			t.Fatalf("RandomPayload(%d) returned %d bytes", n, len(p))
		}
	}
}

func TestRandomCodewordResidue(t *testing.T) {
	for _, p := range []crc.Params{kermit, sae} {
		for trial := 0; trial < 32; trial++ {
			codeword, err := RandomCodeword(p, 64)
			if err != nil {
				t.Fatalf("RandomCodeword: %v", err)
			}

			m := crc.New(p)
			m.Update(codeword)
			if got, want := m.ResidueOfRegister(), crc.Residue(p); got != want {
				t.Fatalf("residue of generated codeword = %#x, want %#x", got, want)
			}
		}
	}
}
