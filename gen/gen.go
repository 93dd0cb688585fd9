// Package gen produces random payloads and valid codewords for residue
// property tests: a random packet with a checksum stamped onto its
// trailing bytes.
package gen

import (
	"crypto/rand"

	"github.com/bemasher/paramcrc/crc"
)

// RandomPayload returns n cryptographically random bytes.
func RandomPayload(n int) ([]byte, error) {
	payload := make([]byte, n)
	if _, err := rand.Read(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// RandomCodeword returns n random payload bytes with p's checksum appended
// in p's transmission order: the digest is bit-reversed first when RefIn
// differs from RefOut, then packed little-endian if RefIn is set or
// big-endian otherwise. Feeding the result back through a fresh Model
// under p must yield Residue(p).
func RandomCodeword(p crc.Params, n int) ([]byte, error) {
	payload, err := RandomPayload(n)
	if err != nil {
		return nil, err
	}

	digest := crc.Calculate(p, payload)
	if p.RefIn != p.RefOut {
		digest = crc.ReverseBits(digest, p.Width)
	}

	width := p.Width / 8
	codeword := make([]byte, n, n+width)
	copy(codeword, payload)

	if p.RefIn {
		for i := 0; i < width; i++ {
			codeword = append(codeword, byte(digest>>(uint(i)*8)))
		}
	} else {
		for i := width - 1; i >= 0; i-- {
			codeword = append(codeword, byte(digest>>(uint(i)*8)))
		}
	}

	return codeword, nil
}
