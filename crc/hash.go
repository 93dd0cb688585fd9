package crc

import "hash"

// digest adapts a Model to the standard library's hash.Hash interface:
// a small struct embedding the running state plus Write/Sum/Reset/Size/
// BlockSize.
type digest struct {
	params Params
	m      *Model
}

// NewHash returns a hash.Hash computing p's checksum with the FullTable
// strategy. Reset restarts the register at ActualInit the way hash/crc32's
// digest resets to zero.
func NewHash(p Params) hash.Hash {
	return &digest{params: p, m: NewStrategy(p, FullTable)}
}

func (d *digest) Write(p []byte) (int, error) {
	d.m.Update(p)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	v := d.m.Final()
	width := d.params.Width
	out := make([]byte, width/8)
	for i := range out {
		shift := uint((width/8 - 1 - i) * 8)
		out[i] = byte(v >> shift)
	}
	return append(in, out...)
}

func (d *digest) Reset() {
	d.m.reg = d.params.ActualInit()
}

func (d *digest) Size() int { return d.params.Width / 8 }

func (d *digest) BlockSize() int { return 1 }
