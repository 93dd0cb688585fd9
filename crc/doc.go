// Package crc implements a parametric Cyclic Redundancy Check engine.
//
// A CRC algorithm is identified by the seven Rocksoft/RevEng parameters
// (width, poly, init, xor_out, ref_in, ref_out, ref_reg) bundled in a
// Params value. Binding Params to one of five calculation strategies with
// New, NewStrategy or (for the two external-table strategies) NewExternal
// produces a Model that streams updates via Update and
// UpdateByte and yields a final digest via Final, or computes a one-shot
// digest via Calculate.
//
// The package also derives, from Params alone, the residue constant
// described by the RevEng catalogue (Residue) and exposes the lower level
// building blocks ReverseBits and the table generator (NewTable,
// NewSmallTable and their Generate methods) for callers that need them
// directly. The bit-by-bit kernels are internal to the package.
package crc
