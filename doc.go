// Package paramcrc implements the parametric CRC engine described by the
// Rocksoft/RevEng model: any CRC-8/16/32/64 algorithm is fully specified by
// seven parameters (width, polynomial, initial register value, final XOR
// value, and three reflection flags), and this package computes, verifies
// and streams checksums for any such algorithm without per-algorithm code.
//
// The core engine lives in package crc. Package catalog publishes the
// 69 named algorithms from the RevEng catalogue as ready-made parameter
// tuples. Package gen produces random payloads and codewords for testing.
// Package modelcfg loads custom parameter tuples from YAML. Commands
// cmd/crccli and cmd/crcd are a batch checksum tool and a small TCP
// checksum service built on top of the library.
package paramcrc
