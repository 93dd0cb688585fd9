package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bemasher/paramcrc/crc"
)

func TestReadFrame(t *testing.T) {
	var buf bytes.Buffer
	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], 9)
	buf.Write(lenPrefix[:])
	buf.WriteString("123456789")

	frame, err := readFrame(&buf)
	if err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	if string(frame) != "123456789" {
		t.Fatalf("readFrame = %q, want %q", frame, "123456789")
	}
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], maxFrameSize+1)
	buf.Write(lenPrefix[:])

	if _, err := readFrame(&buf); err == nil {
		t.Fatal("expected an error for an oversized frame length")
	}
}

func TestWriteChecksumBigEndian(t *testing.T) {
	p := crc.Params{Width: 16, Poly: 0x1021, Init: 0, XorOut: 0, RefIn: true, RefOut: true, RefReg: true}

	var buf bytes.Buffer
	if err := writeChecksum(&buf, p, 0x2189); err != nil {
		t.Fatalf("writeChecksum: %v", err)
	}
	if got, want := buf.Bytes(), []byte{0x21, 0x89}; !bytes.Equal(got, want) {
		t.Fatalf("writeChecksum wrote %x, want %x", got, want)
	}
}

func TestBuildModelAllStrategies(t *testing.T) {
	p := crc.Params{Width: 16, Poly: 0x1021, Init: 0, XorOut: 0, RefIn: true, RefOut: true, RefReg: true}

	for _, s := range []crc.Strategy{crc.Tableless, crc.FullTable, crc.SmallTable, crc.ExtFullTable, crc.ExtSmallTable} {
		m, err := buildModel(p, s)
		if err != nil {
			t.Fatalf("buildModel(%v): %v", s, err)
		}
		m.Update([]byte("123456789"))
		if got, want := m.Final(), uint64(0x2189); got != want {
			t.Errorf("strategy %v: Final() = %#x, want %#x", s, got, want)
		}
	}
}
