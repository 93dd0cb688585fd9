package main

import (
	"bytes"
	"testing"

	"github.com/bemasher/paramcrc/crc"
)

func TestParseStrategy(t *testing.T) {
	cases := map[string]crc.Strategy{
		"tableless": crc.Tableless,
		"FULL":      crc.FullTable,
		"small":     crc.SmallTable,
		"ext-full":  crc.ExtFullTable,
		"ext-small": crc.ExtSmallTable,
	}
	for name, want := range cases {
		got, err := parseStrategy(name)
		if err != nil {
			t.Fatalf("parseStrategy(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("parseStrategy(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := parseStrategy("bogus"); err == nil {
		t.Fatal("expected an error for an unknown strategy")
	}
}

func TestNewEncoderPlain(t *testing.T) {
	var buf bytes.Buffer
	enc, err := newEncoder("plain", &buf)
	if err != nil {
		t.Fatalf("newEncoder: %v", err)
	}
	if err := enc.Encode(Result{Source: "-", Bytes: 9, Checksum: "CBF43926"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := buf.String(), "-\t9 bytes\tCBF43926\n"; got != want {
		t.Errorf("plain encode = %q, want %q", got, want)
	}
}

func TestNewEncoderCSV(t *testing.T) {
	var buf bytes.Buffer
	enc, err := newEncoder("csv", &buf)
	if err != nil {
		t.Fatalf("newEncoder: %v", err)
	}
	if err := enc.Encode(Result{Source: "-", Bytes: 9, Checksum: "CBF43926"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := buf.String(), "-,9,CBF43926\n"; got != want {
		t.Errorf("csv encode = %q, want %q", got, want)
	}
}

func TestNewEncoderJSON(t *testing.T) {
	var buf bytes.Buffer
	enc, err := newEncoder("json", &buf)
	if err != nil {
		t.Fatalf("newEncoder: %v", err)
	}
	if err := enc.Encode(Result{Source: "a.bin", Bytes: 4, Checksum: "00000000"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected JSON output")
	}
}

func TestNewEncoderUnknownFormat(t *testing.T) {
	if _, err := newEncoder("yaml", &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestBuildModelExternalStrategies(t *testing.T) {
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
