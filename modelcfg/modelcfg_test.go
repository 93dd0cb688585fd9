package modelcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp model file: %v", err)
	}
	return path
}

func TestLoadDefaultsRefOutRefRegToRefIn(t *testing.T) {
	path := writeTemp(t, `
width: 16
poly: 0x1021
init: 0x0000
xor_out: 0x0000
ref_in: true
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.RefOut || !p.RefReg {
		t.Fatalf("expected RefOut/RefReg to default to RefIn=true, got RefOut=%v RefReg=%v", p.RefOut, p.RefReg)
	}
}

func TestLoadExplicitRefOutRefReg(t *testing.T) {
	path := writeTemp(t, `
width: 16
poly: 0x1021
init: 0x0000
xor_out: 0x0000
ref_in: true
ref_out: false
ref_reg: false
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.RefOut || p.RefReg {
		t.Fatalf("expected explicit false to override default, got RefOut=%v RefReg=%v", p.RefOut, p.RefReg)
	}
}

func TestLoadRejectsBadWidth(t *testing.T) {
	path := writeTemp(t, `
width: 24
poly: 0x1021
init: 0
xor_out: 0
ref_in: false
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unsupported width")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
