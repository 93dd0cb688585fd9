package catalog

import (
	"testing"

	"github.com/bemasher/paramcrc/crc"
)

var checkInput = []byte("123456789")

// TestCatalogCompleteness verifies every registered entry's published
// Check/Residue values actually reproduce under the core engine -- the
// same property test.cpp's TEST_CRC macro exercised over the reference
// implementation's catalog namespaces.
func TestCatalogCompleteness(t *testing.T) {
	for _, name := range Names() {
		e, ok := Lookup(name)
		if !ok {
			t.Fatalf("Names() returned %q but Lookup failed", name)
		}

		t.Run(name, func(t *testing.T) {
			if !Verify(e, checkInput, e.Check) {
				t.Errorf("%s: check value mismatch", name)
			}
			if got := crc.Residue(e.Params); got != e.Residue {
				t.Errorf("%s: residue = %#x, want %#x", name, got, e.Residue)
			}
		})
	}
}

func TestLookupByAlias(t *testing.T) {
	cases := []struct {
		alias string
		want  string
	}{
		{"CRC-32", "CRC-32/ISO-HDLC"},
		{"crc-32", "CRC-32/ISO-HDLC"},
		{"PKZIP", "CRC-32/ISO-HDLC"},
		{"CRC-CCITT", "CRC-16/KERMIT"},
		{"XMODEM", "CRC-16/XMODEM"},
		{"CRC-32C", "CRC-32/ISCSI"},
		{"CRC-64", "CRC-64/ECMA-182"},
	}

	for _, c := range cases {
		e, ok := Lookup(c.alias)
		if !ok {
			t.Errorf("Lookup(%q) not found", c.alias)
			continue
		}
		if e.Name != c.want {
			t.Errorf("Lookup(%q) = %s, want %s", c.alias, e.Name, c.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("CRC-NOT-A-REAL-ALGORITHM"); ok {
		t.Fatal("Lookup found an entry for a name that was never registered")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %q >= %q", names[i-1], names[i])
		}
	}
	if len(names) == 0 {
		t.Fatal("catalog is empty")
	}
}

func TestRegisterPanicsOnDuplicateName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering a duplicate name")
		}
	}()
	e, _ := Lookup("CRC-32/ISO-HDLC")
	Register(e.Name, nil, e.Params, e.Check, e.Residue)
}

func TestRegisterPanicsOnDuplicateAlias(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering a colliding alias")
		}
	}()
	e, _ := Lookup("CRC-16/XMODEM")
	Register("CRC-16/NOT-REAL-TEST-ONLY", []string{"PKZIP"}, e.Params, e.Check, e.Residue)
}
