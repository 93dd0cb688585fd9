package crc

import "sync"

// Tabler is satisfied by both Table and SmallTable: a byte-indexed read
// returning a width-bit entry. Strategies are written against this
// interface so the table-driven update formula in strategy.go stays
// generic over table shape.
type Tabler interface {
	At(b byte) uint64
}

// Table is the full 256-entry lookup table shape.
type Table struct {
	width      int
	actualPoly uint64
	refReg     bool
	entries    [256]uint64
}

// NewTable builds and fills a 256-entry table for (width, actualPoly,
// refReg). Pass the model's ActualPoly(), not its Poly -- the table always
// operates in the register convention.
func NewTable(width int, actualPoly uint64, refReg bool) *Table {
	t := NewUninitializedTable(width, actualPoly, refReg)
	t.Generate()
	return t
}

// NewUninitializedTable leaves the table's storage unfilled. Callers that
// need table memory allocated before the generator runs must call
// Generate before using the table; At on an ungenerated table returns
// zero values, not an error.
func NewUninitializedTable(width int, actualPoly uint64, refReg bool) *Table {
	return &Table{width: width, actualPoly: actualPoly, refReg: refReg}
}

// At returns the table entry for index b.
func (t *Table) At(b byte) uint64 { return t.entries[b] }

// Generate (re)computes all 256 entries from the table's (width,
// actualPoly, refReg).
func (t *Table) Generate() {
	generateFullTable(t.actualPoly, t.width, t.refReg, &t.entries)
}

// generateFullTable fills entries using the nibble-XOR fast construction:
// the 16 low-nibble entries are computed directly, then each remaining
// row is the XOR of one high-nibble seed and the 16 low-nibble entries.
func generateFullTable(poly uint64, width int, refReg bool, entries *[256]uint64) {
	entries[0] = 0

	if refReg {
		for i := byte(1); i < 0x10; i++ {
			entries[i] = tableEntry(poly, i, 0, width, refReg)
		}

		for k := byte(0x10); ; k += 0x10 {
			entries[k] = tableEntry(poly, k, 4, width, refReg)
			for i := byte(1); i < 0x10; i++ {
				entries[k^i] = entries[k] ^ entries[i]
			}
			if k == 0xf0 {
				break
			}
		}
		return
	}

	for i := byte(1); i < 0x10; i++ {
		entries[i] = tableEntry(poly, i, 4, width, refReg)
	}

	for k := byte(0x10); ; k += 0x10 {
		entries[k] = tableEntry(poly, k, 0, width, refReg)
		for i := byte(1); i < 0x10; i++ {
			entries[k^i] = entries[k] ^ entries[i]
		}
		if k == 0xf0 {
			break
		}
	}
}

// SmallTable is the 16+16-entry ("nibble") decomposition. For any byte b,
// Row[b&0xF] ^ Col[b>>4] reproduces exactly the value the corresponding
// Table would return at b.
type SmallTable struct {
	width      int
	actualPoly uint64
	refReg     bool
	row        [16]uint64
	col        [16]uint64
}

// NewSmallTable builds and fills a small table for (width, actualPoly,
// refReg).
func NewSmallTable(width int, actualPoly uint64, refReg bool) *SmallTable {
	t := NewUninitializedSmallTable(width, actualPoly, refReg)
	t.Generate()
	return t
}

// NewUninitializedSmallTable mirrors NewUninitializedTable: storage left
// zeroed until Generate is called.
func NewUninitializedSmallTable(width int, actualPoly uint64, refReg bool) *SmallTable {
	return &SmallTable{width: width, actualPoly: actualPoly, refReg: refReg}
}

// At returns row[b&0xF] ^ col[b>>4].
func (t *SmallTable) At(b byte) uint64 {
	return t.row[b&0x0F] ^ t.col[b>>4]
}

// Generate (re)computes the row and column seed vectors.
func (t *SmallTable) Generate() {
	generateSmallTable(t.actualPoly, t.width, t.refReg, &t.row, &t.col)
}

func generateSmallTable(poly uint64, width int, refReg bool, row, col *[16]uint64) {
	row[0] = 0
	col[0] = 0

	if refReg {
		for i := byte(1); i < 0x10; i++ {
			row[i] = tableEntry(poly, i, 0, width, refReg)
		}
		for k := byte(1); k < 0x10; k++ {
			col[k] = tableEntry(poly, k<<4, 4, width, refReg)
		}
		return
	}

	for i := byte(1); i < 0x10; i++ {
		row[i] = tableEntry(poly, i, 4, width, refReg)
	}
	for k := byte(1); k < 0x10; k++ {
		col[k] = tableEntry(poly, k<<4, 0, width, refReg)
	}
}

// tableKey identifies the process-wide singleton table shared by every
// model with the same (width, actualPoly, refReg): tables are pure
// functions of that tuple alone.
type tableKey struct {
	width      int
	actualPoly uint64
	refReg     bool
}

var (
	fullTableCache  sync.Map // tableKey -> *Table
	smallTableCache sync.Map // tableKey -> *SmallTable
)

// ownedFullTable returns the process-wide singleton full table for key,
// building it on first observation and caching it for every later caller.
// sync.Map's LoadOrStore gives the one-time safe publication guarantee
// without a package-level lock held across table generation.
func ownedFullTable(key tableKey) *Table {
	if v, ok := fullTableCache.Load(key); ok {
		return v.(*Table)
	}
	t := NewTable(key.width, key.actualPoly, key.refReg)
	actual, _ := fullTableCache.LoadOrStore(key, t)
	return actual.(*Table)
}

func ownedSmallTable(key tableKey) *SmallTable {
	if v, ok := smallTableCache.Load(key); ok {
		return v.(*SmallTable)
	}
	t := NewSmallTable(key.width, key.actualPoly, key.refReg)
	actual, _ := smallTableCache.LoadOrStore(key, t)
	return actual.(*SmallTable)
}
