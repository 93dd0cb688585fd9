package crc

// Model binds Params to a Strategy and holds the single running register
// a streaming computation threads through Update/UpdateByte. Zero value is
// not useful; build one with New, NewStrategy, NewExternal, or their
// *FromInterim variants.
type Model struct {
	params   Params
	strategy Strategy
	reg      uint64

	// table is consulted by the four table-driven strategies. The two
	// owned strategies resolve it from the process-wide singleton cache
	// when the Model is constructed; the two external strategies take it
	// from the caller. A Tableless Model never touches the cache.
	table Tabler
}

// New binds p to the FullTable strategy, the "comfortable high
// performance default" described in the reference implementation.
func New(p Params) *Model {
	return NewStrategy(p, FullTable)
}

// NewStrategy binds p to one of Tableless, FullTable or SmallTable.
// Passing ExtFullTable or ExtSmallTable panics; use NewExternal for those,
// which binds a caller-supplied table to the Model once at construction.
// Update and Calculate take no table argument.
func NewStrategy(p Params, s Strategy) *Model {
	if s.external() {
		panic("crc: NewStrategy: external strategies require a table, use NewExternal")
	}
	m := &Model{params: p, strategy: s, reg: p.ActualInit()}
	m.resolveOwnedTable()
	return m
}

// NewFromInterim is NewStrategy, but the register starts from a prior
// Interim() value of a same-model instance instead of ActualInit. r is
// not validated; passing an interim value from a different model or from
// Final is a programming error.
func NewFromInterim(p Params, s Strategy, r uint64) *Model {
	if s.external() {
		panic("crc: NewFromInterim: external strategies require a table, use NewExternalFromInterim")
	}
	m := &Model{params: p, strategy: s, reg: r}
	m.resolveOwnedTable()
	return m
}

// NewExternal binds p to ExtFullTable or ExtSmallTable using the given
// caller-owned table, which must already match (width, actualPoly,
// refReg) for p -- the type of tbl (Table vs SmallTable) selects which of
// the two external strategies applies.
func NewExternal(p Params, tbl Tabler) *Model {
	return &Model{params: p, strategy: externalStrategyFor(tbl), reg: p.ActualInit(), table: tbl}
}

// NewExternalFromInterim is NewExternal starting from a prior interim
// register value.
func NewExternalFromInterim(p Params, tbl Tabler, r uint64) *Model {
	return &Model{params: p, strategy: externalStrategyFor(tbl), reg: r, table: tbl}
}

func externalStrategyFor(tbl Tabler) Strategy {
	switch tbl.(type) {
	case *Table:
		return ExtFullTable
	case *SmallTable:
		return ExtSmallTable
	default:
		panic("crc: NewExternal: table must be *Table or *SmallTable")
	}
}

func (m *Model) resolveOwnedTable() {
	switch m.strategy {
	case FullTable:
		m.table = ownedFullTable(m.key())
	case SmallTable:
		m.table = ownedSmallTable(m.key())
	}
}

func (m *Model) key() tableKey {
	return tableKey{width: m.params.Width, actualPoly: m.params.ActualPoly(), refReg: m.params.RefReg}
}

// Params returns the model's parameter tuple.
func (m *Model) Params() Params { return m.params }

// Strategy returns the model's calculation strategy.
func (m *Model) Strategy() Strategy { return m.strategy }

// Update absorbs data into the running register.
func (m *Model) Update(data []byte) {
	if m.params.RefIn != m.params.RefReg {
		for _, b := range data {
			m.updateByteRegisterConvention(reverseBits8(b))
		}
		return
	}
	for _, b := range data {
		m.updateByteRegisterConvention(b)
	}
}

// UpdateByte absorbs a single byte into the running register.
func (m *Model) UpdateByte(b byte) {
	if m.params.RefIn != m.params.RefReg {
		b = reverseBits8(b)
	}
	m.updateByteRegisterConvention(b)
}

// updateByteRegisterConvention feeds one byte, already in the register's
// input convention, through the selected strategy.
func (m *Model) updateByteRegisterConvention(b byte) {
	switch m.strategy {
	case Tableless:
		bbbUpdate(m.params.ActualPoly(), &m.reg, b, 8, m.params.Width, m.params.RefReg)
	default:
		tableUpdateByte(&m.reg, b, m.params.Width, m.params.RefReg, m.table)
	}
}

// Interim returns the raw running register, in the register convention,
// for later pause/resume via NewFromInterim or NewExternalFromInterim.
func (m *Model) Interim() uint64 {
	return m.reg
}

// ResidueOfRegister returns the register, bit-reversed within Width iff
// RefOut != RefReg, but without the final XOR applied.
func (m *Model) ResidueOfRegister() uint64 {
	if m.params.RefOut != m.params.RefReg {
		return ReverseBits(m.reg, m.params.Width)
	}
	return m.reg
}

// Final returns ResidueOfRegister() ^ XorOut. It is pure: calling Update
// again afterwards continues the computation exactly as a fresh instance
// cloned at that point would.
func (m *Model) Final() uint64 {
	return m.ResidueOfRegister() ^ m.params.XorOut
}

// Calculate is New(p).Update(data).Final() in one call.
func Calculate(p Params, data []byte) uint64 {
	m := New(p)
	m.Update(data)
	return m.Final()
}
