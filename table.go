package x86dec

// The opcode maps are byte-indexed arrays of packed slots, so dispatch per
// opcode byte is a single load. A slot is either empty, a direct instruction
// definition, a pointer to a deeper byte-indexed table (escapes), or one of
// three selector kinds resolved from already-scanned context: ModRM.reg
// groups, ModRM.mod splits, mandatory-prefix selections, and operand-size
// selections.
type tableSlot uint16

const (
	slotEmpty = iota
	slotInst
	slotTable
	slotGroup
	slotModSplit
	slotPrefixSel
	slotSizeSel
	slotVexLSel
)

func slot(kind, index int) tableSlot { return tableSlot(kind<<12 | index&0xfff) }

func (s tableSlot) kind() int  { return int(s >> 12) }
func (s tableSlot) index() int { return int(s & 0xfff) }

// inst is shorthand for a direct-definition slot in the generated tables.
func inst(index int) tableSlot { return slot(slotInst, index) }

var ppToSel = [4]int{0, 1, 3, 2} // VEX.pp -> prefix-selection index (none, 66, F2, F3)

// prefixSelIdx returns the mandatory-prefix selection index for the current
// prefix state: 0=none, 1=66, 2=F2, 3=F3. Repeat prefixes take precedence
// over 66, and among repeat prefixes the last one seen won the scan.
func (d *decodeState) prefixSelIdx() int {
	if d.prefixes.Vex.Kind != escNone {
		return ppToSel[d.prefixes.Vex.PP]
	}
	switch d.prefixes.Rep {
	case repPrefix:
		return 3
	case repnePrefix:
		return 2
	}
	if d.prefixes.OpSizeOvr {
		return 1
	}
	return 0
}

// opSizeSelIdx indexes operand-size selections: 0=16-bit, 1=32-bit, 2=64-bit.
func (d *decodeState) opSizeSelIdx() int {
	switch d.opSizeAttr(false) {
	case 2:
		return 0
	case 8:
		return 2
	}
	return 1
}

// peekModRM returns the ModRM byte without consuming it; it is consumed
// later by the ModRM decoder. Selector resolution that needs more bytes than
// the caller supplied fails with ErrBufferTooSmall.
func (d *decodeState) peekModRM() (byte, error) {
	return d.r.peek()
}

// lookup walks the opcode maps from the byte at the current read position
// to a unique instruction definition. On return the reader is positioned
// immediately after the final opcode byte.
func (d *decodeState) lookup() (*instDef, error) {
	var tbl *[256]tableSlot
	v := &d.prefixes.Vex
	switch v.Kind {
	case escNone:
		tbl = &opMain
	case escVex2, escVex3:
		tbl = vexMaps[v.Map]
	case escXop:
		tbl = xopMaps[v.Map-8]
	case escEvex:
		tbl = evexMaps[v.Map]
	}
	if tbl == nil {
		return nil, decodeErr(d.r.pos(), ErrInvalidEncoding)
	}

	d.opcodeOff = uint8(d.r.pos())
	for {
		b, err := d.r.byte()
		if err != nil {
			return nil, err
		}
		d.opcodeLen++
		d.opcode = b

		s := tbl[b]
		for {
			switch s.kind() {
			case slotEmpty:
				return nil, decodeErr(d.r.pos()-1, ErrInvalidEncoding)

			case slotInst:
				return &instDefs[s.index()], nil

			case slotTable:
				tbl = &escTables[s.index()]
				// next opcode byte

			case slotPrefixSel:
				sel := &prefixSels[s.index()]
				s = sel[d.prefixSelIdx()]
				if s == 0 && d.prefixes.Vex.Kind == escNone {
					// Exact mandatory-prefix match takes priority; the
					// no-prefix slot is the fallback, with the prefix
					// reverting to its ordinary meaning. VEX/EVEX encode pp
					// exactly, so no fallback applies there.
					s = sel[0]
				}
				continue

			case slotSizeSel:
				s = sizeSels[s.index()][d.opSizeSelIdx()]
				continue

			case slotVexLSel:
				if d.prefixes.Vex.LL == 0 {
					s = vexLSels[s.index()][0]
				} else {
					s = vexLSels[s.index()][1]
				}
				continue

			case slotGroup:
				m, err := d.peekModRM()
				if err != nil {
					return nil, err
				}
				s = regGroups[s.index()][(m>>3)&7]
				continue

			case slotModSplit:
				m, err := d.peekModRM()
				if err != nil {
					return nil, err
				}
				if m>>6 == 3 {
					s = modSplits[s.index()][1]
				} else {
					s = modSplits[s.index()][0]
				}
				continue

			default:
				return nil, decodeErr(d.r.pos()-1, ErrInvalidEncoding)
			}
			break
		}
	}
}
