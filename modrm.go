package x86dec

import (
	. "github.com/wdamron/x86dec/internal/flags"
)

// modrmInfo is the parsed ModRM/SIB/displacement state for one instruction.
// Register numbers are raw field values with the REX/VEX/EVEX extension bits
// already merged; operand resolution assigns families and widths.
type modrmInfo struct {
	hasModRM bool
	modrm    byte
	mod      uint8
	reg      uint8 // 4-bit (5-bit with EVEX R') register-operand number
	rm       uint8 // extended r/m number for register forms

	hasSIB bool
	sib    byte

	dispOff uint8
	dispLen uint8
	disp    int64

	// memory composition, valid when isMem
	isMem    bool
	base     Reg
	indexNum uint8 // extended raw index number; meaningful when hasIndex
	hasIndex bool
	scale    uint8
	ripRel   bool
	abs32    bool
	vsib     bool
}

// 16-bit addressing register pairs, indexed by rm.
var mem16Base = [8]Reg{BX, BX, BP, BP, SI, DI, BP, BX}
var mem16Index = [8]Reg{SI, DI, SI, DI, 0, 0, 0, 0}

// decodeModRM parses the ModRM byte and any SIB/displacement bytes it
// implies. Control/debug-register moves (MOD3) always behave as register
// forms; when their mod bits indicate displacement the bytes are consumed as
// length but ignored for addressing.
func (d *decodeState) decodeModRM(def *instDef) error {
	p := &d.prefixes
	m := &d.modrm

	d.modrmPos = uint8(d.r.pos())
	b, err := d.r.byte()
	if err != nil {
		return err
	}
	m.hasModRM = true
	m.modrm = b
	m.mod = b >> 6
	m.reg = (b >> 3) & 7
	m.rm = b & 7
	if p.extR() {
		m.reg |= 8
	}
	if p.Vex.RP {
		m.reg |= 16
	}
	m.vsib = argpHasVSIB(def.argp)

	forced3 := hasFlag(def.flags, MOD3)
	if m.mod == 3 {
		if p.extB() {
			m.rm |= 8
		}
		return nil
	}

	if d.addrSize() == 2 {
		if err := d.decodeMem16(); err != nil {
			return err
		}
	} else {
		if err := d.decodeMem32(); err != nil {
			return err
		}
	}

	if forced3 {
		// Register-to-register regardless of mod; keep the consumed byte
		// accounting but drop the addressing interpretation.
		m.isMem = false
		m.ripRel = false
		m.abs32 = false
		if p.extB() {
			m.rm |= 8
		}
	}
	return nil
}

func (d *decodeState) decodeMem16() error {
	m := &d.modrm
	m.isMem = true
	m.base = mem16Base[m.rm]
	if idx := mem16Index[m.rm]; idx != 0 {
		m.indexNum = idx.Num()
		m.hasIndex = true
		m.scale = 1
	}

	switch m.mod {
	case 0:
		if m.rm == 6 {
			m.base = 0
			return d.readDisp(2)
		}
	case 1:
		return d.readDisp(1)
	case 2:
		return d.readDisp(2)
	}
	return nil
}

func (d *decodeState) decodeMem32() error {
	m := &d.modrm
	p := &d.prefixes
	m.isMem = true
	width := d.addrSize()

	dispLen := uint8(0)
	switch m.mod {
	case 1:
		dispLen = 1
	case 2:
		dispLen = 4
	}

	if m.rm == 4 {
		sib, err := d.r.byte()
		if err != nil {
			return err
		}
		m.hasSIB = true
		m.sib = sib
		m.scale = 1 << (sib >> 6)

		idx := (sib >> 3) & 7
		extIdx := idx
		if p.extX() {
			extIdx |= 8
		}
		if m.vsib {
			// VSIB: the index field always names a vector register; the
			// field value 4 is not a suppression marker here.
			if p.Vex.VP {
				extIdx |= 16
			}
			m.indexNum = extIdx
			m.hasIndex = true
		} else if idx != 4 || p.extX() {
			m.indexNum = extIdx
			m.hasIndex = true
		}

		base := sib & 7
		if base == 5 && m.mod == 0 {
			// No base register; absolute disp32 even in 64-bit mode. With
			// the index also suppressed this is the pure absolute-32 form.
			dispLen = 4
			if !m.hasIndex {
				m.abs32 = true
			}
		} else {
			if p.extB() {
				base |= 8
			}
			m.base = mkReg(width, REG_LEGACY, base)
		}
	} else if m.mod == 0 && m.rm == 5 {
		// disp32 with no base: RIP-relative in 64-bit mode, absolute
		// otherwise. Resolved relative to the end of the instruction by the
		// consumer, flagged here.
		dispLen = 4
		if d.mode == Mode64 {
			m.ripRel = true
			m.base = mkReg(width, REG_RIP, 0)
		}
	} else {
		rm := m.rm
		if p.extB() {
			rm |= 8
		}
		m.base = mkReg(width, REG_LEGACY, rm)
	}

	if dispLen != 0 {
		return d.readDisp(dispLen)
	}
	return nil
}

func (d *decodeState) readDisp(n uint8) error {
	m := &d.modrm
	m.dispOff = uint8(d.r.pos())
	v, err := d.r.uint(int(n))
	if err != nil {
		return err
	}
	m.dispLen = n
	m.disp = signExtend(v, n)
	return nil
}

func signExtend(v uint64, width uint8) int64 {
	shift := 64 - uint(width)*8
	return int64(v<<shift) >> shift
}
