package x86dec

import (
	. "github.com/wdamron/x86dec/internal/flags"
)

// OpKind identifies what an operand refers to.
type OpKind uint8

const (
	OpNone OpKind = iota
	OpReg
	OpMem
	OpImm
	OpRel // IP-relative branch displacement
	OpFlags
)

// Access describes how an instruction touches an operand. Conditional access
// (AccCond) combines with read or write for instructions whose access depends
// on runtime state, such as CMOVcc writes and REPcc terminations.
type Access uint8

const (
	AccRead Access = 1 << iota
	AccWrite
	AccCond

	// AccNone is the zero Access, reported for operands that are neither
	// read nor written, such as the address source of LEA.
	AccNone Access = 0
)

// Memory is the decomposed addressing form of a memory operand. Disp is
// sign-extended from its encoded width; RipRel displacements are relative to
// the end of the instruction.
type Memory struct {
	Seg   Reg
	Base  Reg
	Index Reg
	Scale uint8
	Disp  int64

	DispWidth uint8
	RipRel    bool
	Abs32     bool // SIB form with base and index both absent
	VSIB      bool
	Stack     bool // implicit stack access through the stack pointer
	String    bool // implicit [rSI]/[rDI] string access
	BitBase   bool // bit-addressed; Disp scales by the bit offset operand
}

// Op is one materialized operand. Size is in bytes; it is zero only for
// operands with no meaningful width, such as prefetch hints.
type Op struct {
	Kind   OpKind
	Access Access
	Size   uint8
	Reg    Reg
	Mem    Memory
	Imm    int64 // sign-extended from encoded width
	Rel    int64

	// AVX-512 decorators.
	Mask      Reg
	Zeroing   bool
	Broadcast bool
	SAE       bool
	ER        bool
	Rounding  uint8
}

// Explicit operands are encoded as arg patterns: up to four operands of
// three bytes each (source, size, access), in encoding order.
//
// Source letters:
//
//	r  GP register, ModRM.reg         m  GP register or memory, ModRM.rm
//	M  memory only, ModRM.rm          T  like m, bit-addressed memory
//	x  vector register, ModRM.reg     u  vector register or memory, ModRM.rm
//	P  MMX register, ModRM.reg        Q  MMX register or memory, ModRM.rm
//	v  vector register, vvvv          V  GP register, vvvv
//	K  mask register, ModRM.reg       k  mask register or memory, ModRM.rm
//	w  mask register, vvvv            s  segment register, ModRM.reg
//	c  control register, ModRM.reg    d  debug register, ModRM.reg
//	O  GP register, opcode bits 2:0   l  memory with vector index (VSIB)
//	a  the accumulator                D  the DX register (I/O port)
//	i  immediate                      j  IP-relative branch offset
//	o  absolute offset (moffs)        1  the constant 1
//
// Size letters:
//
//	b w d q o    1, 2, 4, 8, 16 bytes
//	*            operand-size attribute
//	e            2 in 16-bit operand size, else 4
//	y            4 in 16/32-bit operand size, 8 in 64
//	f            operand-size attribute, immediates kept at full width
//	p            stack operand width
//	a            address-size attribute
//	n            native width of the decode mode
//	v            vector length
//	_            no width
//
// Access letters: r, w, m (read+write), c (conditional read),
// C (conditional write), n (no data access).

func opWidth(d *decodeState, c byte) uint8 {
	switch c {
	case 'b':
		return 1
	case 'w':
		return 2
	case 'd':
		return 4
	case 'q':
		return 8
	case 'o':
		return 16
	case '*', 'f':
		return d.opSize
	case 'e':
		// Effective width; under a 64-bit operand size the immediate is
		// still encoded in 4 bytes and sign-extended.
		return d.opSize
	case 'y':
		if d.opSize == 8 {
			return 8
		}
		return 4
	case 'p':
		return d.stackWidth
	case 'a':
		return d.addrSize()
	case 'n':
		return uint8(d.mode)
	case 'v':
		return d.vecLen()
	}
	return 0
}

func accessBits(c byte) Access {
	switch c {
	case 'r':
		return AccRead
	case 'w':
		return AccWrite
	case 'm':
		return AccRead | AccWrite
	case 'c':
		return AccRead | AccCond
	case 'C':
		return AccWrite | AccCond
	}
	return 0
}

// argpHasVSIB reports whether a pattern contains a vector-indexed memory
// operand; the ModRM decoder needs this before the SIB byte is interpreted.
func argpHasVSIB(argp uint8) bool {
	p := argpFormats[argp]
	for i := 0; i < len(p); i += 3 {
		if p[i] == 'l' {
			return true
		}
	}
	return false
}

// vecFamily selects the SSE/AVX register family for a data width; scalar
// widths still name XMM registers. MMX has its own operand letters.
func vecFamily(width uint8) uint8 {
	switch width {
	case 32:
		return REG_YMM
	case 64:
		return REG_ZMM
	}
	return REG_XMM
}

// rexLike reports whether byte-register decoding follows the uniform
// numbering (SPB..DIB) rather than the legacy high-byte aliases.
func (d *decodeState) rexLike() bool {
	return d.prefixes.RexPresent || d.prefixes.Vex.Kind != escNone
}

// memOperand composes the Memory form for the current ModRM state at the
// given data width, applying segment defaulting.
func (d *decodeState) memOperand() Memory {
	m := &d.modrm
	mem := Memory{
		Base:      m.base,
		Scale:     m.scale,
		Disp:      m.disp,
		DispWidth: m.dispLen,
		RipRel:    m.ripRel,
		Abs32:     m.abs32,
		VSIB:      m.vsib,
	}
	if m.hasIndex {
		if m.vsib {
			mem.Index = mkReg(d.vecLen(), vecFamily(d.vecLen()), m.indexNum)
		} else {
			mem.Index = mkReg(d.addrSize(), REG_LEGACY, m.indexNum)
		}
	}
	mem.Seg = d.defaultSeg(mem.Base)
	return mem
}

// defaultSeg resolves the segment for a memory access with the given base.
// BP- and SP-based addressing defaults to SS, everything else to DS; an
// override wins. In 64-bit mode segmentation is flat and only FS/GS
// overrides are reported.
func (d *decodeState) defaultSeg(base Reg) Reg {
	if d.mode == Mode64 {
		return d.prefixes.Seg // FS/GS or zero
	}
	if d.prefixes.Seg != 0 {
		return d.prefixes.Seg
	}
	if base != 0 && base.Family() == REG_LEGACY {
		if n := base.Num(); n == 4 || n == 5 {
			return SS
		}
	}
	return DS
}

// buildOperands materializes the explicit operands of def in encoding order,
// then appends the implicit ones, then applies AVX-512 decorators.
func (d *decodeState) buildOperands(def *instDef, x *Inst) error {
	p := argpFormats[def.argp]
	for i := 0; i+2 < len(p); i += 3 {
		op, err := d.buildOperand(p[i], p[i+1], p[i+2])
		if err != nil {
			return err
		}
		x.addOp(op)
	}
	if err := d.buildImplicit(def, x); err != nil {
		return err
	}
	return d.applyDecorators(def, x)
}

func (d *decodeState) buildOperand(src, size, acc byte) (Op, error) {
	p := &d.prefixes
	m := &d.modrm
	w := opWidth(d, size)
	op := Op{Access: accessBits(acc), Size: w}

	switch src {
	case 'r':
		op.Kind = OpReg
		op.Reg = gpReg(w, m.reg, d.rexLike())

	case 'm', 'T', 'M':
		if m.isMem {
			op.Kind = OpMem
			op.Mem = d.memOperand()
			op.Mem.BitBase = src == 'T'
			return op, nil
		}
		if src == 'M' {
			return op, decodeErr(int(d.modrmOff()), ErrInvalidEncoding)
		}
		op.Kind = OpReg
		op.Reg = gpReg(w, m.rm, d.rexLike())

	case 'x':
		op.Kind = OpReg
		op.Reg = mkReg(w, vecFamily(w), m.reg)

	case 'P':
		// MMX registers ignore the extension bits.
		op.Kind = OpReg
		op.Reg = mkReg(8, REG_MMX, m.reg&7)

	case 'Q':
		if m.isMem {
			op.Kind = OpMem
			op.Mem = d.memOperand()
			return op, nil
		}
		op.Kind = OpReg
		op.Reg = mkReg(8, REG_MMX, m.rm&7)

	case 'a':
		op.Kind = OpReg
		op.Reg = gpReg(w, 0, d.rexLike())

	case 'D':
		op.Kind = OpReg
		op.Reg = DX

	case 'u':
		if m.isMem {
			op.Kind = OpMem
			op.Mem = d.memOperand()
			return op, nil
		}
		num := m.rm
		if p.Vex.Kind == escEvex && p.Vex.X {
			num |= 16
		}
		op.Kind = OpReg
		op.Reg = mkReg(w, vecFamily(w), num)

	case 'v':
		num := p.Vex.Vvvv
		if p.Vex.VP {
			num |= 16
		}
		op.Kind = OpReg
		op.Reg = mkReg(w, vecFamily(w), num)

	case 'V':
		op.Kind = OpReg
		op.Reg = gpReg(w, p.Vex.Vvvv, true)

	case 'K':
		op.Kind = OpReg
		op.Reg = mkReg(8, REG_MASK, m.reg&7)

	case 'k':
		if m.isMem {
			op.Kind = OpMem
			op.Mem = d.memOperand()
			return op, nil
		}
		op.Kind = OpReg
		op.Reg = mkReg(8, REG_MASK, m.rm&7)

	case 'w':
		op.Kind = OpReg
		op.Reg = mkReg(8, REG_MASK, p.Vex.Vvvv&7)

	case 's':
		n := m.reg & 7
		if n > 5 {
			return op, decodeErr(int(d.modrmOff()), ErrInvalidEncoding)
		}
		if n == 1 && op.Access&AccWrite != 0 {
			// MOV to CS is undefined.
			return op, decodeErr(int(d.modrmOff()), ErrInvalidEncoding)
		}
		op.Kind = OpReg
		op.Reg = mkReg(2, REG_SEGMENT, n)

	case 'c':
		switch m.reg {
		case 0, 2, 3, 4, 8:
		default:
			return op, decodeErr(int(d.modrmOff()), ErrInvalidEncoding)
		}
		op.Kind = OpReg
		op.Reg = mkReg(w, REG_CONTROL, m.reg)

	case 'd':
		if m.reg > 7 {
			return op, decodeErr(int(d.modrmOff()), ErrInvalidEncoding)
		}
		op.Kind = OpReg
		op.Reg = mkReg(w, REG_DEBUG, m.reg)

	case 'O':
		op.Kind = OpReg
		op.Reg = gpReg(w, d.shortReg, d.rexLike())

	case 'i':
		iw := w
		if size == 'e' && w == 8 {
			iw = 4 // imm32 sign-extended to 64
		}
		v, err := d.readImm(iw)
		if err != nil {
			return op, err
		}
		op.Kind = OpImm
		op.Imm = v

	case '1':
		op.Kind = OpImm
		op.Imm = 1
		op.Size = 1

	case 'j':
		iw := w
		if size == 'e' && w == 8 {
			iw = 4
		}
		v, err := d.readImm(iw)
		if err != nil {
			return op, err
		}
		op.Kind = OpRel
		op.Rel = v
		op.Size = d.opSize

	case 'o':
		if err := d.readDisp(d.addrSize()); err != nil {
			return op, err
		}
		// moffs displacements are absolute addresses, not sign-extended.
		disp := m.disp
		if m.dispLen < 8 {
			disp &= int64(1)<<(8*uint(m.dispLen)) - 1
		}
		op.Kind = OpMem
		op.Mem = Memory{
			Seg:       d.defaultSeg(0),
			Disp:      disp,
			DispWidth: m.dispLen,
		}

	case 'l':
		if !m.isMem {
			return op, decodeErr(int(d.modrmOff()), ErrInvalidEncoding)
		}
		op.Kind = OpMem
		op.Mem = d.memOperand()

	default:
		return op, decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
	}
	return op, nil
}

// buildImplicit appends the operands the encoding does not spell out:
// accumulators, fixed registers, string pointers, stack accesses and the
// flags register.
func (d *decodeState) buildImplicit(def *instDef, x *Inst) error {
	for _, im := range implPatterns[def.impl] {
		w := opWidth(d, im.size)
		op := Op{Access: im.acc, Size: w}
		switch im.kind {
		case implReg:
			op.Kind = OpReg
			op.Reg = im.reg

		case implGp:
			// im.reg carries a bare register number sized by the pattern.
			op.Kind = OpReg
			op.Reg = gpReg(w, uint8(im.reg), d.rexLike())

		case implMemSI, implMemDI:
			op.Kind = OpMem
			aw := d.addrSize()
			if im.kind == implMemSI {
				op.Mem = Memory{Base: mkReg(aw, REG_LEGACY, 6), Seg: d.defaultSeg(0), String: true}
			} else {
				// The destination string segment is ES and cannot be
				// overridden.
				op.Mem = Memory{Base: mkReg(aw, REG_LEGACY, 7), Seg: ES, String: true}
				if d.mode == Mode64 {
					op.Mem.Seg = 0
				}
			}

		case implSP:
			op.Kind = OpReg
			op.Reg = mkReg(d.stackPtrWidth(), REG_LEGACY, 4)

		case implStack:
			op.Kind = OpMem
			op.Mem = Memory{
				Seg:   SS,
				Base:  mkReg(d.stackPtrWidth(), REG_LEGACY, 4),
				Stack: true,
			}
			if d.mode == Mode64 {
				op.Mem.Seg = 0
			}

		case implFlags:
			op.Kind = OpFlags
		}
		x.addOp(op)
	}
	return nil
}

// applyDecorators attaches the EVEX opmask, zeroing, broadcast and
// rounding/SAE decorators and validates their combinations.
func (d *decodeState) applyDecorators(def *instDef, x *Inst) error {
	v := &d.prefixes.Vex
	if v.Kind != escEvex {
		return nil
	}
	if v.Aaa != 0 {
		if !hasFlag(def.flags, EVEX_K) {
			return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
		}
		x.Ops[0].Mask = mkReg(8, REG_MASK, v.Aaa)
		if v.Z {
			if !hasFlag(def.flags, EVEX_Z) {
				return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
			}
			x.Ops[0].Zeroing = true
		}
	} else if v.Z {
		// Zeroing requires a mask.
		return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
	}

	if !v.Bcst {
		return nil
	}
	if d.modrm.isMem {
		if !hasFlag(def.flags, EVEX_B) {
			return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
		}
		for i := range x.Ops[:x.Opc] {
			if x.Ops[i].Kind == OpMem {
				x.Ops[i].Broadcast = true
				break
			}
		}
		return nil
	}
	if !hasFlag(def.flags, EVEX_ER) {
		return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
	}
	// Register form: static rounding with SAE implied, or SAE alone; the
	// vector length bits carry the rounding mode.
	x.Ops[0].SAE = true
	x.Ops[0].ER = true
	x.Ops[0].Rounding = v.LL
	return nil
}

// Implicit-operand pattern entries.
const (
	implReg = iota
	implGp
	implMemSI
	implMemDI
	implSP
	implStack
	implFlags
)

type implOp struct {
	kind uint8
	reg  Reg
	size byte
	acc  Access
}
