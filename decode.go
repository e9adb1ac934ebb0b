package x86dec

import (
	. "github.com/wdamron/x86dec/internal/flags"

	"github.com/wdamron/x86dec/feats"
)

// MaxInstLen is the architectural instruction-length limit. Encodings that
// would extend past it fail with ErrLengthExceeded even when every field is
// individually valid.
const MaxInstLen = 15

// reader is a bounds-checked cursor over the input. The length cap is
// checked before the buffer end, so a well-formed instruction padded past 15
// bytes fails on length even when the buffer itself runs out first.
type reader struct {
	buf []byte
	i   int
}

func (r *reader) pos() int { return r.i }

func (r *reader) check(idx int) error {
	if idx >= MaxInstLen {
		return decodeErr(idx, ErrLengthExceeded)
	}
	if idx >= len(r.buf) {
		return decodeErr(idx, ErrBufferTooSmall)
	}
	return nil
}

func (r *reader) peek() (byte, error) {
	if err := r.check(r.i); err != nil {
		return 0, err
	}
	return r.buf[r.i], nil
}

func (r *reader) peekAt(n int) (byte, error) {
	if err := r.check(r.i + n); err != nil {
		return 0, err
	}
	return r.buf[r.i+n], nil
}

func (r *reader) byte() (byte, error) {
	b, err := r.peek()
	if err != nil {
		return 0, err
	}
	r.i++
	return b, nil
}

// advance skips one byte the caller has already peeked.
func (r *reader) advance() { r.i++ }

// uint reads n little-endian bytes.
func (r *reader) uint(n int) (uint64, error) {
	if err := r.check(r.i + n - 1); err != nil {
		return 0, err
	}
	var v uint64
	for k := 0; k < n; k++ {
		v |= uint64(r.buf[r.i+k]) << (8 * k)
	}
	r.i += n
	return v, nil
}

// decodeState is the per-call working state. It lives on the caller's stack;
// decoding allocates nothing.
type decodeState struct {
	r        reader
	mode     Mode
	prefixes Prefixes
	modrm    modrmInfo
	modrmPos uint8

	opcodeOff uint8
	opcodeLen uint8
	opcode    byte

	opSize     uint8 // effective operand size after per-definition rules
	stackWidth uint8 // width of one stack slot
	shortReg   uint8 // register number embedded in the opcode byte

	immOff uint8
	immLen uint8
}

func (d *decodeState) modrmOff() uint8 { return d.modrmPos }

// readImm reads an n-byte little-endian immediate, recording its extent.
func (d *decodeState) readImm(n uint8) (int64, error) {
	off := d.r.pos()
	v, err := d.r.uint(int(n))
	if err != nil {
		return 0, err
	}
	if d.immLen == 0 {
		d.immOff = uint8(off)
		d.immLen = n
	}
	return signExtend(v, n), nil
}

// stackPtrWidth is the width of the stack-pointer register, which follows
// the mode rather than the operand-size attribute.
func (d *decodeState) stackPtrWidth() uint8 {
	return uint8(d.mode)
}

// Inst is one decoded instruction. It is a plain value with no pointers into
// the input buffer; the byte-extent fields are offsets from the start of the
// instruction.
type Inst struct {
	Mnemonic Mnemonic
	Mode     Mode
	Len      int

	Ops [8]Op
	Opc int // number of valid entries in Ops

	Prefixes Prefixes
	OpSize   uint8 // effective operand size in bytes
	AddrSize uint8 // effective address size in bytes
	VecLen   uint8 // vector length in bytes, zero for non-vector encodings

	Flags    FlagsAccess
	CondCode ConditionCode
	HasCond  bool

	Category Category
	ISASet   ISASet
	Feature  feats.Feature
	CPUID    feats.CPUIDRef

	// Advisory validity. Decoding succeeds whenever the bytes name a real
	// encoding; whether that encoding is legal in a particular ring or with
	// the scanned prefixes is reported here for the caller to judge.
	ValidModes    Modes
	ValidPrefixes PrefixSet

	// Byte extents within the encoding.
	PrefixLen uint8
	OpcodeOff uint8
	OpcodeLen uint8
	HasModRM  bool
	ModRMOff  uint8
	ModRM     byte
	HasSIB    bool
	SIBOff    uint8
	SIB       byte
	DispOff   uint8
	DispLen   uint8
	ImmOff    uint8
	ImmLen    uint8
}

func (x *Inst) addOp(op Op) {
	if x.Opc < len(x.Ops) {
		x.Ops[x.Opc] = op
		x.Opc++
	}
}

// Args returns the materialized operands in encoding order, explicit
// operands first.
func (x *Inst) Args() []Op { return x.Ops[:x.Opc] }

// Decoder decodes instructions for one fixed mode. It holds no per-call
// state and is safe for concurrent use.
type Decoder struct {
	mode Mode
}

func NewDecoder(mode Mode) *Decoder { return &Decoder{mode: mode} }

// Decode decodes the instruction at the start of code.
func (d *Decoder) Decode(code []byte) (Inst, error) {
	var x Inst
	err := d.DecodeTo(&x, code)
	return x, err
}

// DecodeTo decodes into a caller-supplied record, allocating nothing. On
// error the record contents are unspecified.
func (d *Decoder) DecodeTo(x *Inst, code []byte) error {
	st := decodeState{r: reader{buf: code}, mode: d.mode}
	return st.decode(x)
}

// Decode decodes the instruction at the start of code in the given mode.
func Decode(code []byte, mode Mode) (Inst, error) {
	var x Inst
	st := decodeState{r: reader{buf: code}, mode: mode}
	err := st.decode(&x)
	return x, err
}

func (d *decodeState) decode(x *Inst) error {
	*x = Inst{Mode: d.mode}

	if err := d.scanPrefixes(); err != nil {
		return err
	}
	def, err := d.lookup()
	if err != nil {
		return err
	}

	// Encodability is a hard property of the byte stream, unlike the
	// advisory ring/feature validity below.
	if d.mode == Mode64 && hasFlag(def.flags, I64) {
		return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
	}
	if d.mode != Mode64 && hasFlag(def.flags, O64) {
		return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
	}
	// A definition is reachable only through its own escape class and
	// behind its mandatory prefix; a slot selected without them is not a
	// valid encoding.
	if !d.escapeOK(def) || !d.mandatoryPrefixOK(def) {
		return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
	}

	if hasFlag(def.flags, SHORT_ARG) {
		d.shortReg = d.opcode & 7
		if d.prefixes.extB() {
			d.shortReg |= 8
		}
	}

	d.sizeOperands(def)

	if hasFlag(def.flags, MODRM) {
		if err := d.decodeModRM(def); err != nil {
			return err
		}
		if hasFlag(def.flags, MODRM_MEM) && !d.modrm.isMem {
			return decodeErr(int(d.modrmPos), ErrInvalidEncoding)
		}
		if hasFlag(def.flags, MODRM_REG) && d.modrm.isMem {
			return decodeErr(int(d.modrmPos), ErrInvalidEncoding)
		}
	}

	if err := d.buildOperands(def, x); err != nil {
		return err
	}
	if err := d.checkLock(def); err != nil {
		return err
	}

	annotateFlags(x, def, d.opcode)
	if def.rflags == rfCond {
		x.CondCode = ccFromOpcode(d.opcode)
		x.HasCond = true
	}

	x.Mnemonic = def.mnemonic
	x.Len = d.r.pos()
	x.Prefixes = d.prefixes
	x.OpSize = d.opSize
	x.AddrSize = d.addrSize()
	if hasFlag(def.flags, AUTO_VEXL) {
		x.VecLen = d.vecLen()
	}
	x.Category = def.cat
	x.ISASet = def.isa
	x.Feature = def.feat
	x.CPUID = feats.Ref(def.feat)
	x.ValidModes = def.modes
	x.ValidPrefixes = def.prefs

	x.PrefixLen = d.opcodeOff
	x.OpcodeOff = d.opcodeOff
	x.OpcodeLen = d.opcodeLen
	if d.modrm.hasModRM {
		x.HasModRM = true
		x.ModRMOff = d.modrmPos
		x.ModRM = d.modrm.modrm
	}
	if d.modrm.hasSIB {
		x.HasSIB = true
		x.SIBOff = d.modrmPos + 1
		x.SIB = d.modrm.sib
	}
	x.DispOff = d.modrm.dispOff
	x.DispLen = d.modrm.dispLen
	x.ImmOff = d.immOff
	x.ImmLen = d.immLen
	return nil
}

// sizeOperands applies the per-definition operand-size rules on top of the
// raw operand-size attribute.
func (d *decodeState) sizeOperands(def *instDef) {
	mandatory66 := hasFlag(def.flags, PREF_66)
	d.opSize = d.opSizeAttr(mandatory66)

	if d.mode == Mode64 {
		switch {
		case hasFlag(def.flags, FORCE64):
			// Near branches and a few system instructions promote to 64-bit
			// unconditionally; a 66 prefix is consumed but ignored.
			d.opSize = 8
		case hasFlag(def.flags, AUTO_NO32):
			// Stack-referencing instructions default to 64-bit; 66 selects
			// 16-bit and no encoding selects 32-bit.
			if d.prefixes.OpSizeOvr {
				d.opSize = 2
			} else {
				d.opSize = 8
			}
		}
		d.stackWidth = 8
		if d.prefixes.OpSizeOvr {
			d.stackWidth = 2
		}
	} else {
		d.stackWidth = d.opSizeAttr(false)
	}
}

// checkLock validates the LOCK prefix: it is only defined on the locked
// read-modify-write forms with a memory destination.
// escapeOK reports whether the definition belongs to the escape class the
// prefix scan established. The opcode maps keep VEX, XOP and EVEX
// definitions in their own dispatch tables, so this holds for every slot
// they populate.
func (d *decodeState) escapeOK(def *instDef) bool {
	switch d.prefixes.Vex.Kind {
	case escVex2, escVex3:
		return hasFlag(def.flags, VEX_OP)
	case escXop:
		return hasFlag(def.flags, XOP_OP)
	case escEvex:
		return hasFlag(def.flags, EVEX_OP)
	}
	return !hasFlag(def.flags, VEX_OP|XOP_OP|EVEX_OP)
}

// mandatoryPrefixOK reports whether the scanned prefixes satisfy the
// definition's mandatory prefix, either as a legacy prefix byte or as the
// equivalent VEX/EVEX pp field.
func (d *decodeState) mandatoryPrefixOK(def *instDef) bool {
	v := &d.prefixes.Vex
	switch {
	case hasFlag(def.flags, PREF_66):
		return d.prefixes.OpSizeOvr || v.PP == 1
	case hasFlag(def.flags, PREF_F3):
		return d.prefixes.Rep == repPrefix || v.PP == 2
	case hasFlag(def.flags, PREF_F2):
		return d.prefixes.Rep == repnePrefix || v.PP == 3
	}
	return true
}

func (d *decodeState) checkLock(def *instDef) error {
	if !d.prefixes.Lock {
		return nil
	}
	if def.prefs&PrefixLOCK == 0 || !d.modrm.isMem {
		return decodeErr(int(d.opcodeOff), ErrInvalidEncoding)
	}
	return nil
}
