package x86dec

// Legacy prefix bytes.
const (
	lockPrefix     = 0xF0
	repnePrefix    = 0xF2
	repPrefix      = 0xF3
	opSizePrefix   = 0x66
	addrSizePrefix = 0x67

	segESPrefix = 0x26
	segCSPrefix = 0x2E
	segSSPrefix = 0x36
	segDSPrefix = 0x3E
	segFSPrefix = 0x64
	segGSPrefix = 0x65
)

// escKind identifies the extended-prefix escape opening an encoding.
type escKind uint8

const (
	escNone escKind = iota
	escVex2
	escVex3
	escXop
	escEvex
)

// vexInfo holds the decoded fields of a VEX/XOP/EVEX escape. The inverted
// bits (R, X, B, R', V', vvvv) are stored un-inverted, ready for use.
type vexInfo struct {
	Kind escKind
	W    bool
	R    bool
	X    bool
	B    bool
	RP   bool // EVEX R'
	VP   bool // EVEX V'
	Vvvv uint8
	LL   uint8 // vector length: 0=128, 1=256, 2=512
	PP   uint8 // embedded prefix: 0=none, 1=66, 2=F3, 3=F2
	Map  uint8 // opcode map: 1=0F, 2=0F38, 3=0F3A; XOP maps 8-10
	Aaa  uint8 // EVEX opmask register
	Z    bool  // EVEX zeroing
	Bcst bool  // EVEX broadcast / rounding-control bit
}

// Prefixes is the scanned prefix state of one instruction. Redundant
// prefixes are legal; among conflicting prefixes of one class the last one
// before the opcode wins and the earlier ones are inert but counted.
type Prefixes struct {
	// Seg is the honored segment override, zero when absent. In 64-bit mode
	// only FS/GS overrides are honored; others are consumed as length only
	// and reported through SegByte.
	Seg     Reg
	SegByte byte // raw last segment-override byte, zero when absent

	OpSizeOvr   bool // 66 seen
	AddrSizeOvr bool // 67 seen
	Lock        bool // F0 seen
	Rep         byte // last of F2/F3, zero when absent

	Rex        byte // effective REX value, zero when absent or displaced
	RexPresent bool // any REX byte was consumed (affects byte-register aliasing)

	Vex vexInfo
}

// rex accessors; all false when no effective REX byte is present.
func (p *Prefixes) rexW() bool { return p.Rex&0x8 != 0 }
func (p *Prefixes) rexR() bool { return p.Rex&0x4 != 0 }
func (p *Prefixes) rexX() bool { return p.Rex&0x2 != 0 }
func (p *Prefixes) rexB() bool { return p.Rex&0x1 != 0 }

// extension bits merged across REX and VEX/XOP/EVEX forms.
func (p *Prefixes) extW() bool { return p.rexW() || p.Vex.W }
func (p *Prefixes) extR() bool { return p.rexR() || p.Vex.R }
func (p *Prefixes) extX() bool { return p.rexX() || p.Vex.X }
func (p *Prefixes) extB() bool { return p.rexB() || p.Vex.B }

func segReg(b byte) Reg {
	switch b {
	case segESPrefix:
		return ES
	case segCSPrefix:
		return CS
	case segSSPrefix:
		return SS
	case segDSPrefix:
		return DS
	case segFSPrefix:
		return FS
	case segGSPrefix:
		return GS
	}
	return 0
}

// scanPrefixes performs the single forward pass over the prefix bytes,
// leaving the reader positioned at the first opcode byte. The 15-byte cap is
// enforced by the reader, so a prefix-padded instruction fails on length, not
// here.
func (d *decodeState) scanPrefixes() error {
	p := &d.prefixes
	r := &d.r

	for {
		b, err := r.peek()
		if err != nil {
			return err
		}
		switch b {
		case lockPrefix:
			p.Lock = true
			p.Rex = 0
		case repnePrefix, repPrefix:
			p.Rep = b
			p.Rex = 0
		case opSizePrefix:
			p.OpSizeOvr = true
			p.Rex = 0
		case addrSizePrefix:
			p.AddrSizeOvr = true
			p.Rex = 0
		case segESPrefix, segCSPrefix, segSSPrefix, segDSPrefix, segFSPrefix, segGSPrefix:
			p.SegByte = b
			if d.mode != Mode64 || b == segFSPrefix || b == segGSPrefix {
				p.Seg = segReg(b)
			} else {
				p.Seg = 0
			}
			p.Rex = 0
		default:
			if d.mode == Mode64 && b&0xf0 == 0x40 {
				// REX. Only the copy immediately preceding the opcode (or
				// an escape, which rejects it) takes effect; any further
				// prefix byte displaces it.
				p.Rex = b
				p.RexPresent = true
				r.advance()
				continue
			}
			// Possibly a VEX/XOP/EVEX escape, otherwise the opcode.
			isEsc, err := d.isEscape(b)
			if err != nil {
				return err
			}
			if !isEsc {
				return nil
			}
			return d.scanEscape(b)
		}
		r.advance()
	}
}

// opSizeAttr returns the effective operand-size attribute in bytes, before
// any per-definition sizing rule is applied. mandatory66 excludes a 66 byte
// consumed as a mandatory prefix from sizing.
func (d *decodeState) opSizeAttr(mandatory66 bool) uint8 {
	ovr := d.prefixes.OpSizeOvr && !mandatory66
	switch d.mode {
	case Mode16:
		if ovr {
			return 4
		}
		return 2
	case Mode32:
		if ovr {
			return 2
		}
		return 4
	default:
		if d.prefixes.extW() {
			return 8
		}
		if ovr {
			return 2
		}
		return 4
	}
}

// addrSize returns the effective address size in bytes.
func (d *decodeState) addrSize() uint8 {
	ovr := d.prefixes.AddrSizeOvr
	switch d.mode {
	case Mode16:
		if ovr {
			return 4
		}
		return 2
	case Mode32:
		if ovr {
			return 2
		}
		return 4
	default:
		if ovr {
			return 4
		}
		return 8
	}
}

// vecLen returns the effective vector length in bytes, zero for non-vector
// encodings.
func (d *decodeState) vecLen() uint8 {
	if d.prefixes.Vex.Kind == escNone {
		return 0
	}
	switch d.prefixes.Vex.LL {
	case 0:
		return 16
	case 1:
		return 32
	default:
		return 64
	}
}
