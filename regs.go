package x86dec

import "strconv"

// Reg is a register with a specific width and family. All registers have a
// number which distinguishes them within their family, with the exception of
// the IP/EIP/RIP registers.
//
// The zero Reg is "no register".
type Reg uint32

// Get the family for the register.
//
// If the register is valid, the return value will be REG_LEGACY, REG_RIP,
// REG_HIGHBYTE, REG_FP, REG_MMX, REG_XMM, REG_YMM, REG_ZMM, REG_SEGMENT,
// REG_CONTROL, REG_DEBUG, REG_MASK, or REG_BOUND.
func (r Reg) Family() uint8 { return uint8(r >> 8) }

// Get the number which distinguishes the register within its family. The
// IP/EIP/RIP registers have no meaningful number, so they will return 0.
func (r Reg) Num() uint8 { return uint8(r) & 0x1f }

// Get the width of the register in bytes.
func (r Reg) Width() uint8 { return uint8(r >> 16) }

// Check if the register is numbered 8 or higher. The IP/EIP/RIP registers
// have no meaningful number, so they will return false.
func (r Reg) IsExtended() bool { return r.Num() > 7 }

// Check if the register belongs to one of the vector families.
func (r Reg) IsVector() bool {
	f := r.Family()
	return f == REG_XMM || f == REG_YMM || f == REG_ZMM
}

func mkReg(width, family, num uint8) Reg {
	return Reg(uint32(width)<<16 | uint32(family)<<8 | uint32(num))
}

// gpReg builds a general-purpose register from a decoded register number,
// honoring the high-byte aliasing rule: without REX, numbers 4-7 at byte
// width select AH/CH/DH/BH; with any REX prefix they select SPB/BPB/SIB/DIB.
func gpReg(width, num uint8, rex bool) Reg {
	if width == 1 && !rex && num >= 4 && num <= 7 {
		return mkReg(1, REG_HIGHBYTE, num-4)
	}
	return mkReg(width, REG_LEGACY, num)
}

// Register families
const (
	REG_LEGACY   = iota
	REG_RIP      // IP, EIP, RIP
	REG_HIGHBYTE // AH, CH, DH, BH
	REG_FP
	REG_MMX
	REG_XMM
	REG_YMM
	REG_ZMM
	REG_SEGMENT
	REG_CONTROL
	REG_DEBUG
	REG_MASK
	REG_BOUND
)

// Registers
const (
	// 8-bit
	AH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 0)
	CH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 1)
	DH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 2)
	BH   Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 3)
	AL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 0)
	CL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 1)
	DL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 2)
	BL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 3)
	SPB  Reg = Reg(1<<16 | REG_LEGACY<<8 | 4)
	BPB  Reg = Reg(1<<16 | REG_LEGACY<<8 | 5)
	SIB  Reg = Reg(1<<16 | REG_LEGACY<<8 | 6)
	DIB  Reg = Reg(1<<16 | REG_LEGACY<<8 | 7)
	R8B  Reg = Reg(1<<16 | REG_LEGACY<<8 | 8)
	R9B  Reg = Reg(1<<16 | REG_LEGACY<<8 | 9)
	R10B Reg = Reg(1<<16 | REG_LEGACY<<8 | 10)
	R11B Reg = Reg(1<<16 | REG_LEGACY<<8 | 11)
	R12B Reg = Reg(1<<16 | REG_LEGACY<<8 | 12)
	R13B Reg = Reg(1<<16 | REG_LEGACY<<8 | 13)
	R14B Reg = Reg(1<<16 | REG_LEGACY<<8 | 14)
	R15B Reg = Reg(1<<16 | REG_LEGACY<<8 | 15)

	// 16-bit
	AX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 0)
	CX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 1)
	DX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 2)
	BX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 3)
	SP   Reg = Reg(2<<16 | REG_LEGACY<<8 | 4)
	BP   Reg = Reg(2<<16 | REG_LEGACY<<8 | 5)
	SI   Reg = Reg(2<<16 | REG_LEGACY<<8 | 6)
	DI   Reg = Reg(2<<16 | REG_LEGACY<<8 | 7)
	R8W  Reg = Reg(2<<16 | REG_LEGACY<<8 | 8)
	R9W  Reg = Reg(2<<16 | REG_LEGACY<<8 | 9)
	R10W Reg = Reg(2<<16 | REG_LEGACY<<8 | 10)
	R11W Reg = Reg(2<<16 | REG_LEGACY<<8 | 11)
	R12W Reg = Reg(2<<16 | REG_LEGACY<<8 | 12)
	R13W Reg = Reg(2<<16 | REG_LEGACY<<8 | 13)
	R14W Reg = Reg(2<<16 | REG_LEGACY<<8 | 14)
	R15W Reg = Reg(2<<16 | REG_LEGACY<<8 | 15)

	// 32-bit
	EAX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 0)
	ECX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 1)
	EDX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 2)
	EBX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 3)
	ESP  Reg = Reg(4<<16 | REG_LEGACY<<8 | 4)
	EBP  Reg = Reg(4<<16 | REG_LEGACY<<8 | 5)
	ESI  Reg = Reg(4<<16 | REG_LEGACY<<8 | 6)
	EDI  Reg = Reg(4<<16 | REG_LEGACY<<8 | 7)
	R8L  Reg = Reg(4<<16 | REG_LEGACY<<8 | 8)
	R9L  Reg = Reg(4<<16 | REG_LEGACY<<8 | 9)
	R10L Reg = Reg(4<<16 | REG_LEGACY<<8 | 10)
	R11L Reg = Reg(4<<16 | REG_LEGACY<<8 | 11)
	R12L Reg = Reg(4<<16 | REG_LEGACY<<8 | 12)
	R13L Reg = Reg(4<<16 | REG_LEGACY<<8 | 13)
	R14L Reg = Reg(4<<16 | REG_LEGACY<<8 | 14)
	R15L Reg = Reg(4<<16 | REG_LEGACY<<8 | 15)

	// 64-bit
	RAX Reg = Reg(8<<16 | REG_LEGACY<<8 | 0)
	RCX Reg = Reg(8<<16 | REG_LEGACY<<8 | 1)
	RDX Reg = Reg(8<<16 | REG_LEGACY<<8 | 2)
	RBX Reg = Reg(8<<16 | REG_LEGACY<<8 | 3)
	RSP Reg = Reg(8<<16 | REG_LEGACY<<8 | 4)
	RBP Reg = Reg(8<<16 | REG_LEGACY<<8 | 5)
	RSI Reg = Reg(8<<16 | REG_LEGACY<<8 | 6)
	RDI Reg = Reg(8<<16 | REG_LEGACY<<8 | 7)
	R8  Reg = Reg(8<<16 | REG_LEGACY<<8 | 8)
	R9  Reg = Reg(8<<16 | REG_LEGACY<<8 | 9)
	R10 Reg = Reg(8<<16 | REG_LEGACY<<8 | 10)
	R11 Reg = Reg(8<<16 | REG_LEGACY<<8 | 11)
	R12 Reg = Reg(8<<16 | REG_LEGACY<<8 | 12)
	R13 Reg = Reg(8<<16 | REG_LEGACY<<8 | 13)
	R14 Reg = Reg(8<<16 | REG_LEGACY<<8 | 14)
	R15 Reg = Reg(8<<16 | REG_LEGACY<<8 | 15)

	// Instruction pointer.
	IP  Reg = Reg(2<<16 | REG_RIP<<8 | 0) // 16-bit
	EIP Reg = Reg(4<<16 | REG_RIP<<8 | 0) // 32-bit
	RIP Reg = Reg(8<<16 | REG_RIP<<8 | 0) // 64-bit

	// 387 floating point registers.
	F0 Reg = Reg(10<<16 | REG_FP<<8 | 0)
	F1 Reg = Reg(10<<16 | REG_FP<<8 | 1)
	F2 Reg = Reg(10<<16 | REG_FP<<8 | 2)
	F3 Reg = Reg(10<<16 | REG_FP<<8 | 3)
	F4 Reg = Reg(10<<16 | REG_FP<<8 | 4)
	F5 Reg = Reg(10<<16 | REG_FP<<8 | 5)
	F6 Reg = Reg(10<<16 | REG_FP<<8 | 6)
	F7 Reg = Reg(10<<16 | REG_FP<<8 | 7)

	// MMX registers.
	M0 Reg = Reg(8<<16 | REG_MMX<<8 | 0)
	M1 Reg = Reg(8<<16 | REG_MMX<<8 | 1)
	M2 Reg = Reg(8<<16 | REG_MMX<<8 | 2)
	M3 Reg = Reg(8<<16 | REG_MMX<<8 | 3)
	M4 Reg = Reg(8<<16 | REG_MMX<<8 | 4)
	M5 Reg = Reg(8<<16 | REG_MMX<<8 | 5)
	M6 Reg = Reg(8<<16 | REG_MMX<<8 | 6)
	M7 Reg = Reg(8<<16 | REG_MMX<<8 | 7)

	// XMM registers. X16 and up are encodable with EVEX only.
	X0  Reg = Reg(16<<16 | REG_XMM<<8 | 0)
	X1  Reg = Reg(16<<16 | REG_XMM<<8 | 1)
	X2  Reg = Reg(16<<16 | REG_XMM<<8 | 2)
	X3  Reg = Reg(16<<16 | REG_XMM<<8 | 3)
	X4  Reg = Reg(16<<16 | REG_XMM<<8 | 4)
	X5  Reg = Reg(16<<16 | REG_XMM<<8 | 5)
	X6  Reg = Reg(16<<16 | REG_XMM<<8 | 6)
	X7  Reg = Reg(16<<16 | REG_XMM<<8 | 7)
	X8  Reg = Reg(16<<16 | REG_XMM<<8 | 8)
	X9  Reg = Reg(16<<16 | REG_XMM<<8 | 9)
	X10 Reg = Reg(16<<16 | REG_XMM<<8 | 10)
	X11 Reg = Reg(16<<16 | REG_XMM<<8 | 11)
	X12 Reg = Reg(16<<16 | REG_XMM<<8 | 12)
	X13 Reg = Reg(16<<16 | REG_XMM<<8 | 13)
	X14 Reg = Reg(16<<16 | REG_XMM<<8 | 14)
	X15 Reg = Reg(16<<16 | REG_XMM<<8 | 15)

	// YMM registers.
	Y0  Reg = Reg(32<<16 | REG_YMM<<8 | 0)
	Y1  Reg = Reg(32<<16 | REG_YMM<<8 | 1)
	Y2  Reg = Reg(32<<16 | REG_YMM<<8 | 2)
	Y3  Reg = Reg(32<<16 | REG_YMM<<8 | 3)
	Y4  Reg = Reg(32<<16 | REG_YMM<<8 | 4)
	Y5  Reg = Reg(32<<16 | REG_YMM<<8 | 5)
	Y6  Reg = Reg(32<<16 | REG_YMM<<8 | 6)
	Y7  Reg = Reg(32<<16 | REG_YMM<<8 | 7)
	Y8  Reg = Reg(32<<16 | REG_YMM<<8 | 8)
	Y9  Reg = Reg(32<<16 | REG_YMM<<8 | 9)
	Y10 Reg = Reg(32<<16 | REG_YMM<<8 | 10)
	Y11 Reg = Reg(32<<16 | REG_YMM<<8 | 11)
	Y12 Reg = Reg(32<<16 | REG_YMM<<8 | 12)
	Y13 Reg = Reg(32<<16 | REG_YMM<<8 | 13)
	Y14 Reg = Reg(32<<16 | REG_YMM<<8 | 14)
	Y15 Reg = Reg(32<<16 | REG_YMM<<8 | 15)

	// ZMM registers.
	Z0  Reg = Reg(64<<16 | REG_ZMM<<8 | 0)
	Z1  Reg = Reg(64<<16 | REG_ZMM<<8 | 1)
	Z2  Reg = Reg(64<<16 | REG_ZMM<<8 | 2)
	Z3  Reg = Reg(64<<16 | REG_ZMM<<8 | 3)
	Z4  Reg = Reg(64<<16 | REG_ZMM<<8 | 4)
	Z5  Reg = Reg(64<<16 | REG_ZMM<<8 | 5)
	Z6  Reg = Reg(64<<16 | REG_ZMM<<8 | 6)
	Z7  Reg = Reg(64<<16 | REG_ZMM<<8 | 7)
	Z8  Reg = Reg(64<<16 | REG_ZMM<<8 | 8)
	Z9  Reg = Reg(64<<16 | REG_ZMM<<8 | 9)
	Z10 Reg = Reg(64<<16 | REG_ZMM<<8 | 10)
	Z11 Reg = Reg(64<<16 | REG_ZMM<<8 | 11)
	Z12 Reg = Reg(64<<16 | REG_ZMM<<8 | 12)
	Z13 Reg = Reg(64<<16 | REG_ZMM<<8 | 13)
	Z14 Reg = Reg(64<<16 | REG_ZMM<<8 | 14)
	Z15 Reg = Reg(64<<16 | REG_ZMM<<8 | 15)

	// Opmask registers.
	K0 Reg = Reg(8<<16 | REG_MASK<<8 | 0)
	K1 Reg = Reg(8<<16 | REG_MASK<<8 | 1)
	K2 Reg = Reg(8<<16 | REG_MASK<<8 | 2)
	K3 Reg = Reg(8<<16 | REG_MASK<<8 | 3)
	K4 Reg = Reg(8<<16 | REG_MASK<<8 | 4)
	K5 Reg = Reg(8<<16 | REG_MASK<<8 | 5)
	K6 Reg = Reg(8<<16 | REG_MASK<<8 | 6)
	K7 Reg = Reg(8<<16 | REG_MASK<<8 | 7)

	// Bound registers.
	BND0 Reg = Reg(16<<16 | REG_BOUND<<8 | 0)
	BND1 Reg = Reg(16<<16 | REG_BOUND<<8 | 1)
	BND2 Reg = Reg(16<<16 | REG_BOUND<<8 | 2)
	BND3 Reg = Reg(16<<16 | REG_BOUND<<8 | 3)

	// Segment registers.
	ES Reg = Reg(2<<16 | REG_SEGMENT<<8 | 0)
	CS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 1)
	SS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 2)
	DS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 3)
	FS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 4)
	GS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 5)

	// Control registers.
	CR0  Reg = Reg(8<<16 | REG_CONTROL<<8 | 0)
	CR1  Reg = Reg(8<<16 | REG_CONTROL<<8 | 1)
	CR2  Reg = Reg(8<<16 | REG_CONTROL<<8 | 2)
	CR3  Reg = Reg(8<<16 | REG_CONTROL<<8 | 3)
	CR4  Reg = Reg(8<<16 | REG_CONTROL<<8 | 4)
	CR5  Reg = Reg(8<<16 | REG_CONTROL<<8 | 5)
	CR6  Reg = Reg(8<<16 | REG_CONTROL<<8 | 6)
	CR7  Reg = Reg(8<<16 | REG_CONTROL<<8 | 7)
	CR8  Reg = Reg(8<<16 | REG_CONTROL<<8 | 8)
	CR9  Reg = Reg(8<<16 | REG_CONTROL<<8 | 9)
	CR10 Reg = Reg(8<<16 | REG_CONTROL<<8 | 10)
	CR11 Reg = Reg(8<<16 | REG_CONTROL<<8 | 11)
	CR12 Reg = Reg(8<<16 | REG_CONTROL<<8 | 12)
	CR13 Reg = Reg(8<<16 | REG_CONTROL<<8 | 13)
	CR14 Reg = Reg(8<<16 | REG_CONTROL<<8 | 14)
	CR15 Reg = Reg(8<<16 | REG_CONTROL<<8 | 15)

	// Debug registers.
	DR0  Reg = Reg(8<<16 | REG_DEBUG<<8 | 0)
	DR1  Reg = Reg(8<<16 | REG_DEBUG<<8 | 1)
	DR2  Reg = Reg(8<<16 | REG_DEBUG<<8 | 2)
	DR3  Reg = Reg(8<<16 | REG_DEBUG<<8 | 3)
	DR4  Reg = Reg(8<<16 | REG_DEBUG<<8 | 4)
	DR5  Reg = Reg(8<<16 | REG_DEBUG<<8 | 5)
	DR6  Reg = Reg(8<<16 | REG_DEBUG<<8 | 6)
	DR7  Reg = Reg(8<<16 | REG_DEBUG<<8 | 7)
	DR8  Reg = Reg(8<<16 | REG_DEBUG<<8 | 8)
	DR9  Reg = Reg(8<<16 | REG_DEBUG<<8 | 9)
	DR10 Reg = Reg(8<<16 | REG_DEBUG<<8 | 10)
	DR11 Reg = Reg(8<<16 | REG_DEBUG<<8 | 11)
	DR12 Reg = Reg(8<<16 | REG_DEBUG<<8 | 12)
	DR13 Reg = Reg(8<<16 | REG_DEBUG<<8 | 13)
	DR14 Reg = Reg(8<<16 | REG_DEBUG<<8 | 14)
	DR15 Reg = Reg(8<<16 | REG_DEBUG<<8 | 15)
)

var gp8Names = [...]string{"al", "cl", "dl", "bl", "spb", "bpb", "sib", "dib",
	"r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b"}
var gp16Names = [...]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w"}
var gp32Names = [...]string{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d"}
var gp64Names = [...]string{"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15"}
var highByteNames = [...]string{"ah", "ch", "dh", "bh"}
var segNames = [...]string{"es", "cs", "ss", "ds", "fs", "gs"}

// String is a debugging aid, not an output formatter.
func (r Reg) String() string {
	if r == 0 {
		return "none"
	}
	n := int(r.Num())
	switch r.Family() {
	case REG_LEGACY:
		switch r.Width() {
		case 1:
			return gp8Names[n&15]
		case 2:
			return gp16Names[n&15]
		case 4:
			return gp32Names[n&15]
		case 8:
			return gp64Names[n&15]
		}
	case REG_HIGHBYTE:
		return highByteNames[n&3]
	case REG_RIP:
		switch r.Width() {
		case 2:
			return "ip"
		case 4:
			return "eip"
		}
		return "rip"
	case REG_FP:
		return "st" + strconv.Itoa(n)
	case REG_MMX:
		return "mm" + strconv.Itoa(n)
	case REG_XMM:
		return "xmm" + strconv.Itoa(n)
	case REG_YMM:
		return "ymm" + strconv.Itoa(n)
	case REG_ZMM:
		return "zmm" + strconv.Itoa(n)
	case REG_SEGMENT:
		if n < len(segNames) {
			return segNames[n]
		}
	case REG_CONTROL:
		return "cr" + strconv.Itoa(n)
	case REG_DEBUG:
		return "dr" + strconv.Itoa(n)
	case REG_MASK:
		return "k" + strconv.Itoa(n)
	case REG_BOUND:
		return "bnd" + strconv.Itoa(n)
	}
	return "reg?"
}
