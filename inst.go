package x86dec

import (
	"github.com/wdamron/x86dec/feats"
)

func hasFlag(flags, flag uint32) bool { return flags&flag != 0 }

// Mnemonic identifies an instruction mnemonic. The numeric value is an
// arbitrary index assigned by the table generator.
type Mnemonic uint16

// Get the name of the instruction mnemonic.
func (m Mnemonic) Name() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return "???"
}

func (m Mnemonic) String() string { return m.Name() }

// MnemonicCount reports the number of assigned mnemonic identifiers,
// including INVALID at index 0.
func MnemonicCount() int { return int(numMnemonics) }

// Category is a coarse functional grouping copied from the definition.
type Category uint8

const (
	CatInvalid Category = iota
	CatArith
	CatLogic
	CatShift
	CatBit
	CatMove
	CatConvert
	CatStack
	CatBranch
	CatCondBranch
	CatCall
	CatRet
	CatCmov
	CatSetcc
	CatString
	CatFlagop
	CatIO
	CatSystem
	CatNop
	CatSemaphore
	CatSSE
	CatAVX
	CatAVX512
	CatGather
	CatMask
	CatRandom
	CatPrefetch
)

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "???"
}

var categoryNames = [...]string{
	"INVALID", "ARITH", "LOGIC", "SHIFT", "BIT", "MOVE", "CONVERT", "STACK",
	"BRANCH", "COND_BRANCH", "CALL", "RET", "CMOV", "SETCC", "STRING",
	"FLAGOP", "IO", "SYSTEM", "NOP", "SEMAPHORE", "SSE", "AVX", "AVX512",
	"GATHER", "MASK", "RANDOM", "PREFETCH",
}

// ISASet names the instruction-set extension an encoding belongs to.
type ISASet uint8

const (
	SetI86 ISASet = iota
	SetI186
	SetI386
	SetI486
	SetPentium
	SetLongMode
	SetX87
	SetMMX
	SetSSE
	SetSSE2
	SetSSE3
	SetSSSE3
	SetSSE41
	SetSSE42
	SetAVX
	SetAVX2
	SetAVX512F
	SetBMI1
	SetBMI2
	SetTBM
	SetMPX
	SetVTX
)

func (s ISASet) String() string {
	if int(s) < len(isaSetNames) {
		return isaSetNames[s]
	}
	return "???"
}

var isaSetNames = [...]string{
	"I86", "I186", "I386", "I486", "PENTIUM", "LONGMODE", "X87", "MMX",
	"SSE", "SSE2", "SSE3", "SSSE3", "SSE41", "SSE42", "AVX", "AVX2",
	"AVX512F", "BMI1", "BMI2", "TBM", "MPX", "VTX",
}

// instDef is a single instruction definition produced by the offline table
// generator. Two definitions sharing an opcode path are disambiguated by the
// table structure itself (ModRM.reg groups, mod splits, mandatory-prefix and
// operand-size selections), never by scanning.
type instDef struct {
	mnemonic Mnemonic
	argp     uint8 // index into argpFormats (explicit operands, encoding order)
	impl     uint8 // index into implPatterns (implicit operands)
	rflags   uint8 // index into rflagsSets
	flags    uint32
	modes    Modes
	prefs    PrefixSet
	cat      Category
	isa      ISASet
	feat     feats.Feature
}
