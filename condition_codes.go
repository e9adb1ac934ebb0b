package x86dec

// ConditionCode is the 4-bit condition encoded in the low nibble of
// Jcc/SETcc/CMOVcc opcodes.
type ConditionCode byte

const (
	CCOverflow    ConditionCode = 0
	CCNoOverflow  ConditionCode = 1
	CCUnsignedLT  ConditionCode = 2
	CCUnsignedGTE ConditionCode = 3
	CCEq          ConditionCode = 4
	CCNeq         ConditionCode = 5
	CCUnsignedLTE ConditionCode = 6
	CCUnsignedGT  ConditionCode = 7
	CCSign        ConditionCode = 8
	CCNoSign      ConditionCode = 9
	CCParity      ConditionCode = 0xA
	CCNoParity    ConditionCode = 0xB
	CCSignedLT    ConditionCode = 0xC
	CCSignedGTE   ConditionCode = 0xD
	CCSignedLTE   ConditionCode = 0xE
	CCSignedGT    ConditionCode = 0xF
)

// Invert a condition code.
func Invcc(cc ConditionCode) ConditionCode { return cc ^ 1 }

// ccFromOpcode extracts the condition from a cc-encoded opcode byte
// (70-7F, 0F 80-8F, 0F 90-9F, 0F 40-4F).
func ccFromOpcode(op byte) ConditionCode { return ConditionCode(op & 0xf) }

// ccTested maps each condition to the flags it tests. Inverted conditions
// test the same set.
var ccTested = [8]Rflags{
	FlagOF,                   // O / NO
	FlagCF,                   // B / NB
	FlagZF,                   // Z / NZ
	FlagCF | FlagZF,          // BE / NBE
	FlagSF,                   // S / NS
	FlagPF,                   // P / NP
	FlagSF | FlagOF,          // L / NL
	FlagSF | FlagOF | FlagZF, // LE / NLE
}

// Tested returns the flags the condition reads.
func (cc ConditionCode) Tested() Rflags { return ccTested[cc>>1] }
