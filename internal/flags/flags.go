package x86decflags

// Definition flags
const (
	DEFAULT   uint32 = 0         // this definition has default encoding behavior
	MODRM     uint32 = 1 << iota // this encoding carries a ModRM byte
	MOD3                         // ModRM always behaves as mod=3 (CR/DR moves); encoded displacement bytes are length only
	MODRM_MEM                    // only memory forms of ModRM are valid (mod != 3)
	MODRM_REG                    // only register forms of ModRM are valid (mod == 3)

	SHORT_ARG // a register argument is encoded in the low 3 bits of the last opcode byte
	IMM_OP    // the final opcode byte is encoded in the immediate position, like 3DNow! ops

	// note: the first 4 in this block are mutually exclusive
	AUTO_SIZE // operand size follows the operand-size attribute (66, REX.W)
	AUTO_NO32 // default 64-bit in long mode, 16-bit via 66; 32-bit not encodable (stack ops, near branches)
	AUTO_REXW // 32-bit unless REX.W; 16-bit form does not exist
	AUTO_VEXL // vector length from VEX.L / EVEX.L'L
	FORCE64   // fixed 64-bit operand in long mode regardless of prefixes (indirect branches)

	PREF_66 // mandatory prefix 66
	PREF_F2 // mandatory prefix F2
	PREF_F3 // mandatory prefix F3

	VEX_OP  // reachable only through a VEX escape
	XOP_OP  // reachable only through a XOP escape
	EVEX_OP // reachable only through an EVEX escape

	EVEX_K  // opmask decorator accepted
	EVEX_Z  // zeroing decorator accepted
	EVEX_B  // broadcast decorator accepted on memory forms
	EVEX_ER // embedded rounding / SAE accepted on register forms

	I64 // invalid in long mode (encoding reclaimed)
	O64 // encodable in long mode only
)

func FlagName(f uint32) string { return flagNames[f] }

var flagNames = map[uint32]string{
	DEFAULT:   "DEFAULT",
	MODRM:     "MODRM",
	MOD3:      "MOD3",
	MODRM_MEM: "MODRM_MEM",
	MODRM_REG: "MODRM_REG",
	SHORT_ARG: "SHORT_ARG",
	IMM_OP:    "IMM_OP",
	AUTO_SIZE: "AUTO_SIZE",
	AUTO_NO32: "AUTO_NO32",
	AUTO_REXW: "AUTO_REXW",
	AUTO_VEXL: "AUTO_VEXL",
	FORCE64:   "FORCE64",
	PREF_66:   "PREF_66",
	PREF_F2:   "PREF_F2",
	PREF_F3:   "PREF_F3",
	VEX_OP:    "VEX_OP",
	XOP_OP:    "XOP_OP",
	EVEX_OP:   "EVEX_OP",
	EVEX_K:    "EVEX_K",
	EVEX_Z:    "EVEX_Z",
	EVEX_B:    "EVEX_B",
	EVEX_ER:   "EVEX_ER",
	I64:       "I64",
	O64:       "O64",
}
