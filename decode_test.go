package x86dec

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/arch/x86/x86asm"
)

// Hard-coded instruction sequences are manually verified through the following tools:
//   * ODA: https://onlinedisassembler.com/odaweb/
//   * Shell-Storm: http://shell-storm.org/online/Online-Assembler-and-Disassembler/

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	code, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return code
}

func mustDecode(t *testing.T, mode Mode, s string) Inst {
	t.Helper()
	code := fromHex(t, s)
	inst, err := Decode(code, mode)
	if err != nil {
		t.Fatalf("decode %s: %v", s, err)
	}
	if inst.Len != len(code) {
		t.Fatalf("decode %s: len = %v, want %v", s, inst.Len, len(code))
	}
	return inst
}

func checkOps(t *testing.T, inst Inst, want []Op) {
	t.Helper()
	if diff := cmp.Diff(want, inst.Args()); diff != "" {
		t.Fatalf("operand mismatch (-want +got):\n%s", diff)
	}
}

func TestMnemonicNames(t *testing.T) {
	if ADD.Name() != "ADD" {
		t.Fatalf("ADD.Name() = %s", ADD.Name())
	}
	if VZEROUPPER.Name() != "VZEROUPPER" {
		t.Fatalf("VZEROUPPER.Name() = %s", VZEROUPPER.Name())
	}
	if JCC.Name() != "Jcc" {
		t.Fatalf("JCC.Name() = %s", JCC.Name())
	}
}

func TestDecodeBasic(t *testing.T) {
	for _, tc := range []struct {
		hex      string
		mode     Mode
		mnemonic Mnemonic
	}{
		{"01 c8", Mode64, ADD},
		{"48 01 c8", Mode64, ADD},
		{"66 01 c8", Mode64, ADD},
		{"31 c0", Mode64, XOR},
		{"04 05", Mode64, ADD},
		{"83 c0 7f", Mode64, ADD},
		{"83 c8 ff", Mode64, OR},
		{"0f af c1", Mode64, IMUL},
		{"f7 e1", Mode64, MUL},
		{"0f b6 c4", Mode64, MOVZX},
		{"55", Mode64, PUSH},
		{"5d", Mode64, POP},
		{"68 78 56 34 12", Mode64, PUSH},
		{"c3", Mode64, RET},
		{"c2 10 00", Mode64, RET},
		{"c9", Mode64, LEAVE},
		{"e8 00 00 00 00", Mode64, CALL},
		{"eb fe", Mode64, JMP},
		{"ff e0", Mode64, JMP},
		{"ff d0", Mode64, CALL},
		{"90", Mode64, NOP},
		{"f3 90", Mode64, PAUSE},
		{"0f 1f 40 00", Mode64, NOP},
		{"98", Mode64, CWDE},
		{"66 98", Mode64, CBW},
		{"48 98", Mode64, CDQE},
		{"48 99", Mode64, CQO},
		{"91", Mode64, XCHG},
		{"86 c4", Mode64, XCHG},
		{"0f 05", Mode64, SYSCALL},
		{"0f a2", Mode64, CPUID},
		{"0f 31", Mode64, RDTSC},
		{"cc", Mode64, INT3},
		{"f4", Mode64, HLT},
		{"fc", Mode64, CLD},
		{"f3 0f bd c8", Mode64, LZCNT},
		{"f3 0f bc c8", Mode64, TZCNT},
		{"f3 0f b8 c8", Mode64, POPCNT},
		{"0f bc c8", Mode64, BSF},
		{"0f bd c8", Mode64, BSR},
		{"0f a3 c8", Mode64, BT},
		{"0f ba e0 07", Mode64, BT},
		{"0f ba e8 07", Mode64, BTS},
		{"0f b0 ca", Mode64, CMPXCHG},
		{"0f c0 ca", Mode64, XADD},
		{"0f c8", Mode64, BSWAP},
		{"0f c7 f0", Mode64, RDRAND},
		{"0f c7 f8", Mode64, RDSEED},
		{"0f 0b", Mode64, UD2},
		{"f3 0f 38 f6 c2", Mode16, INVALID}, // unassigned slot
		{"40", Mode32, INC},
		{"48", Mode32, DEC},
		{"60", Mode32, PUSHA},
		{"61", Mode32, POPA},
		{"0f a0", Mode64, PUSH},
		{"0f a1", Mode64, POP},
		{"0f 10 c1", Mode64, MOVUPS},
		{"66 0f 10 c1", Mode64, MOVUPD},
		{"f3 0f 10 c1", Mode64, MOVSS},
		{"f2 0f 10 c1", Mode64, MOVSD},
		{"0f 28 c1", Mode64, MOVAPS},
		{"66 0f 6f c1", Mode64, MOVDQA},
		{"f3 0f 6f c1", Mode64, MOVDQU},
		{"0f 6f c1", Mode64, MOVQ},
		{"0f 2e c1", Mode64, UCOMISS},
		{"66 0f 2f c1", Mode64, COMISD},
		{"0f 58 c1", Mode64, ADDPS},
		{"66 0f 58 c1", Mode64, ADDPD},
		{"f3 0f 58 c1", Mode64, ADDSS},
		{"f2 0f 58 c1", Mode64, ADDSD},
		{"66 0f ef c1", Mode64, PXOR},
		{"0f ef c1", Mode64, PXOR},
		{"66 0f fe c1", Mode64, PADDD},
		{"66 0f 38 00 c1", Mode64, PSHUFB},
		{"66 0f 38 17 c1", Mode64, PTEST},
		{"66 0f 3a 0f c1 04", Mode64, PALIGNR},
		{"0f 38 f0 01", Mode64, MOVBE},
		{"f2 0f 38 f0 c1", Mode64, CRC32},
		{"0f 18 00", Mode64, PREFETCHNTA},
		{"0f 18 08", Mode64, PREFETCHT0},
	} {
		if tc.mnemonic == INVALID {
			if _, err := Decode(fromHex(t, tc.hex), tc.mode); err == nil {
				t.Fatalf("decode %s: expected error", tc.hex)
			}
			continue
		}
		inst := mustDecode(t, tc.mode, tc.hex)
		if inst.Mnemonic != tc.mnemonic {
			t.Fatalf("decode %s: mnemonic = %s, want %s", tc.hex, inst.Mnemonic, tc.mnemonic)
		}
	}
}

func TestDecodeOperands(t *testing.T) {
	// ADD EAX, ECX
	inst := mustDecode(t, Mode64, "01 c8")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: EAX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: ECX},
	})

	// ADD RAX, RCX
	inst = mustDecode(t, Mode64, "48 01 c8")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 8, Reg: RAX},
		{Kind: OpReg, Access: AccRead, Size: 8, Reg: RCX},
	})

	// ADD AL, 5
	inst = mustDecode(t, Mode64, "04 05")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 1, Reg: AL},
		{Kind: OpImm, Access: AccRead, Size: 1, Imm: 5},
	})

	// OR EAX, -1 (sign-extended imm8)
	inst = mustDecode(t, Mode64, "83 c8 ff")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: EAX},
		{Kind: OpImm, Access: AccRead, Size: 1, Imm: -1},
	})

	// MOVZX EAX, AH
	inst = mustDecode(t, Mode64, "0f b6 c4")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: EAX},
		{Kind: OpReg, Access: AccRead, Size: 1, Reg: AH},
	})

	// MOVZX EAX, SPB (REX switches off high-byte aliasing)
	inst = mustDecode(t, Mode64, "40 0f b6 c4")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: EAX},
		{Kind: OpReg, Access: AccRead, Size: 1, Reg: SPB},
	})

	// MOV RAX, imm64
	inst = mustDecode(t, Mode64, "48 b8 88 77 66 55 44 33 22 11")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 8, Reg: RAX},
		{Kind: OpImm, Access: AccRead, Size: 8, Imm: 0x1122334455667788},
	})

	// MOV RAX, -1 (imm32 sign-extended)
	inst = mustDecode(t, Mode64, "48 c7 c0 ff ff ff ff")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 8, Reg: RAX},
		{Kind: OpImm, Access: AccRead, Size: 8, Imm: -1},
	})

	// MUL ECX (implicit EDX:EAX)
	inst = mustDecode(t, Mode64, "f7 e1")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: ECX},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: EDX},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: EAX},
	})

	// XCHG ECX, EAX
	inst = mustDecode(t, Mode64, "91")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: ECX},
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: EAX},
	})

	// SHLD EAX, ECX, CL
	inst = mustDecode(t, Mode64, "0f a5 c8")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: EAX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: ECX},
		{Kind: OpReg, Access: AccRead, Size: 1, Reg: CL},
	})

	// SHL EAX, 1 (the /6 alias of D1 /4 carries the constant-1 operand)
	inst = mustDecode(t, Mode64, "d1 e0")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccRead | AccWrite, Size: 4, Reg: EAX},
		{Kind: OpImm, Access: AccRead, Size: 1, Imm: 1},
	})

	// IN AL, DX
	inst = mustDecode(t, Mode64, "ec")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 1, Reg: AL},
		{Kind: OpReg, Access: AccRead, Size: 2, Reg: DX},
	})

	// MOV EAX, moffs32
	inst = mustDecode(t, Mode32, "a1 78 56 34 12")
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 4, Reg: EAX},
		{Kind: OpMem, Access: AccRead, Size: 4, Mem: Memory{Seg: DS, Disp: 0x12345678, DispWidth: 4}},
	})
}

func TestDecodeBranches(t *testing.T) {
	inst := mustDecode(t, Mode64, "74 10")
	if inst.Mnemonic != JCC || !inst.HasCond || inst.CondCode != CCEq {
		t.Fatalf("74 10: %s cc=%v", inst.Mnemonic, inst.CondCode)
	}
	if inst.Flags.Tested != FlagZF {
		t.Fatalf("74 10: tested flags %#x", inst.Flags.Tested)
	}
	checkOps(t, inst, []Op{{Kind: OpRel, Access: AccRead, Size: 8, Rel: 0x10}})

	inst = mustDecode(t, Mode64, "0f 8c 80 00 00 00")
	if inst.CondCode != CCSignedLT {
		t.Fatalf("jl cc = %v", inst.CondCode)
	}
	if inst.Flags.Tested != FlagSF|FlagOF {
		t.Fatalf("jl tested flags %#x", inst.Flags.Tested)
	}
	if inst.Ops[0].Rel != 0x80 {
		t.Fatalf("jl rel = %#x", inst.Ops[0].Rel)
	}

	// SETE AL
	inst = mustDecode(t, Mode64, "0f 94 c0")
	if inst.Mnemonic != SETCC || inst.CondCode != CCEq {
		t.Fatalf("sete: %s cc=%v", inst.Mnemonic, inst.CondCode)
	}
	checkOps(t, inst, []Op{{Kind: OpReg, Access: AccWrite | AccCond, Size: 1, Reg: AL}})

	// CMOVE EAX, ECX
	inst = mustDecode(t, Mode64, "0f 44 c1")
	if inst.Mnemonic != CMOVCC || inst.CondCode != CCEq {
		t.Fatalf("cmove: %s cc=%v", inst.Mnemonic, inst.CondCode)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite | AccCond, Size: 4, Reg: EAX},
		{Kind: OpReg, Access: AccRead | AccCond, Size: 4, Reg: ECX},
	})
}

func TestDecodeModeGating(t *testing.T) {
	// INC via 40 is reclaimed by REX in long mode.
	if _, err := Decode(fromHex(t, "40"), Mode64); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("lone REX: %v", err)
	}
	// MOVSXD is long mode only; in 32-bit mode the byte is ARPL, which is
	// not decoded.
	if _, err := Decode(fromHex(t, "63 c8"), Mode32); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("63 in 32-bit mode: %v", err)
	}
	inst := mustDecode(t, Mode64, "48 63 c8")
	if inst.Mnemonic != MOVSXD {
		t.Fatalf("48 63 c8: %s", inst.Mnemonic)
	}
	checkOps(t, inst, []Op{
		{Kind: OpReg, Access: AccWrite, Size: 8, Reg: RCX},
		{Kind: OpReg, Access: AccRead, Size: 4, Reg: EAX},
	})
	// PUSHA is gone in long mode.
	if _, err := Decode(fromHex(t, "60"), Mode64); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("60 in long mode: %v", err)
	}
	// SYSCALL requires long mode.
	if _, err := Decode(fromHex(t, "0f 05"), Mode32); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("0f 05 in 32-bit mode: %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		hex  string
		mode Mode
		want error
	}{
		{"", Mode64, ErrBufferTooSmall},
		{"48", Mode64, ErrBufferTooSmall},
		{"01", Mode64, ErrBufferTooSmall},
		{"48 b8 88 77 66 55", Mode64, ErrBufferTooSmall},
		{"8b 05 39 30", Mode64, ErrBufferTooSmall},
		{"06", Mode64, ErrInvalidEncoding},          // PUSH ES not decoded
		{"0f ff c0", Mode64, ErrInvalidEncoding},    // unassigned slot
		{"f0 01 c8", Mode64, ErrInvalidEncoding},    // LOCK with register destination
		{"f0 90", Mode64, ErrInvalidEncoding},       // LOCK on a non-lockable op
		{"8d c0", Mode64, ErrInvalidEncoding},       // LEA with register source
		{"0f 38 f0 c1", Mode64, ErrInvalidEncoding}, // MOVBE has no register form
	} {
		_, err := Decode(fromHex(t, tc.hex), tc.mode)
		if !errors.Is(err, tc.want) {
			t.Fatalf("decode %q: err = %v, want %v", tc.hex, err, tc.want)
		}
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("decode %q: err %v does not wrap DecodeError", tc.hex, err)
		}
	}
}

func TestLockPrefix(t *testing.T) {
	inst := mustDecode(t, Mode64, "f0 01 08")
	if inst.Mnemonic != ADD || !inst.Prefixes.Lock {
		t.Fatalf("lock add: %s lock=%v", inst.Mnemonic, inst.Prefixes.Lock)
	}
	if inst.Ops[0].Kind != OpMem {
		t.Fatalf("lock add: destination is %v", inst.Ops[0].Kind)
	}
	if inst.ValidPrefixes&PrefixLOCK == 0 {
		t.Fatal("lock add: PrefixLOCK not advertised")
	}
	// LOCK CMPXCHG16B
	inst = mustDecode(t, Mode64, "f0 48 0f c7 08")
	if inst.Mnemonic != CMPXCHG16B {
		t.Fatalf("lock cmpxchg16b: %s", inst.Mnemonic)
	}
}

// corpus64 holds valid 64-bit encodings reused by the truncation sweep and
// the x86asm differential test.
var corpus64 = []string{
	"01 c8",
	"48 01 c8",
	"66 01 c8",
	"04 05",
	"83 c0 7f",
	"48 83 ec 20",
	"8b 05 39 30 00 00",
	"8b 04 25 78 56 34 12",
	"8b 44 24 08",
	"41 8b 04 24",
	"8b 84 88 44 33 22 11",
	"48 8d 04 88",
	"55",
	"5d",
	"68 78 56 34 12",
	"c3",
	"c2 10 00",
	"c9",
	"e8 00 00 00 00",
	"74 10",
	"0f 84 80 00 00 00",
	"eb fe",
	"ff e0",
	"ff d0",
	"90",
	"f3 90",
	"0f 1f 40 00",
	"48 b8 88 77 66 55 44 33 22 11",
	"48 c7 c0 ff ff ff ff",
	"b0 ff",
	"f7 e1",
	"48 f7 f9",
	"0f af c1",
	"6b c1 10",
	"69 c1 78 56 34 12",
	"0f b6 c4",
	"0f b7 c1",
	"48 0f be c9",
	"48 63 c8",
	"98",
	"48 98",
	"0f 05",
	"0f a2",
	"0f 31",
	"f3 a4",
	"f3 ab",
	"f2 ae",
	"f0 01 08",
	"f0 48 0f c7 08",
	"0f c7 08",
	"0f c7 f0",
	"0f a3 c8",
	"0f ba e0 07",
	"0f ab c8",
	"0f a5 c8",
	"d1 e0",
	"c1 e0 04",
	"d3 e0",
	"0f bc c8",
	"f3 0f bc c8",
	"f3 0f b8 c8",
	"0f b0 ca",
	"0f c0 ca",
	"0f c8",
	"0f 44 c1",
	"0f 94 c0",
	"0f 10 c1",
	"66 0f 10 c1",
	"f3 0f 10 c1",
	"f2 0f 10 c1",
	"0f 28 c1",
	"66 0f 6f c1",
	"0f 58 c1",
	"f2 0f 58 c1",
	"66 0f ef c1",
	"0f ef c1",
	"66 0f 38 00 c1",
	"66 0f 3a 0f c1 04",
	"0f 18 00",
	"64 8b 00",
	"67 8b 40 12",
	"66 0f be c1",
}

func TestTruncation(t *testing.T) {
	for _, s := range corpus64 {
		code := fromHex(t, s)
		if _, err := Decode(code, Mode64); err != nil {
			t.Fatalf("decode %s: %v", s, err)
		}
		for n := 0; n < len(code); n++ {
			_, err := Decode(code[:n], Mode64)
			if !errors.Is(err, ErrBufferTooSmall) {
				t.Fatalf("decode %s[:%d]: err = %v, want ErrBufferTooSmall", s, n, err)
			}
		}
	}
}

// TestDifferentialX86asm cross-checks lengths and byte extents against the
// x86asm decoder over the legacy corpus.
func TestDifferentialX86asm(t *testing.T) {
	for _, s := range corpus64 {
		code := fromHex(t, s)
		inst, err := Decode(code, Mode64)
		if err != nil {
			t.Fatalf("decode %s: %v", s, err)
		}
		ref, err := x86asm.Decode(code, 64)
		if err != nil {
			t.Fatalf("x86asm decode %s: %v", s, err)
		}
		if inst.Len != ref.Len {
			t.Fatalf("decode %s: len %v != x86asm len %v\n%s", s, inst.Len, ref.Len, spew.Sdump(inst))
		}
	}
}

func TestDecodeToAllocs(t *testing.T) {
	code := fromHex(t, "8b 84 88 44 33 22 11")
	dec := NewDecoder(Mode64)
	var x Inst
	allocs := testing.AllocsPerRun(100, func() {
		if err := dec.DecodeTo(&x, code); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Fatalf("DecodeTo allocates %v times per op", allocs)
	}
}

func TestExtents(t *testing.T) {
	inst := mustDecode(t, Mode32, "8b 84 88 44 33 22 11")
	if inst.PrefixLen != 0 || inst.OpcodeOff != 0 || inst.OpcodeLen != 1 {
		t.Fatalf("opcode extents: %+v", inst)
	}
	if !inst.HasModRM || inst.ModRMOff != 1 || inst.ModRM != 0x84 {
		t.Fatalf("modrm extents: %+v", inst)
	}
	if !inst.HasSIB || inst.SIBOff != 2 || inst.SIB != 0x88 {
		t.Fatalf("sib extents: %+v", inst)
	}
	if inst.DispOff != 3 || inst.DispLen != 4 || inst.ImmLen != 0 {
		t.Fatalf("disp extents: %+v", inst)
	}

	inst = mustDecode(t, Mode64, "66 81 48 12 34 12")
	if inst.PrefixLen != 1 || inst.OpcodeOff != 1 || inst.OpcodeLen != 1 {
		t.Fatalf("opcode extents: %+v", inst)
	}
	if inst.ModRMOff != 2 || inst.DispOff != 3 || inst.DispLen != 1 {
		t.Fatalf("disp extents: %+v", inst)
	}
	if inst.ImmOff != 4 || inst.ImmLen != 2 {
		t.Fatalf("imm extents: %+v", inst)
	}
}

// Every encoding partitions exactly into prefixes, opcode, ModRM, SIB,
// displacement and immediate.
func TestExtentSum(t *testing.T) {
	for _, s := range corpus64 {
		inst := mustDecode(t, Mode64, s)
		n := int(inst.PrefixLen) + int(inst.OpcodeLen) + int(inst.DispLen) + int(inst.ImmLen)
		if inst.HasModRM {
			n++
		}
		if inst.HasSIB {
			n++
		}
		if n != inst.Len {
			t.Fatalf("decode %s: extents sum to %v, len %v\n%s", s, n, inst.Len, spew.Sdump(inst))
		}
	}
}

func TestCategoryAndISASet(t *testing.T) {
	inst := mustDecode(t, Mode64, "01 c8")
	if inst.Category != CatArith || inst.ISASet != SetI86 {
		t.Fatalf("add: cat=%s isa=%s", inst.Category, inst.ISASet)
	}
	inst = mustDecode(t, Mode64, "f3 0f b8 c8")
	if inst.Category != CatBit || inst.ISASet != SetSSE42 {
		t.Fatalf("popcnt: cat=%s isa=%s", inst.Category, inst.ISASet)
	}
	if inst.CPUID.Leaf == 0 && inst.CPUID.Bit == 0 {
		t.Fatal("popcnt: missing CPUID reference")
	}
	inst = mustDecode(t, Mode64, "0f 05")
	if inst.ValidModes != ModesOnly64 {
		t.Fatalf("syscall: modes %#x", inst.ValidModes)
	}
}
